package bootstrap

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	app "github.com/sped/diario-import/internal/application/diario"
	"github.com/sped/diario-import/internal/infrastructure/attendance"
	infrafile "github.com/sped/diario-import/internal/infrastructure/file"
	"github.com/sped/diario-import/internal/infrastructure/sqlscript"
	httpecho "github.com/sped/diario-import/internal/interfaces/http/echo"
)

func NewHTTPServer(cfg Config, log *logrus.Logger) (*echo.Echo, error) {
	importerCfg, err := cfg.ImporterConfig()
	if err != nil {
		return nil, err
	}
	renderer, err := sqlscript.NewRenderer(cfg.ScriptHeader)
	if err != nil {
		return nil, err
	}

	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("10M"))
	server.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency,
				"request_id": v.RequestID,
			}).Info("request")
			return nil
		},
	}))

	convert := app.NewConvertDiario(importerCfg, attendance.NewDecoder(), renderer, log)
	diarioHandler := httpecho.NewDiarioHandler(convert)

	httpecho.RegisterRoutes(server, diarioHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server, nil
}

// NewImporter wires the file based import against cfg.BaseDir.
func NewImporter(cfg Config, log *logrus.Logger) (app.ImportDiario, error) {
	importerCfg, err := cfg.ImporterConfig()
	if err != nil {
		return nil, err
	}
	renderer, err := sqlscript.NewRenderer(cfg.ScriptHeader)
	if err != nil {
		return nil, err
	}

	files := infrafile.NewLocalSource(cfg.BaseDir)
	return app.NewImportDiario(importerCfg, files, files, attendance.NewDecoder(), renderer, log), nil
}
