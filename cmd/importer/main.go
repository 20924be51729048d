package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	app "github.com/sped/diario-import/internal/application/diario"
	"github.com/sped/diario-import/internal/bootstrap"
)

func main() {
	log := logrus.New()

	if err := godotenv.Load(); err != nil {
		log.Warnf(".env file not loaded: %v", err)
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	importer, err := bootstrap.NewImporter(cfg, log)
	if err != nil {
		log.Fatalf("build importer: %v", err)
	}

	out, err := importer.Execute(context.Background(), app.ImportDiarioInput{
		MigratedPath:   cfg.MigratedPath,
		AttendancePath: cfg.AttendancePath,
		OutputPath:     cfg.OutputPath,
	})
	if err != nil {
		log.Fatalf("import diario: %v", err)
	}

	log.WithFields(logrus.Fields{
		"output":      out.OutputPath,
		"processed":   out.Summary.ProcessedCount,
		"generated":   out.Summary.GeneratedCount,
		"duplicates":  out.Summary.DuplicateCount,
		"invalid":     out.Summary.InvalidDateCount,
		"short":       out.Summary.ShortRecordCount,
		"empty_items": out.Summary.EmptyItemIDCount,
	}).Info("diario import finished")
}
