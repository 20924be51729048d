package bootstrap

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	app "github.com/sped/diario-import/internal/application/diario"
	domain "github.com/sped/diario-import/internal/domain/diario"
	"github.com/sped/diario-import/internal/infrastructure/sqlscript"
)

var ErrInvalidConfig = errors.New("invalid config")

// Defaults are the values of the original Agatha migration run.
const (
	DefaultStudentID      = "b5a6a7f1-4eac-4dcf-9e93-186f91c60738"
	DefaultClassID        = "5fcb344f-b983-439f-a858-2b1289ef9638"
	DefaultMigratedPath   = "json_agatha_banco.json"
	DefaultAttendancePath = "diario_agatha.csv"
	DefaultOutputPath     = "insert_diario_agatha.sql"
)

type Config struct {
	StudentID      string `validate:"required,uuid"`
	ClassID        string `validate:"required,uuid"`
	MigratedPath   string `validate:"required"`
	AttendancePath string `validate:"required"`
	OutputPath     string `validate:"required"`
	ScriptHeader   string `validate:"required,startswith=--"`
	BaseDir        string `validate:"required"`
	Port           string `validate:"required,numeric"`
}

func LoadConfig() (Config, error) {
	cfg := Config{
		StudentID:      getEnv("DIARIO_STUDENT_ID", DefaultStudentID),
		ClassID:        getEnv("DIARIO_CLASS_ID", DefaultClassID),
		MigratedPath:   getEnv("DIARIO_MIGRATED_JSON", DefaultMigratedPath),
		AttendancePath: getEnv("DIARIO_ATTENDANCE_CSV", DefaultAttendancePath),
		OutputPath:     getEnv("DIARIO_OUTPUT_SQL", DefaultOutputPath),
		ScriptHeader:   getEnv("DIARIO_SCRIPT_HEADER", sqlscript.DefaultHeader),
		BaseDir:        getEnv("IMPORT_BASE_DIR", "."),
		Port:           getEnv("PORT", "8080"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ImporterConfig converts the validated ids into the application config.
func (c Config) ImporterConfig() (app.Config, error) {
	studentID, err := uuid.Parse(c.StudentID)
	if err != nil {
		return app.Config{}, fmt.Errorf("%w: student id: %v", ErrInvalidConfig, err)
	}
	classID, err := uuid.Parse(c.ClassID)
	if err != nil {
		return app.Config{}, fmt.Errorf("%w: class id: %v", ErrInvalidConfig, err)
	}

	return app.Config{
		StudentID: studentID,
		ClassID:   classID,
		Columns:   domain.DefaultColumns,
	}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
