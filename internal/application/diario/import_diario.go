package diario

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	domain "github.com/sped/diario-import/internal/domain/diario"
)

type ImportSource interface {
	Open(ctx context.Context, sourcePath string) (io.ReadCloser, error)
}

type ScriptSink interface {
	Create(ctx context.Context, targetPath string) (io.WriteCloser, error)
}

type ImportDiarioInput struct {
	MigratedPath   string
	AttendancePath string
	OutputPath     string
}

type ImportDiarioOutput struct {
	OutputPath string
	Summary    domain.ImportSummary
}

// ImportDiario converts an attendance export on disk into a SQL script on disk.
type ImportDiario interface {
	Execute(ctx context.Context, in ImportDiarioInput) (ImportDiarioOutput, error)
}

type importDiario struct {
	source  ImportSource
	sink    ScriptSink
	builder *scriptBuilder
}

func NewImportDiario(cfg Config, source ImportSource, sink ScriptSink, decoder RecordDecoder, renderer ScriptRenderer, log logrus.FieldLogger) ImportDiario {
	return &importDiario{
		source: source,
		sink:   sink,
		builder: &scriptBuilder{
			gen:      newGenerator(cfg, log),
			decoder:  decoder,
			renderer: renderer,
		},
	}
}

func (uc *importDiario) Execute(ctx context.Context, in ImportDiarioInput) (ImportDiarioOutput, error) {
	in.MigratedPath = strings.TrimSpace(in.MigratedPath)
	in.AttendancePath = strings.TrimSpace(in.AttendancePath)
	in.OutputPath = strings.TrimSpace(in.OutputPath)
	if in.MigratedPath == "" || in.AttendancePath == "" || in.OutputPath == "" {
		return ImportDiarioOutput{}, ErrInvalidImportInput
	}

	migrated, err := uc.source.Open(ctx, in.MigratedPath)
	if err != nil {
		return ImportDiarioOutput{}, fmt.Errorf("%w: %v", ErrOpenImportSource, err)
	}
	defer migrated.Close()

	attendance, err := uc.source.Open(ctx, in.AttendancePath)
	if err != nil {
		return ImportDiarioOutput{}, fmt.Errorf("%w: %v", ErrOpenImportSource, err)
	}
	defer attendance.Close()

	script, summary, err := uc.builder.build(ctx, migrated, in.AttendancePath, attendance)
	if err != nil {
		return ImportDiarioOutput{Summary: summary}, err
	}

	if err := uc.writeScript(ctx, in.OutputPath, script); err != nil {
		return ImportDiarioOutput{Summary: summary}, fmt.Errorf("%w: %v", ErrWriteScript, err)
	}

	uc.builder.gen.log.Infof("Generated %d inserts.", summary.GeneratedCount)

	return ImportDiarioOutput{
		OutputPath: in.OutputPath,
		Summary:    summary,
	}, nil
}

func (uc *importDiario) writeScript(ctx context.Context, outputPath string, script []byte) error {
	w, err := uc.sink.Create(ctx, outputPath)
	if err != nil {
		return err
	}

	if _, err := w.Write(script); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
