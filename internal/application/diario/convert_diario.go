package diario

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	domain "github.com/sped/diario-import/internal/domain/diario"
)

type ConvertDiarioInput struct {
	Migrated       io.Reader
	Attendance     io.Reader
	AttendanceName string
}

type ConvertDiarioOutput struct {
	Script  []byte
	Summary domain.ImportSummary
}

// ConvertDiario converts uploaded streams and returns the script in memory.
type ConvertDiario interface {
	Execute(ctx context.Context, in ConvertDiarioInput) (ConvertDiarioOutput, error)
}

type convertDiario struct {
	builder *scriptBuilder
}

func NewConvertDiario(cfg Config, decoder RecordDecoder, renderer ScriptRenderer, log logrus.FieldLogger) ConvertDiario {
	return &convertDiario{
		builder: &scriptBuilder{
			gen:      newGenerator(cfg, log),
			decoder:  decoder,
			renderer: renderer,
		},
	}
}

func (uc *convertDiario) Execute(ctx context.Context, in ConvertDiarioInput) (ConvertDiarioOutput, error) {
	if in.Migrated == nil || in.Attendance == nil {
		return ConvertDiarioOutput{}, ErrInvalidImportInput
	}

	script, summary, err := uc.builder.build(ctx, in.Migrated, in.AttendanceName, in.Attendance)
	if err != nil {
		return ConvertDiarioOutput{Summary: summary}, err
	}

	uc.builder.gen.log.WithField("attendance", in.AttendanceName).Infof("Generated %d inserts.", summary.GeneratedCount)

	return ConvertDiarioOutput{
		Script:  script,
		Summary: summary,
	}, nil
}
