package diario

import (
	"bytes"
	"context"
	"fmt"
	"io"

	domain "github.com/sped/diario-import/internal/domain/diario"
)

type RecordDecoder interface {
	Decode(ctx context.Context, name string, r io.Reader) ([][]string, error)
}

type ScriptRenderer interface {
	Render(w io.Writer, entries []domain.Entry) error
}

// scriptBuilder runs one pass over a snapshot and an attendance export and
// renders the resulting script into memory.
type scriptBuilder struct {
	gen      *generator
	decoder  RecordDecoder
	renderer ScriptRenderer
}

func (b *scriptBuilder) build(ctx context.Context, migrated io.Reader, attendanceName string, attendance io.Reader) ([]byte, domain.ImportSummary, error) {
	dedup, err := LoadDedupSet(migrated)
	if err != nil {
		return nil, domain.ImportSummary{}, fmt.Errorf("%w: %v", ErrInvalidMigratedSnapshot, err)
	}
	b.gen.log.Infof("Loaded %d existing items from JSON.", dedup.Len())

	records, err := b.decoder.Decode(ctx, attendanceName, attendance)
	if err != nil {
		return nil, domain.ImportSummary{}, fmt.Errorf("%w: %v", ErrInvalidAttendance, err)
	}

	entries, summary, err := b.gen.generate(ctx, dedup, records)
	if err != nil {
		return nil, summary, err
	}

	var buf bytes.Buffer
	if err := b.renderer.Render(&buf, entries); err != nil {
		return nil, summary, fmt.Errorf("%w: %v", ErrRenderScript, err)
	}

	return buf.Bytes(), summary, nil
}
