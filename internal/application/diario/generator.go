package diario

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	domain "github.com/sped/diario-import/internal/domain/diario"
)

const maxStoredFailures = 100

type Config struct {
	StudentID uuid.UUID
	ClassID   uuid.UUID
	Columns   domain.Columns
}

type generator struct {
	cfg Config
	log logrus.FieldLogger
}

func newGenerator(cfg Config, log logrus.FieldLogger) *generator {
	if cfg.Columns == (domain.Columns{}) {
		cfg.Columns = domain.DefaultColumns
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &generator{cfg: cfg, log: log}
}

// generate turns records into entries in record order, skipping the ones that
// are empty, already migrated, short or undated.
func (g *generator) generate(ctx context.Context, migrated domain.DedupSet, records [][]string) ([]domain.Entry, domain.ImportSummary, error) {
	summary := domain.ImportSummary{MigratedItemCount: int64(migrated.Len())}
	entries := make([]domain.Entry, 0, len(records))

	for i, record := range records {
		select {
		case <-ctx.Done():
			return nil, summary, ctx.Err()
		default:
		}

		rowIndex := int64(i)
		summary.ProcessedCount++

		entry, err := g.processRecord(rowIndex, record, migrated)
		if err != nil {
			g.recordSkip(&summary, rowIndex, err)
			continue
		}

		entries = append(entries, entry)
		summary.GeneratedCount++
	}

	return entries, summary, nil
}

func (g *generator) processRecord(rowIndex int64, record []string, migrated domain.DedupSet) (domain.Entry, error) {
	row, err := domain.NewRow(record, g.cfg.Columns)
	if err != nil {
		g.log.WithFields(logrus.Fields{"row": rowIndex, "fields": len(record)}).Warn("skipping short record")
		return domain.Entry{}, err
	}

	entry, err := domain.NewEntry(g.cfg.StudentID, g.cfg.ClassID, row, migrated)
	switch {
	case err == nil:
		return entry, nil
	case errors.Is(err, domain.ErrDuplicateRow):
		g.log.WithField("row", rowIndex).Infof("Skipping existing item %s", row.ItemID)
	case errors.Is(err, domain.ErrInvalidDate):
		g.log.WithField("row", rowIndex).Infof("Invalid date: %s", row.Date)
	}
	return domain.Entry{}, err
}

func (g *generator) recordSkip(summary *domain.ImportSummary, rowIndex int64, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyItemID):
		summary.EmptyItemIDCount++
		return
	case errors.Is(err, domain.ErrDuplicateRow):
		summary.DuplicateCount++
		return
	case errors.Is(err, domain.ErrInvalidDate):
		summary.InvalidDateCount++
	case errors.Is(err, domain.ErrShortRecord):
		summary.ShortRecordCount++
	}

	if len(summary.Failures) < maxStoredFailures {
		summary.Failures = append(summary.Failures, domain.ImportFailure{
			RowIndex: rowIndex,
			Reason:   err.Error(),
		})
	}
}
