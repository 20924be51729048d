package sqlscript

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	domain "github.com/sped/diario-import/internal/domain/diario"
	"github.com/sped/diario-import/internal/infrastructure/db/models"
	"gorm.io/gorm/schema"
)

const DefaultHeader = "-- Script gerado automaticamente para importar dados da Agatha via CSV"

// Renderer writes diario entries as a single-transaction SQL script. Table
// and column names come from the gorm schema of models.Diario.
type Renderer struct {
	header string
	schema *schema.Schema
}

func NewRenderer(header string) (*Renderer, error) {
	if strings.TrimSpace(header) == "" {
		header = DefaultHeader
	}

	s, err := schema.Parse(&models.Diario{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("parse diario schema: %w", err)
	}

	return &Renderer{header: header, schema: s}, nil
}

func (r *Renderer) Render(w io.Writer, entries []domain.Entry) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\nBEGIN;\n", r.header); err != nil {
		return err
	}
	for _, entry := range entries {
		stmt, err := r.Statement(entry)
		if err != nil {
			return fmt.Errorf("render item %s: %w", entry.ItemID, err)
		}
		if _, err := bw.WriteString(stmt + "\n"); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("COMMIT;\n"); err != nil {
		return err
	}

	return bw.Flush()
}

// Statement renders the INSERT for a single entry.
func (r *Renderer) Statement(entry domain.Entry) (string, error) {
	row := toModel(entry)
	rv := reflect.ValueOf(&row)

	values := make([]string, 0, len(r.schema.DBNames))
	for _, field := range r.schema.Fields {
		if field.DBName == "" {
			continue
		}
		v, _ := field.ValueOf(context.Background(), rv)
		lit, err := literal(v)
		if err != nil {
			return "", fmt.Errorf("column %s: %w", field.DBName, err)
		}
		values = append(values, lit)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		r.schema.Table,
		strings.Join(r.schema.DBNames, ", "),
		strings.Join(values, ", "),
	), nil
}

func toModel(entry domain.Entry) models.Diario {
	return models.Diario{
		IDAluno:          entry.StudentID,
		IDTurma:          entry.ClassID,
		IDItemSharepoint: entry.ItemID,
		Data:             pgtype.Timestamptz{Time: entry.Date, Valid: true},
		P1:               pgtype.Text{String: string(entry.P1), Valid: true},
		P2:               pgtype.Text{String: string(entry.P2), Valid: true},
		P3:               pgtype.Text{},
		P4:               pgtype.Text{},
		SyncSharepoint:   true,
		Atualizado:       true,
	}
}

func literal(v any) (string, error) {
	switch val := v.(type) {
	case uuid.UUID:
		return quote(val.String()), nil
	case string:
		return quote(val), nil
	case bool:
		if val {
			return "true", nil
		}
		return "false", nil
	case pgtype.Text:
		if !val.Valid {
			return "NULL", nil
		}
		return quote(val.String), nil
	case pgtype.Timestamptz:
		if !val.Valid {
			return "NULL", nil
		}
		return quote(domain.FormatTimestamp(val.Time)), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
