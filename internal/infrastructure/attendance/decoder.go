package attendance

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	domain "github.com/sped/diario-import/internal/domain/diario"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const defaultComma = ';'

// Decoder reads attendance exports into positional records. Workbooks are
// detected by file extension, everything else is read as delimited text.
// Columns fixes the width workbook rows are padded to and the position of
// the date cell.
type Decoder struct {
	Comma   rune
	Columns domain.Columns
}

func NewDecoder() *Decoder {
	return &Decoder{Comma: defaultComma, Columns: domain.DefaultColumns}
}

func (d *Decoder) Decode(ctx context.Context, name string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return d.decodeWorkbook(ctx, r)
	default:
		return d.decodeCSV(ctx, r)
	}
}

func (d *Decoder) decodeCSV(ctx context.Context, r io.Reader) ([][]string, error) {
	_ = ctx

	// BOMOverride drops a leading UTF-8 BOM and passes everything else through.
	reader := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	reader.Comma = d.comma()
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return records, nil
}

func (d *Decoder) decodeWorkbook(ctx context.Context, r io.Reader) ([][]string, error) {
	_ = ctx

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	// Raw values keep date cells as serial numbers instead of locale text.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("get rows of sheet %q: %w", sheets[0], err)
	}

	cols := d.columns()
	width := cols.Width()
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		// GetRows drops trailing empty cells.
		for len(row) < width {
			row = append(row, "")
		}
		row[cols.Date] = workbookDate(row[cols.Date], date1904)
		records = append(records, row)
	}
	return records, nil
}

// workbookDate renders a serial date cell in the export's text layout.
// Text cells are returned unchanged.
func workbookDate(raw string, date1904 bool) string {
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return raw
	}
	return t.Round(time.Minute).Format(domain.SourceLayout)
}

func (d *Decoder) columns() domain.Columns {
	if d.Columns == (domain.Columns{}) {
		return domain.DefaultColumns
	}
	return d.Columns
}

func (d *Decoder) comma() rune {
	if d.Comma == 0 {
		return defaultComma
	}
	return d.Comma
}
