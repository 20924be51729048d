package diario

import "strings"

// Columns maps each attendance field to its position in an export record.
type Columns struct {
	Identifier   int
	StudentName  int
	Registration int
	Course       int
	Module       int
	SecondModule int
	Shift        int
	Date         int
	StatusP1     int
	StatusP2     int
	ItemID       int
}

// DefaultColumns is the layout of the SharePoint attendance export.
// Position 10 is not used.
var DefaultColumns = Columns{
	Identifier:   0,
	StudentName:  1,
	Registration: 2,
	Course:       3,
	Module:       4,
	SecondModule: 5,
	Shift:        6,
	Date:         7,
	StatusP1:     8,
	StatusP2:     9,
	ItemID:       11,
}

// Width is the minimum number of fields a record needs.
func (c Columns) Width() int {
	width := 0
	for _, idx := range []int{
		c.Identifier, c.StudentName, c.Registration, c.Course, c.Module,
		c.SecondModule, c.Shift, c.Date, c.StatusP1, c.StatusP2, c.ItemID,
	} {
		if idx+1 > width {
			width = idx + 1
		}
	}
	return width
}

type Row struct {
	Identifier   string
	StudentName  string
	Registration string
	Course       string
	Module       string
	SecondModule string
	Shift        string
	Date         string
	StatusP1     string
	StatusP2     string
	ItemID       string
}

// NewRow extracts the positional fields of record. ItemID is trimmed, every
// other field is kept verbatim.
func NewRow(record []string, cols Columns) (Row, error) {
	if len(record) < cols.Width() {
		return Row{}, ErrShortRecord
	}

	return Row{
		Identifier:   record[cols.Identifier],
		StudentName:  record[cols.StudentName],
		Registration: record[cols.Registration],
		Course:       record[cols.Course],
		Module:       record[cols.Module],
		SecondModule: record[cols.SecondModule],
		Shift:        record[cols.Shift],
		Date:         record[cols.Date],
		StatusP1:     record[cols.StatusP1],
		StatusP2:     record[cols.StatusP2],
		ItemID:       strings.TrimSpace(record[cols.ItemID]),
	}, nil
}
