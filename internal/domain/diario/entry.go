package diario

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one diario row to be inserted.
type Entry struct {
	StudentID uuid.UUID
	ClassID   uuid.UUID
	ItemID    string
	Date      time.Time
	P1        Status
	P2        Status
}

// NewEntry builds the entry for row, or reports why the row must be skipped.
func NewEntry(studentID, classID uuid.UUID, row Row, migrated DedupSet) (Entry, error) {
	if row.ItemID == "" {
		return Entry{}, ErrEmptyItemID
	}
	if migrated.Contains(row.ItemID) {
		return Entry{}, ErrDuplicateRow
	}

	date, err := ParseTimestamp(row.Date)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		StudentID: studentID,
		ClassID:   classID,
		ItemID:    row.ItemID,
		Date:      date,
		P1:        MapStatus(row.StatusP1),
		P2:        MapStatus(row.StatusP2),
	}, nil
}
