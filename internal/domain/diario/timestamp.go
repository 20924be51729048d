package diario

import (
	"fmt"
	"time"
)

const (
	// SourceLayout is the wall-clock format of the attendance export.
	SourceLayout = "02/01/2006 15:04"
	// TimestampLayout is the format written into the data column.
	TimestampLayout = "2006-01-02 15:04:05-0700"
)

// SourceZone is the fixed UTC-3 offset the export is recorded in.
var SourceZone = time.FixedZone("BRT", -3*60*60)

// ParseTimestamp reads a DD/MM/YYYY HH:MM value recorded at SourceZone and
// returns the same instant in UTC. Every field must be zero padded.
func ParseTimestamp(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(SourceLayout, raw, SourceZone)
	// Parse accepts a one-digit hour and collapsed spaces; the round trip does not.
	if err != nil || t.Format(SourceLayout) != raw {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t.UTC(), nil
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ConvertTimestamp is ParseTimestamp followed by FormatTimestamp.
func ConvertTimestamp(raw string) (string, error) {
	t, err := ParseTimestamp(raw)
	if err != nil {
		return "", err
	}
	return FormatTimestamp(t), nil
}
