package diario_test

import (
	"errors"
	"testing"

	domain "github.com/sped/diario-import/internal/domain/diario"
)

func TestConvertTimestampMidnight(t *testing.T) {
	t.Parallel()

	got, err := domain.ConvertTimestamp("30/07/2025 00:00")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "2025-07-30 03:00:00+0000" {
		t.Fatalf("unexpected timestamp: %s", got)
	}
}

func TestConvertTimestampCrossesDay(t *testing.T) {
	t.Parallel()

	got, err := domain.ConvertTimestamp("31/12/2024 22:15")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "2025-01-01 01:15:00+0000" {
		t.Fatalf("unexpected timestamp: %s", got)
	}
}

func TestParseTimestampInvalid(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"30-07-2025", "", "Data", "2025-07-30 00:00", "30/07/2025",
		"01/08/2025 9:05", "1/08/2025 10:00", "01/8/2025 10:00", "01/08/2025 09:5", "01/08/2025  9:05",
	} {
		if _, err := domain.ParseTimestamp(raw); !errors.Is(err, domain.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", raw, err)
		}
	}
}

func TestParseTimestampReturnsUTC(t *testing.T) {
	t.Parallel()

	got, err := domain.ParseTimestamp("01/08/2025 13:45")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got.Location().String() != "UTC" {
		t.Fatalf("expected UTC location, got %s", got.Location())
	}
	if got.Hour() != 16 || got.Minute() != 45 {
		t.Fatalf("unexpected time: %s", got)
	}
}
