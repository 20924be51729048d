package diario_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	app "github.com/sped/diario-import/internal/application/diario"
	domain "github.com/sped/diario-import/internal/domain/diario"
)

var testConfig = app.Config{
	StudentID: uuid.MustParse("b5a6a7f1-4eac-4dcf-9e93-186f91c60738"),
	ClassID:   uuid.MustParse("5fcb344f-b983-439f-a858-2b1289ef9638"),
}

type fakeSource struct {
	files map[string]string
	err   error
}

func (f *fakeSource) Open(ctx context.Context, sourcePath string) (io.ReadCloser, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.files[sourcePath]
	if !ok {
		return nil, errors.New("file not found")
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

type fakeSink struct {
	created map[string]*bytes.Buffer
	err     error
}

func (f *fakeSink) Create(ctx context.Context, targetPath string) (io.WriteCloser, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.created == nil {
		f.created = map[string]*bytes.Buffer{}
	}
	buf := &bytes.Buffer{}
	f.created[targetPath] = buf
	return nopWriteCloser{buf}, nil
}

// semicolonDecoder splits lines on ';' without any quoting rules.
type semicolonDecoder struct{}

func (semicolonDecoder) Decode(ctx context.Context, name string, r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	records := make([][]string, 0)
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		records = append(records, strings.Split(line, ";"))
	}
	return records, nil
}

// itemRenderer writes one line per entry with the fields under test.
type itemRenderer struct{}

func (itemRenderer) Render(w io.Writer, entries []domain.Entry) error {
	if _, err := io.WriteString(w, "BEGIN;\n"); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s %s %s %s\n", e.ItemID, domain.FormatTimestamp(e.Date), e.P1, e.P2); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "COMMIT;\n")
	return err
}

func attendanceLine(itemID, date, p1, p2 string) string {
	return strings.Join([]string{
		"RA-56515A" + date, "Agatha Souza", "RA-56515", "Técnico em Enfermagem", "25II", "RTD", "Tarde",
		date, p1, p2, "", itemID,
	}, ";")
}
