package file_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	infrafile "github.com/sped/diario-import/internal/infrastructure/file"
)

func TestLocalSourceOpenRelative(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "migrated.json"), []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	source := infrafile.NewLocalSource(dir)
	r, err := source.Open(context.Background(), "migrated.json")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("unexpected content: %s", data)
	}
}

func TestLocalSourceOpenMissing(t *testing.T) {
	t.Parallel()

	source := infrafile.NewLocalSource(t.TempDir())
	if _, err := source.Open(context.Background(), "missing.csv"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLocalSourceCreateNestedAbsolute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "selects", "insert_diario.sql")

	source := infrafile.NewLocalSource("unused")
	w, err := source.Create(context.Background(), target)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := io.WriteString(w, "BEGIN;\nCOMMIT;\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "BEGIN;\nCOMMIT;\n" {
		t.Fatalf("unexpected content: %s", data)
	}
}

func TestNewLocalSourceDefaultsBaseDir(t *testing.T) {
	t.Parallel()

	if got := infrafile.NewLocalSource("").BaseDir; got != "." {
		t.Fatalf("expected '.', got %q", got)
	}
}
