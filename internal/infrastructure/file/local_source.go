package file

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalSource resolves relative paths against BaseDir.
type LocalSource struct {
	BaseDir string
}

func NewLocalSource(baseDir string) *LocalSource {
	if baseDir == "" {
		baseDir = "."
	}
	return &LocalSource{BaseDir: baseDir}
}

func (s *LocalSource) Open(ctx context.Context, sourcePath string) (io.ReadCloser, error) {
	_ = ctx

	path := s.resolve(sourcePath)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	return file, nil
}

// Create truncates or creates targetPath, creating missing parent directories.
func (s *LocalSource) Create(ctx context.Context, targetPath string) (io.WriteCloser, error) {
	_ = ctx

	path := s.resolve(targetPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create directory for %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file %s: %w", path, err)
	}
	return file, nil
}

func (s *LocalSource) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.BaseDir, p)
}
