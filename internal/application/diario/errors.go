package diario

import "errors"

var (
	ErrInvalidImportInput      = errors.New("invalid import input")
	ErrInvalidMigratedSnapshot = errors.New("invalid migrated snapshot")
	ErrInvalidAttendance       = errors.New("invalid attendance export")
	ErrOpenImportSource        = errors.New("failed to open import source")
	ErrRenderScript            = errors.New("failed to render sql script")
	ErrWriteScript             = errors.New("failed to write sql script")
)
