package diario

import "errors"

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrShortRecord  = errors.New("record has too few fields")
	ErrEmptyItemID  = errors.New("empty item id")
	ErrDuplicateRow = errors.New("item already migrated")
)
