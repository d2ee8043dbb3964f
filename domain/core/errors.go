package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrColumnNotFound  = errors.New("column not found")
	ErrEmptyDataset    = errors.New("dataset has no columns")
	ErrRaggedDataset   = errors.New("dataset is not rectangular")
	ErrBadOutputPath   = errors.New("bad output path")
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// NewColumnNotFoundError wraps ErrColumnNotFound with the column name.
func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// NewBadOutputPathError wraps ErrBadOutputPath with the offending path.
func NewBadOutputPathError(path string) error {
	return fmt.Errorf("%w: %s", ErrBadOutputPath, path)
}

// IsColumnNotFound reports whether err is a missing-column failure.
func IsColumnNotFound(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}
