package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrFileNotFound = errors.New("file not found")
	ErrYAMLParse    = errors.New("invalid yaml")
	ErrNotAProject  = errors.New("not a hari project")
)

// ValidationError is returned when an invariant is violated before any I/O
// takes place. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func Validation(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// DirectoryCreationError wraps an OS failure raised while materializing a
// directory or a file under it.
type DirectoryCreationError struct {
	Path string
	Err  error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("failed to create directory for %q: %v", e.Path, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}

// ContractSaveError is the single error shape returned by contract persistence.
type ContractSaveError struct {
	Err error
}

func (e *ContractSaveError) Error() string {
	return "failed to save contract: " + e.Err.Error()
}

func (e *ContractSaveError) Unwrap() error {
	return e.Err
}
