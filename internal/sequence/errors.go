package sequence

import (
	"errors"
	"fmt"
)

// SequenceError represents a defined failure of a sequence operation.
//
// The C-era behaviors this package replaces (division by zero, negative
// malloc sizes) are undefined; here every bad input maps to a typed,
// recoverable error instead.
type SequenceError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Size is the requested or supplied size, when relevant.
	Size int
}

// ErrorCode categorizes sequence errors.
type ErrorCode string

const (
	// ErrCodeInvalidSize indicates a non-positive requested size.
	ErrCodeInvalidSize ErrorCode = "INVALID_SIZE"

	// ErrCodeEmptySequence indicates an average over zero elements.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"

	// ErrCodeSizeLimit indicates a request beyond the generator's MaxSize.
	ErrCodeSizeLimit ErrorCode = "SIZE_LIMIT"
)

// Error implements the error interface.
func (e *SequenceError) Error() string {
	if e.Size != 0 {
		return fmt.Sprintf("%s: %s (size=%d)", e.Code, e.Message, e.Size)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidSize returns true if the error is an invalid-size error.
// Uses errors.As to handle wrapped errors.
func IsInvalidSize(err error) bool {
	var se *SequenceError
	if errors.As(err, &se) {
		return se.Code == ErrCodeInvalidSize
	}
	return false
}

// IsEmptySequence returns true if the error is an empty-sequence error.
func IsEmptySequence(err error) bool {
	var se *SequenceError
	if errors.As(err, &se) {
		return se.Code == ErrCodeEmptySequence
	}
	return false
}

// IsSizeLimit returns true if the error is a size-limit error.
func IsSizeLimit(err error) bool {
	var se *SequenceError
	if errors.As(err, &se) {
		return se.Code == ErrCodeSizeLimit
	}
	return false
}

// NewInvalidSizeError creates a SequenceError for a non-positive size.
func NewInvalidSizeError(size int) *SequenceError {
	return &SequenceError{
		Code:    ErrCodeInvalidSize,
		Message: "requested size must be at least 1",
		Size:    size,
	}
}

// NewEmptySequenceError creates a SequenceError for an empty average.
func NewEmptySequenceError() *SequenceError {
	return &SequenceError{
		Code:    ErrCodeEmptySequence,
		Message: "cannot average an empty sequence",
	}
}

// NewSizeLimitError creates a SequenceError for a request beyond MaxSize.
func NewSizeLimitError(size, limit int) *SequenceError {
	return &SequenceError{
		Code:    ErrCodeSizeLimit,
		Message: fmt.Sprintf("requested size exceeds limit (%d > %d)", size, limit),
		Size:    size,
	}
}
