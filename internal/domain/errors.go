package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound                  = errors.New("not found")
	ErrInvalidInput              = errors.New("invalid input")
	ErrInvalidTransition         = errors.New("invalid wizard transition")
	ErrBusy                      = errors.New("validation already in progress")
	ErrDecodeFailure             = errors.New("image decode failure")
	ErrFormatOrDimensionMismatch = errors.New("format or dimension mismatch")
	ErrExtractionDegraded        = errors.New("text extraction degraded")
)

// MismatchError carries the detected facts of a banner that matched no
// catalog entry or used a format outside the accepted set.
type MismatchError struct {
	Width  int
	Height int
	Format string
	// Undecodable is set when the image probe could not read the file.
	Undecodable bool
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("banner %s %dx%d matches no accepted standard", e.Format, e.Width, e.Height)
}

func (e *MismatchError) Unwrap() error {
	if e.Undecodable {
		return errors.Join(ErrFormatOrDimensionMismatch, ErrDecodeFailure)
	}
	return ErrFormatOrDimensionMismatch
}
