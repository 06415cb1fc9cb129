package domain

import (
	"fmt"

	"github.com/allisson/cardvault/internal/errors"
)

// Parse failures. They are always reported wrapped in a ParseError carrying the
// line number.
var (
	ErrMissingHeader = errors.WithCode(errors.ErrInvalidInput, "missing_header", "missing header")

	ErrInvalidHeaderDate = errors.WithCode(
		errors.ErrInvalidInput,
		"invalid_header_date",
		"header date must be yyyyMMdd",
	)

	ErrInvalidHeaderQuantity = errors.WithCode(
		errors.ErrInvalidInput,
		"invalid_header_quantity",
		"header quantity must be a non-negative integer",
	)

	ErrInvalidIdentifier = errors.WithCode(
		errors.ErrInvalidInput,
		"invalid_identifier",
		"detail line must start with the detail marker",
	)

	ErrPanLength = errors.WithCode(errors.ErrInvalidInput, "pan_length", "pan must contain at least 12 digits")

	ErrInvalidTrailerQuantity = errors.WithCode(
		errors.ErrInvalidInput,
		"invalid_trailer_quantity",
		"trailer count must be a non-negative integer",
	)

	ErrTrailerLotMismatch = errors.WithCode(
		errors.ErrInvalidInput,
		"trailer_lot_mismatch",
		"trailer lot does not match header lot",
	)

	ErrTrailerCountMismatch = errors.WithCode(
		errors.ErrInvalidInput,
		"trailer_count_mismatch",
		"trailer count does not match detail count",
	)

	ErrMissingTrailer = errors.WithCode(errors.ErrInvalidInput, "missing_trailer", "missing trailer")

	// ErrReadFailed wraps I/O failures of the underlying reader.
	ErrReadFailed = errors.WithCode(errors.ErrInvalidInput, "read_failed", "failed to read batch file")
)

// ParseError ties a parse failure to the 1-based line where it happened.
type ParseError struct {
	Line int
	Err  *errors.CodedError
}

// NewParseError creates a ParseError for line.
func NewParseError(line int, err *errors.CodedError) *ParseError {
	return &ParseError{Line: line, Err: err}
}

// Error renders as "code (line N)".
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (line %d)", e.Err.Code, e.Line)
}

// Unwrap returns the coded parse failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Code returns the machine-readable code of the failure.
func (e *ParseError) Code() string {
	return e.Err.Code
}
