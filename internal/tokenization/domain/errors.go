package domain

import (
	"github.com/allisson/cardvault/internal/errors"
)

var (
	// ErrInvalidPanLength indicates the PAN has fewer than 12 digits after normalization.
	ErrInvalidPanLength = errors.WithCode(
		errors.ErrInvalidInput,
		"invalid_pan_length",
		"pan must contain at least 12 digits",
	)

	// ErrInvalidPanChecksum indicates the PAN fails the Luhn check.
	ErrInvalidPanChecksum = errors.WithCode(
		errors.ErrInvalidInput,
		"invalid_pan_checksum",
		"pan failed luhn validation",
	)

	// ErrInvalidExpiry indicates the expiry month or year is out of range.
	ErrInvalidExpiry = errors.WithCode(errors.ErrInvalidInput, "invalid_expiry", "invalid expiry date")

	// ErrInvalidBrand indicates the brand is longer than the stored column.
	ErrInvalidBrand = errors.WithCode(errors.ErrInvalidInput, "invalid_brand", "brand is too long")

	// ErrCardNotFound indicates no card exists for a fingerprint or token.
	ErrCardNotFound = errors.WithCode(errors.ErrNotFound, "card_not_found", "card not found")

	// ErrConflictRetryExhausted indicates an insert lost a uniqueness race but the
	// winning record could not be read back. This is a store integrity failure.
	ErrConflictRetryExhausted = errors.WithCode(
		errors.ErrConflict,
		"store_integrity",
		"card insert conflicted but no existing record was found",
	)
)
