package domain

import (
	"github.com/allisson/cardvault/internal/errors"
)

// Cryptographic error definitions. Key material errors surface at startup and
// are configuration mistakes. Sealing and opening failures are server faults.
var (
	// ErrUnsupportedAlgorithm indicates the requested AEAD algorithm is not supported.
	ErrUnsupportedAlgorithm = errors.WithCode(
		errors.ErrInvalidInput,
		"unsupported_algorithm",
		"unsupported algorithm",
	)

	// ErrInvalidKeyEncoding indicates key material is not valid hex (or base64 when KMS-wrapped).
	ErrInvalidKeyEncoding = errors.WithCode(
		errors.ErrInvalidInput,
		"invalid_key_encoding",
		"invalid key encoding",
	)

	// ErrInvalidKeySize indicates the AEAD key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.WithCode(errors.ErrInvalidInput, "invalid_key_size", "invalid key size")

	// ErrMACKeyTooShort indicates the MAC key is shorter than 16 bytes.
	ErrMACKeyTooShort = errors.WithCode(errors.ErrInvalidInput, "mac_key_too_short", "mac key too short")

	// ErrEncryptionFailed indicates the random source or cipher failed while sealing.
	ErrEncryptionFailed = errors.WithCode(errors.ErrInternal, "encryption_failed", "encryption failed")

	// ErrDecryptionFailed indicates a blob could not be authenticated or decoded.
	//
	// Wrong key, tampering, truncation and bad encoding are deliberately
	// indistinguishable to the caller.
	ErrDecryptionFailed = errors.WithCode(errors.ErrInternal, "decryption_failed", "decryption failed")
)
