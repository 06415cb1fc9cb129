// Package domain defines the card token record and the rules for normalizing PANs.
package domain

const (
	// MinPanDigits is the minimum number of digits in a normalized PAN.
	MinPanDigits = 12

	// MaxPanDigits is the number of digits kept after normalization. Longer inputs are truncated.
	MaxPanDigits = 16

	// MinBINLength and MaxBINLength bound the issuer identification prefix.
	MinBINLength = 6
	MaxBINLength = 8

	// MaxBrandLength matches the brand column width.
	MaxBrandLength = 32

	// MinExpiryYear is the oldest accepted expiry year.
	MinExpiryYear = 2000
)
