package domain

import (
	"strings"
)

// NormalizedPan is a PAN reduced to its digits together with its display fields.
type NormalizedPan struct {
	Digits string
	BIN    string
	Last4  string
}

// NormalizePan strips every non-digit from raw, enforces the minimum length and
// truncates to MaxPanDigits. When requireLuhn is set the digits must pass the
// Luhn check. Normalizing an already normalized PAN returns it unchanged.
func NormalizePan(raw string, requireLuhn bool) (NormalizedPan, error) {
	digits := DigitsOnly(raw)
	if len(digits) < MinPanDigits {
		return NormalizedPan{}, ErrInvalidPanLength
	}
	if len(digits) > MaxPanDigits {
		digits = digits[:MaxPanDigits]
	}
	if requireLuhn && !LuhnValid(digits) {
		return NormalizedPan{}, ErrInvalidPanChecksum
	}

	binLen := min(max(len(digits)-4, MinBINLength), MaxBINLength)

	return NormalizedPan{
		Digits: digits,
		BIN:    digits[:binLen],
		Last4:  digits[len(digits)-4:],
	}, nil
}

// DigitsOnly returns s with every character outside 0-9 removed.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// LuhnValid reports whether digits pass the Luhn (mod 10) check.
func LuhnValid(digits string) bool {
	if len(digits) < 2 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

// Masked renders the PAN as BIN, asterisks and last four digits.
func (p NormalizedPan) Masked() string {
	hidden := len(p.Digits) - len(p.BIN) - len(p.Last4)
	if hidden < 0 {
		hidden = 0
	}
	return p.BIN + strings.Repeat("*", hidden) + p.Last4
}
