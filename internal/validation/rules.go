// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/cardvault/internal/errors"
)

var (
	// panCharsRegex accepts digits plus the separators people type in card numbers.
	panCharsRegex = regexp.MustCompile(`^[0-9 .\-]+$`)

	// cardTokenRegex matches an optional short prefix followed by 24 hex characters.
	cardTokenRegex = regexp.MustCompile(`^[A-Za-z0-9_\-]{0,8}[0-9a-f]{24}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// PanCharacters rejects card numbers containing anything other than digits,
// spaces, dots and dashes. Length is checked by the normalizer.
var PanCharacters = validation.NewStringRuleWithError(
	func(s string) bool {
		return panCharsRegex.MatchString(s)
	},
	validation.NewError("validation_pan_characters", "must contain only digits and separators"),
)

// CardToken validates the shape of an issued card token.
var CardToken = validation.NewStringRuleWithError(
	func(s string) bool {
		return cardTokenRegex.MatchString(s)
	},
	validation.NewError("validation_card_token", "must be a valid card token"),
)
