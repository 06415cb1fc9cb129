// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
	customValidation "github.com/allisson/cardvault/internal/validation"
)

// CreateCardRequest contains the parameters for tokenizing a card.
type CreateCardRequest struct {
	CardNumber  string         `json:"card_number"`
	Brand       string         `json:"brand"`
	ExpiryMonth int            `json:"expiry_month"`
	ExpiryYear  int            `json:"expiry_year"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Validate checks the shape of the request. PAN length and checksum are left to
// the normalizer so the error codes stay the same across entry points.
func (r *CreateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CardNumber,
			validation.Required,
			customValidation.NotBlank,
			customValidation.PanCharacters,
		),
		validation.Field(&r.Brand,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, tokenizationDomain.MaxBrandLength),
		),
		validation.Field(&r.ExpiryMonth,
			validation.Required,
			validation.Min(1),
			validation.Max(12),
		),
		validation.Field(&r.ExpiryYear,
			validation.Required,
			validation.Min(tokenizationDomain.MinExpiryYear),
		),
	)
}

// ToCardInput maps the request to the use case input.
func (r *CreateCardRequest) ToCardInput() tokenizationDomain.CardInput {
	return tokenizationDomain.CardInput{
		Pan:         r.CardNumber,
		Brand:       r.Brand,
		ExpiryMonth: r.ExpiryMonth,
		ExpiryYear:  r.ExpiryYear,
		Metadata:    r.Metadata,
	}
}

// RevealCardRequest contains the token whose PAN should be decrypted.
type RevealCardRequest struct {
	Token string `json:"token"`
}

// Validate checks if the reveal request is valid.
func (r *RevealCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NoWhitespace,
			customValidation.CardToken,
		),
	)
}
