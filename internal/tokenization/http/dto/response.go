package dto

import (
	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

// CreateCardResponse represents the result of a create-or-get call.
type CreateCardResponse struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	Last4     string `json:"last4"`
	Duplicate bool   `json:"duplicate"`
}

// MapResultToCreateCardResponse converts a create-or-get result to an API response.
func MapResultToCreateCardResponse(result *tokenizationDomain.CreateOrGetResult) CreateCardResponse {
	return CreateCardResponse{
		ID:        result.ID.String(),
		Token:     result.Token,
		Last4:     result.Last4,
		Duplicate: result.Duplicate,
	}
}

// LookupCardResponse represents the result of a lookup. Only Exists is set
// when the card is unknown.
type LookupCardResponse struct {
	Exists bool   `json:"exists"`
	ID     string `json:"id,omitempty"`
	Token  string `json:"token,omitempty"`
	Last4  string `json:"last4,omitempty"`
}

// MapRefToLookupCardResponse converts a lookup result to an API response.
func MapRefToLookupCardResponse(ref *tokenizationDomain.CardRef, found bool) LookupCardResponse {
	if !found || ref == nil {
		return LookupCardResponse{Exists: false}
	}
	return LookupCardResponse{
		Exists: true,
		ID:     ref.ID.String(),
		Token:  ref.Token,
		Last4:  ref.Last4,
	}
}

// RevealCardResponse carries a decrypted PAN.
type RevealCardResponse struct {
	Token string `json:"token"`
	Pan   string `json:"pan"`
}
