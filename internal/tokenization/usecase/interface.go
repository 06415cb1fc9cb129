// Package usecase defines interfaces and implementations for card tokenization use cases.
package usecase

import (
	"context"

	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

// CardTokenRepository defines the storage contract for card records.
type CardTokenRepository interface {
	// FindByFingerprint returns ErrCardNotFound when no record has the fingerprint.
	FindByFingerprint(ctx context.Context, fingerprint string) (*tokenizationDomain.CardToken, error)

	// FindByToken returns ErrCardNotFound when no record has the token.
	FindByToken(ctx context.Context, token string) (*tokenizationDomain.CardToken, error)

	// InsertIfAbsent writes card unless a record with the same fingerprint or token
	// exists, in which case it returns InsertOutcomeLostRace and no error.
	InsertIfAbsent(
		ctx context.Context,
		card *tokenizationDomain.CardToken,
	) (tokenizationDomain.InsertOutcome, error)
}

// CardUseCase defines the card tokenization operations.
type CardUseCase interface {
	// CreateOrGet returns the existing record for the card or creates one. Exactly one
	// record exists per normalized PAN, even under concurrent calls.
	CreateOrGet(
		ctx context.Context,
		input tokenizationDomain.CardInput,
	) (*tokenizationDomain.CreateOrGetResult, error)

	// Lookup reports whether a card exists without creating it. An absent card is
	// (nil, false, nil); an invalid PAN is a validation error.
	Lookup(ctx context.Context, pan string) (*tokenizationDomain.CardRef, bool, error)

	// Reveal returns the PAN behind a token.
	Reveal(ctx context.Context, token string) (string, error)
}
