package domain

import (
	"time"

	"github.com/google/uuid"
)

// CardToken is the persisted record for one distinct card.
//
// Fingerprint and Token are each unique across the store. The PAN itself only
// exists inside EncryptedPan. Records are never mutated after insertion.
type CardToken struct {
	ID           uuid.UUID
	Token        string
	Fingerprint  string
	EncryptedPan string
	BIN          string
	Last4        string
	Brand        string
	ExpiryMonth  int
	ExpiryYear   int
	// Metadata stores optional unencrypted caller data and the batch provenance
	// (lot, sequence) of ingested cards. Never put sensitive data here.
	Metadata  map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref returns the public reference of the record.
func (c *CardToken) Ref() *CardRef {
	return &CardRef{ID: c.ID, Token: c.Token, Last4: c.Last4}
}

// CardRef is what callers get back for an existing card.
type CardRef struct {
	ID    uuid.UUID
	Token string
	Last4 string
}

// CardInput is the input of a create-or-get request.
type CardInput struct {
	Pan         string
	Brand       string
	ExpiryMonth int
	ExpiryYear  int
	Metadata    map[string]any
	// Lot and Sequence record batch provenance when the card comes from a file.
	Lot      string
	Sequence *int
}

// Validate checks the non-PAN fields of the input.
func (i CardInput) Validate() error {
	if i.ExpiryMonth < 1 || i.ExpiryMonth > 12 || i.ExpiryYear < MinExpiryYear {
		return ErrInvalidExpiry
	}
	if len(i.Brand) > MaxBrandLength {
		return ErrInvalidBrand
	}
	return nil
}

// CreateOrGetResult is the outcome of a create-or-get request. Duplicate is true
// when the card already existed, in which case ID and Token are the original ones.
type CreateOrGetResult struct {
	ID        uuid.UUID
	Token     string
	Last4     string
	Duplicate bool
}

// InsertOutcome is the result of an insert-if-absent call.
type InsertOutcome int

const (
	// InsertOutcomeInserted means the record was written.
	InsertOutcomeInserted InsertOutcome = iota + 1
	// InsertOutcomeLostRace means a record with the same fingerprint or token already existed.
	InsertOutcomeLostRace
)

// String returns the outcome name for logs.
func (o InsertOutcome) String() string {
	switch o {
	case InsertOutcomeInserted:
		return "inserted"
	case InsertOutcomeLostRace:
		return "lost_race"
	default:
		return "unknown"
	}
}
