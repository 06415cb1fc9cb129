// Package service provides identifier and token generation for card records.
package service

import (
	"github.com/google/uuid"
)

// IDGenerator generates record identifiers.
type IDGenerator interface {
	NewID() (uuid.UUID, error)
}

// TokenGenerator generates opaque card tokens.
type TokenGenerator interface {
	NewToken() (string, error)
}
