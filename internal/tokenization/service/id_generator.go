package service

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

type uuidV7Generator struct {
	rand io.Reader
}

// NewIDGenerator creates an IDGenerator producing time-ordered UUIDv7 values.
// A nil random source means the uuid package default.
func NewIDGenerator(random io.Reader) IDGenerator {
	return &uuidV7Generator{rand: random}
}

// NewID returns a new UUIDv7.
func (g *uuidV7Generator) NewID() (uuid.UUID, error) {
	var id uuid.UUID
	var err error
	if g.rand == nil {
		id, err = uuid.NewV7()
	} else {
		id, err = uuid.NewV7FromReader(g.rand)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate id: %w", err)
	}
	return id, nil
}
