package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// TokenRandomBytes is the number of random bytes behind every token.
const TokenRandomBytes = 12

type hexTokenGenerator struct {
	prefix string
	rand   io.Reader
}

// NewTokenGenerator creates a TokenGenerator producing prefix followed by 24
// lowercase hex characters. A nil random source means crypto/rand.
func NewTokenGenerator(prefix string, random io.Reader) TokenGenerator {
	if random == nil {
		random = rand.Reader
	}
	return &hexTokenGenerator{prefix: prefix, rand: random}
}

// NewToken returns a new token such as "tok_9f86d081884c7d659a2feaa0".
func (g *hexTokenGenerator) NewToken() (string, error) {
	b := make([]byte, TokenRandomBytes)
	if _, err := io.ReadFull(g.rand, b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return g.prefix + hex.EncodeToString(b), nil
}
