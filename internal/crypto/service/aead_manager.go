package service

import (
	"io"

	cryptoDomain "github.com/allisson/cardvault/internal/crypto/domain"
)

// AEADManagerService implements the AEADManager interface for creating AEAD cipher instances.
type AEADManagerService struct {
	rand io.Reader
}

// NewAEADManager creates a new AEADManagerService whose ciphers draw nonces from
// random. A nil random source means crypto/rand.
func NewAEADManager(random io.Reader) *AEADManagerService {
	return &AEADManagerService{rand: random}
}

// CreateCipher creates an AEAD cipher instance for the specified algorithm.
// Returns ErrInvalidKeySize if key is not 32 bytes or ErrUnsupportedAlgorithm if algorithm is unknown.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	if len(key) != cryptoDomain.AEADKeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	switch alg {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key, am.rand)
	case cryptoDomain.ChaCha20:
		return NewChaCha20Poly1305(key, am.rand)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
