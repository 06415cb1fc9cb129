package domain

import (
	"context"
	"encoding/hex"
	"fmt"
)

// KMSKeeper is the subset of *secrets.Keeper used to unwrap key material.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// CardKeys holds the plaintext key material for the card crypto engine.
// Call Close when the keys are no longer needed.
type CardKeys struct {
	MACKey    []byte
	AEADKey   []byte
	Algorithm Algorithm
}

// NewCardKeys validates raw key material and returns copies of it.
func NewCardKeys(macKey, aeadKey []byte, alg Algorithm) (*CardKeys, error) {
	if len(macKey) < MinMACKeySize {
		return nil, fmt.Errorf(
			"%w: got %d bytes, need at least %d",
			ErrMACKeyTooShort,
			len(macKey),
			MinMACKeySize,
		)
	}
	if len(aeadKey) != AEADKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrInvalidKeySize, len(aeadKey), AEADKeySize)
	}
	switch alg {
	case AESGCM, ChaCha20:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}

	return &CardKeys{
		MACKey:    append([]byte(nil), macKey...),
		AEADKey:   append([]byte(nil), aeadKey...),
		Algorithm: alg,
	}, nil
}

// Close zeroes the key material.
func (k *CardKeys) Close() {
	Zero(k.MACKey)
	Zero(k.AEADKey)
}

// DecodeHexKey decodes hex key material, failing on odd length or invalid characters.
func DecodeHexKey(name, value string) ([]byte, error) {
	key, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidKeyEncoding, name, err)
	}
	return key, nil
}
