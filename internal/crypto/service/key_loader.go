package service

import (
	"context"
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/allisson/cardvault/internal/crypto/domain"
)

// KeySource is the configured, still encoded, card key material.
type KeySource struct {
	MACKey    string
	AEADKey   string
	Algorithm string
	// KMSKeyURI switches the encoding of MACKey and AEADKey from hex to
	// base64 KMS ciphertext.
	KMSKeyURI string
}

// KeyLoader decodes and validates card key material.
type KeyLoader struct {
	kmsService KMSService
}

// NewKeyLoader creates a KeyLoader. kmsService may be nil when keys are never KMS-wrapped.
func NewKeyLoader(kmsService KMSService) *KeyLoader {
	return &KeyLoader{kmsService: kmsService}
}

// Load returns validated CardKeys. Malformed encodings and wrong sizes fail here,
// before any request is served.
func (l *KeyLoader) Load(ctx context.Context, src KeySource) (*cryptoDomain.CardKeys, error) {
	var macKey, aeadKey []byte
	var err error

	if src.KMSKeyURI == "" {
		macKey, err = cryptoDomain.DecodeHexKey("CARD_MAC_KEY", src.MACKey)
		if err != nil {
			return nil, err
		}
		aeadKey, err = cryptoDomain.DecodeHexKey("CARD_AEAD_KEY", src.AEADKey)
		if err != nil {
			cryptoDomain.Zero(macKey)
			return nil, err
		}
	} else {
		macKey, aeadKey, err = l.unwrap(ctx, src)
		if err != nil {
			return nil, err
		}
	}
	defer cryptoDomain.Zero(macKey)
	defer cryptoDomain.Zero(aeadKey)

	return cryptoDomain.NewCardKeys(macKey, aeadKey, cryptoDomain.Algorithm(src.Algorithm))
}

func (l *KeyLoader) unwrap(ctx context.Context, src KeySource) ([]byte, []byte, error) {
	if l.kmsService == nil {
		return nil, nil, fmt.Errorf("KMS key URI configured without a KMS service")
	}

	keeper, err := l.kmsService.OpenKeeper(ctx, src.KMSKeyURI)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = keeper.Close()
	}()

	macKey, err := decryptKey(ctx, keeper, "CARD_MAC_KEY", src.MACKey)
	if err != nil {
		return nil, nil, err
	}
	aeadKey, err := decryptKey(ctx, keeper, "CARD_AEAD_KEY", src.AEADKey)
	if err != nil {
		cryptoDomain.Zero(macKey)
		return nil, nil, err
	}
	return macKey, aeadKey, nil
}

func decryptKey(ctx context.Context, keeper cryptoDomain.KMSKeeper, name, value string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", cryptoDomain.ErrInvalidKeyEncoding, name, err)
	}
	key, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt %s with KMS: %w", name, err)
	}
	return key, nil
}
