package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	cryptoDomain "github.com/allisson/cardvault/internal/crypto/domain"
)

// CardCipherService implements CardCipher with HMAC-SHA256 fingerprints and an AEAD.
type CardCipherService struct {
	macKey []byte
	aead   AEAD
}

// NewCardCipher builds the engine from validated key material. The keys are
// copied, so the caller may Close them afterwards.
func NewCardCipher(keys *cryptoDomain.CardKeys, manager AEADManager) (*CardCipherService, error) {
	if len(keys.MACKey) < cryptoDomain.MinMACKeySize {
		return nil, cryptoDomain.ErrMACKeyTooShort
	}

	aead, err := manager.CreateCipher(keys.AEADKey, keys.Algorithm)
	if err != nil {
		return nil, err
	}

	return &CardCipherService{
		macKey: append([]byte(nil), keys.MACKey...),
		aead:   aead,
	}, nil
}

// Fingerprint returns the 64-character lowercase hex HMAC-SHA256 of pan.
func (c *CardCipherService) Fingerprint(pan string) string {
	mac := hmac.New(sha256.New, c.macKey)
	mac.Write([]byte(pan))
	return hex.EncodeToString(mac.Sum(nil))
}

// Encrypt seals pan and returns base64(nonce || ciphertext || tag).
func (c *CardCipherService) Encrypt(pan string) (string, error) {
	ciphertext, nonce, err := c.aead.Encrypt([]byte(pan), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	blob := make([]byte, 0, len(nonce)+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt opens a blob produced by Encrypt.
func (c *CardCipherService) Decrypt(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}
	if len(raw) <= cryptoDomain.NonceSize {
		return "", cryptoDomain.ErrDecryptionFailed
	}

	plaintext, err := c.aead.Decrypt(raw[cryptoDomain.NonceSize:], raw[:cryptoDomain.NonceSize], nil)
	if err != nil {
		return "", cryptoDomain.ErrDecryptionFailed
	}
	defer cryptoDomain.Zero(plaintext)

	return string(plaintext), nil
}
