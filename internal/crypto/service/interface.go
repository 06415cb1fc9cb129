// Package service provides the cryptographic primitives behind card tokenization:
// AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), HMAC fingerprints and the
// loading of key material, optionally unwrapped through a KMS.
package service

import (
	cryptoDomain "github.com/allisson/cardvault/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// CardCipher protects PANs: deterministic fingerprints for lookup and
// randomized encryption for storage.
type CardCipher interface {
	// Fingerprint returns the lowercase hex HMAC-SHA256 of pan.
	Fingerprint(pan string) string

	// Encrypt returns base64(nonce || ciphertext || tag).
	Encrypt(pan string) (string, error)

	// Decrypt reverses Encrypt. Any failure is ErrDecryptionFailed.
	Decrypt(blob string) (string, error)
}
