// Package domain defines the key material and algorithms used to protect card data.
//
// Two keys are involved: a MAC key that derives deterministic fingerprints for
// equality lookup, and an AEAD key that encrypts the PAN for authorized retrieval.
package domain

// Algorithm represents the AEAD algorithm used to encrypt PANs.
type Algorithm string

const (
	// AESGCM represents AES-256-GCM.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents ChaCha20-Poly1305.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

const (
	// AEADKeySize is the exact AEAD key size in bytes.
	AEADKeySize = 32

	// MinMACKeySize is the minimum MAC key size in bytes.
	MinMACKeySize = 16

	// DefaultMACKeySize is the size of generated MAC keys.
	DefaultMACKeySize = 32

	// NonceSize is the AEAD nonce size in bytes for both supported algorithms.
	NonceSize = 12
)
