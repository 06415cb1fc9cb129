package service

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func newTestKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func aeadConstructors() map[string]func(key []byte) (AEAD, error) {
	return map[string]func(key []byte) (AEAD, error){
		"AESGCM": func(key []byte) (AEAD, error) {
			return NewAESGCM(key, nil)
		},
		"ChaCha20Poly1305": func(key []byte) (AEAD, error) {
			return NewChaCha20Poly1305(key, nil)
		},
	}
}

func TestAEAD_InvalidKeySize(t *testing.T) {
	for name, newCipher := range aeadConstructors() {
		t.Run("Error_"+name+"ShortKey", func(t *testing.T) {
			cipher, err := newCipher(make([]byte, 16))
			assert.Error(t, err)
			assert.Nil(t, cipher)
		})
	}
}

func TestAEAD_EncryptDecrypt(t *testing.T) {
	for name, newCipher := range aeadConstructors() {
		cipher, err := newCipher(newTestKey(t))
		require.NoError(t, err)

		t.Run("Success_"+name+"RoundTripWithAAD", func(t *testing.T) {
			plaintext := []byte("4111111111111111")
			aad := []byte("card")

			ciphertext, nonce, err := cipher.Encrypt(plaintext, aad)
			require.NoError(t, err)
			assert.Len(t, nonce, 12)
			assert.Len(t, ciphertext, len(plaintext)+16)

			decrypted, err := cipher.Decrypt(ciphertext, nonce, aad)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(plaintext, decrypted))
		})

		t.Run("Success_"+name+"UniqueNonces", func(t *testing.T) {
			_, nonce1, err := cipher.Encrypt([]byte("test"), nil)
			require.NoError(t, err)
			_, nonce2, err := cipher.Encrypt([]byte("test"), nil)
			require.NoError(t, err)

			assert.NotEqual(t, nonce1, nonce2)
		})

		t.Run("Error_"+name+"WrongAAD", func(t *testing.T) {
			ciphertext, nonce, err := cipher.Encrypt([]byte("test"), []byte("a"))
			require.NoError(t, err)

			decrypted, err := cipher.Decrypt(ciphertext, nonce, []byte("b"))
			assert.Error(t, err)
			assert.Nil(t, decrypted)
		})

		t.Run("Error_"+name+"TamperedCiphertext", func(t *testing.T) {
			ciphertext, nonce, err := cipher.Encrypt([]byte("test"), nil)
			require.NoError(t, err)
			ciphertext[0] ^= 1

			decrypted, err := cipher.Decrypt(ciphertext, nonce, nil)
			assert.Error(t, err)
			assert.Nil(t, decrypted)
		})

		t.Run("Error_"+name+"ShortNonce", func(t *testing.T) {
			ciphertext, _, err := cipher.Encrypt([]byte("test"), nil)
			require.NoError(t, err)

			decrypted, err := cipher.Decrypt(ciphertext, make([]byte, 4), nil)
			assert.Error(t, err)
			assert.Nil(t, decrypted)
		})
	}
}

func TestAEAD_DeterministicWithInjectedRandom(t *testing.T) {
	key := newTestKey(t)
	seed := bytes.Repeat([]byte{0x42}, 12)

	cipher1, err := NewAESGCM(key, bytes.NewReader(seed))
	require.NoError(t, err)
	cipher2, err := NewAESGCM(key, bytes.NewReader(seed))
	require.NoError(t, err)

	ciphertext1, nonce1, err := cipher1.Encrypt([]byte("4111111111111111"), nil)
	require.NoError(t, err)
	ciphertext2, nonce2, err := cipher2.Encrypt([]byte("4111111111111111"), nil)
	require.NoError(t, err)

	assert.Equal(t, seed, nonce1)
	assert.Equal(t, nonce1, nonce2)
	assert.Equal(t, ciphertext1, ciphertext2)
}

func TestAEAD_RandomSourceFailure(t *testing.T) {
	for _, alg := range []string{"AESGCM", "ChaCha20Poly1305"} {
		t.Run("Error_"+alg, func(t *testing.T) {
			var cipher AEAD
			var err error
			if alg == "AESGCM" {
				cipher, err = NewAESGCM(newTestKey(t), failingReader{})
			} else {
				cipher, err = NewChaCha20Poly1305(newTestKey(t), failingReader{})
			}
			require.NoError(t, err)

			_, _, err = cipher.Encrypt([]byte("test"), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to generate nonce")
		})
	}
}
