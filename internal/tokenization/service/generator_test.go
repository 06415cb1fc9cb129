package service

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestTokenGenerator_NewToken(t *testing.T) {
	t.Run("Success_DefaultFormat", func(t *testing.T) {
		gen := NewTokenGenerator("tok_", nil)

		token, err := gen.NewToken()
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^tok_[0-9a-f]{24}$`), token)
	})

	t.Run("Success_UniqueTokens", func(t *testing.T) {
		gen := NewTokenGenerator("tok_", nil)
		seen := make(map[string]struct{})
		for range 1000 {
			token, err := gen.NewToken()
			require.NoError(t, err)
			_, dup := seen[token]
			require.False(t, dup)
			seen[token] = struct{}{}
		}
	})

	t.Run("Success_InjectedRandomIsDeterministic", func(t *testing.T) {
		seed := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 255}
		gen := NewTokenGenerator("ct_", bytes.NewReader(seed))

		token, err := gen.NewToken()
		require.NoError(t, err)
		assert.Equal(t, "ct_000102030405060708090aff", token)
	})

	t.Run("Error_RandomSourceFailure", func(t *testing.T) {
		gen := NewTokenGenerator("tok_", failingReader{})

		_, err := gen.NewToken()
		assert.Error(t, err)
	})

	t.Run("Error_ShortRandomSource", func(t *testing.T) {
		gen := NewTokenGenerator("tok_", bytes.NewReader([]byte{1, 2, 3}))

		_, err := gen.NewToken()
		assert.Error(t, err)
	})
}

func TestIDGenerator_NewID(t *testing.T) {
	t.Run("Success_Version7", func(t *testing.T) {
		gen := NewIDGenerator(nil)

		id, err := gen.NewID()
		require.NoError(t, err)
		assert.Equal(t, 7, int(id.Version()))
	})

	t.Run("Success_Unique", func(t *testing.T) {
		gen := NewIDGenerator(nil)
		id1, err := gen.NewID()
		require.NoError(t, err)
		id2, err := gen.NewID()
		require.NoError(t, err)
		assert.NotEqual(t, id1, id2)
	})

	t.Run("Error_RandomSourceFailure", func(t *testing.T) {
		gen := NewIDGenerator(failingReader{})

		_, err := gen.NewID()
		assert.Error(t, err)
	})
}
