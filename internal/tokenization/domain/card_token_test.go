package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/cardvault/internal/errors"
)

func TestCardInput_Validate(t *testing.T) {
	valid := CardInput{Pan: "4111111111111111", Brand: "VISA", ExpiryMonth: 12, ExpiryYear: 2030}

	t.Run("Success_Valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("Error_MonthOutOfRange", func(t *testing.T) {
		for _, month := range []int{0, 13, -1} {
			input := valid
			input.ExpiryMonth = month
			assert.ErrorIs(t, input.Validate(), ErrInvalidExpiry)
		}
	})

	t.Run("Error_YearTooOld", func(t *testing.T) {
		input := valid
		input.ExpiryYear = 1999
		assert.ErrorIs(t, input.Validate(), ErrInvalidExpiry)
	})

	t.Run("Error_BrandTooLong", func(t *testing.T) {
		input := valid
		input.Brand = "ABCDEFGHIJKLMNOPQRSTUVWXYZABCDEFG"
		assert.ErrorIs(t, input.Validate(), ErrInvalidBrand)
	})
}

func TestCardToken_Ref(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	card := &CardToken{ID: id, Token: "tok_abc", Last4: "1111", Fingerprint: "fp"}

	assert.Equal(t, &CardRef{ID: id, Token: "tok_abc", Last4: "1111"}, card.Ref())
}

func TestInsertOutcome_String(t *testing.T) {
	assert.Equal(t, "inserted", InsertOutcomeInserted.String())
	assert.Equal(t, "lost_race", InsertOutcomeLostRace.String())
	assert.Equal(t, "unknown", InsertOutcome(0).String())
}

func TestErrors_Kinds(t *testing.T) {
	assert.True(t, apperrors.Is(ErrInvalidPanLength, apperrors.ErrInvalidInput))
	assert.True(t, apperrors.Is(ErrInvalidPanChecksum, apperrors.ErrInvalidInput))
	assert.True(t, apperrors.Is(ErrCardNotFound, apperrors.ErrNotFound))
	assert.Equal(t, "invalid_pan_length", apperrors.CodeOf(ErrInvalidPanLength))
	assert.Equal(t, "store_integrity", apperrors.CodeOf(ErrConflictRetryExhausted))
}
