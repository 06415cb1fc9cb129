package mysql

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

var testColumns = []string{
	"id", "token", "fingerprint", "encrypted_pan", "bin", "last4", "brand",
	"expiry_month", "expiry_year", "metadata", "created_at", "updated_at",
}

func newTestCard() *tokenizationDomain.CardToken {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &tokenizationDomain.CardToken{
		ID:           uuid.Must(uuid.NewV7()),
		Token:        "tok_000102030405060708090a0b",
		Fingerprint:  "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08",
		EncryptedPan: "c2VjcmV0",
		BIN:          "41111111",
		Last4:        "1111",
		Brand:        "VISA",
		ExpiryMonth:  12,
		ExpiryYear:   2030,
		Metadata:     map[string]any{"lot": "LOTE0001"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func insertArgs(id []byte, card *tokenizationDomain.CardToken) []driver.Value {
	return []driver.Value{
		id, card.Token, card.Fingerprint, card.EncryptedPan, card.BIN, card.Last4, card.Brand,
		card.ExpiryMonth, card.ExpiryYear, []byte(`{"lot":"LOTE0001"}`), card.CreatedAt, card.UpdatedAt,
	}
}

func TestMySQLCardTokenRepository_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	insertQuery := regexp.QuoteMeta("INSERT INTO card_tokens (")

	t.Run("Success_Inserted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		card := newTestCard()
		id, err := card.ID.MarshalBinary()
		require.NoError(t, err)
		mock.ExpectExec(insertQuery).
			WithArgs(insertArgs(id, card)...).
			WillReturnResult(sqlmock.NewResult(0, 1))

		outcome, err := NewMySQLCardTokenRepository(db).InsertIfAbsent(ctx, card)
		require.NoError(t, err)
		assert.Equal(t, tokenizationDomain.InsertOutcomeInserted, outcome)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_DuplicateEntryIsLostRace", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec(insertQuery).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

		outcome, err := NewMySQLCardTokenRepository(db).InsertIfAbsent(ctx, newTestCard())
		require.NoError(t, err)
		assert.Equal(t, tokenizationDomain.InsertOutcomeLostRace, outcome)
	})

	t.Run("Error_OtherMySQLError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec(insertQuery).
			WillReturnError(&mysql.MySQLError{Number: 1213, Message: "Deadlock found"})

		_, err = NewMySQLCardTokenRepository(db).InsertIfAbsent(ctx, newTestCard())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert card token")
	})
}

func TestMySQLCardTokenRepository_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_FindByFingerprint", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		card := newTestCard()
		id, err := card.ID.MarshalBinary()
		require.NoError(t, err)
		rows := sqlmock.NewRows(testColumns).AddRow(
			id, card.Token, card.Fingerprint, card.EncryptedPan, card.BIN,
			card.Last4, card.Brand, card.ExpiryMonth, card.ExpiryYear,
			[]byte(`{"lot":"LOTE0001"}`), card.CreatedAt, card.UpdatedAt,
		)
		mock.ExpectQuery(regexp.QuoteMeta("FROM card_tokens WHERE fingerprint = ?")).
			WithArgs(card.Fingerprint).
			WillReturnRows(rows)

		found, err := NewMySQLCardTokenRepository(db).FindByFingerprint(ctx, card.Fingerprint)
		require.NoError(t, err)
		assert.Equal(t, card, found)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery(regexp.QuoteMeta("FROM card_tokens WHERE token = ?")).
			WillReturnRows(sqlmock.NewRows(testColumns))

		_, err = NewMySQLCardTokenRepository(db).FindByToken(ctx, "tok_missing")
		assert.ErrorIs(t, err, tokenizationDomain.ErrCardNotFound)
	})

	t.Run("Error_InvalidBinaryID", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		card := newTestCard()
		rows := sqlmock.NewRows(testColumns).AddRow(
			[]byte{1, 2, 3}, card.Token, card.Fingerprint, card.EncryptedPan, card.BIN,
			card.Last4, card.Brand, card.ExpiryMonth, card.ExpiryYear,
			nil, card.CreatedAt, card.UpdatedAt,
		)
		mock.ExpectQuery(regexp.QuoteMeta("FROM card_tokens WHERE token = ?")).WillReturnRows(rows)

		_, err = NewMySQLCardTokenRepository(db).FindByToken(ctx, card.Token)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal card token id")
	})
}
