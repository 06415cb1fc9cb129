// Package mysql implements the card token store on MySQL.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/go-sql-driver/mysql"

	apperrors "github.com/allisson/cardvault/internal/errors"
	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

// mysqlDuplicateEntry is the MySQL error number for unique key violations.
const mysqlDuplicateEntry = 1062

const cardTokenColumns = `id, token, fingerprint, encrypted_pan, bin, last4, brand, expiry_month, expiry_year, metadata, created_at, updated_at`

// MySQLCardTokenRepository implements CardTokenRepository for MySQL. IDs are
// stored as BINARY(16).
type MySQLCardTokenRepository struct {
	db *sql.DB
}

// NewMySQLCardTokenRepository creates a new MySQL card token repository.
func NewMySQLCardTokenRepository(db *sql.DB) *MySQLCardTokenRepository {
	return &MySQLCardTokenRepository{db: db}
}

// InsertIfAbsent inserts card and maps a duplicate key error to InsertOutcomeLostRace.
func (m *MySQLCardTokenRepository) InsertIfAbsent(
	ctx context.Context,
	card *tokenizationDomain.CardToken,
) (tokenizationDomain.InsertOutcome, error) {
	var metadataJSON []byte
	if card.Metadata != nil {
		var err error
		if metadataJSON, err = json.Marshal(card.Metadata); err != nil {
			return 0, apperrors.Wrap(err, "failed to marshal metadata")
		}
	}

	id, err := card.ID.MarshalBinary()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to marshal card token id")
	}

	query := `INSERT INTO card_tokens (` + cardTokenColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = m.db.ExecContext(
		ctx,
		query,
		id,
		card.Token,
		card.Fingerprint,
		card.EncryptedPan,
		card.BIN,
		card.Last4,
		card.Brand,
		card.ExpiryMonth,
		card.ExpiryYear,
		metadataJSON,
		card.CreatedAt,
		card.UpdatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return tokenizationDomain.InsertOutcomeLostRace, nil
		}
		return 0, apperrors.Wrap(err, "failed to insert card token")
	}
	return tokenizationDomain.InsertOutcomeInserted, nil
}

// FindByFingerprint retrieves the card with the given fingerprint.
func (m *MySQLCardTokenRepository) FindByFingerprint(
	ctx context.Context,
	fingerprint string,
) (*tokenizationDomain.CardToken, error) {
	query := `SELECT ` + cardTokenColumns + ` FROM card_tokens WHERE fingerprint = ?`
	return m.findOne(ctx, query, fingerprint, "failed to get card token by fingerprint")
}

// FindByToken retrieves the card with the given token.
func (m *MySQLCardTokenRepository) FindByToken(
	ctx context.Context,
	token string,
) (*tokenizationDomain.CardToken, error) {
	query := `SELECT ` + cardTokenColumns + ` FROM card_tokens WHERE token = ?`
	return m.findOne(ctx, query, token, "failed to get card token by token")
}

func (m *MySQLCardTokenRepository) findOne(
	ctx context.Context,
	query string,
	arg any,
	errMessage string,
) (*tokenizationDomain.CardToken, error) {
	var card tokenizationDomain.CardToken
	var id []byte
	var metadataJSON []byte

	err := m.db.QueryRowContext(ctx, query, arg).Scan(
		&id,
		&card.Token,
		&card.Fingerprint,
		&card.EncryptedPan,
		&card.BIN,
		&card.Last4,
		&card.Brand,
		&card.ExpiryMonth,
		&card.ExpiryYear,
		&metadataJSON,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tokenizationDomain.ErrCardNotFound
		}
		return nil, apperrors.Wrap(err, errMessage)
	}

	if err := card.ID.UnmarshalBinary(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal card token id")
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &card.Metadata); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal metadata")
		}
	}
	return &card, nil
}
