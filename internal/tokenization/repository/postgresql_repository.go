package repository

import (
	"context"
	"database/sql"
	"errors"

	apperrors "github.com/allisson/cardvault/internal/errors"
	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

// PostgreSQLCardTokenRepository implements CardTokenRepository for PostgreSQL.
// Uniqueness races are resolved by ON CONFLICT DO NOTHING.
type PostgreSQLCardTokenRepository struct {
	db *sql.DB
}

// NewPostgreSQLCardTokenRepository creates a new PostgreSQL card token repository.
func NewPostgreSQLCardTokenRepository(db *sql.DB) *PostgreSQLCardTokenRepository {
	return &PostgreSQLCardTokenRepository{db: db}
}

// InsertIfAbsent inserts card unless its fingerprint or token already exists.
func (p *PostgreSQLCardTokenRepository) InsertIfAbsent(
	ctx context.Context,
	card *tokenizationDomain.CardToken,
) (tokenizationDomain.InsertOutcome, error) {
	metadataJSON, err := marshalMetadata(card.Metadata)
	if err != nil {
		return 0, err
	}

	query := `INSERT INTO card_tokens (` + cardTokenColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  ON CONFLICT DO NOTHING`

	result, err := p.db.ExecContext(
		ctx,
		query,
		card.ID,
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
		return 0, apperrors.Wrap(err, "failed to insert card token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return tokenizationDomain.InsertOutcomeLostRace, nil
	}
	return tokenizationDomain.InsertOutcomeInserted, nil
}

// FindByFingerprint retrieves the card with the given fingerprint.
func (p *PostgreSQLCardTokenRepository) FindByFingerprint(
	ctx context.Context,
	fingerprint string,
) (*tokenizationDomain.CardToken, error) {
	query := `SELECT ` + cardTokenColumns + ` FROM card_tokens WHERE fingerprint = $1`
	return p.findOne(ctx, query, fingerprint, "failed to get card token by fingerprint")
}

// FindByToken retrieves the card with the given token.
func (p *PostgreSQLCardTokenRepository) FindByToken(
	ctx context.Context,
	token string,
) (*tokenizationDomain.CardToken, error) {
	query := `SELECT ` + cardTokenColumns + ` FROM card_tokens WHERE token = $1`
	return p.findOne(ctx, query, token, "failed to get card token by token")
}

func (p *PostgreSQLCardTokenRepository) findOne(
	ctx context.Context,
	query string,
	arg any,
	errMessage string,
) (*tokenizationDomain.CardToken, error) {
	var card tokenizationDomain.CardToken
	var metadataJSON []byte

	err := p.db.QueryRowContext(ctx, query, arg).Scan(
		&card.ID,
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

	card.Metadata, err = unmarshalMetadata(metadataJSON)
	if err != nil {
		return nil, err
	}
	return &card, nil
}
