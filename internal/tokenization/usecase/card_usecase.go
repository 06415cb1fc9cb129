package usecase

import (
	"context"
	"time"

	cryptoService "github.com/allisson/cardvault/internal/crypto/service"
	apperrors "github.com/allisson/cardvault/internal/errors"
	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
	tokenizationService "github.com/allisson/cardvault/internal/tokenization/service"
)

// cardUseCase implements CardUseCase on top of a CardTokenRepository.
type cardUseCase struct {
	repo           CardTokenRepository
	cardCipher     cryptoService.CardCipher
	idGenerator    tokenizationService.IDGenerator
	tokenGenerator tokenizationService.TokenGenerator
	requireLuhn    bool
}

// CreateOrGet normalizes and fingerprints the PAN, returns the existing record when
// there is one and otherwise inserts a new record. Losing an insert race to a
// concurrent writer resolves to that writer's record.
func (c *cardUseCase) CreateOrGet(
	ctx context.Context,
	input tokenizationDomain.CardInput,
) (*tokenizationDomain.CreateOrGetResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pan, err := tokenizationDomain.NormalizePan(input.Pan, c.requireLuhn)
	if err != nil {
		return nil, err
	}

	fingerprint := c.cardCipher.Fingerprint(pan.Digits)

	existing, err := c.findByFingerprint(ctx, fingerprint)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return duplicateResult(existing), nil
	}

	card, err := c.newCardToken(input, pan, fingerprint)
	if err != nil {
		return nil, err
	}

	outcome, err := c.repo.InsertIfAbsent(ctx, card)
	if err != nil {
		return nil, err
	}

	switch outcome {
	case tokenizationDomain.InsertOutcomeInserted:
		return &tokenizationDomain.CreateOrGetResult{
			ID:        card.ID,
			Token:     card.Token,
			Last4:     card.Last4,
			Duplicate: false,
		}, nil
	case tokenizationDomain.InsertOutcomeLostRace:
		winner, err := c.findByFingerprint(ctx, fingerprint)
		if err != nil {
			return nil, err
		}
		if winner == nil {
			return nil, tokenizationDomain.ErrConflictRetryExhausted
		}
		return duplicateResult(winner), nil
	default:
		return nil, apperrors.Wrapf(
			tokenizationDomain.ErrConflictRetryExhausted,
			"unexpected insert outcome %s",
			outcome,
		)
	}
}

// Lookup reports whether the card exists. It never writes.
func (c *cardUseCase) Lookup(ctx context.Context, pan string) (*tokenizationDomain.CardRef, bool, error) {
	normalized, err := tokenizationDomain.NormalizePan(pan, c.requireLuhn)
	if err != nil {
		return nil, false, err
	}

	card, err := c.findByFingerprint(ctx, c.cardCipher.Fingerprint(normalized.Digits))
	if err != nil {
		return nil, false, err
	}
	if card == nil {
		return nil, false, nil
	}
	return card.Ref(), true, nil
}

// Reveal decrypts the PAN stored for token.
func (c *cardUseCase) Reveal(ctx context.Context, token string) (string, error) {
	card, err := c.repo.FindByToken(ctx, token)
	if err != nil {
		return "", err
	}
	return c.cardCipher.Decrypt(card.EncryptedPan)
}

// findByFingerprint maps ErrCardNotFound to a nil record.
func (c *cardUseCase) findByFingerprint(
	ctx context.Context,
	fingerprint string,
) (*tokenizationDomain.CardToken, error) {
	card, err := c.repo.FindByFingerprint(ctx, fingerprint)
	if err != nil {
		if apperrors.Is(err, tokenizationDomain.ErrCardNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return card, nil
}

func (c *cardUseCase) newCardToken(
	input tokenizationDomain.CardInput,
	pan tokenizationDomain.NormalizedPan,
	fingerprint string,
) (*tokenizationDomain.CardToken, error) {
	id, err := c.idGenerator.NewID()
	if err != nil {
		return nil, err
	}

	token, err := c.tokenGenerator.NewToken()
	if err != nil {
		return nil, err
	}

	encryptedPan, err := c.cardCipher.Encrypt(pan.Digits)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &tokenizationDomain.CardToken{
		ID:           id,
		Token:        token,
		Fingerprint:  fingerprint,
		EncryptedPan: encryptedPan,
		BIN:          pan.BIN,
		Last4:        pan.Last4,
		Brand:        input.Brand,
		ExpiryMonth:  input.ExpiryMonth,
		ExpiryYear:   input.ExpiryYear,
		Metadata:     provenanceMetadata(input),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// provenanceMetadata merges the batch lot and sequence into the caller metadata.
func provenanceMetadata(input tokenizationDomain.CardInput) map[string]any {
	if input.Lot == "" && input.Sequence == nil && len(input.Metadata) == 0 {
		return nil
	}

	metadata := make(map[string]any, len(input.Metadata)+2)
	for k, v := range input.Metadata {
		metadata[k] = v
	}
	if input.Lot != "" {
		metadata["lot"] = input.Lot
	}
	if input.Sequence != nil {
		metadata["sequence"] = *input.Sequence
	}
	return metadata
}

func duplicateResult(card *tokenizationDomain.CardToken) *tokenizationDomain.CreateOrGetResult {
	return &tokenizationDomain.CreateOrGetResult{
		ID:        card.ID,
		Token:     card.Token,
		Last4:     card.Last4,
		Duplicate: true,
	}
}
