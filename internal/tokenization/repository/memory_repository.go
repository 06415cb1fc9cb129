package repository

import (
	"context"
	"maps"
	"sync"

	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

// MemoryCardTokenRepository implements CardTokenRepository in process memory.
// It enforces the same uniqueness rules as the SQL stores and is safe for
// concurrent use.
type MemoryCardTokenRepository struct {
	mu            sync.RWMutex
	byFingerprint map[string]*tokenizationDomain.CardToken
	byToken       map[string]*tokenizationDomain.CardToken
}

// NewMemoryCardTokenRepository creates an empty in-memory repository.
func NewMemoryCardTokenRepository() *MemoryCardTokenRepository {
	return &MemoryCardTokenRepository{
		byFingerprint: make(map[string]*tokenizationDomain.CardToken),
		byToken:       make(map[string]*tokenizationDomain.CardToken),
	}
}

// InsertIfAbsent stores a copy of card unless its fingerprint or token is taken.
func (r *MemoryCardTokenRepository) InsertIfAbsent(
	ctx context.Context,
	card *tokenizationDomain.CardToken,
) (tokenizationDomain.InsertOutcome, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byFingerprint[card.Fingerprint]; ok {
		return tokenizationDomain.InsertOutcomeLostRace, nil
	}
	if _, ok := r.byToken[card.Token]; ok {
		return tokenizationDomain.InsertOutcomeLostRace, nil
	}

	stored := cloneCardToken(card)
	r.byFingerprint[stored.Fingerprint] = stored
	r.byToken[stored.Token] = stored
	return tokenizationDomain.InsertOutcomeInserted, nil
}

// FindByFingerprint returns a copy of the card with the given fingerprint.
func (r *MemoryCardTokenRepository) FindByFingerprint(
	ctx context.Context,
	fingerprint string,
) (*tokenizationDomain.CardToken, error) {
	return r.find(ctx, r.byFingerprint, fingerprint)
}

// FindByToken returns a copy of the card with the given token.
func (r *MemoryCardTokenRepository) FindByToken(
	ctx context.Context,
	token string,
) (*tokenizationDomain.CardToken, error) {
	return r.find(ctx, r.byToken, token)
}

// Len returns the number of stored cards.
func (r *MemoryCardTokenRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byFingerprint)
}

func (r *MemoryCardTokenRepository) find(
	ctx context.Context,
	index map[string]*tokenizationDomain.CardToken,
	key string,
) (*tokenizationDomain.CardToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	card, ok := index[key]
	if !ok {
		return nil, tokenizationDomain.ErrCardNotFound
	}
	return cloneCardToken(card), nil
}

func cloneCardToken(card *tokenizationDomain.CardToken) *tokenizationDomain.CardToken {
	clone := *card
	clone.Metadata = maps.Clone(card.Metadata)
	return &clone
}
