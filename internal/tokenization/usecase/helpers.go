package usecase

import (
	cryptoService "github.com/allisson/cardvault/internal/crypto/service"
	tokenizationService "github.com/allisson/cardvault/internal/tokenization/service"
)

// NewCardUseCase creates a CardUseCase. requireLuhn enables checksum validation
// during PAN normalization.
func NewCardUseCase(
	repo CardTokenRepository,
	cardCipher cryptoService.CardCipher,
	idGenerator tokenizationService.IDGenerator,
	tokenGenerator tokenizationService.TokenGenerator,
	requireLuhn bool,
) CardUseCase {
	return &cardUseCase{
		repo:           repo,
		cardCipher:     cardCipher,
		idGenerator:    idGenerator,
		tokenGenerator: tokenGenerator,
		requireLuhn:    requireLuhn,
	}
}
