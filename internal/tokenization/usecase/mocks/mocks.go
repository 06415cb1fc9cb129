// Package mocks provides mock implementations of the tokenization use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

// MockCardTokenRepository is a mock implementation of CardTokenRepository.
type MockCardTokenRepository struct {
	mock.Mock
}

// FindByFingerprint mocks the FindByFingerprint method.
func (m *MockCardTokenRepository) FindByFingerprint(
	ctx context.Context,
	fingerprint string,
) (*tokenizationDomain.CardToken, error) {
	args := m.Called(ctx, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenizationDomain.CardToken), args.Error(1)
}

// FindByToken mocks the FindByToken method.
func (m *MockCardTokenRepository) FindByToken(
	ctx context.Context,
	token string,
) (*tokenizationDomain.CardToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenizationDomain.CardToken), args.Error(1)
}

// InsertIfAbsent mocks the InsertIfAbsent method.
func (m *MockCardTokenRepository) InsertIfAbsent(
	ctx context.Context,
	card *tokenizationDomain.CardToken,
) (tokenizationDomain.InsertOutcome, error) {
	args := m.Called(ctx, card)
	return args.Get(0).(tokenizationDomain.InsertOutcome), args.Error(1)
}

// MockCardUseCase is a mock implementation of CardUseCase.
type MockCardUseCase struct {
	mock.Mock
}

// CreateOrGet mocks the CreateOrGet method.
func (m *MockCardUseCase) CreateOrGet(
	ctx context.Context,
	input tokenizationDomain.CardInput,
) (*tokenizationDomain.CreateOrGetResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenizationDomain.CreateOrGetResult), args.Error(1)
}

// Lookup mocks the Lookup method.
func (m *MockCardUseCase) Lookup(
	ctx context.Context,
	pan string,
) (*tokenizationDomain.CardRef, bool, error) {
	args := m.Called(ctx, pan)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*tokenizationDomain.CardRef), args.Bool(1), args.Error(2)
}

// Reveal mocks the Reveal method.
func (m *MockCardUseCase) Reveal(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}
