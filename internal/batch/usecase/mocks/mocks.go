// Package mocks provides mock implementations of the batch use case interfaces.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	batchDomain "github.com/allisson/cardvault/internal/batch/domain"
	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

// MockParser is a mock implementation of Parser.
type MockParser struct {
	mock.Mock
}

// Parse mocks the Parse method.
func (m *MockParser) Parse(r io.Reader) (*batchDomain.Batch, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batchDomain.Batch), args.Error(1)
}

// MockCardTokenizer is a mock implementation of CardTokenizer.
type MockCardTokenizer struct {
	mock.Mock
}

// CreateOrGet mocks the CreateOrGet method.
func (m *MockCardTokenizer) CreateOrGet(
	ctx context.Context,
	input tokenizationDomain.CardInput,
) (*tokenizationDomain.CreateOrGetResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tokenizationDomain.CreateOrGetResult), args.Error(1)
}

// MockIngestionUseCase is a mock implementation of IngestionUseCase.
type MockIngestionUseCase struct {
	mock.Mock
}

// Ingest mocks the Ingest method.
func (m *MockIngestionUseCase) Ingest(ctx context.Context, r io.Reader) (*batchDomain.UploadResult, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batchDomain.UploadResult), args.Error(1)
}
