package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
	tokenizationMocks "github.com/allisson/cardvault/internal/tokenization/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordBatchItems(ctx context.Context, status string, count int) {
	m.Called(ctx, status, count)
}

func expectMetrics(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "tokenization", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "tokenization", operation, mock.AnythingOfType("time.Duration"), status).
		Once()
}

func TestNewCardUseCaseWithMetrics(t *testing.T) {
	decorator := NewCardUseCaseWithMetrics(&tokenizationMocks.MockCardUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.IsType(t, &cardUseCaseWithMetrics{}, decorator)
}

func TestCardUseCaseWithMetrics_CreateOrGet(t *testing.T) {
	input := tokenizationDomain.CardInput{Pan: "4111111111111111", Brand: "VISA", ExpiryMonth: 1, ExpiryYear: 2030}

	tests := []struct {
		name           string
		result         *tokenizationDomain.CreateOrGetResult
		err            error
		expectedStatus string
	}{
		{
			name:           "Success_RecordsSuccessMetrics",
			result:         &tokenizationDomain.CreateOrGetResult{ID: uuid.New(), Token: "tok_a", Last4: "1111"},
			expectedStatus: "success",
		},
		{
			name:           "Success_RecordsDuplicateMetrics",
			result:         &tokenizationDomain.CreateOrGetResult{ID: uuid.New(), Token: "tok_a", Duplicate: true},
			expectedStatus: "duplicate",
		},
		{
			name:           "Error_RecordsErrorMetrics",
			err:            errors.New("store unavailable"),
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := &tokenizationMocks.MockCardUseCase{}
			mockMetrics := &mockBusinessMetrics{}

			var result any = tt.result
			if tt.result == nil {
				result = nil
			}
			mockUseCase.On("CreateOrGet", mock.Anything, input).Return(result, tt.err).Once()
			expectMetrics(mockMetrics, "create_or_get", tt.expectedStatus)

			decorator := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics)
			got, err := decorator.CreateOrGet(context.Background(), input)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.result, got)
			}
			mockUseCase.AssertExpectations(t)
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestCardUseCaseWithMetrics_Lookup(t *testing.T) {
	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &tokenizationMocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		ref := &tokenizationDomain.CardRef{ID: uuid.New(), Token: "tok_a", Last4: "1111"}

		mockUseCase.On("Lookup", mock.Anything, "4111111111111111").Return(ref, true, nil).Once()
		expectMetrics(mockMetrics, "lookup", "success")

		got, found, err := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics).
			Lookup(context.Background(), "4111111111111111")

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, ref, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Success_RecordsNotFoundMetrics", func(t *testing.T) {
		mockUseCase := &tokenizationMocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Lookup", mock.Anything, "4111111111111111").Return(nil, false, nil).Once()
		expectMetrics(mockMetrics, "lookup", "not_found")

		got, found, err := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics).
			Lookup(context.Background(), "4111111111111111")

		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := &tokenizationMocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Lookup", mock.Anything, "123").
			Return(nil, false, tokenizationDomain.ErrInvalidPanLength).
			Once()
		expectMetrics(mockMetrics, "lookup", "error")

		_, _, err := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics).Lookup(context.Background(), "123")

		assert.ErrorIs(t, err, tokenizationDomain.ErrInvalidPanLength)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCardUseCaseWithMetrics_Reveal(t *testing.T) {
	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := &tokenizationMocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Reveal", mock.Anything, "tok_a").Return("4111111111111111", nil).Once()
		expectMetrics(mockMetrics, "reveal", "success")

		pan, err := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics).Reveal(context.Background(), "tok_a")

		require.NoError(t, err)
		assert.Equal(t, "4111111111111111", pan)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := &tokenizationMocks.MockCardUseCase{}
		mockMetrics := &mockBusinessMetrics{}

		mockUseCase.On("Reveal", mock.Anything, "tok_missing").
			Return("", tokenizationDomain.ErrCardNotFound).
			Once()
		expectMetrics(mockMetrics, "reveal", "error")

		_, err := NewCardUseCaseWithMetrics(mockUseCase, mockMetrics).Reveal(context.Background(), "tok_missing")

		assert.ErrorIs(t, err, tokenizationDomain.ErrCardNotFound)
		mockMetrics.AssertExpectations(t)
	})
}
