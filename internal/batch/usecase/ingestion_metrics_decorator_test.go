package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	batchDomain "github.com/allisson/cardvault/internal/batch/domain"
	batchMocks "github.com/allisson/cardvault/internal/batch/usecase/mocks"
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

func TestNewIngestionUseCaseWithMetrics(t *testing.T) {
	decorator := NewIngestionUseCaseWithMetrics(&batchMocks.MockIngestionUseCase{}, &mockBusinessMetrics{})

	assert.NotNil(t, decorator)
	assert.IsType(t, &ingestionUseCaseWithMetrics{}, decorator)
}

func TestIngestionUseCaseWithMetrics_Ingest(t *testing.T) {
	t.Run("Success_RecordsFileAndItemMetrics", func(t *testing.T) {
		mockUseCase := &batchMocks.MockIngestionUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		body := strings.NewReader("file")
		expected := &batchDomain.UploadResult{
			Items: []batchDomain.ItemResult{
				{Line: 2, Status: batchDomain.ItemStatusCreated},
				{Line: 3, Status: batchDomain.ItemStatusCreated},
				{Line: 4, Status: batchDomain.ItemStatusInvalid},
			},
		}

		mockUseCase.On("Ingest", mock.Anything, body).Return(expected, nil).Once()
		mockMetrics.On("RecordOperation", mock.Anything, "batch", "ingest", "success").Once()
		mockMetrics.On("RecordDuration", mock.Anything, "batch", "ingest", mock.AnythingOfType("time.Duration"), "success").
			Once()
		mockMetrics.On("RecordBatchItems", mock.Anything, "created", 2).Once()
		mockMetrics.On("RecordBatchItems", mock.Anything, "invalid", 1).Once()

		result, err := NewIngestionUseCaseWithMetrics(mockUseCase, mockMetrics).Ingest(context.Background(), body)

		require.NoError(t, err)
		assert.Equal(t, expected, result)
		mockMetrics.AssertExpectations(t)
		mockMetrics.AssertNotCalled(t, "RecordBatchItems", mock.Anything, "duplicate", mock.Anything)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := &batchMocks.MockIngestionUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		parseErr := errors.New("missing_header (line 1)")

		mockUseCase.On("Ingest", mock.Anything, mock.Anything).Return(nil, parseErr).Once()
		mockMetrics.On("RecordOperation", mock.Anything, "batch", "ingest", "error").Once()
		mockMetrics.On("RecordDuration", mock.Anything, "batch", "ingest", mock.AnythingOfType("time.Duration"), "error").
			Once()

		result, err := NewIngestionUseCaseWithMetrics(mockUseCase, mockMetrics).
			Ingest(context.Background(), strings.NewReader(""))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, parseErr)
		mockMetrics.AssertExpectations(t)
	})
}
