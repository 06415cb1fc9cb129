package usecase

import (
	"context"
	"time"

	"github.com/allisson/cardvault/internal/metrics"
	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

// cardUseCaseWithMetrics decorates CardUseCase with metrics instrumentation.
type cardUseCaseWithMetrics struct {
	next    CardUseCase
	metrics metrics.BusinessMetrics
}

// NewCardUseCaseWithMetrics wraps a CardUseCase with metrics recording.
func NewCardUseCaseWithMetrics(useCase CardUseCase, m metrics.BusinessMetrics) CardUseCase {
	return &cardUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// CreateOrGet records metrics for create-or-get operations. Duplicates are
// reported with their own status.
func (c *cardUseCaseWithMetrics) CreateOrGet(
	ctx context.Context,
	input tokenizationDomain.CardInput,
) (*tokenizationDomain.CreateOrGetResult, error) {
	start := time.Now()
	result, err := c.next.CreateOrGet(ctx, input)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case result.Duplicate:
		status = "duplicate"
	}

	c.record(ctx, "create_or_get", start, status)
	return result, err
}

// Lookup records metrics for lookup operations.
func (c *cardUseCaseWithMetrics) Lookup(
	ctx context.Context,
	pan string,
) (*tokenizationDomain.CardRef, bool, error) {
	start := time.Now()
	ref, found, err := c.next.Lookup(ctx, pan)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case !found:
		status = "not_found"
	}

	c.record(ctx, "lookup", start, status)
	return ref, found, err
}

// Reveal records metrics for reveal operations.
func (c *cardUseCaseWithMetrics) Reveal(ctx context.Context, token string) (string, error) {
	start := time.Now()
	pan, err := c.next.Reveal(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.record(ctx, "reveal", start, status)
	return pan, err
}

func (c *cardUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, status string) {
	c.metrics.RecordOperation(ctx, "tokenization", operation, status)
	c.metrics.RecordDuration(ctx, "tokenization", operation, time.Since(start), status)
}
