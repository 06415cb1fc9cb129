package usecase

import (
	"context"
	"io"
	"time"

	batchDomain "github.com/allisson/cardvault/internal/batch/domain"
	"github.com/allisson/cardvault/internal/metrics"
)

// ingestionUseCaseWithMetrics decorates IngestionUseCase with metrics instrumentation.
type ingestionUseCaseWithMetrics struct {
	next    IngestionUseCase
	metrics metrics.BusinessMetrics
}

// NewIngestionUseCaseWithMetrics wraps an IngestionUseCase with metrics recording.
func NewIngestionUseCaseWithMetrics(useCase IngestionUseCase, m metrics.BusinessMetrics) IngestionUseCase {
	return &ingestionUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// itemStatuses fixes the order in which per-status counts are emitted.
var itemStatuses = []batchDomain.ItemStatus{
	batchDomain.ItemStatusCreated,
	batchDomain.ItemStatusDuplicate,
	batchDomain.ItemStatusInvalid,
}

// Ingest records one "ingest" operation per file and the detail outcomes as
// batch item counts.
func (i *ingestionUseCaseWithMetrics) Ingest(
	ctx context.Context,
	r io.Reader,
) (*batchDomain.UploadResult, error) {
	start := time.Now()
	result, err := i.next.Ingest(ctx, r)

	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "batch", "ingest", status)
	i.metrics.RecordDuration(ctx, "batch", "ingest", time.Since(start), status)

	if result != nil {
		counts := make(map[batchDomain.ItemStatus]int, len(itemStatuses))
		for _, item := range result.Items {
			counts[item.Status]++
		}
		for _, s := range itemStatuses {
			if counts[s] > 0 {
				i.metrics.RecordBatchItems(ctx, string(s), counts[s])
			}
		}
	}
	return result, err
}
