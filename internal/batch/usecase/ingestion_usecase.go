package usecase

import (
	"context"
	"io"
	"log/slog"

	batchDomain "github.com/allisson/cardvault/internal/batch/domain"
	apperrors "github.com/allisson/cardvault/internal/errors"
	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

const internalErrorCode = "internal_error"

// ingestionUseCase implements IngestionUseCase.
type ingestionUseCase struct {
	parser    Parser
	tokenizer CardTokenizer
	logger    *slog.Logger
}

// NewIngestionUseCase creates a new IngestionUseCase.
func NewIngestionUseCase(parser Parser, tokenizer CardTokenizer, logger *slog.Logger) IngestionUseCase {
	return &ingestionUseCase{
		parser:    parser,
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// Ingest parses the whole file before touching the store, then creates or
// resolves each detail in file order.
func (i *ingestionUseCase) Ingest(ctx context.Context, r io.Reader) (*batchDomain.UploadResult, error) {
	batch, err := i.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &batchDomain.UploadResult{
		Header:  batch.Header,
		Summary: batchDomain.Summary{Received: batch.Header.Quantity},
		Items:   make([]batchDomain.ItemResult, 0, len(batch.Details)),
	}

	for _, detail := range batch.Details {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item, err := i.ingestDetail(ctx, batch.Header.Lot, detail)
		if err != nil {
			return nil, err
		}

		switch item.Status {
		case batchDomain.ItemStatusCreated:
			result.Summary.Created++
		case batchDomain.ItemStatusDuplicate:
			result.Summary.Duplicates++
		default:
			result.Summary.Failed++
		}
		result.Items = append(result.Items, item)
	}

	i.logger.Info("batch ingested",
		slog.String("lot", batch.Header.Lot),
		slog.Int("received", result.Summary.Received),
		slog.Int("created", result.Summary.Created),
		slog.Int("duplicates", result.Summary.Duplicates),
		slog.Int("failed", result.Summary.Failed),
	)

	return result, nil
}

// ingestDetail returns an error only when the caller's context is done. Any
// other failure, including a store timeout of its own, belongs to this detail.
func (i *ingestionUseCase) ingestDetail(
	ctx context.Context,
	lot string,
	detail batchDomain.Detail,
) (batchDomain.ItemResult, error) {
	created, err := i.tokenizer.CreateOrGet(ctx, tokenizationDomain.CardInput{
		Pan:         detail.Pan,
		Brand:       batchDomain.IngestBrand,
		ExpiryMonth: batchDomain.IngestExpiryMonth,
		ExpiryYear:  batchDomain.IngestExpiryYear,
		Lot:         lot,
		Sequence:    detail.Sequence,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return batchDomain.ItemResult{}, ctxErr
		}
		return i.invalidItem(detail, err), nil
	}

	status := batchDomain.ItemStatusCreated
	if created.Duplicate {
		status = batchDomain.ItemStatusDuplicate
	}

	id := created.ID
	return batchDomain.ItemResult{
		Line:   detail.Line,
		Status: status,
		ID:     &id,
		Token:  created.Token,
		Last4:  created.Last4,
	}, nil
}

// invalidItem reports coded domain errors as they are and hides everything else
// behind a generic message.
func (i *ingestionUseCase) invalidItem(detail batchDomain.Detail, err error) batchDomain.ItemResult {
	item := batchDomain.ItemResult{
		Line:   detail.Line,
		Status: batchDomain.ItemStatusInvalid,
		Error:  err.Error(),
		Code:   apperrors.CodeOf(err),
	}
	if item.Code == "" {
		item.Error = "internal error"
		item.Code = internalErrorCode
	}

	i.logger.Warn("batch item failed",
		slog.Any("detail", detail),
		slog.String("code", item.Code),
		slog.Any("error", err),
	)
	return item
}
