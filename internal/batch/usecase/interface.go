// Package usecase implements batch file ingestion.
package usecase

import (
	"context"
	"io"

	batchDomain "github.com/allisson/cardvault/internal/batch/domain"
	tokenizationDomain "github.com/allisson/cardvault/internal/tokenization/domain"
)

// Parser turns a batch file into a verified Batch.
type Parser interface {
	Parse(r io.Reader) (*batchDomain.Batch, error)
}

// CardTokenizer is the part of the tokenization use case ingestion needs.
type CardTokenizer interface {
	CreateOrGet(
		ctx context.Context,
		input tokenizationDomain.CardInput,
	) (*tokenizationDomain.CreateOrGetResult, error)
}

// IngestionUseCase ingests whole batch files.
type IngestionUseCase interface {
	// Ingest parses r and tokenizes every detail in order. A parse error aborts
	// before any card is stored; per-card failures are reported as invalid items.
	Ingest(ctx context.Context, r io.Reader) (*batchDomain.UploadResult, error)
}
