package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	batchDomain "github.com/allisson/cardvault/internal/batch/domain"
	"github.com/allisson/cardvault/internal/batch/http/dto"
	batchUseCase "github.com/allisson/cardvault/internal/batch/usecase"
)

// RunIngestBatch tokenizes every card of a fixed-layout batch file and prints the
// report. A file that fails to parse stores nothing and is reported as an error.
//
// Requirements: the card store must be reachable and migrated.
func RunIngestBatch(
	ctx context.Context,
	ingestionUseCase batchUseCase.IngestionUseCase,
	logger *slog.Logger,
	writer io.Writer,
	filePath string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	logger.Info("ingesting batch file", slog.String("file", filePath))

	result, err := ingestionUseCase.Ingest(ctx, file)
	if err != nil {
		var parseErr *batchDomain.ParseError
		if errors.As(err, &parseErr) && format == "json" {
			if writeErr := writeJSON(writer, dto.MapParseErrorToResponse(parseErr)); writeErr != nil {
				return writeErr
			}
		}
		return fmt.Errorf("failed to ingest batch file: %w", err)
	}

	if format == "json" {
		return writeJSON(writer, dto.MapUploadResultToResponse(result))
	}
	outputIngestText(writer, result)
	return nil
}

func outputIngestText(w io.Writer, result *batchDomain.UploadResult) {
	_, _ = fmt.Fprintf(w, "Lot %s (%s) from %s\n",
		result.Header.Lot,
		result.Header.Date.Format("2006-01-02"),
		result.Header.Name,
	)
	_, _ = fmt.Fprintf(w, "Received: %d  Created: %d  Duplicates: %d  Failed: %d\n",
		result.Summary.Received,
		result.Summary.Created,
		result.Summary.Duplicates,
		result.Summary.Failed,
	)

	for _, item := range result.Items {
		switch item.Status {
		case batchDomain.ItemStatusInvalid:
			_, _ = fmt.Fprintf(w, "line %d: %s %s (%s)\n", item.Line, item.Status, item.Code, item.Error)
		default:
			_, _ = fmt.Fprintf(w, "line %d: %s %s ending in %s\n", item.Line, item.Status, item.Token, item.Last4)
		}
	}
}
