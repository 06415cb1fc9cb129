// Package http provides the HTTP handler for batch file uploads.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	batchDomain "github.com/allisson/cardvault/internal/batch/domain"
	"github.com/allisson/cardvault/internal/batch/http/dto"
	batchUseCase "github.com/allisson/cardvault/internal/batch/usecase"
	"github.com/allisson/cardvault/internal/httputil"
)

// UploadFormField is the multipart field carrying the batch file.
const UploadFormField = "file"

// UploadHandler handles batch file uploads.
type UploadHandler struct {
	ingestionUseCase batchUseCase.IngestionUseCase
	maxUploadBytes   int64
	logger           *slog.Logger
}

// NewUploadHandler creates a new upload handler. Request bodies larger than
// maxUploadBytes are rejected.
func NewUploadHandler(
	ingestionUseCase batchUseCase.IngestionUseCase,
	maxUploadBytes int64,
	logger *slog.Logger,
) *UploadHandler {
	return &UploadHandler{
		ingestionUseCase: ingestionUseCase,
		maxUploadBytes:   maxUploadBytes,
		logger:           logger,
	}
}

// UploadHandler ingests a fixed-layout batch file.
// POST /v1/cards/upload - multipart/form-data with the file in the "file" field.
// Returns 200 OK with the per-line report, or 422 when the file does not parse.
func (h *UploadHandler) UploadHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile(UploadFormField)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, httputil.ErrorResponse{
				Error:   "file_too_large",
				Message: fmt.Sprintf("upload exceeds %d bytes", h.maxUploadBytes),
			})
			return
		}
		if errors.Is(err, http.ErrMissingFile) {
			err = fmt.Errorf("multipart field %q is required", UploadFormField)
		}
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Error("failed to close uploaded file", slog.Any("error", closeErr))
		}
	}()

	result, err := h.ingestionUseCase.Ingest(c.Request.Context(), file)
	if err != nil {
		var parseErr *batchDomain.ParseError
		if errors.As(err, &parseErr) {
			h.logger.Warn("batch rejected",
				slog.String("filename", fileHeader.Filename),
				slog.String("code", parseErr.Code()),
				slog.Int("line", parseErr.Line),
			)
			c.JSON(http.StatusUnprocessableEntity, dto.MapParseErrorToResponse(parseErr))
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUploadResultToResponse(result))
}
