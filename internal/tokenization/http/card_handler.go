// Package http provides HTTP handlers for card tokenization.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardvault/internal/httputil"
	"github.com/allisson/cardvault/internal/tokenization/http/dto"
	tokenizationUseCase "github.com/allisson/cardvault/internal/tokenization/usecase"
	customValidation "github.com/allisson/cardvault/internal/validation"
)

// PanHeader carries the PAN on lookup requests so it never lands in access logs
// as part of the URL.
const PanHeader = "X-Card-Pan"

// CardHandler handles HTTP requests for card tokenization.
type CardHandler struct {
	cardUseCase tokenizationUseCase.CardUseCase
	logger      *slog.Logger
}

// NewCardHandler creates a new card handler with required dependencies.
func NewCardHandler(cardUseCase tokenizationUseCase.CardUseCase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// CreateHandler tokenizes a card or returns the existing token for it.
// POST /v1/cards - Returns 201 Created for a new card and 200 OK for a duplicate.
func (h *CardHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result, err := h.cardUseCase.CreateOrGet(c.Request.Context(), req.ToCardInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, dto.MapResultToCreateCardResponse(result))
}

// LookupHandler reports whether a card has been tokenized.
// GET /v1/cards/lookup - PAN in the X-Card-Pan header.
func (h *CardHandler) LookupHandler(c *gin.Context) {
	pan := c.GetHeader(PanHeader)
	if pan == "" {
		c.JSON(http.StatusBadRequest, httputil.ErrorResponse{
			Error:   "missing_pan",
			Message: PanHeader + " header is required",
		})
		return
	}

	ref, found, err := h.cardUseCase.Lookup(c.Request.Context(), pan)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRefToLookupCardResponse(ref, found))
}

// RevealHandler decrypts the PAN behind a token.
// POST /v1/cards/reveal - Only routed when reveal is enabled in configuration.
func (h *CardHandler) RevealHandler(c *gin.Context) {
	var req dto.RevealCardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	pan, err := h.cardUseCase.Reveal(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.RevealCardResponse{Token: req.Token, Pan: pan})
}
