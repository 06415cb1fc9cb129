package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/cardvault/internal/errors"
)

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
		expectedCode   string
	}{
		{
			name:           "not found",
			err:            apperrors.WithCode(apperrors.ErrNotFound, "card_not_found", "card not found"),
			expectedStatus: http.StatusNotFound,
			expectedError:  "not_found",
			expectedCode:   "card_not_found",
		},
		{
			name:           "conflict",
			err:            apperrors.ErrConflict,
			expectedStatus: http.StatusConflict,
			expectedError:  "conflict",
		},
		{
			name: "wrapped invalid input keeps code",
			err: fmt.Errorf(
				"ingest: %w",
				apperrors.WithCode(apperrors.ErrInvalidInput, "invalid_pan_length", "pan too short"),
			),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError:  "invalid_input",
			expectedCode:   "invalid_pan_length",
		},
		{
			name: "coded internal error maps to 500 and keeps code",
			err: fmt.Errorf(
				"reveal: %w",
				apperrors.WithCode(apperrors.ErrInternal, "decryption_failed", "decryption failed"),
			),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal_error",
			expectedCode:   "decryption_failed",
		},
		{
			name:           "internal error hides details",
			err:            errors.New("pq: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeErrorResponse(t, w)
			assert.Equal(t, tt.expectedError, response.Error)
			assert.Equal(t, tt.expectedCode, response.Code)
			assert.NotContains(t, response.Message, "pq:")
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleErrorGin(c, nil, nil)

		assert.Empty(t, w.Body.String())
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, errors.New("invalid character"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeErrorResponse(t, w)
	assert.Equal(t, "bad_request", response.Error)
	assert.Equal(t, "invalid character", response.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationErrorGin(c, errors.New("brand: too long"), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	response := decodeErrorResponse(t, w)
	assert.Equal(t, "validation_error", response.Error)
	assert.Equal(t, "brand: too long", response.Message)
}
