package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/tsp-registry/internal/errors"
	tspDomain "github.com/allisson/tsp-registry/internal/tsp/domain"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestHandleErrorGin(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedErr  string
	}{
		{"not found", tspDomain.ErrApprovedTspNotFound, http.StatusNotFound, "not_found"},
		{"conflict", tspDomain.ErrDuplicateRecord, http.StatusConflict, "conflict"},
		{
			"invalid input",
			fmt.Errorf("%w: bad", tspDomain.ErrCertificateParse),
			http.StatusUnprocessableEntity,
			"invalid_input",
		},
		{
			"immutable certificate",
			&tspDomain.ImmutableFieldError{Field: "certificate"},
			http.StatusUnprocessableEntity,
			"invalid_input",
		},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, logger)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedErr, decodeErrorResponse(t, w).Error)
		})
	}

	t.Run("internal error details are hidden", func(t *testing.T) {
		c, w := newTestContext()

		HandleErrorGin(c, errors.New("password=hunter2"), nil)

		assert.NotContains(t, w.Body.String(), "hunter2")
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		c, w := newTestContext()

		HandleErrorGin(c, nil, logger)

		assert.Empty(t, w.Body.String())
	})

	t.Run("field errors carry details", func(t *testing.T) {
		c, w := newTestContext()
		err := apperrors.FieldErrors{
			{Field: "url", Message: "must be a valid URL", Err: tspDomain.ErrInvalidURL},
			{Field: "certificate", Message: "is required", Err: tspDomain.ErrRequiredFieldMissing},
		}

		HandleErrorGin(c, err, logger)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		response := decodeErrorResponse(t, w)
		assert.Equal(t, "validation_error", response.Error)
		assert.Equal(t, map[string]string{
			"url":         "must be a valid URL",
			"certificate": "is required",
		}, response.Details)
	})

	t.Run("collected duplicate stays a validation error", func(t *testing.T) {
		c, w := newTestContext()
		err := apperrors.FieldErrors{
			{Field: "certificate", Message: "already registered for this url", Err: tspDomain.ErrDuplicateRecord},
		}

		HandleErrorGin(c, err, logger)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, decodeErrorResponse(t, w).Details, "certificate")
	})
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeErrorResponse(t, w)
	assert.Equal(t, "bad_request", response.Error)
	assert.Equal(t, "unexpected EOF", response.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()

	HandleValidationErrorGin(c, errors.New("certificate: cannot be blank."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "validation_error", decodeErrorResponse(t, w).Error)
}
