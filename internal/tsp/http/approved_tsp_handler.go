// Package http provides HTTP handlers for the approved TSP registry.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/tsp-registry/internal/httputil"
	"github.com/allisson/tsp-registry/internal/tsp/http/dto"
	tspUseCase "github.com/allisson/tsp-registry/internal/tsp/usecase"
	customValidation "github.com/allisson/tsp-registry/internal/validation"
)

const certificateContentType = "application/pkix-cert"

// ApprovedTspHandler handles HTTP requests for approved TSP records.
type ApprovedTspHandler struct {
	useCase tspUseCase.ApprovedTspUseCase
	logger  *slog.Logger
}

// NewApprovedTspHandler creates a new approved TSP handler.
func NewApprovedTspHandler(useCase tspUseCase.ApprovedTspUseCase, logger *slog.Logger) *ApprovedTspHandler {
	return &ApprovedTspHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// RegisterRoutes mounts the handler under group.
func (h *ApprovedTspHandler) RegisterRoutes(group *gin.RouterGroup) {
	tsps := group.Group("/approved-tsps")
	tsps.POST("", h.CreateHandler)
	tsps.GET("", h.ListHandler)
	tsps.GET("/:id", h.GetHandler)
	tsps.GET("/:id/certificate", h.GetCertificateHandler)
	tsps.PUT("/:id", h.UpdateHandler)
	tsps.DELETE("/:id", h.DeleteHandler)
}

// CreateHandler registers a new approved TSP.
// POST /v1/approved-tsps
// Returns 201 Created with the stored record, including the fields derived from the certificate.
func (h *ApprovedTspHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateApprovedTspRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid base64 certificate: %w", err), h.logger)
		return
	}

	tsp, err := h.useCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapApprovedTspToResponse(tsp))
}

// ListHandler returns one filtered, sorted page of records and the total match count.
// GET /v1/approved-tsps?search=&sort_column=name&sort_direction=asc&offset=0&limit=50
func (h *ApprovedTspHandler) ListHandler(c *gin.Context) {
	params, err := httputil.ParseListParams(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	ctx := c.Request.Context()

	tsps, err := h.useCase.List(ctx, params)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	total, err := h.useCase.Count(ctx, params.Search)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApprovedTspsToListResponse(tsps, total))
}

// GetHandler retrieves a record by ID.
// GET /v1/approved-tsps/:id
func (h *ApprovedTspHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	tsp, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApprovedTspToResponse(tsp))
}

// GetCertificateHandler downloads the stored DER certificate.
// GET /v1/approved-tsps/:id/certificate
func (h *ApprovedTspHandler) GetCertificateHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	tsp, err := h.useCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.cer"`, tsp.ID))
	c.Data(http.StatusOK, certificateContentType, tsp.Certificate)
}

// UpdateHandler changes the URL of a record.
// PUT /v1/approved-tsps/:id
// A certificate in the body must be identical to the stored one.
func (h *ApprovedTspHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateApprovedTspRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid base64 certificate: %w", err), h.logger)
		return
	}

	tsp, err := h.useCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApprovedTspToResponse(tsp))
}

// DeleteHandler removes a record.
// DELETE /v1/approved-tsps/:id
// Returns 204 No Content.
func (h *ApprovedTspHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *ApprovedTspHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid approved tsp ID format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}
