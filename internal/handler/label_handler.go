package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resource-converter/internal/domain"
	"resource-converter/internal/service"
	"resource-converter/internal/validator"
)

// LabelHandler handles SLocalizationLabel requests.
type LabelHandler struct {
	labels    service.LabelServiceInterface
	validator *validator.Validator
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labels service.LabelServiceInterface, v *validator.Validator) *LabelHandler {
	return &LabelHandler{
		labels:    labels,
		validator: v,
	}
}

// Fetch handles POST /api/labels/fetch
func (h *LabelHandler) Fetch(c *gin.Context) {
	var req domain.FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.validator.ValidateFetch(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	result, err := h.labels.Fetch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Content == nil {
		result.Content = []domain.LabelRow{}
	}

	c.JSON(http.StatusOK, result)
}

// FetchIDs handles POST /api/labels/fetch/ids
func (h *LabelHandler) FetchIDs(c *gin.Context) {
	var req domain.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.validator.ValidateIDs(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	ids, err := h.labels.FetchIDs(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, ids)
}

// FetchByIDs handles POST /api/labels/fetch/by-ids
func (h *LabelHandler) FetchByIDs(c *gin.Context) {
	var req domain.ByIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.validator.ValidateByIDs(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	rows, err := h.labels.FetchByIDs(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []domain.LabelRow{}
	}

	c.JSON(http.StatusOK, rows)
}

// DownloadProperties handles POST /api/labels/properties/download
func (h *LabelHandler) DownloadProperties(c *gin.Context) {
	var req domain.LabelDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.validator.ValidateLabelDownload(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	text := h.labels.RenderProperties(c.Request.Context(), req)

	attachment(c, PropertiesFilename)
	c.Data(http.StatusOK, ContentTypeProperties, []byte(text))
}

// ListDefault handles GET /api/labels
func (h *LabelHandler) ListDefault(c *gin.Context) {
	rows, err := h.labels.ListDefault(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
