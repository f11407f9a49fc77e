package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resource-converter/internal/domain"
	"resource-converter/internal/download"
	"resource-converter/internal/export"
	"resource-converter/internal/service"
	"resource-converter/internal/validator"
)

// ErrorMessageHandler handles SError requests.
type ErrorMessageHandler struct {
	messages  service.ErrorMessageServiceInterface
	validator *validator.Validator
}

// NewErrorMessageHandler creates a new ErrorMessageHandler.
func NewErrorMessageHandler(messages service.ErrorMessageServiceInterface, v *validator.Validator) *ErrorMessageHandler {
	return &ErrorMessageHandler{
		messages:  messages,
		validator: v,
	}
}

// Fetch handles POST /api/error-messages/fetch
func (h *ErrorMessageHandler) Fetch(c *gin.Context) {
	var req domain.FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.validator.ValidateFetch(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	result, err := h.messages.Fetch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Content == nil {
		result.Content = []domain.ErrorMessageRow{}
	}

	c.JSON(http.StatusOK, result)
}

// FetchIDs handles POST /api/error-messages/fetch/ids
func (h *ErrorMessageHandler) FetchIDs(c *gin.Context) {
	var req domain.IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.validator.ValidateIDs(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	ids, err := h.messages.FetchIDs(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	c.JSON(http.StatusOK, ids)
}

// FetchByIDs handles POST /api/error-messages/fetch/by-ids
func (h *ErrorMessageHandler) FetchByIDs(c *gin.Context) {
	var req domain.ByIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.validator.ValidateByIDs(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	rows, err := h.messages.FetchByIDs(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []domain.ErrorMessageRow{}
	}

	c.JSON(http.StatusOK, rows)
}

// DownloadXML handles POST /api/error-messages/xml/download
func (h *ErrorMessageHandler) DownloadXML(c *gin.Context) {
	var req domain.ErrorDownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.validator.ValidateErrorDownload(&req); err != nil {
		respondInvalid(c, err)
		return
	}

	text, err := h.messages.RenderXML(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	attachment(c, XMLFilename)
	c.Data(http.StatusOK, ContentTypeXML, []byte(text))
}

// ListDefault handles GET /api/error-messages
func (h *ErrorMessageHandler) ListDefault(c *gin.Context) {
	rows, err := h.messages.ListDefault(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// DefaultXMLQuery holds the query parameters of GET /api/error-messages/xml.
type DefaultXMLQuery struct {
	Lang     domain.Slot `form:"lang"`
	Filename string      `form:"filename"`
}

// DefaultXML handles GET /api/error-messages/xml?lang=...&filename=...
func (h *ErrorMessageHandler) DefaultXML(c *gin.Context) {
	var q DefaultXMLQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.validator.ValidateSlot(q.Lang); err != nil {
		respondInvalid(c, err)
		return
	}

	filename := strings.TrimSpace(q.Filename)
	if filename == "" {
		filename = XMLFilename
	}
	filename = download.EnsureExtension(filename, export.FormatXML)

	text, err := h.messages.DefaultXML(c.Request.Context(), q.Lang)
	if err != nil {
		respondError(c, err)
		return
	}

	attachment(c, filename)
	c.Data(http.StatusOK, ContentTypeXML, []byte(text))
}
