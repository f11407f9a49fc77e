package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resource-converter/internal/domain"
	"resource-converter/internal/service"
	"resource-converter/internal/validator"
)

// ConnectionHandler handles connection check requests.
type ConnectionHandler struct {
	connections service.ConnectionServiceInterface
	validator   *validator.Validator
}

// NewConnectionHandler creates a new ConnectionHandler.
func NewConnectionHandler(connections service.ConnectionServiceInterface, v *validator.Validator) *ConnectionHandler {
	return &ConnectionHandler{
		connections: connections,
		validator:   v,
	}
}

// TestConnection handles POST /api/db/test.
// The answer is always 200 text so the client can show it as is.
func (h *ConnectionHandler) TestConnection(c *gin.Context) {
	var profile domain.ConnectionProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.String(http.StatusOK, service.FailureMessage(err))
		return
	}

	if err := h.validator.ValidateConnection(&profile.ConnectionConfig); err != nil {
		c.String(http.StatusOK, service.FailureMessage(err))
		return
	}

	c.String(http.StatusOK, h.connections.TestConnection(c.Request.Context(), profile.Connection()))
}
