package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"resource-converter/internal/domain"
	"resource-converter/internal/logger"
	"resource-converter/internal/service"
	"resource-converter/internal/validator"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var dbErr *service.DatabaseError
	switch {
	case errors.Is(err, domain.ErrUnsupportedDBType):
		return http.StatusBadRequest
	case errors.As(err, &dbErr):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrDefaultCatalogDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("Request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

func respondInvalid(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:  err.Error(),
		Fields: validator.FieldErrors(err),
	})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
