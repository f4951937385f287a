package server

import (
	"log/slog"
	"net/http"

	"github.com/aouyang1/go-regressor/service"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusFor maps an error kind to its HTTP status code
func StatusFor(kind service.Kind) int {
	switch kind {
	case service.KindMissingField, service.KindInvalidType, service.KindOutOfRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, logger *slog.Logger, err error) {
	kind := service.KindOf(err)
	status := StatusFor(kind)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"request_id", GetRequestID(c.Request.Context()),
			"path", c.Request.URL.Path,
			"kind", kind.String(),
			"error", err.Error(),
		)
	} else {
		logger.Debug("rejected request",
			"request_id", GetRequestID(c.Request.Context()),
			"kind", kind.String(),
			"error", err.Error(),
		)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}
