package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelsuite.app/api/internal/http/dto"
	"travelsuite.app/api/internal/http/middleware"
	"travelsuite.app/api/internal/service"
)

const unknownErrorMessage = "An unknown error occurred"

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindInvalidInput:
		return http.StatusBadRequest
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a failure envelope. Internal errors are logged
// and replaced with a generic message.
func writeError(c *gin.Context, err error) {
	status := statusFor(service.KindOf(err))
	message := service.MessageOf(err)

	if status == http.StatusInternalServerError || message == "" {
		slog.ErrorContext(c.Request.Context(), "request failed", "error", err)
		message = unknownErrorMessage
	}

	_ = c.Error(err)
	c.JSON(status, dto.Failure(status, message))
}

func writeBindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
	c.JSON(http.StatusBadRequest, dto.Failure(http.StatusBadRequest, "Invalid request body"))
}

// currentUserID returns the id set by the auth middleware. Routes using it
// must be mounted behind RequireAuth.
func currentUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.UserIDFrom(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Failure(http.StatusUnauthorized, "Authentication failed"))
	}
	return userID, ok
}
