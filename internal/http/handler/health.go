package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelsuite.app/api/internal/http/dto"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	now func() time.Time
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, now: time.Now}
}

// Status answers as long as the process is serving requests.
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Message:   "Server is up and running",
		Timestamp: h.now().UTC(),
	})
}

// Ready additionally checks the database connection.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			slog.WarnContext(ctx, "readiness check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
				Status:    "UNAVAILABLE",
				Message:   "Database is unreachable",
				Timestamp: h.now().UTC(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "OK",
		Message:   "Server is ready",
		Timestamp: h.now().UTC(),
	})
}
