package router

import (
	"github.com/gin-gonic/gin"

	"travelsuite.app/api/internal/http/handler"
)

func HealthRouter(rg *gin.RouterGroup, h *handler.HealthHandler) {
	rg.GET("/status", h.Status)
	rg.GET("/ready", h.Ready)
}
