package router

import (
	"github.com/gin-gonic/gin"

	"travelsuite.app/api/internal/http/handler"
)

func OrganizationRouter(rg *gin.RouterGroup, h *handler.OrganizationHandler) {
	rg.GET("/me", h.Get)
	rg.POST("/me", h.Create)
	rg.PUT("/me", h.Update)
}
