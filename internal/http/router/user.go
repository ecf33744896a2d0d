package router

import (
	"github.com/gin-gonic/gin"

	"travelsuite.app/api/internal/http/handler"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.GET("/me", h.Get)
	rg.PUT("/me", h.Update)
	rg.PUT("/me/password", h.ChangePassword)
}
