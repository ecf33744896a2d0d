package router

import (
	"github.com/gin-gonic/gin"

	"travelsuite.app/api/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.POST("/signup", h.Signup)
	rg.POST("/signin", h.Signin)
	rg.GET("/me", requireAuth, h.Me)
}
