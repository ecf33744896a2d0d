package router

import (
	"github.com/gin-gonic/gin"

	"travelsuite.app/api/internal/http/handler"
)

func TourRouter(rg *gin.RouterGroup, h *handler.TourHandler) {
	rg.POST("/create", h.Create)
	rg.GET("/get/:tourId", h.Get)
	rg.PUT("/update/:tourId", h.Update)
	rg.DELETE("/delete/:tourId", h.Delete)
	rg.GET("/all", h.List)
}
