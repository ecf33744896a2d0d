package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travelsuite.app/api/internal/http/handler"
	"travelsuite.app/api/internal/http/middleware"
	"travelsuite.app/api/internal/service"
)

type RouterConfig struct {
	Tokens         middleware.TokenVerifier
	DB             handler.Pinger
	MetricsEnabled bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	requireAuth := middleware.RequireAuth(cfg.Tokens)

	v1 := router.Group("/v1")
	{
		HealthRouter(v1.Group("/health"), handler.NewHealthHandler(cfg.DB))

		AuthRouter(v1.Group("/auth"), handler.NewAuthHandler(services.Auth()), requireAuth)

		UserRouter(v1.Group("/user", requireAuth), handler.NewUserHandler(services.Users()))

		OrganizationRouter(v1.Group("/organization", requireAuth), handler.NewOrganizationHandler(services.Organizations()))

		TourRouter(v1.Group("/tour", requireAuth), handler.NewTourHandler(services.Tours()))
	}
}
