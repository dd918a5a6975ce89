package app

import (
	"net/http"

	"github.com/EvelinaRudin/blooberry-backend/internal/config"
	"github.com/EvelinaRudin/blooberry-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires middleware, third-party clients and feature routes onto the
// router. The Stripe client is constructed once here and shared read-only by
// every request.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) error {
	// Only the storefront origin may call this API from a browser.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
	}))
	router.Use(middleware.RequestID())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerModules(router, cfg, logger)

	return nil
}
