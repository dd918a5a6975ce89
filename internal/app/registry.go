package app

import (
	"github.com/EvelinaRudin/blooberry-backend/internal/checkout"
	"github.com/EvelinaRudin/blooberry-backend/internal/config"
	"github.com/EvelinaRudin/blooberry-backend/internal/stripe"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	// --- Third Party Services ---
	stripeService := stripe.NewService(cfg.StripeSecretKey, logger)

	// --- Services ---
	checkoutService := checkout.NewService(checkout.Deps{
		Provider:   stripeService,
		SuccessURL: cfg.SuccessURL,
		CancelURL:  cfg.CancelURL,
		Logger:     logger,
	})

	// --- Handlers & Routes ---
	checkoutHandler := checkout.NewHandler(checkoutService, logger)
	checkout.RegisterRoutes(router, checkoutHandler)
}
