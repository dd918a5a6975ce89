package main

import (
	"log"
	"time"

	"github.com/EvelinaRudin/blooberry-backend/internal/app"
	"github.com/EvelinaRudin/blooberry-backend/internal/bootstrap"
	"github.com/EvelinaRudin/blooberry-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Fail fast: without the Stripe key there is nothing this process can do.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	r := gin.Default()

	// build dependency + routes
	if err := app.BuildApp(r, cfg, logger); err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}

	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:        cfg.Port,
			ReadTimeout: 5 * time.Second,
			// The outbound Stripe call is the slow path; give it room.
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger,
	)
	if err != nil {
		logger.Fatal("server terminated", zap.Error(err))
	}
}
