package config

import (
	"errors"
	"os"
)

// Config holds everything the process reads from the environment. Loaded
// once in main and passed down; nothing else touches os.Getenv.
type Config struct {
	Port            string
	StripeSecretKey string
	FrontendOrigin  string
	SuccessURL      string
	CancelURL       string
}

func Load() (*Config, error) {
	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY environment variable is not set")
	}

	return &Config{
		Port:            getEnv("PORT", "10000"),
		StripeSecretKey: secretKey,
		FrontendOrigin:  getEnv("FRONTEND_ORIGIN", "https://evelinarudin.github.io"),
		SuccessURL:      getEnv("SUCCESS_URL", "https://evelinarudin.github.io/blooberry-crochet/success.html"),
		CancelURL:       getEnv("CANCEL_URL", "https://evelinarudin.github.io/blooberry-crochet/cart.html"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
