package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port string

	StripeSecretKey     string
	StripeWebhookSecret string

	// Service-account JSON blob; presence toggles all best-effort persistence.
	FirestoreCredentialsJSON string

	SuccessURL string
	CancelURL  string
}

// FromEnv reads the recognized environment options. STRIPE_SECRET_KEY is the
// only hard requirement; everything else has a default or toggles a feature.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:                     envOr("PORT", "3000"),
		StripeSecretKey:          os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret:      os.Getenv("STRIPE_WEBHOOK_SECRET"),
		FirestoreCredentialsJSON: os.Getenv("FIRESTORE_SERVICE_ACCOUNT_JSON"),
		SuccessURL:               envOr("SUCCESS_URL", "http://localhost:5173"),
		CancelURL:                envOr("CANCEL_URL", "http://localhost:5173/donate-cancel"),
	}

	if cfg.StripeSecretKey == "" {
		return Config{}, fmt.Errorf("STRIPE_SECRET_KEY environment variable is required")
	}
	return cfg, nil
}

func (c Config) RecordingEnabled() bool { return c.FirestoreCredentialsJSON != "" }

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
