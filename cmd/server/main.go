package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"hungryman.com/server/internal/config"
	apphttp "hungryman.com/server/internal/http"
	"hungryman.com/server/internal/modules/donations"
	"hungryman.com/server/internal/modules/payments"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.StripeWebhookSecret == "" {
		logger.Warn("STRIPE_WEBHOOK_SECRET not set; every webhook delivery will be rejected")
	}

	provider := payments.NewStripeProvider(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	// Collaborator handles are built once, up front, and shared read-only by
	// every request. The recorder is optional: without a credential both
	// record paths are no-ops.
	var recorder donations.Recorder
	if cfg.RecordingEnabled() {
		fr, err := donations.NewFirestoreRecorder(context.Background(), []byte(cfg.FirestoreCredentialsJSON))
		if err != nil {
			log.Fatalf("failed to initialize firestore: %v", err)
		}
		defer fr.Close()
		recorder = fr
	} else {
		logger.Info("donation recording disabled (FIRESTORE_SERVICE_ACCOUNT_JSON not set)")
	}

	svc := donations.NewService(provider, recorder, logger, cfg.SuccessURL, cfg.CancelURL)

	r := apphttp.NewRouter(logger, provider, svc)
	logger.Info("server listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
