package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"hungryman.com/server/internal/http/handlers"
	"hungryman.com/server/internal/http/middleware"
	"hungryman.com/server/internal/modules/donations"
	"hungryman.com/server/internal/modules/payments"
)

func NewRouter(logger *slog.Logger, provider payments.Provider, svc *donations.Service) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	// ErrorHandler must wrap Recovery: the recovered panic is pushed as a
	// gin error and rendered on the way back out.
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))

	checkout := handlers.NewCheckoutHandler(logger, svc)
	webhook := handlers.NewWebhookHandler(logger, provider, svc)

	r.POST("/create-checkout-session", checkout.Create)
	r.POST("/webhook", webhook.Handle)

	return r
}
