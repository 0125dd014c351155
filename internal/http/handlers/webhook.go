package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"hungryman.com/server/internal/http/middleware"
	"hungryman.com/server/internal/modules/donations"
	"hungryman.com/server/internal/modules/payments"
	"hungryman.com/server/internal/shared/apperr"
)

type WebhookHandler struct {
	Logger   *slog.Logger
	Provider payments.Provider
	Service  *donations.Service
}

func NewWebhookHandler(logger *slog.Logger, p payments.Provider, svc *donations.Service) *WebhookHandler {
	return &WebhookHandler{Logger: logger, Provider: p, Service: svc}
}

// POST /webhook
// Body must stay raw: the signature covers the exact bytes the processor
// sent. Once the event is authenticated the processor must see 200 so it
// does not redeliver; recording failures stay server-side.
func (h *WebhookHandler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Webhook Error: %s", err.Error())
		return
	}

	ev, err := h.Provider.VerifyAndParseWebhook(c.Request.Header, body)
	if err != nil {
		serr := apperr.SignatureErr(err)
		h.Logger.Warn("webhook signature verification failed",
			"request_id", middleware.GetRequestID(c), "err", serr)
		c.String(apperr.HTTPStatus(serr), "Webhook Error: %s", err.Error())
		return
	}

	h.Service.HandleEvent(c.Request.Context(), ev)

	c.JSON(http.StatusOK, gin.H{"received": true})
}
