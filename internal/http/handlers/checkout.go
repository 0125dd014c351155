package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hungryman.com/server/internal/http/middleware"
	"hungryman.com/server/internal/http/validation"
	"hungryman.com/server/internal/modules/donations"
	"hungryman.com/server/internal/shared/apperr"
	"hungryman.com/server/internal/shared/ipanon"
)

type CheckoutHandler struct {
	Logger  *slog.Logger
	Service *donations.Service
}

func NewCheckoutHandler(logger *slog.Logger, svc *donations.Service) *CheckoutHandler {
	return &CheckoutHandler{Logger: logger, Service: svc}
}

type createCheckoutInput struct {
	Amount int64 `json:"amount" binding:"required,oneof=1000 2000 3000 5000 10000"`
}

// POST /create-checkout-session
// The wire contract fixes the bodies: 200 {url}, 400 {error: "Invalid
// amount"}, 500 {error: "stripe_error"}.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var in createCheckoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.Logger.Warn("checkout amount rejected",
			"request_id", middleware.GetRequestID(c),
			"fields", validation.FromBindError(err, &in))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	res, err := h.Service.CreateCheckout(c.Request.Context(), in.Amount, anonymizedClientIP(c))
	if err != nil {
		if ae, ok := apperr.As(err); ok && ae.Kind == apperr.Invalid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}
		h.Logger.Error("checkout session creation failed",
			"request_id", middleware.GetRequestID(c), "amount", in.Amount, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stripe_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": res.RedirectURL})
}

// anonymizedClientIP prefers the first forwarded entry over the transport
// peer, then anonymizes. Advisory metadata only; never used for validation
// or rate limiting.
func anonymizedClientIP(c *gin.Context) string {
	ip := c.RemoteIP()
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		ip = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return ipanon.Anonymize(ip)
}
