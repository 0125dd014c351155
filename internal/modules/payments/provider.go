package payments

import (
	"context"
	"net/http"
)

// EventCheckoutCompleted is the only event type that triggers a business
// action; everything else is acknowledged and dropped.
const EventCheckoutCompleted = "checkout.session.completed"

type CreateSessionRequest struct {
	AmountCents int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
}

type CreateSessionResponse struct {
	SessionID   string
	RedirectURL string
}

// WebhookEvent is the flattened, already-verified view of a processor
// notification. Session fields are populated only for EventCheckoutCompleted.
type WebhookEvent struct {
	EventID string
	Type    string

	SessionID     string
	AmountTotal   int64
	Currency      string
	PaymentStatus string
}

type Provider interface {
	Name() string
	CreateCheckoutSession(ctx context.Context, req CreateSessionRequest) (CreateSessionResponse, error)

	// Webhook: verify signature + parse event. Body must be the raw bytes as
	// received; any re-serialization invalidates the signature.
	VerifyAndParseWebhook(headers http.Header, body []byte) (WebhookEvent, error)
}
