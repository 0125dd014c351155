package payments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

const SignatureHeader = "Stripe-Signature"

type StripeProvider struct {
	webhookSecret string
}

// NewStripeProvider configures the stripe-go package key. Construct once in
// main; the SDK holds the key as process-wide state.
func NewStripeProvider(secretKey, webhookSecret string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{webhookSecret: webhookSecret}
}

func (p *StripeProvider) Name() string { return "stripe" }

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req CreateSessionRequest) (CreateSessionResponse, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(req.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(req.ProductName),
				},
				UnitAmount: stripe.Int64(req.AmountCents),
			},
			Quantity: stripe.Int64(1),
		}},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return CreateSessionResponse{}, err
	}
	return CreateSessionResponse{SessionID: s.ID, RedirectURL: s.URL}, nil
}

// VerifyAndParseWebhook validates the timestamped HMAC in the
// Stripe-Signature header over the raw body (constant-time compare, default
// clock-skew tolerance) and flattens the event. API-version mismatches are
// ignored so a newer Stripe account setting does not break verification.
func (p *StripeProvider) VerifyAndParseWebhook(headers http.Header, body []byte) (WebhookEvent, error) {
	if p.webhookSecret == "" {
		return WebhookEvent{}, ErrNoWebhookSecret
	}

	event, err := webhook.ConstructEventWithOptions(body, headers.Get(SignatureHeader), p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return WebhookEvent{}, err
	}

	ev := WebhookEvent{EventID: event.ID, Type: string(event.Type)}
	if ev.Type != EventCheckoutCompleted {
		return ev, nil
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return WebhookEvent{}, err
	}
	ev.SessionID = cs.ID
	ev.AmountTotal = cs.AmountTotal
	ev.Currency = string(cs.Currency)
	ev.PaymentStatus = string(cs.PaymentStatus)
	return ev, nil
}
