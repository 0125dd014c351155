package donations

import (
	"context"
	"log/slog"

	"hungryman.com/server/internal/modules/payments"
	"hungryman.com/server/internal/shared/apperr"
)

const (
	Currency    = "usd"
	ProductName = "Donation — Hungry Hungry Man"
)

// AllowedAmounts are the donation sizes (minor units) the relay accepts.
var AllowedAmounts = []int64{1000, 2000, 3000, 5000, 10000}

func AmountAllowed(cents int64) bool {
	for _, a := range AllowedAmounts {
		if a == cents {
			return true
		}
	}
	return false
}

type Service struct {
	provider payments.Provider
	recorder Recorder // nil disables recording
	logger   *slog.Logger

	successURL string
	cancelURL  string
}

func NewService(p payments.Provider, rec Recorder, logger *slog.Logger, successURL, cancelURL string) *Service {
	return &Service{provider: p, recorder: rec, logger: logger, successURL: successURL, cancelURL: cancelURL}
}

type CheckoutResult struct {
	SessionID   string
	RedirectURL string
}

// CreateCheckout validates the amount, asks the processor for a hosted
// session and best-effort records the attempt. The success URL carries the
// session-id placeholder the processor fills in on redirect.
func (s *Service) CreateCheckout(ctx context.Context, amountCents int64, anonymizedIP string) (CheckoutResult, error) {
	if !AmountAllowed(amountCents) {
		return CheckoutResult{}, apperr.InvalidErr("Invalid amount")
	}

	resp, err := s.provider.CreateCheckoutSession(ctx, payments.CreateSessionRequest{
		AmountCents: amountCents,
		Currency:    Currency,
		ProductName: ProductName,
		SuccessURL:  s.successURL + "/?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.cancelURL,
	})
	if err != nil {
		return CheckoutResult{}, apperr.ProcessorErr(err)
	}

	if s.recorder != nil {
		if err := s.recorder.RecordAttempt(ctx, Attempt{
			CheckoutSessionID: resp.SessionID,
			AmountCents:       amountCents,
			AnonymizedIP:      anonymizedIP,
		}); err != nil {
			s.logger.ErrorContext(ctx, "failed to record checkout attempt",
				"provider", s.provider.Name(), "session_id", resp.SessionID, "err", err)
		}
	}

	return CheckoutResult{SessionID: resp.SessionID, RedirectURL: resp.RedirectURL}, nil
}

// HandleEvent applies a verified webhook event. Only completed checkout
// sessions are recorded; every other type is acknowledged and dropped.
// Redeliveries are not deduplicated, so a replayed event writes again.
func (s *Service) HandleEvent(ctx context.Context, ev payments.WebhookEvent) {
	if ev.Type != payments.EventCheckoutCompleted {
		return
	}
	if s.recorder == nil {
		return
	}

	if err := s.recorder.RecordDonation(ctx, Donation{
		CheckoutSessionID: ev.SessionID,
		AmountCents:       ev.AmountTotal,
		Currency:          ev.Currency,
		PaymentStatus:     ev.PaymentStatus,
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to record donation",
			"provider", s.provider.Name(), "event_id", ev.EventID, "session_id", ev.SessionID, "err", err)
		return
	}

	s.logger.InfoContext(ctx, "donation recorded",
		"provider", s.provider.Name(), "event_id", ev.EventID, "session_id", ev.SessionID,
		"amount", ev.AmountTotal, "currency", ev.Currency)
}
