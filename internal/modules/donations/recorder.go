package donations

import "context"

// Attempt is written when a checkout session is created.
type Attempt struct {
	CheckoutSessionID string
	AmountCents       int64
	AnonymizedIP      string
}

// Donation is written when the processor reports a completed session.
type Donation struct {
	CheckoutSessionID string
	AmountCents       int64
	Currency          string
	PaymentStatus     string
}

// Recorder is the optional persistence port. A nil Recorder disables
// recording entirely; when present, both writes are best-effort and their
// failure never reaches the caller.
type Recorder interface {
	RecordAttempt(ctx context.Context, a Attempt) error
	RecordDonation(ctx context.Context, d Donation) error
}
