package donations

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

const (
	attemptsCollection  = "donations_attempts"
	donationsCollection = "donations"
)

type FirestoreRecorder struct {
	client *firestore.Client
}

// NewFirestoreRecorder builds a recorder from a service-account JSON blob.
// The project ID is taken from the credential itself.
func NewFirestoreRecorder(ctx context.Context, credentialsJSON []byte) (*FirestoreRecorder, error) {
	client, err := firestore.NewClient(ctx, firestore.DetectProjectID, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, err
	}
	return &FirestoreRecorder{client: client}, nil
}

func (r *FirestoreRecorder) RecordAttempt(ctx context.Context, a Attempt) error {
	var ip any
	if a.AnonymizedIP != "" {
		ip = a.AnonymizedIP
	}
	_, _, err := r.client.Collection(attemptsCollection).Add(ctx, map[string]any{
		"checkoutSessionId": a.CheckoutSessionID,
		"amount":            a.AmountCents,
		"ip":                ip,
		"createdAt":         firestore.ServerTimestamp,
	})
	return err
}

func (r *FirestoreRecorder) RecordDonation(ctx context.Context, d Donation) error {
	_, _, err := r.client.Collection(donationsCollection).Add(ctx, map[string]any{
		"amount":            d.AmountCents,
		"currency":          d.Currency,
		"checkoutSessionId": d.CheckoutSessionID,
		"paymentStatus":     d.PaymentStatus,
		"createdAt":         firestore.ServerTimestamp,
	})
	return err
}

func (r *FirestoreRecorder) Close() error { return r.client.Close() }
