package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

// signedHeader builds a Stripe-style signature header: HMAC-SHA256 over
// "<timestamp>.<body>", presented as t=<unix>,v1=<hex>.
func signedHeader(secret string, ts time.Time, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), body)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func headerWith(sig string) http.Header {
	h := http.Header{}
	h.Set(SignatureHeader, sig)
	return h
}

func TestVerifyAndParseWebhookCompletedSession(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testSecret)
	body := []byte(`{"id":"evt_1","type":"checkout.session.completed",` +
		`"data":{"object":{"id":"cs_test_1","amount_total":5000,"currency":"usd","payment_status":"paid"}}}`)

	ev, err := p.VerifyAndParseWebhook(headerWith(signedHeader(testSecret, time.Now(), body)), body)
	require.NoError(t, err)

	assert.Equal(t, "evt_1", ev.EventID)
	assert.Equal(t, EventCheckoutCompleted, ev.Type)
	assert.Equal(t, "cs_test_1", ev.SessionID)
	assert.Equal(t, int64(5000), ev.AmountTotal)
	assert.Equal(t, "usd", ev.Currency)
	assert.Equal(t, "paid", ev.PaymentStatus)
}

func TestVerifyAndParseWebhookOtherEventType(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testSecret)
	body := []byte(`{"id":"evt_2","type":"payment_intent.created","data":{"object":{}}}`)

	ev, err := p.VerifyAndParseWebhook(headerWith(signedHeader(testSecret, time.Now(), body)), body)
	require.NoError(t, err)

	assert.Equal(t, "payment_intent.created", ev.Type)
	assert.Empty(t, ev.SessionID)
	assert.Zero(t, ev.AmountTotal)
}

func TestVerifyAndParseWebhookRejectsBadSignature(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testSecret)
	body := []byte(`{"id":"evt_3","type":"checkout.session.completed","data":{"object":{"id":"cs_x"}}}`)

	_, err := p.VerifyAndParseWebhook(headerWith(signedHeader("whsec_wrong", time.Now(), body)), body)
	assert.Error(t, err)
}

func TestVerifyAndParseWebhookRejectsMissingHeader(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testSecret)
	body := []byte(`{"id":"evt_4","type":"checkout.session.completed","data":{"object":{}}}`)

	_, err := p.VerifyAndParseWebhook(http.Header{}, body)
	assert.Error(t, err)
}

func TestVerifyAndParseWebhookRejectsStaleTimestamp(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testSecret)
	body := []byte(`{"id":"evt_5","type":"checkout.session.completed","data":{"object":{}}}`)

	// Outside the default tolerance window.
	stale := time.Now().Add(-time.Hour)
	_, err := p.VerifyAndParseWebhook(headerWith(signedHeader(testSecret, stale, body)), body)
	assert.Error(t, err)
}

func TestVerifyAndParseWebhookRejectsTamperedBody(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", testSecret)
	body := []byte(`{"id":"evt_6","type":"checkout.session.completed",` +
		`"data":{"object":{"id":"cs_test_6","amount_total":1000,"currency":"usd","payment_status":"paid"}}}`)
	sig := signedHeader(testSecret, time.Now(), body)

	tampered := []byte(`{"id":"evt_6","type":"checkout.session.completed",` +
		`"data":{"object":{"id":"cs_test_6","amount_total":10000,"currency":"usd","payment_status":"paid"}}}`)
	_, err := p.VerifyAndParseWebhook(headerWith(sig), tampered)
	assert.Error(t, err)
}

func TestVerifyAndParseWebhookNoSecretConfigured(t *testing.T) {
	p := NewStripeProvider("sk_test_dummy", "")
	body := []byte(`{"id":"evt_7","type":"checkout.session.completed","data":{"object":{}}}`)

	_, err := p.VerifyAndParseWebhook(headerWith(signedHeader(testSecret, time.Now(), body)), body)
	assert.ErrorIs(t, err, ErrNoWebhookSecret)
}
