package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hungryman.com/server/internal/modules/donations"
	"hungryman.com/server/internal/modules/payments"
)

func webhookRouter(p payments.Provider, rec donations.Recorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := testLogger()
	svc := donations.NewService(p, rec, logger, "http://localhost:5173", "http://localhost:5173/donate-cancel")

	r := gin.New()
	h := NewWebhookHandler(logger, p, svc)
	r.POST("/webhook", h.Handle)
	return r
}

func postWebhook(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set(payments.SignatureHeader, "t=0,v1=stubbed")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookCompletedSessionRecordsDonation(t *testing.T) {
	p := &stubProvider{verifyEvent: payments.WebhookEvent{
		EventID:       "evt_1",
		Type:          payments.EventCheckoutCompleted,
		SessionID:     "cs_1",
		AmountTotal:   5000,
		Currency:      "usd",
		PaymentStatus: "paid",
	}}
	rec := &donations.MockRecorder{}
	r := webhookRouter(p, rec)

	w := postWebhook(r, `{"id":"evt_1"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if want := `{"received":true}`; w.Body.String() != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}
	if len(rec.Donations) != 1 {
		t.Fatalf("donations = %d, want 1", len(rec.Donations))
	}
	d := rec.Donations[0]
	if d.CheckoutSessionID != "cs_1" || d.AmountCents != 5000 || d.Currency != "usd" || d.PaymentStatus != "paid" {
		t.Errorf("unexpected donation: %+v", d)
	}
}

func TestWebhookInvalidSignature(t *testing.T) {
	p := &stubProvider{verifyErr: errors.New("no valid signature")}
	rec := &donations.MockRecorder{}
	r := webhookRouter(p, rec)

	w := postWebhook(r, `{"id":"evt_2"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "Webhook Error: ") {
		t.Errorf("body = %q, want Webhook Error prefix", w.Body.String())
	}
	if len(rec.Donations) != 0 {
		t.Errorf("donations = %d, want 0", len(rec.Donations))
	}
}

func TestWebhookOtherEventTypeAcknowledged(t *testing.T) {
	p := &stubProvider{verifyEvent: payments.WebhookEvent{EventID: "evt_3", Type: "invoice.paid"}}
	rec := &donations.MockRecorder{}
	r := webhookRouter(p, rec)

	w := postWebhook(r, `{"id":"evt_3"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if want := `{"received":true}`; w.Body.String() != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}
	if len(rec.Donations) != 0 {
		t.Errorf("donations = %d, want 0", len(rec.Donations))
	}
}

func TestWebhookRecorderFailureStillAcknowledged(t *testing.T) {
	p := &stubProvider{verifyEvent: payments.WebhookEvent{
		EventID:   "evt_4",
		Type:      payments.EventCheckoutCompleted,
		SessionID: "cs_4",
	}}
	rec := &donations.MockRecorder{Err: errors.New("firestore unavailable")}
	r := webhookRouter(p, rec)

	w := postWebhook(r, `{"id":"evt_4"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if want := `{"received":true}`; w.Body.String() != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}
}
