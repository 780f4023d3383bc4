package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	bookingRepo "capetown/database/repository/booking"
	"capetown/models"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload produces a Stripe-Signature header value for the payload,
// HMAC-SHA256 over "<timestamp>.<payload>".
func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func eventPayload(eventType, object string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"object": "event",
		"api_version": %q,
		"type": %q,
		"data": {"object": %s}
	}`, stripe.APIVersion, eventType, object))
}

type recordingRepo struct {
	paid       []string
	sessionIDs []string
	intents    []string
	failed     map[string]string
	refunded   map[string]float64
	err        error
}

func newRecordingStub() *recordingRepo {
	return &recordingRepo{failed: map[string]string{}, refunded: map[string]float64{}}
}

func (r *recordingRepo) Create(ctx context.Context, b *models.Booking) (string, error) {
	return "", nil
}

func (r *recordingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}

func (r *recordingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (r *recordingRepo) DeleteByID(ctx context.Context, id string) error { return nil }

func (r *recordingRepo) MarkPaid(ctx context.Context, id, sessionID, paymentIntent string) error {
	if r.err != nil {
		return r.err
	}
	r.paid = append(r.paid, id)
	r.sessionIDs = append(r.sessionIDs, sessionID)
	r.intents = append(r.intents, paymentIntent)
	return nil
}

func (r *recordingRepo) MarkPaymentFailed(ctx context.Context, id, reason string) error {
	if r.err != nil {
		return r.err
	}
	r.failed[id] = reason
	return nil
}

func (r *recordingRepo) MarkRefunded(ctx context.Context, id string, amount float64) error {
	if r.err != nil {
		return r.err
	}
	r.refunded[id] = amount
	return nil
}

func (r *recordingRepo) mutations() int {
	return len(r.paid) + len(r.failed) + len(r.refunded)
}

func newTestProcessor(repo bookingRepo.BookingRepository) *WebhookProcessor {
	return NewWebhookProcessor(repo, testWebhookSecret, zap.NewNop())
}

func TestProcessRejectsBadSignature(t *testing.T) {
	repo := newRecordingStub()
	p := newTestProcessor(repo)

	payload := eventPayload("checkout.session.completed", `{"id": "cs_1", "client_reference_id": "bk-1"}`)

	cases := []struct {
		name   string
		header string
	}{
		{"wrong secret", signPayload(payload, "whsec_other", time.Now())},
		{"garbage header", "t=123,v1=deadbeef"},
		{"empty header", ""},
		{"stale timestamp", signPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour))},
	}

	for _, tc := range cases {
		err := p.Process(context.Background(), payload, tc.header)
		var sigErr *SignatureError
		if !errors.As(err, &sigErr) {
			t.Errorf("%s: got %v, want *SignatureError", tc.name, err)
		}
	}

	if repo.mutations() != 0 {
		t.Errorf("rejected payloads caused %d mutations, want 0", repo.mutations())
	}
}

func TestProcessCheckoutCompleted(t *testing.T) {
	repo := newRecordingStub()
	p := newTestProcessor(repo)

	payload := eventPayload("checkout.session.completed",
		`{"id": "cs_1", "client_reference_id": "bk-1", "payment_intent": "pi_1"}`)
	sig := signPayload(payload, testWebhookSecret, time.Now())

	if err := p.Process(context.Background(), payload, sig); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.paid) != 1 || repo.paid[0] != "bk-1" {
		t.Errorf("paid = %v, want [bk-1]", repo.paid)
	}
	if repo.sessionIDs[0] != "cs_1" || repo.intents[0] != "pi_1" {
		t.Errorf("reconciliation fields = (%q, %q), want (cs_1, pi_1)", repo.sessionIDs[0], repo.intents[0])
	}
}

func TestProcessCheckoutCompletedMetadataFallback(t *testing.T) {
	repo := newRecordingStub()
	p := newTestProcessor(repo)

	payload := eventPayload("checkout.session.completed",
		`{"id": "cs_1", "metadata": {"bookingId": "bk-2"}}`)
	sig := signPayload(payload, testWebhookSecret, time.Now())

	if err := p.Process(context.Background(), payload, sig); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.paid) != 1 || repo.paid[0] != "bk-2" {
		t.Errorf("paid = %v, want [bk-2]", repo.paid)
	}
}

func TestProcessPaymentFailed(t *testing.T) {
	repo := newRecordingStub()
	p := newTestProcessor(repo)

	payload := eventPayload("payment_intent.payment_failed",
		`{"id": "pi_1", "metadata": {"bookingId": "bk-1"}, "last_payment_error": {"message": "Your card was declined."}}`)
	sig := signPayload(payload, testWebhookSecret, time.Now())

	if err := p.Process(context.Background(), payload, sig); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.failed["bk-1"] != "Your card was declined." {
		t.Errorf("reason = %q, want the card decline message", repo.failed["bk-1"])
	}
}

func TestProcessPaymentFailedWithoutReason(t *testing.T) {
	repo := newRecordingStub()
	p := newTestProcessor(repo)

	payload := eventPayload("payment_intent.payment_failed",
		`{"id": "pi_1", "metadata": {"bookingId": "bk-1"}}`)
	sig := signPayload(payload, testWebhookSecret, time.Now())

	if err := p.Process(context.Background(), payload, sig); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.failed["bk-1"] != "Unknown error" {
		t.Errorf("reason = %q, want \"Unknown error\"", repo.failed["bk-1"])
	}
}

func TestProcessChargeRefunded(t *testing.T) {
	repo := newRecordingStub()
	p := newTestProcessor(repo)

	payload := eventPayload("charge.refunded",
		`{"id": "ch_1", "metadata": {"bookingId": "bk-1"}, "amount_refunded": 450000}`)
	sig := signPayload(payload, testWebhookSecret, time.Now())

	if err := p.Process(context.Background(), payload, sig); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.refunded["bk-1"] != 4500 {
		t.Errorf("refund amount = %v, want 4500.00", repo.refunded["bk-1"])
	}
}

func TestProcessUnknownEventIsAcknowledged(t *testing.T) {
	repo := newRecordingStub()
	p := newTestProcessor(repo)

	payload := eventPayload("customer.created", `{"id": "cus_1"}`)
	sig := signPayload(payload, testWebhookSecret, time.Now())

	if err := p.Process(context.Background(), payload, sig); err != nil {
		t.Fatalf("unknown event should be acknowledged, got %v", err)
	}
	if repo.mutations() != 0 {
		t.Errorf("unknown event caused %d mutations, want 0", repo.mutations())
	}
}

func TestProcessDropsPermanentFailures(t *testing.T) {
	payload := eventPayload("checkout.session.completed",
		`{"id": "cs_1", "client_reference_id": "bk-gone"}`)
	sig := signPayload(payload, testWebhookSecret, time.Now())

	for _, permErr := range []error{bookingRepo.ErrNotFound, bookingRepo.ErrInvalidTransition} {
		repo := newRecordingStub()
		repo.err = permErr
		p := newTestProcessor(repo)

		if err := p.Process(context.Background(), payload, sig); err != nil {
			t.Errorf("permanent failure %v should be acknowledged, got %v", permErr, err)
		}
	}
}

func TestProcessPropagatesStoreErrors(t *testing.T) {
	repo := newRecordingStub()
	repo.err = errors.New("mongo timeout")
	p := newTestProcessor(repo)

	payload := eventPayload("checkout.session.completed",
		`{"id": "cs_1", "client_reference_id": "bk-1"}`)
	sig := signPayload(payload, testWebhookSecret, time.Now())

	if err := p.Process(context.Background(), payload, sig); err == nil {
		t.Fatal("store errors must propagate so the event redelivers")
	}
}
