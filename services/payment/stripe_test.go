package payment

import (
	"context"
	"testing"

	"capetown/models"

	"go.uber.org/zap"
)

func validCheckoutRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		BookingID: "bk-1",
		ItemName:  "The Table Bay Hotel",
		Amount:    9000,
		CheckIn:   "2025-06-01",
		CheckOut:  "2025-06-03",
		UserID:    "u1",
		UserEmail: "u1@example.com",
		ItemID:    "h1",
	}
}

func TestValidateCheckoutRequest(t *testing.T) {
	if err := ValidateCheckoutRequest(validCheckoutRequest()); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	mutations := []struct {
		name   string
		mutate func(*models.CheckoutRequest)
	}{
		{"missing bookingId", func(r *models.CheckoutRequest) { r.BookingID = "" }},
		{"missing item name", func(r *models.CheckoutRequest) { r.ItemName = "" }},
		{"missing email", func(r *models.CheckoutRequest) { r.UserEmail = "" }},
		{"zero amount", func(r *models.CheckoutRequest) { r.Amount = 0 }},
		{"negative amount", func(r *models.CheckoutRequest) { r.Amount = -100 }},
	}

	for _, m := range mutations {
		req := validCheckoutRequest()
		m.mutate(&req)
		err := ValidateCheckoutRequest(req)
		if err == nil {
			t.Errorf("%s: expected an error", m.name)
			continue
		}
		if CodeOf(err) != CodeInvalidArgument {
			t.Errorf("%s: code = %q, want %q", m.name, CodeOf(err), CodeInvalidArgument)
		}
	}
}

// A bad request must be rejected before any remote call is attempted, so
// this runs safely with no Stripe key configured.
func TestCreateSessionRejectsInvalidRequestLocally(t *testing.T) {
	issuer := NewStripeCheckoutIssuer(zap.NewNop(), "https://example.test")

	req := validCheckoutRequest()
	req.Amount = -1

	_, err := issuer.CreateSession(context.Background(), req)
	if err == nil {
		t.Fatal("expected an error")
	}
	if CodeOf(err) != CodeInvalidArgument {
		t.Errorf("code = %q, want %q", CodeOf(err), CodeInvalidArgument)
	}
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	if got := CodeOf(context.DeadlineExceeded); got != CodeInternal {
		t.Errorf("CodeOf(plain error) = %q, want %q", got, CodeInternal)
	}
}
