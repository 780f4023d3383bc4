package payment

import (
	"context"

	"capetown/models"
)

// CheckoutIssuer creates hosted checkout sessions for pending bookings.
// Implementations must validate the request before any remote call so a
// bad request never creates a session.
type CheckoutIssuer interface {
	CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
}

// ValidateCheckoutRequest enforces the issuer's caller contract:
// booking ID, item name, amount and email are required, and the amount
// must be positive.
func ValidateCheckoutRequest(req models.CheckoutRequest) error {
	if req.BookingID == "" || req.ItemName == "" || req.Amount == 0 || req.UserEmail == "" {
		return InvalidArgumentf("missing required fields: bookingId, accommodationName, amount, or userEmail")
	}
	if req.Amount <= 0 {
		return InvalidArgumentf("amount must be greater than 0")
	}
	return nil
}
