package payment

import (
	"context"
	"fmt"
	"math"

	"capetown/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

const productImage = "https://images.unsplash.com/photo-1580060839134-75a5edca2e99?w=400" // Table Mountain

// StripeCheckoutIssuer creates Stripe-hosted checkout sessions priced in
// ZAR. The booking ID travels in both the client reference and the
// session metadata so the webhook can locate the record later.
type StripeCheckoutIssuer struct {
	logger      *zap.Logger
	siteBaseURL string
}

// NewStripeCheckoutIssuer builds the issuer. siteBaseURL is used when the
// caller does not supply explicit redirect targets.
func NewStripeCheckoutIssuer(logger *zap.Logger, siteBaseURL string) *StripeCheckoutIssuer {
	return &StripeCheckoutIssuer{logger: logger, siteBaseURL: siteBaseURL}
}

// CreateSession validates the request and asks Stripe for one checkout
// session. Amounts arrive in ZAR major units and are billed in cents.
func (i *StripeCheckoutIssuer) CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	if err := ValidateCheckoutRequest(req); err != nil {
		return nil, err
	}

	checkIn := orNA(req.CheckIn)
	checkOut := orNA(req.CheckOut)

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = i.siteBaseURL + "/booking-success"
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = i.siteBaseURL + "/booking-cancelled"
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("zar"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.ItemName),
						Description: stripe.String(fmt.Sprintf("Booking from %s to %s", checkIn, checkOut)),
						Images:      stripe.StringSlice([]string{productImage}),
					},
					UnitAmount: stripe.Int64(int64(math.Round(req.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(fmt.Sprintf("%s?session_id={CHECKOUT_SESSION_ID}&booking_id=%s", successURL, req.BookingID)),
		CancelURL:         stripe.String(fmt.Sprintf("%s?booking_id=%s", cancelURL, req.BookingID)),
		CustomerEmail:     stripe.String(req.UserEmail),
		ClientReferenceID: stripe.String(req.BookingID),
	}
	params.Context = ctx
	params.AddMetadata("bookingId", req.BookingID)
	params.AddMetadata("userId", req.UserID)
	params.AddMetadata("accommodationId", orNA(req.ItemID))
	params.AddMetadata("amount", fmt.Sprintf("%g", req.Amount))
	params.AddMetadata("checkIn", checkIn)
	params.AddMetadata("checkOut", checkOut)

	sess, err := session.New(params)
	if err != nil {
		i.logger.Error("stripe checkout session creation failed",
			zap.String("bookingID", req.BookingID), zap.Error(err))
		return nil, Internalf("Failed to create checkout session: %v", err)
	}

	i.logger.Info("stripe checkout session created",
		zap.String("bookingID", req.BookingID),
		zap.String("sessionID", sess.ID))

	return &models.CheckoutSession{
		SessionID: sess.ID,
		URL:       sess.URL,
		Success:   true,
	}, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
