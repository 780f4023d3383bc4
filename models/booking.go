package models

import "time"

// Booking statuses. A booking starts as pending payment and only the
// Stripe webhook moves it to a terminal status.
const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusPaid           = "paid"
	BookingStatusPaymentFailed  = "payment_failed"
	BookingStatusRefunded       = "refunded"
)

// Booking represents a reservation for an accommodation or a restaurant
// table together with its payment lifecycle.
type Booking struct {
	ID            string `bson:"id" json:"id"`
	BookingNumber string `bson:"booking_number" json:"bookingNumber"` // Short human-facing reference (e.g. "BK20260830")
	ItemID        string `bson:"item_id" json:"itemId"`
	ItemName      string `bson:"item_name" json:"itemName"`
	ItemType      string `bson:"item_type" json:"itemType"` // "accommodation" or "restaurant"
	UserID        string `bson:"user_id" json:"userId"`
	UserEmail     string `bson:"user_email" json:"userEmail"`

	// Accommodation parameters.
	CheckIn  string `bson:"check_in,omitempty" json:"checkIn,omitempty"`   // "YYYY-MM-DD"
	CheckOut string `bson:"check_out,omitempty" json:"checkOut,omitempty"` // "YYYY-MM-DD"
	Guests   int    `bson:"guests,omitempty" json:"guests,omitempty"`
	Rooms    int    `bson:"rooms,omitempty" json:"rooms,omitempty"`

	// Restaurant parameters.
	Date      string `bson:"date,omitempty" json:"date,omitempty"` // "YYYY-MM-DD"
	Time      string `bson:"time,omitempty" json:"time,omitempty"` // "HH:MM"
	PartySize int    `bson:"party_size,omitempty" json:"partySize,omitempty"`

	SpecialRequests string  `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	TotalPrice      float64 `bson:"total_price" json:"totalPrice"` // ZAR, major units
	Status          string  `bson:"status" json:"status"`

	// Payment reconciliation fields, written by the webhook only.
	StripeSessionID     string     `bson:"stripe_session_id,omitempty" json:"stripeSessionId,omitempty"`
	StripePaymentIntent string     `bson:"stripe_payment_intent,omitempty" json:"stripePaymentIntent,omitempty"`
	FailureReason       string     `bson:"failure_reason,omitempty" json:"failureReason,omitempty"`
	RefundAmount        float64    `bson:"refund_amount,omitempty" json:"refundAmount,omitempty"`
	PaidAt              *time.Time `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	RefundedAt          *time.Time `bson:"refunded_at,omitempty" json:"refundedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// allowedTransitions maps a status to the statuses it may move to.
// A failed payment may still complete on retry; a paid booking may be
// refunded. Nothing ever returns to pending_payment.
var allowedTransitions = map[string][]string{
	BookingStatusPendingPayment: {BookingStatusPaid, BookingStatusPaymentFailed, BookingStatusRefunded},
	BookingStatusPaymentFailed:  {BookingStatusPaid},
	BookingStatusPaid:           {BookingStatusRefunded},
	BookingStatusRefunded:       {},
}

// CanTransition reports whether a booking may move from one status to another.
// Re-applying the current status is allowed so webhook redeliveries stay idempotent.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionSources returns the statuses from which a booking may reach
// the given status. Used to build guarded update filters.
func TransitionSources(to string) []string {
	var sources []string
	for from, nexts := range allowedTransitions {
		for _, next := range nexts {
			if next == to {
				sources = append(sources, from)
			}
		}
	}
	return sources
}

// BookingInput is the caller-supplied payload for creating a booking.
// Required vs optional fields are validated at the service boundary.
type BookingInput struct {
	ItemID          string `json:"itemId" binding:"required"`
	CheckIn         string `json:"checkIn,omitempty"`
	CheckOut        string `json:"checkOut,omitempty"`
	Guests          int    `json:"guests,omitempty"`
	Rooms           int    `json:"rooms,omitempty"`
	Date            string `json:"date,omitempty"`
	Time            string `json:"time,omitempty"`
	PartySize       int    `json:"partySize,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}
