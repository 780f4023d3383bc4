package booking

import (
	"context"
	"time"

	"capetown/models"
)

// BookingConfirmation is returned after a booking is created: the stored
// record plus the hosted checkout redirect. Degraded means the primary
// store was unavailable and the record only exists in the local stash;
// no checkout session was created for it.
type BookingConfirmation struct {
	Booking     *models.Booking `json:"booking"`
	SessionID   string          `json:"sessionId,omitempty"`
	CheckoutURL string          `json:"checkoutUrl,omitempty"`
	Degraded    bool            `json:"degraded,omitempty"`
}

// BookingService sequences the pending-record write, the checkout
// session creation and the read-side operations the booking pages need.
type BookingService interface {
	CreateBooking(ctx context.Context, userID, userEmail string, input models.BookingInput) (*BookingConfirmation, error)
	GetBooking(ctx context.Context, userID, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, userID, id string) error
}

// ReminderScheduler enqueues a payment-pending reminder to fire after
// the given delay. Implementations are best effort.
type ReminderScheduler interface {
	SchedulePaymentReminder(ctx context.Context, payload models.PaymentReminderPayload, delay time.Duration) error
}
