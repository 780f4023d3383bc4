package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "capetown/database/repository/booking"
	"capetown/models"
	"capetown/services/catalog"
	"capetown/services/payment"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a booking does not exist or belongs to
// another user.
var ErrNotFound = errors.New("booking not found")

const paymentReminderDelay = time.Hour

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Fallback  bookingRepo.FallbackStore
	Issuer    payment.CheckoutIssuer
	Catalog   *catalog.Service
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

// CreateBooking validates the request, writes the pending record,
// creates a checkout session and returns the redirect. The record stays
// pending_payment until the Stripe webhook says otherwise. If the
// checkout call fails the pending record is deliberately left in place.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID, userEmail string, input models.BookingInput) (*BookingConfirmation, error) {
	item, err := s.Catalog.GetByID(input.ItemID)
	if err != nil {
		return nil, validationf("unknown item %q", input.ItemID)
	}

	normalizeInput(&input)
	if err := validateInput(item, input); err != nil {
		return nil, err
	}

	total, err := ComputeTotalPrice(item, input)
	if err != nil {
		return nil, err
	}

	record := &models.Booking{
		BookingNumber:   newBookingNumber(),
		ItemID:          item.ID,
		ItemName:        item.Name,
		ItemType:        itemType(item),
		UserID:          userID,
		UserEmail:       userEmail,
		CheckIn:         input.CheckIn,
		CheckOut:        input.CheckOut,
		Guests:          input.Guests,
		Rooms:           input.Rooms,
		Date:            input.Date,
		Time:            input.Time,
		PartySize:       input.PartySize,
		SpecialRequests: input.SpecialRequests,
		TotalPrice:      total,
	}

	bookingID, err := s.Repo.Create(ctx, record)
	if err != nil {
		// Degraded mode: stash the record locally so the request is not
		// lost. The stash is non-authoritative and never reaches payment.
		s.Logger.Error("primary booking store write failed, stashing locally",
			zap.String("bookingNumber", record.BookingNumber), zap.Error(err))
		if stashErr := s.Fallback.Stash(ctx, record); stashErr != nil {
			s.Logger.Error("fallback stash failed", zap.Error(stashErr))
			return nil, fmt.Errorf("failed to save booking: %w", err)
		}
		return &BookingConfirmation{Booking: record, Degraded: true}, nil
	}
	record.ID = bookingID

	session, err := s.Issuer.CreateSession(ctx, models.CheckoutRequest{
		BookingID: bookingID,
		ItemName:  item.Name,
		Amount:    total,
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
		UserID:    userID,
		UserEmail: userEmail,
		ItemID:    item.ID,
	})
	if err != nil {
		// No rollback: the pending record stays so the user can retry
		// payment from the bookings screen.
		s.Logger.Error("checkout session creation failed",
			zap.String("bookingID", bookingID), zap.Error(err))
		return nil, err
	}

	s.schedulePaymentReminder(ctx, record)

	return &BookingConfirmation{
		Booking:     record,
		SessionID:   session.SessionID,
		CheckoutURL: session.URL,
	}, nil
}

// GetBooking returns one of the caller's bookings. The success page
// polls this and must tolerate a still-pending status; no write happens
// here, the webhook owns terminal transitions.
func (s *DefaultBookingService) GetBooking(ctx context.Context, userID, id string) (*models.Booking, error) {
	record, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrNotFound
	}
	return record, nil
}

// ListBookings returns the caller's bookings, newest first, with any
// locally stashed records appended and flagged by their missing ID.
func (s *DefaultBookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	records, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stashed, err := s.Fallback.StashedForUser(ctx, userID)
	if err != nil {
		s.Logger.Warn("failed to read fallback stash", zap.Error(err))
		return records, nil
	}
	return append(records, stashed...), nil
}

// DeleteBooking removes one of the caller's bookings. This is the only
// deletion path; webhook processing never deletes.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, userID, id string) error {
	if _, err := s.GetBooking(ctx, userID, id); err != nil {
		return err
	}
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *DefaultBookingService) schedulePaymentReminder(ctx context.Context, record *models.Booking) {
	if s.Reminders == nil {
		return
	}
	payload := models.PaymentReminderPayload{
		BookingID: record.ID,
		UserID:    record.UserID,
		ItemName:  record.ItemName,
	}
	if err := s.Reminders.SchedulePaymentReminder(ctx, payload, paymentReminderDelay); err != nil {
		s.Logger.Warn("failed to schedule payment reminder",
			zap.String("bookingID", record.ID), zap.Error(err))
	}
}

// normalizeInput applies the booking form defaults: one guest, one room,
// a party of one.
func normalizeInput(input *models.BookingInput) {
	if input.Guests == 0 {
		input.Guests = 1
	}
	if input.Rooms == 0 {
		input.Rooms = 1
	}
	if input.PartySize == 0 {
		input.PartySize = 1
	}
}

func validateInput(item *models.CatalogItem, input models.BookingInput) error {
	if input.Guests < 1 || input.Rooms < 1 || input.PartySize < 1 {
		return validationf("guests, rooms and party size must be at least 1")
	}
	if item.IsAccommodation() {
		if input.CheckIn == "" || input.CheckOut == "" {
			return validationf("check-in and check-out dates are required")
		}
		if _, err := Nights(input.CheckIn, input.CheckOut); err != nil {
			return err
		}
		return nil
	}
	if input.Date == "" || input.Time == "" {
		return validationf("date and time are required")
	}
	return nil
}

func itemType(item *models.CatalogItem) string {
	if item.IsAccommodation() {
		return "accommodation"
	}
	return "restaurant"
}

func newBookingNumber() string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	return "BK" + millis[len(millis)-8:]
}
