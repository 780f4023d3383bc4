package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "capetown/database/repository/booking"
	"capetown/models"
	"capetown/services/catalog"

	"go.uber.org/zap"
)

type stubRepo struct {
	createErr error
	created   []*models.Booking
	byID      map[string]*models.Booking
}

func (s *stubRepo) Create(ctx context.Context, b *models.Booking) (string, error) {
	if s.createErr != nil {
		return "", s.createErr
	}
	b.ID = "bk-123"
	b.Status = models.BookingStatusPendingPayment
	s.created = append(s.created, b)
	return b.ID, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := s.byID[id]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrNotFound
}

func (s *stubRepo) GetByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.byID {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *stubRepo) DeleteByID(ctx context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *stubRepo) MarkPaid(ctx context.Context, id, sessionID, paymentIntent string) error {
	return nil
}
func (s *stubRepo) MarkPaymentFailed(ctx context.Context, id, reason string) error { return nil }
func (s *stubRepo) MarkRefunded(ctx context.Context, id string, amount float64) error {
	return nil
}

type stubFallback struct {
	stashed  []*models.Booking
	stashErr error
}

func (s *stubFallback) Stash(ctx context.Context, b *models.Booking) error {
	if s.stashErr != nil {
		return s.stashErr
	}
	s.stashed = append(s.stashed, b)
	return nil
}

func (s *stubFallback) StashedForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.stashed {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type stubIssuer struct {
	err      error
	lastReq  models.CheckoutRequest
	sessions int
}

func (s *stubIssuer) CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastReq = req
	s.sessions++
	return &models.CheckoutSession{SessionID: "cs_test_1", URL: "https://checkout.stripe.com/pay/cs_test_1", Success: true}, nil
}

type stubScheduler struct {
	payloads []models.PaymentReminderPayload
}

func (s *stubScheduler) SchedulePaymentReminder(ctx context.Context, p models.PaymentReminderPayload, delay time.Duration) error {
	s.payloads = append(s.payloads, p)
	return nil
}

func newTestService(repo *stubRepo, fb *stubFallback, issuer *stubIssuer) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:      repo,
		Fallback:  fb,
		Issuer:    issuer,
		Catalog:   catalog.NewService(),
		Reminders: &stubScheduler{},
		Logger:    zap.NewNop(),
	}
}

func TestCreateBookingHappyPath(t *testing.T) {
	repo := &stubRepo{byID: map[string]*models.Booking{}}
	issuer := &stubIssuer{}
	svc := newTestService(repo, &stubFallback{}, issuer)

	conf, err := svc.CreateBooking(context.Background(), "u1", "u1@example.com", models.BookingInput{
		ItemID:   "h1",
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conf.Degraded {
		t.Error("expected a non-degraded confirmation")
	}
	if conf.Booking.Status != models.BookingStatusPendingPayment {
		t.Errorf("status = %q, want pending_payment", conf.Booking.Status)
	}
	if conf.Booking.TotalPrice != 9000 {
		t.Errorf("total = %v, want 9000 (4500 x 2 nights x 1 room)", conf.Booking.TotalPrice)
	}
	if conf.SessionID != "cs_test_1" || conf.CheckoutURL == "" {
		t.Errorf("missing checkout redirect: %+v", conf)
	}
	if issuer.lastReq.BookingID != "bk-123" {
		t.Errorf("issuer got bookingID %q, want bk-123", issuer.lastReq.BookingID)
	}
	if issuer.lastReq.Amount != 9000 {
		t.Errorf("issuer got amount %v, want 9000", issuer.lastReq.Amount)
	}
}

func TestCreateBookingUnknownItem(t *testing.T) {
	svc := newTestService(&stubRepo{byID: map[string]*models.Booking{}}, &stubFallback{}, &stubIssuer{})

	_, err := svc.CreateBooking(context.Background(), "u1", "u1@example.com", models.BookingInput{ItemID: "nope"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestCreateBookingStoreFailureStashesLocally(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("mongo down"), byID: map[string]*models.Booking{}}
	fb := &stubFallback{}
	issuer := &stubIssuer{}
	svc := newTestService(repo, fb, issuer)

	conf, err := svc.CreateBooking(context.Background(), "u1", "u1@example.com", models.BookingInput{
		ItemID:   "h1",
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conf.Degraded {
		t.Error("expected a degraded confirmation")
	}
	if len(fb.stashed) != 1 {
		t.Fatalf("stashed %d records, want 1", len(fb.stashed))
	}
	// A stashed record never reaches the payment processor.
	if issuer.sessions != 0 {
		t.Errorf("issuer called %d times for a degraded booking, want 0", issuer.sessions)
	}
	if conf.SessionID != "" || conf.CheckoutURL != "" {
		t.Errorf("degraded confirmation carries a checkout redirect: %+v", conf)
	}
}

func TestCreateBookingStashFailurePropagates(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("mongo down"), byID: map[string]*models.Booking{}}
	fb := &stubFallback{stashErr: errors.New("redis down")}
	svc := newTestService(repo, fb, &stubIssuer{})

	_, err := svc.CreateBooking(context.Background(), "u1", "u1@example.com", models.BookingInput{
		ItemID:   "h1",
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	})
	if err == nil {
		t.Fatal("expected an error when both stores fail")
	}
}

func TestCreateBookingCheckoutFailureKeepsPendingRecord(t *testing.T) {
	repo := &stubRepo{byID: map[string]*models.Booking{}}
	issuer := &stubIssuer{err: errors.New("stripe unavailable")}
	svc := newTestService(repo, &stubFallback{}, issuer)

	_, err := svc.CreateBooking(context.Background(), "u1", "u1@example.com", models.BookingInput{
		ItemID:   "h1",
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-03",
	})
	if err == nil {
		t.Fatal("expected the checkout error to propagate")
	}
	// No rollback: the pending record stays for a later payment retry.
	if len(repo.created) != 1 {
		t.Errorf("pending records = %d, want 1", len(repo.created))
	}
}

func TestCreateBookingRestaurantNeedsDateAndTime(t *testing.T) {
	svc := newTestService(&stubRepo{byID: map[string]*models.Booking{}}, &stubFallback{}, &stubIssuer{})

	_, err := svc.CreateBooking(context.Background(), "u1", "u1@example.com", models.BookingInput{ItemID: "r1"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error, got %v", err)
	}

	conf, err := svc.CreateBooking(context.Background(), "u1", "u1@example.com", models.BookingInput{
		ItemID:    "r1",
		Date:      "2025-06-01",
		Time:      "19:00",
		PartySize: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.Booking.ItemType != "restaurant" {
		t.Errorf("itemType = %q, want restaurant", conf.Booking.ItemType)
	}
	if conf.Booking.TotalPrice != 1900 {
		t.Errorf("total = %v, want 1900 (950 x 2)", conf.Booking.TotalPrice)
	}
}

func TestGetBookingEnforcesOwnership(t *testing.T) {
	repo := &stubRepo{byID: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", UserID: "u1"},
	}}
	svc := newTestService(repo, &stubFallback{}, &stubIssuer{})

	if _, err := svc.GetBooking(context.Background(), "u1", "bk-1"); err != nil {
		t.Errorf("owner lookup failed: %v", err)
	}
	if _, err := svc.GetBooking(context.Background(), "u2", "bk-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign lookup = %v, want ErrNotFound", err)
	}
}

func TestListBookingsIncludesStash(t *testing.T) {
	repo := &stubRepo{byID: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", UserID: "u1"},
	}}
	fb := &stubFallback{stashed: []*models.Booking{
		{BookingNumber: "BK00000001", UserID: "u1"},
	}}
	svc := newTestService(repo, fb, &stubIssuer{})

	records, err := svc.ListBookings(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2 (one stored, one stashed)", len(records))
	}
}

func TestDeleteBookingEnforcesOwnership(t *testing.T) {
	repo := &stubRepo{byID: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", UserID: "u1"},
	}}
	svc := newTestService(repo, &stubFallback{}, &stubIssuer{})

	if err := svc.DeleteBooking(context.Background(), "u2", "bk-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign delete = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteBooking(context.Background(), "u1", "bk-1"); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
}
