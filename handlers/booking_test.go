package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"capetown/models"
	"capetown/services/booking"

	"github.com/gin-gonic/gin"
)

type stubBookingService struct {
	confirmation *booking.BookingConfirmation
	createErr    error
	bookings     map[string]*models.Booking
}

func (s *stubBookingService) CreateBooking(ctx context.Context, userID, userEmail string, input models.BookingInput) (*booking.BookingConfirmation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.confirmation, nil
}

func (s *stubBookingService) GetBooking(ctx context.Context, userID, id string) (*models.Booking, error) {
	if b, ok := s.bookings[id]; ok && b.UserID == userID {
		return b, nil
	}
	return nil, booking.ErrNotFound
}

func (s *stubBookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *stubBookingService) DeleteBooking(ctx context.Context, userID, id string) error {
	if b, ok := s.bookings[id]; ok && b.UserID == userID {
		delete(s.bookings, id)
		return nil
	}
	return booking.ErrNotFound
}

func newBookingRouter(svc booking.BookingService, userID string) *gin.Engine {
	r := gin.New()
	authed := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("userID", userID)
			c.Set("userEmail", userID+"@example.com")
			h(c)
		}
	}
	r.POST("/api/bookings", authed(CreateBookingHandler(svc)))
	r.GET("/api/bookings", authed(ListBookingsHandler(svc)))
	r.GET("/api/bookings/:id", authed(GetBookingHandler(svc)))
	r.DELETE("/api/bookings/:id", authed(DeleteBookingHandler(svc)))
	return r
}

func TestCreateBookingHandlerReturnsRedirect(t *testing.T) {
	svc := &stubBookingService{
		confirmation: &booking.BookingConfirmation{
			Booking: &models.Booking{
				ID:         "bk-1",
				ItemID:     "h1",
				Status:     models.BookingStatusPendingPayment,
				TotalPrice: 9000,
			},
			SessionID:   "cs_1",
			CheckoutURL: "https://checkout.stripe.com/cs_1",
		},
	}
	router := newBookingRouter(svc, "u1")

	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"itemId": "h1", "checkIn": "2025-06-01", "checkOut": "2025-06-03"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}

	var conf booking.BookingConfirmation
	if err := json.Unmarshal(w.Body.Bytes(), &conf); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if conf.Booking.Status != models.BookingStatusPendingPayment {
		t.Errorf("status = %q, want pending_payment", conf.Booking.Status)
	}
	if conf.CheckoutURL == "" {
		t.Error("missing checkout URL")
	}
}

func TestCreateBookingHandlerRejectsMissingItemID(t *testing.T) {
	router := newBookingRouter(&stubBookingService{}, "u1")

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	svc := &stubBookingService{bookings: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", UserID: "someone-else"},
	}}
	router := newBookingRouter(svc, "u1")

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/bk-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for a foreign booking", w.Code)
	}
}

func TestDeleteBookingHandler(t *testing.T) {
	svc := &stubBookingService{bookings: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", UserID: "u1"},
	}}
	router := newBookingRouter(svc, "u1")

	req := httptest.NewRequest(http.MethodDelete, "/api/bookings/bk-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if _, ok := svc.bookings["bk-1"]; ok {
		t.Error("booking not deleted")
	}
}
