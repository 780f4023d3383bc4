package bookingRepo

import (
	"context"
	"errors"
	"log"

	"capetown/database"
	"capetown/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no booking matches the given ID.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidTransition is returned when a status mutation would leave
	// the allowed lifecycle (e.g. refunded back to pending_payment).
	ErrInvalidTransition = errors.New("invalid booking status transition")
)

// BookingRepository owns all durable booking state. Terminal status
// transitions go through the Mark* methods so the guards cannot be bypassed.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	DeleteByID(ctx context.Context, id string) error

	MarkPaid(ctx context.Context, id, sessionID, paymentIntent string) error
	MarkPaymentFailed(ctx context.Context, id, reason string) error
	MarkRefunded(ctx context.Context, id string, amount float64) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("capetown")
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("bookings: %v", err)
	}
	return repo
}
