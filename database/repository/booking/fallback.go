package bookingRepo

import (
	"context"
	"encoding/json"
	"time"

	"capetown/models"

	"github.com/go-redis/redis/v8"
)

const fallbackPrefix = "booking:fallback:"

// FallbackStore is a non-authoritative stash for bookings that could not
// be written to the primary store. Records kept here are never
// reconciled back into MongoDB and never enter the payment flow; they
// exist so the user's request is not lost outright during an outage.
type FallbackStore interface {
	Stash(ctx context.Context, booking *models.Booking) error
	StashedForUser(ctx context.Context, userID string) ([]models.Booking, error)
}

type redisFallbackStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisFallbackStore returns a FallbackStore backed by the cache DB.
func NewRedisFallbackStore(client *redis.Client, ttl time.Duration) FallbackStore {
	return &redisFallbackStore{client: client, ttl: ttl}
}

func (s *redisFallbackStore) Stash(ctx context.Context, booking *models.Booking) error {
	b, err := json.Marshal(booking)
	if err != nil {
		return err
	}
	key := fallbackPrefix + booking.UserID + ":" + booking.ID
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *redisFallbackStore) StashedForUser(ctx context.Context, userID string) ([]models.Booking, error) {
	keys, err := s.client.Keys(ctx, fallbackPrefix+userID+":*").Result()
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	for _, key := range keys {
		data, err := s.client.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		var booking models.Booking
		if err := json.Unmarshal([]byte(data), &booking); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}
