package itineraryRepo

import (
	"context"
	"errors"
	"log"

	"capetown/database"
	"capetown/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no itinerary matches the given ID.
var ErrNotFound = errors.New("itinerary not found")

type ItineraryRepository interface {
	Create(ctx context.Context, itinerary *models.Itinerary) (string, error)
	GetByID(ctx context.Context, id string) (*models.Itinerary, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Itinerary, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoItineraryRepo struct {
	coll *mongo.Collection
}

// NewMongoItineraryRepo returns a new ItineraryRepository instance using MongoDB.
func NewMongoItineraryRepo() ItineraryRepository {
	db := database.MongoClient.Database("capetown")
	repo := &mongoItineraryRepo{
		coll: db.Collection("itineraries"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("itineraries: %v", err)
	}
	return repo
}
