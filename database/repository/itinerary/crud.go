package itineraryRepo

import (
	"context"
	"time"

	"capetown/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new itinerary and returns its ID.
func (r *mongoItineraryRepo) Create(ctx context.Context, itinerary *models.Itinerary) (string, error) {
	if itinerary.ID == "" {
		itinerary.ID = uuid.New().String()
	}
	itinerary.CreatedAt = time.Now()
	itinerary.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, itinerary)
	if err != nil {
		return "", err
	}
	return itinerary.ID, nil
}

// GetByID returns an itinerary by its ID.
func (r *mongoItineraryRepo) GetByID(ctx context.Context, id string) (*models.Itinerary, error) {
	var itinerary models.Itinerary
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&itinerary)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// GetByUserID fetches all itineraries saved by a user, newest first.
func (r *mongoItineraryRepo) GetByUserID(ctx context.Context, userID string) ([]models.Itinerary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var itineraries []models.Itinerary
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

// DeleteByID removes an itinerary by ID.
func (r *mongoItineraryRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
