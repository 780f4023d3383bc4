package userRepo

import (
	"context"
	"time"

	"capetown/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new user record and returns its ID.
func (r *mongoUserRepo) Create(ctx context.Context, user *models.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetByID returns a user by ID.
func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns a user by email address.
func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateTokenHash stores the hash of the user's current auth token.
func (r *mongoUserRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	return r.setField(ctx, id, "token_hash", tokenHash)
}

// UpdateFCMToken stores the user's push notification token.
func (r *mongoUserRepo) UpdateFCMToken(ctx context.Context, id, fcmToken string) error {
	return r.setField(ctx, id, "fcm_token", fcmToken)
}

// DeleteByID removes a user record.
func (r *mongoUserRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoUserRepo) setField(ctx context.Context, id, field string, value interface{}) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		field:        value,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
