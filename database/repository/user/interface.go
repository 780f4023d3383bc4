package userRepo

import (
	"context"
	"errors"
	"log"

	"capetown/database"
	"capetown/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no user matches the given lookup.
var ErrNotFound = errors.New("user not found")

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	UpdateFCMToken(ctx context.Context, id, fcmToken string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a new UserRepository instance using MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("capetown")
	repo := &mongoUserRepo{
		coll: db.Collection("users"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("users: %v", err)
	}
	return repo
}
