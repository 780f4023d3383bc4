package user

import (
	"context"
	"time"

	userRepo "capetown/database/repository/user"
	"capetown/models"

	"go.uber.org/zap"
)

// tokenTTL is how long a sign-in token stays valid.
const tokenTTL = 72 * time.Hour

// AuthResponse is returned on successful registration or sign-in.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type UserService interface {
	RegisterUser(ctx context.Context, input models.User) (*AuthResponse, error)
	AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeToken(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateFCMToken(ctx context.Context, userID, fcmToken string) error
	DeleteAccount(ctx context.Context, userID string) error
}

// DefaultUserService is the production UserService backed by Mongo and
// the Redis auth cache.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}
