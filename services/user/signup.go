package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "capetown/database/repository/user"
	"capetown/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates an account and signs the new user in.
func (s *DefaultUserService) RegisterUser(ctx context.Context, input models.User) (*AuthResponse, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		s.Logger.Error("RegisterUser: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}
	input.Password = ""
	input.PasswordHash = string(hash)

	id, err := s.Repo.Create(ctx, &input)
	if err != nil {
		s.Logger.Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	input.ID = id

	return s.issueToken(ctx, &input)
}
