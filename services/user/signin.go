package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userRepo "capetown/database/repository/user"
	"capetown/models"
	"capetown/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser verifies credentials and issues a fresh token,
// invalidating any previously issued one.
func (s *DefaultUserService) AuthenticateUser(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	userRec, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.Logger.Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(ctx, userRec)
}

// issueToken generates a JWT, records its hash in Mongo and the auth
// cache, and builds the auth response.
func (s *DefaultUserService) issueToken(ctx context.Context, userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, tokenTTL)
	if err != nil {
		s.Logger.Error("issueToken: failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateTokenHash(ctx, userRec.ID, tokenHash); err != nil {
		s.Logger.Error("issueToken: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, tokenHash, tokenTTL).Err(); err != nil {
		// Cache misses fall back to Mongo during auth, so only log.
		s.Logger.Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:    userRec.ID,
		Name:  userRec.Name,
		Email: userRec.Email,
		Token: token,
	}, nil
}

// RevokeToken signs the user out everywhere by clearing the stored hash.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	if err := s.Repo.UpdateTokenHash(ctx, userID, ""); err != nil {
		return err
	}
	return utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err()
}
