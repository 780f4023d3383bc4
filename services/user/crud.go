package user

import (
	"context"
	"errors"

	userRepo "capetown/database/repository/user"
	"capetown/models"
	"capetown/utils"
)

// GetProfile returns the user's own account record.
func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	return userRec, err
}

// UpdateFCMToken stores the device token used for payment reminders.
func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, userID, fcmToken string) error {
	return s.Repo.UpdateFCMToken(ctx, userID, fcmToken)
}

// DeleteAccount removes the account and revokes its session.
func (s *DefaultUserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.Repo.DeleteByID(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err()
}
