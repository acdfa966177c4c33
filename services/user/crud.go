package user

import (
	"context"
	"fmt"
	"time"

	"postpilot/models"
)

// GetUserByID fetches a user account.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return u, nil
}

// UpdateFCMToken stores the device token used for publish notifications.
func (s *DefaultUserService) UpdateFCMToken(ctx context.Context, userID, token string) error {
	fields := map[string]interface{}{
		"fcmToken":  token,
		"updatedAt": time.Now(),
	}
	if err := s.Repo.UpdateFields(ctx, userID, fields); err != nil {
		return fmt.Errorf("failed to update FCM token: %w", err)
	}
	return nil
}

// UpdateLinkedInToken stores the member access token used for publishing.
func (s *DefaultUserService) UpdateLinkedInToken(ctx context.Context, userID, token string) error {
	fields := map[string]interface{}{
		"linkedinToken": token,
		"updatedAt":     time.Now(),
	}
	if err := s.Repo.UpdateFields(ctx, userID, fields); err != nil {
		return fmt.Errorf("failed to update LinkedIn token: %w", err)
	}
	return nil
}
