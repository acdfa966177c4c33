package notification

import (
	"context"
	"fmt"

	"postpilot/services/user"
	"postpilot/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
	NotifyPublishResult(ctx context.Context, userID, postID string, published bool, reason string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	User user.UserService
}

func NewDefaultNotificationService(userSvc user.UserService) (*DefaultNotificationService, error) {
	if userSvc == nil {
		return nil, fmt.Errorf("notification service initialization error: user service is nil")
	}
	return &DefaultNotificationService{User: userSvc}, nil
}

// SendPushNotification looks up a user's FCM token and sends a push.
func (s *DefaultNotificationService) SendPushNotification(
	ctx context.Context,
	userID, title, body string,
	data map[string]string,
) error {
	u, err := s.User.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendPushNotification: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendPushNotification: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPushNotification: failed to send message: %w", err)
	}
	return nil
}

// NotifyPublishResult tells the author whether their deferred post went out.
func (s *DefaultNotificationService) NotifyPublishResult(ctx context.Context, userID, postID string, published bool, reason string) error {
	data := map[string]string{"postId": postID}
	if published {
		return s.SendPushNotification(ctx, userID, "Post published", "Your LinkedIn post is live.", data)
	}
	body := "Your scheduled LinkedIn post could not be published."
	if reason != "" {
		body = body + " " + reason
	}
	return s.SendPushNotification(ctx, userID, "Publish failed", body, data)
}
