// File: services/notification/service.go
package notification

import (
	"context"

	notificationRepo "medibook/database/repository/notification"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/apperr"
	"medibook/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
}

func (s *DefaultNotificationService) Notify(ctx context.Context, userID, title, message, appointmentID string) error {
	n := &models.Notification{
		UserID:        userID,
		Type:          "appointment",
		Title:         title,
		Message:       message,
		AppointmentID: appointmentID,
	}
	if err := s.Repo.Insert(ctx, n); err != nil {
		return err
	}

	s.push(ctx, userID, title, message, appointmentID)
	return nil
}

// push sends the FCM message when the recipient has a registered token.
// Failures are logged only; the notification record already exists.
func (s *DefaultNotificationService) push(ctx context.Context, userID, title, message, appointmentID string) {
	logger := utils.GetLogger()

	if utils.FCMClient == nil {
		return
	}
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil || user.FCMToken == "" {
		logger.Debug("skipping push, no recipient token", zap.String("userId", userID))
		return
	}

	msg := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  message,
		},
		Data: map[string]string{
			"type":          "appointment",
			"appointmentId": appointmentID,
		},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		logger.Warn("failed to send push notification",
			zap.String("userId", userID), zap.Error(err))
	}
}

func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, userID string) error {
	if err := s.Repo.MarkRead(ctx, id, userID); err != nil {
		if err == notificationRepo.ErrNotFound {
			return apperr.NotFound("notification not found")
		}
		return err
	}
	return nil
}
