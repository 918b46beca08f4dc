// File: services/notification/interface.go
package notification

import (
	"context"

	"medibook/models"
)

// NotificationService records in-app notifications and pushes them to the
// recipient's device when possible. Delivery is best effort throughout:
// callers log failures and move on, a lost push never rolls anything back.
type NotificationService interface {
	Notify(ctx context.Context, userID, title, message, appointmentID string) error
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}
