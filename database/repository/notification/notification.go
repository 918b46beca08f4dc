// File: database/repository/notification/notification.go
package notificationRepo

import (
	"context"
	"errors"
	"time"

	"medibook/database"
	"medibook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no notification matches the query.
var ErrNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Insert(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}

func (r *mongoNotificationRepo) Insert(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	_, err := r.coll.InsertOne(ctx, n)
	return err
}

func (r *mongoNotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *mongoNotificationRepo) MarkRead(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "userId": userID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
