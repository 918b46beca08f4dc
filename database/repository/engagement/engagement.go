// File: database/repository/engagement/engagement.go
package engagementRepo

import (
	"context"
	"time"

	"medibook/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EngagementRepository answers read-only "has this appointment been commented
// or rated" checks for appointment detail views. Writes to comments and
// ratings belong to their own service.
type EngagementRepository interface {
	HasComment(ctx context.Context, appointmentID string) (bool, error)
	HasRating(ctx context.Context, appointmentID string) (bool, error)
}

type mongoEngagementRepo struct {
	comments *mongo.Collection
	ratings  *mongo.Collection
}

// NewMongoEngagementRepo constructs a new MongoDB EngagementRepository.
func NewMongoEngagementRepo() EngagementRepository {
	db := database.DB()
	return &mongoEngagementRepo{
		comments: db.Collection("comments"),
		ratings:  db.Collection("ratings"),
	}
}

func (r *mongoEngagementRepo) HasComment(ctx context.Context, appointmentID string) (bool, error) {
	return exists(ctx, r.comments, appointmentID)
}

func (r *mongoEngagementRepo) HasRating(ctx context.Context, appointmentID string) (bool, error) {
	return exists(ctx, r.ratings, appointmentID)
}

func exists(ctx context.Context, coll *mongo.Collection, appointmentID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := coll.CountDocuments(ctx, bson.M{"appointmentId": appointmentID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
