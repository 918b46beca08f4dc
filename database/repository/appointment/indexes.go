// File: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
// The partial unique index on (doctorId, date, time) is what makes concurrent
// bookings of the same slot lose with a duplicate-key error instead of racing
// past an application-level check. It is scoped to active statuses so a
// cancelled appointment frees the slot for rebooking.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_slot").
				SetPartialFilterExpression(bson.D{
					{Key: "status", Value: bson.D{{Key: "$in", Value: bson.A{models.StatusPending, models.StatusConfirmed}}}},
				}),
		},
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("patient_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("doctor_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("doctor_created_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
