// File: database/repository/appointment/crud.go
package appointmentRepo

import (
	"context"
	"time"

	"medibook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// UpdateStatusIf performs the conditional per-row update that serializes
// racing transitions: the filter pins the expected current status, so the
// loser of a race simply matches nothing.
func (r *mongoAppointmentRepo) UpdateStatusIf(ctx context.Context, id string, expect []models.AppointmentStatus, target models.AppointmentStatus) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": bson.M{"$in": expect}}
	update := bson.M{"$set": bson.M{"status": target, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Appointment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
