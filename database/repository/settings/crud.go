// File: database/repository/settings/crud.go
package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique index preventing duplicate settings
// documents for one doctor.
func (r *mongoSettingsRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "doctorId", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_doctor"),
	})
	if err != nil {
		return fmt.Errorf("failed to create settings indexes: %w", err)
	}
	return nil
}

func (r *mongoSettingsRepo) Get(ctx context.Context, doctorID string) (*models.DoctorSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.DoctorSettings
	err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetOrCreate relies on the upsert plus the unique doctorId index: concurrent
// first requests for the same doctor all end up reading the one document.
func (r *mongoSettingsRepo) GetOrCreate(ctx context.Context, doctorID string) (*models.DoctorSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	defaults := models.DefaultDoctorSettings(doctorID)
	filter := bson.M{"doctorId": doctorID}
	update := bson.M{"$setOnInsert": defaults}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var settings models.DoctorSettings
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *mongoSettingsRepo) Upsert(ctx context.Context, doctorID string, update models.DoctorSettingsUpdate) (*models.DoctorSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	set := bson.M{"updatedAt": now}
	if update.WorkingHours != nil {
		set["workingHours"] = *update.WorkingHours
	}
	if update.AppointmentDuration != nil {
		set["appointmentDuration"] = *update.AppointmentDuration
	}
	if update.BlockedTimeSlots != nil {
		set["blockedTimeSlots"] = *update.BlockedTimeSlots
	}

	// Defaults only for fields the update does not carry; $set and
	// $setOnInsert must not target the same path.
	defaults := models.DefaultDoctorSettings(doctorID)
	setOnInsert := bson.M{"doctorId": doctorID, "createdAt": now}
	if update.WorkingHours == nil {
		setOnInsert["workingHours"] = defaults.WorkingHours
	}
	if update.AppointmentDuration == nil {
		setOnInsert["appointmentDuration"] = defaults.AppointmentDuration
	}
	if update.BlockedTimeSlots == nil {
		setOnInsert["blockedTimeSlots"] = defaults.BlockedTimeSlots
	}

	filter := bson.M{"doctorId": doctorID}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var settings models.DoctorSettings
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set, "$setOnInsert": setOnInsert}, opts).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *mongoSettingsRepo) AddBlockedSlot(ctx context.Context, doctorID string, slot models.BlockedTimeSlot) (*models.DoctorSettings, error) {
	// $addToSet keeps blockedTimeSlots a set: re-blocking the same slot is a no-op.
	return r.updateOne(ctx, doctorID, bson.M{
		"$addToSet": bson.M{"blockedTimeSlots": slot},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
}

func (r *mongoSettingsRepo) RemoveBlockedSlot(ctx context.Context, doctorID string, slot models.BlockedTimeSlot) (*models.DoctorSettings, error) {
	// $pull of an absent entry matches the document and changes nothing.
	return r.updateOne(ctx, doctorID, bson.M{
		"$pull": bson.M{"blockedTimeSlots": slot},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

func (r *mongoSettingsRepo) SetWorkingHours(ctx context.Context, doctorID string, hours []models.WorkingHours) (*models.DoctorSettings, error) {
	return r.updateOne(ctx, doctorID, bson.M{
		"$set": bson.M{"workingHours": hours, "updatedAt": time.Now()},
	})
}

func (r *mongoSettingsRepo) SetAppointmentDuration(ctx context.Context, doctorID string, minutes int) (*models.DoctorSettings, error) {
	return r.updateOne(ctx, doctorID, bson.M{
		"$set": bson.M{"appointmentDuration": minutes, "updatedAt": time.Now()},
	})
}

func (r *mongoSettingsRepo) updateOne(ctx context.Context, doctorID string, update bson.M) (*models.DoctorSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var settings models.DoctorSettings
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"doctorId": doctorID}, update, opts).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
