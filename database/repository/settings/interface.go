// File: database/repository/settings/interface.go
package settingsRepo

import (
	"context"
	"errors"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a doctor has no settings document yet.
var ErrNotFound = errors.New("doctor settings not found")

type SettingsRepository interface {
	EnsureIndexes() error
	Get(ctx context.Context, doctorID string) (*models.DoctorSettings, error)
	// GetOrCreate atomically upserts the default config on first access.
	GetOrCreate(ctx context.Context, doctorID string) (*models.DoctorSettings, error)
	// Upsert shallow-merges the provided fields over the existing document,
	// or over the defaults when none exists yet.
	Upsert(ctx context.Context, doctorID string, update models.DoctorSettingsUpdate) (*models.DoctorSettings, error)
	AddBlockedSlot(ctx context.Context, doctorID string, slot models.BlockedTimeSlot) (*models.DoctorSettings, error)
	RemoveBlockedSlot(ctx context.Context, doctorID string, slot models.BlockedTimeSlot) (*models.DoctorSettings, error)
	SetWorkingHours(ctx context.Context, doctorID string, hours []models.WorkingHours) (*models.DoctorSettings, error)
	SetAppointmentDuration(ctx context.Context, doctorID string, minutes int) (*models.DoctorSettings, error)
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new MongoDB SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	return &mongoSettingsRepo{
		coll: database.DB().Collection("doctor_settings"),
	}
}
