// File: services/settings/interface.go
package settings

import (
	"context"

	"medibook/models"
)

// SettingsService manages per-doctor scheduling configuration: the weekday
// working-hours table, the appointment duration and the blocked-slot set.
type SettingsService interface {
	// GetOrCreate returns the doctor's config, bootstrapping the default one
	// (Mon-Fri 09:00-17:00, 30-minute slots) on first access.
	GetOrCreate(ctx context.Context, doctorID string) (*models.DoctorSettings, error)
	// Replace shallow-merges the provided fields over the existing config,
	// or over the defaults when the doctor has none yet.
	Replace(ctx context.Context, doctorID string, update models.DoctorSettingsUpdate) (*models.DoctorSettings, error)
	BlockSlot(ctx context.Context, doctorID, date, slotTime string) (*models.DoctorSettings, error)
	UnblockSlot(ctx context.Context, doctorID, date, slotTime string) (*models.DoctorSettings, error)
	SetWorkingHours(ctx context.Context, doctorID string, hours []models.WorkingHours) (*models.DoctorSettings, error)
	SetAppointmentDuration(ctx context.Context, doctorID string, minutes int) (*models.DoctorSettings, error)
}
