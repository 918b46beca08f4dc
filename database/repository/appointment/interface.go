// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"medibook/database"
	"medibook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no appointment matches the query.
var ErrNotFound = errors.New("appointment not found")

// ErrSlotTaken is returned when an insert loses the race for a slot: an
// active appointment already occupies (doctorId, date, time).
var ErrSlotTaken = errors.New("active appointment already occupies this slot")

type AppointmentRepository interface {
	EnsureIndexes() error
	Insert(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	CountActiveByPatient(ctx context.Context, patientID string) (int64, error)
	ExistsActiveSlot(ctx context.Context, doctorID, date, time string) (bool, error)
	ListActiveByDoctorBetween(ctx context.Context, doctorID, fromDate, toDate string) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error)
	// UpdateStatusIf sets the status only when the current status is one of
	// expect, returning the updated document. ErrNotFound means the
	// precondition no longer holds (or the appointment is gone).
	UpdateStatusIf(ctx context.Context, id string, expect []models.AppointmentStatus, target models.AppointmentStatus) (*models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
