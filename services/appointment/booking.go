// File: services/appointment/booking.go
package appointment

import (
	"context"
	"fmt"

	appointmentRepo "medibook/database/repository/appointment"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/apperr"
	"medibook/services/scheduling"
	"medibook/utils"

	"go.uber.org/zap"
)

// MaxActiveAppointments caps how many pending/confirmed appointments one
// patient may hold, so a single patient cannot hoard slots.
const MaxActiveAppointments = 3

// Create books a slot for the patient. Preconditions run in order and fail
// fast: the doctor must exist, the patient must be under the active-appointment
// quota, and the slot must be free. The final free-slot guarantee comes from
// the storage unique constraint, not from the pre-check: of two concurrent
// bookers for the same slot, one insert loses with a duplicate key and is
// reported as a conflict.
func (s *DefaultAppointmentService) Create(ctx context.Context, patientID string, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if patientID == "" || req.DoctorID == "" || req.Date == "" || req.Time == "" {
		return nil, apperr.InvalidArgument("doctorId, date and time are required")
	}
	if _, err := scheduling.ParseDate(req.Date); err != nil {
		return nil, apperr.InvalidArgument(err.Error())
	}
	if _, err := scheduling.ParseClock(req.Time); err != nil {
		return nil, apperr.InvalidArgument(err.Error())
	}

	if _, err := s.Users.GetDoctor(ctx, req.DoctorID); err != nil {
		if err == userRepo.ErrNotFound {
			return nil, apperr.NotFound("doctor not found")
		}
		return nil, fmt.Errorf("booking: failed to resolve doctor %s: %w", req.DoctorID, err)
	}

	active, err := s.Repo.CountActiveByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("booking: failed to count active appointments: %w", err)
	}
	if active >= MaxActiveAppointments {
		return nil, apperr.QuotaExceeded(fmt.Sprintf(
			"you already have %d active appointments; complete or cancel one before booking another", MaxActiveAppointments))
	}

	taken, err := s.Repo.ExistsActiveSlot(ctx, req.DoctorID, req.Date, req.Time)
	if err != nil {
		return nil, fmt.Errorf("booking: failed to check slot: %w", err)
	}
	if taken {
		return nil, apperr.SlotConflict("an active appointment already exists for this date and time")
	}

	appt := &models.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: patientID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    models.StatusPending,
		Reason:    req.Reason,
	}
	if err := s.Repo.Insert(ctx, appt); err != nil {
		if err == appointmentRepo.ErrSlotTaken {
			return nil, apperr.SlotConflict("an active appointment already exists for this date and time")
		}
		return nil, fmt.Errorf("booking: failed to create appointment: %w", err)
	}

	s.invalidateAvailability(ctx, req.DoctorID)
	s.notifyDoctor(ctx, appt)
	return appt, nil
}

// notifyDoctor is fire-and-forget: a failed notification never unwinds the
// booking.
func (s *DefaultAppointmentService) notifyDoctor(ctx context.Context, appt *models.Appointment) {
	if s.Notifier == nil {
		return
	}

	patientName := "A patient"
	if patient, err := s.Users.GetByID(ctx, appt.PatientID); err == nil && patient.Name != "" {
		patientName = patient.Name
	}

	message := fmt.Sprintf("%s requested an appointment on %s at %s.", patientName, appt.Date, appt.Time)
	if err := s.Notifier.Notify(ctx, appt.DoctorID, "New appointment request", message, appt.ID); err != nil {
		utils.GetLogger().Warn("failed to notify doctor about new appointment",
			zap.String("doctorId", appt.DoctorID),
			zap.String("appointmentId", appt.ID),
			zap.Error(err))
	}
}
