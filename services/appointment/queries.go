// File: services/appointment/queries.go
package appointment

import (
	"context"
	"fmt"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/apperr"
	"medibook/utils"

	"go.uber.org/zap"
)

// ListForUser returns the caller's own appointments, newest first: a patient
// sees the ones they booked, a doctor sees their schedule.
func (s *DefaultAppointmentService) ListForUser(ctx context.Context, userID, role string) ([]models.Appointment, error) {
	switch role {
	case models.RolePatient:
		return s.Repo.ListByPatient(ctx, userID)
	case models.RoleDoctor:
		return s.Repo.ListByDoctor(ctx, userID)
	default:
		return nil, apperr.Forbidden("only patients and doctors have appointments")
	}
}

// GetByID returns one appointment with its engagement flags. Only the two
// parties on the appointment may see it.
func (s *DefaultAppointmentService) GetByID(ctx context.Context, appointmentID, callerID string) (*models.AppointmentDetail, error) {
	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		if err == appointmentRepo.ErrNotFound {
			return nil, apperr.NotFound("appointment not found")
		}
		return nil, fmt.Errorf("failed to load appointment %s: %w", appointmentID, err)
	}
	if appt.DoctorID != callerID && appt.PatientID != callerID {
		return nil, apperr.Forbidden("you are not authorized to view this appointment")
	}

	detail := &models.AppointmentDetail{Appointment: *appt}
	if s.Engagement != nil {
		logger := utils.GetLogger()
		if hasComment, err := s.Engagement.HasComment(ctx, appointmentID); err == nil {
			detail.HasComment = hasComment
		} else {
			logger.Warn("failed to check appointment comment", zap.String("appointmentId", appointmentID), zap.Error(err))
		}
		if hasRating, err := s.Engagement.HasRating(ctx, appointmentID); err == nil {
			detail.HasRating = hasRating
		} else {
			logger.Warn("failed to check appointment rating", zap.String("appointmentId", appointmentID), zap.Error(err))
		}
	}
	return detail, nil
}
