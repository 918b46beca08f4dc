// File: services/appointment/transitions.go
package appointment

import (
	"context"
	"fmt"

	appointmentRepo "medibook/database/repository/appointment"
	"medibook/models"
	"medibook/services/apperr"
)

// allowedSources expresses the whole lifecycle in one table so the legal
// transition set can be audited and tested as a unit:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled
//	completed, cancelled: terminal
var allowedSources = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusConfirmed: {models.StatusPending},
	models.StatusCompleted: {models.StatusConfirmed},
	models.StatusCancelled: {models.StatusPending, models.StatusConfirmed},
}

var transitionRule = map[models.AppointmentStatus]string{
	models.StatusConfirmed: "only pending appointments can be confirmed",
	models.StatusCompleted: "only confirmed appointments can be completed",
	models.StatusCancelled: "only pending or confirmed appointments can be cancelled",
}

// UpdateStatus moves an appointment through its lifecycle on behalf of a
// caller. Authorization: the owning doctor may confirm, complete and cancel;
// the owning patient may only cancel; everyone else is rejected. The write is
// a conditional update pinned to the expected current status, so of two
// racing callers exactly one wins and the other gets an invalid-transition
// error.
func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, appointmentID string, target models.AppointmentStatus, callerID, callerRole string) (*models.Appointment, error) {
	if !target.IsValid() {
		return nil, apperr.InvalidArgument(fmt.Sprintf("unknown status %q", target))
	}

	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		if err == appointmentRepo.ErrNotFound {
			return nil, apperr.NotFound("appointment not found")
		}
		return nil, fmt.Errorf("transition: failed to load appointment %s: %w", appointmentID, err)
	}

	// Ownership is settled before transition legality: a non-party caller is
	// rejected with the same error whatever status they asked for.
	switch callerRole {
	case models.RoleDoctor:
		if appt.DoctorID != callerID {
			return nil, apperr.Forbidden("you are not authorized to update this appointment")
		}
	case models.RolePatient:
		if appt.PatientID != callerID {
			return nil, apperr.Forbidden("you are not authorized to update this appointment")
		}
		if target != models.StatusCancelled {
			return nil, apperr.Forbidden("patients may only cancel appointments")
		}
	default:
		return nil, apperr.Forbidden("you are not authorized to update this appointment")
	}

	sources, reachable := allowedSources[target]
	if !reachable {
		return nil, apperr.InvalidTransition("appointments cannot be returned to pending")
	}
	if !statusIn(appt.Status, sources) {
		return nil, apperr.InvalidTransition(transitionRule[target])
	}

	updated, err := s.Repo.UpdateStatusIf(ctx, appointmentID, sources, target)
	if err != nil {
		if err == appointmentRepo.ErrNotFound {
			// A concurrent caller changed the status between our read and
			// the conditional write.
			return nil, apperr.InvalidTransition(transitionRule[target])
		}
		return nil, fmt.Errorf("transition: failed to update appointment %s: %w", appointmentID, err)
	}

	// Cancellation and completion both free the slot, so either must drop the
	// doctor's cached availability.
	if !target.IsActive() {
		s.invalidateAvailability(ctx, updated.DoctorID)
	}
	return updated, nil
}

func statusIn(status models.AppointmentStatus, set []models.AppointmentStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
