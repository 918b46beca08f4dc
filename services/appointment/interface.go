// File: services/appointment/interface.go
package appointment

import (
	"context"
	"time"

	appointmentRepo "medibook/database/repository/appointment"
	engagementRepo "medibook/database/repository/engagement"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/notification"
	"medibook/services/settings"

	"github.com/go-redis/redis/v8"
)

// AppointmentService is the booking engine: it exposes the generated
// availability, creates appointments, and owns every status transition.
type AppointmentService interface {
	AvailableDates(ctx context.Context, doctorID string) (*models.AvailabilityResponse, error)
	Create(ctx context.Context, patientID string, req models.CreateAppointmentRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, target models.AppointmentStatus, callerID, callerRole string) (*models.Appointment, error)
	ListForUser(ctx context.Context, userID, role string) ([]models.Appointment, error)
	GetByID(ctx context.Context, appointmentID, callerID string) (*models.AppointmentDetail, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo       appointmentRepo.AppointmentRepository
	Settings   settings.SettingsService
	Users      userRepo.UserRepository
	Engagement engagementRepo.EngagementRepository
	Notifier   notification.NotificationService

	// Cache is optional; when set, availability responses are cached for
	// CacheTTL and invalidated by bookings, cancellations and settings
	// changes.
	Cache    *redis.Client
	CacheTTL time.Duration

	// HorizonDays is how far ahead availability is generated; zero means the
	// scheduling default.
	HorizonDays int

	// Now is injected for deterministic tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
