// File: services/settings/service.go
package settings

import (
	"context"
	"fmt"

	settingsRepo "medibook/database/repository/settings"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/apperr"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultSettingsService is the production implementation.
type DefaultSettingsService struct {
	Repo  settingsRepo.SettingsRepository
	Users userRepo.UserRepository
	// Cache is optional; when set, settings mutations invalidate the
	// doctor's cached availability.
	Cache *redis.Client
}

func (s *DefaultSettingsService) GetOrCreate(ctx context.Context, doctorID string) (*models.DoctorSettings, error) {
	if _, err := s.Users.GetDoctor(ctx, doctorID); err != nil {
		if err == userRepo.ErrNotFound {
			return nil, apperr.NotFound("doctor not found")
		}
		return nil, fmt.Errorf("settings: failed to resolve doctor %s: %w", doctorID, err)
	}
	return s.Repo.GetOrCreate(ctx, doctorID)
}

func (s *DefaultSettingsService) Replace(ctx context.Context, doctorID string, update models.DoctorSettingsUpdate) (*models.DoctorSettings, error) {
	if update.WorkingHours != nil {
		if err := ValidateWorkingHours(*update.WorkingHours); err != nil {
			return nil, err
		}
	}
	if update.AppointmentDuration != nil && *update.AppointmentDuration <= 0 {
		return nil, apperr.InvalidArgument("appointment duration must be a positive number of minutes")
	}
	if update.BlockedTimeSlots != nil {
		for _, b := range *update.BlockedTimeSlots {
			if _, err := validateSlotRef(b.Date, b.Time); err != nil {
				return nil, err
			}
		}
	}

	settings, err := s.Repo.Upsert(ctx, doctorID, update)
	if err != nil {
		return nil, err
	}
	s.invalidateAvailability(ctx, doctorID)
	return settings, nil
}

func (s *DefaultSettingsService) BlockSlot(ctx context.Context, doctorID, date, slotTime string) (*models.DoctorSettings, error) {
	slot, err := validateSlotRef(date, slotTime)
	if err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetOrCreate(ctx, doctorID); err != nil {
		return nil, err
	}
	settings, err := s.Repo.AddBlockedSlot(ctx, doctorID, slot)
	if err != nil {
		return nil, err
	}
	s.invalidateAvailability(ctx, doctorID)
	return settings, nil
}

func (s *DefaultSettingsService) UnblockSlot(ctx context.Context, doctorID, date, slotTime string) (*models.DoctorSettings, error) {
	slot, err := validateSlotRef(date, slotTime)
	if err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetOrCreate(ctx, doctorID); err != nil {
		return nil, err
	}
	settings, err := s.Repo.RemoveBlockedSlot(ctx, doctorID, slot)
	if err != nil {
		return nil, err
	}
	s.invalidateAvailability(ctx, doctorID)
	return settings, nil
}

func (s *DefaultSettingsService) SetWorkingHours(ctx context.Context, doctorID string, hours []models.WorkingHours) (*models.DoctorSettings, error) {
	if err := ValidateWorkingHours(hours); err != nil {
		return nil, err
	}
	if _, err := s.Repo.GetOrCreate(ctx, doctorID); err != nil {
		return nil, err
	}
	settings, err := s.Repo.SetWorkingHours(ctx, doctorID, hours)
	if err != nil {
		return nil, err
	}
	s.invalidateAvailability(ctx, doctorID)
	return settings, nil
}

func (s *DefaultSettingsService) SetAppointmentDuration(ctx context.Context, doctorID string, minutes int) (*models.DoctorSettings, error) {
	if minutes <= 0 {
		return nil, apperr.InvalidArgument("appointment duration must be a positive number of minutes")
	}
	if _, err := s.Repo.GetOrCreate(ctx, doctorID); err != nil {
		return nil, err
	}
	settings, err := s.Repo.SetAppointmentDuration(ctx, doctorID, minutes)
	if err != nil {
		return nil, err
	}
	s.invalidateAvailability(ctx, doctorID)
	return settings, nil
}

func (s *DefaultSettingsService) invalidateAvailability(ctx context.Context, doctorID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.AvailabilityCacheKey(doctorID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("doctorId", doctorID), zap.Error(err))
	}
}
