// File: services/appointment/availability.go
package appointment

import (
	"context"
	"encoding/json"
	"fmt"

	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/apperr"
	"medibook/services/scheduling"
	"medibook/utils"

	"go.uber.org/zap"
)

// AvailableDates produces the bookable slot grid for a doctor over the
// configured horizon. The response is cached briefly per doctor; any booking,
// cancellation or settings change drops the cached entry.
func (s *DefaultAppointmentService) AvailableDates(ctx context.Context, doctorID string) (*models.AvailabilityResponse, error) {
	if _, err := s.Users.GetDoctor(ctx, doctorID); err != nil {
		if err == userRepo.ErrNotFound {
			return nil, apperr.NotFound("doctor not found")
		}
		return nil, fmt.Errorf("availability: failed to resolve doctor %s: %w", doctorID, err)
	}

	if cached := s.cachedAvailability(ctx, doctorID); cached != nil {
		return cached, nil
	}

	cfg, err := s.Settings.GetOrCreate(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	horizon := s.HorizonDays
	if horizon <= 0 {
		horizon = scheduling.DefaultHorizonDays
	}
	now := s.now()
	fromDate := now.Format(scheduling.DateLayout)
	toDate := now.AddDate(0, 0, horizon).Format(scheduling.DateLayout)

	appts, err := s.Repo.ListActiveByDoctorBetween(ctx, doctorID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("availability: failed to load appointments for doctor %s: %w", doctorID, err)
	}

	dates, err := scheduling.Generate(ctx, cfg, appts, now, horizon)
	if err != nil {
		return nil, err
	}
	if dates == nil {
		dates = []models.AvailableDate{}
	}

	resp := &models.AvailabilityResponse{
		AvailableDates:      dates,
		AppointmentDuration: cfg.AppointmentDuration,
	}
	s.cacheAvailability(ctx, doctorID, resp)
	return resp, nil
}

func (s *DefaultAppointmentService) cachedAvailability(ctx context.Context, doctorID string) *models.AvailabilityResponse {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return nil
	}
	data, err := s.Cache.Get(ctx, utils.AvailabilityCacheKey(doctorID)).Result()
	if err != nil {
		return nil
	}
	var resp models.AvailabilityResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *DefaultAppointmentService) cacheAvailability(ctx context.Context, doctorID string, resp *models.AvailabilityResponse) {
	if s.Cache == nil || s.CacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.AvailabilityCacheKey(doctorID), data, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability",
			zap.String("doctorId", doctorID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) invalidateAvailability(ctx context.Context, doctorID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.AvailabilityCacheKey(doctorID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("doctorId", doctorID), zap.Error(err))
	}
}
