// File: services/settings/validate.go
package settings

import (
	"fmt"

	"medibook/models"
	"medibook/services/apperr"
	"medibook/services/scheduling"
)

// ValidateWorkingHours checks a full weekday-table replacement: exactly 7
// entries, each dayOfWeek 0-6 appearing once, valid HH:mm times, and
// startTime before endTime on working days.
func ValidateWorkingHours(hours []models.WorkingHours) error {
	if len(hours) != 7 {
		return apperr.InvalidArgument(fmt.Sprintf("working hours must contain exactly 7 entries, got %d", len(hours)))
	}

	var seen [7]bool
	for _, wh := range hours {
		if wh.DayOfWeek < 0 || wh.DayOfWeek > 6 {
			return apperr.InvalidArgument(fmt.Sprintf("dayOfWeek %d is out of range 0-6", wh.DayOfWeek))
		}
		if seen[wh.DayOfWeek] {
			return apperr.InvalidArgument(fmt.Sprintf("duplicate entry for dayOfWeek %d", wh.DayOfWeek))
		}
		seen[wh.DayOfWeek] = true

		start, err := scheduling.ParseClock(wh.StartTime)
		if err != nil {
			return apperr.InvalidArgument(err.Error())
		}
		end, err := scheduling.ParseClock(wh.EndTime)
		if err != nil {
			return apperr.InvalidArgument(err.Error())
		}
		if wh.IsWorkingDay && start >= end {
			return apperr.InvalidArgument(fmt.Sprintf("startTime must be before endTime on working day %d", wh.DayOfWeek))
		}
	}
	return nil
}

func validateSlotRef(date, slotTime string) (models.BlockedTimeSlot, error) {
	if _, err := scheduling.ParseDate(date); err != nil {
		return models.BlockedTimeSlot{}, apperr.InvalidArgument(err.Error())
	}
	if _, err := scheduling.ParseClock(slotTime); err != nil {
		return models.BlockedTimeSlot{}, apperr.InvalidArgument(err.Error())
	}
	return models.BlockedTimeSlot{Date: date, Time: slotTime}, nil
}
