// File: services/scheduling/generator.go
package scheduling

import (
	"context"
	"fmt"
	"time"

	"medibook/models"
)

const (
	// DefaultHorizonDays is the number of forward days offered to bookers.
	DefaultHorizonDays = 30
	// maxHorizonDays bounds the day loop against misconfiguration.
	maxHorizonDays = 366
)

// Generate produces the slot grid for one doctor over the horizon. It is a
// pure function of its inputs: the caller injects "now", the settings and the
// appointments, so repeated calls return identical output.
//
// Per day: look up the weekday's working hours (non-working days are skipped
// entirely), then walk from startTime to endTime in appointmentDuration steps.
// No slot starting at or past endTime is emitted. On the current calendar day
// slots not strictly in the future are dropped silently. Surviving slots are
// marked unavailable when blocked by the doctor or occupied by a
// non-cancelled appointment; days left with zero slots are omitted.
// Output is ordered by ascending date, ascending time.
func Generate(ctx context.Context, settings *models.DoctorSettings, appointments []models.Appointment, now time.Time, horizonDays int) ([]models.AvailableDate, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if horizonDays > maxHorizonDays {
		horizonDays = maxHorizonDays
	}
	duration := settings.AppointmentDuration
	if duration <= 0 {
		return nil, fmt.Errorf("appointment duration must be positive, got %d", duration)
	}

	blocked := make(map[string]struct{}, len(settings.BlockedTimeSlots))
	for _, b := range settings.BlockedTimeSlots {
		blocked[b.Date+" "+b.Time] = struct{}{}
	}
	occupied := make(map[string]struct{}, len(appointments))
	for _, appt := range appointments {
		if appt.Status != models.StatusCancelled {
			occupied[appt.Date+" "+appt.Time] = struct{}{}
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var dates []models.AvailableDate
	for d := 0; d < horizonDays; d++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		day := today.AddDate(0, 0, d)
		hours, ok := settings.WorkingHoursFor(day.Weekday())
		if !ok || !hours.IsWorkingDay {
			continue
		}

		startMin, err := ParseClock(hours.StartTime)
		if err != nil {
			return nil, fmt.Errorf("working hours for weekday %d: %w", hours.DayOfWeek, err)
		}
		endMin, err := ParseClock(hours.EndTime)
		if err != nil {
			return nil, fmt.Errorf("working hours for weekday %d: %w", hours.DayOfWeek, err)
		}

		dateStr := day.Format(DateLayout)
		var slots []models.Slot
		for m := startMin; m < endMin; m += duration {
			if d == 0 {
				// Today's already-passed slots disappear rather than
				// show up as unavailable.
				slotInstant := day.Add(time.Duration(m) * time.Minute)
				if !slotInstant.After(now) {
					continue
				}
			}

			slotTime := FormatClock(m)
			key := dateStr + " " + slotTime
			_, isBlocked := blocked[key]
			_, isOccupied := occupied[key]
			slots = append(slots, models.Slot{
				Time:      slotTime,
				Available: !isBlocked && !isOccupied,
			})
		}

		if len(slots) > 0 {
			dates = append(dates, models.AvailableDate{
				Date:                dateStr,
				Slots:               slots,
				AppointmentDuration: duration,
			})
		}
	}

	return dates, nil
}
