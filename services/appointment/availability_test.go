package appointment

import (
	"context"
	"testing"

	"medibook/models"
	"medibook/services/apperr"
)

func TestAvailableDatesUnknownDoctor(t *testing.T) {
	svc, _, _ := newTestService()
	if _, err := svc.AvailableDates(context.Background(), "nobody"); !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("expected notFound, got %v", err)
	}
}

func TestAvailableDatesReflectBookings(t *testing.T) {
	svc, _, _ := newTestService()
	svc.HorizonDays = 7

	booked := mustBook(t, svc, testPatient, "2026-03-03", "09:00")

	resp, err := svc.AvailableDates(context.Background(), testDoctor)
	if err != nil {
		t.Fatalf("AvailableDates failed: %v", err)
	}
	if resp.AppointmentDuration != models.DefaultAppointmentDuration {
		t.Errorf("expected default duration, got %d", resp.AppointmentDuration)
	}
	if len(resp.AvailableDates) == 0 {
		t.Fatal("expected at least one available date")
	}

	if avail, ok := slotAvailability(resp, "2026-03-03", "09:00"); !ok {
		t.Error("expected slot 2026-03-03 09:00 in the grid")
	} else if avail {
		t.Error("booked slot should be unavailable")
	}
	if avail, ok := slotAvailability(resp, "2026-03-03", "09:30"); !ok || !avail {
		t.Error("neighboring slot 09:30 should be free")
	}

	// Cancelling re-opens the slot on the next generation.
	if _, err := svc.UpdateStatus(context.Background(), booked.ID, models.StatusCancelled, testPatient, models.RolePatient); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	resp, err = svc.AvailableDates(context.Background(), testDoctor)
	if err != nil {
		t.Fatalf("AvailableDates after cancel failed: %v", err)
	}
	if avail, ok := slotAvailability(resp, "2026-03-03", "09:00"); !ok || !avail {
		t.Error("cancelled slot should be available again")
	}
}

func TestAvailableDatesCompletionFreesSlot(t *testing.T) {
	svc, _, _ := newTestService()
	svc.HorizonDays = 7

	appt := mustBook(t, svc, testPatient, "2026-03-03", "09:00")
	if _, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusConfirmed, testDoctor, models.RoleDoctor); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), appt.ID, models.StatusCompleted, testDoctor, models.RoleDoctor); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	// Completion ends the slot's occupancy just like cancellation does.
	resp, err := svc.AvailableDates(context.Background(), testDoctor)
	if err != nil {
		t.Fatalf("AvailableDates failed: %v", err)
	}
	if avail, ok := slotAvailability(resp, "2026-03-03", "09:00"); !ok || !avail {
		t.Error("completed slot should be available again")
	}
}

func TestAvailableDatesEmptyWeek(t *testing.T) {
	svc, _, _ := newTestService()
	svc.HorizonDays = 7

	cfg := models.DefaultDoctorSettings(testDoctor)
	for i := range cfg.WorkingHours {
		cfg.WorkingHours[i].IsWorkingDay = false
	}
	svc.Settings = &fakeSettings{cfg: cfg}

	resp, err := svc.AvailableDates(context.Background(), testDoctor)
	if err != nil {
		t.Fatalf("AvailableDates failed: %v", err)
	}
	if len(resp.AvailableDates) != 0 {
		t.Errorf("expected empty availability, got %d dates", len(resp.AvailableDates))
	}
	if resp.AvailableDates == nil {
		t.Error("availability should be an empty slice, not nil")
	}
}

func slotAvailability(resp *models.AvailabilityResponse, date, slotTime string) (bool, bool) {
	for _, d := range resp.AvailableDates {
		if d.Date != date {
			continue
		}
		for _, s := range d.Slots {
			if s.Time == slotTime {
				return s.Available, true
			}
		}
	}
	return false, false
}
