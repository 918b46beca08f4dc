package settings

import (
	"context"
	"testing"
	"time"

	settingsRepo "medibook/database/repository/settings"
	userRepo "medibook/database/repository/user"
	"medibook/models"
	"medibook/services/apperr"
)

// fakeSettingsRepo is an in-memory SettingsRepository mirroring the upsert
// semantics of the storage layer.
type fakeSettingsRepo struct {
	docs map[string]*models.DoctorSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{docs: make(map[string]*models.DoctorSettings)}
}

func (r *fakeSettingsRepo) EnsureIndexes() error { return nil }

func (r *fakeSettingsRepo) Get(_ context.Context, doctorID string) (*models.DoctorSettings, error) {
	cfg, ok := r.docs[doctorID]
	if !ok {
		return nil, settingsRepo.ErrNotFound
	}
	cp := *cfg
	return &cp, nil
}

func (r *fakeSettingsRepo) GetOrCreate(_ context.Context, doctorID string) (*models.DoctorSettings, error) {
	if cfg, ok := r.docs[doctorID]; ok {
		cp := *cfg
		return &cp, nil
	}
	cfg := models.DefaultDoctorSettings(doctorID)
	r.docs[doctorID] = cfg
	cp := *cfg
	return &cp, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, doctorID string, update models.DoctorSettingsUpdate) (*models.DoctorSettings, error) {
	cfg, _ := r.GetOrCreate(ctx, doctorID)
	if update.WorkingHours != nil {
		cfg.WorkingHours = *update.WorkingHours
	}
	if update.AppointmentDuration != nil {
		cfg.AppointmentDuration = *update.AppointmentDuration
	}
	if update.BlockedTimeSlots != nil {
		cfg.BlockedTimeSlots = *update.BlockedTimeSlots
	}
	cfg.UpdatedAt = time.Now()
	r.docs[doctorID] = cfg
	cp := *cfg
	return &cp, nil
}

func (r *fakeSettingsRepo) AddBlockedSlot(_ context.Context, doctorID string, slot models.BlockedTimeSlot) (*models.DoctorSettings, error) {
	cfg, ok := r.docs[doctorID]
	if !ok {
		return nil, settingsRepo.ErrNotFound
	}
	for _, b := range cfg.BlockedTimeSlots {
		if b == slot {
			cp := *cfg
			return &cp, nil
		}
	}
	cfg.BlockedTimeSlots = append(cfg.BlockedTimeSlots, slot)
	cp := *cfg
	return &cp, nil
}

func (r *fakeSettingsRepo) RemoveBlockedSlot(_ context.Context, doctorID string, slot models.BlockedTimeSlot) (*models.DoctorSettings, error) {
	cfg, ok := r.docs[doctorID]
	if !ok {
		return nil, settingsRepo.ErrNotFound
	}
	kept := cfg.BlockedTimeSlots[:0]
	for _, b := range cfg.BlockedTimeSlots {
		if b != slot {
			kept = append(kept, b)
		}
	}
	cfg.BlockedTimeSlots = kept
	cp := *cfg
	return &cp, nil
}

func (r *fakeSettingsRepo) SetWorkingHours(_ context.Context, doctorID string, hours []models.WorkingHours) (*models.DoctorSettings, error) {
	cfg, ok := r.docs[doctorID]
	if !ok {
		return nil, settingsRepo.ErrNotFound
	}
	cfg.WorkingHours = hours
	cp := *cfg
	return &cp, nil
}

func (r *fakeSettingsRepo) SetAppointmentDuration(_ context.Context, doctorID string, minutes int) (*models.DoctorSettings, error) {
	cfg, ok := r.docs[doctorID]
	if !ok {
		return nil, settingsRepo.ErrNotFound
	}
	cfg.AppointmentDuration = minutes
	cp := *cfg
	return &cp, nil
}

type fakeUsers struct {
	users map[string]*models.User
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrNotFound
}

func (f *fakeUsers) GetDoctor(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok || u.Role != models.RoleDoctor {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetPatient(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok || u.Role != models.RolePatient {
		return nil, userRepo.ErrNotFound
	}
	return u, nil
}

const testDoctor = "doc-1"

func newTestService() (*DefaultSettingsService, *fakeSettingsRepo) {
	repo := newFakeSettingsRepo()
	svc := &DefaultSettingsService{
		Repo: repo,
		Users: &fakeUsers{users: map[string]*models.User{
			testDoctor: {ID: testDoctor, Role: models.RoleDoctor},
		}},
	}
	return svc, repo
}

func TestGetOrCreateDefaults(t *testing.T) {
	svc, _ := newTestService()

	cfg, err := svc.GetOrCreate(context.Background(), testDoctor)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if len(cfg.WorkingHours) != 7 {
		t.Fatalf("expected 7 weekday entries, got %d", len(cfg.WorkingHours))
	}
	if cfg.AppointmentDuration != models.DefaultAppointmentDuration {
		t.Errorf("expected duration %d, got %d", models.DefaultAppointmentDuration, cfg.AppointmentDuration)
	}
	for _, wh := range cfg.WorkingHours {
		weekday := wh.DayOfWeek > 0 && wh.DayOfWeek < 6
		if wh.IsWorkingDay != weekday {
			t.Errorf("day %d: expected isWorkingDay=%v", wh.DayOfWeek, weekday)
		}
		if weekday && (wh.StartTime != "09:00" || wh.EndTime != "17:00") {
			t.Errorf("day %d: expected 09:00-17:00, got %s-%s", wh.DayOfWeek, wh.StartTime, wh.EndTime)
		}
	}
}

func TestGetOrCreateUnknownDoctor(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.GetOrCreate(context.Background(), "nobody"); !apperr.Is(err, apperr.CodeNotFound) {
		t.Errorf("expected notFound, got %v", err)
	}
}

func TestValidateWorkingHours(t *testing.T) {
	valid := models.DefaultWorkingHours()

	withDay := func(i int, mutate func(*models.WorkingHours)) []models.WorkingHours {
		hours := make([]models.WorkingHours, len(valid))
		copy(hours, valid)
		mutate(&hours[i])
		return hours
	}

	cases := []struct {
		name    string
		hours   []models.WorkingHours
		wantErr bool
	}{
		{"default table", valid, false},
		{"too few entries", valid[:6], true},
		{"duplicate day", withDay(1, func(wh *models.WorkingHours) { wh.DayOfWeek = 2 }), true},
		{"day out of range", withDay(1, func(wh *models.WorkingHours) { wh.DayOfWeek = 7 }), true},
		{"bad start time", withDay(1, func(wh *models.WorkingHours) { wh.StartTime = "nine" }), true},
		{"bad end time", withDay(1, func(wh *models.WorkingHours) { wh.EndTime = "25:00" }), true},
		{"start equals end on working day", withDay(1, func(wh *models.WorkingHours) { wh.StartTime = "17:00" }), true},
		{"start after end on working day", withDay(1, func(wh *models.WorkingHours) { wh.StartTime = "18:00" }), true},
		{"inverted window on day off", withDay(0, func(wh *models.WorkingHours) {
			wh.StartTime = "18:00"
			wh.EndTime = "09:00"
		}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateWorkingHours(tc.hours)
			if tc.wantErr && !apperr.Is(err, apperr.CodeInvalidArgument) {
				t.Errorf("expected invalidArgument, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSetWorkingHours(t *testing.T) {
	svc, _ := newTestService()

	hours := models.DefaultWorkingHours()
	hours[6].IsWorkingDay = true
	hours[6].StartTime = "10:00"
	hours[6].EndTime = "14:00"

	cfg, err := svc.SetWorkingHours(context.Background(), testDoctor, hours)
	if err != nil {
		t.Fatalf("SetWorkingHours failed: %v", err)
	}
	sat, ok := cfg.WorkingHoursFor(time.Saturday)
	if !ok || !sat.IsWorkingDay || sat.StartTime != "10:00" {
		t.Errorf("expected Saturday 10:00 working, got %+v", sat)
	}
}

func TestSetAppointmentDuration(t *testing.T) {
	svc, _ := newTestService()

	cfg, err := svc.SetAppointmentDuration(context.Background(), testDoctor, 45)
	if err != nil {
		t.Fatalf("SetAppointmentDuration failed: %v", err)
	}
	if cfg.AppointmentDuration != 45 {
		t.Errorf("expected 45, got %d", cfg.AppointmentDuration)
	}

	for _, bad := range []int{0, -15} {
		if _, err := svc.SetAppointmentDuration(context.Background(), testDoctor, bad); !apperr.Is(err, apperr.CodeInvalidArgument) {
			t.Errorf("duration %d: expected invalidArgument, got %v", bad, err)
		}
	}
}

func TestBlockUnblockSlot(t *testing.T) {
	svc, _ := newTestService()

	cfg, err := svc.BlockSlot(context.Background(), testDoctor, "2026-03-03", "09:00")
	if err != nil {
		t.Fatalf("BlockSlot failed: %v", err)
	}
	if len(cfg.BlockedTimeSlots) != 1 {
		t.Fatalf("expected 1 blocked slot, got %d", len(cfg.BlockedTimeSlots))
	}

	// Blocking the same slot again must not duplicate it.
	cfg, err = svc.BlockSlot(context.Background(), testDoctor, "2026-03-03", "09:00")
	if err != nil {
		t.Fatalf("BlockSlot repeat failed: %v", err)
	}
	if len(cfg.BlockedTimeSlots) != 1 {
		t.Errorf("expected 1 blocked slot after repeat, got %d", len(cfg.BlockedTimeSlots))
	}

	cfg, err = svc.UnblockSlot(context.Background(), testDoctor, "2026-03-03", "09:00")
	if err != nil {
		t.Fatalf("UnblockSlot failed: %v", err)
	}
	if len(cfg.BlockedTimeSlots) != 0 {
		t.Errorf("expected no blocked slots, got %d", len(cfg.BlockedTimeSlots))
	}

	if _, err := svc.BlockSlot(context.Background(), testDoctor, "bad-date", "09:00"); !apperr.Is(err, apperr.CodeInvalidArgument) {
		t.Errorf("expected invalidArgument for bad date, got %v", err)
	}
	if _, err := svc.BlockSlot(context.Background(), testDoctor, "2026-03-03", "9pm"); !apperr.Is(err, apperr.CodeInvalidArgument) {
		t.Errorf("expected invalidArgument for bad time, got %v", err)
	}
	// A non-canonical "9:00" would never match the generated "09:00" slot.
	if _, err := svc.BlockSlot(context.Background(), testDoctor, "2026-03-03", "9:00"); !apperr.Is(err, apperr.CodeInvalidArgument) {
		t.Errorf("expected invalidArgument for unpadded time, got %v", err)
	}
	if _, err := svc.BlockSlot(context.Background(), testDoctor, "2026-3-3", "09:00"); !apperr.Is(err, apperr.CodeInvalidArgument) {
		t.Errorf("expected invalidArgument for unpadded date, got %v", err)
	}
}

func TestReplacePartialUpdate(t *testing.T) {
	svc, _ := newTestService()

	duration := 20
	cfg, err := svc.Replace(context.Background(), testDoctor, models.DoctorSettingsUpdate{
		AppointmentDuration: &duration,
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if cfg.AppointmentDuration != 20 {
		t.Errorf("expected duration 20, got %d", cfg.AppointmentDuration)
	}
	if len(cfg.WorkingHours) != 7 {
		t.Errorf("working hours should keep their defaults, got %d entries", len(cfg.WorkingHours))
	}

	bad := 0
	if _, err := svc.Replace(context.Background(), testDoctor, models.DoctorSettingsUpdate{AppointmentDuration: &bad}); !apperr.Is(err, apperr.CodeInvalidArgument) {
		t.Errorf("expected invalidArgument for zero duration, got %v", err)
	}

	badHours := models.DefaultWorkingHours()[:3]
	if _, err := svc.Replace(context.Background(), testDoctor, models.DoctorSettingsUpdate{WorkingHours: &badHours}); !apperr.Is(err, apperr.CodeInvalidArgument) {
		t.Errorf("expected invalidArgument for short table, got %v", err)
	}
}
