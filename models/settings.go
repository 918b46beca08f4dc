package models

import "time"

// WorkingHours is one weekday's open/close window.
// DayOfWeek follows time.Weekday numbering: 0=Sunday .. 6=Saturday.
type WorkingHours struct {
	DayOfWeek    int    `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime    string `bson:"startTime" json:"startTime"` // "HH:mm"
	EndTime      string `bson:"endTime" json:"endTime"`     // "HH:mm"
	IsWorkingDay bool   `bson:"isWorkingDay" json:"isWorkingDay"`
}

// BlockedTimeSlot is an explicit doctor-specified exception that removes a
// single date+time from availability, independent of appointments.
type BlockedTimeSlot struct {
	Date string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time string `bson:"time" json:"time"` // "HH:mm"
}

// DoctorSettings is the per-doctor scheduling configuration. One document per
// doctor, created lazily with defaults and upserted afterwards.
type DoctorSettings struct {
	DoctorID            string            `bson:"doctorId" json:"doctorId"`
	WorkingHours        []WorkingHours    `bson:"workingHours" json:"workingHours"` // exactly 7 entries, one per weekday
	AppointmentDuration int               `bson:"appointmentDuration" json:"appointmentDuration"`
	BlockedTimeSlots    []BlockedTimeSlot `bson:"blockedTimeSlots" json:"blockedTimeSlots"`
	CreatedAt           time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// DefaultAppointmentDuration is applied when a doctor has never configured one.
const DefaultAppointmentDuration = 30

// DefaultWorkingHours returns the bootstrap weekday table:
// Monday-Friday 09:00-17:00 working, Saturday/Sunday off.
func DefaultWorkingHours() []WorkingHours {
	hours := make([]WorkingHours, 7)
	for day := 0; day < 7; day++ {
		hours[day] = WorkingHours{
			DayOfWeek:    day,
			StartTime:    "09:00",
			EndTime:      "17:00",
			IsWorkingDay: day > 0 && day < 6,
		}
	}
	return hours
}

// DefaultDoctorSettings builds the config created the first time a doctor's
// settings are requested.
func DefaultDoctorSettings(doctorID string) *DoctorSettings {
	now := time.Now()
	return &DoctorSettings{
		DoctorID:            doctorID,
		WorkingHours:        DefaultWorkingHours(),
		AppointmentDuration: DefaultAppointmentDuration,
		BlockedTimeSlots:    []BlockedTimeSlot{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// WorkingHoursFor looks up the entry for the given weekday, if present.
func (s *DoctorSettings) WorkingHoursFor(day time.Weekday) (WorkingHours, bool) {
	for _, wh := range s.WorkingHours {
		if wh.DayOfWeek == int(day) {
			return wh, true
		}
	}
	return WorkingHours{}, false
}

// DoctorSettingsUpdate carries a partial settings replacement. Nil fields are
// left untouched (shallow merge over the existing or default config).
type DoctorSettingsUpdate struct {
	WorkingHours        *[]WorkingHours    `json:"workingHours,omitempty"`
	AppointmentDuration *int               `json:"appointmentDuration,omitempty"`
	BlockedTimeSlots    *[]BlockedTimeSlot `json:"blockedTimeSlots,omitempty"`
}
