package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ActiveStatuses are the statuses that occupy a slot and count toward the
// patient quota. Cancelled and completed appointments free the slot.
var ActiveStatuses = []AppointmentStatus{StatusPending, StatusConfirmed}

// IsValid reports whether s is one of the four known statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsActive reports whether the status still occupies its slot.
func (s AppointmentStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Appointment represents one booked slot between a patient and a doctor.
type Appointment struct {
	ID        string            `bson:"id" json:"id"`
	DoctorID  string            `bson:"doctorId" json:"doctorId"`
	PatientID string            `bson:"patientId" json:"patientId"`
	Date      string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time      string            `bson:"time" json:"time"` // 24h "HH:mm"
	Status    AppointmentStatus `bson:"status" json:"status"`
	Reason    string            `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentDetail is the single-appointment view returned to either party,
// with engagement flags resolved from the comment and rating stores.
type AppointmentDetail struct {
	Appointment
	HasComment bool `json:"hasComment"`
	HasRating  bool `json:"hasRating"`
}

// CreateAppointmentRequest is the booking payload.
type CreateAppointmentRequest struct {
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Reason   string `json:"reason,omitempty"`
}

// UpdateAppointmentStatusRequest carries the requested target status.
type UpdateAppointmentStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}
