package models

import "time"

// Notification is an in-app notification record. Delivery is best effort and
// never affects the outcome of the operation that produced it.
type Notification struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	Type          string    `bson:"type" json:"type"`
	Title         string    `bson:"title" json:"title"`
	Message       string    `bson:"message" json:"message"`
	AppointmentID string    `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Read          bool      `bson:"read" json:"read"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
