package models

// Slot is a single bookable window on a date, identified by its start time.
// Unavailable slots are kept in the response so clients can render a fully
// booked grid instead of silently dropping options.
type Slot struct {
	Time      string `json:"time"` // "HH:mm"
	Available bool   `json:"available"`
}

// AvailableDate is one calendar day's slot grid.
type AvailableDate struct {
	Date                string `json:"date"` // "YYYY-MM-DD"
	Slots               []Slot `json:"slots"`
	AppointmentDuration int    `json:"appointmentDuration"`
}

// AvailabilityResponse is the payload for the available-dates endpoint.
type AvailabilityResponse struct {
	AvailableDates      []AvailableDate `json:"availableDates"`
	AppointmentDuration int             `json:"appointmentDuration"`
}
