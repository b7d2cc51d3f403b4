package model

import (
	"time"
)

const (
	EntityName = "booking"
)

// Status is the workflow state of a job card. The order reflects the usual
// flow, but the details editor may set any status directly.
type Status string

const (
	StatusUnplanned  Status = "UNPLANNED"
	StatusPlanned    Status = "PLANNED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
	StatusPickedUp   Status = "PICKED_UP"
)

// All lists every valid status, in workflow order.
func All() []Status {
	return []Status{StatusUnplanned, StatusPlanned, StatusInProgress, StatusDone, StatusPickedUp}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusUnplanned, StatusPlanned, StatusInProgress, StatusDone, StatusPickedUp:
		return true
	}

	return false
}

// RequiresMechanic reports whether a booking must have an assigned mechanic
// before it may enter this status.
func (s Status) RequiresMechanic() bool {
	switch s {
	case StatusInProgress, StatusDone, StatusPickedUp:
		return true
	}

	return false
}

// Booking is a unit of work for one customer vehicle. Customer name and phone
// are denormalized snapshots taken at create/edit time.
type Booking struct {
	ID                 string    `json:"id"`
	CustomerID         string    `json:"customer_id"`
	CustomerName       string    `json:"customer_name"`
	CustomerPhone      string    `json:"customer_phone"`
	VehicleType        string    `json:"vehicle_type"`
	Action             string    `json:"action"`
	DurationHours      int       `json:"duration_hours"`
	Status             Status    `json:"status"`
	MechanicID         string    `json:"mechanic_id,omitempty"`
	ScheduledDate      string    `json:"scheduled_date,omitempty"`
	ScheduledStartHour int       `json:"scheduled_start_hour,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// GetID implements the identity accessor the state store's generic upsert
// helpers key on.
func (b Booking) GetID() string {
	return b.ID
}

// Scheduled reports whether the booking occupies a calendar slot. Date and
// start hour are set and cleared together, never one without the other.
func (b Booking) Scheduled() bool {
	return b.ScheduledDate != ""
}
