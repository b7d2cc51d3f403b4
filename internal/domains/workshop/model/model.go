package model

import (
	"time"
)

const (
	EntityName = "workshop"
)

// Workshop is the single-tenant root entity. Resetting it wipes all dependent
// data: mechanics, customers, bookings, weekly events.
type Workshop struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (w Workshop) GetID() string {
	return w.ID
}
