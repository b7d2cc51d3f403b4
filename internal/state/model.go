package state

import (
	bookingModel "crew/internal/domains/booking/model"
	customerModel "crew/internal/domains/customer/model"
	eventModel "crew/internal/domains/event/model"
	mechanicModel "crew/internal/domains/mechanic/model"
	workshopModel "crew/internal/domains/workshop/model"
)

// AppState is the full persisted state of one workshop. The store is its sole
// owner; every other component reads snapshots and submits mutations back
// through the store as whole-state writes.
type AppState struct {
	Workshop           *workshopModel.Workshop  `json:"workshop"`
	Mechanics          []mechanicModel.Mechanic `json:"mechanics"`
	Customers          []customerModel.Customer `json:"customers"`
	Bookings           []bookingModel.Booking   `json:"bookings"`
	WeeklyEvents       []eventModel.WeeklyEvent `json:"weekly_events"`
	CustomVehicleTypes []string                 `json:"custom_vehicle_types"`
	CurrentMechanicID  string                   `json:"current_mechanic_id,omitempty"`
	SelectedWorkday    string                   `json:"selected_workday,omitempty"`
}

// Default returns the documented empty state used when nothing is persisted,
// the version tag does not match, or the stored payload cannot be parsed.
func Default() AppState {
	return AppState{
		Mechanics:          []mechanicModel.Mechanic{},
		Customers:          []customerModel.Customer{},
		Bookings:           []bookingModel.Booking{},
		WeeklyEvents:       []eventModel.WeeklyEvent{},
		CustomVehicleTypes: []string{},
	}
}

// normalize backfills collections that older payloads may have omitted, so
// callers never see nil slices.
func (s *AppState) normalize() {
	if s.Mechanics == nil {
		s.Mechanics = []mechanicModel.Mechanic{}
	}

	if s.Customers == nil {
		s.Customers = []customerModel.Customer{}
	}

	if s.Bookings == nil {
		s.Bookings = []bookingModel.Booking{}
	}

	if s.WeeklyEvents == nil {
		s.WeeklyEvents = []eventModel.WeeklyEvent{}
	}

	if s.CustomVehicleTypes == nil {
		s.CustomVehicleTypes = []string{}
	}
}

// Entity is anything the generic collection helpers can key by id.
type Entity interface {
	GetID() string
}

// Upsert replaces the element with the same id or appends when absent.
func Upsert[T Entity](collection []T, entity T) []T {
	for i := range collection {
		if collection[i].GetID() == entity.GetID() {
			collection[i] = entity

			return collection
		}
	}

	return append(collection, entity)
}

// Remove filters out the element with the given id. Removing an absent id is
// a no-op.
func Remove[T Entity](collection []T, id string) []T {
	filtered := make([]T, 0, len(collection))

	for _, entity := range collection {
		if entity.GetID() != id {
			filtered = append(filtered, entity)
		}
	}

	return filtered
}

// FindByID returns the element with the given id, if present.
func FindByID[T Entity](collection []T, id string) (T, bool) {
	for _, entity := range collection {
		if entity.GetID() == id {
			return entity, true
		}
	}

	var zero T

	return zero, false
}
