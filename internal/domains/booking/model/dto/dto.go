package dto

import (
	"crew/internal/domains/booking/model"
	"crew/shared/constant"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerName       string `json:"customer_name"        validate:"required,max=100"`
	CustomerPhone      string `json:"customer_phone"       validate:"required,max=30"`
	VehicleType        string `json:"vehicle_type"         validate:"required,max=40"`
	Action             string `json:"action"               validate:"required"`
	DurationHours      int    `json:"duration_hours"       validate:"required,gte=1,lte=11"`
	ScheduledDate      string `json:"scheduled_date"       validate:"omitempty,datetime=2006-01-02"`
	ScheduledStartHour *int   `json:"scheduled_start_hour" validate:"omitempty,gte=7,lte=17"`
}

// HasSlot reports whether the request targets a calendar slot directly.
func (c *CreateBookingRequest) HasSlot() bool {
	return c.ScheduledDate != "" && c.ScheduledStartHour != nil
}

// PartialSlot reports whether only one half of the date/hour pair was given,
// which is never a valid request.
func (c *CreateBookingRequest) PartialSlot() bool {
	return (c.ScheduledDate != "") != (c.ScheduledStartHour != nil)
}

func (c *CreateBookingRequest) ToModel(customerID string, now time.Time) model.Booking {
	booking := model.Booking{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		VehicleType:   model.NormalizeVehicleType(c.VehicleType),
		Action:        c.Action,
		DurationHours: c.DurationHours,
		Status:        model.StatusUnplanned,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if c.HasSlot() {
		booking.Status = model.StatusPlanned
		booking.ScheduledDate = c.ScheduledDate
		booking.ScheduledStartHour = *c.ScheduledStartHour
	}

	return booking
}

type MoveBookingRequest struct {
	TargetDate string `json:"target_date" validate:"required,datetime=2006-01-02"`
	TargetHour int    `json:"target_hour" validate:"required,gte=7,lte=17"`
}

// UpdateBookingRequest is the details-editor payload. Absent fields leave the
// booking untouched; MechanicID distinguishes "unchanged" (absent) from
// "cleared" (empty string).
type UpdateBookingRequest struct {
	Status        string  `json:"status"         validate:"omitempty,oneof=UNPLANNED PLANNED IN_PROGRESS DONE PICKED_UP"`
	MechanicID    *string `json:"mechanic_id"`
	DurationHours *int    `json:"duration_hours" validate:"omitempty,gte=1,lte=11"`
	VehicleType   string  `json:"vehicle_type"   validate:"omitempty,max=40"`
	Action        string  `json:"action"         validate:"omitempty"`
}

type AddVehicleTypeRequest struct {
	Type string `json:"type" validate:"required,max=40"`
}

type BookingResponse struct {
	ID                 string `json:"id"`
	CustomerID         string `json:"customer_id"`
	CustomerName       string `json:"customer_name"`
	CustomerPhone      string `json:"customer_phone"`
	VehicleType        string `json:"vehicle_type"`
	Action             string `json:"action"`
	DurationHours      int    `json:"duration_hours"`
	Status             string `json:"status"`
	MechanicID         string `json:"mechanic_id,omitempty"`
	ScheduledDate      string `json:"scheduled_date,omitempty"`
	ScheduledStartHour int    `json:"scheduled_start_hour,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.CustomerID = booking.CustomerID
	r.CustomerName = booking.CustomerName
	r.CustomerPhone = booking.CustomerPhone
	r.VehicleType = booking.VehicleType
	r.Action = booking.Action
	r.DurationHours = booking.DurationHours
	r.Status = string(booking.Status)
	r.MechanicID = booking.MechanicID
	r.ScheduledDate = booking.ScheduledDate
	r.ScheduledStartHour = booking.ScheduledStartHour
	r.CreatedAt = booking.CreatedAt.Format(constant.DateFormat)
	r.UpdatedAt = booking.UpdatedAt.Format(constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(bookings []model.Booking) {
	r.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		r.Bookings[i].FromModel(booking)
	}
}

type VehicleTypesResponse struct {
	Types []string `json:"types"`
}
