package service

import (
	"context"
	"crew/infras/otel"
	"crew/internal/domains/booking/model"
	"crew/internal/domains/booking/model/dto"
	customerModel "crew/internal/domains/customer/model"
	"crew/internal/domains/schedule"
	"crew/internal/state"
	"crew/shared/constant"
	"crew/shared/failure"
	"crew/shared/timezone"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Booking is the placement and transition engine. Scheduling actions (create
// against a slot, move) run the slot validator before committing; rejections
// are returned as values and never mutate state.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	ListUnplanned(ctx context.Context) (dto.GetBookingsResponse, error)
	ListForDay(ctx context.Context, day string) (dto.GetBookingsResponse, error)
	Move(ctx context.Context, id string, req dto.MoveBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	ValidateSlot(ctx context.Context, day string, startHour, durationHours int, excludeID string) (schedule.Result, error)
	VehicleTypes(ctx context.Context) (dto.VehicleTypesResponse, error)
	AddVehicleType(ctx context.Context, req dto.AddVehicleTypeRequest) (dto.VehicleTypesResponse, error)
	RemoveVehicleType(ctx context.Context, vehicleType string) (dto.VehicleTypesResponse, error)
}

type serviceImpl struct {
	store state.Store
	otel  otel.Otel
}

func New(store state.Store, otel otel.Otel) Booking {
	return &serviceImpl{
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.PartialSlot() {
		return res, failure.BadRequestFromString("scheduled_date and scheduled_start_hour must be provided together") // nolint:wrapcheck
	}

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	if req.HasSlot() {
		check := schedule.Check(*req.ScheduledStartHour, req.DurationHours, bookingsOn(st.Bookings, req.ScheduledDate), "")
		if !check.Valid {
			return res, failure.SlotRejected(check.Reason, check.SuggestedDuration) // nolint:wrapcheck
		}
	}

	customer := upsertCustomer(&st, req.CustomerName, req.CustomerPhone)

	booking := req.ToModel(customer.ID, timezone.Now())
	st.Bookings = state.Upsert(st.Bookings, booking)

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	booking, found := state.FindByID(st.Bookings, id)
	if !found {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	res.FromModels(st.Bookings)

	return res, nil
}

// ListUnplanned returns the backlog column: bookings without a slot, waiting
// to be dragged onto the calendar.
func (s *serviceImpl) ListUnplanned(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListUnplanned")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	unplanned := make([]model.Booking, 0, len(st.Bookings))

	for _, booking := range st.Bookings {
		if booking.Status == model.StatusUnplanned {
			unplanned = append(unplanned, booking)
		}
	}

	res.FromModels(unplanned)

	return res, nil
}

// ListForDay returns the bookings occupying slots on the given day, ordered by
// start hour.
func (s *serviceImpl) ListForDay(ctx context.Context, day string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	scheduled := make([]model.Booking, 0, len(st.Bookings))

	for _, booking := range bookingsOn(st.Bookings, day) {
		if booking.Status != model.StatusUnplanned {
			scheduled = append(scheduled, booking)
		}
	}

	sort.Slice(scheduled, func(i, j int) bool {
		return scheduled[i].ScheduledStartHour < scheduled[j].ScheduledStartHour
	})

	res.FromModels(scheduled)

	return res, nil
}

// Move places a booking on a slot (drag-to-schedule) or moves it between
// slots (drag-to-reschedule). On rejection, the booking is untouched and the
// reason plus a suggested duration travel back to the caller.
func (s *serviceImpl) Move(ctx context.Context, id string, req dto.MoveBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Move")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	booking, found := state.FindByID(st.Bookings, id)
	if !found {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	check := schedule.Check(req.TargetHour, booking.DurationHours, bookingsOn(st.Bookings, req.TargetDate), booking.ID)
	if !check.Valid {
		return res, failure.SlotRejected(check.Reason, check.SuggestedDuration) // nolint:wrapcheck
	}

	booking.ScheduledDate = req.TargetDate
	booking.ScheduledStartHour = req.TargetHour

	// Placement only ever advances UNPLANNED to PLANNED; rescheduling an
	// in-progress job keeps its status.
	if booking.Status == model.StatusUnplanned {
		booking.Status = model.StatusPlanned
	}

	booking.UpdatedAt = timezone.Now()
	st.Bookings = state.Upsert(st.Bookings, booking)

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to move booking")

		return res, fmt.Errorf("failed to move booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

// Update applies the details editor: any-to-any status change, mechanic
// (re)assignment, duration, vehicle type and action edits. Guards reject the
// whole edit without mutating anything.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	booking, found := state.FindByID(st.Bookings, id)
	if !found {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	targetStatus := booking.Status
	if req.Status != "" {
		targetStatus = model.Status(req.Status)
	}

	mechanicID := booking.MechanicID
	if req.MechanicID != nil {
		mechanicID = *req.MechanicID
	}

	if mechanicID != "" {
		if _, ok := state.FindByID(st.Mechanics, mechanicID); !ok {
			return res, failure.BadRequestFromString("mechanic does not exist") // nolint:wrapcheck
		}
	}

	if targetStatus.RequiresMechanic() && mechanicID == "" {
		return res, failure.BadRequestFromString("assign a mechanic first") // nolint:wrapcheck
	}

	if targetStatus != model.StatusUnplanned && !booking.Scheduled() {
		return res, failure.BadRequestFromString("schedule the job before changing its status") // nolint:wrapcheck
	}

	if req.DurationHours != nil && *req.DurationHours != booking.DurationHours {
		// A shorter or longer job must still fit its own slot; the suggestion
		// is offered, never applied silently.
		if booking.Scheduled() && targetStatus != model.StatusUnplanned {
			check := schedule.Check(booking.ScheduledStartHour, *req.DurationHours, bookingsOn(st.Bookings, booking.ScheduledDate), booking.ID)
			if !check.Valid {
				return res, failure.SlotRejected(check.Reason, check.SuggestedDuration) // nolint:wrapcheck
			}
		}

		booking.DurationHours = schedule.ClampDuration(*req.DurationHours)
	}

	booking.Status = targetStatus
	booking.MechanicID = mechanicID

	// A booking sent back to the backlog gives up its slot; unplanned
	// bookings carry no schedule.
	if targetStatus == model.StatusUnplanned {
		booking.ScheduledDate = ""
		booking.ScheduledStartHour = 0
	}

	if req.VehicleType != "" {
		booking.VehicleType = model.NormalizeVehicleType(req.VehicleType)
	}

	if req.Action != "" {
		booking.Action = req.Action
	}

	booking.UpdatedAt = timezone.Now()
	st.Bookings = state.Upsert(st.Bookings, booking)

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return fmt.Errorf("failed to load state: %w", err)
	}

	if _, found := state.FindByID(st.Bookings, id); !found {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	st.Bookings = state.Remove(st.Bookings, id)

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}

// ValidateSlot runs the slot validator speculatively. The outcome is a value
// either way; callers poll it for drag highlighting without committing.
func (s *serviceImpl) ValidateSlot(ctx context.Context, day string, startHour, durationHours int, excludeID string) (res schedule.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	return schedule.Check(startHour, durationHours, bookingsOn(st.Bookings, day), excludeID), nil
}

func (s *serviceImpl) VehicleTypes(ctx context.Context) (res dto.VehicleTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VehicleTypes")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	res.Types = allVehicleTypes(st)

	return res, nil
}

func (s *serviceImpl) AddVehicleType(ctx context.Context, req dto.AddVehicleTypeRequest) (res dto.VehicleTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddVehicleType")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	normalized := model.NormalizeVehicleType(req.Type)
	if normalized == "" {
		return res, failure.BadRequestFromString("vehicle type cannot be empty") // nolint:wrapcheck
	}

	if slices.Contains(allVehicleTypes(st), normalized) {
		return res, failure.BadRequestFromString("vehicle type already exists") // nolint:wrapcheck
	}

	st.CustomVehicleTypes = append(st.CustomVehicleTypes, normalized)

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to add vehicle type")

		return res, fmt.Errorf("failed to add vehicle type: %w", err)
	}

	res.Types = allVehicleTypes(st)

	return res, nil
}

func (s *serviceImpl) RemoveVehicleType(ctx context.Context, vehicleType string) (res dto.VehicleTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveVehicleType")
	defer scope.End()
	defer scope.TraceIfError(err)

	normalized := model.NormalizeVehicleType(vehicleType)
	if model.IsDefaultVehicleType(normalized) {
		return res, failure.BadRequestFromString("default vehicle types cannot be removed") // nolint:wrapcheck
	}

	st, err := s.store.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load state")

		return res, fmt.Errorf("failed to load state: %w", err)
	}

	filtered := make([]string, 0, len(st.CustomVehicleTypes))

	for _, existing := range st.CustomVehicleTypes {
		if existing != normalized {
			filtered = append(filtered, existing)
		}
	}

	st.CustomVehicleTypes = filtered

	if err = s.store.Save(ctx, st); err != nil {
		log.Error().Err(err).Msg("failed to remove vehicle type")

		return res, fmt.Errorf("failed to remove vehicle type: %w", err)
	}

	res.Types = allVehicleTypes(st)

	return res, nil
}

// bookingsOn filters the bookings scheduled on the given day.
func bookingsOn(bookings []model.Booking, day string) []model.Booking {
	sameDay := make([]model.Booking, 0, len(bookings))

	for _, booking := range bookings {
		if booking.ScheduledDate == day {
			sameDay = append(sameDay, booking)
		}
	}

	return sameDay
}

// upsertCustomer reuses an existing customer on a case-insensitive name match,
// overwriting the phone snapshot if it changed, and creates one otherwise.
func upsertCustomer(st *state.AppState, name, phone string) customerModel.Customer {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	for i := range st.Customers {
		if strings.EqualFold(st.Customers[i].Name, name) {
			if st.Customers[i].Phone != phone {
				st.Customers[i].Phone = phone
			}

			return st.Customers[i]
		}
	}

	customer := customerModel.Customer{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
	}

	st.Customers = append(st.Customers, customer)

	return customer
}

func allVehicleTypes(st state.AppState) []string {
	types := make([]string, 0, len(model.DefaultVehicleTypes)+len(st.CustomVehicleTypes))
	types = append(types, model.DefaultVehicleTypes...)
	types = append(types, st.CustomVehicleTypes...)

	return types
}
