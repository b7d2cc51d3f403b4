package booking

import (
	"net/http"
	"strconv"

	"crew/infras/otel"
	"crew/internal/domains/booking/model/dto"
	"crew/internal/domains/booking/service"
	"crew/shared/constant"
	"crew/shared/failure"
	"crew/shared/validator"
	"crew/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/validate-slot", handler.ValidateSlot)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Put("/{id}/move", handler.MoveBooking)
		routerGroup.Delete("/{id}", handler.DeleteBooking)
	})

	router.Route("/vehicle-types", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetVehicleTypes)
		routerGroup.Post("/", handler.AddVehicleType)
		routerGroup.Delete("/{type}", handler.RemoveVehicleType)
	})
}

// CreateBooking handles the creation of a new job card.
// @Summary Create a new booking
// @Description Create a new job card, optionally placed into a calendar slot.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings retrieves bookings, optionally filtered to one day or to the
// unplanned backlog.
// @Summary Get bookings
// @Description Retrieve all bookings. Pass date=YYYY-MM-DD for a single day, or unplanned=true for the backlog.
// @Tags Booking
// @Accept json
// @Produce json
// @Param date query string false "Filter by scheduled date (YYYY-MM-DD)"
// @Param unplanned query bool false "Only bookings without a calendar slot"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	var (
		bookings dto.GetBookingsResponse
		err      error
	)

	switch {
	case r.URL.Query().Get(constant.RequestParamDate) != "":
		bookings, err = handler.service.ListForDay(ctx, r.URL.Query().Get(constant.RequestParamDate))
	case r.URL.Query().Get("unplanned") == "true":
		bookings, err = handler.service.ListUnplanned(ctx)
	default:
		bookings, err = handler.service.GetAll(ctx)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// ValidateSlot dry-runs a calendar placement without changing anything.
// @Summary Validate a calendar slot
// @Description Check whether a booking of the given duration fits at the given day and hour.
// @Tags Booking
// @Accept json
// @Produce json
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Param start_hour query int true "Start hour (7-17)"
// @Param duration_hours query int true "Duration in whole hours"
// @Param exclude_id query string false "Booking ID to ignore, when re-validating its own slot"
// @Success 200 {object} response.Data[schedule.Result] "Validation verdict"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/validate-slot [get]
// @Security BearerAuth
func (handler *Handler) ValidateSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateSlot")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	if date == "" {
		response.WithError(w, failure.BadRequestFromString("date is required"))

		return
	}

	startHour, err := strconv.Atoi(r.URL.Query().Get("start_hour"))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("start_hour must be an integer"))

		return
	}

	durationHours, err := strconv.Atoi(r.URL.Query().Get("duration_hours"))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("duration_hours must be an integer"))

		return
	}

	result, err := handler.service.ValidateSlot(ctx, date, startHour, durationHours, r.URL.Query().Get("exclude_id"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate slot")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Retrieve a booking by its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates an existing booking by its ID.
// @Summary Update a booking by ID
// @Description Update status, assigned mechanic, duration, vehicle type or action of an existing booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking updated successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// MoveBooking places a booking into a calendar slot or relocates it.
// @Summary Move a booking to a calendar slot
// @Description Place an unplanned booking onto the calendar, or move a scheduled booking to a new day and hour. A rejected move leaves the booking where it was.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.MoveBookingRequest true "Move Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking moved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/move [put]
// @Security BearerAuth
func (handler *Handler) MoveBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MoveBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.MoveBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Move(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to move booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking moved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking by ID
// @Description Remove a job card. Its calendar slot is freed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted successfully")

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// GetVehicleTypes lists the selectable vehicle types.
// @Summary Get vehicle types
// @Description Retrieve the default vehicle types plus any custom ones.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.VehicleTypesResponse] "Vehicle types"
// @Failure 500 {object} response.Error
// @Router /v1/vehicle-types [get]
// @Security BearerAuth
func (handler *Handler) GetVehicleTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicleTypes")
	defer scope.End()

	types, err := handler.service.VehicleTypes(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicle types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, types)
}

// AddVehicleType registers a custom vehicle type.
// @Summary Add a custom vehicle type
// @Description Add a custom vehicle type. Names are upper-cased and deduplicated.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.AddVehicleTypeRequest true "Add Vehicle Type Request"
// @Success 201 {object} response.Data[dto.VehicleTypesResponse] "Vehicle types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicle-types [post]
// @Security BearerAuth
func (handler *Handler) AddVehicleType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddVehicleType")
	defer scope.End()

	req := dto.AddVehicleTypeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	types, err := handler.service.AddVehicleType(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add vehicle type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle type added successfully")

	response.WithJSON(w, http.StatusCreated, types)
}

// RemoveVehicleType removes a custom vehicle type.
// @Summary Remove a custom vehicle type
// @Description Remove a custom vehicle type. Default types cannot be removed.
// @Tags Booking
// @Accept json
// @Produce json
// @Param type path string true "Vehicle type name"
// @Success 200 {object} response.Data[dto.VehicleTypesResponse] "Vehicle types"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/vehicle-types/{type} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveVehicleType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveVehicleType")
	defer scope.End()

	vehicleType := chi.URLParam(r, "type")

	types, err := handler.service.RemoveVehicleType(ctx, vehicleType)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove vehicle type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle type removed successfully")

	response.WithJSON(w, http.StatusOK, types)
}
