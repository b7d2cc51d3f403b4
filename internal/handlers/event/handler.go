package event

import (
	"net/http"

	"crew/infras/otel"
	"crew/internal/domains/event/model/dto"
	"crew/internal/domains/event/service"
	"crew/shared/constant"
	"crew/shared/validator"
	"crew/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Event
	otel    otel.Otel
}

func New(service service.Event, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/", handler.GetEvents)
		routerGroup.Delete("/{id}", handler.DeleteEvent)
	})
}

// CreateEvent adds a recurring weekly event to the calendar.
// @Summary Create a weekly event
// @Description Create a recurring event shown on every weekday of the calendar.
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateWeeklyEventRequest true "Create Weekly Event Request"
// @Success 201 {object} response.Data[dto.WeeklyEventResponse] "Event created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateWeeklyEventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	event, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create weekly event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Weekly event created successfully")

	response.WithJSON(w, http.StatusCreated, event)
}

// GetEvents lists the weekly events.
// @Summary Get weekly events
// @Description Retrieve all recurring weekly events.
// @Tags Event
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetWeeklyEventsResponse] "List of weekly events"
// @Failure 500 {object} response.Error
// @Router /v1/events [get]
// @Security BearerAuth
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	events, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get weekly events")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

// DeleteEvent removes a weekly event by ID.
// @Summary Delete a weekly event
// @Description Remove a recurring weekly event from the calendar.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Message "Event deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete weekly event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Weekly event deleted successfully")

	response.WithMessage(w, http.StatusOK, "Weekly event deleted successfully")
}
