package workshop

import (
	"net/http"

	"crew/infras/otel"
	"crew/internal/domains/workshop/model/dto"
	"crew/internal/domains/workshop/service"
	"crew/shared/constant"
	"crew/shared/validator"
	"crew/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Workshop
	otel    otel.Otel
}

func New(service service.Workshop, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the workshop routes. Creating and inspecting the
// workshop happens before any mechanic exists, so those stay open;
// resetting it and moving the workday need an authenticated mechanic.
func (handler *Handler) Router(router chi.Router, auth func(http.Handler) http.Handler) {
	router.Route("/workshop", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateWorkshop)
		routerGroup.Get("/", handler.GetWorkshop)
		routerGroup.With(auth).Delete("/", handler.ResetWorkshop)
		routerGroup.With(auth).Put("/workday", handler.SetWorkday)
	})
}

// CreateWorkshop sets up the workshop, wiping any previous state.
// @Summary Create the workshop
// @Description Create the workshop. Any existing workshop and all of its data are replaced.
// @Tags Workshop
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkshopRequest true "Create Workshop Request"
// @Success 201 {object} response.Data[dto.WorkshopResponse] "Workshop created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workshop [post]
func (handler *Handler) CreateWorkshop(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWorkshop")
	defer scope.End()

	req := dto.CreateWorkshopRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	workshop, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create workshop")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Workshop created successfully")

	response.WithJSON(w, http.StatusCreated, workshop)
}

// GetWorkshop returns the workshop and the currently selected workday.
// @Summary Get the workshop
// @Description Retrieve the workshop profile. The workshop field is null until one has been created.
// @Tags Workshop
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetWorkshopResponse] "Workshop details"
// @Failure 500 {object} response.Error
// @Router /v1/workshop [get]
func (handler *Handler) GetWorkshop(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkshop")
	defer scope.End()

	workshop, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workshop")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, workshop)
}

// ResetWorkshop wipes the workshop and everything in it.
// @Summary Reset the workshop
// @Description Delete the workshop, all mechanics, customers, bookings and events.
// @Tags Workshop
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Workshop reset successfully"
// @Failure 500 {object} response.Error
// @Router /v1/workshop [delete]
// @Security BearerAuth
func (handler *Handler) ResetWorkshop(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetWorkshop")
	defer scope.End()

	if err := handler.service.Reset(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset workshop")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Workshop reset successfully")

	response.WithMessage(w, http.StatusOK, "Workshop reset successfully")
}

// SetWorkday selects the day shown on the calendar.
// @Summary Set the selected workday
// @Description Persist the calendar day the workshop is currently looking at.
// @Tags Workshop
// @Accept json
// @Produce json
// @Param request body dto.SetWorkdayRequest true "Set Workday Request"
// @Success 200 {object} response.Message "Workday set successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workshop/workday [put]
// @Security BearerAuth
func (handler *Handler) SetWorkday(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetWorkday")
	defer scope.End()

	req := dto.SetWorkdayRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetWorkday(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set workday")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Workday set successfully")

	response.WithMessage(w, http.StatusOK, "Workday set successfully")
}
