package mechanic

import (
	"net/http"

	"crew/infras/otel"
	"crew/internal/domains/mechanic/model/dto"
	"crew/internal/domains/mechanic/service"
	"crew/shared/constant"
	"crew/shared/validator"
	"crew/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Mechanic
	otel    otel.Otel
}

func New(service service.Mechanic, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/mechanics", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMechanic)
		routerGroup.Get("/", handler.GetMechanics)
		routerGroup.Patch("/{id}", handler.UpdateMechanic)
		routerGroup.Delete("/{id}", handler.DeleteMechanic)
	})
}

// CreateMechanic registers a new mechanic.
// @Summary Create a new mechanic
// @Description Create a mechanic with a PIN or password credential.
// @Tags Mechanic
// @Accept json
// @Produce json
// @Param request body dto.CreateMechanicRequest true "Create Mechanic Request"
// @Success 201 {object} response.Data[dto.MechanicResponse] "Mechanic created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mechanics [post]
// @Security BearerAuth
func (handler *Handler) CreateMechanic(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMechanic")
	defer scope.End()

	req := dto.CreateMechanicRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	mechanic, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create mechanic")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Mechanic created successfully")

	response.WithJSON(w, http.StatusCreated, mechanic)
}

// GetMechanics lists all mechanics.
// @Summary Get all mechanics
// @Description Retrieve every mechanic in the workshop. Credentials are never included.
// @Tags Mechanic
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetMechanicsResponse] "List of mechanics"
// @Failure 500 {object} response.Error
// @Router /v1/mechanics [get]
// @Security BearerAuth
func (handler *Handler) GetMechanics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMechanics")
	defer scope.End()

	mechanics, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get mechanics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Mechanics retrieved successfully")

	response.WithJSON(w, http.StatusOK, mechanics)
}

// UpdateMechanic updates a mechanic by ID.
// @Summary Update a mechanic by ID
// @Description Update a mechanic's name, login method or credential.
// @Tags Mechanic
// @Accept json
// @Produce json
// @Param id path string true "Mechanic ID"
// @Param request body dto.UpdateMechanicRequest true "Update Mechanic Request"
// @Success 200 {object} response.Data[dto.MechanicResponse] "Mechanic updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mechanics/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMechanic(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMechanic")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMechanicRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	mechanic, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update mechanic")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Mechanic updated successfully")

	response.WithJSON(w, http.StatusOK, mechanic)
}

// DeleteMechanic deletes a mechanic by ID.
// @Summary Delete a mechanic by ID
// @Description Remove a mechanic. Bookings keep their assignment history.
// @Tags Mechanic
// @Accept json
// @Produce json
// @Param id path string true "Mechanic ID"
// @Success 200 {object} response.Message "Mechanic deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/mechanics/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMechanic(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMechanic")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete mechanic")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Mechanic deleted successfully")

	response.WithMessage(w, http.StatusOK, "Mechanic deleted successfully")
}
