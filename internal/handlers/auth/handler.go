package auth

import (
	"net/http"

	"crew/infras/otel"
	"crew/internal/domains/auth/model/dto"
	"crew/internal/domains/auth/service"
	"crew/shared/constant"
	"crew/shared/failure"
	"crew/shared/validator"
	"crew/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the auth routes. Login and refresh must stay reachable
// without a token; logout runs behind the auth middleware.
func (handler *Handler) Router(r chi.Router, auth func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/refresh-token", handler.RefreshToken)
		r.With(auth).Post("/logout", handler.Logout)
	})
}

// Login handles mechanic login
// @Summary Login a mechanic
// @Description Log a mechanic in with their PIN or password and make them the active mechanic.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse "Mechanic logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login mechanic")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Mechanic logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh mechanic token
// @Description Refresh the token pair using the provided refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.RefreshTokenResponse "Token refreshed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Refresh(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout handles mechanic logout
// @Summary Logout the active mechanic
// @Description Clear the active-mechanic marker for the logged-in mechanic.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Mechanic logged out successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	mechanicID, ok := ctx.Value(constant.ContextKeyMechanicID).(string)
	if !ok || mechanicID == "" {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	if err := handler.service.Logout(ctx, mechanicID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to logout mechanic")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Mechanic logged out successfully")

	response.WithMessage(w, http.StatusOK, "Mechanic logged out successfully")
}
