package middleware

import (
	"context"
	"errors"
	"net/http"

	"crew/infras/jwt"
	"crew/infras/otel"
	"crew/shared/constant"
	"crew/shared/failure"
	"crew/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

// NewAuthMiddleware creates a new middleware instance
func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
	}
}

// Auth validates the bearer token and puts the mechanic identity on the
// request context.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			err := failure.Unauthorized("Missing authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if claims.MechanicID == "" {
			log.Error().Msg("JWT claims: MechanicID is empty")

			response.WithError(writer, failure.Unauthorized("Invalid token claims"))

			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyMechanicID, claims.MechanicID)
		ctx = context.WithValue(ctx, constant.ContextKeyMechanicName, claims.MechanicName)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
