package middleware

import (
	"fmt"
	"net/http"

	"crew/config"
	"crew/infras/otel"

	"github.com/go-chi/cors"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(http.Handler) http.Handler
	CORS(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

// Tracing opens a span covering the whole request.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.UserAgent(),
			"http.host":       request.Host,
			"http.source":     request.RemoteAddr,
		})

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// CORS applies the configured cross-origin policy. The calendar client is a
// browser app served from a different origin than the API.
func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	if !a.config.App.CORS.Enable {
		return next
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   a.config.App.CORS.AllowedOrigins,
		AllowedMethods:   a.config.App.CORS.AllowedMethods,
		AllowedHeaders:   a.config.App.CORS.AllowedHeaders,
		AllowCredentials: a.config.App.CORS.AllowCredentials,
		MaxAge:           a.config.App.CORS.MaxAgeSeconds,
	})(next)
}
