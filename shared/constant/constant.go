package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyMechanicID   contextKey = "mechanic_id"
	ContextKeyMechanicName contextKey = "mechanic_name"
	ContextKeyTokenID      contextKey = "token_id"
)

const (
	RequestParamID   = "id"
	RequestParamDate = "date"
)

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	DateFormat = time.RFC3339
	// DayFormat is the calendar-day key used for scheduled dates and the
	// selected workday, matching the persisted state blob.
	DayFormat = "2006-01-02"
)

const (
	OtelServiceScopeName = "service"
	OtelStoreScopeName   = "store"
	OtelHandlerScopeName = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderRequestID     = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
