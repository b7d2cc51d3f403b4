package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Slot rejections additionally carry the shorter duration the caller may offer
// as a one-click fix.
type Failure struct {
	Code              int    `json:"code"`
	Message           string `json:"message"`
	SuggestedDuration int    `json:"suggested_duration,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// SlotRejected returns a Conflict Failure carrying the suggested shorter
// duration computed by the slot validator.
func SlotRejected(message string, suggestedDuration int) error {
	return &Failure{
		Code:              http.StatusConflict,
		Message:           message,
		SuggestedDuration: suggestedDuration,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetSuggestedDuration returns the suggested duration attached to a slot
// rejection, or zero when the error carries none.
func GetSuggestedDuration(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.SuggestedDuration
	}

	return 0
}
