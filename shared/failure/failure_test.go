package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"crew/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("nope"), code: http.StatusUnauthorized},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("taken"), code: http.StatusConflict},
		{name: "Forbidden", err: failure.Forbidden("denied"), code: http.StatusForbidden},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode_UnknownError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected fallback code %d, got %d", http.StatusInternalServerError, got)
	}
}

func TestSlotRejected(t *testing.T) {
	err := failure.SlotRejected("slot already occupied", 2)

	if got := failure.GetCode(err); got != http.StatusConflict {
		t.Errorf("expected code %d, got %d", http.StatusConflict, got)
	}

	if got := failure.GetSuggestedDuration(err); got != 2 {
		t.Errorf("expected suggested duration 2, got %d", got)
	}

	// The suggestion survives wrapping.
	wrapped := fmt.Errorf("placing booking: %w", err)
	if got := failure.GetSuggestedDuration(wrapped); got != 2 {
		t.Errorf("expected suggested duration 2 through wrapping, got %d", got)
	}
}

func TestGetSuggestedDuration_NoSuggestion(t *testing.T) {
	if got := failure.GetSuggestedDuration(failure.Conflict("taken")); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}

	if got := failure.GetSuggestedDuration(errors.New("plain")); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
