package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"wakens/shared/failure"
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
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("bad input")),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("check-out must be after check-in"),
			code:    http.StatusBadRequest,
			message: "check-out must be after check-in",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("already exists"),
			code:    http.StatusConflict,
			message: "already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if failure.GetCode(tt.err) != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, failure.GetCode(tt.err))
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestNilErrors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should return nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should return nil")
	}
}

func TestGetCode_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", failure.NotFound("room not found"))

	if failure.GetCode(wrapped) != http.StatusNotFound {
		t.Errorf("expected wrapped failure to resolve to 404, got %d", failure.GetCode(wrapped))
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if failure.GetCode(errors.New("plain")) != http.StatusInternalServerError {
		t.Error("plain errors should default to 500")
	}
}
