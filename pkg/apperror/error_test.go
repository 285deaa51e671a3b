package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "without internal error",
			err: &Error{
				HTTPStatus: http.StatusConflict,
				Code:       "conflict",
				Message:    "Email already exists in waiting list",
			},
			expected: "conflict: Email already exists in waiting list",
		},
		{
			name: "with internal error",
			err: &Error{
				HTTPStatus: http.StatusInternalServerError,
				Code:       "database_error",
				Message:    "Internal server error",
				Internal:   errors.New("connection refused"),
			},
			expected: "database_error: Internal server error (connection refused)",
		},
		{
			name: "empty message",
			err: &Error{
				HTTPStatus: http.StatusBadRequest,
				Code:       "bad_request",
			},
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying cause")
	err := ErrUpstream.WithInternal(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if ErrUpstream.Unwrap() != nil {
		t.Error("Unwrap() on sentinel should be nil")
	}
}

func TestErrorBody(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want map[string]any
	}{
		{
			name: "message only",
			err:  NewConflict("Email already exists in waiting list"),
			want: map[string]any{"error": "Email already exists in waiting list"},
		},
		{
			name: "with status field",
			err:  NewBadRequest("Input text is required").WithField("status", "error"),
			want: map[string]any{"error": "Input text is required", "status": "error"},
		},
		{
			name: "field cannot override error",
			err:  NewBadRequest("real").WithField("error", "fake"),
			want: map[string]any{"error": "real"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Body()
			if len(got) != len(tt.want) {
				t.Fatalf("Body() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("Body()[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestCopiesDoNotMutateOriginal(t *testing.T) {
	original := New(http.StatusBadRequest, "bad_request", "Original message")

	_ = original.WithMessage("changed")
	_ = original.WithInternal(errors.New("internal"))
	withField := original.WithField("status", "error")
	_ = withField.WithField("extra", 1)

	if original.Message != "Original message" {
		t.Error("WithMessage modified the original")
	}
	if original.Internal != nil {
		t.Error("WithInternal modified the original")
	}
	if original.Fields != nil {
		t.Error("WithField modified the original")
	}
	if _, ok := withField.Fields["extra"]; ok {
		t.Error("WithField modified the receiver's fields")
	}
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"app error", NewBadRequest("Invalid email format"), http.StatusBadRequest, "Invalid email format"},
		{"wrapped app error", fmt.Errorf("ctx: %w", ErrConflict), http.StatusConflict, "Resource already exists"},
		{"unknown error", errors.New("secret detail"), http.StatusInternalServerError, "Internal server error"},
		{"echo client error", echo.ErrNotFound, http.StatusNotFound, "Not Found"},
		{"echo server error", echo.NewHTTPError(http.StatusBadGateway, "upstream host"), http.StatusBadGateway, "Internal server error"},
		{"echo structured error", echo.NewHTTPError(http.StatusTooManyRequests, map[string]any{"error": "Too many requests"}), http.StatusTooManyRequests, "Too many requests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ToHTTPError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if body["error"] != tt.wantError {
				t.Errorf("error = %v, want %v", body["error"], tt.wantError)
			}
		})
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		err    *Error
		status int
	}{
		{ErrBadRequest, http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{ErrTooManyRequests, http.StatusTooManyRequests},
		{ErrInternal, http.StatusInternalServerError},
		{ErrDatabase, http.StatusInternalServerError},
		{ErrUpstream, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Code, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.status {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.status)
			}
		})
	}
}
