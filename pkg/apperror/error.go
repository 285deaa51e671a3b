package apperror

import (
	"errors"
	"fmt"
	"maps"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error represents an application error with HTTP status and error code.
// Message is what the caller sees; Internal is logged and never rendered.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error

	// Fields are extra top-level keys rendered next to "error" (e.g. "status")
	Fields map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// Body returns the JSON response body for the error
func (e *Error) Body() map[string]any {
	body := make(map[string]any, len(e.Fields)+1)
	maps.Copy(body, e.Fields)
	body["error"] = e.Message
	return body
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	cp := *e
	cp.Internal = err
	return &cp
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	cp := *e
	cp.Message = message
	return &cp
}

// WithField returns a copy of the error with an extra envelope field
func (e *Error) WithField(key string, value any) *Error {
	cp := *e
	cp.Fields = make(map[string]any, len(e.Fields)+1)
	maps.Copy(cp.Fields, e.Fields)
	cp.Fields[key] = value
	return &cp
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

// Common error definitions
var (
	ErrBadRequest      = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrConflict        = New(http.StatusConflict, "conflict", "Resource already exists")
	ErrTooManyRequests = New(http.StatusTooManyRequests, "rate_limited", "Too many requests")

	ErrInternal = New(http.StatusInternalServerError, "internal_error", "Internal server error")
	ErrDatabase = New(http.StatusInternalServerError, "database_error", "Internal server error")
	ErrUpstream = New(http.StatusInternalServerError, "upstream_error", "Something went wrong")
)

// ToHTTPError converts an error to a status code and response body.
// Echo's own errors keep their status; a string message is shown only below 500.
// Unknown errors become a generic 500 without leaking their text.
func ToHTTPError(err error) (int, map[string]any) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, appErr.Body()
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch msg := he.Message.(type) {
		case map[string]any:
			if _, ok := msg["error"]; ok {
				return he.Code, msg
			}
		case string:
			if he.Code < http.StatusInternalServerError {
				return he.Code, map[string]any{"error": msg}
			}
		}
		return he.Code, ErrInternal.Body()
	}

	return ErrInternal.HTTPStatus, ErrInternal.Body()
}

// NewBadRequest creates a bad request error with a custom message
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewConflict creates a conflict error with a custom message
func NewConflict(message string) *Error {
	return ErrConflict.WithMessage(message)
}
