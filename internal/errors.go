package internal

import (
	"errors"
	"log/slog"
	"net/http"
)

// HTTPError represents an HTTP error with all data needed for rendering.
// Handlers return it to choose the status code and user-facing message.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to users).
	Err error

	// Message is the user-facing error message.
	Message string

	// Code is the HTTP status code (e.g., 404, 500).
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// WithError attaches the underlying cause, which is logged but never rendered.
func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

// Convenience constructors for common HTTP errors.

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, opts)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, opts)
}

func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, message, opts)
}

func ErrUnsupportedMediaType(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusUnsupportedMediaType, message, opts)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, message, opts)
}

func newHTTPError(code int, message string, opts []HTTPErrorOption) *HTTPError {
	e := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Helper functions for error inspection.

// IsHTTPError reports whether err or any error it wraps is an *HTTPError.
func IsHTTPError(err error) bool {
	return AsHTTPError(err) != nil
}

// AsHTTPError extracts the HTTPError from an error chain if present.
// Returns nil if the chain holds no HTTPError.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

// InternalErrorMessage is the body message for failures that are not HTTPErrors.
const InternalErrorMessage = "Internal server error"

// ErrorResponse is the JSON body written by JSONErrorHandler.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONErrorHandler renders handler errors as {"error": "..."}.
// An *HTTPError anywhere in the chain supplies the status and message;
// anything else is logged and answered with 500 and InternalErrorMessage,
// so internal details never reach the client.
func JSONErrorHandler(c Context, err error) error {
	if httpErr := AsHTTPError(err); httpErr != nil {
		if httpErr.Code >= http.StatusInternalServerError {
			c.LogError("request failed",
				slog.Int("status", httpErr.Code),
				slog.Any("error", errorOrSelf(httpErr)),
			)
		}
		return c.JSON(httpErr.Code, ErrorResponse{Error: httpErr.Message})
	}

	c.LogError("request failed",
		slog.Int("status", http.StatusInternalServerError),
		slog.String("error", err.Error()),
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: InternalErrorMessage})
}

// errorOrSelf returns the wrapped cause of an HTTPError for logging.
func errorOrSelf(e *HTTPError) error {
	if e.Err != nil {
		return e.Err
	}
	return e
}
