package svgl

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates catalog failures in serialized envelopes.
const ErrorKind = "SVGLAPIError"

const unknownErrorMessage = "Unknown error"

// APIError is a classified catalog failure.
//
// StatusCode is set only when the upstream answered with a failing HTTP
// status; it is nil when the request could not complete or the body could
// not be decoded. Endpoint is the path requested relative to the base URL and
// may be empty for the bare listing.
type APIError struct {
	Message    string
	StatusCode *int
	Endpoint   string

	cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the transport or decode cause, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// Kind returns the fixed discriminator shared by all catalog failures.
func (e *APIError) Kind() string {
	return ErrorKind
}

// IsStatus reports whether the upstream responded with a failing status.
func (e *APIError) IsStatus() bool {
	return e != nil && e.StatusCode != nil
}

// AsAPIError reports whether err is, or wraps, a classified catalog failure.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr, true
	}
	return nil, false
}

func newStatusError(status int, reason, endpoint string) *APIError {
	code := status
	return &APIError{
		Message:    fmt.Sprintf("HTTP %d: %s", status, reason),
		StatusCode: &code,
		Endpoint:   endpoint,
	}
}

// classify turns any failure on the request path into an *APIError. An error
// that is already classified is returned as-is.
func classify(err error, endpoint string) *APIError {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr
	}
	detail := unknownErrorMessage
	if err != nil && err.Error() != "" {
		detail = err.Error()
	}
	return &APIError{
		Message:  "Failed to fetch from SVGL API: " + detail,
		Endpoint: endpoint,
		cause:    err,
	}
}
