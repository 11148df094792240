package nextcloud

import (
	"errors"
	"fmt"
)

// ErrMissingConfig is returned before any network call when the client
// has no URL, username or password.
var ErrMissingConfig = errors.New("nextcloud configuration missing: url, username and password are required")

// RequestError is a structured failure from a Nextcloud request.
// It carries the HTTP status and response body so callers can display
// the server's answer verbatim.
type RequestError struct {
	Op         string // e.g. "ListFiles", "CreateNote"
	StatusCode int    // HTTP status code (0 if not an HTTP error)
	Message    string // human-readable message
	Path       string // optional: remote path or resource involved
	Body       string // optional: response body for debugging
	Err        error  // optional: underlying error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s failed with status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error is a 404 Not Found.
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized returns true for 401 Unauthorized or 403 Forbidden.
func (e *RequestError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsServerError returns true for 5xx responses.
func (e *RequestError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// NewRequestError creates a new RequestError.
func NewRequestError(op string, statusCode int, message string) *RequestError {
	return &RequestError{
		Op:         op,
		StatusCode: statusCode,
		Message:    message,
	}
}

// WithPath adds the remote path to the error for context.
func (e *RequestError) WithPath(path string) *RequestError {
	e.Path = path
	return e
}

// WithBody adds the response body to the error for debugging.
func (e *RequestError) WithBody(body string) *RequestError {
	e.Body = body
	return e
}

// WithError wraps an underlying error.
func (e *RequestError) WithError(err error) *RequestError {
	e.Err = err
	return e
}

// IsNotFound reports whether err is a RequestError with status 404.
func IsNotFound(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.IsNotFound()
}
