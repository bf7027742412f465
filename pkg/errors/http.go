package errors

import "net/http"

// HTTPError carries an HTTP status alongside a user-facing message.
// Delivery layers return these from their error mappers so the
// response writer can pick the right status code.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &HTTPError{Status: status, Message: message}
}
