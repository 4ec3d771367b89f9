package core

import "net/http"

// HTTPError is an error that maps directly to an HTTP status code and a
// client-facing message.
type HTTPError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Message: "Bad request."}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Message: "Unauthorized."}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Message: "Not found."}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "Internal server error."}
)

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
