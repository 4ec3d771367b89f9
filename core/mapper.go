package core

import (
	"errors"
	"log/slog"
	"net/http"

	"scrapegate/pkg/extractor"
	"scrapegate/pkg/fetcher"
	"scrapegate/pkg/gotrue"
	"scrapegate/pkg/logger"
	"scrapegate/pkg/validator"
)

// Error maps err to its (status, message) pair and writes the JSON response.
// Every failure a handler can see is classified here; anything unrecognized
// is the one category reported as a server fault, logged with its cause and
// returned as an opaque 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "unhandled error", logger.Error(err))
	}
	JSON(w, status, JSONResponse{Message: message})
}

func classify(err error) (int, string) {
	var (
		httpErr        HTTPError
		validationErrs validator.ValidationErrors
		backendErr     *gotrue.BackendError
		transportErr   *fetcher.TransportError
		selectorErr    *extractor.SelectorError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, httpErr.Message
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, validationErrs.Error()
	case errors.Is(err, gotrue.ErrNoSession):
		// Fail closed: a session-less success from the backend is an
		// authentication failure wherever it surfaces.
		return http.StatusUnauthorized, "Invalid credentials."
	case errors.As(err, &backendErr):
		return http.StatusBadRequest, backendErr.Detail
	case errors.As(err, &transportErr):
		return http.StatusBadRequest, "Request failed: " + transportErr.Detail
	case errors.As(err, &selectorErr):
		return http.StatusBadRequest, "Invalid selector: " + selectorErr.Detail
	case errors.Is(err, extractor.ErrNoMatch):
		return http.StatusNotFound, "No elements found for the given selector."
	default:
		return http.StatusInternalServerError, ErrInternalServerError.Message
	}
}
