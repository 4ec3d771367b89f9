package gotrue

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ErrNoSession is returned when the backend reports success without issuing
// an access token. Callers treat it as authentication failure.
var ErrNoSession = errors.New("gotrue.no_session")

// BackendError is the single normalized failure shape for identity backend
// calls. Detail carries the backend's human-readable message; no raw response
// structure escapes this package.
type BackendError struct {
	Status int
	Detail string
}

func (e *BackendError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("identity backend: %s", e.Detail)
	}
	return fmt.Sprintf("identity backend (%d): %s", e.Status, e.Detail)
}

// apiError covers the error body variants GoTrue deployments produce.
type apiError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorCode        string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e *apiError) detail() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.ErrorCode} {
		if s != "" {
			return s
		}
	}
	return ""
}

func newBackendError(resp *resty.Response) *BackendError {
	detail := ""
	if apiErr, ok := resp.Error().(*apiError); ok && apiErr != nil {
		detail = apiErr.detail()
	}
	if detail == "" {
		detail = fmt.Sprintf("unexpected status %s", resp.Status())
	}
	return &BackendError{Status: resp.StatusCode(), Detail: detail}
}
