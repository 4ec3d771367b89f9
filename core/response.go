package core

import (
	"encoding/json"
	"io"
	"net/http"
)

// maxBodyBytes caps inbound request bodies. The largest legitimate payload is
// a URL plus a selector; anything near the cap is abuse.
const maxBodyBytes = 1 << 20

// JSONResponse is the standard response envelope.
type JSONResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes body as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, body JSONResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// DecodeJSON reads the request body into dst. Malformed or oversized bodies
// yield a bad-request HTTPError; an empty body is decoded as the zero value
// so field-level validation produces the useful message.
func DecodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes)).Decode(dst)
	if err != nil && err != io.EOF {
		return NewHTTPError(http.StatusBadRequest, "Invalid request body.")
	}
	return nil
}
