package core

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// Recoverer converts handler panics into 500 responses instead of dropped
// connections. It is the last line of the error taxonomy: a panic is an
// unexpected fault by definition and must never be silently swallowed.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
				JSON(w, http.StatusInternalServerError, JSONResponse{Message: ErrInternalServerError.Message})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
