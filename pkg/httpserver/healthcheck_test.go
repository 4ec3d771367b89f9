package httpserver_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"scrapegate/pkg/httpserver"
)

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	t.Run("liveness without dependencies", func(t *testing.T) {
		t.Parallel()

		h := httpserver.HealthCheckHandler(t.Context(), log)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("readiness when all dependencies succeed", func(t *testing.T) {
		t.Parallel()

		h := httpserver.HealthCheckHandler(t.Context(), log,
			func(context.Context) error { return nil },
			func(context.Context) error { return nil },
		)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("readiness when a dependency fails", func(t *testing.T) {
		t.Parallel()

		h := httpserver.HealthCheckHandler(t.Context(), log,
			func(context.Context) error { return errors.New("backend unreachable") },
		)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}
