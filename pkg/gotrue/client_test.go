package gotrue_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrapegate/pkg/gotrue"
)

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestClient_SignUp(t *testing.T) {
	t.Parallel()

	t.Run("posts credentials to the signup endpoint", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/v1/signup", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("apikey"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "user@example.com", body["email"])
			assert.Equal(t, "secret", body["password"])

			writeJSON(t, w, http.StatusOK, map[string]string{"id": "u-1", "email": "user@example.com"})
		}))
		defer server.Close()

		client := gotrue.New(server.URL, "test-key")
		err := client.SignUp(context.Background(), "user@example.com", "secret")

		require.NoError(t, err)
	})

	t.Run("normalizes backend rejection into BackendError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnprocessableEntity, map[string]string{"msg": "User already registered"})
		}))
		defer server.Close()

		client := gotrue.New(server.URL, "test-key")
		err := client.SignUp(context.Background(), "user@example.com", "secret")

		var backendErr *gotrue.BackendError
		require.ErrorAs(t, err, &backendErr)
		assert.Equal(t, http.StatusUnprocessableEntity, backendErr.Status)
		assert.Equal(t, "User already registered", backendErr.Detail)
	})
}

func TestClient_SignInWithPassword(t *testing.T) {
	t.Parallel()

	t.Run("returns the session on success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

			writeJSON(t, w, http.StatusOK, map[string]any{
				"access_token":  "access-123",
				"refresh_token": "refresh-456",
				"user":          map[string]string{"id": "u-1", "email": "user@example.com"},
			})
		}))
		defer server.Close()

		client := gotrue.New(server.URL, "test-key")
		session, err := client.SignInWithPassword(context.Background(), "user@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, "access-123", session.AccessToken)
		assert.Equal(t, "refresh-456", session.RefreshToken)
		assert.Equal(t, "user@example.com", session.User.Email)
		assert.Equal(t, "u-1", session.User.ID)
	})

	t.Run("bad credentials become BackendError with the backend detail", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_grant",
				"error_description": "Invalid login credentials",
			})
		}))
		defer server.Close()

		client := gotrue.New(server.URL, "test-key")
		_, err := client.SignInWithPassword(context.Background(), "user@example.com", "wrong")

		var backendErr *gotrue.BackendError
		require.ErrorAs(t, err, &backendErr)
		assert.Equal(t, "Invalid login credentials", backendErr.Detail)
	})

	t.Run("success without an access token is ErrNoSession", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]any{
				"user": map[string]string{"id": "u-1", "email": "user@example.com"},
			})
		}))
		defer server.Close()

		client := gotrue.New(server.URL, "test-key")
		_, err := client.SignInWithPassword(context.Background(), "user@example.com", "secret")

		require.ErrorIs(t, err, gotrue.ErrNoSession)
	})

	t.Run("unreachable backend is BackendError", func(t *testing.T) {
		t.Parallel()

		client := gotrue.New("http://non-existent-host.invalid", "test-key")
		_, err := client.SignInWithPassword(context.Background(), "user@example.com", "secret")

		var backendErr *gotrue.BackendError
		require.ErrorAs(t, err, &backendErr)
	})
}

func TestClient_SignInWithIDToken(t *testing.T) {
	t.Parallel()

	t.Run("exchanges a provider token for a session", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/token", r.URL.Path)
			assert.Equal(t, "id_token", r.URL.Query().Get("grant_type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "google", body["provider"])
			assert.Equal(t, "google-id-token", body["id_token"])

			writeJSON(t, w, http.StatusOK, map[string]any{
				"access_token":  "access-123",
				"refresh_token": "refresh-456",
				"user":          map[string]string{"id": "u-1", "email": "user@example.com"},
			})
		}))
		defer server.Close()

		client := gotrue.New(server.URL, "test-key")
		session, err := client.SignInWithIDToken(context.Background(), "google", "google-id-token")

		require.NoError(t, err)
		assert.Equal(t, "access-123", session.AccessToken)
	})
}

func TestClient_RequestPasswordReset(t *testing.T) {
	t.Parallel()

	t.Run("posts the email to the recover endpoint", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/recover", r.URL.Path)
			writeJSON(t, w, http.StatusOK, map[string]string{})
		}))
		defer server.Close()

		client := gotrue.New(server.URL, "test-key")
		err := client.RequestPasswordReset(context.Background(), "user@example.com")

		require.NoError(t, err)
	})
}

func TestClient_User(t *testing.T) {
	t.Parallel()

	t.Run("verifies the access token, not the api key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			assert.Equal(t, "test-key", r.Header.Get("apikey"))

			writeJSON(t, w, http.StatusOK, map[string]string{"id": "u-1", "email": "user@example.com"})
		}))
		defer server.Close()

		client := gotrue.New(server.URL, "test-key")
		user, err := client.User(context.Background(), "user-token")

		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "user@example.com", user.Email)
	})

	t.Run("expired token becomes BackendError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, map[string]string{"msg": "JWT expired"})
		}))
		defer server.Close()

		client := gotrue.New(server.URL, "test-key")
		_, err := client.User(context.Background(), "stale-token")

		var backendErr *gotrue.BackendError
		require.ErrorAs(t, err, &backendErr)
		assert.Equal(t, http.StatusUnauthorized, backendErr.Status)
		assert.Equal(t, "JWT expired", backendErr.Detail)
	})

	t.Run("success without a user fails closed", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusOK, map[string]string{})
		}))
		defer server.Close()

		client := gotrue.New(server.URL, "test-key")
		_, err := client.User(context.Background(), "user-token")

		var backendErr *gotrue.BackendError
		require.ErrorAs(t, err, &backendErr)
	})
}
