package auth

import (
	"net/http"
	"strings"

	"scrapegate/core"
)

const bearerPrefix = "Bearer "

// Middleware resolves an access token to an authenticated identity. The token
// comes from the Authorization header when present, otherwise from the session
// cookie issued at login.
//
// No credential at all means the request continues unauthenticated and the
// route decides whether it needs an identity. A token that is present but
// rejected by the backend is terminal - the request fails with 401 and is not
// retried.
func Middleware(provider IdentityProvider, sessions *SessionIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				token, ok = sessions.Token(r)
			}
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := provider.User(r.Context(), token)
			if err != nil {
				core.Error(w, r, core.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token."))
				return
			}

			ctx := WithIdentity(r.Context(), Identity{Email: user.Email, SubjectID: user.ID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimPrefix(header, bearerPrefix)
	return token, token != ""
}

// RequireAuth rejects requests that reached the handler without an
// authenticated identity in context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			core.Error(w, r, core.NewHTTPError(http.StatusUnauthorized, "Authentication required."))
			return
		}
		next.ServeHTTP(w, r)
	})
}
