package auth

import (
	"errors"
	"net/http"

	"scrapegate/pkg/cookie"
	"scrapegate/pkg/gotrue"
)

// Cookie names carrying the session token pair.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// ErrEmptySession is returned when a caller attempts to issue a session
// without an access token. It should never happen in practice because the
// backend adapter refuses to return such sessions.
var ErrEmptySession = errors.New("auth.empty_session")

// SessionIssuer serializes a backend session into its transport
// representation: two HttpOnly, SameSite=Lax, session-lifetime cookies.
// Keeping the tokens out of the response body stops client-side scripts from
// reading them; the API must be same-origin or explicitly CORS-configured,
// and that trade-off is intentional.
type SessionIssuer struct {
	cookies *cookie.Manager
}

// NewSessionIssuer creates a SessionIssuer writing through the given manager.
func NewSessionIssuer(cookies *cookie.Manager) *SessionIssuer {
	return &SessionIssuer{cookies: cookies}
}

// Issue writes the session cookies. A session without an access token is
// never issued, not even partially.
func (s *SessionIssuer) Issue(w http.ResponseWriter, session gotrue.Session) error {
	if session.AccessToken == "" {
		return ErrEmptySession
	}

	s.cookies.Set(w, AccessTokenCookie, session.AccessToken)
	s.cookies.Set(w, RefreshTokenCookie, session.RefreshToken)
	return nil
}

// Token reads the access token from the request's session cookie. The second
// return reports whether a non-empty token was present.
func (s *SessionIssuer) Token(r *http.Request) (string, bool) {
	token, err := s.cookies.Get(r, AccessTokenCookie)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// Clear expires both session cookies.
func (s *SessionIssuer) Clear(w http.ResponseWriter) {
	s.cookies.Delete(w, AccessTokenCookie)
	s.cookies.Delete(w, RefreshTokenCookie)
}
