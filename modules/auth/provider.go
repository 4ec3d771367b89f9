package auth

import (
	"context"

	"scrapegate/pkg/gotrue"
)

// IdentityProvider is the capability set this module needs from the external
// identity backend. Any provider implementing it is substitutable, which is
// what makes the handlers testable without a live backend.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) error
	SignInWithPassword(ctx context.Context, email, password string) (gotrue.Session, error)
	SignInWithIDToken(ctx context.Context, provider, idToken string) (gotrue.Session, error)
	RequestPasswordReset(ctx context.Context, email string) error
	User(ctx context.Context, accessToken string) (gotrue.User, error)
}
