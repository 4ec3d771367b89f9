// Package auth implements the account-facing operations of the gateway and
// the access-token gate (bearer header or session cookie) protecting
// authenticated routes.
//
// Credential management itself is delegated to an external identity backend
// behind the IdentityProvider interface; this module only interprets the
// backend's outcomes and turns successful sign-ins into HttpOnly session
// cookies. Credentials pass through and are never persisted.
package auth
