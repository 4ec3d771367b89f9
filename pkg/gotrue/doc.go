// Package gotrue is a client for GoTrue-compatible identity services such as
// the Supabase auth API.
//
// It exposes exactly the capability set this service delegates to the
// external backend: sign-up, password sign-in, password-reset request,
// third-party ID token sign-in, and access token verification. Every failure
// is normalized to BackendError so callers never inspect raw response shapes.
package gotrue
