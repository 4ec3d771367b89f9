// Package cookie manages HTTP cookies with secure-by-default attributes.
//
// The Manager applies HttpOnly and SameSite=Lax unless overridden, so session
// credentials stored in cookies are shielded from client-side scripts and
// cross-site subrequests. Per-call options can override any default.
package cookie
