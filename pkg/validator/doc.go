// Package validator provides rule-based validation for request payloads.
//
// Rules are composed per request and executed with Apply, which returns a
// ValidationErrors value listing every failed field. Validation runs before
// any network call so malformed requests never reach external services.
package validator
