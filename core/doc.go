// Package core holds the HTTP response plumbing shared by all modules: the
// JSON response envelope, request body decoding, the deterministic mapping
// from domain errors to (status, message) pairs, and panic recovery.
package core
