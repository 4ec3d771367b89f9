// Package fetcher retrieves single pages from caller-supplied URLs.
//
// It performs exactly one bounded-time GET per call with a browser
// identification header. Every failure mode is normalized to TransportError
// so callers map all of them to the same client-error response category.
package fetcher
