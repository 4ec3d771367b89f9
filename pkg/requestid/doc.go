// Package requestid provides HTTP middleware and helpers for request
// correlation identifiers.
//
// The middleware attaches an ID to every inbound request (reusing a valid
// client-supplied X-Request-ID or generating a UUIDv4), stores it in the
// request context, and echoes it back in the response header. LoggerExtractor
// integrates with the logger package so the ID appears in every log record
// emitted while handling the request.
package requestid
