// Package logger builds configured slog.Logger instances.
//
// It supports JSON and text output formats, level selection from the
// environment, static attributes, and context extractors that inject
// request-scoped attributes (such as request IDs) into every record.
package logger
