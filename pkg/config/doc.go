// Package config loads application configuration from environment variables
// into tagged structs.
//
// It combines godotenv (optional .env file for local development) with
// caarlos0/env struct parsing. Each package that needs configuration defines
// its own Config struct with `env`/`envDefault` tags and, typically, a
// NewFromConfig constructor; the process entry point aggregates those structs
// and loads them in one call.
//
// Usage:
//
//	var cfg struct {
//		Server  httpserver.Config
//		Fetcher fetcher.Config
//	}
//	config.MustLoad(&cfg)
package config
