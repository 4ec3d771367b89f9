package gotrue

import "time"

// Config holds identity backend settings sourced from the environment.
type Config struct {
	BaseURL string        `env:"SUPABASE_URL,required"`            // BaseURL is the root of the Supabase project (without /auth/v1).
	APIKey  string        `env:"SUPABASE_ANON_KEY,required"`       // APIKey is the public (anon) API key.
	Timeout time.Duration `env:"SUPABASE_TIMEOUT" envDefault:"10s"` // Timeout bounds every backend call.
}

// NewFromConfig creates a new Client from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	configOpts := make([]Option, 0, 1)

	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}

	configOpts = append(configOpts, opts...)

	return New(cfg.BaseURL, cfg.APIKey, configOpts...)
}
