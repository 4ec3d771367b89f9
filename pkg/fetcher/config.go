package fetcher

import "time"

// Config holds fetch client settings sourced from the environment.
type Config struct {
	Timeout   time.Duration `env:"FETCH_TIMEOUT" envDefault:"10s"`  // Timeout bounds a single outbound retrieval.
	UserAgent string        `env:"FETCH_USER_AGENT" envDefault:""`  // UserAgent overrides the default browser identification header.
}

// NewFromConfig creates a new Client from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	configOpts := make([]Option, 0, 2)

	if cfg.Timeout > 0 {
		configOpts = append(configOpts, WithTimeout(cfg.Timeout))
	}
	if cfg.UserAgent != "" {
		configOpts = append(configOpts, WithUserAgent(cfg.UserAgent))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
