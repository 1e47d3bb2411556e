// internal/workers/places/get-place-details/config.go
package getplacedetails

import (
	"time"

	"location-strategy-workers/internal/common/config"
)

type Config struct {
	// APIKey is the process-wide fallback when the session carries no key.
	APIKey  string
	Timeout time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{Timeout: 10 * time.Second}
	if cfg == nil {
		return c
	}
	c.APIKey = cfg.Maps.APIKey
	if cfg.Maps.Timeout > 0 {
		c.Timeout = cfg.Maps.Timeout
	}
	return c
}
