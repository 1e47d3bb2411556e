// internal/workers/market/price-segmentation/config.go
package pricesegmentation

import (
	"time"

	"location-strategy-workers/internal/common/config"
)

type Config struct {
	// Timeout bounds a job invocation, including the delegated warehouse analysis.
	Timeout time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{Timeout: 60 * time.Second}
	if cfg == nil {
		return c
	}
	if ms := cfg.Worker(TaskType).Timeout; ms > 0 {
		c.Timeout = time.Duration(ms) * time.Millisecond
	}
	return c
}
