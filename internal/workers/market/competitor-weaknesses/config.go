// internal/workers/market/competitor-weaknesses/config.go
package competitorweaknesses

import (
	"time"

	"location-strategy-workers/internal/common/config"
)

type Config struct {
	Timeout time.Duration
	// SaturationThreshold is the exclusive upper bound for reporting an amenity gap.
	SaturationThreshold float64
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{
		Timeout:             60 * time.Second,
		SaturationThreshold: 30,
	}
	if cfg == nil {
		return c
	}
	if ms := cfg.Worker(TaskType).Timeout; ms > 0 {
		c.Timeout = time.Duration(ms) * time.Millisecond
	}
	return c
}
