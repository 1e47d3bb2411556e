// internal/workers/market/analyze-market-gaps/config.go
package analyzemarketgaps

import (
	"time"

	"location-strategy-workers/internal/common/config"
)

type Config struct {
	TableID string
	// Timeout bounds a single warehouse query.
	Timeout time.Duration
	// JobTimeout bounds a whole job invocation, cache access included.
	JobTimeout time.Duration
	CacheTTL   time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	c := &Config{
		TableID:    config.DefaultTableID,
		Timeout:    30 * time.Second,
		JobTimeout: 60 * time.Second,
		CacheTTL:   15 * time.Minute,
	}
	if cfg == nil {
		return c
	}
	if cfg.Warehouse.TableID != "" {
		c.TableID = cfg.Warehouse.TableID
	}
	if cfg.Warehouse.Timeout > 0 {
		c.Timeout = cfg.Warehouse.Timeout
	}
	if ms := cfg.Worker(TaskType).Timeout; ms > 0 {
		c.JobTimeout = time.Duration(ms) * time.Millisecond
	}
	if cfg.Cache.TTL > 0 {
		c.CacheTTL = cfg.Cache.TTL
	}
	return c
}
