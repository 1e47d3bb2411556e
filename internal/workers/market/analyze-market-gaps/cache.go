package analyzemarketgaps

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"location-strategy-workers/internal/common/metrics"
	"location-strategy-workers/internal/models"
)

const cacheKeyPrefix = "market:"

// cacheKey identifies one query. The fields are hashed as a JSON array so no
// combination of separators inside city or type can collide with another query.
func cacheKey(tableID, dialect string, mode models.AnalysisMode, amenity models.Amenity, city, businessType string) string {
	fields, _ := json.Marshal([]string{tableID, dialect, string(mode), string(amenity), city, businessType})
	sum := sha256.Sum256(fields)
	return cacheKeyPrefix + string(mode) + ":" + hex.EncodeToString(sum[:])
}

// readCache returns cached rows for key. Any cache problem is a miss.
func (h *Handler) readCache(ctx context.Context, key string, mode models.AnalysisMode) ([]MarketGapRow, bool) {
	if h.cache == nil {
		return nil, false
	}

	data, err := h.cache.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.MarketCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		metrics.MarketCacheLookups.WithLabelValues("error").Inc()
		h.logger.Warn("cache read failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
		return nil, false
	}

	rows, err := unmarshalRows(mode, data)
	if err != nil {
		metrics.MarketCacheLookups.WithLabelValues("error").Inc()
		h.logger.Warn("cached rows unreadable", map[string]interface{}{
			"key":   key,
			"error": err,
		})
		return nil, false
	}

	metrics.MarketCacheLookups.WithLabelValues("hit").Inc()
	return rows, true
}

func (h *Handler) writeCache(ctx context.Context, key string, rows []MarketGapRow) {
	if h.cache == nil {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		h.logger.Warn("failed to encode rows for cache", map[string]interface{}{"error": err})
		return
	}
	if err := h.cache.Set(ctx, key, data, h.config.CacheTTL).Err(); err != nil {
		h.logger.Warn("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
}
