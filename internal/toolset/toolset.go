// internal/toolset/toolset.go
package toolset

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"location-strategy-workers/internal/common/camunda"
	"location-strategy-workers/internal/common/config"
	"location-strategy-workers/internal/common/database"
	httpclient "location-strategy-workers/internal/common/http"
	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/places"
	"location-strategy-workers/internal/warehouse"
	analyzemarketgaps "location-strategy-workers/internal/workers/market/analyze-market-gaps"
	competitorweaknesses "location-strategy-workers/internal/workers/market/competitor-weaknesses"
	pricesegmentation "location-strategy-workers/internal/workers/market/price-segmentation"
	getplacedetails "location-strategy-workers/internal/workers/places/get-place-details"
)

// Toolset holds the four tool handlers and the clients they share.
type Toolset struct {
	PlaceDetails         *getplacedetails.Handler
	MarketGaps           *analyzemarketgaps.Handler
	PriceSegmentation    *pricesegmentation.Handler
	CompetitorWeaknesses *competitorweaknesses.Handler

	Warehouse warehouse.Warehouse
	Cache     *redis.Client

	closers []func() error
}

// Build connects the configured warehouse (and the cache, when enabled) and wires every
// tool handler. Callers must Close the toolset.
func Build(ctx context.Context, cfg *config.Config, log logger.Logger) (*Toolset, error) {
	ts := &Toolset{}

	wh, err := ts.openWarehouse(ctx, cfg)
	if err != nil {
		ts.Close()
		return nil, err
	}
	ts.Warehouse = wh
	log.Info("warehouse connected", map[string]interface{}{
		"backend": cfg.Warehouse.Backend,
		"tableId": cfg.Warehouse.TableID,
	})

	if cfg.Cache.Enabled {
		cache, err := database.NewRedis(ctx, cfg.Database.Redis)
		if err != nil {
			ts.Close()
			return nil, err
		}
		if cache != nil {
			ts.Cache = cache
			ts.closers = append(ts.closers, cache.Close)
			log.Info("market analysis cache enabled", map[string]interface{}{"ttl": cfg.Cache.TTL.String()})
		}
	}

	ts.wire(cfg, log)
	return ts, nil
}

// New wires the handlers over an already connected warehouse and optional cache.
func New(cfg *config.Config, wh warehouse.Warehouse, cache *redis.Client, log logger.Logger) *Toolset {
	ts := &Toolset{Warehouse: wh, Cache: cache}
	ts.wire(cfg, log)
	return ts
}

func (ts *Toolset) wire(cfg *config.Config, log logger.Logger) {
	mapsCfg := getplacedetails.LoadConfig(cfg)
	placesClient := places.NewHTTPClient(cfg.Maps.BaseURL, httpclient.NewClient(mapsCfg.Timeout, nil))

	ts.PlaceDetails = getplacedetails.NewHandler(mapsCfg, placesClient, log)
	ts.MarketGaps = analyzemarketgaps.NewHandler(analyzemarketgaps.LoadConfig(cfg), ts.Warehouse, ts.Cache, log)
	ts.PriceSegmentation = pricesegmentation.NewHandler(pricesegmentation.LoadConfig(cfg), ts.MarketGaps, log)
	ts.CompetitorWeaknesses = competitorweaknesses.NewHandler(competitorweaknesses.LoadConfig(cfg), ts.MarketGaps, log)
}

func (ts *Toolset) openWarehouse(ctx context.Context, cfg *config.Config) (warehouse.Warehouse, error) {
	switch cfg.Warehouse.Backend {
	case config.BackendBigQuery:
		client, err := database.NewBigQuery(ctx, cfg.Warehouse)
		if err != nil {
			return nil, err
		}
		ts.closers = append(ts.closers, client.Close)
		return warehouse.NewBigQuery(client, cfg.Warehouse.Location), nil
	case config.BackendPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database.Postgres)
		if err != nil {
			return nil, err
		}
		ts.closers = append(ts.closers, db.Close)
		return warehouse.NewSQL(db, warehouse.DialectPostgres), nil
	default:
		return nil, fmt.Errorf("unsupported warehouse backend %q", cfg.Warehouse.Backend)
	}
}

// Workers maps each task type to the handler serving it.
func (ts *Toolset) Workers() map[string]camunda.JobHandler {
	return map[string]camunda.JobHandler{
		getplacedetails.TaskType:      ts.PlaceDetails,
		analyzemarketgaps.TaskType:    ts.MarketGaps,
		pricesegmentation.TaskType:    ts.PriceSegmentation,
		competitorweaknesses.TaskType: ts.CompetitorWeaknesses,
	}
}

// Ping checks the backing stores, for readiness probes.
func (ts *Toolset) Ping(ctx context.Context) error {
	if p, ok := ts.Warehouse.(interface{ Ping(context.Context) error }); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("warehouse: %w", err)
		}
	}
	if ts.Cache != nil {
		if err := ts.Cache.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("cache: %w", err)
		}
	}
	return nil
}

func (ts *Toolset) Close() {
	for i := len(ts.closers) - 1; i >= 0; i-- {
		_ = ts.closers[i]()
	}
	ts.closers = nil
}

