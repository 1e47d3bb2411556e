package toolset

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"location-strategy-workers/internal/common/config"
	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/warehouse"
	pricesegmentation "location-strategy-workers/internal/workers/market/price-segmentation"
)

func newSQLToolset(t *testing.T, cache *redis.Client) (*Toolset, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		Warehouse: config.WarehouseConfig{Backend: config.BackendPostgres, TableID: "public.places"},
		Maps:      config.MapsConfig{BaseURL: config.DefaultMapsBaseURL},
	}
	return New(cfg, warehouse.NewSQL(db, warehouse.DialectPostgres), cache, logger.NewTestLogger(t)), mock
}

func TestToolset_Workers(t *testing.T) {
	ts, _ := newSQLToolset(t, nil)

	workers := ts.Workers()
	assert.Len(t, workers, 4)
	for _, name := range []string{
		"get-place-details",
		"analyze-market-gaps",
		"get-price-segmentation",
		"find-competitor-weaknesses",
	} {
		assert.Contains(t, workers, name)
		assert.NotNil(t, workers[name])
	}
}

func TestToolset_PriceSegmentationRunsThroughWarehouse(t *testing.T) {
	ts, mock := newSQLToolset(t, nil)

	mock.ExpectQuery(`FROM "public"\."places"`).
		WithArgs("Chicago", "coffee_shop").
		WillReturnRows(sqlmock.NewRows([]string{"postal_code", "budget_count", "moderate_count", "luxury_count"}).
			AddRow("60601", int64(5), int64(2), int64(1)))

	result := ts.PriceSegmentation.Invoke(context.Background(), &pricesegmentation.Input{
		City:         "Chicago",
		BusinessType: "coffee_shop",
	})
	require.True(t, result.OK(), result.ErrorMessage)
	assert.Equal(t, []pricesegmentation.MarketSegmentSummary{{
		ZipCode:       "60601",
		MarketSegment: pricesegmentation.SegmentBudgetDominant,
		Details:       "Lux:1, Mod:2, Bud:5",
	}}, result.Data.Summary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolset_Ping(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	ts, mock := newSQLToolset(t, cache)
	mock.ExpectPing()
	require.NoError(t, ts.Ping(context.Background()))

	mr.Close()
	mock.ExpectPing()
	err := ts.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache")
}

func TestDeclarations(t *testing.T) {
	reg := Declarations(&config.Config{})
	require.NoError(t, reg.Validate())
	require.Len(t, reg.Tools, 4)

	tool, ok := reg.Find("analyze_market_gaps")
	require.True(t, ok)
	assert.Equal(t, "analyze-market-gaps", tool.TaskType)
	assert.Equal(t, "1m0s", tool.Timeout)
	assert.Contains(t, tool.Parameters.Properties, "target_amenity")
	assert.Equal(t, []string{"city", "business_type", "analysis_mode"}, tool.Parameters.Required)

	tool, ok = reg.Find("find_competitor_weaknesses")
	require.True(t, ok)
	assert.Equal(t, []string{"VALIDATION_ERROR"}, tool.ErrorCodes)
}
