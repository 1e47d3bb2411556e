package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"location-strategy-workers/internal/common/config"
	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/toolset"
	"location-strategy-workers/internal/warehouse"
	"location-strategy-workers/pkg/registry"
)

type stubWarehouse struct {
	rows []warehouse.Row
	err  error
}

func (s *stubWarehouse) Dialect() string { return warehouse.DialectBigQuery }

func (s *stubWarehouse) Query(context.Context, warehouse.Statement) ([]warehouse.Row, error) {
	return s.rows, s.err
}

func newTestApp(t *testing.T, cfg *config.Config, wh warehouse.Warehouse) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	app := NewApp()
	app.stdout = out
	app.stderr = &bytes.Buffer{}
	app.root.SetOut(out)
	app.loadConfig = func() (*config.Config, error) { return cfg, nil }
	app.connect = func(_ context.Context, cfg *config.Config, _ logger.Logger) (*toolset.Toolset, error) {
		return toolset.New(cfg, wh, nil, logger.NewTestLogger(t)), nil
	}
	return app, out
}

func testConfig() *config.Config {
	return &config.Config{
		Warehouse: config.WarehouseConfig{Backend: config.BackendBigQuery, TableID: config.DefaultTableID},
		Maps:      config.MapsConfig{BaseURL: config.DefaultMapsBaseURL},
	}
}

func TestPriceSegmentationCommand(t *testing.T) {
	wh := &stubWarehouse{rows: []warehouse.Row{
		{"postal_code": "60601", "budget_count": int64(5), "moderate_count": int64(2), "luxury_count": int64(1)},
	}}
	app, out := newTestApp(t, testConfig(), wh)
	app.root.SetArgs([]string{"price-segmentation", "--city", "Chicago", "--type", "coffee_shop"})

	require.NoError(t, app.Execute())
	assert.JSONEq(t, `{
		"status": "success",
		"data": {"summary": [{"zip_code": "60601", "market_segment": "Budget Dominant", "details": "Lux:1, Mod:2, Bud:5"}]}
	}`, out.String())
}

func TestMarketGapsCommand_ErrorResult(t *testing.T) {
	app, out := newTestApp(t, testConfig(), &stubWarehouse{})
	app.root.SetArgs([]string{"market-gaps", "--city", "Chicago", "--type", "coffee_shop", "--mode", "AMENITY_GAP", "--amenity", "valet"})

	err := app.Execute()
	assert.True(t, errors.Is(err, errToolFailed))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "error", result["status"])
	assert.Equal(t, "VALIDATION_ERROR", result["error_code"])
}

func TestCompetitorWeaknessesCommand_UpstreamDown(t *testing.T) {
	app, out := newTestApp(t, testConfig(), &stubWarehouse{err: errors.New("connection refused")})
	app.root.SetArgs([]string{"competitor-weaknesses", "--city", "Austin", "--type", "gym", "--amenity", "delivery"})

	require.NoError(t, app.Execute())
	assert.JSONEq(t, `{"status":"success","data":{"insights":{"vulnerable_areas":[],"amenity_gaps":[]}}}`, out.String())
}

func TestPlaceDetailsCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cli-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","result":{"name":"Blue Bottle","formatted_address":"1 Main St"}}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Maps.BaseURL = server.URL
	app, out := newTestApp(t, cfg, nil)
	app.root.SetArgs([]string{"place-details", "ChIJ123", "--maps-api-key", "cli-key"})

	require.NoError(t, app.Execute())

	var result struct {
		Status string `json:"status"`
		Data   struct {
			Name    string `json:"name"`
			Contact struct {
				Phone string `json:"phone"`
			} `json:"contact"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "Blue Bottle", result.Data.Name)
	assert.Equal(t, "N/A", result.Data.Contact.Phone)
}

func TestSchemasCommand(t *testing.T) {
	app, out := newTestApp(t, testConfig(), nil)
	app.root.SetArgs([]string{"schemas"})
	require.NoError(t, app.Execute())

	var reg registry.ToolRegistry
	require.NoError(t, json.Unmarshal(out.Bytes(), &reg))
	assert.Len(t, reg.Tools, 4)

	path := filepath.Join(t.TempDir(), "tool-registry.json")
	app, out = newTestApp(t, testConfig(), nil)
	app.root.SetArgs([]string{"schemas", "-o", path})
	require.NoError(t, app.Execute())
	assert.Contains(t, out.String(), path)

	loaded, err := registry.LoadRegistry(path)
	require.NoError(t, err)
	require.NoError(t, loaded.Validate())
}
