// internal/workers/market/analyze-market-gaps/queries/registry.go
package queries

import (
	"errors"
	"fmt"

	"location-strategy-workers/internal/models"
	"location-strategy-workers/internal/warehouse"
)

var (
	ErrUnknownMode       = errors.New("unknown analysis mode")
	ErrUnknownDialect    = errors.New("unknown sql dialect")
	ErrAmenityNotAllowed = errors.New("amenity not in allow-list")
)

// Request carries the bound values and the allow-listed column of one analysis.
type Request struct {
	City         string
	BusinessType string
	Amenity      models.Amenity
}

type BuildFunc func(d Dialect, table string, req Request) (warehouse.Statement, error)

var Registry = map[models.AnalysisMode]BuildFunc{
	models.AnalysisModeAmenityGap:        AmenityGap,
	models.AnalysisModeVulnerability:     Vulnerability,
	models.AnalysisModePriceDistribution: PriceDistribution,
}

func Build(d Dialect, table string, mode models.AnalysisMode, req Request) (warehouse.Statement, error) {
	fn, exists := Registry[mode]
	if !exists {
		return warehouse.Statement{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
	return fn(d, table, req)
}
