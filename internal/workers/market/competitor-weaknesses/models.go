// internal/workers/market/competitor-weaknesses/models.go
package competitorweaknesses

import (
	"context"

	analyzemarketgaps "location-strategy-workers/internal/workers/market/analyze-market-gaps"
)

type MarketAnalyzer interface {
	Execute(ctx context.Context, input *analyzemarketgaps.Input) (*analyzemarketgaps.Output, error)
}

type Input struct {
	City         string `json:"city"`
	BusinessType string `json:"business_type"`
	CheckAmenity string `json:"check_amenity,omitempty"`
}

type Output struct {
	Insights CompetitorWeaknessReport `json:"insights"`
}

type CompetitorWeaknessReport struct {
	VulnerableAreas []VulnerableArea `json:"vulnerable_areas"`
	AmenityGaps     []AmenityGap     `json:"amenity_gaps"`
}

type VulnerableArea struct {
	ZipCode string `json:"zip_code"`
	Reason  string `json:"reason"`
	Stats   string `json:"stats"`
}

type AmenityGap struct {
	ZipCode     string `json:"zip_code"`
	Opportunity string `json:"opportunity"`
	Details     string `json:"details"`
}
