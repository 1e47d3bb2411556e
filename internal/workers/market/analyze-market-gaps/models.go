// internal/workers/market/analyze-market-gaps/models.go
package analyzemarketgaps

import (
	"location-strategy-workers/internal/models"
)

type Input struct {
	City          string `json:"city"`
	BusinessType  string `json:"business_type"`
	AnalysisMode  string `json:"analysis_mode"`
	TargetAmenity string `json:"target_amenity,omitempty"`
}

type Output struct {
	AnalysisMode models.AnalysisMode `json:"analysis_mode"`
	City         string              `json:"city"`
	Results      []MarketGapRow      `json:"results"`
}

// MarketGapRow is one postal code of an analysis. The concrete type depends on the mode.
type MarketGapRow interface {
	ZipCode() string
}

type AmenityGapRow struct {
	PostalCode           string   `json:"postal_code"`
	TotalCompetitors     int64    `json:"total_competitors"`
	HasAmenity           int64    `json:"has_amenity"`
	LacksAmenity         int64    `json:"lacks_amenity"`
	SaturationPercentage *float64 `json:"saturation_percentage"`
}

func (r AmenityGapRow) ZipCode() string { return r.PostalCode }

type VulnerabilityRow struct {
	PostalCode         string   `json:"postal_code"`
	CompetitorCount    int64    `json:"competitor_count"`
	AvgRating          float64  `json:"avg_rating"`
	TotalReviewVolume  int64    `json:"total_review_volume"`
	VulnerabilityIndex *float64 `json:"vulnerability_index"` // null when avg rating is 0
}

func (r VulnerabilityRow) ZipCode() string { return r.PostalCode }

type PriceDistributionRow struct {
	PostalCode    string `json:"postal_code"`
	BudgetCount   int64  `json:"budget_count"`
	ModerateCount int64  `json:"moderate_count"`
	LuxuryCount   int64  `json:"luxury_count"`
}

func (r PriceDistributionRow) ZipCode() string { return r.PostalCode }

func (o *Output) AmenityGaps() []AmenityGapRow {
	return rowsOf[AmenityGapRow](o.Results)
}

func (o *Output) Vulnerabilities() []VulnerabilityRow {
	return rowsOf[VulnerabilityRow](o.Results)
}

func (o *Output) PriceDistribution() []PriceDistributionRow {
	return rowsOf[PriceDistributionRow](o.Results)
}

func rowsOf[T MarketGapRow](rows []MarketGapRow) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if t, ok := r.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func asRows[T MarketGapRow](in []T) []MarketGapRow {
	out := make([]MarketGapRow, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}
