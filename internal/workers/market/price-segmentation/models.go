// internal/workers/market/price-segmentation/models.go
package pricesegmentation

import (
	"context"

	analyzemarketgaps "location-strategy-workers/internal/workers/market/analyze-market-gaps"
)

// MarketAnalyzer is the market gap analysis the formatter delegates to.
type MarketAnalyzer interface {
	Execute(ctx context.Context, input *analyzemarketgaps.Input) (*analyzemarketgaps.Output, error)
}

type Input struct {
	City         string `json:"city"`
	BusinessType string `json:"business_type"`
}

type Output struct {
	Summary []MarketSegmentSummary `json:"summary"`
}

type Segment string

const (
	SegmentLuxuryDominant Segment = "Luxury Dominant"
	SegmentBudgetDominant Segment = "Budget Dominant"
	SegmentMixed          Segment = "Mixed/Competitive"
)

type MarketSegmentSummary struct {
	ZipCode       string  `json:"zip_code"`
	MarketSegment Segment `json:"market_segment"`
	Details       string  `json:"details"`
}
