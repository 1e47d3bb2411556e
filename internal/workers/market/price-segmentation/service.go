package pricesegmentation

import (
	"fmt"

	analyzemarketgaps "location-strategy-workers/internal/workers/market/analyze-market-gaps"
)

// Classify labels a postal code by its dominant price tier. A tier dominates only when
// it outnumbers the other two combined; anything else, ties included, is mixed.
func Classify(luxury, moderate, budget int64) Segment {
	switch {
	case luxury > budget+moderate:
		return SegmentLuxuryDominant
	case budget > luxury+moderate:
		return SegmentBudgetDominant
	default:
		return SegmentMixed
	}
}

func summarize(rows []analyzemarketgaps.PriceDistributionRow) []MarketSegmentSummary {
	out := make([]MarketSegmentSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, MarketSegmentSummary{
			ZipCode:       r.PostalCode,
			MarketSegment: Classify(r.LuxuryCount, r.ModerateCount, r.BudgetCount),
			Details:       fmt.Sprintf("Lux:%d, Mod:%d, Bud:%d", r.LuxuryCount, r.ModerateCount, r.BudgetCount),
		})
	}
	return out
}
