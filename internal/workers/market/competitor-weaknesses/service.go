package competitorweaknesses

import (
	"fmt"
	"strconv"
	"strings"

	analyzemarketgaps "location-strategy-workers/internal/workers/market/analyze-market-gaps"
)

const reasonHighVolumeLowRating = "High Volume / Low Rating"

// missingSaturation stands in for rows without a saturation value so they are never
// reported as gaps.
const missingSaturation = 100.0

func vulnerableAreas(rows []analyzemarketgaps.VulnerabilityRow) []VulnerableArea {
	out := make([]VulnerableArea, 0, len(rows))
	for _, r := range rows {
		out = append(out, VulnerableArea{
			ZipCode: r.PostalCode,
			Reason:  reasonHighVolumeLowRating,
			Stats:   fmt.Sprintf("Avg Rating: %s (%d reviews)", formatDecimal(r.AvgRating), r.TotalReviewVolume),
		})
	}
	return out
}

func amenityGaps(rows []analyzemarketgaps.AmenityGapRow, amenity string, threshold float64) []AmenityGap {
	out := make([]AmenityGap, 0, len(rows))
	for _, r := range rows {
		saturation := missingSaturation
		if r.SaturationPercentage != nil {
			saturation = *r.SaturationPercentage
		}
		if saturation >= threshold {
			continue
		}
		out = append(out, AmenityGap{
			ZipCode:     r.PostalCode,
			Opportunity: "Lack of " + amenity,
			Details:     fmt.Sprintf("Only %s%% of competitors have this.", formatDecimal(saturation)),
		})
	}
	return out
}

// formatDecimal renders the shortest exact form of f, keeping a trailing ".0" on
// integral values (25 -> "25.0", 3.75 -> "3.75").
func formatDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
