package toolset

import (
	"time"

	"location-strategy-workers/internal/common/config"
	apperrors "location-strategy-workers/internal/common/errors"
	analyzemarketgaps "location-strategy-workers/internal/workers/market/analyze-market-gaps"
	competitorweaknesses "location-strategy-workers/internal/workers/market/competitor-weaknesses"
	pricesegmentation "location-strategy-workers/internal/workers/market/price-segmentation"
	getplacedetails "location-strategy-workers/internal/workers/places/get-place-details"
	"location-strategy-workers/pkg/registry"
)

const RegistryVersion = "1.0.0"

// Declarations describes the four tools as the agent framework sees them. Names match
// the function names the agent calls.
func Declarations(cfg *config.Config) *registry.ToolRegistry {
	timeout := func(taskType string) string {
		if cfg == nil {
			return ""
		}
		return (time.Duration(cfg.Worker(taskType).Timeout) * time.Millisecond).String()
	}

	return &registry.ToolRegistry{
		Version: RegistryVersion,
		Tools: []registry.Tool{
			{
				Name:           "get_place_details",
				TaskType:       getplacedetails.TaskType,
				ResultVariable: getplacedetails.ResultVariable,
				Description:    "Retrieves rich details about a specific place: reviews, opening hours, contact information and amenities.",
				Parameters:     getplacedetails.GetInputSchema(),
				ErrorCodes:     codes(apperrors.KindConfiguration, apperrors.KindNotFound, apperrors.KindValidation, apperrors.KindUpstream),
				Timeout:        timeout(getplacedetails.TaskType),
			},
			{
				Name:           "analyze_market_gaps",
				TaskType:       analyzemarketgaps.TaskType,
				ResultVariable: analyzemarketgaps.ResultVariable,
				Description:    "Runs an aggregate market analysis per zip code: amenity saturation, competitor vulnerability or price tier distribution.",
				Parameters:     analyzemarketgaps.GetInputSchema(),
				ErrorCodes:     codes(apperrors.KindConfiguration, apperrors.KindValidation, apperrors.KindUpstream),
				Timeout:        timeout(analyzemarketgaps.TaskType),
			},
			{
				Name:           "get_price_segmentation",
				TaskType:       pricesegmentation.TaskType,
				ResultVariable: pricesegmentation.ResultVariable,
				Description:    pricesegmentation.GetInputSchema().Description,
				Parameters:     pricesegmentation.GetInputSchema(),
				ErrorCodes:     codes(apperrors.KindConfiguration, apperrors.KindValidation, apperrors.KindUpstream),
				Timeout:        timeout(pricesegmentation.TaskType),
			},
			{
				Name:           "find_competitor_weaknesses",
				TaskType:       competitorweaknesses.TaskType,
				ResultVariable: competitorweaknesses.ResultVariable,
				Description:    competitorweaknesses.GetInputSchema().Description,
				Parameters:     competitorweaknesses.GetInputSchema(),
				ErrorCodes:     codes(apperrors.KindValidation),
				Timeout:        timeout(competitorweaknesses.TaskType),
			},
		},
	}
}

func codes(kinds ...apperrors.Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
