package competitorweaknesses

import (
	"strings"

	apperrors "location-strategy-workers/internal/common/errors"
	"location-strategy-workers/internal/common/validation"
)

// GetInputSchema leaves check_amenity unconstrained. An unknown amenity only empties the
// amenity_gaps section, the same as any other failed amenity analysis.
func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:        "object",
		Description: "Finds soft targets (low-rated, high-traffic competitors) and feature gaps in a city.",
		Properties: map[string]validation.Property{
			"city": {
				Type:        "string",
				Description: `The city to analyze (e.g., "Austin").`,
				MinLength:   validation.IntPtr(1),
			},
			"business_type": {
				Type:        "string",
				Description: `The business type (e.g., "coffee_shop").`,
				MinLength:   validation.IntPtr(1),
			},
			"check_amenity": {
				Type:        "string",
				Description: `Optional. A specific feature to check for saturation (e.g., "drive_through", "outdoor_seating", "delivery", "serves_vegetarian_food").`,
			},
		},
		Required: []string{"city", "business_type"},
	}
}

func validateInput(input *Input) error {
	result, err := validation.ValidateInput(input, GetInputSchema())
	if err != nil {
		return apperrors.NewValidationError("Invalid input.", err.Error())
	}
	if !result.Valid {
		return apperrors.NewValidationError("Invalid input.", strings.Join(result.GetErrorMessages(), "; "))
	}
	return nil
}
