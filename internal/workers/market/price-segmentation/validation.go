package pricesegmentation

import (
	"strings"

	apperrors "location-strategy-workers/internal/common/errors"
	"location-strategy-workers/internal/common/validation"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:        "object",
		Description: "Analyzes the price tiers of a city for a business type, per zip code.",
		Properties: map[string]validation.Property{
			"city": {
				Type:        "string",
				Description: `The city to analyze (e.g., "San Francisco").`,
				MinLength:   validation.IntPtr(1),
			},
			"business_type": {
				Type:        "string",
				Description: `The type of business (e.g., "coffee_shop", "gym", "restaurant").`,
				MinLength:   validation.IntPtr(1),
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
