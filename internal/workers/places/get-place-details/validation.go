package getplacedetails

import (
	"strings"

	apperrors "location-strategy-workers/internal/common/errors"
	"location-strategy-workers/internal/common/validation"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:        "object",
		Description: "Retrieve reviews, hours, contact details and amenities for a specific place.",
		Properties: map[string]validation.Property{
			"place_id": {
				Type:        "string",
				Description: `The unique Google Maps Place ID, e.g. "ChIJN1t_tDeuEmsRUsoyG83frY4".`,
				MinLength:   validation.IntPtr(1),
				MaxLength:   validation.IntPtr(512),
			},
		},
		Required: []string{"place_id"},
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
