package analyzemarketgaps

import (
	"fmt"
	"strings"

	apperrors "location-strategy-workers/internal/common/errors"
	"location-strategy-workers/internal/common/validation"
	"location-strategy-workers/internal/models"
)

// GetInputSchema is the parameter declaration advertised to the agent.
func GetInputSchema() validation.JSONSchema {
	modes := make([]string, len(models.AnalysisModes))
	for i, m := range models.AnalysisModes {
		modes[i] = string(m)
	}

	return validation.JSONSchema{
		Type:        "object",
		Description: "Performs market analysis by postal code over the places insights dataset.",
		Properties: map[string]validation.Property{
			"city": {
				Type:        "string",
				Description: `Target city (e.g., "Chicago").`,
				MinLength:   validation.IntPtr(1),
			},
			"business_type": {
				Type:        "string",
				Description: `The primary type (e.g., "coffee_shop", "gym").`,
				MinLength:   validation.IntPtr(1),
			},
			"analysis_mode": {
				Type:        "string",
				Description: "AMENITY_GAP, VULNERABILITY or PRICE_DISTRIBUTION.",
				Enum:        modes,
			},
			"target_amenity": {
				Type:        "string",
				Description: "Required for AMENITY_GAP. The amenity column to check.",
				Enum:        models.AllowedAmenities(),
			},
		},
		Required: []string{"city", "business_type", "analysis_mode"},
	}
}

// validateInput checks the mode and amenity first so those failures carry their
// dedicated messages, then the remaining schema constraints.
func validateInput(input *Input) (models.AnalysisMode, models.Amenity, error) {
	mode, err := ParseAnalysisMode(input.AnalysisMode)
	if err != nil {
		return "", "", err
	}

	var amenity models.Amenity
	if mode == models.AnalysisModeAmenityGap {
		if amenity, err = ParseAmenity(input.TargetAmenity); err != nil {
			return "", "", err
		}
	}

	schemaInput := *input
	if mode != models.AnalysisModeAmenityGap {
		schemaInput.TargetAmenity = ""
	}
	result, err := validation.ValidateInput(schemaInput, GetInputSchema())
	if err != nil {
		return "", "", apperrors.NewValidationError("Invalid input.", err.Error())
	}
	if !result.Valid {
		return "", "", apperrors.NewValidationError("Invalid input.", strings.Join(result.GetErrorMessages(), "; "))
	}
	return mode, amenity, nil
}

// ParseAnalysisMode accepts only the exact mode names.
func ParseAnalysisMode(s string) (models.AnalysisMode, error) {
	mode := models.AnalysisMode(s)
	if !mode.Valid() {
		return "", apperrors.NewValidationError("Invalid analysis_mode.", fmt.Sprintf("analysis_mode: %q", s))
	}
	return mode, nil
}

// ParseAmenity enforces presence and allow-list membership for AMENITY_GAP.
func ParseAmenity(s string) (models.Amenity, error) {
	if s == "" {
		return "", apperrors.NewValidationError("target_amenity is required for AMENITY_GAP mode.", "")
	}
	amenity := models.Amenity(s)
	if !amenity.Allowed() {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("Invalid amenity. Allowed: %s", strings.Join(models.AllowedAmenities(), ", ")),
			fmt.Sprintf("target_amenity: %q", s),
		)
	}
	return amenity, nil
}
