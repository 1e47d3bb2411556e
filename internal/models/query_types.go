// internal/models/query_types.go
package models

import "sort"

// AnalysisMode selects which aggregate the market gap analyzer runs.
type AnalysisMode string

const (
	AnalysisModeAmenityGap        AnalysisMode = "AMENITY_GAP"
	AnalysisModeVulnerability     AnalysisMode = "VULNERABILITY"
	AnalysisModePriceDistribution AnalysisMode = "PRICE_DISTRIBUTION"
)

// AnalysisModes lists every supported mode.
var AnalysisModes = []AnalysisMode{
	AnalysisModeAmenityGap,
	AnalysisModeVulnerability,
	AnalysisModePriceDistribution,
}

// Valid reports whether m is one of the supported modes.
func (m AnalysisMode) Valid() bool {
	switch m {
	case AnalysisModeAmenityGap, AnalysisModeVulnerability, AnalysisModePriceDistribution:
		return true
	}
	return false
}

// Amenity is a boolean column of the places table that can be checked for saturation.
type Amenity string

const (
	AmenityDriveThrough         Amenity = "drive_through"
	AmenityOutdoorSeating       Amenity = "outdoor_seating"
	AmenityDelivery             Amenity = "delivery"
	AmenityTakeout              Amenity = "takeout"
	AmenityDineIn               Amenity = "dine_in"
	AmenityServesBreakfast      Amenity = "serves_breakfast"
	AmenityServesLunch          Amenity = "serves_lunch"
	AmenityServesDinner         Amenity = "serves_dinner"
	AmenityWheelchairAccessible Amenity = "wheelchair_accessible_entrance"
	AmenityServesVegetarianFood Amenity = "serves_vegetarian_food"
)

// allowedAmenities is the only set of column names ever interpolated into query text.
var allowedAmenities = map[Amenity]struct{}{
	AmenityDriveThrough:         {},
	AmenityOutdoorSeating:       {},
	AmenityDelivery:             {},
	AmenityTakeout:              {},
	AmenityDineIn:               {},
	AmenityServesBreakfast:      {},
	AmenityServesLunch:          {},
	AmenityServesDinner:         {},
	AmenityWheelchairAccessible: {},
	AmenityServesVegetarianFood: {},
}

// Allowed reports exact membership in the amenity allow-list.
func (a Amenity) Allowed() bool {
	_, ok := allowedAmenities[a]
	return ok
}

// AllowedAmenities returns the allow-list in sorted order.
func AllowedAmenities() []string {
	out := make([]string, 0, len(allowedAmenities))
	for a := range allowedAmenities {
		out = append(out, string(a))
	}
	sort.Strings(out)
	return out
}
