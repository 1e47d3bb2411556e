// internal/workers/places/get-place-details/models.go
package getplacedetails

import "location-strategy-workers/internal/models"

type Input struct {
	PlaceID string         `json:"place_id"`
	Session models.Session `json:"-"`
}

// PlaceInsight is the agent-facing reshaping of a place record.
type PlaceInsight struct {
	Name          string          `json:"name"`
	Summary       string          `json:"summary"`
	Contact       Contact         `json:"contact"`
	Metrics       Metrics         `json:"metrics"`
	Amenities     Amenities       `json:"amenities"`
	Hours         []string        `json:"hours"`
	LatestReviews []ReviewSummary `json:"latest_reviews"`
	Types         []string        `json:"types"`
}

type Contact struct {
	Phone   string `json:"phone"`
	Website string `json:"website"`
	Address string `json:"address"`
}

type Metrics struct {
	Rating       *float64 `json:"rating"`
	TotalReviews *int     `json:"total_reviews"`
	PriceLevel   string   `json:"price_level"`
}

// Amenities are null when the place does not report them.
type Amenities struct {
	WheelchairAccessible *bool `json:"wheelchair_accessible"`
	VegetarianOptions    *bool `json:"vegetarian_options"`
	Delivery             *bool `json:"delivery"`
	DineIn               *bool `json:"dine_in"`
}

type ReviewSummary struct {
	Author string `json:"author"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Time   string `json:"time"`
}
