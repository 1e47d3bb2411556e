package getplacedetails

import (
	"strconv"

	"location-strategy-workers/internal/places"
)

const (
	maxReviews = 5

	notAvailable    = "N/A"
	noSummary       = "No summary available."
	anonymousAuthor = "Anonymous"
)

// buildInsight reshapes a raw place into the insight record, substituting defaults for
// absent optional fields.
func buildInsight(p *places.PlaceResult) *PlaceInsight {
	insight := &PlaceInsight{
		Name:    deref(p.Name, ""),
		Summary: noSummary,
		Contact: Contact{
			Phone:   deref(p.FormattedPhoneNumber, notAvailable),
			Website: deref(p.Website, notAvailable),
			Address: deref(p.FormattedAddress, ""),
		},
		Metrics: Metrics{
			Rating:       p.Rating,
			TotalReviews: p.UserRatingsTotal,
			PriceLevel:   notAvailable,
		},
		Amenities: Amenities{
			WheelchairAccessible: p.WheelchairAccessibleEntrance,
			VegetarianOptions:    p.ServesVegetarianFood,
			Delivery:             p.Delivery,
			DineIn:               p.DineIn,
		},
		Hours:         []string{},
		LatestReviews: []ReviewSummary{},
		Types:         []string{},
	}

	if p.EditorialSummary != nil && p.EditorialSummary.Overview != nil {
		insight.Summary = *p.EditorialSummary.Overview
	}
	if p.PriceLevel != nil {
		insight.Metrics.PriceLevel = strconv.Itoa(*p.PriceLevel)
	}
	if p.OpeningHours != nil && p.OpeningHours.WeekdayText != nil {
		insight.Hours = p.OpeningHours.WeekdayText
	}
	if p.Types != nil {
		insight.Types = p.Types
	}

	reviews := p.Reviews
	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}
	for _, r := range reviews {
		insight.LatestReviews = append(insight.LatestReviews, ReviewSummary{
			Author: deref(r.AuthorName, anonymousAuthor),
			Rating: deref(r.Rating, 0),
			Text:   r.Text,
			Time:   r.RelativeTimeDescription,
		})
	}
	return insight
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
