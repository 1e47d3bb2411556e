package places

// DetailFields is the fixed field mask requested for every lookup. Unbounded field
// requests are billed at the highest SKU.
var DetailFields = []string{
	"name",
	"formatted_address",
	"formatted_phone_number",
	"website",
	"rating",
	"user_ratings_total",
	"reviews",
	"opening_hours",
	"editorial_summary",
	"price_level",
	"types",
	"wheelchair_accessible_entrance",
	"serves_vegetarian_food",
	"delivery",
	"dine_in",
}

// PlaceResult holds the requested fields. Pointers are nil when the API omitted the field.
type PlaceResult struct {
	Name                         *string           `json:"name"`
	FormattedAddress             *string           `json:"formatted_address"`
	FormattedPhoneNumber         *string           `json:"formatted_phone_number"`
	Website                      *string           `json:"website"`
	Rating                       *float64          `json:"rating"`
	UserRatingsTotal             *int              `json:"user_ratings_total"`
	Reviews                      []Review          `json:"reviews"`
	OpeningHours                 *OpeningHours     `json:"opening_hours"`
	EditorialSummary             *EditorialSummary `json:"editorial_summary"`
	PriceLevel                   *int              `json:"price_level"`
	Types                        []string          `json:"types"`
	WheelchairAccessibleEntrance *bool             `json:"wheelchair_accessible_entrance"`
	ServesVegetarianFood         *bool             `json:"serves_vegetarian_food"`
	Delivery                     *bool             `json:"delivery"`
	DineIn                       *bool             `json:"dine_in"`
}

type Review struct {
	AuthorName              *string `json:"author_name"`
	Rating                  *int    `json:"rating"`
	Text                    string  `json:"text"`
	RelativeTimeDescription string  `json:"relative_time_description"`
}

type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text"`
}

type EditorialSummary struct {
	Overview *string `json:"overview"`
}
