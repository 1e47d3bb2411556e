package queries

import (
	"fmt"
	"strings"

	"location-strategy-workers/internal/warehouse"
)

// RowLimit caps every analysis at the top postal codes.
const RowLimit = 10

const (
	priceInexpensive   = "'PRICE_LEVEL_INEXPENSIVE'"
	priceModerate      = "'PRICE_LEVEL_MODERATE'"
	priceExpensive     = "'PRICE_LEVEL_EXPENSIVE'"
	priceVeryExpensive = "'PRICE_LEVEL_VERY_EXPENSIVE'"
)

type aggregate struct {
	columns []string
	having  string
	orderBy string
}

// render assembles the shared frame: filter by the bound city and type, group by postal
// code, order, limit.
func render(d Dialect, table string, agg aggregate) string {
	var b strings.Builder
	b.WriteString(d.Select())
	b.WriteString("\n    postal_code")
	for _, c := range agg.columns {
		b.WriteString(",\n    ")
		b.WriteString(c)
	}
	fmt.Fprintf(&b, "\nFROM %s", d.Table(table))
	fmt.Fprintf(&b, "\nWHERE city = %s AND primary_type = %s", d.Param("city", 1), d.Param("type", 2))
	b.WriteString("\nGROUP BY postal_code")
	if agg.having != "" {
		fmt.Fprintf(&b, "\nHAVING %s", agg.having)
	}
	fmt.Fprintf(&b, "\nORDER BY %s DESC NULLS LAST", agg.orderBy)
	fmt.Fprintf(&b, "\nLIMIT %d", RowLimit)
	return b.String()
}

func params(req Request) []warehouse.Param {
	return []warehouse.Param{
		{Name: "city", Value: req.City},
		{Name: "type", Value: req.BusinessType},
	}
}

// AmenityGap counts how many competitors per postal code offer the amenity column.
func AmenityGap(d Dialect, table string, req Request) (warehouse.Statement, error) {
	if !req.Amenity.Allowed() {
		return warehouse.Statement{}, fmt.Errorf("%w: %q", ErrAmenityNotAllowed, req.Amenity)
	}
	col := string(req.Amenity)
	has := d.CountIf(col + " = TRUE")
	lacks := d.CountIf(fmt.Sprintf("%s = FALSE OR %s IS NULL", col, col))

	sql := render(d, table, aggregate{
		columns: []string{
			"COUNT(*) AS total_competitors",
			has + " AS has_amenity",
			lacks + " AS lacks_amenity",
			d.Round(d.Ratio(has, "COUNT(*)")+" * 100", 1) + " AS saturation_percentage",
		},
		orderBy: "lacks_amenity",
	})
	return warehouse.Statement{SQL: sql, Params: params(req)}, nil
}

// Vulnerability finds busy postal codes whose incumbents rate below 4.0.
func Vulnerability(d Dialect, table string, req Request) (warehouse.Statement, error) {
	avg := d.Round("AVG(rating)", 2)
	sql := render(d, table, aggregate{
		columns: []string{
			"COUNT(*) AS competitor_count",
			avg + " AS avg_rating",
			"SUM(user_rating_count) AS total_review_volume",
			d.Round("SUM(user_rating_count) / NULLIF(AVG(rating), 0)", 0) + " AS vulnerability_index",
		},
		having:  avg + " < 4.0",
		orderBy: "vulnerability_index",
	})
	return warehouse.Statement{SQL: sql, Params: params(req)}, nil
}

// PriceDistribution counts competitors per price tier. Expensive and very expensive
// both count as luxury.
func PriceDistribution(d Dialect, table string, req Request) (warehouse.Statement, error) {
	sql := render(d, table, aggregate{
		columns: []string{
			d.CountIf("price_level = "+priceInexpensive) + " AS budget_count",
			d.CountIf("price_level = "+priceModerate) + " AS moderate_count",
			d.CountIf(fmt.Sprintf("price_level = %s OR price_level = %s", priceExpensive, priceVeryExpensive)) + " AS luxury_count",
		},
		orderBy: "moderate_count",
	})
	return warehouse.Statement{SQL: sql, Params: params(req)}, nil
}
