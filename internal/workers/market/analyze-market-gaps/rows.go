package analyzemarketgaps

import (
	"encoding/json"
	"fmt"

	"location-strategy-workers/internal/models"
	"location-strategy-workers/internal/warehouse"
)

// decodeRows maps warehouse rows onto the typed row of the mode, preserving order.
func decodeRows(mode models.AnalysisMode, rows []warehouse.Row) ([]MarketGapRow, error) {
	out := make([]MarketGapRow, 0, len(rows))
	for i, row := range rows {
		var (
			r   MarketGapRow
			err error
		)
		switch mode {
		case models.AnalysisModeAmenityGap:
			r, err = decodeAmenityGap(row)
		case models.AnalysisModeVulnerability:
			r, err = decodeVulnerability(row)
		case models.AnalysisModePriceDistribution:
			r, err = decodePriceDistribution(row)
		default:
			return nil, fmt.Errorf("no row decoder for mode %s", mode)
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func decodeAmenityGap(row warehouse.Row) (MarketGapRow, error) {
	var (
		r   = AmenityGapRow{PostalCode: warehouse.String(row["postal_code"])}
		err error
	)
	if r.TotalCompetitors, err = warehouse.Int64(row["total_competitors"]); err != nil {
		return nil, fmt.Errorf("total_competitors: %w", err)
	}
	if r.HasAmenity, err = warehouse.Int64(row["has_amenity"]); err != nil {
		return nil, fmt.Errorf("has_amenity: %w", err)
	}
	if r.LacksAmenity, err = warehouse.Int64(row["lacks_amenity"]); err != nil {
		return nil, fmt.Errorf("lacks_amenity: %w", err)
	}
	if r.SaturationPercentage, err = warehouse.NullableFloat64(row["saturation_percentage"]); err != nil {
		return nil, fmt.Errorf("saturation_percentage: %w", err)
	}
	return r, nil
}

func decodeVulnerability(row warehouse.Row) (MarketGapRow, error) {
	var (
		r   = VulnerabilityRow{PostalCode: warehouse.String(row["postal_code"])}
		err error
	)
	if r.CompetitorCount, err = warehouse.Int64(row["competitor_count"]); err != nil {
		return nil, fmt.Errorf("competitor_count: %w", err)
	}
	if r.AvgRating, err = warehouse.Float64(row["avg_rating"]); err != nil {
		return nil, fmt.Errorf("avg_rating: %w", err)
	}
	if r.TotalReviewVolume, err = warehouse.Int64(row["total_review_volume"]); err != nil {
		return nil, fmt.Errorf("total_review_volume: %w", err)
	}
	if r.VulnerabilityIndex, err = warehouse.NullableFloat64(row["vulnerability_index"]); err != nil {
		return nil, fmt.Errorf("vulnerability_index: %w", err)
	}
	return r, nil
}

func decodePriceDistribution(row warehouse.Row) (MarketGapRow, error) {
	var (
		r   = PriceDistributionRow{PostalCode: warehouse.String(row["postal_code"])}
		err error
	)
	if r.BudgetCount, err = warehouse.Int64(row["budget_count"]); err != nil {
		return nil, fmt.Errorf("budget_count: %w", err)
	}
	if r.ModerateCount, err = warehouse.Int64(row["moderate_count"]); err != nil {
		return nil, fmt.Errorf("moderate_count: %w", err)
	}
	if r.LuxuryCount, err = warehouse.Int64(row["luxury_count"]); err != nil {
		return nil, fmt.Errorf("luxury_count: %w", err)
	}
	return r, nil
}

// unmarshalRows restores rows written by the cache.
func unmarshalRows(mode models.AnalysisMode, data []byte) ([]MarketGapRow, error) {
	switch mode {
	case models.AnalysisModeAmenityGap:
		return unmarshalAs[AmenityGapRow](data)
	case models.AnalysisModeVulnerability:
		return unmarshalAs[VulnerabilityRow](data)
	case models.AnalysisModePriceDistribution:
		return unmarshalAs[PriceDistributionRow](data)
	default:
		return nil, fmt.Errorf("no row decoder for mode %s", mode)
	}
}

func unmarshalAs[T MarketGapRow](data []byte) ([]MarketGapRow, error) {
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return asRows(rows), nil
}
