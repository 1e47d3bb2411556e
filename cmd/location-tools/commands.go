package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"location-strategy-workers/internal/common/config"
	"location-strategy-workers/internal/models"
	"location-strategy-workers/internal/toolset"
	analyzemarketgaps "location-strategy-workers/internal/workers/market/analyze-market-gaps"
	competitorweaknesses "location-strategy-workers/internal/workers/market/competitor-weaknesses"
	pricesegmentation "location-strategy-workers/internal/workers/market/price-segmentation"
	getplacedetails "location-strategy-workers/internal/workers/places/get-place-details"
)

type marketOptions struct {
	city         string
	businessType string
}

func (o *marketOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.city, "city", "", `City to analyze (e.g. "Chicago")`)
	cmd.Flags().StringVar(&o.businessType, "type", "", `Business type (e.g. "coffee_shop")`)
}

func (a *App) newPlaceDetailsCmd() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "place-details <place-id>",
		Short: "Fetch reviews, hours, contact details and amenities for a place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			// No warehouse is needed to look up a single place.
			ts := toolset.New(cfg, nil, nil, a.logger())
			return a.printResult(ts.PlaceDetails.Invoke(cmd.Context(), &getplacedetails.Input{
				PlaceID: args[0],
				Session: models.Session{MapsAPIKey: apiKey},
			}))
		},
	}
	cmd.Flags().StringVar(&apiKey, "maps-api-key", "", "Session API key; overrides MAPS_API_KEY")
	return cmd
}

func (a *App) newMarketGapsCmd() *cobra.Command {
	var (
		opts    marketOptions
		mode    string
		amenity string
	)

	cmd := &cobra.Command{
		Use:   "market-gaps",
		Short: "Run an aggregate market analysis per zip code",
		Long: `Run one of the market analyses per zip code:

  AMENITY_GAP         share of competitors offering --amenity
  VULNERABILITY       areas with many reviews but average rating below 4.0
  PRICE_DISTRIBUTION  budget, moderate and luxury competitor counts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withToolset(cmd.Context(), func(ts *toolset.Toolset) error {
				return a.printResult(ts.MarketGaps.Invoke(cmd.Context(), &analyzemarketgaps.Input{
					City:          opts.city,
					BusinessType:  opts.businessType,
					AnalysisMode:  mode,
					TargetAmenity: amenity,
				}))
			})
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVar(&mode, "mode", string(models.AnalysisModeVulnerability), "AMENITY_GAP, VULNERABILITY or PRICE_DISTRIBUTION")
	cmd.Flags().StringVar(&amenity, "amenity", "", "Amenity column for AMENITY_GAP (e.g. drive_through)")
	return cmd
}

func (a *App) newPriceSegmentationCmd() *cobra.Command {
	var opts marketOptions

	cmd := &cobra.Command{
		Use:   "price-segmentation",
		Short: "Classify each zip code by its dominant price tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withToolset(cmd.Context(), func(ts *toolset.Toolset) error {
				return a.printResult(ts.PriceSegmentation.Invoke(cmd.Context(), &pricesegmentation.Input{
					City:         opts.city,
					BusinessType: opts.businessType,
				}))
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

func (a *App) newCompetitorWeaknessesCmd() *cobra.Command {
	var (
		opts    marketOptions
		amenity string
	)

	cmd := &cobra.Command{
		Use:   "competitor-weaknesses",
		Short: "Find low-rated high-traffic areas and, optionally, amenity gaps",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withToolset(cmd.Context(), func(ts *toolset.Toolset) error {
				return a.printResult(ts.CompetitorWeaknesses.Invoke(cmd.Context(), &competitorweaknesses.Input{
					City:         opts.city,
					BusinessType: opts.businessType,
					CheckAmenity: amenity,
				}))
			})
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVar(&amenity, "amenity", "", "Amenity to check for saturation (e.g. outdoor_seating)")
	return cmd
}

func (a *App) newSchemasCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "Export the tool declarations for the agent framework",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *config.Config
			if loaded, err := a.loadConfig(); err == nil {
				cfg = loaded
			}
			reg := toolset.Declarations(cfg)
			if err := reg.Validate(); err != nil {
				return err
			}

			if outputPath == "" {
				return a.printJSON(reg)
			}
			if err := reg.Save(outputPath); err != nil {
				return fmt.Errorf("write registry: %w", err)
			}
			_, _ = fmt.Fprintf(a.stdout, "Tool registry exported to %s\n", outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}
