package competitorweaknesses

import (
	"context"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"location-strategy-workers/internal/common/camunda"
	apperrors "location-strategy-workers/internal/common/errors"
	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/common/observability"
	"location-strategy-workers/internal/models"
	analyzemarketgaps "location-strategy-workers/internal/workers/market/analyze-market-gaps"
)

const (
	TaskType       = "find-competitor-weaknesses"
	ResultVariable = "competitorWeaknesses"
)

type Handler struct {
	config   *Config
	analyzer MarketAnalyzer
	logger   logger.Logger
}

func NewHandler(config *Config, analyzer MarketAnalyzer, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		analyzer: analyzer,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	inv := camunda.StartInvocation(job, TaskType, h.logger)

	var input Input
	if _, err := camunda.DecodeVariables(job, &input); err != nil {
		inv.Complete(client, ResultVariable, models.Failure[Output](
			apperrors.NewValidationError("Invalid job variables.", err.Error()),
		))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	inv.Complete(client, ResultVariable, h.Invoke(ctx, &input))
}

func (h *Handler) Invoke(ctx context.Context, input *Input) models.Result[Output] {
	out, err := h.Execute(ctx, input)
	return models.From(out, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (output *Output, err error) {
	if input == nil {
		return nil, apperrors.NewValidationError("Invalid input.", "input cannot be nil")
	}

	ctx, span := observability.StartSpan(ctx, TaskType,
		attribute.String("city", input.City),
		attribute.String("business_type", input.BusinessType),
		attribute.String("check_amenity", input.CheckAmenity),
	)
	defer func() { observability.EndSpan(span, err) }()

	return h.execute(ctx, input)
}

// execute runs the vulnerability scan and, when an amenity is given, the amenity gap
// scan side by side. A failed scan leaves its section empty instead of failing the report.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	log := h.logger.WithFields(map[string]interface{}{
		"city":         input.City,
		"businessType": input.BusinessType,
	})
	log.Info("scanning for competitor weaknesses", nil)

	report := CompetitorWeaknessReport{
		VulnerableAreas: []VulnerableArea{},
		AmenityGaps:     []AmenityGap{},
	}

	var g errgroup.Group

	g.Go(func() error {
		out, err := h.analyzer.Execute(ctx, &analyzemarketgaps.Input{
			City:         input.City,
			BusinessType: input.BusinessType,
			AnalysisMode: string(models.AnalysisModeVulnerability),
		})
		if err != nil {
			log.Warn("vulnerability scan failed", apperrors.LogFields(err))
			return nil
		}
		report.VulnerableAreas = vulnerableAreas(out.Vulnerabilities())
		return nil
	})

	if input.CheckAmenity != "" {
		g.Go(func() error {
			out, err := h.analyzer.Execute(ctx, &analyzemarketgaps.Input{
				City:          input.City,
				BusinessType:  input.BusinessType,
				AnalysisMode:  string(models.AnalysisModeAmenityGap),
				TargetAmenity: input.CheckAmenity,
			})
			if err != nil {
				log.WithFields(map[string]interface{}{"amenity": input.CheckAmenity}).
					Warn("amenity gap scan failed", apperrors.LogFields(err))
				return nil
			}
			report.AmenityGaps = amenityGaps(out.AmenityGaps(), input.CheckAmenity, h.config.SaturationThreshold)
			return nil
		})
	}

	// Neither scan reports an error to the group.
	_ = g.Wait()

	log.Info("competitor weakness scan completed", map[string]interface{}{
		"vulnerableAreas": len(report.VulnerableAreas),
		"amenityGaps":     len(report.AmenityGaps),
	})

	return &Output{Insights: report}, nil
}
