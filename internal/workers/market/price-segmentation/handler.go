package pricesegmentation

import (
	"context"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"location-strategy-workers/internal/common/camunda"
	apperrors "location-strategy-workers/internal/common/errors"
	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/common/observability"
	"location-strategy-workers/internal/models"
	analyzemarketgaps "location-strategy-workers/internal/workers/market/analyze-market-gaps"
)

const (
	TaskType       = "get-price-segmentation"
	ResultVariable = "priceSegmentation"
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
	)
	defer func() { observability.EndSpan(span, err) }()

	return h.execute(ctx, input)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	h.logger.Info("analyzing price segmentation", map[string]interface{}{
		"city":         input.City,
		"businessType": input.BusinessType,
	})

	raw, err := h.analyzer.Execute(ctx, &analyzemarketgaps.Input{
		City:         input.City,
		BusinessType: input.BusinessType,
		AnalysisMode: string(models.AnalysisModePriceDistribution),
	})
	if err != nil {
		return nil, err
	}

	return &Output{Summary: summarize(raw.PriceDistribution())}, nil
}
