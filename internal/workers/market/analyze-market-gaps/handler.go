package analyzemarketgaps

import (
	"context"
	"errors"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"

	"location-strategy-workers/internal/common/camunda"
	apperrors "location-strategy-workers/internal/common/errors"
	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/common/metrics"
	"location-strategy-workers/internal/common/observability"
	"location-strategy-workers/internal/models"
	"location-strategy-workers/internal/warehouse"
	"location-strategy-workers/internal/workers/market/analyze-market-gaps/queries"
)

const (
	TaskType       = "analyze-market-gaps"
	ResultVariable = "marketGaps"

	serviceName = "warehouse"
)

type Handler struct {
	config    *Config
	warehouse warehouse.Warehouse
	cache     *redis.Client
	logger    logger.Logger
}

// NewHandler wires the analyzer. cache may be nil.
func NewHandler(config *Config, wh warehouse.Warehouse, cache *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		warehouse: wh,
		cache:     cache,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
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

	ctx, cancel := h.jobContext()
	defer cancel()

	inv.Complete(client, ResultVariable, h.Invoke(ctx, &input))
}

func (h *Handler) jobContext() (context.Context, context.CancelFunc) {
	if h.config.JobTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), h.config.JobTimeout)
}

// Invoke runs the analysis and wraps the outcome as a tool result.
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
		attribute.String("analysis_mode", input.AnalysisMode),
	)
	defer func() { observability.EndSpan(span, err) }()

	return h.execute(ctx, input)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	mode, amenity, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	dialect, err := queries.DialectFor(h.warehouse.Dialect())
	if err != nil {
		return nil, apperrors.NewConfigurationError(err.Error())
	}

	log := h.logger.WithFields(map[string]interface{}{
		"city":         input.City,
		"businessType": input.BusinessType,
		"mode":         string(mode),
	})

	key := cacheKey(h.config.TableID, dialect.Name(), mode, amenity, input.City, input.BusinessType)
	if rows, ok := h.readCache(ctx, key, mode); ok {
		log.Info("market analysis served from cache", map[string]interface{}{"rowCount": len(rows)})
		return &Output{AnalysisMode: mode, City: input.City, Results: rows}, nil
	}

	stmt, err := queries.Build(dialect, h.config.TableID, mode, queries.Request{
		City:         input.City,
		BusinessType: input.BusinessType,
		Amenity:      amenity,
	})
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid input.", err.Error())
	}

	qctx := ctx
	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		qctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := h.warehouse.Query(qctx, stmt)
	if err != nil {
		metrics.WarehouseQueries.WithLabelValues(string(mode), "error").Inc()
		log.Error("warehouse query failed", map[string]interface{}{"error": err})
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(qctx.Err(), context.DeadlineExceeded) {
			return nil, apperrors.NewUpstreamTimeoutError(serviceName, err)
		}
		return nil, apperrors.NewUpstreamError(serviceName, err)
	}
	metrics.WarehouseQueries.WithLabelValues(string(mode), "success").Inc()

	rows, err := decodeRows(mode, raw)
	if err != nil {
		return nil, apperrors.NewUpstreamError(serviceName, err)
	}

	log.Info("market analysis completed", map[string]interface{}{
		"rowCount":   len(rows),
		"durationMs": time.Since(start).Milliseconds(),
	})

	h.writeCache(ctx, key, rows)

	return &Output{
		AnalysisMode: mode,
		City:         input.City,
		Results:      rows,
	}, nil
}
