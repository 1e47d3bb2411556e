package getplacedetails

import (
	"context"
	"errors"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"

	"location-strategy-workers/internal/common/camunda"
	apperrors "location-strategy-workers/internal/common/errors"
	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/common/observability"
	"location-strategy-workers/internal/models"
	"location-strategy-workers/internal/places"
)

const (
	TaskType       = "get-place-details"
	ResultVariable = "placeDetails"

	serviceName = "places"
)

const (
	msgMissingKey = "Maps API key not found. Set MAPS_API_KEY environment variable or 'maps_api_key' in session state."
	msgNotFound   = "No details found for the provided Place ID."
)

type Handler struct {
	config *Config
	client places.Client
	logger logger.Logger
}

func NewHandler(config *Config, client places.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	inv := camunda.StartInvocation(job, TaskType, h.logger)

	var input Input
	session, err := camunda.DecodeVariables(job, &input)
	if err != nil {
		inv.Complete(client, ResultVariable, models.Failure[PlaceInsight](
			apperrors.NewValidationError("Invalid job variables.", err.Error()),
		))
		return
	}
	input.Session = session

	inv.Complete(client, ResultVariable, h.Invoke(context.Background(), &input))
}

func (h *Handler) Invoke(ctx context.Context, input *Input) models.Result[PlaceInsight] {
	out, err := h.Execute(ctx, input)
	return models.From(out, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (insight *PlaceInsight, err error) {
	if input == nil {
		return nil, apperrors.NewValidationError("Invalid input.", "input cannot be nil")
	}

	ctx, span := observability.StartSpan(ctx, TaskType, attribute.String("place_id", input.PlaceID))
	defer func() { observability.EndSpan(span, err) }()

	return h.execute(ctx, input)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*PlaceInsight, error) {
	apiKey := h.resolveAPIKey(input.Session)
	if apiKey == "" {
		return nil, apperrors.NewConfigurationError(msgMissingKey)
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	result, err := h.client.Details(ctx, apiKey, input.PlaceID, places.DetailFields)
	if err != nil {
		switch {
		case errors.Is(err, places.ErrNotFound):
			h.logger.Info("place not found", map[string]interface{}{"placeId": input.PlaceID})
			return nil, apperrors.NewNotFoundError(msgNotFound, input.PlaceID)
		case errors.Is(err, context.DeadlineExceeded):
			h.logger.Error("place details timed out", map[string]interface{}{"placeId": input.PlaceID, "error": err})
			return nil, apperrors.NewUpstreamTimeoutError(serviceName, err)
		default:
			h.logger.Error("place details failed", map[string]interface{}{"placeId": input.PlaceID, "error": err})
			return nil, apperrors.NewUpstreamError(serviceName, err)
		}
	}

	insight := buildInsight(result)
	h.logger.Info("place details fetched", map[string]interface{}{
		"placeId":     input.PlaceID,
		"reviewCount": len(insight.LatestReviews),
	})
	return insight, nil
}

// resolveAPIKey prefers the session key over the configured one.
func (h *Handler) resolveAPIKey(session models.Session) string {
	if session.MapsAPIKey != "" {
		return session.MapsAPIKey
	}
	return h.config.APIKey
}
