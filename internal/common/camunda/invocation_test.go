package camunda

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"location-strategy-workers/internal/common/camunda/camundatest"
	apperrors "location-strategy-workers/internal/common/errors"
	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/common/metrics"
	"location-strategy-workers/internal/models"
)

type placeInput struct {
	PlaceID string `json:"place_id"`
}

func testJob(variables string) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:                42,
		ProcessInstanceKey: 7,
		Type:               "get-place-details",
		Variables:          variables,
	}}
}

func TestDecodeVariables(t *testing.T) {
	var in placeInput
	session, err := DecodeVariables(testJob(`{"place_id":"ChIJ123","maps_api_key":"session-key"}`), &in)
	require.NoError(t, err)
	assert.Equal(t, "ChIJ123", in.PlaceID)
	assert.Equal(t, "session-key", session.MapsAPIKey)
}

func TestDecodeVariables_EmptyDocument(t *testing.T) {
	var in placeInput
	session, err := DecodeVariables(testJob(""), &in)
	require.NoError(t, err)
	assert.Empty(t, in.PlaceID)
	assert.Empty(t, session.MapsAPIKey)
}

func TestDecodeVariables_Malformed(t *testing.T) {
	var in placeInput
	_, err := DecodeVariables(testJob(`{"place_id":`), &in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse input")
}

func TestResultVariables(t *testing.T) {
	result := models.Failure[placeInput](apperrors.NewNotFoundError("No details found for the provided Place ID.", ""))
	vars := ResultVariables("placeDetails", result)

	raw, err := json.Marshal(vars)
	require.NoError(t, err)
	assert.JSONEq(t, `{"placeDetails":{"status":"error","error_code":"NOT_FOUND","error_message":"No details found for the provided Place ID."}}`, string(raw))
}

func TestStartInvocation_AssignsID(t *testing.T) {
	log := logger.NewZapAdapter(zaptest.NewLogger(t))
	a := StartInvocation(testJob("{}"), "get-place-details", log)
	b := StartInvocation(testJob("{}"), "get-place-details", log)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotNil(t, a.Logger())
}

func TestComplete_Success(t *testing.T) {
	const taskType = "complete-success-test"
	log := logger.NewZapAdapter(zaptest.NewLogger(t))
	client, cmd := camundatest.NewCompletingClient()

	inv := StartInvocation(testJob(`{"place_id":"ChIJ123"}`), taskType, log)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ToolInvocationsActive.WithLabelValues(taskType)))

	inv.Complete(client, "placeDetails", models.Success(&placeInput{PlaceID: "ChIJ123"}))

	client.AssertExpectations(t)
	cmd.AssertExpectations(t)
	assert.Equal(t, int64(42), cmd.Key)
	assert.JSONEq(t, `{"placeDetails":{"status":"success","data":{"place_id":"ChIJ123"}}}`, cmd.VariablesJSON(t))

	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.ToolInvocationsActive.WithLabelValues(taskType)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ToolInvocations.WithLabelValues(taskType, "success", "")))
}

func TestComplete_FailureLabelsErrorCode(t *testing.T) {
	const taskType = "complete-failure-test"
	log := logger.NewZapAdapter(zaptest.NewLogger(t))
	client, cmd := camundatest.NewCompletingClient()

	inv := StartInvocation(testJob("{}"), taskType, log)
	inv.Complete(client, "placeDetails", models.Failure[placeInput](apperrors.NewNotFoundError("No details found for the provided Place ID.", "")))

	assert.JSONEq(t, `{"placeDetails":{"status":"error","error_code":"NOT_FOUND","error_message":"No details found for the provided Place ID."}}`, cmd.VariablesJSON(t))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ToolInvocations.WithLabelValues(taskType, "error", "NOT_FOUND")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.ToolInvocations.WithLabelValues(taskType, "success", "")))
}

func TestComplete_SendErrorIsLogged(t *testing.T) {
	log := logger.NewZapAdapter(zaptest.NewLogger(t))
	cmd := &camundatest.CompleteJobCommand{}
	cmd.On("Send", mock.Anything).Return(nil, errors.New("broker unavailable"))
	client := &camundatest.JobClient{}
	client.On("NewCompleteJobCommand").Return(cmd)

	inv := StartInvocation(testJob("{}"), "complete-send-error-test", log)
	assert.NotPanics(t, func() {
		inv.Complete(client, "placeDetails", models.Success(&placeInput{PlaceID: "x"}))
	})
	cmd.AssertNumberOfCalls(t, "Send", 1)
}
