package camunda

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"location-strategy-workers/internal/common/logger"
	"location-strategy-workers/internal/common/metrics"
	"location-strategy-workers/internal/models"
)

// Outcome is what the runtime needs to know about a tool result.
type Outcome interface {
	OK() bool
	Code() string
}

// Invocation tracks one job-driven tool call from activation to completion.
type Invocation struct {
	ID       string
	TaskType string
	job      entities.Job
	start    time.Time
	logger   logger.Logger
}

func StartInvocation(job entities.Job, taskType string, log logger.Logger) *Invocation {
	inv := &Invocation{
		ID:       uuid.NewString(),
		TaskType: taskType,
		job:      job,
		start:    time.Now(),
	}
	inv.logger = log.WithFields(map[string]interface{}{
		"invocationId": inv.ID,
		"jobKey":       job.GetKey(),
	})
	inv.logger.Info("processing job", map[string]interface{}{
		"workflowKey": job.GetProcessInstanceKey(),
	})
	metrics.ToolInvocationsActive.WithLabelValues(taskType).Inc()
	return inv
}

func (inv *Invocation) Logger() logger.Logger {
	return inv.logger
}

// DecodeVariables unmarshals the job variables into input and extracts the session
// values that travel alongside them.
func DecodeVariables(job entities.Job, input interface{}) (models.Session, error) {
	raw := job.GetVariables()
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), input); err != nil {
		return models.Session{}, fmt.Errorf("parse input: %w", err)
	}

	var state map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return models.Session{}, fmt.Errorf("parse session: %w", err)
	}
	return models.SessionFromState(state), nil
}

// ResultVariables is the variable document a job completes with.
func ResultVariables(resultVariable string, result Outcome) map[string]interface{} {
	return map[string]interface{}{resultVariable: result}
}

// Complete records the outcome and completes the job. Tool failures are part of the
// result document, so the job itself always completes.
func (inv *Invocation) Complete(client worker.JobClient, resultVariable string, result Outcome) {
	duration := time.Since(inv.start)
	status := string(models.StatusSuccess)
	if !result.OK() {
		status = string(models.StatusError)
	}

	metrics.ToolInvocationsActive.WithLabelValues(inv.TaskType).Dec()
	metrics.ToolInvocations.WithLabelValues(inv.TaskType, status, result.Code()).Inc()
	metrics.ToolInvocationDuration.WithLabelValues(inv.TaskType).Observe(duration.Seconds())

	fields := map[string]interface{}{
		"status":     status,
		"durationMs": duration.Milliseconds(),
	}
	if !result.OK() {
		fields["errorCode"] = result.Code()
	}
	inv.logger.Info("job processed", fields)

	cmd, err := client.NewCompleteJobCommand().
		JobKey(inv.job.GetKey()).
		VariablesFromMap(ResultVariables(resultVariable, result))
	if err != nil {
		inv.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err := cmd.Send(context.Background()); err != nil {
		inv.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}
