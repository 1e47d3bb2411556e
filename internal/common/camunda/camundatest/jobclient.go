// Package camundatest provides a JobClient double for handler tests.
package camundatest

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var _ worker.JobClient = (*JobClient)(nil)

type JobClient struct {
	mock.Mock
}

func (m *JobClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	args := m.Called()
	return args.Get(0).(commands.CompleteJobCommandStep1)
}

func (m *JobClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	args := m.Called()
	return args.Get(0).(commands.FailJobCommandStep1)
}

func (m *JobClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	args := m.Called()
	return args.Get(0).(commands.ThrowErrorCommandStep1)
}

// CompleteJobCommand records the job key and variables it is built with.
type CompleteJobCommand struct {
	mock.Mock

	Key       int64
	Variables map[string]interface{}
}

func (c *CompleteJobCommand) JobKey(key int64) commands.CompleteJobCommandStep2 {
	c.Key = key
	return c
}

func (c *CompleteJobCommand) VariablesFromMap(variables map[string]interface{}) (commands.DispatchCompleteJobCommand, error) {
	c.Variables = variables
	return c, nil
}

func (c *CompleteJobCommand) VariablesFromObject(variables interface{}) (commands.DispatchCompleteJobCommand, error) {
	raw, err := json.Marshal(variables)
	if err != nil {
		return nil, err
	}
	return c.VariablesFromString(string(raw))
}

func (c *CompleteJobCommand) VariablesFromObjectIgnoreOmitempty(variables interface{}) (commands.DispatchCompleteJobCommand, error) {
	return c.VariablesFromObject(variables)
}

func (c *CompleteJobCommand) VariablesFromStringer(variables fmt.Stringer) (commands.DispatchCompleteJobCommand, error) {
	return c.VariablesFromString(variables.String())
}

func (c *CompleteJobCommand) VariablesFromString(variables string) (commands.DispatchCompleteJobCommand, error) {
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(variables), &m); err != nil {
		return nil, err
	}
	c.Variables = m
	return c, nil
}

func (c *CompleteJobCommand) Send(ctx context.Context) (*pb.CompleteJobResponse, error) {
	args := c.Called(ctx)
	if resp, ok := args.Get(0).(*pb.CompleteJobResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

// VariablesJSON is the completed variable document as the broker would receive it.
func (c *CompleteJobCommand) VariablesJSON(t testing.TB) string {
	t.Helper()
	raw, err := json.Marshal(c.Variables)
	require.NoError(t, err)
	return string(raw)
}

// NewCompletingClient returns a client whose single complete command succeeds.
func NewCompletingClient() (*JobClient, *CompleteJobCommand) {
	cmd := &CompleteJobCommand{}
	cmd.On("Send", mock.Anything).Return(&pb.CompleteJobResponse{}, nil)

	client := &JobClient{}
	client.On("NewCompleteJobCommand").Return(cmd)
	return client, cmd
}

func Job(key int64, taskType, variables string) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:                key,
		ProcessInstanceKey: 7,
		Type:               taskType,
		Variables:          variables,
	}}
}
