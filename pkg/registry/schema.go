// pkg/registry/schema.go
package registry

import "location-strategy-workers/internal/common/validation"

// ToolRegistry is the catalogue of agent-callable tools and the job types serving them.
type ToolRegistry struct {
	Version string `json:"version"`
	Tools   []Tool `json:"tools"`
}

// Tool is one function declaration exposed to the agent framework.
type Tool struct {
	Name           string                `json:"name"`
	TaskType       string                `json:"taskType"`
	ResultVariable string                `json:"resultVariable"`
	Description    string                `json:"description"`
	Parameters     validation.JSONSchema `json:"parameters"`
	ErrorCodes     []string              `json:"errorCodes"`
	Timeout        string                `json:"timeout,omitempty"`
}
