// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "location-strategy-workers/internal/common/errors"
)

func LoadRegistry(path string) (*ToolRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ToolRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return &reg, nil
}

// Save writes the registry as indented JSON, creating parent directories.
func (r *ToolRegistry) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Find looks a tool up by its agent-facing name.
func (r *ToolRegistry) Find(name string) (Tool, bool) {
	for _, t := range r.Tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Validate checks names and task types are unique and every error code is a known kind.
func (r *ToolRegistry) Validate() error {
	names := map[string]bool{}
	taskTypes := map[string]bool{}
	for i, t := range r.Tools {
		if t.Name == "" || t.TaskType == "" {
			return fmt.Errorf("tool %d: name and taskType are required", i)
		}
		if names[t.Name] {
			return fmt.Errorf("duplicate tool name %q", t.Name)
		}
		if taskTypes[t.TaskType] {
			return fmt.Errorf("duplicate task type %q", t.TaskType)
		}
		names[t.Name] = true
		taskTypes[t.TaskType] = true

		if t.Parameters.Type != "object" {
			return fmt.Errorf("tool %q: parameters must be an object schema", t.Name)
		}
		for _, code := range t.ErrorCodes {
			if !apperrors.Kind(code).Known() {
				return fmt.Errorf("tool %q: unknown error code %q", t.Name, code)
			}
		}
	}
	return nil
}
