// Package errors provides the error taxonomy shared by every location-strategy tool.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ==========================
// 1. Error Kinds
// ==========================

// Kind is the closed set of failure categories a tool can report.
type Kind string

const (
	KindConfiguration Kind = "CONFIGURATION_ERROR"
	KindNotFound      Kind = "NOT_FOUND"
	KindValidation    Kind = "VALIDATION_ERROR"
	KindUpstream      Kind = "UPSTREAM_ERROR"
)

// Known reports whether k is one of the declared kinds.
func (k Kind) Known() bool {
	switch k {
	case KindConfiguration, KindNotFound, KindValidation, KindUpstream:
		return true
	}
	return false
}

// ToolError is the structured error every tool entry point reports.
type ToolError struct {
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Service   string    `json:"service,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Err       error     `json:"-"`
}

func (e *ToolError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ==========================
// 2. Constructors
// ==========================

// NewConfigurationError reports missing or unusable credentials/settings.
func NewConfigurationError(message string) *ToolError {
	return &ToolError{
		Kind:      KindConfiguration,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError reports that the upstream had nothing for the request.
func NewNotFoundError(message, details string) *ToolError {
	return &ToolError{
		Kind:      KindNotFound,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationError reports input rejected before any upstream call.
func NewValidationError(message, details string) *ToolError {
	return &ToolError{
		Kind:      KindValidation,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamError wraps a failure of an external collaborator.
func NewUpstreamError(service string, err error) *ToolError {
	msg := "upstream call failed"
	if err != nil {
		msg = err.Error()
	}
	return &ToolError{
		Kind:      KindUpstream,
		Message:   msg,
		Service:   service,
		Timestamp: time.Now().UTC(),
		Err:       err,
	}
}

// NewUpstreamTimeoutError wraps a deadline hit while waiting on an external collaborator.
func NewUpstreamTimeoutError(service string, err error) *ToolError {
	e := NewUpstreamError(service, err)
	e.Message = fmt.Sprintf("%s call timed out", service)
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// ==========================
// 3. Classification
// ==========================

// KindOf returns the kind of err. Errors that did not originate as a ToolError are
// failures of something outside the tool and classify as upstream.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var te *ToolError
	if stderrors.As(err, &te) {
		return te.Kind
	}
	return KindUpstream
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the human-readable message for err suitable for an agent.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var te *ToolError
	if stderrors.As(err, &te) {
		return te.Message
	}
	return err.Error()
}
