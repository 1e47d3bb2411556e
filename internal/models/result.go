package models

import (
	"fmt"

	apperrors "location-strategy-workers/internal/common/errors"
)

// Status tags every tool result.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the status-tagged envelope every tool entry point returns to the agent.
type Result[T any] struct {
	Status       Status `json:"status"`
	ErrorCode    string `json:"error_code,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	Data         *T     `json:"data,omitempty"`
}

// Success wraps a computed value.
func Success[T any](v *T) Result[T] {
	return Result[T]{Status: StatusSuccess, Data: v}
}

// Failure converts err into an error result. Validation failures carry their
// details so the caller can see which field to correct.
func Failure[T any](err error) Result[T] {
	message := apperrors.Message(err)
	if te := apperrors.Normalize(err); te != nil && te.Kind == apperrors.KindValidation && te.Details != "" {
		message = fmt.Sprintf("%s (%s)", message, te.Details)
	}
	return Result[T]{
		Status:       StatusError,
		ErrorCode:    string(apperrors.KindOf(err)),
		ErrorMessage: message,
	}
}

// From picks Success or Failure based on err.
func From[T any](v *T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// OK reports whether the result is a success.
func (r Result[T]) OK() bool {
	return r.Status == StatusSuccess
}

// Code is the error code, empty on success.
func (r Result[T]) Code() string {
	return r.ErrorCode
}
