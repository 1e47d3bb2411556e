// internal/common/errors/handler.go
package errors

import (
	stderrors "errors"
	"time"
)

// Normalize ensures we always have a ToolError.
func Normalize(err error) *ToolError {
	if err == nil {
		return nil
	}
	var te *ToolError
	if stderrors.As(err, &te) {
		return te
	}
	return &ToolError{
		Kind:      KindUpstream,
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
		Err:       err,
	}
}

// LogFields flattens err into structured log fields.
func LogFields(err error) map[string]interface{} {
	te := Normalize(err)
	if te == nil {
		return nil
	}
	fields := map[string]interface{}{
		"errorCode":    string(te.Kind),
		"errorMessage": te.Message,
	}
	if te.Details != "" {
		fields["errorDetails"] = te.Details
	}
	if te.Service != "" {
		fields["service"] = te.Service
	}
	return fields
}
