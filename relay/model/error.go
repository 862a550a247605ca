package model

import "fmt"

// ErrorCategory tells where in the pipeline an error was raised. Errors are
// never reclassified downstream: a validation failure stays a validation
// failure all the way out to the caller.
type ErrorCategory string

const (
	// CategoryValidation — local, pre-network; caller can correct input.
	CategoryValidation ErrorCategory = "validation"
	// CategoryRule — local, after at most one remote read, before any write.
	CategoryRule ErrorCategory = "rule"
	// CategoryRemote — the remote call itself failed or was declined.
	CategoryRemote ErrorCategory = "remote"
	// CategoryConfig — process misconfiguration detected before any network
	// attempt (missing credential).
	CategoryConfig ErrorCategory = "config"
)

// Validation error kinds.
const (
	KindUnknownTool  = "unknown_tool"
	KindMissingField = "missing_field"
	KindInvalidValue = "invalid_value"
)

// Rule violation kinds.
const (
	KindGenerationNotFound  = "generation_not_found"
	KindNotCompleted        = "not_completed"
	KindResolutionNotHigher = "resolution_not_higher"
	KindAlreadyUpscaled     = "already_upscaled"
)

// Remote error kinds.
const (
	KindNetwork           = "network"
	KindRejected          = "rejected"
	KindMalformedResponse = "malformed_response"
	KindCancelled         = "cancelled"
)

const KindMissingCredential = "missing_credential"

// ToolError is the uniform outward error shape. Field is set for
// field-scoped validation errors, StatusCode for remote rejections.
type ToolError struct {
	Category   ErrorCategory `json:"category"`
	Kind       string        `json:"kind"`
	Message    string        `json:"message"`
	Field      string        `json:"field,omitempty"`
	StatusCode int           `json:"status_code,omitempty"`
}

func (e *ToolError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Retriable reports whether the caller may retry the identical call. Only
// transient network failures qualify.
func (e *ToolError) Retriable() bool {
	return e.Category == CategoryRemote && e.Kind == KindNetwork
}

func NewValidationError(kind, field, message string) *ToolError {
	return &ToolError{Category: CategoryValidation, Kind: kind, Field: field, Message: message}
}

func NewRuleViolation(kind, message string) *ToolError {
	return &ToolError{Category: CategoryRule, Kind: kind, Message: message}
}

func NewRemoteError(kind string, statusCode int, message string) *ToolError {
	return &ToolError{Category: CategoryRemote, Kind: kind, StatusCode: statusCode, Message: message}
}

func NewConfigError(kind, message string) *ToolError {
	return &ToolError{Category: CategoryConfig, Kind: kind, Message: message}
}

// ToolResult is what the dispatcher hands back for every call: exactly one
// of Payload or Error is set.
type ToolResult struct {
	Payload any        `json:"payload,omitempty"`
	Error   *ToolError `json:"error,omitempty"`
}

func Success(payload any) *ToolResult {
	return &ToolResult{Payload: payload}
}

func Failure(err *ToolError) *ToolResult {
	return &ToolResult{Error: err}
}
