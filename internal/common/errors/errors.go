// Package errors provides the structured errors returned by the assistance API.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Request validation
const (
	ErrCodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	ErrCodeMissingFormData     ErrorCode = "MISSING_FORM_DATA"
	ErrCodeMissingPersonalInfo ErrorCode = "MISSING_PERSONAL_INFO"
)

// AI service
const (
	ErrCodeAINotConfigured ErrorCode = "AI_NOT_CONFIGURED"
	ErrCodeAITimeout       ErrorCode = "AI_TIMEOUT"
	ErrCodeAIRateLimited   ErrorCode = "AI_RATE_LIMITED"
	ErrCodeAIUnavailable   ErrorCode = "AI_UNAVAILABLE"
	ErrCodeAIAuthFailed    ErrorCode = "AI_AUTH_FAILED"
	ErrCodeAIModelNotFound ErrorCode = "AI_MODEL_NOT_FOUND"
	ErrCodeAIUpstream      ErrorCode = "AI_UPSTREAM_ERROR"
	ErrCodeAIBadResponse   ErrorCode = "AI_BAD_RESPONSE"
)

// Submission and hand-off
const (
	ErrCodeProcessStartFailed     ErrorCode = "PROCESS_START_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeInternal               ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key/value pair and returns the same error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: IsRetryableErrorCode(code),
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError reports a malformed request body.
func NewInvalidRequestError(message, details string) *StandardError {
	return newError(ErrCodeInvalidRequest, message, details)
}

func NewMissingFormDataError() *StandardError {
	return newError(ErrCodeMissingFormData, "Missing required form data", "")
}

func NewMissingPersonalInfoError() *StandardError {
	return newError(ErrCodeMissingPersonalInfo, "Missing required personal information", "")
}

// NewAINotConfiguredError is returned when no API key is available.
func NewAINotConfiguredError() *StandardError {
	return newError(ErrCodeAINotConfigured, "AI service not configured", "")
}

func NewAITimeoutError() *StandardError {
	return newError(ErrCodeAITimeout, "AI service timeout - please try again", "")
}

func NewAIRateLimitedError() *StandardError {
	return newError(ErrCodeAIRateLimited, "AI service is busy. Please try again in a moment.", "")
}

// NewAIUnavailableError covers transport failures reaching the provider.
func NewAIUnavailableError(err error) *StandardError {
	return newError(ErrCodeAIUnavailable, "Unable to connect to AI service", errDetails(err))
}

func NewAIAuthFailedError(status int) *StandardError {
	if status == http.StatusForbidden {
		return newError(ErrCodeAIAuthFailed, "AI service access forbidden. Please check your Grok API permissions.", "")
	}
	return newError(ErrCodeAIAuthFailed, "AI service authentication failed. Please check your Grok API key.", "")
}

func NewAIModelNotFoundError() *StandardError {
	return newError(ErrCodeAIModelNotFound, "AI model not found. Please check the model name.", "")
}

// NewAIUpstreamError carries the provider status for any other non-2xx reply.
func NewAIUpstreamError(status int, body string) *StandardError {
	stdErr := newError(ErrCodeAIUpstream, fmt.Sprintf("AI service error (%d)", status), body).
		WithMetadata("upstreamStatus", status)
	stdErr.Retryable = status >= http.StatusInternalServerError
	return stdErr
}

func NewAIBadResponseError(message string, err error) *StandardError {
	return newError(ErrCodeAIBadResponse, message, errDetails(err))
}

func NewProcessStartFailedError(err error) *StandardError {
	return newError(ErrCodeProcessStartFailed, "Failed to start application process", errDetails(err))
}

func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeNotificationSendFailed, fmt.Sprintf("Failed to send %s notification", channel), errDetails(err))
}

// NewInternalError wraps any unexpected failure.
func NewInternalError(message string, err error) *StandardError {
	return newError(ErrCodeInternal, message, errDetails(err))
}

func errDetails(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatus returns the status code a StandardError is reported with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest, ErrCodeMissingFormData, ErrCodeMissingPersonalInfo:
		return http.StatusBadRequest
	case ErrCodeAITimeout:
		return http.StatusRequestTimeout
	case ErrCodeAIRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeAIUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSON writes err as an ErrorBody. Errors that are not StandardErrors
// are reported as INTERNAL_ERROR. withSuccess adds "success": false.
func WriteJSON(w http.ResponseWriter, err error, withSuccess bool) int {
	stdErr := AsStandardError(err)
	status := HTTPStatus(stdErr.Code)

	body := ErrorBody{Error: stdErr.Message, Details: stdErr.Details}
	if withSuccess {
		f := false
		body.Success = &f
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
	return status
}

// ==========================
// 4. Utility Functions
// ==========================

// AsStandardError unwraps err into a StandardError, wrapping it as internal if needed.
func AsStandardError(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError("Internal server error", err)
}

// IsRetryableErrorCode reports whether the client may retry the same request.
func IsRetryableErrorCode(code ErrorCode) bool {
	switch code {
	case ErrCodeAITimeout, ErrCodeAIRateLimited, ErrCodeAIUnavailable,
		ErrCodeProcessStartFailed, ErrCodeNotificationSendFailed:
		return true
	default:
		return false
	}
}

// GetErrorCategory groups codes for metrics labels.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.HasPrefix(codeStr, "AI_"):
		return "AI"
	case strings.Contains(codeStr, "NOTIFICATION") || strings.Contains(codeStr, "PROCESS"):
		return "HANDOFF"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "MISSING"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
