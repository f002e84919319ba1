// internal/assistance/gateway/models.go
package gateway

import (
	"errors"
	"fmt"
)

// Reason classifies a failed submission.
type Reason string

const (
	ReasonMissingData       Reason = "MISSING_DATA"
	ReasonServerError       Reason = "SERVER_ERROR"
	ReasonMalformedResponse Reason = "MALFORMED_RESPONSE"
	ReasonNetwork           Reason = "NETWORK"
	ReasonTimeout           Reason = "TIMEOUT"
)

// Error is returned by Gateway.Submit for every failure.
type Error struct {
	Reason     Reason
	StatusCode int
	// Message is the server's error text, if it sent one.
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := "submit application: " + string(e.Reason)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// MessageKey returns the translation key shown to the user.
func (e *Error) MessageKey() string {
	switch e.Reason {
	case ReasonMissingData:
		return "validation.pleaseComplete"
	case ReasonMalformedResponse:
		return "submission.communicationError"
	case ReasonNetwork:
		return "submission.networkError"
	case ReasonTimeout:
		return "submission.timeout"
	}
	return "general.error"
}

// ReasonOf returns the reason of err, or "" when err is not an *Error.
func ReasonOf(err error) Reason {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Reason
	}
	return ""
}

// Result is the body of /api/submit-application.
type Result struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"applicationId"`
	Message       string `json:"message"`
	Timestamp     string `json:"timestamp"`
	Error         string `json:"error"`
	Details       string `json:"details"`
}
