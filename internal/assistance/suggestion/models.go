// internal/assistance/suggestion/models.go
package suggestion

import (
	"errors"
	"fmt"

	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/models"
)

// FieldKey indexes the three free-text fields that can request a suggestion.
type FieldKey int

const (
	CurrentFinancialSituation FieldKey = iota
	EmploymentCircumstances
	ReasonForApplying

	fieldCount
)

// FieldKeys in display order.
var FieldKeys = [fieldCount]FieldKey{CurrentFinancialSituation, EmploymentCircumstances, ReasonForApplying}

// String returns the JSON name of the field.
func (k FieldKey) String() string {
	switch k {
	case CurrentFinancialSituation:
		return models.FieldCurrentFinancialSituation
	case EmploymentCircumstances:
		return models.FieldEmploymentCircumstances
	case ReasonForApplying:
		return models.FieldReasonForApplying
	}
	return fmt.Sprintf("FieldKey(%d)", int(k))
}

func (k FieldKey) valid() bool {
	return k >= 0 && k < fieldCount
}

// ParseFieldKey accepts a field's JSON name.
func ParseFieldKey(s string) (FieldKey, bool) {
	for _, k := range FieldKeys {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// fallbackModel names the service when the server reports no model.
const fallbackModel = "Grok"

// Session states.
const (
	StateIdle       = "idle"
	StateRequesting = "requesting"
	StateReady      = "ready"
	StateFailed     = "failed"
)

// Session events.
const (
	EventRequest = "request"
	EventSucceed = "succeed"
	EventFail    = "fail"
	EventAccept  = "accept"
	EventDiscard = "discard"
	EventDismiss = "dismiss"
)

var (
	ErrUnknownField    = errors.New("unknown suggestion field")
	ErrRequestInFlight = errors.New("suggestion request already in flight for field")
	ErrNoSuggestion    = errors.New("no suggestion to review")
	ErrNotFailed       = errors.New("no failure to dismiss")
)

// Category classifies a failed suggestion request.
type Category string

const (
	CategoryBusy           Category = "BUSY"
	CategoryTimeout        Category = "TIMEOUT"
	CategoryUnavailable    Category = "UNAVAILABLE"
	CategoryNetwork        Category = "NETWORK"
	CategoryMalformed      Category = "MALFORMED"
	CategoryInvalidRequest Category = "INVALID_REQUEST"
	CategoryUnknown        Category = "UNKNOWN"
)

// MessageKey returns the translation key shown to the user.
func (c Category) MessageKey() string {
	switch c {
	case CategoryBusy:
		return "ai.rateLimited"
	case CategoryTimeout:
		return "ai.timeout"
	case CategoryUnavailable:
		return "ai.serviceUnavailable"
	case CategoryNetwork:
		return "ai.networkError"
	case CategoryMalformed:
		return "ai.malformed"
	case CategoryInvalidRequest:
		return "ai.invalidRequest"
	}
	return "ai.error"
}

// RequestError is a categorized failure of Client.Suggest.
type RequestError struct {
	Category   Category
	StatusCode int
	// Detail is the server's error text or a short diagnosis; it is logged,
	// never shown.
	Detail string
	Err    error
}

func (e *RequestError) Error() string {
	msg := string(e.Category)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) MessageKey() string { return e.Category.MessageKey() }

// CategoryOf returns the category of err, or CategoryUnknown.
func CategoryOf(err error) Category {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Category
	}
	return CategoryUnknown
}

// Request is the body posted to /api/ai-assistance.
type Request struct {
	Prompt       string        `json:"prompt"`
	CurrentValue string        `json:"currentValue"`
	Language     i18n.Language `json:"language"`
}

// Response is the success body of /api/ai-assistance.
type Response struct {
	Suggestion string `json:"suggestion"`
	Success    bool   `json:"success"`
	Model      string `json:"model"`
}

// Session is a snapshot of one field's suggestion cycle.
type Session struct {
	Field      FieldKey
	State      string
	Suggestion string
	Editing    bool
	EditedText string
	// LastError and LastSuccess are localized user messages.
	LastError   string
	LastSuccess string
	Category    Category
	DebugInfo   string
	// Model is the model reported by the server for the last suggestion.
	Model string
}

// Text returns what Accept would write.
func (s Session) Text() string {
	if s.Editing {
		return s.EditedText
	}
	return s.Suggestion
}
