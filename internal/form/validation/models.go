package validation

import (
	"regexp"

	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/models"
)

// Reason is why a field was rejected.
type Reason string

const (
	ReasonRequired          Reason = "REQUIRED"
	ReasonTooShort          Reason = "TOO_SHORT"
	ReasonInvalidFormat     Reason = "INVALID_FORMAT"
	ReasonInvalidPrefix     Reason = "INVALID_PREFIX"
	ReasonBirthYearMismatch Reason = "BIRTH_YEAR_MISMATCH"
	ReasonInvalidDate       Reason = "INVALID_DATE"
	ReasonAgeOutOfRange     Reason = "AGE_OUT_OF_RANGE"
	ReasonNegative          Reason = "NEGATIVE"
	ReasonInvalidOption     Reason = "INVALID_OPTION"
)

// Result is the outcome of one validator. The zero value is valid.
type Result struct {
	Reason     Reason
	MessageKey string
	Params     map[string]string
}

// OK is the valid result.
var OK = Result{}

func (r Result) Valid() bool {
	return r.Reason == ""
}

func invalid(reason Reason, key string) Result {
	return Result{Reason: reason, MessageKey: key}
}

// FieldError is an invalid Result attached to a field.
type FieldError struct {
	Section    models.Section    `json:"section"`
	Field      string            `json:"field"`
	Reason     Reason            `json:"reason"`
	MessageKey string            `json:"messageKey"`
	Params     map[string]string `json:"params,omitempty"`
}

// Message renders the error in lang.
func (e FieldError) Message(tr i18n.Translator, lang i18n.Language) string {
	return tr.Tf(lang, e.MessageKey, e.Params)
}

// Report lists the failing fields of one or more sections in display order.
type Report struct {
	Errors []FieldError `json:"errors,omitempty"`
}

func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

// Field returns the error recorded for key, if any.
func (r *Report) Field(key string) (FieldError, bool) {
	for _, e := range r.Errors {
		if e.Field == key {
			return e, true
		}
	}
	return FieldError{}, false
}

func (r *Report) add(section models.Section, field string, res Result) {
	if res.Valid() {
		return
	}
	r.Errors = append(r.Errors, FieldError{
		Section:    section,
		Field:      field,
		Reason:     res.Reason,
		MessageKey: res.MessageKey,
		Params:     res.Params,
	})
}

// Merge appends other's errors.
func (r *Report) Merge(other Report) {
	r.Errors = append(r.Errors, other.Errors...)
}

const (
	dateLayout = "2006-01-02"

	nationalIDDigits = 15
	nationalIDPrefix = "784"

	minPhoneDigits = 10
	maxPhoneDigits = 15

	minAge = 18
	maxAge = 100

	minNameLength     = 2
	minAddressLength  = 10
	minRegionLength   = 2
	minFreeTextLength = 10
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)
