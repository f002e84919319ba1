package wizard

import (
	"errors"
	"fmt"

	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/form/validation"
	"financial-assistance/internal/models"
)

// FSM states. The wizard is at step 3 while submitting.
const (
	StateStep1      = "step1"
	StateStep2      = "step2"
	StateStep3      = "step3"
	StateSubmitting = "submitting"
	StateSubmitted  = "submitted"
)

// FSM events.
const (
	EventNext            = "next"
	EventPrevious        = "previous"
	EventSubmit          = "submit"
	EventSubmitSucceeded = "submit_succeeded"
	EventSubmitFailed    = "submit_failed"
)

var stepStates = [...]string{StateStep1, StateStep2, StateStep3}

var (
	ErrTerminal         = errors.New("application already submitted")
	ErrSubmitInProgress = errors.New("submission in progress")
	ErrNoNextStep       = errors.New("already at the last step")
	ErrNoPreviousStep   = errors.New("already at the first step")
	ErrNotLastStep      = errors.New("submit is only allowed from the last step")
)

// FieldUpdate is one edit of one field.
type FieldUpdate struct {
	Section models.Section
	Key     string
	Value   string
}

// ValidationError blocks a transition because fields of Step are invalid.
type ValidationError struct {
	Step   int
	Report validation.Report
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d has %d invalid field(s)", e.Step, len(e.Report.Errors))
}

// InputError rejects an edit that cannot be stored, such as a non-numeric
// income. The form is left unchanged.
type InputError struct {
	Section models.Section
	Field   string
	Result  validation.Result
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Section, e.Field, e.Result.Reason)
}

// Snapshot is a copy of the wizard state for rendering.
type Snapshot struct {
	CurrentStep     int
	Submitted       bool
	IsSubmitting    bool
	FormData        models.FormData
	SubmissionError string
	FieldErrors     []validation.FieldError
	ApplicationID   string
	Language        i18n.Language
}

// Section returns the section shown at the current step.
func (s Snapshot) Section() models.Section {
	if s.CurrentStep < 1 || s.CurrentStep > len(models.Sections) {
		return models.SectionSituation
	}
	return models.Sections[s.CurrentStep-1]
}

// messageKeyer is implemented by submission errors that know their message.
type messageKeyer interface {
	MessageKey() string
}
