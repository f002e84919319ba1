// Package wizard drives the three-step application form: field edits,
// step transitions gated by validation, and the final submission.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/form/storage"
	"financial-assistance/internal/form/validation"
	"financial-assistance/internal/models"

	"github.com/looplab/fsm"
)

// Submitter sends a complete form and returns the application id.
type Submitter interface {
	Submit(ctx context.Context, data models.FormData) (string, error)
}

// Options configures a Wizard. Storage and Submitter are required.
type Options struct {
	Storage    *storage.Adapter
	Submitter  Submitter
	Translator i18n.Translator
	// Language is used when no language has been saved.
	Language i18n.Language
	Now      func() time.Time
	Logger   logger.Logger
}

// Wizard owns the form state. All methods are safe for concurrent use; the
// mutex serializes every write and the write-through save that follows it.
type Wizard struct {
	mu sync.Mutex

	machine    *fsm.FSM
	data       models.FormData
	lang       i18n.Language
	errKey     string
	errParams  map[string]string
	report     validation.Report
	appID      string
	storage    *storage.Adapter
	submitter  Submitter
	translator i18n.Translator
	now        func() time.Time
	log        logger.Logger
}

// New builds a wizard at step 1 and restores any saved form and language.
func New(ctx context.Context, opts Options) *Wizard {
	w := &Wizard{
		data:       models.NewFormData(),
		lang:       opts.Language,
		storage:    opts.Storage,
		submitter:  opts.Submitter,
		translator: opts.Translator,
		now:        opts.Now,
		log:        logger.Component(opts.Logger, "wizard"),
	}
	if w.translator == nil {
		w.translator = i18n.NewTable()
	}
	if w.now == nil {
		w.now = time.Now
	}
	if w.storage == nil {
		w.storage = storage.NewAdapter(nil, w.log)
	}
	if _, ok := i18n.ParseLanguage(string(w.lang)); !ok {
		w.lang = i18n.Default
	}

	w.machine = fsm.NewFSM(
		StateStep1,
		fsm.Events{
			{Name: EventNext, Src: []string{StateStep1}, Dst: StateStep2},
			{Name: EventNext, Src: []string{StateStep2}, Dst: StateStep3},
			{Name: EventPrevious, Src: []string{StateStep2}, Dst: StateStep1},
			{Name: EventPrevious, Src: []string{StateStep3}, Dst: StateStep2},
			{Name: EventSubmit, Src: []string{StateStep3}, Dst: StateSubmitting},
			{Name: EventSubmitSucceeded, Src: []string{StateSubmitting}, Dst: StateSubmitted},
			{Name: EventSubmitFailed, Src: []string{StateSubmitting}, Dst: StateStep3},
		},
		fsm.Callbacks{
			"before_" + EventNext:   w.guardStep,
			"before_" + EventSubmit: w.guardStep,
		},
	)

	if saved, ok := w.storage.Load(ctx); ok {
		w.data = saved
		w.log.Info("restored saved application", nil)
	}
	if lang, ok := w.storage.LoadLanguage(ctx); ok {
		w.lang = lang
	}
	return w
}

// guardStep cancels a transition when the step being left has invalid
// fields. It runs inside machine.Event, so w.mu is already held.
func (w *Wizard) guardStep(_ context.Context, e *fsm.Event) {
	step := stepOf(e.Src)
	report := validation.ValidateSection(models.Sections[step-1], w.data, w.now())
	if !report.Valid() {
		e.Cancel(&ValidationError{Step: step, Report: report})
	}
}

func stepOf(state string) int {
	for i, s := range stepStates {
		if s == state {
			return i + 1
		}
	}
	if state == StateSubmitting || state == StateSubmitted {
		return len(stepStates)
	}
	return 1
}

// State returns a snapshot of the current state.
func (w *Wizard) State() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Wizard) snapshotLocked() Snapshot {
	current := w.machine.Current()
	s := Snapshot{
		CurrentStep:   stepOf(current),
		Submitted:     current == StateSubmitted,
		IsSubmitting:  current == StateSubmitting,
		FormData:      w.data,
		ApplicationID: w.appID,
		Language:      w.lang,
	}
	if w.errKey != "" {
		s.SubmissionError = w.translator.Tf(w.lang, w.errKey, w.errParams)
	}
	if len(w.report.Errors) > 0 {
		s.FieldErrors = append([]validation.FieldError(nil), w.report.Errors...)
	}
	return s
}

// Language returns the active language.
func (w *Wizard) Language() i18n.Language {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lang
}

// SetLanguage switches and persists the UI language.
func (w *Wizard) SetLanguage(ctx context.Context, lang i18n.Language) error {
	if _, ok := i18n.ParseLanguage(string(lang)); !ok {
		return fmt.Errorf("unsupported language %q", lang)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lang = lang
	w.storage.SaveLanguage(ctx, lang)
	return nil
}

// UpdateField applies one edit and saves the form.
func (w *Wizard) UpdateField(ctx context.Context, u FieldUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkWritableLocked(); err != nil {
		return err
	}

	if err := w.data.Set(u.Section, u.Key, u.Value); err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyValue):
			return &InputError{Section: u.Section, Field: u.Key, Result: validation.Result{
				Reason: validation.ReasonRequired, MessageKey: "validation.required",
			}}
		case errors.Is(err, models.ErrInvalidNumber):
			return &InputError{Section: u.Section, Field: u.Key, Result: validation.Result{
				Reason: validation.ReasonInvalidFormat, MessageKey: "validation.number.format",
			}}
		default:
			return err
		}
	}

	w.revalidateLocked(u.Section)
	w.storage.Save(ctx, w.data)
	return nil
}

// WriteField stores an accepted AI suggestion into a situation field.
func (w *Wizard) WriteField(ctx context.Context, key, text string) error {
	return w.UpdateField(ctx, FieldUpdate{Section: models.SectionSituation, Key: key, Value: text})
}

// ValidateField returns the live validation result of one field.
func (w *Wizard) ValidateField(section models.Section, key string) validation.Result {
	w.mu.Lock()
	defer w.mu.Unlock()
	return validation.ValidateField(section, key, w.data, w.now())
}

// revalidateLocked refreshes the inline errors of a section that already
// failed a transition, so fixed fields stop being reported.
func (w *Wizard) revalidateLocked(section models.Section) {
	if len(w.report.Errors) == 0 || w.report.Errors[0].Section != section {
		return
	}
	w.report = validation.ValidateSection(section, w.data, w.now())
}

func (w *Wizard) checkWritableLocked() error {
	switch w.machine.Current() {
	case StateSubmitted:
		return ErrTerminal
	case StateSubmitting:
		return ErrSubmitInProgress
	}
	return nil
}

// Next validates the current step and advances by one.
func (w *Wizard) Next(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fireLocked(ctx, EventNext); err != nil {
		return err
	}
	w.clearErrorsLocked()
	return nil
}

// Previous goes back one step without validating.
func (w *Wizard) Previous(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.fireLocked(ctx, EventPrevious); err != nil {
		return err
	}
	w.clearErrorsLocked()
	return nil
}

// Submit validates step 3, sends the form and, on success, clears the saved
// copy and moves to the terminal state. On failure the form is untouched and
// the wizard stays at step 3 with a localized error.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if err := w.fireLocked(ctx, EventSubmit); err != nil {
		w.mu.Unlock()
		return err
	}
	w.clearErrorsLocked()
	data := w.data
	w.mu.Unlock()

	w.log.Info("submitting application", nil)
	appID, submitErr := w.submitter.Submit(ctx, data)

	w.mu.Lock()
	defer w.mu.Unlock()

	if submitErr != nil {
		w.errKey = submissionMessageKey(submitErr)
		w.log.Warn("submission failed", map[string]interface{}{"error": submitErr})
		if err := w.eventLocked(ctx, EventSubmitFailed); err != nil {
			return fmt.Errorf("submission failed: %w (state: %v)", submitErr, err)
		}
		return submitErr
	}

	if err := w.eventLocked(ctx, EventSubmitSucceeded); err != nil {
		return fmt.Errorf("record submission: %w", err)
	}
	w.appID = appID
	w.data = models.NewFormData()
	w.storage.Clear(context.WithoutCancel(ctx))
	w.log.Info("application submitted", map[string]interface{}{"applicationId": appID})
	return nil
}

func submissionMessageKey(err error) string {
	var keyed messageKeyer
	if errors.As(err, &keyed) {
		return keyed.MessageKey()
	}
	return "general.error"
}

// fireLocked runs event and converts fsm errors into this package's errors.
func (w *Wizard) fireLocked(ctx context.Context, event string) error {
	if err := w.checkWritableLocked(); err != nil {
		return err
	}

	err := w.eventLocked(ctx, event)
	if err == nil {
		return nil
	}

	var canceled fsm.CanceledError
	if errors.As(err, &canceled) {
		var verr *ValidationError
		if errors.As(canceled.Err, &verr) {
			w.report = verr.Report
			w.errKey = "validation.pleaseComplete"
			w.errParams = nil
			return verr
		}
		return canceled.Err
	}

	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		switch event {
		case EventNext:
			return ErrNoNextStep
		case EventPrevious:
			return ErrNoPreviousStep
		case EventSubmit:
			return ErrNotLastStep
		}
	}
	return err
}

// eventLocked fires event without ctx's cancellation. fsm leaves a
// transition pending forever when its context is already done.
func (w *Wizard) eventLocked(ctx context.Context, event string) error {
	return w.machine.Event(context.WithoutCancel(ctx), event)
}

func (w *Wizard) clearErrorsLocked() {
	w.errKey = ""
	w.errParams = nil
	w.report = validation.Report{}
}
