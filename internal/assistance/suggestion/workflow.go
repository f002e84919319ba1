// Package suggestion runs the per-field AI suggestion cycle of step 3:
// request, review, then accept or discard.
package suggestion

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/common/logger"

	"github.com/looplab/fsm"
)

// Suggester produces a suggestion for a request. *Client implements it.
type Suggester interface {
	Suggest(ctx context.Context, req Request) (Response, error)
}

// FieldWriter stores accepted text into the form. The wizard implements it.
type FieldWriter interface {
	WriteField(ctx context.Context, key, text string) error
}

type session struct {
	machine     *fsm.FSM
	lang        i18n.Language
	suggestion  string
	edited      string
	editing     bool
	lastError   string
	lastSuccess string
	category    Category
	debugInfo   string
	// model that produced the last suggestion; kept across clear.
	model string
}

func newSession() *session {
	return &session{
		machine: fsm.NewFSM(
			StateIdle,
			fsm.Events{
				{Name: EventRequest, Src: []string{StateIdle, StateReady, StateFailed}, Dst: StateRequesting},
				{Name: EventSucceed, Src: []string{StateRequesting}, Dst: StateReady},
				{Name: EventFail, Src: []string{StateRequesting}, Dst: StateFailed},
				{Name: EventAccept, Src: []string{StateReady}, Dst: StateIdle},
				{Name: EventDiscard, Src: []string{StateReady}, Dst: StateIdle},
				{Name: EventDismiss, Src: []string{StateFailed}, Dst: StateIdle},
			},
			fsm.Callbacks{},
		),
		lang: i18n.Default,
	}
}

// fire runs event without ctx's cancellation. fsm leaves a transition
// pending forever when its context is already done.
func (s *session) fire(ctx context.Context, event string) error {
	return s.machine.Event(context.WithoutCancel(ctx), event)
}

func (s *session) modelName() string {
	if s.model == "" {
		return fallbackModel
	}
	return s.model
}

func (s *session) modelParam() map[string]string {
	return map[string]string{"model": s.modelName()}
}

func (s *session) clear() {
	s.suggestion = ""
	s.edited = ""
	s.editing = false
	s.lastError = ""
	s.lastSuccess = ""
	s.category = ""
}

// Workflow holds one session per free-text field. Sessions never share
// state; the mutex is not held while a request is on the wire.
type Workflow struct {
	mu         sync.Mutex
	sessions   [fieldCount]*session
	suggester  Suggester
	writer     FieldWriter
	translator i18n.Translator
	logger     logger.Logger
}

func NewWorkflow(suggester Suggester, writer FieldWriter, tr i18n.Translator, log logger.Logger) *Workflow {
	if tr == nil {
		tr = i18n.NewTable()
	}
	w := &Workflow{
		suggester:  suggester,
		writer:     writer,
		translator: tr,
		logger:     logger.Component(log, "suggestion"),
	}
	for i := range w.sessions {
		w.sessions[i] = newSession()
	}
	return w
}

func (w *Workflow) session(field FieldKey) (*session, error) {
	if !field.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownField, int(field))
	}
	return w.sessions[field], nil
}

// Request asks for a suggestion for field and blocks until it arrives or
// fails. A second request for a field that is already requesting returns
// ErrRequestInFlight; other fields are unaffected.
func (w *Workflow) Request(ctx context.Context, field FieldKey, currentValue string, lang i18n.Language) (string, error) {
	w.mu.Lock()
	s, err := w.session(field)
	if err != nil {
		w.mu.Unlock()
		return "", err
	}
	if s.machine.Current() == StateRequesting {
		w.mu.Unlock()
		return "", ErrRequestInFlight
	}
	if err := s.fire(ctx, EventRequest); err != nil {
		w.mu.Unlock()
		return "", err
	}
	s.clear()
	s.lang = lang
	s.debugInfo = fmt.Sprintf("%s %s...", w.translator.T(lang, "ai.generating"), field)
	w.mu.Unlock()

	w.logger.Info("requesting suggestion", map[string]interface{}{
		"field":    field.String(),
		"language": string(lang),
		"hasText":  currentValue != "",
	})

	resp, reqErr := w.suggester.Suggest(ctx, NewRequest(field, currentValue, lang))

	w.mu.Lock()
	defer w.mu.Unlock()

	if reqErr != nil {
		s.category = CategoryOf(reqErr)
		s.lastError = w.translator.T(lang, s.category.MessageKey())
		s.debugInfo = fmt.Sprintf("%s: %s", w.translator.T(lang, "general.error"), s.lastError)
		w.logger.Warn("suggestion failed", map[string]interface{}{
			"field":    field.String(),
			"category": string(s.category),
			"error":    reqErr,
		})
		if err := s.fire(ctx, EventFail); err != nil {
			return "", fmt.Errorf("record failure: %w", err)
		}
		return "", reqErr
	}

	text := resp.Suggestion
	s.model = resp.Model
	s.suggestion = text
	s.edited = text
	s.lastSuccess = w.translator.Tf(lang, "ai.suggestion.success", s.modelParam())
	s.debugInfo = fmt.Sprintf("%s %s %d %s",
		s.modelName(),
		w.translator.T(lang, "ai.generated"),
		utf8.RuneCountInString(text),
		w.translator.T(lang, "ai.characters"),
	)
	if err := s.fire(ctx, EventSucceed); err != nil {
		return "", fmt.Errorf("record suggestion: %w", err)
	}
	return text, nil
}

// ToggleEdit switches the review between the suggestion and its editable
// copy.
func (w *Workflow) ToggleEdit(field FieldKey) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.reviewing(field)
	if err != nil {
		return err
	}
	s.editing = !s.editing
	return nil
}

// SetEditedText replaces the editable copy and turns editing on.
func (w *Workflow) SetEditedText(field FieldKey, text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.reviewing(field)
	if err != nil {
		return err
	}
	s.edited = text
	s.editing = true
	return nil
}

// Accept writes the suggestion, or its edited copy while editing, into
// field and ends the session. If the write fails the session stays in
// review.
func (w *Workflow) Accept(ctx context.Context, field FieldKey) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.reviewing(field)
	if err != nil {
		return "", err
	}
	edited := s.editing
	text := s.edited
	if !edited {
		text = s.suggestion
	}

	if err := w.writer.WriteField(ctx, field.String(), text); err != nil {
		return "", fmt.Errorf("write %s: %w", field, err)
	}
	if err := s.fire(ctx, EventAccept); err != nil {
		return "", err
	}
	s.clear()
	s.debugInfo = w.translator.Tf(s.lang, "ai.suggestion.accepted", s.modelParam())
	w.logger.Info("suggestion accepted", map[string]interface{}{
		"field":  field.String(),
		"edited": edited,
	})
	return text, nil
}

// Discard drops the suggestion without touching the field.
func (w *Workflow) Discard(ctx context.Context, field FieldKey) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.reviewing(field)
	if err != nil {
		return err
	}
	if err := s.fire(ctx, EventDiscard); err != nil {
		return err
	}
	s.clear()
	s.debugInfo = w.translator.Tf(s.lang, "ai.suggestion.discarded", s.modelParam())
	return nil
}

// Dismiss acknowledges a failure and returns the session to idle.
func (w *Workflow) Dismiss(ctx context.Context, field FieldKey) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.session(field)
	if err != nil {
		return err
	}
	if s.machine.Current() != StateFailed {
		return ErrNotFailed
	}
	if err := s.fire(ctx, EventDismiss); err != nil {
		return err
	}
	s.clear()
	s.debugInfo = ""
	return nil
}

func (w *Workflow) reviewing(field FieldKey) (*session, error) {
	s, err := w.session(field)
	if err != nil {
		return nil, err
	}
	if s.machine.Current() != StateReady {
		return nil, ErrNoSuggestion
	}
	return s, nil
}

// Session returns a snapshot of field's session.
func (w *Workflow) Session(field FieldKey) (Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.session(field)
	if err != nil {
		return Session{}, err
	}
	return snapshot(field, s), nil
}

// Sessions returns snapshots of every field in display order.
func (w *Workflow) Sessions() [fieldCount]Session {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out [fieldCount]Session
	for _, k := range FieldKeys {
		out[k] = snapshot(k, w.sessions[k])
	}
	return out
}

func snapshot(field FieldKey, s *session) Session {
	return Session{
		Field:       field,
		State:       s.machine.Current(),
		Suggestion:  s.suggestion,
		Editing:     s.editing,
		EditedText:  s.edited,
		LastError:   s.lastError,
		LastSuccess: s.lastSuccess,
		Category:    s.category,
		DebugInfo:   s.debugInfo,
		Model:       s.model,
	}
}
