// Package console is a line-oriented front end for the application wizard
// and the writing assistant.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"financial-assistance/internal/assistance/suggestion"
	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/form/wizard"
	"financial-assistance/internal/models"
)

// Form is the part of the wizard the console drives.
type Form interface {
	State() wizard.Snapshot
	UpdateField(ctx context.Context, u wizard.FieldUpdate) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	Submit(ctx context.Context) error
	SetLanguage(ctx context.Context, lang i18n.Language) error
}

// Assistant is the suggestion workflow.
type Assistant interface {
	Request(ctx context.Context, field suggestion.FieldKey, currentValue string, lang i18n.Language) (string, error)
	SetEditedText(field suggestion.FieldKey, text string) error
	Accept(ctx context.Context, field suggestion.FieldKey) (string, error)
	Discard(ctx context.Context, field suggestion.FieldKey) error
	Dismiss(ctx context.Context, field suggestion.FieldKey) error
	Session(field suggestion.FieldKey) (suggestion.Session, error)
}

const usage = `commands:
  show                      redraw the current step
  set <field> <value>       change a field of the current step
  next | back | submit      navigate
  ai <field>                ask for a suggestion (step 3)
  edit <field> <text>       edit the pending suggestion
  accept|discard <field>    apply or drop the pending suggestion
  dismiss <field>           clear a failed suggestion
  debug                     show assistant status
  lang <en|ar>              switch language
  quit
`

type Console struct {
	form       Form
	assistant  Assistant
	translator i18n.Translator
	in         *bufio.Scanner
	out        io.Writer
	logger     logger.Logger
}

func New(form Form, assistant Assistant, tr i18n.Translator, in io.Reader, out io.Writer, log logger.Logger) *Console {
	if tr == nil {
		tr = i18n.NewTable()
	}
	return &Console{
		form:       form,
		assistant:  assistant,
		translator: tr,
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logger.Component(log, "console"),
	}
}

// Run renders the form and executes commands until quit, end of input or
// ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.render()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return c.in.Err()
		}
		if c.Execute(ctx, c.in.Text()) {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the session should end.
func (c *Console) Execute(ctx context.Context, line string) bool {
	cmd, args := split(line)
	switch cmd {
	case "":
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(c.out, usage)
	case "show":
		c.render()
	case "set":
		c.set(ctx, args)
	case "next":
		c.navigate(c.form.Next(ctx))
	case "back", "previous":
		c.navigate(c.form.Previous(ctx))
	case "submit":
		c.submit(ctx)
	case "lang":
		c.language(ctx, args)
	case "ai", "edit", "accept", "discard", "dismiss":
		c.assist(ctx, cmd, args)
	case "debug":
		c.debug()
	default:
		fmt.Fprintf(c.out, "unknown command %q, type help\n", cmd)
	}
	return false
}

func split(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(rest)
}

func (c *Console) set(ctx context.Context, args string) {
	key, value, _ := strings.Cut(args, " ")
	snap := c.form.State()
	section := snap.Section()
	if !hasField(section, key) {
		fmt.Fprintf(c.out, "unknown field %q on this step\n", key)
		return
	}
	if err := c.form.UpdateField(ctx, wizard.FieldUpdate{Section: section, Key: key, Value: value}); err != nil {
		c.report(err)
		return
	}
	c.render()
}

func hasField(section models.Section, key string) bool {
	for _, k := range models.SectionFields[section] {
		if k == key {
			return true
		}
	}
	return false
}

func (c *Console) navigate(err error) {
	if err != nil {
		c.report(err)
	}
	c.render()
}

func (c *Console) submit(ctx context.Context) {
	lang := c.form.State().Language
	fmt.Fprintln(c.out, c.translator.T(lang, "submission.inProgress"))
	if err := c.form.Submit(ctx); err != nil {
		c.logger.Debug("submit returned", map[string]interface{}{"error": err})
		var verr *wizard.ValidationError
		if !errors.As(err, &verr) && c.form.State().SubmissionError == "" {
			c.report(err)
		}
	}
	c.render()
}

func (c *Console) language(ctx context.Context, args string) {
	lang, ok := i18n.ParseLanguage(strings.ToLower(args))
	if !ok {
		fmt.Fprintln(c.out, "usage: lang en|ar")
		return
	}
	if err := c.form.SetLanguage(ctx, lang); err != nil {
		c.report(err)
		return
	}
	c.render()
}

func (c *Console) assist(ctx context.Context, cmd, args string) {
	name, text, _ := strings.Cut(args, " ")
	field, ok := suggestion.ParseFieldKey(name)
	if !ok {
		fmt.Fprintf(c.out, "no writing assistance for %q\n", name)
		return
	}

	snap := c.form.State()
	var err error
	switch cmd {
	case "ai":
		if snap.Section() != models.SectionSituation || snap.Submitted {
			fmt.Fprintln(c.out, "writing assistance is available on step 3")
			return
		}
		data := snap.FormData
		current, _ := data.Get(models.SectionSituation, field.String())
		fmt.Fprintln(c.out, c.translator.T(snap.Language, "ai.generating"))
		_, err = c.assistant.Request(ctx, field, current, snap.Language)
	case "edit":
		err = c.assistant.SetEditedText(field, text)
	case "accept":
		_, err = c.assistant.Accept(ctx, field)
	case "discard":
		err = c.assistant.Discard(ctx, field)
	case "dismiss":
		err = c.assistant.Dismiss(ctx, field)
	}

	if err != nil {
		var reqErr *suggestion.RequestError
		if !errors.As(err, &reqErr) {
			c.report(err)
		}
	} else if s, serr := c.assistant.Session(field); serr == nil && s.DebugInfo != "" && cmd != "edit" {
		fmt.Fprintln(c.out, s.DebugInfo)
	}
	c.render()
}

func (c *Console) debug() {
	lang := c.form.State().Language
	t := func(key string) string { return c.translator.T(lang, key) }

	var sessions []suggestion.Session
	model := t("ai.debug.none")
	for _, field := range suggestion.FieldKeys {
		s, err := c.assistant.Session(field)
		if err != nil {
			continue
		}
		if s.Model != "" {
			model = s.Model
		}
		sessions = append(sessions, s)
	}

	fmt.Fprintln(c.out, t("ai.debug.title"))
	fmt.Fprintf(c.out, "  %s: Grok | %s: %s | %s: %s\n", t("ai.debug.service"), t("ai.debug.model"), model, t("ai.debug.language"), lang)
	for _, s := range sessions {
		field := s.Field
		status := s.DebugInfo
		if status == "" {
			status = t("ai.debug.ready")
		}
		hasSuggestion := t("ai.debug.none")
		if s.State == suggestion.StateReady {
			hasSuggestion = fmt.Sprintf("%d %s", len([]rune(s.Text())), t("ai.characters"))
		}
		fmt.Fprintf(c.out, "  %s: %s | %s: %v | %s: %s | %s: %s\n",
			t("ai.debug.activeField"), field,
			t("ai.debug.loading"), s.State == suggestion.StateRequesting,
			t("ai.debug.hasSuggestion"), hasSuggestion,
			t("ai.debug.status"), status)
	}
	fmt.Fprintln(c.out, t("ai.debug.note"))
}

// report prints a localized message for err.
func (c *Console) report(err error) {
	lang := c.form.State().Language
	var inputErr *wizard.InputError
	switch {
	case errors.As(err, &inputErr):
		fmt.Fprintf(c.out, "! %s: %s\n", inputErr.Field, c.translator.Tf(lang, inputErr.Result.MessageKey, inputErr.Result.Params))
	case errors.Is(err, wizard.ErrTerminal):
		fmt.Fprintln(c.out, "! "+c.translator.T(lang, "submission.alreadySubmitted"))
	case errors.Is(err, wizard.ErrSubmitInProgress):
		fmt.Fprintln(c.out, "! "+c.translator.T(lang, "submission.inProgress"))
	case errors.Is(err, suggestion.ErrRequestInFlight):
		fmt.Fprintln(c.out, "! "+c.translator.T(lang, "ai.inProgress"))
	default:
		var verr *wizard.ValidationError
		if errors.As(err, &verr) {
			// Rendered inline with the step.
			return
		}
		fmt.Fprintln(c.out, "! "+err.Error())
	}
}

func (c *Console) render() {
	snap := c.form.State()
	if snap.Submitted {
		_ = doneTemplate.Execute(c.out, doneView{
			Success:       c.translator.T(snap.Language, "general.success"),
			IDLabel:       c.translator.T(snap.Language, "submission.applicationId"),
			ApplicationID: snap.ApplicationID,
			Confirmation:  c.translator.T(snap.Language, "submission.confirmationMessage"),
		})
		return
	}

	var sessions map[string]suggestion.Session
	if snap.Section() == models.SectionSituation && c.assistant != nil {
		sessions = make(map[string]suggestion.Session, len(suggestion.FieldKeys))
		for _, field := range suggestion.FieldKeys {
			if s, err := c.assistant.Session(field); err == nil {
				sessions[field.String()] = s
			}
		}
	}

	if err := stepTemplate.Execute(c.out, stepOf(snap, sessions, c.translator)); err != nil {
		c.logger.Error("render failed", map[string]interface{}{"error": err})
	}
}
