package console

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"financial-assistance/internal/assistance/suggestion"
	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/form/storage"
	"financial-assistance/internal/form/wizard"
	"financial-assistance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Fakes
// ==========================

type fakeSubmitter struct {
	calls int
	got   models.FormData
}

func (f *fakeSubmitter) Submit(ctx context.Context, data models.FormData) (string, error) {
	f.calls++
	f.got = data
	return "APP-1792143000000-abc123xyz", nil
}

type fakeSuggester struct {
	text string
	err  error
	got  []suggestion.Request
}

func (f *fakeSuggester) Suggest(ctx context.Context, req suggestion.Request) (suggestion.Response, error) {
	f.got = append(f.got, req)
	if f.err != nil {
		return suggestion.Response{}, f.err
	}
	return suggestion.Response{Suggestion: f.text, Success: true, Model: "grok-3"}, nil
}

// ==========================
// Helpers
// ==========================

type harness struct {
	console   *Console
	out       *bytes.Buffer
	store     *storage.MemoryStore
	submitter *fakeSubmitter
	suggester *fakeSuggester
}

func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	log := logger.NewTestLogger(t)
	tr := i18n.NewTable()
	h := &harness{
		out:       &bytes.Buffer{},
		store:     storage.NewMemoryStore(),
		submitter: &fakeSubmitter{},
		suggester: &fakeSuggester{text: "I need temporary help covering rent while I look for work."},
	}
	form := wizard.New(context.Background(), wizard.Options{
		Storage:    storage.NewAdapter(h.store, log),
		Submitter:  h.submitter,
		Translator: tr,
		Language:   i18n.English,
		Now:        func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) },
		Logger:     log,
	})
	assistant := suggestion.NewWorkflow(h.suggester, form, tr, log)
	h.console = New(form, assistant, tr, strings.NewReader(input), h.out, log)
	return h
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

var step1 = []string{
	"set name Amal Hassan",
	"set nationalId 784199512345671",
	"set dateOfBirth 1995-06-01",
	"set gender female",
	"set address Building 12, Al Wasl Road",
	"set city Dubai",
	"set state Dubai",
	"set country UAE",
	"set phone +971 50 123 4567",
	"set email amal@example.ae",
	"next",
}

var step2 = []string{
	"set maritalStatus married",
	"set dependents 2",
	"set employmentStatus unemployed",
	"set monthlyIncome 1500",
	"set housingStatus rented",
	"next",
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// ==========================
// Flow Tests
// ==========================

func TestConsole_CompleteApplication(t *testing.T) {
	lines := concat(step1, step2, []string{
		"set currentFinancialSituation Behind on rent for two months.",
		"set employmentCircumstances Laid off in March after restructuring.",
		"ai reasonForApplying",
		"accept reasonForApplying",
		"submit",
		"quit",
	})
	h := newHarness(t, script(lines...))

	require.NoError(t, h.console.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Step 1/3: Personal Information")
	assert.Contains(t, out, "784-1995-1234567-1")
	assert.Contains(t, out, "Step 2/3: Family & Financial Information")
	assert.Contains(t, out, "Step 3/3: Situation Descriptions")
	assert.Contains(t, out, "grok-3 generated")
	assert.Contains(t, out, "grok-3 suggestion accepted and applied")
	assert.Contains(t, out, "Application submitted successfully!")
	assert.Contains(t, out, "Application ID: APP-1792143000000-abc123xyz")

	require.Equal(t, 1, h.submitter.calls)
	assert.Equal(t, "I need temporary help covering rent while I look for work.", h.submitter.got.SituationDescriptions.ReasonForApplying)
	assert.Equal(t, "784199512345671", h.submitter.got.PersonalInfo.NationalID)

	require.Len(t, h.suggester.got, 1)
	assert.Equal(t, i18n.English, h.suggester.got[0].Language)

	_, err := h.store.Get(context.Background(), storage.FormKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestConsole_BlockedNextShowsFieldErrors(t *testing.T) {
	h := newHarness(t, script("next"))

	require.NoError(t, h.console.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "! This field is required")
	assert.Contains(t, out, "! Please complete all required fields correctly")
	assert.NotContains(t, out, "Step 2/3")
}

func TestConsole_InvalidNumber(t *testing.T) {
	h := newHarness(t, script(concat(step1, []string{"set dependents two"})...))

	require.NoError(t, h.console.Run(context.Background()))

	assert.Contains(t, h.out.String(), "! dependents: Please enter a valid number")
}

func TestConsole_UnknownFieldForStep(t *testing.T) {
	h := newHarness(t, script("set dependents 2", "frobnicate"))

	require.NoError(t, h.console.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, `unknown field "dependents" on this step`)
	assert.Contains(t, out, `unknown command "frobnicate"`)
}

func TestConsole_SwitchLanguage(t *testing.T) {
	h := newHarness(t, script("lang ar", "lang fr"))

	require.NoError(t, h.console.Run(context.Background()))

	tr := i18n.NewTable()
	out := h.out.String()
	assert.Contains(t, out, fmt.Sprintf("%s 1/3: %s", tr.T(i18n.Arabic, "nav.step"), tr.T(i18n.Arabic, "personal.title")))
	assert.Contains(t, out, "usage: lang en|ar")

	raw, err := h.store.Get(context.Background(), storage.LanguageKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ar")
}

// ==========================
// Assistant Tests
// ==========================

func TestConsole_AssistOnlyOnLastStep(t *testing.T) {
	h := newHarness(t, script("ai reasonForApplying", "ai name"))

	require.NoError(t, h.console.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "writing assistance is available on step 3")
	assert.Contains(t, out, `no writing assistance for "name"`)
	assert.Empty(t, h.suggester.got)
}

func TestConsole_AssistFailureIsLocalized(t *testing.T) {
	lines := concat(step1, step2, []string{"ai currentFinancialSituation", "debug", "dismiss currentFinancialSituation"})
	h := newHarness(t, script(lines...))
	h.suggester.err = &suggestion.RequestError{Category: suggestion.CategoryBusy, StatusCode: 429}

	require.NoError(t, h.console.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Too many requests. Please wait a moment and try again. You can continue writing manually or try again later.")
	assert.Contains(t, out, "Grok-3 AI Debug Information")
	assert.Contains(t, out, "Model: None")
	assert.NotContains(t, out, "BUSY")
}

func TestConsole_DebugShowsReportedModel(t *testing.T) {
	lines := concat(step1, step2, []string{"ai reasonForApplying", "debug"})
	h := newHarness(t, script(lines...))

	require.NoError(t, h.console.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "AI Service: Grok | Model: grok-3 | Language: en")
	assert.NotContains(t, out, "Model: None")
}

func TestConsole_EditSuggestionBeforeAccepting(t *testing.T) {
	lines := concat(step1, step2, []string{
		"ai employmentCircumstances",
		"edit employmentCircumstances Laid off in March, looking for work since.",
		"accept employmentCircumstances",
		"show",
	})
	h := newHarness(t, script(lines...))

	require.NoError(t, h.console.Run(context.Background()))

	assert.Contains(t, h.out.String(), "[employmentCircumstances] Employment Circumstances: Laid off in March, looking for work since.")
}

func TestConsole_StopsOnCanceledContext(t *testing.T) {
	h := newHarness(t, script("show"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.console.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
