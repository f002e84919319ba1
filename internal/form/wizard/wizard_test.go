package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/common/logger"
	"financial-assistance/internal/form/storage"
	"financial-assistance/internal/form/validation"
	"financial-assistance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

// ==========================
// Fakes
// ==========================

type fakeSubmitter struct {
	appID string
	err   error
	calls int
	got   models.FormData
	// started and release let a test hold a submission open.
	started chan struct{}
	release chan struct{}
	// untilDone makes Submit block until its context ends.
	untilDone bool
}

func (f *fakeSubmitter) Submit(ctx context.Context, data models.FormData) (string, error) {
	f.calls++
	f.got = data
	if f.started != nil {
		close(f.started)
		<-f.release
	}
	if f.untilDone {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.appID, f.err
}

type keyedError struct{ key string }

func (e *keyedError) Error() string      { return "submission failed: " + e.key }
func (e *keyedError) MessageKey() string { return e.key }

// ==========================
// Helpers
// ==========================

var validValues = map[models.Section]map[string]string{
	models.SectionPersonal: {
		models.FieldName:        "Amal Hassan",
		models.FieldNationalID:  "784-1995-1234567-1",
		models.FieldDateOfBirth: "1995-06-01",
		models.FieldGender:      "female",
		models.FieldAddress:     "Building 12, Al Wasl Road",
		models.FieldCity:        "Dubai",
		models.FieldState:       "Dubai",
		models.FieldCountry:     "UAE",
		models.FieldPhone:       "+971 50 123 4567",
		models.FieldEmail:       "amal@example.ae",
	},
	models.SectionFamily: {
		models.FieldMaritalStatus:    "married",
		models.FieldDependents:       "2",
		models.FieldEmploymentStatus: "unemployed",
		models.FieldMonthlyIncome:    "1500",
		models.FieldHousingStatus:    "rented",
	},
	models.SectionSituation: {
		models.FieldCurrentFinancialSituation: "Behind on rent for two months.",
		models.FieldEmploymentCircumstances:   "Laid off in March after restructuring.",
		models.FieldReasonForApplying:         "Need support until I find new work.",
	},
}

func newWizard(t *testing.T, store storage.KeyValueStore, sub Submitter) *Wizard {
	t.Helper()
	log := logger.NewNoOpLogger()
	return New(context.Background(), Options{
		Storage:    storage.NewAdapter(store, log),
		Submitter:  sub,
		Translator: i18n.NewTable(),
		Language:   i18n.English,
		Now:        func() time.Time { return fixedNow },
		Logger:     log,
	})
}

func fill(t *testing.T, w *Wizard, section models.Section) {
	t.Helper()
	for key, value := range validValues[section] {
		require.NoError(t, w.UpdateField(context.Background(), FieldUpdate{Section: section, Key: key, Value: value}))
	}
}

// advanceToStep3 fills steps 1 and 2 and moves to step 3.
func advanceToStep3(t *testing.T, w *Wizard) {
	t.Helper()
	ctx := context.Background()
	fill(t, w, models.SectionPersonal)
	require.NoError(t, w.Next(ctx))
	fill(t, w, models.SectionFamily)
	require.NoError(t, w.Next(ctx))
	require.Equal(t, 3, w.State().CurrentStep)
}

// ==========================
// Navigation
// ==========================

func TestNew_StartsAtStepOneWithEmptyForm(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})

	s := w.State()
	assert.Equal(t, 1, s.CurrentStep)
	assert.False(t, s.Submitted)
	assert.False(t, s.IsSubmitting)
	assert.True(t, s.FormData.Equal(models.NewFormData()))
	assert.Equal(t, models.SectionPersonal, s.Section())
	assert.Equal(t, i18n.English, s.Language)
}

func TestNext_BlockedByInvalidStep(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})

	err := w.Next(context.Background())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.Step)
	assert.Len(t, verr.Report.Errors, len(models.SectionFields[models.SectionPersonal]))

	s := w.State()
	assert.Equal(t, 1, s.CurrentStep)
	assert.Equal(t, "Please complete all required fields correctly", s.SubmissionError)
	assert.NotEmpty(t, s.FieldErrors)
}

func TestNext_BlockedByOneInvalidField(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})
	ctx := context.Background()
	fill(t, w, models.SectionPersonal)
	require.NoError(t, w.UpdateField(ctx, FieldUpdate{
		Section: models.SectionPersonal, Key: models.FieldNationalID, Value: "784-1990-1234567-1",
	}))

	err := w.Next(ctx)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Report.Errors, 1)
	assert.Equal(t, validation.ReasonBirthYearMismatch, verr.Report.Errors[0].Reason)
	assert.Equal(t, 1, w.State().CurrentStep)
}

func TestNext_AdvancesByExactlyOne(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})
	ctx := context.Background()

	fill(t, w, models.SectionPersonal)
	require.NoError(t, w.Next(ctx))
	assert.Equal(t, 2, w.State().CurrentStep)

	fill(t, w, models.SectionFamily)
	require.NoError(t, w.Next(ctx))
	assert.Equal(t, 3, w.State().CurrentStep)

	assert.ErrorIs(t, w.Next(ctx), ErrNoNextStep)
	assert.Equal(t, 3, w.State().CurrentStep)
}

func TestPrevious(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})
	ctx := context.Background()

	assert.ErrorIs(t, w.Previous(ctx), ErrNoPreviousStep)

	advanceToStep3(t, w)

	// Leaving step 3 does not require it to be valid.
	require.NoError(t, w.Previous(ctx))
	assert.Equal(t, 2, w.State().CurrentStep)
	require.NoError(t, w.Previous(ctx))
	assert.Equal(t, 1, w.State().CurrentStep)
}

func TestPrevious_ClearsSubmissionError(t *testing.T) {
	sub := &fakeSubmitter{err: &keyedError{key: "general.error"}}
	w := newWizard(t, storage.NewMemoryStore(), sub)
	ctx := context.Background()
	advanceToStep3(t, w)
	fill(t, w, models.SectionSituation)

	require.Error(t, w.Submit(ctx))
	require.NotEmpty(t, w.State().SubmissionError)

	require.NoError(t, w.Previous(ctx))
	assert.Empty(t, w.State().SubmissionError)
}

func TestFieldErrors_RefreshOnEdit(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})
	ctx := context.Background()
	require.Error(t, w.Next(ctx))
	before := len(w.State().FieldErrors)

	require.NoError(t, w.UpdateField(ctx, FieldUpdate{
		Section: models.SectionPersonal, Key: models.FieldName, Value: "Amal Hassan",
	}))

	s := w.State()
	assert.Len(t, s.FieldErrors, before-1)
	for _, fe := range s.FieldErrors {
		assert.NotEqual(t, models.FieldName, fe.Field)
	}
}

// ==========================
// Field updates
// ==========================

func TestUpdateField_WritesThrough(t *testing.T) {
	store := storage.NewMemoryStore()
	w := newWizard(t, store, &fakeSubmitter{})
	ctx := context.Background()

	require.NoError(t, w.UpdateField(ctx, FieldUpdate{
		Section: models.SectionPersonal, Key: models.FieldCity, Value: "Sharjah",
	}))

	restored := newWizard(t, store, &fakeSubmitter{})
	s := restored.State()
	assert.Equal(t, "Sharjah", s.FormData.PersonalInfo.City)
	assert.Equal(t, 1, s.CurrentStep)
}

func TestUpdateField_RejectsUnparseableNumbers(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})
	ctx := context.Background()

	tests := []struct {
		name   string
		value  string
		reason validation.Reason
	}{
		{name: "empty", value: " ", reason: validation.ReasonRequired},
		{name: "garbage", value: "a lot", reason: validation.ReasonInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.UpdateField(ctx, FieldUpdate{
				Section: models.SectionFamily, Key: models.FieldMonthlyIncome, Value: tt.value,
			})
			var inErr *InputError
			require.True(t, errors.As(err, &inErr))
			assert.Equal(t, tt.reason, inErr.Result.Reason)
			assert.True(t, w.State().FormData.FamilyFinancialInfo.MonthlyIncome.IsZero())
		})
	}
}

func TestUpdateField_UnknownField(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})
	err := w.UpdateField(context.Background(), FieldUpdate{Section: models.SectionPersonal, Key: "salary", Value: "1"})
	assert.ErrorIs(t, err, models.ErrUnknownField)
}

func TestWriteField_OnlyTouchesTargetField(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})
	ctx := context.Background()
	fill(t, w, models.SectionSituation)

	require.NoError(t, w.WriteField(ctx, models.FieldEmploymentCircumstances, "Contract ended in June."))

	d := w.State().FormData.SituationDescriptions
	assert.Equal(t, "Contract ended in June.", d.EmploymentCircumstances)
	assert.Equal(t, validValues[models.SectionSituation][models.FieldCurrentFinancialSituation], d.CurrentFinancialSituation)
	assert.Equal(t, validValues[models.SectionSituation][models.FieldReasonForApplying], d.ReasonForApplying)
}

func TestValidateField(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})
	ctx := context.Background()

	res := w.ValidateField(models.SectionPersonal, models.FieldEmail)
	assert.Equal(t, validation.ReasonRequired, res.Reason)

	require.NoError(t, w.UpdateField(ctx, FieldUpdate{Section: models.SectionPersonal, Key: models.FieldEmail, Value: "a@b.co"}))
	assert.True(t, w.ValidateField(models.SectionPersonal, models.FieldEmail).Valid())
}

// ==========================
// Submission
// ==========================

func TestSubmit_OnlyFromLastStep(t *testing.T) {
	sub := &fakeSubmitter{appID: "APP-1"}
	w := newWizard(t, storage.NewMemoryStore(), sub)

	assert.ErrorIs(t, w.Submit(context.Background()), ErrNotLastStep)
	assert.Zero(t, sub.calls)
}

func TestSubmit_BlockedByInvalidStepThree(t *testing.T) {
	sub := &fakeSubmitter{appID: "APP-1"}
	w := newWizard(t, storage.NewMemoryStore(), sub)
	ctx := context.Background()
	advanceToStep3(t, w)
	require.NoError(t, w.WriteField(ctx, models.FieldReasonForApplying, "short"))

	err := w.Submit(ctx)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 3, verr.Step)
	assert.Zero(t, sub.calls)
	assert.False(t, w.State().IsSubmitting)
}

func TestSubmit_Success(t *testing.T) {
	store := storage.NewMemoryStore()
	sub := &fakeSubmitter{appID: "APP-123"}
	w := newWizard(t, store, sub)
	ctx := context.Background()
	advanceToStep3(t, w)
	fill(t, w, models.SectionSituation)
	want := w.State().FormData

	require.NoError(t, w.Submit(ctx))

	assert.Equal(t, 1, sub.calls)
	assert.True(t, want.Equal(sub.got))

	s := w.State()
	assert.True(t, s.Submitted)
	assert.False(t, s.IsSubmitting)
	assert.Equal(t, "APP-123", s.ApplicationID)
	assert.Empty(t, s.SubmissionError)
	assert.True(t, s.FormData.Equal(models.NewFormData()))

	_, err := store.Get(ctx, storage.FormKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSubmit_TerminalStateRejectsEverything(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{appID: "APP-9"})
	ctx := context.Background()
	advanceToStep3(t, w)
	fill(t, w, models.SectionSituation)
	require.NoError(t, w.Submit(ctx))

	assert.ErrorIs(t, w.Submit(ctx), ErrTerminal)
	assert.ErrorIs(t, w.Next(ctx), ErrTerminal)
	assert.ErrorIs(t, w.Previous(ctx), ErrTerminal)
	assert.ErrorIs(t, w.UpdateField(ctx, FieldUpdate{
		Section: models.SectionPersonal, Key: models.FieldName, Value: "Someone Else",
	}), ErrTerminal)
}

func TestSubmit_FailureKeepsFormIntact(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		lang    i18n.Language
		wantMsg string
	}{
		{
			name:    "keyed error in english",
			err:     &keyedError{key: "submission.timeout"},
			lang:    i18n.English,
			wantMsg: "The submission timed out. Please try again.",
		},
		{
			name:    "keyed error in arabic",
			err:     &keyedError{key: "submission.timeout"},
			lang:    i18n.Arabic,
			wantMsg: "انتهت مهلة تقديم الطلب. يرجى المحاولة مرة أخرى.",
		},
		{
			name:    "plain error falls back to generic message",
			err:     errors.New("boom"),
			lang:    i18n.English,
			wantMsg: "An error occurred. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			w := newWizard(t, store, &fakeSubmitter{err: tt.err})
			ctx := context.Background()
			require.NoError(t, w.SetLanguage(ctx, tt.lang))
			advanceToStep3(t, w)
			fill(t, w, models.SectionSituation)
			before := w.State().FormData

			err := w.Submit(ctx)
			assert.ErrorIs(t, err, tt.err)

			s := w.State()
			assert.Equal(t, 3, s.CurrentStep)
			assert.False(t, s.Submitted)
			assert.False(t, s.IsSubmitting)
			assert.Equal(t, tt.wantMsg, s.SubmissionError)
			assert.True(t, before.Equal(s.FormData))

			_, err = store.Get(ctx, storage.FormKey)
			assert.NoError(t, err)
		})
	}
}

func TestSubmit_RetryAfterFailure(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("offline")}
	w := newWizard(t, storage.NewMemoryStore(), sub)
	ctx := context.Background()
	advanceToStep3(t, w)
	fill(t, w, models.SectionSituation)

	require.Error(t, w.Submit(ctx))
	sub.err = nil
	sub.appID = "APP-2"
	require.NoError(t, w.Submit(ctx))

	assert.Equal(t, 2, sub.calls)
	assert.Equal(t, "APP-2", w.State().ApplicationID)
}

func TestSubmit_IsSubmittingDuringCall(t *testing.T) {
	sub := &fakeSubmitter{
		appID:   "APP-5",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	w := newWizard(t, storage.NewMemoryStore(), sub)
	ctx := context.Background()
	advanceToStep3(t, w)
	fill(t, w, models.SectionSituation)

	done := make(chan error, 1)
	go func() { done <- w.Submit(ctx) }()
	<-sub.started

	s := w.State()
	assert.True(t, s.IsSubmitting)
	assert.Equal(t, 3, s.CurrentStep)
	assert.ErrorIs(t, w.Submit(ctx), ErrSubmitInProgress)
	assert.ErrorIs(t, w.UpdateField(ctx, FieldUpdate{
		Section: models.SectionPersonal, Key: models.FieldName, Value: "Changed Name",
	}), ErrSubmitInProgress)

	close(sub.release)
	require.NoError(t, <-done)
	assert.False(t, w.State().IsSubmitting)
	assert.True(t, w.State().Submitted)
}

func TestSubmit_ExpiredContextReturnsToStepThree(t *testing.T) {
	store := storage.NewMemoryStore()
	sub := &fakeSubmitter{untilDone: true}
	w := newWizard(t, store, sub)
	advanceToStep3(t, w)
	fill(t, w, models.SectionSituation)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, w.Submit(ctx), context.DeadlineExceeded)

	s := w.State()
	assert.Equal(t, 3, s.CurrentStep)
	assert.False(t, s.IsSubmitting)
	assert.False(t, s.Submitted)
	assert.Equal(t, "An error occurred. Please try again.", s.SubmissionError)
	require.NoError(t, w.UpdateField(context.Background(), FieldUpdate{
		Section: models.SectionPersonal, Key: models.FieldCity, Value: "Sharjah",
	}))

	sub.untilDone = false
	sub.appID = "APP-7"
	require.NoError(t, w.Submit(context.Background()))
	assert.Equal(t, "APP-7", w.State().ApplicationID)
}

func TestNavigation_CanceledContextDoesNotWedge(t *testing.T) {
	w := newWizard(t, storage.NewMemoryStore(), &fakeSubmitter{})
	fill(t, w, models.SectionPersonal)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, w.Next(canceled))
	assert.Equal(t, 2, w.State().CurrentStep)
	require.NoError(t, w.Previous(canceled))
	assert.Equal(t, 1, w.State().CurrentStep)

	require.NoError(t, w.Next(context.Background()))
	assert.Equal(t, 2, w.State().CurrentStep)
}

// ==========================
// Language
// ==========================

func TestSetLanguage_PersistsChoice(t *testing.T) {
	store := storage.NewMemoryStore()
	w := newWizard(t, store, &fakeSubmitter{})
	ctx := context.Background()

	require.NoError(t, w.SetLanguage(ctx, i18n.Arabic))
	assert.Equal(t, i18n.Arabic, w.Language())

	restored := newWizard(t, store, &fakeSubmitter{})
	assert.Equal(t, i18n.Arabic, restored.Language())

	assert.Error(t, w.SetLanguage(ctx, i18n.Language("fr")))
	assert.Equal(t, i18n.Arabic, w.Language())
}

func TestNew_IgnoresMalformedSavedForm(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), storage.FormKey, []byte("{not json")))

	w := newWizard(t, store, &fakeSubmitter{})
	assert.True(t, w.State().FormData.Equal(models.NewFormData()))
}
