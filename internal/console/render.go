package console

import (
	"strings"
	"text/template"

	"financial-assistance/internal/assistance/suggestion"
	"financial-assistance/internal/common/i18n"
	"financial-assistance/internal/form/validation"
	"financial-assistance/internal/form/wizard"
	"financial-assistance/internal/models"
)

var titleKeys = map[models.Section]string{
	models.SectionPersonal:  "personal.title",
	models.SectionFamily:    "family.title",
	models.SectionSituation: "situation.title",
}

var labelKeys = map[string]string{
	models.FieldName:        "personal.name",
	models.FieldNationalID:  "personal.nationalId",
	models.FieldDateOfBirth: "personal.dateOfBirth",
	models.FieldGender:      "personal.gender",
	models.FieldAddress:     "personal.address",
	models.FieldCity:        "personal.city",
	models.FieldState:       "personal.state",
	models.FieldCountry:     "personal.country",
	models.FieldPhone:       "personal.phone",
	models.FieldEmail:       "personal.email",

	models.FieldMaritalStatus:    "family.maritalStatus",
	models.FieldDependents:       "family.dependents",
	models.FieldEmploymentStatus: "family.employmentStatus",
	models.FieldMonthlyIncome:    "family.monthlyIncome",
	models.FieldHousingStatus:    "family.housingStatus",

	models.FieldCurrentFinancialSituation: "situation.currentFinancial",
	models.FieldEmploymentCircumstances:   "situation.employment",
	models.FieldReasonForApplying:         "situation.reason",
}

// optionPrefix is the translation prefix of a select field's option labels.
var optionPrefix = map[string]string{
	models.FieldGender:           "personal.gender.",
	models.FieldMaritalStatus:    "family.maritalStatus.",
	models.FieldEmploymentStatus: "family.employmentStatus.",
	models.FieldHousingStatus:    "family.housingStatus.",
}

type fieldView struct {
	Key     string
	Label   string
	Value   string
	Options string
	Error   string
	Assist  string
}

type stepView struct {
	StepLabel string
	Step      int
	Total     int
	Title     string
	Fields    []fieldView
	Error     string
}

type doneView struct {
	Success       string
	IDLabel       string
	ApplicationID string
	Confirmation  string
}

var stepTemplate = template.Must(template.New("step").Parse(
	`{{.StepLabel}} {{.Step}}/{{.Total}}: {{.Title}}
{{range .Fields}}  [{{.Key}}] {{.Label}}: {{.Value}}{{if .Options}}  ({{.Options}}){{end}}
{{if .Error}}      ! {{.Error}}
{{end}}{{if .Assist}}      * {{.Assist}}
{{end}}{{end}}{{if .Error}}! {{.Error}}
{{end}}`))

var doneTemplate = template.Must(template.New("done").Parse(
	`{{.Success}}
{{.IDLabel}}: {{.ApplicationID}}
{{.Confirmation}}
`))

// stepOf builds the view of the step the snapshot is on. sessions may be
// nil outside step 3.
func stepOf(snap wizard.Snapshot, sessions map[string]suggestion.Session, tr i18n.Translator) stepView {
	lang := snap.Language
	section := snap.Section()
	data := snap.FormData

	errs := make(map[string]validation.FieldError, len(snap.FieldErrors))
	for _, fe := range snap.FieldErrors {
		errs[fe.Field] = fe
	}

	view := stepView{
		StepLabel: tr.T(lang, "nav.step"),
		Step:      snap.CurrentStep,
		Total:     len(models.Sections),
		Title:     tr.T(lang, titleKeys[section]),
		Error:     snap.SubmissionError,
	}

	for _, key := range models.SectionFields[section] {
		value, _ := data.Get(section, key)
		fv := fieldView{
			Key:   key,
			Label: tr.T(lang, labelKeys[key]),
			Value: displayValue(key, value),
		}
		if opts := models.FieldOptions(key); len(opts) > 0 {
			labels := make([]string, len(opts))
			for i, o := range opts {
				labels[i] = o + "=" + tr.T(lang, optionPrefix[key]+o)
			}
			fv.Options = strings.Join(labels, ", ")
		}
		if fe, ok := errs[key]; ok {
			fv.Error = fe.Message(tr, lang)
		}
		if s, ok := sessions[key]; ok {
			fv.Assist = assistLine(s, tr, lang)
		}
		view.Fields = append(view.Fields, fv)
	}
	return view
}

func displayValue(key, value string) string {
	switch key {
	case models.FieldNationalID:
		return validation.FormatNationalID(value)
	case models.FieldPhone:
		return validation.FormatPhone(value)
	}
	return value
}

func assistLine(s suggestion.Session, tr i18n.Translator, lang i18n.Language) string {
	switch s.State {
	case suggestion.StateRequesting:
		return tr.T(lang, "ai.generating")
	case suggestion.StateReady:
		label := tr.T(lang, "ai.suggestion")
		if s.Editing {
			label += " (" + tr.T(lang, "ai.edit") + ")"
		}
		return label + ": " + s.Text()
	case suggestion.StateFailed:
		return s.LastError + " " + tr.T(lang, "ai.tryAgainLater")
	}
	return ""
}
