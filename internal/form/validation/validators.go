// Package validation implements the per-field rules that gate wizard steps.
// Every validator is pure; the current time is passed in.
package validation

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"financial-assistance/internal/models"

	"github.com/shopspring/decimal"
)

// Digits strips everything but 0-9.
func Digits(value string) string {
	return nonDigitRegex.ReplaceAllString(value, "")
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func Required(value string) Result {
	if isBlank(value) {
		return invalid(ReasonRequired, "validation.required")
	}
	return OK
}

// MinLength checks the trimmed length in characters, not bytes.
func MinLength(value string, min int, messageKey string) Result {
	if res := Required(value); !res.Valid() {
		return res
	}
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		return invalid(ReasonTooShort, messageKey)
	}
	return OK
}

func Name(value string) Result {
	return MinLength(value, minNameLength, "validation.name.tooShort")
}

func Address(value string) Result {
	return MinLength(value, minAddressLength, "validation.address.tooShort")
}

// Region validates city, state and country, which share a minimum length.
func Region(field, value string) Result {
	return MinLength(value, minRegionLength, "validation."+field+".tooShort")
}

func Email(value string) Result {
	if res := Required(value); !res.Valid() {
		return res
	}
	if !emailRegex.MatchString(strings.TrimSpace(value)) {
		return invalid(ReasonInvalidFormat, "validation.email.format")
	}
	return OK
}

// Phone accepts 10 to 15 digits; separators are ignored.
func Phone(value string) Result {
	if res := Required(value); !res.Valid() {
		return res
	}
	n := len(Digits(value))
	if n < minPhoneDigits || n > maxPhoneDigits {
		return invalid(ReasonInvalidFormat, "validation.phone.format")
	}
	return OK
}

// BirthYear returns the year of a YYYY-MM-DD date.
func BirthYear(dateOfBirth string) (int, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(dateOfBirth))
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}

// DateOfBirth requires an age between 18 and 100, where age is the
// difference of calendar years only.
func DateOfBirth(value string, now time.Time) Result {
	if res := Required(value); !res.Valid() {
		return res
	}
	year, ok := BirthYear(value)
	if !ok {
		return invalid(ReasonInvalidDate, "validation.dateOfBirth.invalid")
	}
	age := now.Year() - year
	if age < minAge || age > maxAge {
		return invalid(ReasonAgeOutOfRange, "validation.dateOfBirth.age")
	}
	return OK
}

// NationalID checks, in order: presence, 15 digits, the 784 prefix, and
// that digits 4-7 equal the birth year when dateOfBirth parses.
func NationalID(value, dateOfBirth string) Result {
	if res := Required(value); !res.Valid() {
		return res
	}
	digits := Digits(value)
	if len(digits) != nationalIDDigits {
		return invalid(ReasonInvalidFormat, "validation.nationalId.format")
	}
	if !strings.HasPrefix(digits, nationalIDPrefix) {
		return invalid(ReasonInvalidPrefix, "validation.nationalId.mustStartWith784")
	}
	if year, ok := BirthYear(dateOfBirth); ok {
		yearStr := strconv.Itoa(year)
		if !strings.HasPrefix(digits, nationalIDPrefix+yearStr) {
			res := invalid(ReasonBirthYearMismatch, "validation.nationalId.birthYearMismatch")
			res.Params = map[string]string{"year": yearStr}
			return res
		}
	}
	return OK
}

// Option requires value to be one of options.
func Option(value string, options []string) Result {
	if res := Required(value); !res.Valid() {
		return res
	}
	for _, o := range options {
		if value == o {
			return OK
		}
	}
	return invalid(ReasonInvalidOption, "validation.option")
}

func Dependents(n int) Result {
	if n < 0 {
		return invalid(ReasonNegative, "validation.dependents.min")
	}
	return OK
}

func MonthlyIncome(d decimal.Decimal) Result {
	if d.IsNegative() {
		return invalid(ReasonNegative, "validation.monthlyIncome.min")
	}
	return OK
}

// FreeText validates the situation descriptions.
func FreeText(value string) Result {
	return MinLength(value, minFreeTextLength, "validation.textarea.tooShort")
}

// ==========================
// Section validators
// ==========================

func ValidatePersonal(p models.PersonalInfo, now time.Time) Report {
	var r Report
	s := models.SectionPersonal
	r.add(s, models.FieldName, Name(p.Name))
	r.add(s, models.FieldNationalID, NationalID(p.NationalID, p.DateOfBirth))
	r.add(s, models.FieldDateOfBirth, DateOfBirth(p.DateOfBirth, now))
	r.add(s, models.FieldGender, Option(p.Gender, models.GenderOptions))
	r.add(s, models.FieldAddress, Address(p.Address))
	r.add(s, models.FieldCity, Region(models.FieldCity, p.City))
	r.add(s, models.FieldState, Region(models.FieldState, p.State))
	r.add(s, models.FieldCountry, Region(models.FieldCountry, p.Country))
	r.add(s, models.FieldPhone, Phone(p.Phone))
	r.add(s, models.FieldEmail, Email(p.Email))
	return r
}

func ValidateFamily(f models.FamilyFinancialInfo) Report {
	var r Report
	s := models.SectionFamily
	r.add(s, models.FieldMaritalStatus, Option(f.MaritalStatus, models.MaritalStatusOptions))
	r.add(s, models.FieldDependents, Dependents(f.Dependents))
	r.add(s, models.FieldEmploymentStatus, Option(f.EmploymentStatus, models.EmploymentStatusOptions))
	r.add(s, models.FieldMonthlyIncome, MonthlyIncome(f.MonthlyIncome))
	r.add(s, models.FieldHousingStatus, Option(f.HousingStatus, models.HousingStatusOptions))
	return r
}

func ValidateSituation(d models.SituationDescriptions) Report {
	var r Report
	s := models.SectionSituation
	r.add(s, models.FieldCurrentFinancialSituation, FreeText(d.CurrentFinancialSituation))
	r.add(s, models.FieldEmploymentCircumstances, FreeText(d.EmploymentCircumstances))
	r.add(s, models.FieldReasonForApplying, FreeText(d.ReasonForApplying))
	return r
}

// ValidateSection runs the validators of one section.
func ValidateSection(section models.Section, form models.FormData, now time.Time) Report {
	switch section {
	case models.SectionPersonal:
		return ValidatePersonal(form.PersonalInfo, now)
	case models.SectionFamily:
		return ValidateFamily(form.FamilyFinancialInfo)
	case models.SectionSituation:
		return ValidateSituation(form.SituationDescriptions)
	}
	return Report{}
}

// ValidateAll runs every section in order.
func ValidateAll(form models.FormData, now time.Time) Report {
	var r Report
	for _, s := range models.Sections {
		r.Merge(ValidateSection(s, form, now))
	}
	return r
}

// ValidateField runs the rule for a single field against the whole form,
// so cross-field rules see their related values.
func ValidateField(section models.Section, key string, form models.FormData, now time.Time) Result {
	report := ValidateSection(section, form, now)
	if e, ok := report.Field(key); ok {
		return Result{Reason: e.Reason, MessageKey: e.MessageKey, Params: e.Params}
	}
	return OK
}
