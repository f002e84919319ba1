// internal/models/application.go
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrEmptyValue    = errors.New("empty value")
	ErrInvalidNumber = errors.New("invalid number")
)

// FormData is the full application as persisted locally and posted to
// /api/submit-application.
type FormData struct {
	PersonalInfo          PersonalInfo          `json:"personalInfo"`
	FamilyFinancialInfo   FamilyFinancialInfo   `json:"familyFinancialInfo"`
	SituationDescriptions SituationDescriptions `json:"situationDescriptions"`
}

type PersonalInfo struct {
	Name        string `json:"name"`
	NationalID  string `json:"nationalId"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

type FamilyFinancialInfo struct {
	MaritalStatus    string          `json:"maritalStatus"`
	Dependents       int             `json:"dependents"`
	EmploymentStatus string          `json:"employmentStatus"`
	MonthlyIncome    decimal.Decimal `json:"monthlyIncome"`
	HousingStatus    string          `json:"housingStatus"`
}

// MarshalJSON writes monthlyIncome as a JSON number rather than the quoted
// string decimal uses by default. Decoding accepts both.
func (f FamilyFinancialInfo) MarshalJSON() ([]byte, error) {
	type alias FamilyFinancialInfo
	return json.Marshal(struct {
		alias
		MonthlyIncome json.Number `json:"monthlyIncome"`
	}{
		alias:         alias(f),
		MonthlyIncome: json.Number(f.MonthlyIncome.String()),
	})
}

type SituationDescriptions struct {
	CurrentFinancialSituation string `json:"currentFinancialSituation"`
	EmploymentCircumstances   string `json:"employmentCircumstances"`
	ReasonForApplying         string `json:"reasonForApplying"`
}

// NewFormData returns the empty form a new application starts with.
func NewFormData() FormData {
	return FormData{
		FamilyFinancialInfo: FamilyFinancialInfo{MonthlyIncome: decimal.Zero},
	}
}

// Equal compares two forms, treating monthly incomes as numbers.
func (f FormData) Equal(other FormData) bool {
	a, b := f.FamilyFinancialInfo, other.FamilyFinancialInfo
	return f.PersonalInfo == other.PersonalInfo &&
		f.SituationDescriptions == other.SituationDescriptions &&
		a.MaritalStatus == b.MaritalStatus &&
		a.Dependents == b.Dependents &&
		a.EmploymentStatus == b.EmploymentStatus &&
		a.HousingStatus == b.HousingStatus &&
		a.MonthlyIncome.Equal(b.MonthlyIncome)
}

// Get returns the textual value of section.key.
func (f *FormData) Get(section Section, key string) (string, error) {
	switch section {
	case SectionPersonal:
		if p := f.personalField(key); p != nil {
			return *p, nil
		}
	case SectionFamily:
		switch key {
		case FieldDependents:
			return strconv.Itoa(f.FamilyFinancialInfo.Dependents), nil
		case FieldMonthlyIncome:
			return f.FamilyFinancialInfo.MonthlyIncome.String(), nil
		}
		if p := f.familyField(key); p != nil {
			return *p, nil
		}
	case SectionSituation:
		if p := f.situationField(key); p != nil {
			return *p, nil
		}
	}
	return "", fmt.Errorf("%w: %s.%s", ErrUnknownField, section, key)
}

// Set assigns a textual value to section.key. Numeric fields are parsed;
// negative numbers are stored so that validation can report them.
func (f *FormData) Set(section Section, key, value string) error {
	switch section {
	case SectionPersonal:
		if p := f.personalField(key); p != nil {
			*p = value
			return nil
		}
	case SectionFamily:
		switch key {
		case FieldDependents:
			n, err := parseNumber(value, strconv.Atoi)
			if err != nil {
				return err
			}
			f.FamilyFinancialInfo.Dependents = n
			return nil
		case FieldMonthlyIncome:
			d, err := parseNumber(value, decimal.NewFromString)
			if err != nil {
				return err
			}
			f.FamilyFinancialInfo.MonthlyIncome = d
			return nil
		}
		if p := f.familyField(key); p != nil {
			*p = value
			return nil
		}
	case SectionSituation:
		if p := f.situationField(key); p != nil {
			*p = value
			return nil
		}
	}
	return fmt.Errorf("%w: %s.%s", ErrUnknownField, section, key)
}

func parseNumber[T any](value string, parse func(string) (T, error)) (T, error) {
	var zero T
	value = strings.TrimSpace(value)
	if value == "" {
		return zero, ErrEmptyValue
	}
	n, err := parse(value)
	if err != nil {
		return zero, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	return n, nil
}

func (f *FormData) personalField(key string) *string {
	p := &f.PersonalInfo
	switch key {
	case FieldName:
		return &p.Name
	case FieldNationalID:
		return &p.NationalID
	case FieldDateOfBirth:
		return &p.DateOfBirth
	case FieldGender:
		return &p.Gender
	case FieldAddress:
		return &p.Address
	case FieldCity:
		return &p.City
	case FieldState:
		return &p.State
	case FieldCountry:
		return &p.Country
	case FieldPhone:
		return &p.Phone
	case FieldEmail:
		return &p.Email
	}
	return nil
}

func (f *FormData) familyField(key string) *string {
	p := &f.FamilyFinancialInfo
	switch key {
	case FieldMaritalStatus:
		return &p.MaritalStatus
	case FieldEmploymentStatus:
		return &p.EmploymentStatus
	case FieldHousingStatus:
		return &p.HousingStatus
	}
	return nil
}

func (f *FormData) situationField(key string) *string {
	p := &f.SituationDescriptions
	switch key {
	case FieldCurrentFinancialSituation:
		return &p.CurrentFinancialSituation
	case FieldEmploymentCircumstances:
		return &p.EmploymentCircumstances
	case FieldReasonForApplying:
		return &p.ReasonForApplying
	}
	return nil
}
