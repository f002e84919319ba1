package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForm() FormData {
	f := NewFormData()
	f.PersonalInfo = PersonalInfo{
		Name:        "Amal Hassan",
		NationalID:  "784-1995-1234567-1",
		DateOfBirth: "1995-06-01",
		Gender:      "female",
		Address:     "Building 12, Al Wasl Road",
		City:        "Dubai",
		State:       "Dubai",
		Country:     "UAE",
		Phone:       "+971 50 123 4567",
		Email:       "amal@example.ae",
	}
	f.FamilyFinancialInfo = FamilyFinancialInfo{
		MaritalStatus:    "married",
		Dependents:       2,
		EmploymentStatus: "unemployed",
		MonthlyIncome:    decimal.RequireFromString("1500.50"),
		HousingStatus:    "rented",
	}
	f.SituationDescriptions = SituationDescriptions{
		CurrentFinancialSituation: "Behind on rent for two months.",
		EmploymentCircumstances:   "Laid off in March after restructuring.",
		ReasonForApplying:         "Need support until I find new work.",
	}
	return f
}

func TestFormData_JSONWireFormat(t *testing.T) {
	data, err := json.Marshal(sampleForm())
	require.NoError(t, err)

	var raw map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "784-1995-1234567-1", raw["personalInfo"]["nationalId"])
	assert.Equal(t, 1500.5, raw["familyFinancialInfo"]["monthlyIncome"])
	assert.Equal(t, float64(2), raw["familyFinancialInfo"]["dependents"])
	assert.Contains(t, raw["situationDescriptions"], "reasonForApplying")
}

func TestFormData_DecodeIncomeFromStringOrNumber(t *testing.T) {
	for _, body := range []string{
		`{"familyFinancialInfo":{"monthlyIncome":2500}}`,
		`{"familyFinancialInfo":{"monthlyIncome":"2500.00"}}`,
	} {
		var f FormData
		require.NoError(t, json.Unmarshal([]byte(body), &f))
		assert.True(t, f.FamilyFinancialInfo.MonthlyIncome.Equal(decimal.NewFromInt(2500)), body)
	}
}

func TestFormData_RoundTrip(t *testing.T) {
	original := sampleForm()
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded FormData
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded))
}

func TestFormData_Equal(t *testing.T) {
	a := sampleForm()
	b := sampleForm()
	b.FamilyFinancialInfo.MonthlyIncome = decimal.RequireFromString("1500.5000")
	assert.True(t, a.Equal(b))

	b.SituationDescriptions.ReasonForApplying = "changed"
	assert.False(t, a.Equal(b))
}

func TestFormData_SetAndGet(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		key     string
		value   string
		want    string
		wantErr error
	}{
		{name: "personal text", section: SectionPersonal, key: FieldCity, value: "Abu Dhabi", want: "Abu Dhabi"},
		{name: "family enum", section: SectionFamily, key: FieldHousingStatus, value: "owned", want: "owned"},
		{name: "dependents", section: SectionFamily, key: FieldDependents, value: " 3 ", want: "3"},
		{name: "negative dependents kept", section: SectionFamily, key: FieldDependents, value: "-1", want: "-1"},
		{name: "income", section: SectionFamily, key: FieldMonthlyIncome, value: "0", want: "0"},
		{name: "income empty", section: SectionFamily, key: FieldMonthlyIncome, value: "", wantErr: ErrEmptyValue},
		{name: "income garbage", section: SectionFamily, key: FieldMonthlyIncome, value: "lots", wantErr: ErrInvalidNumber},
		{name: "dependents decimal", section: SectionFamily, key: FieldDependents, value: "1.5", wantErr: ErrInvalidNumber},
		{name: "situation", section: SectionSituation, key: FieldReasonForApplying, value: "text", want: "text"},
		{name: "unknown key", section: SectionPersonal, key: "salary", value: "1", wantErr: ErrUnknownField},
		{name: "wrong section", section: SectionSituation, key: FieldName, value: "x", wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormData()
			err := f.Set(tt.section, tt.key, tt.value)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			got, err := f.Get(tt.section, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSectionFieldsAreAddressable(t *testing.T) {
	f := NewFormData()
	for section, keys := range SectionFields {
		for _, key := range keys {
			_, err := f.Get(section, key)
			assert.NoError(t, err, "%s.%s", section, key)
		}
	}
}

func TestParseSection(t *testing.T) {
	s, ok := ParseSection("familyFinancialInfo")
	assert.True(t, ok)
	assert.Equal(t, SectionFamily, s)

	_, ok = ParseSection("other")
	assert.False(t, ok)
}
