package models

// Section names one of the three parts of FormData, using its JSON name.
type Section string

const (
	SectionPersonal  Section = "personalInfo"
	SectionFamily    Section = "familyFinancialInfo"
	SectionSituation Section = "situationDescriptions"
)

// Sections in wizard order.
var Sections = []Section{SectionPersonal, SectionFamily, SectionSituation}

// ParseSection accepts a section's JSON name.
func ParseSection(s string) (Section, bool) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, true
		}
	}
	return "", false
}

// Field keys, as they appear in JSON.
const (
	FieldName        = "name"
	FieldNationalID  = "nationalId"
	FieldDateOfBirth = "dateOfBirth"
	FieldGender      = "gender"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldState       = "state"
	FieldCountry     = "country"
	FieldPhone       = "phone"
	FieldEmail       = "email"

	FieldMaritalStatus    = "maritalStatus"
	FieldDependents       = "dependents"
	FieldEmploymentStatus = "employmentStatus"
	FieldMonthlyIncome    = "monthlyIncome"
	FieldHousingStatus    = "housingStatus"

	FieldCurrentFinancialSituation = "currentFinancialSituation"
	FieldEmploymentCircumstances   = "employmentCircumstances"
	FieldReasonForApplying         = "reasonForApplying"
)

// SectionFields lists every field of each section in display order.
var SectionFields = map[Section][]string{
	SectionPersonal: {
		FieldName, FieldNationalID, FieldDateOfBirth, FieldGender, FieldAddress,
		FieldCity, FieldState, FieldCountry, FieldPhone, FieldEmail,
	},
	SectionFamily: {
		FieldMaritalStatus, FieldDependents, FieldEmploymentStatus, FieldMonthlyIncome, FieldHousingStatus,
	},
	SectionSituation: {
		FieldCurrentFinancialSituation, FieldEmploymentCircumstances, FieldReasonForApplying,
	},
}

// Allowed values of the select fields.
var (
	GenderOptions           = []string{"male", "female", "other"}
	MaritalStatusOptions    = []string{"single", "married", "divorced", "widowed"}
	EmploymentStatusOptions = []string{"employed", "unemployed", "selfEmployed", "retired", "student"}
	HousingStatusOptions    = []string{"owned", "rented", "family", "homeless"}
)

// FieldOptions returns the allowed values of a select field, or nil.
func FieldOptions(key string) []string {
	switch key {
	case FieldGender:
		return GenderOptions
	case FieldMaritalStatus:
		return MaritalStatusOptions
	case FieldEmploymentStatus:
		return EmploymentStatusOptions
	case FieldHousingStatus:
		return HousingStatusOptions
	}
	return nil
}
