package i18n

var english = map[string]string{
	// Navigation
	"nav.step":                  "Step",
	"nav.personalInfo":          "Personal Information",
	"nav.familyFinancial":       "Family & Financial Info",
	"nav.situationDescriptions": "Situation Descriptions",
	"nav.next":                  "Next",
	"nav.previous":              "Previous",
	"nav.submit":                "Submit Application",

	// Personal Information
	"personal.title":         "Personal Information",
	"personal.name":          "Full Name",
	"personal.nationalId":    "National ID",
	"personal.dateOfBirth":   "Date of Birth",
	"personal.gender":        "Gender",
	"personal.gender.male":   "Male",
	"personal.gender.female": "Female",
	"personal.gender.other":  "Other",
	"personal.address":       "Address",
	"personal.city":          "City",
	"personal.state":         "State/Province",
	"personal.country":       "Country",
	"personal.phone":         "Phone Number",
	"personal.email":         "Email Address",

	// Family & Financial
	"family.title":                         "Family & Financial Information",
	"family.maritalStatus":                 "Marital Status",
	"family.maritalStatus.single":          "Single",
	"family.maritalStatus.married":         "Married",
	"family.maritalStatus.divorced":        "Divorced",
	"family.maritalStatus.widowed":         "Widowed",
	"family.dependents":                    "Number of Dependents",
	"family.employmentStatus":              "Employment Status",
	"family.employmentStatus.employed":     "Employed",
	"family.employmentStatus.unemployed":   "Unemployed",
	"family.employmentStatus.selfEmployed": "Self-Employed",
	"family.employmentStatus.retired":      "Retired",
	"family.employmentStatus.student":      "Student",
	"family.monthlyIncome":                 "Monthly Income",
	"family.housingStatus":                 "Housing Status",
	"family.housingStatus.owned":           "Owned",
	"family.housingStatus.rented":          "Rented",
	"family.housingStatus.family":          "Living with Family",
	"family.housingStatus.homeless":        "Homeless",

	// Situation Descriptions
	"situation.title":                        "Situation Descriptions",
	"situation.currentFinancial":             "Current Financial Situation",
	"situation.currentFinancial.placeholder": "Describe your current financial situation, including any debts, expenses, or financial challenges you are facing...",
	"situation.employment":                   "Employment Circumstances",
	"situation.employment.placeholder":       "Explain your current employment situation, including any job loss, reduced hours, or other employment-related challenges...",
	"situation.reason":                       "Reason for Applying",
	"situation.reason.placeholder":           "Describe why you are applying for financial assistance and how it will help improve your situation...",
	"situation.helpMeWrite":                  "Help Me Write",

	// AI Assistant
	"ai.generating":           "Generating suggestion...",
	"ai.suggestion":           "AI Suggestion",
	"ai.accept":               "Accept",
	"ai.edit":                 "Edit",
	"ai.discard":              "Discard",
	"ai.error":                "Failed to generate suggestion. Please try again.",
	"ai.rateLimited":          "Too many requests. Please wait a moment and try again.",
	"ai.serviceUnavailable":   "AI service is temporarily unavailable. Please try again later.",
	"ai.networkError":         "Network error. Please check your connection and try again.",
	"ai.timeout":              "Request timed out. Please try again.",
	"ai.tryAgainLater":        "You can continue writing manually or try again later.",
	"ai.suggestion.success":   "{model} AI suggestion generated successfully!",
	"ai.suggestion.accepted":  "{model} suggestion accepted and applied",
	"ai.suggestion.discarded": "{model} suggestion discarded",
	"ai.generated":            "generated",
	"ai.characters":           "characters",
	"ai.success.title":        "Grok-3 AI Success!",
	"ai.error.title":          "Grok-3 AI Error",

	// AI Debug
	"ai.debug.title":         "Grok-3 AI Debug Information",
	"ai.debug.service":       "AI Service",
	"ai.debug.model":         "Model",
	"ai.debug.language":      "Language",
	"ai.debug.activeField":   "Active Field",
	"ai.debug.loading":       "Loading",
	"ai.debug.hasSuggestion": "Has Suggestion",
	"ai.debug.status":        "Status",
	"ai.debug.ready":         "Ready",
	"ai.debug.none":          "None",
	"ai.debug.note":          "Note: Using GROK_API_KEY with the configured model",

	// Submission
	"submission.applicationId":       "Application ID",
	"submission.confirmationMessage": "Your application has been submitted successfully. You will receive a confirmation email shortly.",

	// Validation
	"validation.required":                     "This field is required",
	"validation.email":                        "Please enter a valid email address",
	"validation.email.format":                 "Please enter a valid email address",
	"validation.phone":                        "Please enter a valid phone number",
	"validation.phone.format":                 "Phone number must be between 10-15 digits",
	"validation.nationalId":                   "Please enter a valid national ID",
	"validation.nationalId.format":            "National ID must be exactly 15 digits in format 784-YYYY-XXXXXXX-X",
	"validation.nationalId.mustStartWith784":  "National ID must start with 784",
	"validation.nationalId.birthYearMismatch": "National ID birth year must match your date of birth ({year})",
	"validation.nationalId.formatHelp":        "Format: 784-YYYY-XXXXXXX-X (where YYYY is your birth year)",
	"validation.name.tooShort":                "Name must be at least 2 characters",
	"validation.address.tooShort":             "Address must be at least 10 characters",
	"validation.city.tooShort":                "City must be at least 2 characters",
	"validation.state.tooShort":               "State must be at least 2 characters",
	"validation.country.tooShort":             "Country must be at least 2 characters",
	"validation.dateOfBirth.age":              "Age must be between 18 and 100 years",
	"validation.textarea.tooShort":            "This field must be at least 10 characters",
	"validation.dependents.min":               "Number of dependents cannot be negative",
	"validation.monthlyIncome.min":            "Monthly income cannot be negative",
	"validation.pleaseComplete":               "Please complete all required fields correctly",
	"validation.error":                        "Validation Error",

	// General
	"general.loading":  "Loading...",
	"general.success":  "Application submitted successfully!",
	"general.error":    "An error occurred. Please try again.",
	"general.language": "Language",
	"general.close":    "Close",

	// Client workflow
	"validation.option":              "Please select a valid option",
	"validation.dateOfBirth.invalid": "Please enter a valid date (YYYY-MM-DD)",
	"validation.number.format":       "Please enter a valid number",
	"ai.invalidRequest":              "The request could not be processed. Please edit the text and try again.",
	"ai.malformed":                   "The AI service returned an unexpected response. Please try again.",
	"ai.inProgress":                  "A suggestion is already being generated for this field.",
	"submission.communicationError":  "Server communication error. Please try again.",
	"submission.alreadySubmitted":    "This application has already been submitted.",
	"submission.inProgress":          "Submitting your application...",
	"submission.networkError":        "Unable to reach the server. Please check your connection and submit again.",
	"submission.timeout":             "The submission timed out. Please try again.",
}
