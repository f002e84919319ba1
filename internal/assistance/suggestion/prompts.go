package suggestion

import "financial-assistance/internal/common/i18n"

var prompts = map[i18n.Language][fieldCount]string{
	i18n.English: {
		CurrentFinancialSituation: "Help me describe my current financial situation for a financial assistance application. Write a professional description of financial hardship including expenses and challenges.",
		EmploymentCircumstances:   "Help me describe my employment situation for a financial assistance application. Explain current work status and employment challenges.",
		ReasonForApplying:         "Help me explain why I'm applying for financial assistance and how it will help improve my situation. Write a compelling explanation of the positive impact.",
	},
	i18n.Arabic: {
		CurrentFinancialSituation: "ساعدني في وصف وضعي المالي الحالي لطلب مساعدة مالية. اكتب وصفاً مهنياً للصعوبات المالية والمصاريف والتحديات.",
		EmploymentCircumstances:   "ساعدني في وصف وضع عملي لطلب مساعدة مالية. اشرح وضع عملي الحالي وتحديات التوظيف.",
		ReasonForApplying:         "ساعدني في شرح سبب تقديمي لطلب المساعدة المالية وكيف ستحسن وضعي. اكتب شرحاً مقنعاً للتأثير الإيجابي.",
	},
}

// BuildPrompt returns the instruction for field in lang. Unknown languages
// use English. The current text travels separately as currentValue and is
// folded into the final prompt by the assistance endpoint.
func BuildPrompt(field FieldKey, lang i18n.Language) string {
	if !field.valid() {
		return ""
	}
	set, ok := prompts[lang]
	if !ok {
		set = prompts[i18n.English]
	}
	return set[field]
}

// NewRequest builds the request body for field.
func NewRequest(field FieldKey, currentValue string, lang i18n.Language) Request {
	if _, ok := prompts[lang]; !ok {
		lang = i18n.Default
	}
	return Request{
		Prompt:       BuildPrompt(field, lang),
		CurrentValue: currentValue,
		Language:     lang,
	}
}
