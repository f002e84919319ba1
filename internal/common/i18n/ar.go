package i18n

var arabic = map[string]string{
	// Navigation
	"nav.step":                  "الخطوة",
	"nav.personalInfo":          "المعلومات الشخصية",
	"nav.familyFinancial":       "معلومات الأسرة والمالية",
	"nav.situationDescriptions": "وصف الحالة",
	"nav.next":                  "التالي",
	"nav.previous":              "السابق",
	"nav.submit":                "تقديم الطلب",

	// Personal Information
	"personal.title":         "المعلومات الشخصية",
	"personal.name":          "الاسم الكامل",
	"personal.nationalId":    "رقم الهوية الوطنية",
	"personal.dateOfBirth":   "تاريخ الميلاد",
	"personal.gender":        "الجنس",
	"personal.gender.male":   "ذكر",
	"personal.gender.female": "أنثى",
	"personal.gender.other":  "آخر",
	"personal.address":       "العنوان",
	"personal.city":          "المدينة",
	"personal.state":         "المحافظة/الولاية",
	"personal.country":       "البلد",
	"personal.phone":         "رقم الهاتف",
	"personal.email":         "البريد الإلكتروني",

	// Family & Financial
	"family.title":                         "معلومات الأسرة والمالية",
	"family.maritalStatus":                 "الحالة الاجتماعية",
	"family.maritalStatus.single":          "أعزب",
	"family.maritalStatus.married":         "متزوج",
	"family.maritalStatus.divorced":        "مطلق",
	"family.maritalStatus.widowed":         "أرمل",
	"family.dependents":                    "عدد المعالين",
	"family.employmentStatus":              "حالة التوظيف",
	"family.employmentStatus.employed":     "موظف",
	"family.employmentStatus.unemployed":   "عاطل عن العمل",
	"family.employmentStatus.selfEmployed": "يعمل لحسابه الخاص",
	"family.employmentStatus.retired":      "متقاعد",
	"family.employmentStatus.student":      "طالب",
	"family.monthlyIncome":                 "الدخل الشهري",
	"family.housingStatus":                 "حالة السكن",
	"family.housingStatus.owned":           "مملوك",
	"family.housingStatus.rented":          "مستأجر",
	"family.housingStatus.family":          "يعيش مع الأسرة",
	"family.housingStatus.homeless":        "بلا مأوى",

	// Situation Descriptions
	"situation.title":                        "وصف الحالة",
	"situation.currentFinancial":             "الوضع المالي الحالي",
	"situation.currentFinancial.placeholder": "اصف وضعك المالي الحالي، بما في ذلك أي ديون أو مصاريف أو تحديات مالية تواجهها...",
	"situation.employment":                   "ظروف التوظيف",
	"situation.employment.placeholder":       "اشرح وضع عملك الحالي، بما في ذلك أي فقدان للوظيفة أو تقليل ساعات العمل أو تحديات أخرى متعلقة بالعمل...",
	"situation.reason":                       "سبب التقديم",
	"situation.reason.placeholder":           "اصف لماذا تتقدم بطلب للحصول على مساعدة مالية وكيف ستساعد في تحسين وضعك...",
	"situation.helpMeWrite":                  "ساعدني في الكتابة (Grok-3)",

	// AI Assistant
	"ai.generating":           "جاري إنشاء الاقتراح...",
	"ai.suggestion":           "اقتراح الذكاء الاصطناعي",
	"ai.accept":               "قبول",
	"ai.edit":                 "تعديل",
	"ai.discard":              "تجاهل",
	"ai.error":                "فشل في إنشاء الاقتراح. يرجى المحاولة مرة أخرى.",
	"ai.rateLimited":          "طلبات كثيرة جداً. يرجى الانتظار قليلاً والمحاولة مرة أخرى.",
	"ai.serviceUnavailable":   "خدمة الذكاء الاصطناعي غير متاحة مؤقتاً. يرجى المحاولة لاحقاً.",
	"ai.networkError":         "خطأ في الشبكة. يرجى التحقق من الاتصال والمحاولة مرة أخرى.",
	"ai.timeout":              "انتهت مهلة الطلب. يرجى المحاولة مرة أخرى.",
	"ai.tryAgainLater":        "يمكنك المتابعة بالكتابة يدوياً أو المحاولة لاحقاً.",
	"ai.suggestion.success":   "تم إنشاء اقتراح {model} بنجاح!",
	"ai.suggestion.accepted":  "تم قبول وتطبيق اقتراح {model}",
	"ai.suggestion.discarded": "تم تجاهل اقتراح {model}",
	"ai.generated":            "تم إنشاء",
	"ai.characters":           "حرف",
	"ai.success.title":        "نجح Grok-3!",
	"ai.error.title":          "خطأ في Grok-3",

	// AI Debug
	"ai.debug.title":         "معلومات تصحيح Grok-3",
	"ai.debug.service":       "خدمة الذكاء الاصطناعي",
	"ai.debug.model":         "النموذج",
	"ai.debug.language":      "اللغة",
	"ai.debug.activeField":   "الحقل النشط",
	"ai.debug.loading":       "جاري التحميل",
	"ai.debug.hasSuggestion": "يحتوي على اقتراح",
	"ai.debug.status":        "الحالة",
	"ai.debug.ready":         "جاهز",
	"ai.debug.none":          "لا يوجد",
	"ai.debug.note":          "ملاحظة: استخدام GROK_API_KEY مع النموذج المحدد في الإعدادات",

	// Submission
	"submission.applicationId":       "رقم الطلب",
	"submission.confirmationMessage": "تم تقديم طلبك بنجاح. ستتلقى رسالة تأكيد عبر البريد الإلكتروني قريباً.",

	// Validation
	"validation.required":                     "هذا الحقل مطلوب",
	"validation.email":                        "يرجى إدخال عنوان بريد إلكتروني صحيح",
	"validation.email.format":                 "يرجى إدخال عنوان بريد إلكتروني صحيح",
	"validation.phone":                        "يرجى إدخال رقم هاتف صحيح",
	"validation.phone.format":                 "رقم الهاتف يجب أن يكون بين 10-15 رقم",
	"validation.nationalId":                   "يرجى إدخال رقم هوية وطنية صحيح",
	"validation.nationalId.format":            "رقم الهوية الوطنية يجب أن يكون 15 رقم بالضبط بصيغة 784-YYYY-XXXXXXX-X",
	"validation.nationalId.mustStartWith784":  "رقم الهوية الوطنية يجب أن يبدأ بـ 784",
	"validation.nationalId.birthYearMismatch": "سنة الميلاد في رقم الهوية يجب أن تطابق تاريخ ميلادك ({year})",
	"validation.nationalId.formatHelp":        "الصيغة: 784-YYYY-XXXXXXX-X (حيث YYYY هي سنة ميلادك)",
	"validation.name.tooShort":                "الاسم يجب أن يكون على الأقل حرفين",
	"validation.address.tooShort":             "العنوان يجب أن يكون على الأقل 10 أحرف",
	"validation.city.tooShort":                "المدينة يجب أن تكون على الأقل حرفين",
	"validation.state.tooShort":               "المحافظة يجب أن تكون على الأقل حرفين",
	"validation.country.tooShort":             "البلد يجب أن يكون على الأقل حرفين",
	"validation.dateOfBirth.age":              "العمر يجب أن يكون بين 18 و 100 سنة",
	"validation.textarea.tooShort":            "هذا الحقل يجب أن يكون على الأقل 10 أحرف",
	"validation.dependents.min":               "عدد المعالين لا يمكن أن يكون سالباً",
	"validation.monthlyIncome.min":            "الدخل الشهري لا يمكن أن يكون سالباً",
	"validation.pleaseComplete":               "يرجى إكمال جميع الحقول المطلوبة بشكل صحيح",
	"validation.error":                        "خطأ في التحقق",

	// General
	"general.loading":  "جاري التحميل...",
	"general.success":  "تم تقديم الطلب بنجاح!",
	"general.error":    "حدث خطأ. يرجى المحاولة مرة أخرى.",
	"general.language": "اللغة",
	"general.close":    "إغلاق",

	// Client workflow
	"validation.option":              "يرجى اختيار خيار صحيح",
	"validation.dateOfBirth.invalid": "يرجى إدخال تاريخ صحيح (YYYY-MM-DD)",
	"validation.number.format":       "يرجى إدخال رقم صحيح",
	"ai.invalidRequest":              "تعذرت معالجة الطلب. يرجى تعديل النص والمحاولة مرة أخرى.",
	"ai.malformed":                   "أعادت خدمة الذكاء الاصطناعي استجابة غير متوقعة. يرجى المحاولة مرة أخرى.",
	"ai.inProgress":                  "يتم بالفعل إنشاء اقتراح لهذا الحقل.",
	"submission.communicationError":  "خطأ في الاتصال بالخادم. يرجى المحاولة مرة أخرى.",
	"submission.alreadySubmitted":    "تم تقديم هذا الطلب بالفعل.",
	"submission.inProgress":          "جاري تقديم طلبك...",
	"submission.networkError":        "تعذر الوصول إلى الخادم. يرجى التحقق من الاتصال وإعادة التقديم.",
	"submission.timeout":             "انتهت مهلة تقديم الطلب. يرجى المحاولة مرة أخرى.",
}
