package services

import (
	"strings"

	"farmadvice-backend/internal/models"
)

type cannedAdvice struct {
	keywords []string
	text     string
}

type fallbackTable struct {
	entries     []cannedAdvice // scanned in order, first match wins
	defaultText string
}

var fallbackTables = map[string]fallbackTable{
	models.LanguageEnglish: {
		entries: []cannedAdvice{
			{[]string{"yellowing", "yellow"}, "Yellowing leaves usually indicate nutrient deficiency (Nitrogen) or improper watering. Apply balanced fertilizer and ensure proper drainage."},
			{[]string{"disease"}, "For plant diseases, identify the symptoms first. Remove affected parts, apply fungicide if needed, improve air circulation, and practice crop rotation."},
			{[]string{"pest"}, "For pest control, use organic methods: neem oil spray, companion planting, or handpicking. Chemical pesticides should be a last resort."},
			{[]string{"watering"}, "Water deeply but less frequently to encourage deep root growth. Water in the morning to reduce disease. Check soil moisture before watering."},
			{[]string{"fertilizer"}, "Use balanced NPK fertilizer (10-10-10) for general crops. Adjust based on crop type: more Nitrogen for leafy crops, more Phosphorus for flowering."},
			{[]string{"planting"}, "Prepare soil with compost, ensure good drainage, plant at recommended depth and spacing, and keep soil moist for germination."},
		},
		defaultText: "For detailed advice, please describe the issue more specifically including crop type, symptoms, and current farming practices.",
	},
	models.LanguageHausa: {
		entries: []cannedAdvice{
			{[]string{"yellowing", "yellow"}, "Rawaya ganye yakan nuna karancin abubuwan gida (Nitrogen) ko ba aiki dishi. Zuba taki mai daidaituwa kuma tabbatar da kyakkyawan fikitarwa."},
			{[]string{"disease"}, "Don cutarren ganye, sannu da alamun aiki. Mafita: Cire waje marubuta, zuba mace, sa'a iskar kai, da musanya habaye."},
		},
		defaultText: "Don cikakken shawara akan bukatar noma, ka bayyana matsala kuma inganta nau'i na shuke, alamun aiki, da ayyuka na noma.",
	},
	models.LanguageYoruba: {
		entries: []cannedAdvice{
			{[]string{"yellowing", "yellow"}, "Ewé tó di pupa jẹ́ ami ti aipe ounjẹ (Nitrogen) tabi omi ti ò̀ṣe lọ́ìlọ́. Lo ajile ti o ni iwọntunwọnsi àti rí dájú isọ daradara."},
			{[]string{"disease"}, "Nípasẹ̀ àìmọ̀ ọ̀ran ìsìn, ṣe àyẹ̀wò awọn aami. Iranlọ́wọ́: Mú ẹ̀kọ́ ìsìn, lo oogun, ṣe jìjìn afẹfẹ, àti ṣèdúpẹ́."},
		},
		defaultText: "Fún ìmọ̀ ni pẹlúpẹlú lórí ibeere noma rẹ, ṣalaye iṣoro àti ìrò irugbin, awọn aami, àti iṣẹ noma.",
	},
	models.LanguageIgbo: {
		entries: []cannedAdvice{
			{[]string{"yellowing", "yellow"}, "Akwụkwọ akpụ na-acha odo odo na-egosi enweghị nri ma ọ bụ mmiri ezi. Tinye takin ma hụ na mmiri na-asọpụ nke ọma."},
			{[]string{"disease"}, "Maka ọrịa ihe ọkụkụ, mata ihe mgbaàmà nke ọma. Ihe ọ kwesiri ịme: Ewepụ akpụ ọrịa, tinyere ọgwụ, gbaa ikuku, na mezie ugbo."},
		},
		defaultText: "Maka iminye nke ziri ezi gbasara ajụjụ ugbo gị, kọwaa nsogbu na ụdị ihe ọkụkụ, ihe mgbaàmà, na ihe ị na-eme.",
	},
}

// FallbackAdvice returns canned advice for a query by keyword match.
// Unknown languages are answered from the English table.
func FallbackAdvice(query, language string) string {
	table, ok := fallbackTables[language]
	if !ok {
		table = fallbackTables[models.LanguageEnglish]
	}

	lowered := strings.ToLower(query)
	for _, entry := range table.entries {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.text
			}
		}
	}

	return table.defaultText
}

// IsSupportedLanguage reports whether language has its own advice table.
func IsSupportedLanguage(language string) bool {
	_, ok := fallbackTables[language]
	return ok
}
