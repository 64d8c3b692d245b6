package services

import (
	"fmt"

	"farmadvice-backend/internal/models"
)

// responseMarker ends the prompt; the model's answer follows it.
const responseMarker = "AgriculturalAdvisor:"

var systemPrompts = map[string]string{
	models.LanguageEnglish: "You are an experienced agricultural advisor helping Nigerian farmers. Provide practical, actionable farming advice based on the farmer's question. Keep responses concise (2-3 sentences) and focus on solutions.",
	models.LanguageHausa:   "Ka kasua mai kwarewa ga manoma Nijeriya. Ba da shawarwari da ke da amfani kan bukatun manoma. Jika amsa da karfi kuma miyi mayar da hankali wa mafita.",
	models.LanguageYoruba:  "O jẹ olupin ogbin ati ero ewe ti o rotininu ara awọn olofin Nigeria. Fún ọ pẹlú ìmọ̀ ti ó ta lọ́wọ́ àti àbájáde tí ó ṣiṣẹ́.",
	models.LanguageIgbo:    "Ị bụ ụmụ okike ndị ọrụ ugbo na-ahụ mma na ndị ọrụ ugbo nọ na Naịjịrịa. Nyere ihe ọmụma dị mfe na ihe o kwesiri ịme.",
}

// Fixed generation parameters shared by every provider.
const (
	maxNewTokens = 150
	temperature  = 0.7
	topP         = 0.9
)

func systemPrompt(language string) string {
	if p, ok := systemPrompts[language]; ok {
		return p
	}
	return systemPrompts[models.LanguageEnglish]
}

func buildAdvicePrompt(query, language string) string {
	return fmt.Sprintf("%s\n\nFarmer's Question: %s\n\n%s", systemPrompt(language), query, responseMarker)
}
