package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const yellowingAdvice = "Yellowing leaves usually indicate nutrient deficiency (Nitrogen) or improper watering. Apply balanced fertilizer and ensure proper drainage."

func TestFallbackAdvice_EnglishKeywords(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{"yellowing", "Why is yellowing happening on my maize?", yellowingAdvice},
		{"yellow stem", "My cassava leaves are turning yellow", yellowingAdvice},
		{"uppercase", "YELLOWING LEAVES", yellowingAdvice},
		{"disease", "What disease is this?", fallbackTables["en"].entries[1].text},
		{"pest", "pests are eating my beans", fallbackTables["en"].entries[2].text},
		{"watering", "how often should I be watering tomatoes", fallbackTables["en"].entries[3].text},
		{"fertilizer", "which fertilizer for rice", fallbackTables["en"].entries[4].text},
		{"planting", "when is planting season", fallbackTables["en"].entries[5].text},
		{"no match", "hello there", fallbackTables["en"].defaultText},
		{"empty query", "", fallbackTables["en"].defaultText},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FallbackAdvice(tc.query, "en"))
		})
	}
}

func TestFallbackAdvice_FirstMatchWins(t *testing.T) {
	// "yellowing" is listed before "disease"
	got := FallbackAdvice("disease causing yellowing", "en")
	assert.Equal(t, yellowingAdvice, got)
}

func TestFallbackAdvice_UnknownLanguageUsesEnglish(t *testing.T) {
	for _, lang := range []string{"fr", "", "EN", "xx-YY"} {
		t.Run(lang, func(t *testing.T) {
			assert.Equal(t, FallbackAdvice("yellowing", "en"), FallbackAdvice("yellowing", lang))
			assert.Equal(t, FallbackAdvice("pest", "en"), FallbackAdvice("pest", lang))
			assert.Equal(t, FallbackAdvice("anything", "en"), FallbackAdvice("anything", lang))
		})
	}
}

func TestFallbackAdvice_LocalTables(t *testing.T) {
	for _, lang := range []string{"ha", "yo", "ig"} {
		t.Run(lang, func(t *testing.T) {
			table := fallbackTables[lang]

			assert.Equal(t, table.entries[0].text, FallbackAdvice("yellowing cassava", lang))
			assert.Equal(t, table.entries[1].text, FallbackAdvice("disease", lang))
			// keywords outside the narrow local table fall through to its default
			assert.Equal(t, table.defaultText, FallbackAdvice("pest control", lang))
			assert.NotEqual(t, yellowingAdvice, FallbackAdvice("yellowing", lang))
		})
	}
}

func TestFallbackAdvice_Deterministic(t *testing.T) {
	queries := []string{"yellowing", "pest", "random words", "Disease!"}
	for _, q := range queries {
		first := FallbackAdvice(q, "yo")
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, FallbackAdvice(q, "yo"))
		}
	}
}

func TestIsSupportedLanguage(t *testing.T) {
	for _, lang := range []string{"en", "ha", "yo", "ig"} {
		assert.True(t, IsSupportedLanguage(lang), lang)
	}
	assert.False(t, IsSupportedLanguage("fr"))
}
