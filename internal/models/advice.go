package models

import "time"

// Origin tags where an answer came from.
type Origin string

const (
	OriginModel    Origin = "model"
	OriginFallback Origin = "fallback"
)

// Supported language codes. Anything else is answered as English.
const (
	LanguageEnglish = "en"
	LanguageHausa   = "ha"
	LanguageYoruba  = "yo"
	LanguageIgbo    = "ig"
)

// Query is a single farmer question.
type Query struct {
	Text     string
	Language string
}

// AdviceResult is what the advice pipeline hands back for every query.
type AdviceResult struct {
	Text        string
	Origin      Origin
	ErrorDetail string
}

// AdviceRequest is the payload sent to the advice endpoint.
type AdviceRequest struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

// AdviceResponse is the reply from the advice endpoint.
type AdviceResponse struct {
	Response     string `json:"response"`
	Origin       Origin `json:"origin,omitempty"`
	FromFallback bool   `json:"fromFallback,omitempty"`
	Error        string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
