package services

import (
	"context"
	"regexp"
	"strings"
)

// Generator performs one inference call and returns the raw generated text.
// Failures are reported as *TransportError or *FormatError.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

var blankLineRuns = regexp.MustCompile(`\n{2,}`)

// cleanGeneratedText keeps only the answer between the first response
// marker and the next one (an invented follow-up turn), collapses
// blank-line runs and trims.
func cleanGeneratedText(raw string) string {
	if _, after, found := strings.Cut(raw, responseMarker); found {
		raw = after
		if answer, _, more := strings.Cut(raw, responseMarker); more {
			raw = answer
		}
	}
	raw = blankLineRuns.ReplaceAllString(raw, "\n")
	return strings.TrimSpace(raw)
}
