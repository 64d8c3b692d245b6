package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"farmadvice-backend/internal/metrics"
	"farmadvice-backend/internal/models"
)

// Advisor resolves farmer questions. It tries the configured generator once
// and substitutes canned advice on any failure, so callers always get text.
type Advisor struct {
	generator Generator
	logger    *zap.Logger
}

// NewAdvisor returns an Advisor. A nil generator means no inference
// credential is configured and every query is answered from the fallback.
func NewAdvisor(generator Generator, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{
		generator: generator,
		logger:    logger,
	}
}

// Configured reports whether an inference provider is available.
func (a *Advisor) Configured() bool {
	return a.generator != nil
}

func (a *Advisor) GetAdvice(ctx context.Context, q models.Query) models.AdviceResult {
	result := a.resolve(ctx, q)
	metrics.AdviceRequests.WithLabelValues(metricsLanguage(q.Language), string(result.Origin)).Inc()
	return result
}

func (a *Advisor) resolve(ctx context.Context, q models.Query) models.AdviceResult {
	if a.generator == nil {
		return a.fallback(q, &ConfigurationError{Message: "API key not configured"})
	}

	a.logger.Info("processing advice request",
		zap.String("provider", a.generator.Name()),
		zap.String("language", q.Language),
		zap.String("query", truncate(q.Text, 50)),
	)

	start := time.Now()
	raw, err := a.generator.Generate(ctx, buildAdvicePrompt(q.Text, q.Language))
	metrics.InferenceDuration.WithLabelValues(a.generator.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		return a.fallback(q, err)
	}

	text := cleanGeneratedText(raw)
	if text == "" {
		return a.fallback(q, &EmptyResultError{})
	}

	return models.AdviceResult{Text: text, Origin: models.OriginModel}
}

func (a *Advisor) fallback(q models.Query, cause error) models.AdviceResult {
	reason := fallbackReason(cause)
	metrics.AdviceFallbacks.WithLabelValues(reason).Inc()
	a.logger.Warn("serving fallback advice",
		zap.String("reason", reason),
		zap.String("language", q.Language),
		zap.Error(cause),
	)

	return models.AdviceResult{
		Text:        FallbackAdvice(q.Text, q.Language),
		Origin:      models.OriginFallback,
		ErrorDetail: errorDetail(cause),
	}
}

// errorDetail is the caller-facing annotation: the upstream message for
// transport failures, the error text otherwise.
func errorDetail(err error) string {
	var transErr *TransportError
	if errors.As(err, &transErr) {
		return transErr.Message
	}
	return err.Error()
}

// metricsLanguage bounds label cardinality to the supported codes.
func metricsLanguage(language string) string {
	if IsSupportedLanguage(language) {
		return language
	}
	return "other"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
