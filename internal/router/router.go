package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"farmadvice-backend/internal/handlers"
	"farmadvice-backend/internal/middleware"
)

func New(
	logger *zap.Logger,
	adviceHandler *handlers.AdviceHandler,
	adviceLimiter *middleware.RateLimiter,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Group(func(r chi.Router) {
			if adviceLimiter != nil {
				r.Use(adviceLimiter.Middleware)
			}
			r.Post("/agricultural-advice", adviceHandler.GetAdvice)
		})
	})

	return r
}
