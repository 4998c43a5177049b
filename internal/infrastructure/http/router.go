package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/infrastructure/http/handlers"
	"github.com/Chetan-Warad-CSYE6225/webapp/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	UserHandler   *handlers.UserHandler
	HealthHandler *handlers.HealthHandler
	BasicAuth     func(http.Handler) http.Handler
	Secure        func(http.Handler) http.Handler
	IPRateLimit   func(http.Handler) http.Handler
	Log           zerolog.Logger
	Metrics       bool
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	r.Use(middleware.NoStore)
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
	}
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/healthz", cfg.HealthHandler.ServeHTTP)

	r.Route("/v1/user", func(r chi.Router) {
		// JSON-only applies to the user routes; /healthz stays outside
		// so its own body check can answer 400 for any body.
		r.Use(chimid.AllowContentType("application/json"))
		// Subrouters do not inherit the custom 405 handler.
		r.MethodNotAllowed(handlers.MethodNotAllowed)
		r.With(middleware.HeaderAllowList).Post("/", cfg.UserHandler.Create)
		// Auth applies per method so that disallowed methods reach the
		// 405 handler instead of being rejected as unauthenticated.
		r.Route("/self", func(r chi.Router) {
			r.MethodNotAllowed(handlers.MethodNotAllowed)
			r.With(cfg.BasicAuth).Get("/", cfg.UserHandler.Get)
			r.With(cfg.BasicAuth).Put("/", cfg.UserHandler.Update)
		})
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
