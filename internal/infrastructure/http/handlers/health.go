package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
)

// HealthHandler serves GET /healthz. Each probe opens a fresh database
// connection through the pinger; the route is strict about shape, so a
// query string or a body is a bad request rather than a failed check.
type HealthHandler struct {
	pinger ports.Pinger
	log    zerolog.Logger
}

func NewHealthHandler(pinger ports.Pinger, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{pinger: pinger, log: log}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.RawQuery != "" || r.ContentLength != 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	if err := h.pinger.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("health check: database unreachable")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}
