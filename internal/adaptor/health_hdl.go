package adaptor

import (
	"context"
	"net/http"
	"time"

	"business-directory/pkg/utils"

	"go.uber.org/zap"
)

// Pinger reports whether the relational store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	pinger Pinger
	log    *zap.Logger
}

func NewHealthHandler(pinger Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		pinger: pinger,
		log:    log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.log.Error("Health check failed", zap.Error(err))
		utils.ResponseUnavailable(w, "Database unavailable")
		return
	}

	utils.ResponseSuccess(w, map[string]string{"status": "ok"})
}
