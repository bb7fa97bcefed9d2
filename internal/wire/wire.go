package wire

import (
	"net/http"
	"sync"
	"time"

	"business-directory/internal/adaptor"
	"business-directory/internal/data/repository"
	"business-directory/internal/usecase"
	"business-directory/pkg/middleware"
	"business-directory/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// rateLimitCleanupInterval controls how often idle client limiters are evicted
const rateLimitCleanupInterval = time.Minute

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux

	stop     chan struct{}
	stopOnce sync.Once
}

// Close stops background workers started by Wiring
func (a *App) Close() {
	a.stopOnce.Do(func() { close(a.stop) })
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, pinger adaptor.Pinger, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, pinger, config, logger)

	app := &App{stop: make(chan struct{})}
	app.Router = setupRouter(handler, config, logger, app.stop)

	return app
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
	stop <-chan struct{},
) *chi.Mux {
	r := chi.NewRouter()
	metrics := middleware.NewMetrics()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.Server.CORSAllowedOrigins))

	if config.RateLimit.Enabled() {
		limiter := middleware.NewRateLimiter(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst, logger)
		limiter.StartCleanup(rateLimitCleanupInterval, stop)
		r.Use(limiter.Handler)
	}

	r.Use(metrics.Handler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w)
	})

	// Apply routes
	wireBusiness(r, handler.Business)
	wireReview(r, handler.Review)

	// Operational endpoints
	r.Get("/health", handler.Health.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Exporter())

	return r
}
