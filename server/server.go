package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/patrickmn/go-cache"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/lifecycle"
	"github.com/umputun/freshness/pkg/repository"
	"github.com/umputun/freshness/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/lifecycle.go -pkg mocks -skip-ensure -fmt goimports . Lifecycle
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	lifecycle Lifecycle
	store     Store
	scheduler Scheduler
	metrics   http.Handler
	version   string
	debug     bool

	cache      *cache.Cache // analysis snapshots
	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetBaseURL() string
	GetCycleBudget() float64
	GetMetricsCacheTTL() time.Duration
}

// Lifecycle is the content lifecycle manager used for analysis, dry-run planning and delay config
type Lifecycle interface {
	AnalyzeAllProviderContent(ctx context.Context) (*lifecycle.AnalysisResult, error)
	GenerateUpdatePlans(metrics map[string]domain.ContentMetrics, budget float64) []*domain.ContentUpdatePlan
	GenerateLifecycleReport(ctx context.Context) (*domain.ContentLifecycleReport, error)
	DelayConfig() domain.DelayConfig
	UpdateDelayConfig(cfg domain.DelayConfig) error
	History() (active, completed, failed []domain.ContentUpdatePlan)
}

// Store provides persisted plans, reports and settings
type Store interface {
	ListPlans(ctx context.Context, filter repository.PlanFilter) ([]*domain.ContentUpdatePlan, error)
	LatestReport(ctx context.Context) (*domain.ContentLifecycleReport, error)
	SaveReport(ctx context.Context, rep *domain.ContentLifecycleReport) (int64, error)
	RequestManualUpdate(ctx context.Context, providerID string) error
	SaveDelayConfig(ctx context.Context, cfg domain.DelayConfig) error
}

// Scheduler interface for on-demand cycles and cycle status
type Scheduler interface {
	RunCycleNow(ctx context.Context) (*scheduler.CycleResult, error)
	LastCycle() *scheduler.CycleResult
	Running() bool
}

// Params holds server dependencies
type Params struct {
	Config    ConfigProvider
	Lifecycle Lifecycle
	Store     Store
	Scheduler Scheduler
	Metrics   http.Handler // prometheus handler, optional
	Version   string
	Debug     bool
}

// New initializes a new server instance
func New(params Params) *Server {
	ttl := params.Config.GetMetricsCacheTTL()
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	s := &Server{
		config:    params.Config,
		lifecycle: params.Lifecycle,
		store:     params.Store,
		scheduler: params.Scheduler,
		metrics:   params.Metrics,
		version:   params.Version,
		debug:     params.Debug,
		cache:     cache.New(ttl, 2*ttl),
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		// no WriteTimeout, POST /api/v1/cycle blocks for the whole cycle
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("freshness", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /metrics", s.contentMetricsHandler)
		r.HandleFunc("GET /plans", s.plansHandler)
		r.HandleFunc("GET /history", s.historyHandler)
		r.HandleFunc("POST /cycle", s.runCycleHandler)
		r.HandleFunc("GET /report", s.latestReportHandler)
		r.HandleFunc("POST /report", s.generateReportHandler)
		r.HandleFunc("GET /delay-config", s.getDelayConfigHandler)
		r.HandleFunc("PUT /delay-config", s.updateDelayConfigHandler)
		r.HandleFunc("POST /providers/{id}/manual-update", s.manualUpdateHandler)
	})

	s.router.HandleFunc("GET /rss/updates", s.rssHandler)

	if s.metrics != nil {
		s.router.Handle("GET /metrics", s.metrics)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
