package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/patrickmn/go-cache"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/lifecycle"
	"github.com/umputun/freshness/pkg/repository"
	"github.com/umputun/freshness/pkg/scheduler"
)

const (
	analysisCacheKey   = "analysis"
	defaultHistorySize = 100
	maxHistorySize     = 1000
)

// analysisSnapshot is a cached analysis pass
type analysisSnapshot struct {
	GeneratedAt        time.Time                    `json:"generated_at"`
	Total              int                          `json:"total"`
	Skipped            []string                     `json:"skipped"`
	StatusDistribution map[domain.ContentStatus]int `json:"status_distribution"`
	Providers          []domain.ContentMetrics      `json:"providers"`

	metrics map[string]domain.ContentMetrics
}

// plansResponse is a dry-run planning result
type plansResponse struct {
	Budget    float64                     `json:"budget"`
	TotalCost float64                     `json:"total_cost"`
	Plans     []*domain.ContentUpdatePlan `json:"plans"`
}

// historyResponse lists in-flight and persisted plans
type historyResponse struct {
	Active []domain.ContentUpdatePlan  `json:"active"`
	Plans  []*domain.ContentUpdatePlan `json:"plans"`
}

// statusHandler returns server status and the last cycle summary
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":        "ok",
		"version":       s.version,
		"time":          time.Now().UTC(),
		"cycle_running": s.scheduler.Running(),
	}
	if last := s.scheduler.LastCycle(); last != nil {
		status["last_cycle"] = map[string]any{
			"started_at":  last.StartedAt,
			"finished_at": last.FinishedAt,
			"analyzed":    last.Analyzed,
			"skipped":     last.Skipped,
			"planned":     len(last.Plans),
			"succeeded":   last.Succeeded,
			"failed":      last.Failed,
		}
	}
	renderJSON(w, r, http.StatusOK, status)
}

// contentMetricsHandler returns the cached analysis snapshot, refresh=true forces a new pass
func (s *Server) contentMetricsHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := s.analysis(r.Context(), r.URL.Query().Get("refresh") == "true")
	if err != nil {
		lgr.Printf("[ERROR] failed to analyze provider content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, snap)
}

// plansHandler builds update plans for the given budget without executing them
func (s *Server) plansHandler(w http.ResponseWriter, r *http.Request) {
	budget := s.config.GetCycleBudget()
	if v := r.URL.Query().Get("budget"); v != "" {
		b, err := strconv.ParseFloat(v, 64)
		if err != nil || b < 0 || math.IsNaN(b) || math.IsInf(b, 0) {
			renderError(w, r, fmt.Errorf("invalid budget %q", v), http.StatusBadRequest)
			return
		}
		budget = b
	}

	snap, err := s.analysis(r.Context(), false)
	if err != nil {
		lgr.Printf("[ERROR] failed to analyze provider content: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	plans := s.lifecycle.GenerateUpdatePlans(snap.metrics, budget)
	resp := plansResponse{Budget: budget, Plans: plans}
	for _, p := range plans {
		resp.TotalCost += p.EstimatedCost
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// historyHandler returns active updates and persisted plans.
// Supports provider, status (success|failed) and limit query params.
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.PlanFilter{ProviderID: q.Get("provider"), Limit: defaultHistorySize}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			renderError(w, r, fmt.Errorf("invalid limit %q", v), http.StatusBadRequest)
			return
		}
		filter.Limit = min(limit, maxHistorySize)
	}

	switch q.Get("status") {
	case "":
	case "success":
		ok := true
		filter.Success = &ok
	case "failed":
		ok := false
		filter.Success = &ok
	default:
		renderError(w, r, fmt.Errorf("invalid status %q", q.Get("status")), http.StatusBadRequest)
		return
	}

	plans, err := s.store.ListPlans(r.Context(), filter)
	if err != nil {
		lgr.Printf("[ERROR] failed to list plans: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	active, _, _ := s.lifecycle.History()
	if filter.ProviderID != "" {
		filtered := active[:0]
		for _, p := range active {
			if p.ProviderID == filter.ProviderID {
				filtered = append(filtered, p)
			}
		}
		active = filtered
	}
	renderJSON(w, r, http.StatusOK, historyResponse{Active: active, Plans: plans})
}

// runCycleHandler runs a lifecycle cycle and returns its result
func (s *Server) runCycleHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.scheduler.RunCycleNow(r.Context())
	s.cache.Delete(analysisCacheKey)
	if errors.Is(err, scheduler.ErrCycleRunning) {
		renderError(w, r, err, http.StatusConflict)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] on-demand cycle failed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// latestReportHandler returns the most recent persisted report
func (s *Server) latestReportHandler(w http.ResponseWriter, r *http.Request) {
	rep, err := s.store.LatestReport(r.Context())
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, errors.New("no lifecycle report yet"), http.StatusNotFound)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] failed to get latest report: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, rep)
}

// generateReportHandler builds a fresh report from a new analysis pass and persists it
func (s *Server) generateReportHandler(w http.ResponseWriter, r *http.Request) {
	rep, err := s.lifecycle.GenerateLifecycleReport(r.Context())
	if err != nil {
		lgr.Printf("[ERROR] failed to generate report: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	id, err := s.store.SaveReport(r.Context(), rep)
	if err != nil {
		// the report is still useful to the caller
		lgr.Printf("[WARN] failed to save report: %v", err)
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "report": rep})
}

// getDelayConfigHandler returns the active delay policy
func (s *Server) getDelayConfigHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.lifecycle.DelayConfig())
}

// updateDelayConfigHandler applies a partial delay policy update on top of the active one and persists it
func (s *Server) updateDelayConfigHandler(w http.ResponseWriter, r *http.Request) {
	cfg := s.lifecycle.DelayConfig()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		renderError(w, r, fmt.Errorf("invalid delay config: %w", err), http.StatusBadRequest)
		return
	}
	if err := s.lifecycle.UpdateDelayConfig(cfg); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	s.cache.Delete(analysisCacheKey)

	if err := s.store.SaveDelayConfig(r.Context(), cfg); err != nil {
		lgr.Printf("[ERROR] failed to persist delay config: %v", err)
		renderError(w, r, fmt.Errorf("delay config applied but not persisted: %w", err), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, cfg)
}

// manualUpdateHandler flags a provider for update on the next cycle
func (s *Server) manualUpdateHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := s.store.RequestManualUpdate(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("provider %s not found", id), http.StatusNotFound)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] failed to request manual update for %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	s.cache.Delete(analysisCacheKey)
	lgr.Printf("[INFO] manual update requested for provider %s", id)
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "provider_id": id})
}

// analysis returns the cached analysis snapshot or runs a new pass
func (s *Server) analysis(ctx context.Context, refresh bool) (*analysisSnapshot, error) {
	if !refresh {
		if v, ok := s.cache.Get(analysisCacheKey); ok {
			return v.(*analysisSnapshot), nil
		}
	}

	res, err := s.lifecycle.AnalyzeAllProviderContent(ctx)
	if err != nil {
		return nil, err
	}
	snap := newSnapshot(res)
	s.cache.Set(analysisCacheKey, snap, cache.DefaultExpiration)
	return snap, nil
}

func newSnapshot(res *lifecycle.AnalysisResult) *analysisSnapshot {
	snap := &analysisSnapshot{
		GeneratedAt:        time.Now().UTC(),
		Total:              res.Total(),
		Skipped:            res.Skipped,
		StatusDistribution: res.StatusDistribution(),
		Providers:          make([]domain.ContentMetrics, 0, len(res.Metrics)),
		metrics:            res.Metrics,
	}
	if snap.Skipped == nil {
		snap.Skipped = []string{}
	}
	for _, m := range res.Metrics {
		snap.Providers = append(snap.Providers, m)
	}
	sort.Slice(snap.Providers, func(i, j int) bool { return snap.Providers[i].ProviderID < snap.Providers[j].ProviderID })
	return snap
}
