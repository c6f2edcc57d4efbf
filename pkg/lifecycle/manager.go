package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/freshness/pkg/domain"
)

//go:generate moq -out mocks/provider_source.go -pkg mocks -skip-ensure -fmt goimports . ProviderSource
//go:generate moq -out mocks/quality_assessor.go -pkg mocks -skip-ensure -fmt goimports . QualityAssessor
//go:generate moq -out mocks/content_mutator.go -pkg mocks -skip-ensure -fmt goimports . ContentMutator

// ProviderSource yields provider records
type ProviderSource interface {
	ListProviders(ctx context.Context) ([]domain.Provider, error)
	GetProvider(ctx context.Context, id string) (*domain.Provider, error)
}

// QualityAssessor scores a provider's content quality
type QualityAssessor interface {
	Assess(ctx context.Context, p domain.Provider) (domain.QualityAssessment, error)
}

// ContentMutator regenerates, romanizes and publishes provider content
type ContentMutator interface {
	UpdateSections(ctx context.Context, p domain.Provider, sections []string) (*domain.Provider, error)
	Sync(ctx context.Context, p domain.Provider) (bool, error)
	ProcessRomaji(ctx context.Context, p domain.Provider) (*domain.Provider, error)
}

// schedule spacing between consecutive plans of one cycle
const planSpacing = 48 * time.Hour

// historyWindow is the look-back window for report counters
const historyWindow = 30 * 24 * time.Hour

// Manager orchestrates the analyzer and prioritizer across all providers, builds budget-constrained
// update plans, executes them through the content mutator and produces lifecycle reports.
//
// Analysis and execution are sequential with per-provider error isolation. The delay policy can be
// replaced at runtime with UpdateDelayConfig, each analysis pass uses the policy active when it started.
type Manager struct {
	source      ProviderSource
	assessor    QualityAssessor
	mutator     ContentMutator
	prioritizer *Prioritizer

	costPerUpdate float64
	monthlyBudget float64
	now           func() time.Time

	mu       sync.RWMutex
	analyzer *Analyzer

	historyMu        sync.Mutex
	activeUpdates    []*domain.ContentUpdatePlan
	completedUpdates []*domain.ContentUpdatePlan
	failedUpdates    []*domain.ContentUpdatePlan
}

// Params holds manager dependencies and settings
type Params struct {
	Source        ProviderSource
	Assessor      QualityAssessor
	Mutator       ContentMutator
	DelayConfig   domain.DelayConfig
	Weights       Weights
	CostPerUpdate float64
	MonthlyBudget float64
	Now           func() time.Time // defaults to time.Now
}

// AnalysisResult is the outcome of one analysis pass over all providers
type AnalysisResult struct {
	Metrics map[string]domain.ContentMetrics
	Skipped []string // ids of providers which failed analysis
}

// Total returns the number of providers seen in the pass, analyzed or skipped
func (r *AnalysisResult) Total() int {
	return len(r.Metrics) + len(r.Skipped)
}

// StatusDistribution counts analyzed providers per status
func (r *AnalysisResult) StatusDistribution() map[domain.ContentStatus]int {
	res := make(map[domain.ContentStatus]int)
	for _, m := range r.Metrics {
		res[m.DelayStatus]++
	}
	return res
}

// NewManager makes a lifecycle manager. All collaborators are required.
func NewManager(params Params) (*Manager, error) {
	if params.Source == nil || params.Assessor == nil || params.Mutator == nil {
		return nil, errors.New("provider source, quality assessor and content mutator are required")
	}
	if params.CostPerUpdate <= 0 {
		return nil, fmt.Errorf("cost per update must be positive, got %.2f", params.CostPerUpdate)
	}
	if err := params.DelayConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid delay config: %w", err)
	}
	if params.Weights == (Weights{}) {
		params.Weights = DefaultWeights()
	}
	if err := params.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid priority weights: %w", err)
	}
	if params.Now == nil {
		params.Now = time.Now
	}

	return &Manager{
		source:        params.Source,
		assessor:      params.Assessor,
		mutator:       params.Mutator,
		prioritizer:   NewPrioritizer(params.Weights),
		costPerUpdate: params.CostPerUpdate,
		monthlyBudget: params.MonthlyBudget,
		now:           params.Now,
		analyzer:      NewAnalyzer(params.DelayConfig, params.Now),
	}, nil
}

// DelayConfig returns the active delay policy
func (m *Manager) DelayConfig() domain.DelayConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.analyzer.Config()
}

// UpdateDelayConfig replaces the delay policy and re-wires the analyzer
func (m *Manager) UpdateDelayConfig(cfg domain.DelayConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid delay config: %w", err)
	}
	m.mu.Lock()
	m.analyzer = NewAnalyzer(cfg, m.now)
	m.mu.Unlock()
	lgr.Printf("[INFO] delay config updated: delay %dm, quality issue delay %dm, thresholds %.0f/%.0f, evaluation enabled %v",
		cfg.NewCampaignDelayMonths, cfg.QualityIssueDelayMonths, cfg.CriticalQualityThreshold,
		cfg.QualityIssueThreshold, cfg.DelayEvaluationEnabled)
	return nil
}

// CostPerUpdate returns the uniform estimated cost of one update
func (m *Manager) CostPerUpdate() float64 {
	return m.costPerUpdate
}

// AnalyzeAllProviderContent builds a fresh metrics snapshot for every provider from the source.
// A provider which fails analysis is logged and skipped, the batch continues.
// An error is returned only when the provider list itself can't be loaded.
func (m *Manager) AnalyzeAllProviderContent(ctx context.Context) (*AnalysisResult, error) {
	providers, err := m.source.ListProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}

	m.mu.RLock()
	analyzer := m.analyzer
	m.mu.RUnlock()

	res := &AnalysisResult{Metrics: make(map[string]domain.ContentMetrics, len(providers))}
	for _, p := range providers {
		metrics, err := m.analyzeProvider(ctx, analyzer, p)
		if err != nil {
			lgr.Printf("[WARN] failed to analyze provider %s: %v", p.ID, err)
			res.Skipped = append(res.Skipped, p.ID)
			continue
		}
		res.Metrics[p.ID] = metrics
	}

	lgr.Printf("[INFO] analyzed %d providers, skipped %d", len(res.Metrics), len(res.Skipped))
	return res, nil
}

func (m *Manager) analyzeProvider(ctx context.Context, analyzer *Analyzer, p domain.Provider) (domain.ContentMetrics, error) {
	if p.ID == "" {
		return domain.ContentMetrics{}, errors.New("provider has no id")
	}
	if err := ctx.Err(); err != nil {
		return domain.ContentMetrics{}, err
	}

	assessment, err := m.assessor.Assess(ctx, p)
	if err != nil {
		return domain.ContentMetrics{}, fmt.Errorf("assess quality: %w", err)
	}
	quality := assessment.QualityScore
	p.QualityScore = &quality

	res := analyzer.Analyze(p)
	return domain.ContentMetrics{
		ProviderID:          p.ID,
		ProviderName:        p.DisplayName(),
		ContentAgeDays:      res.ContentAgeDays,
		QualityScore:        quality,
		LastUpdated:         res.LastUpdated,
		TrafficScore:        TrafficScore(p.PageViews30d, p.SearchRanking, p.UserEngagement),
		WordPressSyncStatus: p.WordPressSynced,
		RomajiConsistency:   p.RomajiConsistent,
		ProviderCreatedDate: res.Created,
		ProviderAgeDays:     res.ProviderAgeDays,
		DelayStatus:         res.Status,
		EligibleUpdateDate:  res.EligibleDate,
		DelayOverrideReason: res.OverrideReason,
		CompletenessScore:   assessment.CompletenessScore,
		AccuracyScore:       assessment.AccuracyScore,
		FreshnessScore:      FreshnessScore(res.ContentAgeDays),
		PageViews30d:        p.PageViews30d,
		SearchRanking:       p.SearchRanking,
		UserEngagement:      p.UserEngagement,
	}, nil
}

// IsEligibleForPlanning reports whether a provider may appear in an update plan.
// Providers in the quiet period qualify only with an override reason.
func IsEligibleForPlanning(m domain.ContentMetrics) bool {
	switch m.DelayStatus {
	case domain.StatusReadyForReview, domain.StatusNeedsUpdate,
		domain.StatusAging, domain.StatusStale, domain.StatusOutdated:
		return true
	case domain.StatusRecentlyAdded, domain.StatusDelayPeriodActive:
		return m.HasOverride()
	case domain.StatusFresh, domain.StatusUpdateScheduled, domain.StatusUpdating,
		domain.StatusUpdated, domain.StatusFailed:
		return false
	}
	return false
}

type candidate struct {
	metrics  domain.ContentMetrics
	score    float64
	priority domain.UpdatePriority
}

// GenerateUpdatePlans selects eligible providers in descending priority order and fits them into
// the budget. Deferred providers are never planned. Selection stops at the first provider which
// would breach the budget, cost per update is uniform so no cheaper one can follow.
// A non-finite budget plans nothing.
func (m *Manager) GenerateUpdatePlans(metrics map[string]domain.ContentMetrics, budget float64) []*domain.ContentUpdatePlan {
	plans := []*domain.ContentUpdatePlan{}
	if budget <= 0 || math.IsNaN(budget) || math.IsInf(budget, 0) || len(metrics) == 0 {
		return plans
	}

	// iterate in id order so equal scores keep a deterministic order
	ids := make([]string, 0, len(metrics))
	for id := range metrics {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	candidates := make([]candidate, 0, len(ids))
	for _, id := range ids {
		mt := metrics[id]
		if !IsEligibleForPlanning(mt) {
			continue
		}
		score := m.prioritizer.Score(mt)
		priority := m.prioritizer.Tier(score)
		if priority == domain.PriorityDeferred {
			lgr.Printf("[DEBUG] provider %s deferred with priority score %.1f", id, score)
			continue
		}
		candidates = append(candidates, candidate{metrics: mt, score: score, priority: priority})
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	maxCount := int(math.Floor(budget / m.costPerUpdate))
	now := m.now()
	total := 0.0
	for _, c := range candidates {
		if len(plans) >= maxCount || total+m.costPerUpdate > budget {
			break
		}
		plans = append(plans, m.newPlan(c, now.Add(time.Duration(len(plans))*planSpacing)))
		total += m.costPerUpdate
	}

	lgr.Printf("[INFO] planned %d updates out of %d candidates, estimated cost %.2f of budget %.2f",
		len(plans), len(candidates), total, budget)
	return plans
}

func (m *Manager) newPlan(c candidate, scheduled time.Time) *domain.ContentUpdatePlan {
	reasons := m.prioritizer.Reasons(c.metrics, c.score)
	plan := &domain.ContentUpdatePlan{
		ID:                        uuid.NewString(),
		ProviderID:                c.metrics.ProviderID,
		ProviderName:              c.metrics.ProviderName,
		CurrentStatus:             c.metrics.DelayStatus,
		TargetStatus:              domain.StatusUpdated,
		Priority:                  c.priority,
		PriorityScore:             c.score,
		UpdateReasons:             reasons,
		ScheduledDate:             scheduled,
		EstimatedCost:             m.costPerUpdate,
		WordPressSyncRequired:     true,
		QualityValidationRequired: true,
	}
	plan.SectionsToUpdate = sectionsForReasons(reasons)
	plan.RomajiProcessingRequired = plan.HasReason(domain.ReasonRomajiInconsistency)
	return plan
}

// sectionsForReasons lists content sections to regenerate, description is always included
func sectionsForReasons(reasons []domain.ContentUpdateReason) []string {
	sections := []string{domain.SectionDescription}
	seen := map[string]bool{domain.SectionDescription: true}
	add := func(names ...string) {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				sections = append(sections, n)
			}
		}
	}
	for _, r := range reasons {
		switch r {
		case domain.ReasonAgeThreshold, domain.ReasonQualityDecline:
			add(domain.SectionSpecialtiesSummary)
		case domain.ReasonPerformanceIssues:
			add(domain.SectionSEOSummary)
		case domain.ReasonRomajiInconsistency:
			add(domain.SectionNameRomaji, domain.SectionAddressRomaji)
		case domain.ReasonWordPressSyncFailure, domain.ReasonManualRequest:
		}
	}
	return sections
}

// ExecuteContentUpdate runs one plan and records the outcome on it. Failures never propagate,
// they are stored in the plan's error message with success set to false.
func (m *Manager) ExecuteContentUpdate(ctx context.Context, plan *domain.ContentUpdatePlan) *domain.ContentUpdatePlan {
	started := m.now()
	plan.StartedAt = &started
	plan.CompletedAt = nil
	plan.CurrentStatus = domain.StatusUpdating
	plan.Success = false
	plan.ErrorMessage = ""
	m.trackActive(plan)

	err := m.runUpdate(ctx, plan)

	completed := m.now()
	plan.CompletedAt = &completed
	if err != nil {
		plan.CurrentStatus = domain.StatusFailed
		plan.ErrorMessage = err.Error()
		m.finish(plan, false)
		lgr.Printf("[WARN] content update for provider %s failed: %v", plan.ProviderID, err)
		return plan
	}

	plan.Success = true
	plan.CurrentStatus = domain.StatusUpdated
	plan.TargetStatus = domain.StatusUpdated
	m.finish(plan, true)
	lgr.Printf("[INFO] content update for provider %s completed, quality change %+.1f", plan.ProviderID, plan.QualityImprovement)
	return plan
}

func (m *Manager) runUpdate(ctx context.Context, plan *domain.ContentUpdatePlan) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("update panicked: %v", r)
		}
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	p, err := m.source.GetProvider(ctx, plan.ProviderID)
	if err != nil {
		return fmt.Errorf("get provider %s: %w", plan.ProviderID, err)
	}
	if p == nil {
		return fmt.Errorf("provider %s not found", plan.ProviderID)
	}

	var before domain.QualityAssessment
	if plan.QualityValidationRequired {
		if before, err = m.assessor.Assess(ctx, *p); err != nil {
			return fmt.Errorf("assess quality before update: %w", err)
		}
	}

	if plan.RomajiProcessingRequired {
		if p, err = m.mutator.ProcessRomaji(ctx, *p); err != nil {
			return fmt.Errorf("process romaji: %w", err)
		}
	}

	if p, err = m.mutator.UpdateSections(ctx, *p, plan.SectionsToUpdate); err != nil {
		return fmt.Errorf("update sections: %w", err)
	}

	if plan.QualityValidationRequired {
		after, err := m.assessor.Assess(ctx, *p)
		if err != nil {
			return fmt.Errorf("assess quality after update: %w", err)
		}
		// a regression is a valid outcome, not an error
		plan.QualityImprovement = after.QualityScore - before.QualityScore
	}

	if plan.WordPressSyncRequired {
		ok, err := m.mutator.Sync(ctx, *p)
		if err != nil {
			return fmt.Errorf("wordpress sync: %w", err)
		}
		if !ok {
			return errors.New("wordpress sync failed")
		}
	}
	return nil
}

func (m *Manager) trackActive(plan *domain.ContentUpdatePlan) {
	m.historyMu.Lock()
	defer m.historyMu.Unlock()
	m.activeUpdates = append(m.activeUpdates, plan)
}

func (m *Manager) finish(plan *domain.ContentUpdatePlan, success bool) {
	m.historyMu.Lock()
	defer m.historyMu.Unlock()
	for i, p := range m.activeUpdates {
		if p == plan {
			m.activeUpdates = append(m.activeUpdates[:i], m.activeUpdates[i+1:]...)
			break
		}
	}
	// history keeps a snapshot, the caller may re-run the same plan
	snapshot := *plan
	if success {
		m.completedUpdates = append(m.completedUpdates, &snapshot)
	} else {
		m.failedUpdates = append(m.failedUpdates, &snapshot)
	}
	m.pruneHistory()
}

// pruneHistory drops completed and failed plans older than the report window, caller holds historyMu
func (m *Manager) pruneHistory() {
	cutoff := m.now().Add(-historyWindow)
	keep := func(plans []*domain.ContentUpdatePlan) []*domain.ContentUpdatePlan {
		res := plans[:0]
		for _, p := range plans {
			if p.CompletedAt != nil && p.CompletedAt.Before(cutoff) {
				continue
			}
			res = append(res, p)
		}
		clear(plans[len(res):])
		return res
	}
	m.completedUpdates = keep(m.completedUpdates)
	m.failedUpdates = keep(m.failedUpdates)
}

// RestoreHistory seeds completed and failed update history, used after restart with persisted plans.
// Plans without a completion time or completed before the report window are ignored.
func (m *Manager) RestoreHistory(plans []*domain.ContentUpdatePlan) {
	m.historyMu.Lock()
	defer m.historyMu.Unlock()
	for _, p := range plans {
		if !p.Completed() {
			continue
		}
		if p.Success {
			m.completedUpdates = append(m.completedUpdates, p)
			continue
		}
		m.failedUpdates = append(m.failedUpdates, p)
	}
	m.pruneHistory()
}

// History returns copies of the active, completed and failed update lists
func (m *Manager) History() (active, completed, failed []domain.ContentUpdatePlan) {
	m.historyMu.Lock()
	defer m.historyMu.Unlock()
	cp := func(src []*domain.ContentUpdatePlan) []domain.ContentUpdatePlan {
		res := make([]domain.ContentUpdatePlan, len(src))
		for i, p := range src {
			res[i] = *p
		}
		return res
	}
	return cp(m.activeUpdates), cp(m.completedUpdates), cp(m.failedUpdates)
}
