package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/lifecycle"
)

//go:generate moq -out mocks/lifecycle.go -pkg mocks -skip-ensure -fmt goimports . Lifecycle
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// ErrCycleRunning is returned when a cycle is requested while another one is in progress
var ErrCycleRunning = errors.New("lifecycle cycle already running")

// Lifecycle is the content lifecycle manager driven by the scheduler
type Lifecycle interface {
	AnalyzeAllProviderContent(ctx context.Context) (*lifecycle.AnalysisResult, error)
	GenerateUpdatePlans(metrics map[string]domain.ContentMetrics, budget float64) []*domain.ContentUpdatePlan
	ExecuteContentUpdate(ctx context.Context, plan *domain.ContentUpdatePlan) *domain.ContentUpdatePlan
	GenerateLifecycleReport(ctx context.Context) (*domain.ContentLifecycleReport, error)
	BuildReport(analysis *lifecycle.AnalysisResult) *domain.ContentLifecycleReport
}

// Store persists plans and reports produced by a cycle
type Store interface {
	SavePlan(ctx context.Context, plan *domain.ContentUpdatePlan) error
	SaveReport(ctx context.Context, rep *domain.ContentLifecycleReport) (int64, error)
}

// Recorder collects cycle telemetry
type Recorder interface {
	RecordAnalysis(distribution map[domain.ContentStatus]int, skipped int)
	RecordUpdate(plan domain.ContentUpdatePlan)
	RecordCycle(rep *domain.ContentLifecycleReport, duration time.Duration)
}

// Scheduler runs lifecycle cycles on an interval or a cron schedule:
// analyze, plan within the cycle budget, execute, persist and report.
type Scheduler struct {
	lifecycle  Lifecycle
	store      Store
	recorder   Recorder
	interval   time.Duration
	cronSpec   string
	runOnStart bool
	budget     float64
	maxWorkers int
	retryFunc  func(ctx context.Context, fn func() error) error

	running atomic.Bool // set while a cycle runs
	lastMu  sync.RWMutex
	last    *CycleResult

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Params holds scheduler dependencies and settings
type Params struct {
	Lifecycle  Lifecycle
	Store      Store
	Recorder   Recorder // optional
	Interval   time.Duration
	Cron       string // standard 5-field expression, takes precedence over Interval
	RunOnStart bool
	Budget     float64 // per-cycle update budget
	MaxWorkers int     // concurrent plan executions, 1 runs them in priority order
	RetryFunc  func(ctx context.Context, fn func() error) error
}

// CycleResult summarizes one lifecycle cycle
type CycleResult struct {
	StartedAt  time.Time                      `json:"started_at"`
	FinishedAt time.Time                      `json:"finished_at"`
	Analyzed   int                            `json:"analyzed"`
	Skipped    int                            `json:"skipped"`
	Plans      []*domain.ContentUpdatePlan    `json:"plans"`
	Succeeded  int                            `json:"succeeded"`
	Failed     int                            `json:"failed"`
	Report     *domain.ContentLifecycleReport `json:"report,omitempty"`
	ReportID   int64                          `json:"report_id,omitempty"`
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) (*Scheduler, error) {
	if params.Lifecycle == nil || params.Store == nil {
		return nil, errors.New("lifecycle and store are required")
	}
	if params.Cron != "" {
		if _, err := cronParser.Parse(params.Cron); err != nil {
			return nil, fmt.Errorf("invalid cron expression %q: %w", params.Cron, err)
		}
	}
	if params.Interval <= 0 {
		params.Interval = 24 * time.Hour
	}
	if params.MaxWorkers <= 0 {
		params.MaxWorkers = 1
	}
	if params.Recorder == nil {
		params.Recorder = nopRecorder{}
	}
	if params.RetryFunc == nil {
		params.RetryFunc = defaultRetry
	}

	return &Scheduler{
		lifecycle:  params.Lifecycle,
		store:      params.Store,
		recorder:   params.Recorder,
		interval:   params.Interval,
		cronSpec:   params.Cron,
		runOnStart: params.RunOnStart,
		budget:     params.Budget,
		maxWorkers: params.MaxWorkers,
		retryFunc:  params.RetryFunc,
	}, nil
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// defaultRetry retries persistence a few times with backoff
func defaultRetry(ctx context.Context, fn func() error) error {
	return repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(time.Second)).Do(ctx, fn)
}

// Start begins the scheduler
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	if s.cronSpec != "" {
		go s.cronWorker(ctx)
		lgr.Printf("[INFO] scheduler started with cron %q, budget %.2f", s.cronSpec, s.budget)
		return
	}
	go s.intervalWorker(ctx)
	lgr.Printf("[INFO] scheduler started with interval %v, budget %.2f", s.interval, s.budget)
}

// Stop gracefully stops the scheduler, waiting for a running cycle to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// intervalWorker runs cycles periodically
func (s *Scheduler) intervalWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	if s.runOnStart {
		s.scheduledCycle(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scheduledCycle(ctx)
		}
	}
}

// cronWorker runs cycles on the cron schedule until the context is done
func (s *Scheduler) cronWorker(ctx context.Context) {
	defer s.wg.Done()

	c := cron.New(cron.WithParser(cronParser), cron.WithChain(cron.Recover(cron.DefaultLogger)))
	if _, err := c.AddFunc(s.cronSpec, func() { s.scheduledCycle(ctx) }); err != nil {
		lgr.Printf("[ERROR] can't schedule cron %q: %v", s.cronSpec, err)
		return
	}
	if s.runOnStart {
		s.scheduledCycle(ctx)
	}
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done() // wait for a running job
}

func (s *Scheduler) scheduledCycle(ctx context.Context) {
	if _, err := s.RunCycleNow(ctx); err != nil {
		if errors.Is(err, ErrCycleRunning) {
			lgr.Printf("[INFO] skip scheduled cycle, previous one still running")
			return
		}
		lgr.Printf("[ERROR] lifecycle cycle failed: %v", err)
	}
}

// RunCycleNow runs one cycle immediately, ErrCycleRunning if a cycle is already in progress
func (s *Scheduler) RunCycleNow(ctx context.Context) (*CycleResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrCycleRunning
	}
	defer s.running.Store(false)

	res, err := s.runCycle(ctx)
	if res != nil {
		s.lastMu.Lock()
		s.last = res
		s.lastMu.Unlock()
	}
	return res, err
}

// LastCycle returns the result of the most recent cycle, nil if none ran yet
func (s *Scheduler) LastCycle() *CycleResult {
	s.lastMu.RLock()
	defer s.lastMu.RUnlock()
	return s.last
}

// Running reports whether a cycle is in progress
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

func (s *Scheduler) runCycle(ctx context.Context) (*CycleResult, error) {
	res := &CycleResult{StartedAt: time.Now()}
	lgr.Printf("[INFO] lifecycle cycle started, budget %.2f", s.budget)

	analysis, err := s.lifecycle.AnalyzeAllProviderContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze providers: %w", err)
	}
	res.Analyzed, res.Skipped = len(analysis.Metrics), len(analysis.Skipped)
	s.recorder.RecordAnalysis(analysis.StatusDistribution(), len(analysis.Skipped))

	res.Plans = s.lifecycle.GenerateUpdatePlans(analysis.Metrics, s.budget)
	lgr.Printf("[INFO] analyzed %d providers (%d skipped), %d updates planned",
		res.Analyzed, res.Skipped, len(res.Plans))

	for _, plan := range res.Plans {
		s.savePlan(ctx, plan)
	}

	execErr := s.executePlans(ctx, res.Plans)
	for _, plan := range res.Plans {
		switch {
		case plan.Completed() && plan.Success:
			res.Succeeded++
		case plan.Completed():
			res.Failed++
		}
	}

	res.Report = s.report(ctx, analysis)
	if res.Report != nil {
		err := s.retryFunc(ctx, func() error {
			id, err := s.store.SaveReport(ctx, res.Report)
			res.ReportID = id
			return err
		})
		if err != nil {
			lgr.Printf("[WARN] can't save lifecycle report: %v", err)
		}
	}

	res.FinishedAt = time.Now()
	s.recorder.RecordCycle(res.Report, res.FinishedAt.Sub(res.StartedAt))
	lgr.Printf("[INFO] lifecycle cycle finished in %v, %d updated, %d failed",
		res.FinishedAt.Sub(res.StartedAt).Round(time.Millisecond), res.Succeeded, res.Failed)

	if execErr != nil {
		return res, fmt.Errorf("execute plans: %w", execErr)
	}
	return res, nil
}

// executePlans runs plans with up to maxWorkers in parallel. Plans not started before the
// context is canceled stay unexecuted.
func (s *Scheduler) executePlans(ctx context.Context, plans []*domain.ContentUpdatePlan) error {
	g := new(errgroup.Group)
	g.SetLimit(s.maxWorkers)

	for _, plan := range plans {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			done := s.lifecycle.ExecuteContentUpdate(ctx, plan)
			s.recorder.RecordUpdate(*done)
			s.savePlan(ctx, done)
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}

// report builds the end-of-cycle report from fresh analysis, falling back to the cycle's one
func (s *Scheduler) report(ctx context.Context, analysis *lifecycle.AnalysisResult) *domain.ContentLifecycleReport {
	if ctx.Err() == nil {
		rep, err := s.lifecycle.GenerateLifecycleReport(ctx)
		if err == nil {
			return rep
		}
		lgr.Printf("[WARN] can't generate fresh lifecycle report, using cycle analysis: %v", err)
	}
	return s.lifecycle.BuildReport(analysis)
}

func (s *Scheduler) savePlan(ctx context.Context, plan *domain.ContentUpdatePlan) {
	// plans are saved even when the cycle is canceled
	saveCtx := context.WithoutCancel(ctx)
	if err := s.retryFunc(saveCtx, func() error { return s.store.SavePlan(saveCtx, plan) }); err != nil {
		lgr.Printf("[WARN] can't save plan %s for provider %s: %v", plan.ID, plan.ProviderID, err)
	}
}

type nopRecorder struct{}

func (nopRecorder) RecordAnalysis(map[domain.ContentStatus]int, int)          {}
func (nopRecorder) RecordUpdate(domain.ContentUpdatePlan)                     {}
func (nopRecorder) RecordCycle(*domain.ContentLifecycleReport, time.Duration) {}
