package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/freshness/pkg/config"
	"github.com/umputun/freshness/pkg/content"
	"github.com/umputun/freshness/pkg/lifecycle"
	"github.com/umputun/freshness/pkg/llm"
	"github.com/umputun/freshness/pkg/publish"
	"github.com/umputun/freshness/pkg/quality"
	"github.com/umputun/freshness/pkg/repository"
	"github.com/umputun/freshness/pkg/romaji"
	"github.com/umputun/freshness/pkg/scheduler"
	"github.com/umputun/freshness/pkg/service"
	"github.com/umputun/freshness/pkg/telemetry"
	"github.com/umputun/freshness/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string  `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	EnvFile string  `long:"env-file" env:"ENV_FILE" default:".env" description:"env file with delay policy overrides"`
	Once    bool    `long:"once" description:"run a single lifecycle cycle, print the report and exit"`
	DryRun  bool    `long:"dry-run" description:"print update plans without executing them and exit"`
	Budget  float64 `long:"budget" description:"cycle budget override"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

// historyWindow is how far back completed plans are restored into the manager on startup
const historyWindow = 30 * 24 * time.Hour

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	lgr.Printf("[INFO] starting freshness version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts, os.Stdout)
	cancel()

	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Print("[INFO] shutdown complete")
}

// run wires all components and runs a single cycle, a dry run or the scheduler with the server
func run(ctx context.Context, opts Opts, out io.Writer) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if secrets := nonEmpty(cfg.LLM.APIKey, cfg.Publish.Token); len(secrets) > 0 {
		setupLog(opts.Debug, secrets...)
	}

	env, err := config.EnvMap(opts.EnvFile)
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	svc := service.NewLifecycleService(repos)
	manager, err := newManager(ctx, cfg, env, repos, svc)
	if err != nil {
		return err
	}

	budget := cfg.Lifecycle.CycleBudget
	if opts.Budget > 0 {
		budget = opts.Budget
	}

	if opts.DryRun {
		analysis, err := manager.AnalyzeAllProviderContent(ctx)
		if err != nil {
			return fmt.Errorf("failed to analyze content: %w", err)
		}
		return printJSON(out, manager.GenerateUpdatePlans(analysis.Metrics, budget))
	}

	recorder := telemetry.NewRecorder()
	sched, err := scheduler.NewScheduler(scheduler.Params{
		Lifecycle:  manager,
		Store:      svc,
		Recorder:   recorder,
		Interval:   cfg.Schedule.Interval,
		Cron:       cfg.Schedule.Cron,
		RunOnStart: cfg.Schedule.RunOnStart,
		Budget:     budget,
		MaxWorkers: cfg.Schedule.Workers,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	if opts.Once {
		res, err := sched.RunCycleNow(ctx)
		if err != nil {
			return fmt.Errorf("lifecycle cycle failed: %w", err)
		}
		lgr.Printf("[INFO] cycle done: analyzed %d, planned %d, succeeded %d, failed %d",
			res.Analyzed, len(res.Plans), res.Succeeded, res.Failed)
		return printJSON(out, res.Report)
	}

	srv := server.New(server.Params{
		Config:    configAdapter{cfg: cfg},
		Lifecycle: manager,
		Store:     svc,
		Scheduler: sched,
		Metrics:   recorder.Handler(),
		Version:   revision,
		Debug:     opts.Debug,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sched.Start(gctx)
		<-gctx.Done()
		sched.Stop()
		return nil
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// newManager builds the lifecycle manager with its content pipeline. The delay policy comes from
// the config and environment unless one was saved at runtime, completed plans of the last 30 days
// are restored into its update history.
func newManager(ctx context.Context, cfg *config.Config, env map[string]string,
	repos *repository.Repositories, svc *service.LifecycleService) (*lifecycle.Manager, error) {
	delayCfg := cfg.DelayConfig(env)
	stored, err := svc.LoadDelayConfig(ctx)
	switch {
	case err != nil:
		lgr.Printf("[WARN] failed to load saved delay config, using configured one: %v", err)
	case stored != nil && stored.Validate() != nil:
		lgr.Printf("[WARN] saved delay config is invalid, using configured one: %v", stored.Validate())
	case stored != nil:
		lgr.Printf("[INFO] using delay config saved at runtime")
		delayCfg = *stored
	}

	updater := content.NewUpdater(llm.NewWriter(cfg.LLM), romaji.NewNormalizer(), publish.NewPublisher(cfg.Publish),
		repos.Provider, nil)
	assessor := newScoringAssessor(quality.NewAssessor(quality.DefaultMinDescriptionLength), repos.Provider)

	w := cfg.Lifecycle.Weights
	manager, err := lifecycle.NewManager(lifecycle.Params{
		Source:        repos.Provider,
		Assessor:      assessor,
		Mutator:       updater,
		DelayConfig:   delayCfg,
		Weights:       lifecycle.Weights{Quality: w.Quality, Traffic: w.Traffic, Age: w.Age, Strategic: w.Strategic},
		CostPerUpdate: cfg.Lifecycle.CostPerUpdate,
		MonthlyBudget: cfg.Lifecycle.MonthlyBudget,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lifecycle manager: %w", err)
	}

	history, err := svc.CompletedPlansSince(ctx, time.Now().Add(-historyWindow))
	if err != nil {
		lgr.Printf("[WARN] failed to restore update history: %v", err)
		return manager, nil
	}
	manager.RestoreHistory(history)
	lgr.Printf("[DEBUG] restored %d completed plans", len(history))
	return manager, nil
}

// configAdapter exposes the loaded config to the server
type configAdapter struct {
	cfg *config.Config
}

func (c configAdapter) GetServerConfig() (listen string, timeout time.Duration) {
	return c.cfg.Server.Listen, c.cfg.Server.Timeout
}

func (c configAdapter) GetBaseURL() string { return c.cfg.Server.BaseURL }

func (c configAdapter) GetCycleBudget() float64 { return c.cfg.Lifecycle.CycleBudget }

func (c configAdapter) GetMetricsCacheTTL() time.Duration { return c.cfg.Lifecycle.MetricsCacheTTL }

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func nonEmpty(vals ...string) []string {
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

func setupLog(dbg bool, secs ...string) {
	// stdout is reserved for --once and --dry-run output
	logOpts := []lgr.Option{lgr.Out(os.Stderr), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
