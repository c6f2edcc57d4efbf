package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"github.com/umputun/freshness/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public base URL used in feed links"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:freshness.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Lifecycle cycle scheduling"`

	Lifecycle LifecycleConfig `yaml:"lifecycle" json:"lifecycle" jsonschema:"description=Content lifecycle policy and budget"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for content regeneration"`

	Publish PublishConfig `yaml:"publish" json:"publish" jsonschema:"description=Publishing endpoint for updated listings"`
}

// ScheduleConfig defines when lifecycle cycles run. Cron takes precedence over interval.
type ScheduleConfig struct {
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=24h,description=Time between lifecycle cycles"`
	Cron       string        `yaml:"cron" json:"cron" jsonschema:"description=Standard 5-field cron expression (overrides interval)"`
	RunOnStart bool          `yaml:"run_on_start" json:"run_on_start" jsonschema:"default=false,description=Run a cycle immediately on startup"`
	Workers    int           `yaml:"workers" json:"workers" jsonschema:"default=1,minimum=1,description=Plans executed concurrently within a cycle"`
}

// LifecycleConfig holds the delay policy, budget and priority weights
type LifecycleConfig struct {
	Delay           DelaySettings `yaml:"delay" json:"delay" jsonschema:"description=Quiet-period policy (environment variables override)"`
	CostPerUpdate   float64       `yaml:"cost_per_update" json:"cost_per_update" jsonschema:"default=50,description=Estimated cost of one content update"`
	CycleBudget     float64       `yaml:"cycle_budget" json:"cycle_budget" jsonschema:"default=500,description=Budget available to one lifecycle cycle"`
	MonthlyBudget   float64       `yaml:"monthly_budget" json:"monthly_budget" jsonschema:"default=5000,description=Monthly budget used for utilization reporting"`
	Weights         WeightsConfig `yaml:"weights" json:"weights" jsonschema:"description=Priority weights (must sum to 1)"`
	MetricsCacheTTL time.Duration `yaml:"metrics_cache_ttl" json:"metrics_cache_ttl" jsonschema:"default=5m,description=How long analysis results are cached for the API"`
}

// DelaySettings are optional YAML overrides of the built-in delay policy
type DelaySettings struct {
	NewCampaignDelayMonths      *int     `yaml:"new_campaign_delay_months" json:"new_campaign_delay_months,omitempty" jsonschema:"minimum=0,description=Quiet period for new providers in months"`
	ExistingProviderDelayMonths *int     `yaml:"existing_provider_delay_months" json:"existing_provider_delay_months,omitempty" jsonschema:"minimum=0,description=Quiet period for providers created before campaign_start"`
	QualityIssueDelayMonths     *int     `yaml:"quality_issue_delay_months" json:"quality_issue_delay_months,omitempty" jsonschema:"minimum=0,description=Shorter quiet period for low quality providers"`
	CriticalQualityThreshold    *float64 `yaml:"critical_quality_threshold" json:"critical_quality_threshold,omitempty" jsonschema:"minimum=0,maximum=100,description=Quality below this bypasses the quiet period"`
	QualityIssueThreshold       *float64 `yaml:"quality_issue_threshold" json:"quality_issue_threshold,omitempty" jsonschema:"minimum=0,maximum=100,description=Quality below this is a quality issue"`
	QualityIssueOverride        *bool    `yaml:"quality_issue_override" json:"quality_issue_override,omitempty" jsonschema:"description=Quality issues bypass the quiet period"`
	ManualUpdateOverride        *bool    `yaml:"manual_update_override" json:"manual_update_override,omitempty" jsonschema:"description=Manual update requests bypass the quiet period"`
	CriticalPriorityOverride    *bool    `yaml:"critical_priority_override" json:"critical_priority_override,omitempty" jsonschema:"description=Critical quality bypasses the quiet period"`
	RecentlyAddedThresholdDays  *int     `yaml:"recently_added_threshold_days" json:"recently_added_threshold_days,omitempty" jsonschema:"minimum=0,description=Providers younger than this are recently added"`
	DelayEvaluationEnabled      *bool    `yaml:"delay_evaluation_enabled" json:"delay_evaluation_enabled,omitempty" jsonschema:"description=Disable to classify by content age only"`
	CampaignStart               string   `yaml:"campaign_start" json:"campaign_start,omitempty" jsonschema:"description=Campaign start date (YYYY-MM-DD)"`
}

// WeightsConfig holds the priority score weights, all zero means defaults
type WeightsConfig struct {
	Quality   float64 `yaml:"quality" json:"quality" jsonschema:"default=0.4"`
	Traffic   float64 `yaml:"traffic" json:"traffic" jsonschema:"default=0.25"`
	Age       float64 `yaml:"age" json:"age" jsonschema:"default=0.2"`
	Strategic float64 `yaml:"strategic" json:"strategic" jsonschema:"default=0.15"`
}

// LLMConfig holds LLM configuration for content regeneration
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=800,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
}

// PublishConfig holds the listing publishing endpoint settings
type PublishConfig struct {
	Endpoint  string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=Listing publish API endpoint"`
	Token     string        `yaml:"token" json:"token" jsonschema:"description=Bearer token (can use environment variable)"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	RateLimit float64       `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=2,description=Maximum publish requests per second"`
	Retries   int           `yaml:"retries" json:"retries" jsonschema:"default=3,description=Publish attempts on server errors"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:freshness.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.Interval == 0 {
		cfg.Schedule.Interval = 24 * time.Hour
	}
	if cfg.Schedule.Workers == 0 {
		cfg.Schedule.Workers = 1
	}

	// set defaults for lifecycle
	if cfg.Lifecycle.CostPerUpdate == 0 {
		cfg.Lifecycle.CostPerUpdate = 50
	}
	if cfg.Lifecycle.CycleBudget == 0 {
		cfg.Lifecycle.CycleBudget = 500
	}
	if cfg.Lifecycle.MonthlyBudget == 0 {
		cfg.Lifecycle.MonthlyBudget = 5000
	}
	if cfg.Lifecycle.MetricsCacheTTL == 0 {
		cfg.Lifecycle.MetricsCacheTTL = 5 * time.Minute
	}
	if cfg.Lifecycle.Weights == (WeightsConfig{}) {
		cfg.Lifecycle.Weights = WeightsConfig{Quality: 0.4, Traffic: 0.25, Age: 0.2, Strategic: 0.15}
	}

	// set defaults for LLM
	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.3
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 800
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 60 * time.Second
	}

	// set defaults for publish
	if cfg.Publish.Timeout == 0 {
		cfg.Publish.Timeout = 30 * time.Second
	}
	if cfg.Publish.RateLimit == 0 {
		cfg.Publish.RateLimit = 2
	}
	if cfg.Publish.Retries == 0 {
		cfg.Publish.Retries = 3
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate LLM config
	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	// validate publish config
	if cfg.Publish.Endpoint == "" {
		return fmt.Errorf("publish.endpoint is required")
	}
	if cfg.Publish.RateLimit < 0 {
		return fmt.Errorf("publish.rate_limit must be non-negative")
	}

	// validate lifecycle config
	if cfg.Lifecycle.CostPerUpdate <= 0 {
		return fmt.Errorf("lifecycle.cost_per_update must be positive")
	}
	if cfg.Lifecycle.CycleBudget < 0 || cfg.Lifecycle.MonthlyBudget < 0 {
		return fmt.Errorf("lifecycle budgets must be non-negative")
	}
	w := cfg.Lifecycle.Weights
	if sum := w.Quality + w.Traffic + w.Age + w.Strategic; sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("lifecycle.weights must sum to 1, got %.3f", sum)
	}

	// validate schedule config
	if cfg.Schedule.Cron != "" {
		if _, err := cron.ParseStandard(cfg.Schedule.Cron); err != nil {
			return fmt.Errorf("schedule.cron is invalid: %w", err)
		}
	} else if cfg.Schedule.Interval < time.Minute {
		return fmt.Errorf("schedule.interval must be at least 1 minute")
	}
	if cfg.Schedule.Workers < 1 {
		return fmt.Errorf("schedule.workers must be at least 1")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// DelayConfig resolves the delay policy: built-in defaults, then the YAML delay section,
// then environment variables from env. An invalid delay section is logged and ignored.
func (c *Config) DelayConfig(env map[string]string) domain.DelayConfig {
	base, err := c.Lifecycle.Delay.apply(domain.DefaultDelayConfig())
	if err != nil {
		lgr.Printf("[WARN] invalid delay section, using defaults: %v", err)
		base = domain.DefaultDelayConfig()
	}
	return DelayFromEnv(env, base)
}

// apply overlays the set fields on top of base
func (d DelaySettings) apply(base domain.DelayConfig) (domain.DelayConfig, error) {
	res := base
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	setFloat := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	setBool := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	setInt(&res.NewCampaignDelayMonths, d.NewCampaignDelayMonths)
	setInt(&res.ExistingProviderDelayMonths, d.ExistingProviderDelayMonths)
	setInt(&res.QualityIssueDelayMonths, d.QualityIssueDelayMonths)
	setFloat(&res.CriticalQualityThreshold, d.CriticalQualityThreshold)
	setFloat(&res.QualityIssueThreshold, d.QualityIssueThreshold)
	setBool(&res.QualityIssueOverride, d.QualityIssueOverride)
	setBool(&res.ManualUpdateOverride, d.ManualUpdateOverride)
	setBool(&res.CriticalPriorityOverride, d.CriticalPriorityOverride)
	setInt(&res.RecentlyAddedThresholdDays, d.RecentlyAddedThresholdDays)
	setBool(&res.DelayEvaluationEnabled, d.DelayEvaluationEnabled)

	if d.CampaignStart != "" {
		ts, err := time.Parse(dateLayout, d.CampaignStart)
		if err != nil {
			return base, fmt.Errorf("campaign_start %q is not a YYYY-MM-DD date", d.CampaignStart)
		}
		res.CampaignStart = ts
	}

	if err := res.Validate(); err != nil {
		return base, err
	}
	return res, nil
}
