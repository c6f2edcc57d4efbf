package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/domain"
)

const minimalConfig = `
llm:
  endpoint: http://localhost:11434/v1
  model: llama3
publish:
  endpoint: http://localhost:9000/api/listings
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
server:
  listen: ":9090"
  timeout: 45s
  base_url: https://listings.example.com
schedule:
  cron: "0 3 * * *"
lifecycle:
  cost_per_update: 25
  cycle_budget: 250
  monthly_budget: 2000
  metrics_cache_ttl: 1m
  weights:
    quality: 0.5
    traffic: 0.2
    age: 0.2
    strategic: 0.1
  delay:
    new_campaign_delay_months: 3
    quality_issue_threshold: 65
    delay_evaluation_enabled: false
    campaign_start: "2026-01-15"
llm:
  endpoint: https://api.openai.com/v1
  api_key: ${FRESHNESS_TEST_KEY}
  model: gpt-4o-mini
publish:
  endpoint: https://listings.example.com/wp-json/listings/v1
  token: secret
  rate_limit: 5
`
		t.Setenv("FRESHNESS_TEST_KEY", "sk-test")
		cfg, err := Load(writeConfig(t, configContent))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "https://listings.example.com", cfg.Server.BaseURL)
		assert.Equal(t, "0 3 * * *", cfg.Schedule.Cron)
		assert.Equal(t, "sk-test", cfg.LLM.APIKey)
		assert.InDelta(t, 25.0, cfg.Lifecycle.CostPerUpdate, 0.001)
		assert.InDelta(t, 250.0, cfg.Lifecycle.CycleBudget, 0.001)
		assert.Equal(t, time.Minute, cfg.Lifecycle.MetricsCacheTTL)
		assert.Equal(t, WeightsConfig{Quality: 0.5, Traffic: 0.2, Age: 0.2, Strategic: 0.1}, cfg.Lifecycle.Weights)
		assert.InDelta(t, 5.0, cfg.Publish.RateLimit, 0.001)

		delay := cfg.DelayConfig(nil)
		assert.Equal(t, 3, delay.NewCampaignDelayMonths)
		assert.InDelta(t, 65.0, delay.QualityIssueThreshold, 0.001)
		assert.False(t, delay.DelayEvaluationEnabled)
		assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), delay.CampaignStart)
		assert.Equal(t, 6, delay.ExistingProviderDelayMonths, "unset fields keep defaults")
		assert.True(t, delay.ManualUpdateOverride)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, minimalConfig))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 24*time.Hour, cfg.Schedule.Interval)
		assert.False(t, cfg.Schedule.RunOnStart)
		assert.Equal(t, 1, cfg.Schedule.Workers)
		assert.InDelta(t, 50.0, cfg.Lifecycle.CostPerUpdate, 0.001)
		assert.InDelta(t, 500.0, cfg.Lifecycle.CycleBudget, 0.001)
		assert.InDelta(t, 5000.0, cfg.Lifecycle.MonthlyBudget, 0.001)
		assert.Equal(t, 5*time.Minute, cfg.Lifecycle.MetricsCacheTTL)
		assert.Equal(t, WeightsConfig{Quality: 0.4, Traffic: 0.25, Age: 0.2, Strategic: 0.15}, cfg.Lifecycle.Weights)
		assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 800, cfg.LLM.MaxTokens)
		assert.Equal(t, 3, cfg.Publish.Retries)
		assert.Equal(t, domain.DefaultDelayConfig(), cfg.DelayConfig(nil))
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configContent := `
invalid yaml content
  with bad indentation
    and no structure
`
		cfg, err := Load(writeConfig(t, configContent))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tbl := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "no llm endpoint", errMsg: "llm.endpoint is required",
			content: "llm:\n  model: x\npublish:\n  endpoint: http://p\n"},
		{name: "no model", errMsg: "llm.model is required",
			content: "llm:\n  endpoint: http://l\npublish:\n  endpoint: http://p\n"},
		{name: "no publish endpoint", errMsg: "publish.endpoint is required",
			content: "llm:\n  endpoint: http://l\n  model: x\n"},
		{name: "bad temperature", errMsg: "llm.temperature",
			content: "llm:\n  endpoint: http://l\n  model: x\n  temperature: 3\npublish:\n  endpoint: http://p\n"},
		{name: "bad cron", errMsg: "schedule.cron is invalid",
			content: minimalConfig + "schedule:\n  cron: \"every day\"\n"},
		{name: "short interval", errMsg: "schedule.interval must be at least 1 minute",
			content: minimalConfig + "schedule:\n  interval: 10s\n"},
		{name: "negative workers", errMsg: "schedule.workers must be at least 1",
			content: minimalConfig + "schedule:\n  workers: -2\n"},
		{name: "bad weights", errMsg: "lifecycle.weights must sum to 1",
			content: minimalConfig + "lifecycle:\n  weights:\n    quality: 0.9\n    traffic: 0.9\n"},
		{name: "negative budget", errMsg: "lifecycle budgets must be non-negative",
			content: minimalConfig + "lifecycle:\n  cycle_budget: -5\n"},
		{name: "short server timeout", errMsg: "server timeout must be at least 1 second",
			content: minimalConfig + "server:\n  timeout: 10ms\n"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_InvalidDelaySectionFallsBack(t *testing.T) {
	tbl := []struct {
		name    string
		section string
	}{
		{"threshold out of range", "    critical_quality_threshold: 150\n    new_campaign_delay_months: 3\n"},
		{"bad campaign start", "    campaign_start: yesterday\n"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, minimalConfig+"lifecycle:\n  delay:\n"+tt.section))
			require.NoError(t, err, "delay faults don't abort startup")
			delay := cfg.DelayConfig(map[string]string{EnvQualityIssueDelayMonths: "2"})
			want := domain.DefaultDelayConfig()
			want.QualityIssueDelayMonths = 2
			assert.Equal(t, want, delay, "whole section ignored, env still applied")
		})
	}
}

func TestConfig_DelayConfigEnvPrecedence(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+"lifecycle:\n  delay:\n    new_campaign_delay_months: 3\n    quality_issue_delay_months: 2\n"))
	require.NoError(t, err)

	delay := cfg.DelayConfig(map[string]string{EnvContentUpdateDelayMonths: "9"})
	assert.Equal(t, 9, delay.NewCampaignDelayMonths, "env wins over yaml")
	assert.Equal(t, 2, delay.QualityIssueDelayMonths, "yaml wins over defaults")
	assert.Equal(t, 30, delay.RecentlyAddedThresholdDays)
}
