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

func TestDelayFromEnv(t *testing.T) {
	t.Run("empty env keeps base", func(t *testing.T) {
		assert.Equal(t, domain.DefaultDelayConfig(), DelayFromEnv(nil, domain.DefaultDelayConfig()))
	})

	t.Run("all values", func(t *testing.T) {
		env := map[string]string{
			EnvContentUpdateDelayMonths:    "8",
			EnvExistingProviderDelayMonths: "12",
			EnvQualityIssueDelayMonths:     " 2 ",
			EnvCriticalQualityThreshold:    "55.5",
			EnvQualityIssueThreshold:       "75",
			EnvQualityIssueOverride:        "false",
			EnvManualUpdateOverride:        "0",
			EnvCriticalPriorityOverride:    "FALSE",
			EnvRecentlyAddedThresholdDays:  "14",
			EnvDelayEvaluationEnabled:      "false",
			EnvCampaignStartDate:           "2026-03-01",
		}
		cfg := DelayFromEnv(env, domain.DefaultDelayConfig())
		assert.Equal(t, domain.DelayConfig{
			NewCampaignDelayMonths:      8,
			ExistingProviderDelayMonths: 12,
			QualityIssueDelayMonths:     2,
			CriticalQualityThreshold:    55.5,
			QualityIssueThreshold:       75,
			QualityIssueOverride:        false,
			ManualUpdateOverride:        false,
			CriticalPriorityOverride:    false,
			RecentlyAddedThresholdDays:  14,
			DelayEvaluationEnabled:      false,
			CampaignStart:               time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		}, cfg)
	})

	t.Run("bad values fall back per field", func(t *testing.T) {
		env := map[string]string{
			EnvContentUpdateDelayMonths:   "six",
			EnvQualityIssueDelayMonths:    "-1",
			EnvCriticalQualityThreshold:   "150",
			EnvQualityIssueThreshold:      "abc",
			EnvManualUpdateOverride:       "maybe",
			EnvRecentlyAddedThresholdDays: "10",
			EnvCampaignStartDate:          "03/01/2026",
		}
		cfg := DelayFromEnv(env, domain.DefaultDelayConfig())
		want := domain.DefaultDelayConfig()
		want.RecentlyAddedThresholdDays = 10
		assert.Equal(t, want, cfg)
	})

	t.Run("blank values are ignored", func(t *testing.T) {
		base := domain.DefaultDelayConfig()
		base.NewCampaignDelayMonths = 4
		cfg := DelayFromEnv(map[string]string{EnvContentUpdateDelayMonths: "  ", EnvDelayEvaluationEnabled: ""}, base)
		assert.Equal(t, base, cfg)
	})

	t.Run("result is always valid", func(t *testing.T) {
		env := map[string]string{EnvCriticalQualityThreshold: "-3", EnvRecentlyAddedThresholdDays: "-30"}
		assert.NoError(t, DelayFromEnv(env, domain.DefaultDelayConfig()).Validate())
	})
}

func TestEnvMap(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "CONTENT_UPDATE_DELAY_MONTHS=9\nQUALITY_ISSUE_THRESHOLD=65\n# comment\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Setenv("QUALITY_ISSUE_THRESHOLD", "72")

	env, err := EnvMap(envFile)
	require.NoError(t, err)
	assert.Equal(t, "9", env[EnvContentUpdateDelayMonths])
	assert.Equal(t, "72", env[EnvQualityIssueThreshold], "process env wins over the file")

	t.Run("missing file is fine", func(t *testing.T) {
		env, err := EnvMap(filepath.Join(t.TempDir(), "nope.env"))
		require.NoError(t, err)
		assert.Equal(t, "72", env[EnvQualityIssueThreshold])
	})

	t.Run("no file", func(t *testing.T) {
		env, err := EnvMap("")
		require.NoError(t, err)
		assert.NotEmpty(t, env)
	})
}
