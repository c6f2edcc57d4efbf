package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/joho/godotenv"

	"github.com/umputun/freshness/pkg/domain"
)

// environment variables of the delay policy
const (
	EnvContentUpdateDelayMonths    = "CONTENT_UPDATE_DELAY_MONTHS"
	EnvExistingProviderDelayMonths = "EXISTING_PROVIDER_DELAY_MONTHS"
	EnvQualityIssueDelayMonths     = "QUALITY_ISSUE_DELAY_MONTHS"
	EnvCriticalQualityThreshold    = "CRITICAL_QUALITY_THRESHOLD"
	EnvQualityIssueThreshold       = "QUALITY_ISSUE_THRESHOLD"
	EnvQualityIssueOverride        = "QUALITY_ISSUE_OVERRIDE"
	EnvManualUpdateOverride        = "MANUAL_UPDATE_OVERRIDE"
	EnvCriticalPriorityOverride    = "CRITICAL_PRIORITY_OVERRIDE"
	EnvRecentlyAddedThresholdDays  = "RECENTLY_ADDED_THRESHOLD_DAYS"
	EnvDelayEvaluationEnabled      = "DELAY_EVALUATION_ENABLED"
	EnvCampaignStartDate           = "CAMPAIGN_START_DATE"
)

const dateLayout = "2006-01-02"

// EnvMap returns the process environment merged with the optional env file.
// Process variables win over the file, a missing file is not an error.
func EnvMap(envFile string) (map[string]string, error) {
	res := map[string]string{}
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		for k, v := range fileEnv {
			res[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			res[k] = v
		}
	}
	return res, nil
}

// DelayFromEnv overlays delay policy values from env on top of base. A value which can't be parsed,
// or which is out of range, is ignored with a warning and the base value is kept for that field.
func DelayFromEnv(env map[string]string, base domain.DelayConfig) domain.DelayConfig {
	res := base

	months := func(key string, dst *int) {
		v, ok := env[key]
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			lgr.Printf("[WARN] invalid %s=%q, keeping %d", key, v, *dst)
			return
		}
		*dst = n
	}
	threshold := func(key string, dst *float64) {
		v, ok := env[key]
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || f < 0 || f > 100 {
			lgr.Printf("[WARN] invalid %s=%q, keeping %.1f", key, v, *dst)
			return
		}
		*dst = f
	}
	flag := func(key string, dst *bool) {
		v, ok := env[key]
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			lgr.Printf("[WARN] invalid %s=%q, keeping %v", key, v, *dst)
			return
		}
		*dst = b
	}

	months(EnvContentUpdateDelayMonths, &res.NewCampaignDelayMonths)
	months(EnvExistingProviderDelayMonths, &res.ExistingProviderDelayMonths)
	months(EnvQualityIssueDelayMonths, &res.QualityIssueDelayMonths)
	threshold(EnvCriticalQualityThreshold, &res.CriticalQualityThreshold)
	threshold(EnvQualityIssueThreshold, &res.QualityIssueThreshold)
	flag(EnvQualityIssueOverride, &res.QualityIssueOverride)
	flag(EnvManualUpdateOverride, &res.ManualUpdateOverride)
	flag(EnvCriticalPriorityOverride, &res.CriticalPriorityOverride)
	months(EnvRecentlyAddedThresholdDays, &res.RecentlyAddedThresholdDays)
	flag(EnvDelayEvaluationEnabled, &res.DelayEvaluationEnabled)

	if v := strings.TrimSpace(env[EnvCampaignStartDate]); v != "" {
		ts, err := time.Parse(dateLayout, v)
		if err != nil {
			lgr.Printf("[WARN] invalid %s=%q, expected YYYY-MM-DD", EnvCampaignStartDate, v)
		} else {
			res.CampaignStart = ts
		}
	}

	return res
}
