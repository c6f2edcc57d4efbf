package domain

import (
	"fmt"
	"time"
)

// DaysPerMonth is the month length used for all delay arithmetic
const DaysPerMonth = 30

// DelayConfig is the quiet-period policy consumed by the content aging analyzer.
// It is treated as immutable; replacing it requires an explicit config update.
type DelayConfig struct {
	NewCampaignDelayMonths      int       `json:"new_campaign_delay_months"`
	ExistingProviderDelayMonths int       `json:"existing_provider_delay_months"`
	QualityIssueDelayMonths     int       `json:"quality_issue_delay_months"`
	CriticalQualityThreshold    float64   `json:"critical_quality_threshold"`
	QualityIssueThreshold       float64   `json:"quality_issue_threshold"`
	QualityIssueOverride        bool      `json:"quality_issue_override"`
	ManualUpdateOverride        bool      `json:"manual_update_override"`
	CriticalPriorityOverride    bool      `json:"critical_priority_override"`
	RecentlyAddedThresholdDays  int       `json:"recently_added_threshold_days"`
	DelayEvaluationEnabled      bool      `json:"delay_evaluation_enabled"`
	CampaignStart               time.Time `json:"campaign_start,omitempty"` // zero means every provider belongs to the current campaign
}

// DefaultDelayConfig returns the documented fallback policy
func DefaultDelayConfig() DelayConfig {
	return DelayConfig{
		NewCampaignDelayMonths:      6,
		ExistingProviderDelayMonths: 6,
		QualityIssueDelayMonths:     4,
		CriticalQualityThreshold:    60,
		QualityIssueThreshold:       70,
		QualityIssueOverride:        true,
		ManualUpdateOverride:        true,
		CriticalPriorityOverride:    true,
		RecentlyAddedThresholdDays:  30,
		DelayEvaluationEnabled:      true,
	}
}

// Validate checks the policy for values the analyzer can't work with
func (c DelayConfig) Validate() error {
	if c.NewCampaignDelayMonths < 0 {
		return fmt.Errorf("new_campaign_delay_months must be non-negative, got %d", c.NewCampaignDelayMonths)
	}
	if c.ExistingProviderDelayMonths < 0 {
		return fmt.Errorf("existing_provider_delay_months must be non-negative, got %d", c.ExistingProviderDelayMonths)
	}
	if c.QualityIssueDelayMonths < 0 {
		return fmt.Errorf("quality_issue_delay_months must be non-negative, got %d", c.QualityIssueDelayMonths)
	}
	if c.CriticalQualityThreshold < 0 || c.CriticalQualityThreshold > 100 {
		return fmt.Errorf("critical_quality_threshold must be between 0 and 100, got %.1f", c.CriticalQualityThreshold)
	}
	if c.QualityIssueThreshold < 0 || c.QualityIssueThreshold > 100 {
		return fmt.Errorf("quality_issue_threshold must be between 0 and 100, got %.1f", c.QualityIssueThreshold)
	}
	if c.RecentlyAddedThresholdDays < 0 {
		return fmt.Errorf("recently_added_threshold_days must be non-negative, got %d", c.RecentlyAddedThresholdDays)
	}
	return nil
}

// IsExistingProvider reports whether a provider created at the given time predates the campaign
func (c DelayConfig) IsExistingProvider(created time.Time) bool {
	return !c.CampaignStart.IsZero() && created.Before(c.CampaignStart)
}
