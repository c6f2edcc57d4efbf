package domain

import "time"

// ContentMetrics is the per-provider snapshot produced by one analysis pass.
// A new snapshot supersedes the previous one, snapshots are not mutated.
type ContentMetrics struct {
	ProviderID          string        `json:"provider_id"`
	ProviderName        string        `json:"provider_name,omitempty"`
	ContentAgeDays      int           `json:"content_age_days"`
	QualityScore        float64       `json:"quality_score"`
	LastUpdated         time.Time     `json:"last_updated"`
	TrafficScore        float64       `json:"traffic_score"`
	WordPressSyncStatus bool          `json:"wordpress_sync_status"`
	RomajiConsistency   bool          `json:"romaji_consistency"`
	ProviderCreatedDate time.Time     `json:"provider_created_date"`
	ProviderAgeDays     int           `json:"provider_age_days"`
	DelayStatus         ContentStatus `json:"delay_status"`
	EligibleUpdateDate  time.Time     `json:"eligible_for_update_date"`
	DelayOverrideReason string        `json:"delay_override_reason,omitempty"`

	CompletenessScore float64 `json:"completeness_score"`
	AccuracyScore     float64 `json:"accuracy_score"`
	FreshnessScore    float64 `json:"freshness_score"`

	PageViews30d   int     `json:"page_views_30d"`
	SearchRanking  int     `json:"search_ranking"`
	UserEngagement float64 `json:"user_engagement_score"`
}

// HasOverride reports whether an override reason was detected for the provider
func (m ContentMetrics) HasOverride() bool {
	return m.DelayOverrideReason != ""
}
