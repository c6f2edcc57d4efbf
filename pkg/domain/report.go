package domain

import "time"

// ContentLifecycleReport is an aggregate snapshot of content health across all providers.
// It is immutable once produced.
type ContentLifecycleReport struct {
	GeneratedAt        time.Time             `json:"generated_at"`
	TotalProviders     int                   `json:"total_providers"`
	SkippedProviders   int                   `json:"skipped_providers"`
	StatusDistribution map[ContentStatus]int `json:"status_distribution"`
	EligibleForUpdate  int                   `json:"eligible_for_update"`
	DelayActive        int                   `json:"delay_active"`
	OverridesActive    int                   `json:"overrides_active"`
	NextEligibleDate   *time.Time            `json:"next_eligible_date,omitempty"`

	UpdatesCompleted30d       int     `json:"updates_completed_30d"`
	UpdatesFailed30d          int     `json:"updates_failed_30d"`
	AverageQualityImprovement float64 `json:"average_quality_improvement"`

	AverageFreshnessScore  float64 `json:"average_freshness_score"`
	RomajiConsistencyScore float64 `json:"romaji_consistency_score"`
	WordPressSyncRate      float64 `json:"wordpress_sync_rate"`

	MonthlyBudget             float64 `json:"monthly_budget"`
	BudgetSpent30d            float64 `json:"budget_spent_30d"`
	BudgetUtilization         float64 `json:"budget_utilization"`
	ProjectedUpdatesNextMonth int     `json:"projected_updates_next_month"`
	ProjectedCostNextMonth    float64 `json:"projected_cost_next_month"`

	RecommendedActions []string `json:"recommended_actions"`
}
