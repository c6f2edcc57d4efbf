package domain

// ContentStatus is the lifecycle state of one provider's content.
// It is derived on every analysis pass and never stored as the source of truth.
type ContentStatus string

// traditional content-age ladder, used when delay evaluation is disabled
const (
	StatusFresh    ContentStatus = "fresh"
	StatusAging    ContentStatus = "aging"
	StatusStale    ContentStatus = "stale"
	StatusOutdated ContentStatus = "outdated"
)

// delay-aware lifecycle
const (
	StatusRecentlyAdded     ContentStatus = "recently_added"
	StatusDelayPeriodActive ContentStatus = "delay_period_active"
	StatusReadyForReview    ContentStatus = "ready_for_review"
	StatusNeedsUpdate       ContentStatus = "needs_update"
	StatusUpdateScheduled   ContentStatus = "update_scheduled"
	StatusUpdating          ContentStatus = "updating"
	StatusUpdated           ContentStatus = "updated"
	StatusFailed            ContentStatus = "failed"
)

// AllContentStatuses returns every status in declaration order
func AllContentStatuses() []ContentStatus {
	return []ContentStatus{
		StatusFresh, StatusAging, StatusStale, StatusOutdated,
		StatusRecentlyAdded, StatusDelayPeriodActive, StatusReadyForReview, StatusNeedsUpdate,
		StatusUpdateScheduled, StatusUpdating, StatusUpdated, StatusFailed,
	}
}

// Valid reports whether s is one of the known statuses
func (s ContentStatus) Valid() bool {
	switch s {
	case StatusFresh, StatusAging, StatusStale, StatusOutdated,
		StatusRecentlyAdded, StatusDelayPeriodActive, StatusReadyForReview, StatusNeedsUpdate,
		StatusUpdateScheduled, StatusUpdating, StatusUpdated, StatusFailed:
		return true
	}
	return false
}

// InQuietPeriod reports whether the status blocks non-override updates
func (s ContentStatus) InQuietPeriod() bool {
	return s == StatusRecentlyAdded || s == StatusDelayPeriodActive
}

// UpdatePriority is the discrete priority tier of an update candidate
type UpdatePriority string

// priority tiers, highest first
const (
	PriorityCritical UpdatePriority = "critical"
	PriorityHigh     UpdatePriority = "high"
	PriorityMedium   UpdatePriority = "medium"
	PriorityLow      UpdatePriority = "low"
	PriorityDeferred UpdatePriority = "deferred"
)

// ContentUpdateReason explains why an update is warranted
type ContentUpdateReason string

// update reasons
const (
	ReasonAgeThreshold         ContentUpdateReason = "age_threshold"
	ReasonQualityDecline       ContentUpdateReason = "quality_decline"
	ReasonRomajiInconsistency  ContentUpdateReason = "romaji_inconsistency"
	ReasonWordPressSyncFailure ContentUpdateReason = "wordpress_sync_failure"
	ReasonPerformanceIssues    ContentUpdateReason = "performance_issues"
	ReasonManualRequest        ContentUpdateReason = "manual_request"
)

// override reason tags for fixed conditions. Quality overrides carry the score, see lifecycle.Analyzer
const (
	OverrideManualUpdate    = "manual_update_requested"
	OverrideWordPressSync   = "wordpress_sync_failure"
	OverrideRomaji          = "romaji_inconsistency"
	OverrideCriticalQuality = "critical_quality_score"
	OverrideQualityIssue    = "quality_issue_score"
)
