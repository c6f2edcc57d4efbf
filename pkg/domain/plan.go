package domain

import "time"

// ContentUpdatePlan describes one provider selected for update in a planning cycle.
// Execution mutates it in place, it is terminal once CompletedAt is set.
type ContentUpdatePlan struct {
	ID                        string                `json:"id"`
	ProviderID                string                `json:"provider_id"`
	ProviderName              string                `json:"provider_name,omitempty"`
	CurrentStatus             ContentStatus         `json:"current_status"`
	TargetStatus              ContentStatus         `json:"target_status"`
	Priority                  UpdatePriority        `json:"priority"`
	PriorityScore             float64               `json:"priority_score"`
	UpdateReasons             []ContentUpdateReason `json:"update_reasons"`
	ScheduledDate             time.Time             `json:"scheduled_date"`
	EstimatedCost             float64               `json:"estimated_cost"`
	SectionsToUpdate          []string              `json:"sections_to_update"`
	RomajiProcessingRequired  bool                  `json:"romaji_processing_required"`
	WordPressSyncRequired     bool                  `json:"wordpress_sync_required"`
	QualityValidationRequired bool                  `json:"quality_validation_required"`

	StartedAt          *time.Time `json:"started_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	Success            bool       `json:"success"`
	QualityImprovement float64    `json:"quality_improvement"`
	ErrorMessage       string     `json:"error_message,omitempty"`
}

// HasReason reports whether the plan lists the given reason
func (p *ContentUpdatePlan) HasReason(reason ContentUpdateReason) bool {
	for _, r := range p.UpdateReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// Completed reports whether the plan reached a terminal state
func (p *ContentUpdatePlan) Completed() bool {
	return p.CompletedAt != nil
}
