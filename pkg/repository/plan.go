package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/freshness/pkg/domain"
)

// PlanRepository handles update plan database operations
type PlanRepository struct {
	db *sqlx.DB
}

// PlanFilter narrows ListPlans results, zero values mean no filtering
type PlanFilter struct {
	ProviderID     string
	CompletedSince time.Time // only plans completed at or after this time
	Success        *bool     // only completed plans with this outcome
	Limit          int
}

// planSQL represents an update plan for SQL operations
type planSQL struct {
	ID                 string       `db:"id"`
	ProviderID         string       `db:"provider_id"`
	ProviderName       string       `db:"provider_name"`
	CurrentStatus      string       `db:"current_status"`
	TargetStatus       string       `db:"target_status"`
	Priority           string       `db:"priority"`
	PriorityScore      float64      `db:"priority_score"`
	UpdateReasons      string       `db:"update_reasons"`
	Sections           string       `db:"sections"`
	ScheduledDate      time.Time    `db:"scheduled_date"`
	EstimatedCost      float64      `db:"estimated_cost"`
	RomajiRequired     bool         `db:"romaji_required"`
	SyncRequired       bool         `db:"sync_required"`
	ValidationRequired bool         `db:"validation_required"`
	StartedAt          sql.NullTime `db:"started_at"`
	CompletedAt        sql.NullTime `db:"completed_at"`
	Success            bool         `db:"success"`
	QualityImprovement float64      `db:"quality_improvement"`
	ErrorMessage       string       `db:"error_message"`
}

var planColumns = []string{
	"id", "provider_id", "provider_name", "current_status", "target_status", "priority", "priority_score",
	"update_reasons", "sections", "scheduled_date", "estimated_cost",
	"romaji_required", "sync_required", "validation_required",
	"started_at", "completed_at", "success", "quality_improvement", "error_message",
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *sqlx.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// SavePlan inserts the plan or updates the stored copy with its latest state
func (r *PlanRepository) SavePlan(ctx context.Context, plan *domain.ContentUpdatePlan) error {
	if plan.ID == "" {
		return errors.New("plan id is required")
	}
	row, err := planFromDomain(plan)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO update_plans (id, provider_id, provider_name, current_status, target_status, priority,
			priority_score, update_reasons, sections, scheduled_date, estimated_cost,
			romaji_required, sync_required, validation_required,
			started_at, completed_at, success, quality_improvement, error_message)
		VALUES (:id, :provider_id, :provider_name, :current_status, :target_status, :priority,
			:priority_score, :update_reasons, :sections, :scheduled_date, :estimated_cost,
			:romaji_required, :sync_required, :validation_required,
			:started_at, :completed_at, :success, :quality_improvement, :error_message)
		ON CONFLICT(id) DO UPDATE SET
			current_status = excluded.current_status, target_status = excluded.target_status,
			started_at = excluded.started_at, completed_at = excluded.completed_at,
			success = excluded.success, quality_improvement = excluded.quality_improvement,
			error_message = excluded.error_message
	`
	return withRetry(ctx, "save plan", func() error {
		_, err := r.db.NamedExecContext(ctx, query, row)
		return err
	})
}

// ListPlans returns plans matching the filter, most recently scheduled first
func (r *PlanRepository) ListPlans(ctx context.Context, filter PlanFilter) ([]*domain.ContentUpdatePlan, error) {
	qb := sq.Select(planColumns...).From("update_plans").OrderBy("scheduled_date DESC", "id")
	if filter.ProviderID != "" {
		qb = qb.Where(sq.Eq{"provider_id": filter.ProviderID})
	}
	if !filter.CompletedSince.IsZero() {
		qb = qb.Where(sq.GtOrEq{"completed_at": filter.CompletedSince})
	}
	if filter.Success != nil {
		qb = qb.Where(sq.NotEq{"completed_at": nil}).Where(sq.Eq{"success": *filter.Success})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list plans query: %w", err)
	}

	var rows []planSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	res := make([]*domain.ContentUpdatePlan, 0, len(rows))
	for i := range rows {
		plan, err := rows[i].toDomain()
		if err != nil {
			lgr.Printf("[WARN] skip stored plan %s: %v", rows[i].ID, err)
			continue
		}
		res = append(res, plan)
	}
	return res, nil
}

func planFromDomain(p *domain.ContentUpdatePlan) (*planSQL, error) {
	reasons, err := toJSON(p.UpdateReasons)
	if err != nil {
		return nil, err
	}
	sections, err := toJSON(p.SectionsToUpdate)
	if err != nil {
		return nil, err
	}
	row := &planSQL{
		ID:                 p.ID,
		ProviderID:         p.ProviderID,
		ProviderName:       p.ProviderName,
		CurrentStatus:      string(p.CurrentStatus),
		TargetStatus:       string(p.TargetStatus),
		Priority:           string(p.Priority),
		PriorityScore:      p.PriorityScore,
		UpdateReasons:      reasons,
		Sections:           sections,
		ScheduledDate:      p.ScheduledDate,
		EstimatedCost:      p.EstimatedCost,
		RomajiRequired:     p.RomajiProcessingRequired,
		SyncRequired:       p.WordPressSyncRequired,
		ValidationRequired: p.QualityValidationRequired,
		Success:            p.Success,
		QualityImprovement: p.QualityImprovement,
		ErrorMessage:       p.ErrorMessage,
	}
	if p.StartedAt != nil {
		row.StartedAt = sql.NullTime{Time: *p.StartedAt, Valid: true}
	}
	if p.CompletedAt != nil {
		row.CompletedAt = sql.NullTime{Time: *p.CompletedAt, Valid: true}
	}
	return row, nil
}

func (s *planSQL) toDomain() (*domain.ContentUpdatePlan, error) {
	for _, st := range []string{s.CurrentStatus, s.TargetStatus} {
		if !domain.ContentStatus(st).Valid() {
			return nil, fmt.Errorf("unknown content status %q", st)
		}
	}
	reasons, err := fromJSON[domain.ContentUpdateReason](s.UpdateReasons)
	if err != nil {
		return nil, err
	}
	sections, err := fromJSON[string](s.Sections)
	if err != nil {
		return nil, err
	}
	p := &domain.ContentUpdatePlan{
		ID:                        s.ID,
		ProviderID:                s.ProviderID,
		ProviderName:              s.ProviderName,
		CurrentStatus:             domain.ContentStatus(s.CurrentStatus),
		TargetStatus:              domain.ContentStatus(s.TargetStatus),
		Priority:                  domain.UpdatePriority(s.Priority),
		PriorityScore:             s.PriorityScore,
		UpdateReasons:             reasons,
		ScheduledDate:             s.ScheduledDate,
		EstimatedCost:             s.EstimatedCost,
		SectionsToUpdate:          sections,
		RomajiProcessingRequired:  s.RomajiRequired,
		WordPressSyncRequired:     s.SyncRequired,
		QualityValidationRequired: s.ValidationRequired,
		Success:                   s.Success,
		QualityImprovement:        s.QualityImprovement,
		ErrorMessage:              s.ErrorMessage,
	}
	if s.StartedAt.Valid {
		t := s.StartedAt.Time
		p.StartedAt = &t
	}
	if s.CompletedAt.Valid {
		t := s.CompletedAt.Time
		p.CompletedAt = &t
	}
	return p, nil
}
