package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/freshness/pkg/domain"
)

// ReportRepository stores generated lifecycle reports
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// SaveReport stores a report and returns its id
func (r *ReportRepository) SaveReport(ctx context.Context, rep *domain.ContentLifecycleReport) (int64, error) {
	if rep == nil {
		return 0, errors.New("report is nil")
	}
	data, err := json.Marshal(rep)
	if err != nil {
		return 0, fmt.Errorf("marshal report: %w", err)
	}

	var id int64
	err = withRetry(ctx, "save report", func() error {
		res, err := r.db.ExecContext(ctx, "INSERT INTO lifecycle_reports (generated_at, report) VALUES (?, ?)",
			rep.GeneratedAt, string(data))
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// LatestReport returns the most recently generated report, ErrNotFound if none was saved
func (r *ReportRepository) LatestReport(ctx context.Context) (*domain.ContentLifecycleReport, error) {
	var data string
	err := r.db.GetContext(ctx, &data, "SELECT report FROM lifecycle_reports ORDER BY generated_at DESC, id DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lifecycle report: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get latest report: %w", err)
	}

	var rep domain.ContentLifecycleReport
	if err := json.Unmarshal([]byte(data), &rep); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &rep, nil
}
