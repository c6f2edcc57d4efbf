package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/domain"
)

func TestReportRepository(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.Report.LatestReport(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	older := &domain.ContentLifecycleReport{GeneratedAt: base, TotalProviders: 3}
	newer := &domain.ContentLifecycleReport{
		GeneratedAt:        base.Add(24 * time.Hour),
		TotalProviders:     5,
		StatusDistribution: map[domain.ContentStatus]int{domain.StatusFresh: 2, domain.StatusStale: 3},
		RecommendedActions: []string{"average freshness score is low (35.0), schedule more refreshes"},
	}

	id1, err := repos.Report.SaveReport(ctx, newer)
	require.NoError(t, err)
	id2, err := repos.Report.SaveReport(ctx, older)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	got, err := repos.Report.LatestReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, got.TotalProviders, "latest by generation time, not insert order")
	assert.Equal(t, 3, got.StatusDistribution[domain.StatusStale])
	assert.Equal(t, newer.RecommendedActions, got.RecommendedActions)

	_, err = repos.Report.SaveReport(ctx, nil)
	require.EqualError(t, err, "report is nil")
}
