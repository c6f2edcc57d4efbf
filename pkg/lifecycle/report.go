package lifecycle

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/freshness/pkg/domain"
)

// recommendation thresholds
const (
	outdatedShareLimit   = 20.0 // percent of providers
	lowFreshnessLimit    = 50.0
	highUtilizationLimit = 90.0
)

// GenerateLifecycleReport re-runs the full analysis and aggregates it with the update history
func (m *Manager) GenerateLifecycleReport(ctx context.Context) (*domain.ContentLifecycleReport, error) {
	analysis, err := m.AnalyzeAllProviderContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("analyze providers: %w", err)
	}
	return m.BuildReport(analysis), nil
}

// BuildReport aggregates an analysis pass and the update history into a report
func (m *Manager) BuildReport(analysis *AnalysisResult) *domain.ContentLifecycleReport {
	now := m.now()
	rep := &domain.ContentLifecycleReport{
		GeneratedAt:        now,
		TotalProviders:     len(analysis.Metrics),
		SkippedProviders:   len(analysis.Skipped),
		StatusDistribution: analysis.StatusDistribution(),
		MonthlyBudget:      m.monthlyBudget,
	}

	m.addMetricAggregates(rep, analysis.Metrics, now)
	m.addHistoryAggregates(rep, now)
	m.addProjection(rep, analysis.Metrics, now)
	rep.RecommendedActions = recommendations(rep)

	lgr.Printf("[INFO] lifecycle report: %d providers, %d eligible, %d in quiet period, %d updated and %d failed in 30 days",
		rep.TotalProviders, rep.EligibleForUpdate, rep.DelayActive, rep.UpdatesCompleted30d, rep.UpdatesFailed30d)
	return rep
}

func (m *Manager) addMetricAggregates(rep *domain.ContentLifecycleReport, metrics map[string]domain.ContentMetrics, now time.Time) {
	if len(metrics) == 0 {
		return
	}

	var freshnessSum float64
	var romajiOK, synced int
	for _, mt := range metrics {
		freshnessSum += mt.FreshnessScore
		if mt.RomajiConsistency {
			romajiOK++
		}
		if mt.WordPressSyncStatus {
			synced++
		}
		if IsEligibleForPlanning(mt) {
			rep.EligibleForUpdate++
		}
		if mt.HasOverride() {
			rep.OverridesActive++
		}
		if mt.DelayStatus.InQuietPeriod() {
			rep.DelayActive++
			if mt.EligibleUpdateDate.After(now) && (rep.NextEligibleDate == nil || mt.EligibleUpdateDate.Before(*rep.NextEligibleDate)) {
				next := mt.EligibleUpdateDate
				rep.NextEligibleDate = &next
			}
		}
	}

	total := float64(len(metrics))
	rep.AverageFreshnessScore = freshnessSum / total
	rep.RomajiConsistencyScore = float64(romajiOK) / total * 100
	rep.WordPressSyncRate = float64(synced) / total * 100
}

func (m *Manager) addHistoryAggregates(rep *domain.ContentLifecycleReport, now time.Time) {
	m.historyMu.Lock()
	defer m.historyMu.Unlock()

	since := now.Add(-historyWindow)
	inWindow := func(p *domain.ContentUpdatePlan) bool {
		return p.CompletedAt != nil && !p.CompletedAt.Before(since)
	}

	var improvementSum float64
	var improved int
	for _, p := range m.completedUpdates {
		if !inWindow(p) {
			continue
		}
		rep.UpdatesCompleted30d++
		rep.BudgetSpent30d += p.EstimatedCost
		if p.QualityImprovement > 0 {
			improvementSum += p.QualityImprovement
			improved++
		}
	}
	for _, p := range m.failedUpdates {
		if !inWindow(p) {
			continue
		}
		rep.UpdatesFailed30d++
		rep.BudgetSpent30d += p.EstimatedCost
	}

	if improved > 0 {
		rep.AverageQualityImprovement = improvementSum / float64(improved)
	}
	if m.monthlyBudget > 0 {
		rep.BudgetUtilization = rep.BudgetSpent30d / m.monthlyBudget * 100
	}
}

// addProjection estimates next month's workload: providers eligible now plus those leaving
// the quiet period within 30 days, capped by what the monthly budget allows
func (m *Manager) addProjection(rep *domain.ContentLifecycleReport, metrics map[string]domain.ContentMetrics, now time.Time) {
	horizon := now.Add(historyWindow)
	projected := rep.EligibleForUpdate
	for _, mt := range metrics {
		if mt.DelayStatus.InQuietPeriod() && !mt.HasOverride() && !mt.EligibleUpdateDate.After(horizon) {
			projected++
		}
	}
	if m.monthlyBudget > 0 {
		projected = min(projected, int(math.Floor(m.monthlyBudget/m.costPerUpdate)))
	}
	rep.ProjectedUpdatesNextMonth = projected
	rep.ProjectedCostNextMonth = float64(projected) * m.costPerUpdate
}

func recommendations(rep *domain.ContentLifecycleReport) []string {
	res := []string{}
	if rep.TotalProviders > 0 {
		share := float64(rep.StatusDistribution[domain.StatusOutdated]) / float64(rep.TotalProviders) * 100
		if share > outdatedShareLimit {
			res = append(res, fmt.Sprintf("%.0f%% of providers have outdated content, consider a larger update budget", share))
		}
		if rep.RomajiConsistencyScore < 100 {
			res = append(res, fmt.Sprintf("romaji inconsistencies found, consistency score %.1f%%", rep.RomajiConsistencyScore))
		}
		if rep.WordPressSyncRate < 100 {
			res = append(res, fmt.Sprintf("wordpress sync failures found, sync rate %.1f%%", rep.WordPressSyncRate))
		}
		if rep.AverageFreshnessScore < lowFreshnessLimit {
			res = append(res, fmt.Sprintf("average freshness score is low (%.1f), schedule more refreshes", rep.AverageFreshnessScore))
		}
	}
	if rep.UpdatesFailed30d > 0 {
		res = append(res, fmt.Sprintf("%d updates failed in the last 30 days, review error messages", rep.UpdatesFailed30d))
	}
	if rep.BudgetUtilization > highUtilizationLimit {
		res = append(res, fmt.Sprintf("budget utilization is %.0f%%, consider increasing the monthly budget", rep.BudgetUtilization))
	}
	if rep.EligibleForUpdate == 0 && rep.DelayActive > 0 && rep.NextEligibleDate != nil {
		res = append(res, fmt.Sprintf("%d providers are in the quiet period, next eligible on %s",
			rep.DelayActive, rep.NextEligibleDate.Format("2006-01-02")))
	}
	if rep.SkippedProviders > 0 {
		res = append(res, fmt.Sprintf("%d providers could not be analyzed, check logs", rep.SkippedProviders))
	}
	return res
}
