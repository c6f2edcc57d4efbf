package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/freshness/pkg/domain"
)

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
	assert.NoError(t, Weights{Quality: 1}.Validate())
	assert.Error(t, Weights{Quality: 0.5, Traffic: 0.2}.Validate())
	assert.Error(t, Weights{Quality: 1.2, Traffic: -0.2}.Validate())
}

func TestNewPrioritizer_InvalidWeightsFallBack(t *testing.T) {
	p := NewPrioritizer(Weights{Quality: 3})
	assert.Equal(t, DefaultWeights(), p.weights)
}

func TestPrioritizer_Score(t *testing.T) {
	p := NewPrioritizer(DefaultWeights())

	tbl := []struct {
		name    string
		metrics domain.ContentMetrics
		want    float64
	}{
		{name: "healthy and fresh", want: 0,
			metrics: domain.ContentMetrics{QualityScore: 100, WordPressSyncStatus: true, RomajiConsistency: true}},
		{name: "everything wrong", want: 95.5,
			metrics: domain.ContentMetrics{QualityScore: 0, TrafficScore: 100, ContentAgeDays: 500}},
		{name: "low quality only", want: 20,
			metrics: domain.ContentMetrics{QualityScore: 50, WordPressSyncStatus: true, RomajiConsistency: true}},
		{name: "unsynced", want: 6,
			metrics: domain.ContentMetrics{QualityScore: 100, RomajiConsistency: true}},
		{name: "half year old", want: 10,
			metrics: domain.ContentMetrics{QualityScore: 100, ContentAgeDays: 182, WordPressSyncStatus: true, RomajiConsistency: true}},
		{name: "out of range inputs clamp", want: 65,
			metrics: domain.ContentMetrics{QualityScore: -50, TrafficScore: 250, WordPressSyncStatus: true, RomajiConsistency: true}},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			score := p.Score(tt.metrics)
			assert.InDelta(t, tt.want, score, 0.1)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		})
	}
}

func TestPrioritizer_Tier(t *testing.T) {
	p := NewPrioritizer(DefaultWeights())
	tbl := []struct {
		score float64
		want  domain.UpdatePriority
	}{
		{100, domain.PriorityCritical},
		{80, domain.PriorityCritical},
		{79.9, domain.PriorityHigh},
		{60, domain.PriorityHigh},
		{59.9, domain.PriorityMedium},
		{40, domain.PriorityMedium},
		{39.9, domain.PriorityLow},
		{20, domain.PriorityLow},
		{19.9, domain.PriorityDeferred},
		{0, domain.PriorityDeferred},
	}
	for _, tt := range tbl {
		assert.Equal(t, tt.want, p.Tier(tt.score), "score %.1f", tt.score)
	}
}

func TestPrioritizer_Reasons(t *testing.T) {
	p := NewPrioritizer(DefaultWeights())
	healthy := domain.ContentMetrics{QualityScore: 95, WordPressSyncStatus: true, RomajiConsistency: true}

	t.Run("nothing wrong falls back to manual request", func(t *testing.T) {
		assert.Equal(t, []domain.ContentUpdateReason{domain.ReasonManualRequest}, p.Reasons(healthy, 0))
	})

	t.Run("old and low quality", func(t *testing.T) {
		m := healthy
		m.ContentAgeDays = 200
		m.QualityScore = 60
		assert.Equal(t, []domain.ContentUpdateReason{domain.ReasonAgeThreshold, domain.ReasonQualityDecline}, p.Reasons(m, 0))
	})

	t.Run("romaji and sync", func(t *testing.T) {
		m := healthy
		m.RomajiConsistency = false
		m.WordPressSyncStatus = false
		assert.Equal(t, []domain.ContentUpdateReason{domain.ReasonRomajiInconsistency, domain.ReasonWordPressSyncFailure},
			p.Reasons(m, 0))
	})

	t.Run("busy page with mediocre content", func(t *testing.T) {
		m := healthy
		m.TrafficScore = 85
		m.QualityScore = 78
		assert.Equal(t, []domain.ContentUpdateReason{domain.ReasonPerformanceIssues}, p.Reasons(m, 0))
	})

	t.Run("manual override is always listed", func(t *testing.T) {
		m := healthy
		m.ContentAgeDays = 200
		m.DelayOverrideReason = domain.OverrideManualUpdate
		assert.Equal(t, []domain.ContentUpdateReason{domain.ReasonAgeThreshold, domain.ReasonManualRequest}, p.Reasons(m, 0))
	})
}

func TestTrafficScore(t *testing.T) {
	assert.InDelta(t, 0.0, TrafficScore(0, 0, 0), 0.001)
	assert.InDelta(t, 100.0, TrafficScore(1000, 1, 100), 0.001)
	assert.InDelta(t, 100.0, TrafficScore(50000, 1, 500), 0.001)
	assert.InDelta(t, 59.0, TrafficScore(500, 3, 50), 0.001)
	assert.InDelta(t, 25.0, TrafficScore(500, 20, 0), 0.001, "ranking past 10 adds nothing")
	assert.InDelta(t, 0.0, TrafficScore(-10, -1, -5), 0.001)
}
