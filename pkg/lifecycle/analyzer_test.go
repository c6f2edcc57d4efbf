package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/domain"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func daysAgo(d int) time.Time { return testNow.AddDate(0, 0, -d) }

func qualityPtr(v float64) *float64 { return &v }

// testProvider makes a healthy provider: synced, romaji consistent, no manual request
func testProvider(id string, createdDaysAgo, updatedDaysAgo int, quality float64) domain.Provider {
	return domain.Provider{
		ID:               id,
		Name:             "clinic " + id,
		CreatedAt:        daysAgo(createdDaysAgo),
		LastUpdated:      daysAgo(updatedDaysAgo),
		QualityScore:     qualityPtr(quality),
		WordPressSynced:  true,
		RomajiConsistent: true,
	}
}

func TestAnalyzer_Scenarios(t *testing.T) {
	enabled := domain.DefaultDelayConfig()
	disabled := domain.DefaultDelayConfig()
	disabled.DelayEvaluationEnabled = false

	tbl := []struct {
		name     string
		cfg      domain.DelayConfig
		provider domain.Provider
		status   domain.ContentStatus
		override string
	}{
		{name: "recently added", cfg: enabled, provider: testProvider("p1", 10, 10, 90),
			status: domain.StatusRecentlyAdded},
		{name: "delay period active", cfg: enabled, provider: testProvider("p2", 100, 100, 90),
			status: domain.StatusDelayPeriodActive},
		{name: "critical quality override", cfg: enabled, provider: testProvider("p3", 100, 100, 55),
			status: domain.StatusNeedsUpdate, override: "critical_quality_score_55.0"},
		{name: "past delay, fresh content", cfg: enabled, provider: testProvider("p4", 200, 10, 90),
			status: domain.StatusFresh},
		{name: "past delay, old content", cfg: enabled, provider: testProvider("p5", 200, 45, 90),
			status: domain.StatusReadyForReview},
		{name: "evaluation disabled", cfg: disabled, provider: testProvider("p6", 300, 200, 90),
			status: domain.StatusOutdated},
		{name: "evaluation disabled, fresh", cfg: disabled, provider: testProvider("p7", 5, 5, 90),
			status: domain.StatusFresh},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(tt.cfg, fixedClock)
			res := a.Analyze(tt.provider)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.override, res.OverrideReason)
			assert.Equal(t, tt.status, a.Classify(tt.provider))
		})
	}
}

func TestAnalyzer_QuietPeriodOverrides(t *testing.T) {
	a := NewAnalyzer(domain.DefaultDelayConfig(), fixedClock)

	t.Run("recently added but unsynced", func(t *testing.T) {
		p := testProvider("p1", 10, 10, 90)
		p.WordPressSynced = false
		res := a.Analyze(p)
		assert.Equal(t, domain.StatusNeedsUpdate, res.Status)
		assert.Equal(t, domain.OverrideWordPressSync, res.OverrideReason)
	})

	t.Run("delay period with manual request", func(t *testing.T) {
		p := testProvider("p2", 100, 100, 90)
		p.ManualUpdateRequested = true
		res := a.Analyze(p)
		assert.Equal(t, domain.StatusNeedsUpdate, res.Status)
		assert.Equal(t, domain.OverrideManualUpdate, res.OverrideReason)
	})

	t.Run("override does not change status outside quiet period", func(t *testing.T) {
		p := testProvider("p3", 200, 45, 90)
		p.RomajiConsistent = false
		res := a.Analyze(p)
		assert.Equal(t, domain.StatusReadyForReview, res.Status)
		assert.Equal(t, domain.OverrideRomaji, res.OverrideReason)
	})
}

func TestAnalyzer_CheckOverridePriority(t *testing.T) {
	cfg := domain.DefaultDelayConfig()
	a := NewAnalyzer(cfg, fixedClock)

	everything := testProvider("p1", 100, 100, 0)
	everything.ManualUpdateRequested = true
	everything.WordPressSynced = false
	everything.RomajiConsistent = false

	assert.Equal(t, "critical_quality_score_50.0", a.CheckOverride(everything, 50))
	assert.Equal(t, "quality_issue_score_65.5", a.CheckOverride(everything, 65.5))
	assert.Equal(t, domain.OverrideManualUpdate, a.CheckOverride(everything, 90))

	unsynced := testProvider("p2", 100, 100, 90)
	unsynced.WordPressSynced = false
	unsynced.RomajiConsistent = false
	assert.Equal(t, domain.OverrideWordPressSync, a.CheckOverride(unsynced, 90))

	romaji := testProvider("p3", 100, 100, 90)
	romaji.RomajiConsistent = false
	assert.Equal(t, domain.OverrideRomaji, a.CheckOverride(romaji, 90))

	assert.Empty(t, a.CheckOverride(testProvider("p4", 100, 100, 90), 90))
	assert.Empty(t, a.CheckOverride(testProvider("p5", 100, 100, 70), 70), "threshold itself is not below")

	t.Run("critical override disabled falls to quality issue", func(t *testing.T) {
		c := cfg
		c.CriticalPriorityOverride = false
		assert.Equal(t, "quality_issue_score_50.0", NewAnalyzer(c, fixedClock).CheckOverride(everything, 50))
	})

	t.Run("quality overrides disabled", func(t *testing.T) {
		c := cfg
		c.CriticalPriorityOverride = false
		c.QualityIssueOverride = false
		assert.Equal(t, domain.OverrideManualUpdate, NewAnalyzer(c, fixedClock).CheckOverride(everything, 50))
	})

	t.Run("manual override disabled", func(t *testing.T) {
		c := cfg
		c.ManualUpdateOverride = false
		p := testProvider("p6", 100, 100, 90)
		p.ManualUpdateRequested = true
		assert.Empty(t, NewAnalyzer(c, fixedClock).CheckOverride(p, 90))
	})
}

func TestAnalyzer_Boundaries(t *testing.T) {
	a := NewAnalyzer(domain.DefaultDelayConfig(), fixedClock)

	assert.Equal(t, domain.StatusRecentlyAdded, a.Classify(testProvider("p1", 30, 30, 90)), "threshold day is still recent")
	assert.Equal(t, domain.StatusDelayPeriodActive, a.Classify(testProvider("p2", 31, 31, 90)))
	assert.Equal(t, domain.StatusDelayPeriodActive, a.Classify(testProvider("p3", 179, 179, 90)))
	assert.Equal(t, domain.StatusReadyForReview, a.Classify(testProvider("p4", 180, 180, 90)), "quiet period ends on day 180")
	assert.Equal(t, domain.StatusFresh, a.Classify(testProvider("p5", 180, 30, 90)))
	assert.Equal(t, domain.StatusReadyForReview, a.Classify(testProvider("p6", 180, 31, 90)))
}

func TestAnalyzer_QualityIssueDelay(t *testing.T) {
	cfg := domain.DefaultDelayConfig()
	cfg.CriticalPriorityOverride = false
	cfg.QualityIssueOverride = false
	a := NewAnalyzer(cfg, fixedClock)

	// quality issue delay is 4 months, the standard delay is 6
	assert.Equal(t, domain.StatusDelayPeriodActive, a.Classify(testProvider("p1", 119, 119, 65)))
	assert.Equal(t, domain.StatusReadyForReview, a.Classify(testProvider("p2", 120, 119, 65)))
	assert.Equal(t, domain.StatusDelayPeriodActive, a.Classify(testProvider("p3", 120, 119, 75)))

	assert.Equal(t, daysAgo(100).AddDate(0, 0, 120), a.EligibleUpdateDate(daysAgo(100), 65))
	assert.Equal(t, daysAgo(100).AddDate(0, 0, 180), a.EligibleUpdateDate(daysAgo(100), 75))
}

func TestAnalyzer_ExistingProviderDelay(t *testing.T) {
	cfg := domain.DefaultDelayConfig()
	cfg.ExistingProviderDelayMonths = 12
	cfg.CampaignStart = daysAgo(50)
	a := NewAnalyzer(cfg, fixedClock)

	res := a.Analyze(testProvider("old", 200, 200, 90))
	assert.Equal(t, domain.StatusDelayPeriodActive, res.Status, "pre-campaign provider waits 12 months")
	assert.Equal(t, daysAgo(200).AddDate(0, 0, 360), res.EligibleDate)

	res = a.Analyze(testProvider("new", 40, 40, 90))
	assert.Equal(t, domain.StatusDelayPeriodActive, res.Status)
	assert.Equal(t, daysAgo(40).AddDate(0, 0, 180), res.EligibleDate)

	// without campaign start every provider is a new campaign provider
	cfg.CampaignStart = time.Time{}
	assert.Equal(t, domain.StatusReadyForReview, NewAnalyzer(cfg, fixedClock).Classify(testProvider("old", 200, 200, 90)))
}

func TestAnalyzer_MissingData(t *testing.T) {
	a := NewAnalyzer(domain.DefaultDelayConfig(), fixedClock)

	t.Run("missing creation date uses last update", func(t *testing.T) {
		p := testProvider("p1", 0, 50, 90)
		p.CreatedAt = time.Time{}
		res := a.Analyze(p)
		assert.Equal(t, daysAgo(50), res.Created)
		assert.Equal(t, 50, res.ProviderAgeDays)
		assert.Equal(t, domain.StatusDelayPeriodActive, res.Status)
	})

	t.Run("missing both dates defaults to a year ago", func(t *testing.T) {
		p := testProvider("p2", 0, 0, 90)
		p.CreatedAt, p.LastUpdated = time.Time{}, time.Time{}
		res := a.Analyze(p)
		assert.Equal(t, testNow.AddDate(-1, 0, 0), res.Created)
		assert.Equal(t, 365, res.ProviderAgeDays)
		assert.Equal(t, 365, res.ContentAgeDays)
		assert.Equal(t, domain.StatusReadyForReview, res.Status)
	})

	t.Run("missing last update uses creation", func(t *testing.T) {
		p := testProvider("p3", 200, 0, 90)
		p.LastUpdated = time.Time{}
		res := a.Analyze(p)
		assert.Equal(t, 200, res.ContentAgeDays)
	})

	t.Run("missing quality never overrides", func(t *testing.T) {
		p := testProvider("p4", 100, 100, 0)
		p.QualityScore = nil
		res := a.Analyze(p)
		assert.InDelta(t, 70.0, res.QualityScore, 0.001)
		assert.Empty(t, res.OverrideReason)
		assert.Equal(t, domain.StatusDelayPeriodActive, res.Status)
	})

	t.Run("future dates count as zero days", func(t *testing.T) {
		p := testProvider("p5", 0, 0, 90)
		p.CreatedAt = testNow.Add(48 * time.Hour)
		p.LastUpdated = testNow.Add(48 * time.Hour)
		res := a.Analyze(p)
		assert.Equal(t, 0, res.ProviderAgeDays)
		assert.Equal(t, 0, res.ContentAgeDays)
		assert.Equal(t, domain.StatusRecentlyAdded, res.Status)
	})
}

func TestAnalyzer_PanicIsOutdated(t *testing.T) {
	a := NewAnalyzer(domain.DefaultDelayConfig(), func() time.Time { panic("clock is broken") })
	var res Analysis
	require.NotPanics(t, func() { res = a.Analyze(testProvider("p1", 10, 10, 90)) })
	assert.Equal(t, domain.StatusOutdated, res.Status)
}

func TestAnalyzer_Deterministic(t *testing.T) {
	a := NewAnalyzer(domain.DefaultDelayConfig(), fixedClock)
	p := testProvider("p1", 100, 60, 55)
	first := a.Analyze(p)
	for range 10 {
		assert.Equal(t, first, a.Analyze(p))
	}
}

func TestAnalyzer_DelayMonotonicity(t *testing.T) {
	providers := []domain.Provider{
		testProvider("p1", 45, 45, 90),
		testProvider("p2", 100, 20, 90),
		testProvider("p3", 250, 250, 90),
		testProvider("p4", 400, 100, 90),
	}
	for _, p := range providers {
		wasQuiet := false
		for months := 0; months <= 18; months++ {
			cfg := domain.DefaultDelayConfig()
			cfg.NewCampaignDelayMonths = months
			quiet := NewAnalyzer(cfg, fixedClock).Classify(p).InQuietPeriod()
			if wasQuiet {
				assert.True(t, quiet, "provider %s left quiet period when delay grew to %d months", p.ID, months)
			}
			wasQuiet = quiet
		}
	}
}

func TestContentAgeStatus(t *testing.T) {
	tbl := []struct {
		days int
		want domain.ContentStatus
	}{
		{0, domain.StatusFresh},
		{30, domain.StatusFresh},
		{31, domain.StatusAging},
		{90, domain.StatusAging},
		{91, domain.StatusStale},
		{180, domain.StatusStale},
		{181, domain.StatusOutdated},
		{1000, domain.StatusOutdated},
	}
	for _, tt := range tbl {
		assert.Equal(t, tt.want, ContentAgeStatus(tt.days), "days %d", tt.days)
	}
}

func TestFreshnessScore(t *testing.T) {
	assert.InDelta(t, 100.0, FreshnessScore(-5), 0.001)
	assert.InDelta(t, 100.0, FreshnessScore(0), 0.001)
	assert.InDelta(t, 100.0, FreshnessScore(30), 0.001)
	assert.InDelta(t, 85.0, FreshnessScore(60), 0.001)
	assert.InDelta(t, 70.0, FreshnessScore(90), 0.001)
	assert.InDelta(t, 50.0, FreshnessScore(135), 0.001)
	assert.InDelta(t, 30.0, FreshnessScore(180), 0.001)
	assert.InDelta(t, 29.7, FreshnessScore(181), 0.001)
	assert.InDelta(t, 5.0, FreshnessScore(2000), 0.001)

	prev := FreshnessScore(0)
	for d := 1; d <= 1000; d++ {
		score := FreshnessScore(d)
		assert.LessOrEqual(t, score, prev, "score grew at day %d", d)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
		prev = score
	}
}
