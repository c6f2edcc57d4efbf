package lifecycle

import (
	"fmt"
	"math"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/freshness/pkg/domain"
)

// content-age ladder thresholds in days, used when delay evaluation is disabled
const (
	freshDays = 30
	agingDays = 90
	staleDays = 180
)

// Analyzer classifies a provider's content lifecycle status under a delay policy.
// It holds no mutable state, the same provider and clock always give the same status.
type Analyzer struct {
	cfg domain.DelayConfig
	now func() time.Time
}

// Analysis is the outcome of classifying one provider
type Analysis struct {
	Status          domain.ContentStatus
	Created         time.Time
	LastUpdated     time.Time
	ProviderAgeDays int
	ContentAgeDays  int
	QualityScore    float64
	OverrideReason  string
	EligibleDate    time.Time
}

// NewAnalyzer makes an analyzer for the given policy. A nil clock means time.Now.
func NewAnalyzer(cfg domain.DelayConfig, now func() time.Time) *Analyzer {
	if now == nil {
		now = time.Now
	}
	return &Analyzer{cfg: cfg, now: now}
}

// Config returns the delay policy the analyzer was built with
func (a *Analyzer) Config() domain.DelayConfig {
	return a.cfg
}

// Classify returns the lifecycle status of the provider
func (a *Analyzer) Classify(p domain.Provider) domain.ContentStatus {
	return a.Analyze(p).Status
}

// Analyze classifies the provider and computes its age fields, override reason and eligibility date.
// Missing dates are defaulted: creation falls back to last update, then to one year ago, and last
// update falls back to creation. A missing quality score is treated as the quality issue threshold,
// so missing data alone never grants an override. Any panic during classification is logged and
// the provider is reported as outdated.
func (a *Analyzer) Analyze(p domain.Provider) (res Analysis) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[WARN] classification of provider %s failed, treating as outdated: %v", p.ID, r)
			res = Analysis{Status: domain.StatusOutdated}
		}
	}()

	now := a.now()
	created, lastUpdated := a.resolveDates(p, now)
	res.Created, res.LastUpdated = created, lastUpdated
	res.ProviderAgeDays = daysBetween(created, now)
	res.ContentAgeDays = daysBetween(lastUpdated, now)

	res.QualityScore = a.cfg.QualityIssueThreshold
	if p.QualityScore != nil {
		res.QualityScore = *p.QualityScore
	}

	res.OverrideReason = a.CheckOverride(p, res.QualityScore)
	res.EligibleDate = a.EligibleUpdateDate(created, res.QualityScore)

	if !a.cfg.DelayEvaluationEnabled {
		res.Status = ContentAgeStatus(res.ContentAgeDays)
		return res
	}

	status := a.delayStatus(res.ProviderAgeDays, res.ContentAgeDays, res.QualityScore, created)
	if status.InQuietPeriod() && res.OverrideReason != "" {
		status = domain.StatusNeedsUpdate
	}
	res.Status = status
	return res
}

// CheckOverride returns the first override condition that holds for the provider, or an empty string.
// Conditions are checked in priority order: critical quality, quality issue, manual request,
// wordpress sync failure, romaji inconsistency.
func (a *Analyzer) CheckOverride(p domain.Provider, qualityScore float64) string {
	switch {
	case a.cfg.CriticalPriorityOverride && qualityScore < a.cfg.CriticalQualityThreshold:
		return fmt.Sprintf("%s_%.1f", domain.OverrideCriticalQuality, qualityScore)
	case a.cfg.QualityIssueOverride && qualityScore < a.cfg.QualityIssueThreshold:
		return fmt.Sprintf("%s_%.1f", domain.OverrideQualityIssue, qualityScore)
	case a.cfg.ManualUpdateOverride && p.ManualUpdateRequested:
		return domain.OverrideManualUpdate
	case !p.WordPressSynced:
		return domain.OverrideWordPressSync
	case !p.RomajiConsistent:
		return domain.OverrideRomaji
	}
	return ""
}

// EligibleUpdateDate returns the end of the provider's quiet period
func (a *Analyzer) EligibleUpdateDate(created time.Time, qualityScore float64) time.Time {
	return created.AddDate(0, 0, a.delayMonths(created, qualityScore)*domain.DaysPerMonth)
}

// delayStatus is the pure delay-logic classification, without overrides
func (a *Analyzer) delayStatus(providerAgeDays, contentAgeDays int, qualityScore float64, created time.Time) domain.ContentStatus {
	if providerAgeDays <= a.cfg.RecentlyAddedThresholdDays {
		return domain.StatusRecentlyAdded
	}

	delayDays := a.delayMonths(created, qualityScore) * domain.DaysPerMonth
	if providerAgeDays < delayDays {
		return domain.StatusDelayPeriodActive
	}

	// past the quiet period, but the content itself may have been refreshed recently
	if contentAgeDays <= freshDays {
		return domain.StatusFresh
	}
	return domain.StatusReadyForReview
}

// delayMonths selects the quiet period length for a provider
func (a *Analyzer) delayMonths(created time.Time, qualityScore float64) int {
	if qualityScore < a.cfg.QualityIssueThreshold {
		return a.cfg.QualityIssueDelayMonths
	}
	if a.cfg.IsExistingProvider(created) {
		return a.cfg.ExistingProviderDelayMonths
	}
	return a.cfg.NewCampaignDelayMonths
}

func (a *Analyzer) resolveDates(p domain.Provider, now time.Time) (created, lastUpdated time.Time) {
	created, lastUpdated = p.CreatedAt, p.LastUpdated
	if created.IsZero() {
		created = lastUpdated
	}
	if created.IsZero() {
		created = now.AddDate(-1, 0, 0)
	}
	if lastUpdated.IsZero() {
		lastUpdated = created
	}
	return created, lastUpdated
}

// ContentAgeStatus classifies purely by content age, the traditional ladder
func ContentAgeStatus(contentAgeDays int) domain.ContentStatus {
	switch {
	case contentAgeDays <= freshDays:
		return domain.StatusFresh
	case contentAgeDays <= agingDays:
		return domain.StatusAging
	case contentAgeDays <= staleDays:
		return domain.StatusStale
	default:
		return domain.StatusOutdated
	}
}

// FreshnessScore maps content age to a 0-100 score. Flat at 100 for the first 30 days, linear
// 100→70 until 90 days, linear 70→30 until 180 days, then decays by 1% a day with a floor of 5.
func FreshnessScore(contentAgeDays int) float64 {
	d := float64(max(contentAgeDays, 0))
	switch {
	case d <= freshDays:
		return 100
	case d <= agingDays:
		return 100 - (d-freshDays)/(agingDays-freshDays)*30
	case d <= staleDays:
		return 70 - (d-agingDays)/(staleDays-agingDays)*40
	default:
		return math.Max(5, 30*math.Pow(0.99, d-staleDays))
	}
}

// daysBetween returns whole days from t to now, future dates count as zero
func daysBetween(t, now time.Time) int {
	if t.After(now) {
		return 0
	}
	return int(now.Sub(t).Hours() / 24)
}
