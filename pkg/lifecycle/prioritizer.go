package lifecycle

import (
	"fmt"
	"math"

	"github.com/umputun/freshness/pkg/domain"
)

// Weights are the relative contributions of the priority sub-scores, they must sum to 1
type Weights struct {
	Quality   float64
	Traffic   float64
	Age       float64
	Strategic float64
}

// DefaultWeights returns the standard priority weights
func DefaultWeights() Weights {
	return Weights{Quality: 0.40, Traffic: 0.25, Age: 0.20, Strategic: 0.15}
}

// Validate checks that the weights are non-negative and sum to 1
func (w Weights) Validate() error {
	if w.Quality < 0 || w.Traffic < 0 || w.Age < 0 || w.Strategic < 0 {
		return fmt.Errorf("weights must be non-negative")
	}
	if sum := w.Quality + w.Traffic + w.Age + w.Strategic; math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("weights must sum to 1, got %.3f", sum)
	}
	return nil
}

// tier thresholds on the 0-100 priority score
const (
	criticalScore = 80
	highScore     = 60
	mediumScore   = 40
	lowScore      = 20
)

// reason thresholds
const (
	reasonAgeDays           = 180
	reasonQualityDecline    = 75
	reasonHighTraffic       = 70
	reasonMediocreQuality   = 80
	romajiStrategicPenalty  = 30
	syncStrategicPenalty    = 40
	ageSaturationDays       = 365
	pageViewsPerTrafficUnit = 10
)

// Prioritizer turns a metrics snapshot into a priority score, a tier and a set of update reasons
type Prioritizer struct {
	weights Weights
}

// NewPrioritizer makes a prioritizer with the given weights, invalid weights fall back to defaults
func NewPrioritizer(w Weights) *Prioritizer {
	if err := w.Validate(); err != nil {
		w = DefaultWeights()
	}
	return &Prioritizer{weights: w}
}

// Score returns the weighted 0-100 priority of updating the provider
func (p *Prioritizer) Score(m domain.ContentMetrics) float64 {
	qualityPriority := clamp(100-m.QualityScore, 0, 100)
	trafficPriority := clamp(m.TrafficScore, 0, 100)
	agePriority := clamp(float64(m.ContentAgeDays)/ageSaturationDays*100, 0, 100)

	strategic := 0.0
	if !m.RomajiConsistency {
		strategic += romajiStrategicPenalty
	}
	if !m.WordPressSyncStatus {
		strategic += syncStrategicPenalty
	}
	strategicPriority := math.Min(strategic, 100)

	score := qualityPriority*p.weights.Quality +
		trafficPriority*p.weights.Traffic +
		agePriority*p.weights.Age +
		strategicPriority*p.weights.Strategic
	return clamp(score, 0, 100)
}

// Tier maps a priority score to a discrete tier
func (p *Prioritizer) Tier(score float64) domain.UpdatePriority {
	switch {
	case score >= criticalScore:
		return domain.PriorityCritical
	case score >= highScore:
		return domain.PriorityHigh
	case score >= mediumScore:
		return domain.PriorityMedium
	case score >= lowScore:
		return domain.PriorityLow
	default:
		return domain.PriorityDeferred
	}
}

// Reasons lists why the provider warrants an update. The result is never empty,
// manual request is the catch-all when no other reason applies.
func (p *Prioritizer) Reasons(m domain.ContentMetrics, _ float64) []domain.ContentUpdateReason {
	var reasons []domain.ContentUpdateReason
	if m.ContentAgeDays > reasonAgeDays {
		reasons = append(reasons, domain.ReasonAgeThreshold)
	}
	if m.QualityScore < reasonQualityDecline {
		reasons = append(reasons, domain.ReasonQualityDecline)
	}
	if !m.RomajiConsistency {
		reasons = append(reasons, domain.ReasonRomajiInconsistency)
	}
	if !m.WordPressSyncStatus {
		reasons = append(reasons, domain.ReasonWordPressSyncFailure)
	}
	// a busy page with mediocre content is worth fixing even if it is not old
	if m.TrafficScore > reasonHighTraffic && m.QualityScore < reasonMediocreQuality {
		reasons = append(reasons, domain.ReasonPerformanceIssues)
	}
	if m.DelayOverrideReason == domain.OverrideManualUpdate || len(reasons) == 0 {
		reasons = append(reasons, domain.ReasonManualRequest)
	}
	return reasons
}

// TrafficScore derives a 0-100 traffic score from the performance counters
func TrafficScore(pageViews30d, searchRanking int, engagement float64) float64 {
	views := math.Min(float64(max(pageViews30d, 0))/pageViewsPerTrafficUnit, 100)
	rank := 0.0
	if searchRanking > 0 {
		rank = math.Max(0, 100-float64(searchRanking-1)*10)
	}
	return clamp(0.5*views+0.3*rank+0.2*clamp(engagement, 0, 100), 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
