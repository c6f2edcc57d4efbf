// Package telemetry exposes lifecycle metrics in prometheus format
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/freshness/pkg/domain"
)

const (
	metricsNamespace = "freshness"
	metricsSubsystem = "lifecycle"
)

// Recorder keeps lifecycle metrics in its own registry
type Recorder struct {
	registry *prometheus.Registry

	providers         *prometheus.GaugeVec
	skipped           prometheus.Gauge
	updates           *prometheus.CounterVec
	qualityChange     prometheus.Histogram
	cycles            prometheus.Counter
	cycleDuration     prometheus.Histogram
	budgetUtilization prometheus.Gauge
	eligible          prometheus.Gauge
}

// NewRecorder creates a recorder with all metrics registered
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		providers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "providers", Help: "Providers per content status in the last analysis",
		}, []string{"status"}),
		skipped: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "providers_skipped", Help: "Providers which failed the last analysis",
		}),
		updates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "updates_total", Help: "Executed content updates by result and priority",
		}, []string{"result", "priority"}),
		qualityChange: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "quality_improvement", Help: "Quality score change of successful updates",
			Buckets: prometheus.LinearBuckets(-20, 10, 8), // -20 to 50
		}),
		cycles: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "cycles_total", Help: "Completed lifecycle cycles",
		}),
		cycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "cycle_duration_seconds", Help: "Duration of lifecycle cycles",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12), // 1s to ~34min
		}),
		budgetUtilization: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "budget_utilization_percent", Help: "30-day spend as a share of the monthly budget",
		}),
		eligible: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace, Subsystem: metricsSubsystem,
			Name: "providers_eligible", Help: "Providers eligible for an update in the last report",
		}),
	}
}

// RecordAnalysis sets the status distribution, statuses missing from it are reported as zero
func (r *Recorder) RecordAnalysis(distribution map[domain.ContentStatus]int, skipped int) {
	for _, status := range domain.AllContentStatuses() {
		r.providers.WithLabelValues(string(status)).Set(float64(distribution[status]))
	}
	r.skipped.Set(float64(skipped))
}

// RecordUpdate counts an executed plan
func (r *Recorder) RecordUpdate(plan domain.ContentUpdatePlan) {
	result := "failure"
	if plan.Success {
		result = "success"
		r.qualityChange.Observe(plan.QualityImprovement)
	}
	r.updates.WithLabelValues(result, string(plan.Priority)).Inc()
}

// RecordCycle records cycle duration and report level gauges, rep may be nil
func (r *Recorder) RecordCycle(rep *domain.ContentLifecycleReport, duration time.Duration) {
	r.cycles.Inc()
	r.cycleDuration.Observe(duration.Seconds())
	if rep == nil {
		return
	}
	r.budgetUtilization.Set(rep.BudgetUtilization)
	r.eligible.Set(float64(rep.EligibleForUpdate))
}

// Handler serves the registry in prometheus text format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
