package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quizboard"

// Side-effect steps of the finish pipeline, used as the "step" label.
const (
	StepPopularity  = "popularity"
	StepLeaderboard = "leaderboard"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	SubmissionsGraded  prometheus.Counter
	SideEffectFailures *prometheus.CounterVec
	CacheLookups       *prometheus.CounterVec
	HTTPRequests       *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		SubmissionsGraded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_graded_total",
			Help:      "Quiz submissions graded and stored.",
		}),
		SideEffectFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submission_side_effect_failures_total",
			Help:      "Best-effort steps that failed after a result was stored.",
		}, []string{"step"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by cache name and outcome.",
		}, []string{"cache", "outcome"}),
		HTTPRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(
		m.SubmissionsGraded,
		m.SideEffectFailures,
		m.CacheLookups,
		m.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// The recording helpers below are no-ops on a nil *Metrics.

func (m *Metrics) SubmissionGraded() {
	if m == nil {
		return
	}
	m.SubmissionsGraded.Inc()
}

func (m *Metrics) CacheHit(cache string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(cache, "hit").Inc()
}

func (m *Metrics) CacheMiss(cache string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(cache, "miss").Inc()
}

func (m *Metrics) SideEffectFailed(step string) {
	if m == nil {
		return
	}
	m.SideEffectFailures.WithLabelValues(step).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
