package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.CacheHit("answer_key")
	m.CacheHit("answer_key")
	m.CacheMiss("answer_key")
	m.SideEffectFailed(StepLeaderboard)
	m.SubmissionGraded()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("answer_key", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("answer_key", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SideEffectFailures.WithLabelValues(StepLeaderboard)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.SideEffectFailures.WithLabelValues(StepPopularity)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SubmissionsGraded))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.ObserveRequest("POST", "/api/quiz/finish", 201, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `quizboard_http_request_duration_seconds_count{method="POST",route="/api/quiz/finish",status="201"} 1`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SubmissionGraded()
		m.CacheHit("x")
		m.CacheMiss("x")
		m.SideEffectFailed(StepPopularity)
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
	})
}
