package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncScoreUpdates(1)
	s.IncScoreUpdates(1)
	s.IncScoreUpdates(3)
	s.IncScoreUpdatesRejected()
	s.IncMatchesTallied("home")
	s.SetCourtsOnline(4)
	s.IncSlackNotifSent()

	assert.Equal(t, 2.0, testutil.ToFloat64(s.ScoreUpdates.WithLabelValues("1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ScoreUpdates.WithLabelValues("3")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.ScoreUpdatesRejected))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.MatchesTallied.WithLabelValues("home")))
	assert.Equal(t, 4.0, testutil.ToFloat64(s.CourtsOnline))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.SlackNotifSent))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.SlackNotifFailed))
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.IncScoreUpdatesRejected()

	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "padel_score_updates_rejected_total 1")
	assert.Contains(t, rr.Body.String(), "padel_courts_online 0")
}
