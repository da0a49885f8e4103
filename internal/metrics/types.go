package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	ScoreUpdates         *prometheus.CounterVec
	ScoreUpdatesRejected prometheus.Counter
	MatchesTallied       *prometheus.CounterVec
	TallyDuration        prometheus.Histogram
	CourtsOnline         prometheus.Gauge
	SlackNotifSent       prometheus.Counter
	SlackNotifFailed     prometheus.Counter
	StartupTimeSeconds   prometheus.Gauge
}
