package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ScoreUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padel_score_updates_total",
			Help: "The total number of accepted controller score updates.",
		}, []string{"court"}),
		ScoreUpdatesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_score_updates_rejected_total",
			Help: "The total number of controller score updates rejected as invalid.",
		}),
		MatchesTallied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "padel_lunar_matches_tallied_total",
			Help: "The total number of LUNAR matches counted towards the team totals.",
		}, []string{"winner"}),
		TallyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "padel_tally_duration_seconds",
			Help:    "The duration of recording a finished LUNAR match.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		CourtsOnline: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padel_courts_online",
			Help: "The number of courts whose controller reported recently.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "padel_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "padel_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ScoreUpdates,
		s.ScoreUpdatesRejected,
		s.MatchesTallied,
		s.TallyDuration,
		s.CourtsOnline,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncScoreUpdates(courtID int) {
	s.ScoreUpdates.WithLabelValues(strconv.Itoa(courtID)).Inc()
}

func (s *Service) IncScoreUpdatesRejected() {
	s.ScoreUpdatesRejected.Inc()
}

func (s *Service) IncMatchesTallied(winner string) {
	s.MatchesTallied.WithLabelValues(winner).Inc()
}

func (s *Service) ObserveTallyDuration(duration float64) {
	s.TallyDuration.Observe(duration)
}

func (s *Service) SetCourtsOnline(n int) {
	s.CourtsOnline.Set(float64(n))
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
