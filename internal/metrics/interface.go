package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncScoreUpdates(courtID int)
	IncScoreUpdatesRejected()
	IncMatchesTallied(winner string)
	ObserveTallyDuration(duration float64)
	SetCourtsOnline(n int)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
