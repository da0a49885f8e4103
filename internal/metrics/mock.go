package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	scoreUpdates         map[int]int
	scoreUpdatesRejected int
	matchesTallied       map[string]int
	tallyDurations       []float64
	courtsOnline         int
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		scoreUpdates:   make(map[int]int),
		matchesTallied: make(map[string]int),
		tallyDurations: make([]float64, 0),
	}
}

func (m *Mock) IncScoreUpdates(courtID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoreUpdates[courtID]++
}

func (m *Mock) IncScoreUpdatesRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoreUpdatesRejected++
}

func (m *Mock) IncMatchesTallied(winner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesTallied[winner]++
}

func (m *Mock) ObserveTallyDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tallyDurations = append(m.tallyDurations, duration)
}

func (m *Mock) SetCourtsOnline(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.courtsOnline = n
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// ScoreUpdates returns how many accepted updates were counted for a court.
func (m *Mock) ScoreUpdates(courtID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoreUpdates[courtID]
}

// ScoreUpdatesRejected returns the number of times IncScoreUpdatesRejected was called.
func (m *Mock) ScoreUpdatesRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoreUpdatesRejected
}

// MatchesTallied returns how many tallies were counted for a winning side.
func (m *Mock) MatchesTallied(winner string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesTallied[winner]
}

// TallyDurations returns the observed tally durations.
func (m *Mock) TallyDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.tallyDurations...)
}

// CourtsOnline returns the last value passed to SetCourtsOnline.
func (m *Mock) CourtsOnline() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.courtsOnline
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
