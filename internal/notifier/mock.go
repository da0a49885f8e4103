package notifier

import (
	"sync"

	"github.com/mauv0809/padelton/internal/scoreboard"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	SendMatchResultFunc  func(match *scoreboard.FinishedMatch, dryRun bool) error
	SendLunarSummaryFunc func(eventID string, results []scoreboard.MatchResult, homeWins, awayWins int, dryRun bool) error

	// Call records
	SendMatchResultCalls []struct {
		Match  *scoreboard.FinishedMatch
		DryRun bool
	}
	SendLunarSummaryCalls []struct {
		EventID  string
		Results  []scoreboard.MatchResult
		HomeWins int
		AwayWins int
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = nil
	m.SendLunarSummaryCalls = nil
}

func (m *Mock) SendMatchResult(match *scoreboard.FinishedMatch, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchResultCalls = append(m.SendMatchResultCalls, struct {
		Match  *scoreboard.FinishedMatch
		DryRun bool
	}{match, dryRun})
	if m.SendMatchResultFunc != nil {
		return m.SendMatchResultFunc(match, dryRun)
	}
	return nil
}

func (m *Mock) SendLunarSummary(eventID string, results []scoreboard.MatchResult, homeWins, awayWins int, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLunarSummaryCalls = append(m.SendLunarSummaryCalls, struct {
		EventID  string
		Results  []scoreboard.MatchResult
		HomeWins int
		AwayWins int
	}{eventID, results, homeWins, awayWins})
	if m.SendLunarSummaryFunc != nil {
		return m.SendLunarSummaryFunc(eventID, results, homeWins, awayWins, dryRun)
	}
	return nil
}
