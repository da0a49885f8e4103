package archive

import (
	"sync"

	"github.com/mauv0809/padelton/internal/scoreboard"
)

var _ ResultStore = (*MockStore)(nil)

// MockStore is a mock implementation of the ResultStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	UpsertResultFunc func(eventID string, result scoreboard.MatchResult) error
	RecordTotalsFunc func(eventID string, homeWins, awayWins int) error
	GetResultsFunc   func(eventID string) ([]scoreboard.MatchResult, error)
	GetEventsFunc    func() ([]Event, error)
	ClearFunc        func(eventID string) error

	UpsertResultCalls []struct {
		EventID string
		Result  scoreboard.MatchResult
	}
	RecordTotalsCalls []struct {
		EventID  string
		HomeWins int
		AwayWins int
	}
	ClearCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) UpsertResult(eventID string, result scoreboard.MatchResult) error {
	m.mu.Lock()
	m.UpsertResultCalls = append(m.UpsertResultCalls, struct {
		EventID string
		Result  scoreboard.MatchResult
	}{eventID, result})
	m.mu.Unlock()
	if m.UpsertResultFunc != nil {
		return m.UpsertResultFunc(eventID, result)
	}
	return nil
}

func (m *MockStore) RecordTotals(eventID string, homeWins, awayWins int) error {
	m.mu.Lock()
	m.RecordTotalsCalls = append(m.RecordTotalsCalls, struct {
		EventID  string
		HomeWins int
		AwayWins int
	}{eventID, homeWins, awayWins})
	m.mu.Unlock()
	if m.RecordTotalsFunc != nil {
		return m.RecordTotalsFunc(eventID, homeWins, awayWins)
	}
	return nil
}

func (m *MockStore) GetResults(eventID string) ([]scoreboard.MatchResult, error) {
	if m.GetResultsFunc != nil {
		return m.GetResultsFunc(eventID)
	}
	return nil, nil
}

func (m *MockStore) GetEvents() ([]Event, error) {
	if m.GetEventsFunc != nil {
		return m.GetEventsFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear(eventID string) error {
	m.mu.Lock()
	m.ClearCalls = append(m.ClearCalls, eventID)
	m.mu.Unlock()
	if m.ClearFunc != nil {
		return m.ClearFunc(eventID)
	}
	return nil
}
