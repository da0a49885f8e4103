package archive

import "github.com/mauv0809/padelton/internal/scoreboard"

// ResultStore persists finished LUNAR matches so results survive a restart.
type ResultStore interface {
	UpsertResult(eventID string, result scoreboard.MatchResult) error
	RecordTotals(eventID string, homeWins, awayWins int) error
	GetResults(eventID string) ([]scoreboard.MatchResult, error)
	GetEvents() ([]Event, error)
	Clear(eventID string) error
}
