package notifier

import "github.com/mauv0809/padelton/internal/scoreboard"

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// A LUNAR match finished (or its ledger entry changed).
	SendMatchResult(match *scoreboard.FinishedMatch, dryRun bool) error
	// Standings of a whole LUNAR event.
	SendLunarSummary(eventID string, results []scoreboard.MatchResult, homeWins, awayWins int, dryRun bool) error
}
