package archive

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padelton/internal/scoreboard"
)

var ErrMissingEventID = errors.New("event id is required")

// New creates a new ResultStore.
func New(db *sql.DB) ResultStore {
	return &store{
		db: db,
	}
}

// UpsertResult writes a ledger entry. An entry for the same (event, court, round)
// is overwritten, mirroring the in-memory ledger.
func (s *store) UpsertResult(eventID string, result scoreboard.MatchResult) error {
	if eventID == "" {
		return ErrMissingEventID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	slotsJSON, err := json.Marshal(result.Slots)
	if err != nil {
		return err
	}
	setsJSON, err := json.Marshal(setScores{
		Set1Home:          result.Set1Home,
		Set1Away:          result.Set1Away,
		Set1LoserTbPoints: result.Set1LoserTbPoints,
		Set1LoserIsHome:   result.Set1LoserIsHome,
		Set2Home:          result.Set2Home,
		Set2Away:          result.Set2Away,
		Set2LoserTbPoints: result.Set2LoserTbPoints,
		Set2LoserIsHome:   result.Set2LoserIsHome,
	})
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	// An event starts with its earliest archived match.
	now := time.Now().Unix()
	startedAt := now
	if !result.FinishedAt.IsZero() {
		startedAt = result.FinishedAt.Unix()
	}
	_, err = tx.Exec(`
		INSERT INTO lunar_events (event_id, started_at) VALUES (?, ?)
		ON CONFLICT(event_id) DO UPDATE SET started_at = MIN(started_at, excluded.started_at);
	`, eventID, startedAt)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO lunar_results (event_id, court_id, round, id, home_name, away_name, slots_json, sets_json, sets_str, home_sets, away_sets, winner, finished_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(event_id, court_id, round) DO UPDATE SET
			id = excluded.id,
			home_name = excluded.home_name,
			away_name = excluded.away_name,
			slots_json = excluded.slots_json,
			sets_json = excluded.sets_json,
			sets_str = excluded.sets_str,
			home_sets = excluded.home_sets,
			away_sets = excluded.away_sets,
			winner = excluded.winner,
			finished_at = excluded.finished_at,
			updated_at = excluded.updated_at;
	`, eventID, result.CourtID, int(result.Round), result.ID, result.HomeName, result.AwayName, string(slotsJSON), string(setsJSON), result.SetsStr, result.HomeSets, result.AwaySets, result.Winner, result.FinishedAt.UnixMilli(), now)
	if err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debug("Archived LUNAR result", "eventID", eventID, "courtID", result.CourtID, "round", result.Round, "winner", result.Winner)
	return nil
}

// RecordTotals stores the running team totals of an event.
func (s *store) RecordTotals(eventID string, homeWins, awayWins int) error {
	if eventID == "" {
		return ErrMissingEventID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO lunar_events (event_id, started_at, home_wins, away_wins) VALUES (?, ?, ?, ?)
		ON CONFLICT(event_id) DO UPDATE SET
			home_wins = excluded.home_wins,
			away_wins = excluded.away_wins;
	`, eventID, time.Now().Unix(), homeWins, awayWins)
	return err
}

// GetResults returns the archived entries of an event ordered by court then round.
func (s *store) GetResults(eventID string) ([]scoreboard.MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, court_id, round, home_name, away_name, slots_json, sets_json, sets_str, home_sets, away_sets, winner, finished_at
		FROM lunar_results
		WHERE event_id = ?
		ORDER BY court_id, round
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []scoreboard.MatchResult{}
	for rows.Next() {
		result, err := s.scanResult(rows)
		if err != nil {
			log.Error("Failed to scan result row", "error", err)
			continue
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

func (s *store) scanResult(scanner interface{ Scan(...any) error }) (scoreboard.MatchResult, error) {
	var (
		result             scoreboard.MatchResult
		round              int
		slotsJSON, setJSON sql.NullString
		finishedAt         int64
	)
	err := scanner.Scan(&result.ID, &result.CourtID, &round, &result.HomeName, &result.AwayName, &slotsJSON, &setJSON, &result.SetsStr, &result.HomeSets, &result.AwaySets, &result.Winner, &finishedAt)
	if err != nil {
		return result, err
	}
	result.Round = scoreboard.Round(round)
	result.FinishedAt = time.UnixMilli(finishedAt).UTC()

	if slotsJSON.Valid && slotsJSON.String != "" {
		if err := json.Unmarshal([]byte(slotsJSON.String), &result.Slots); err != nil {
			return result, fmt.Errorf("failed to decode slots: %w", err)
		}
	}
	if setJSON.Valid && setJSON.String != "" {
		var sets setScores
		if err := json.Unmarshal([]byte(setJSON.String), &sets); err != nil {
			return result, fmt.Errorf("failed to decode sets: %w", err)
		}
		result.Set1Home, result.Set1Away = sets.Set1Home, sets.Set1Away
		result.Set1LoserTbPoints, result.Set1LoserIsHome = sets.Set1LoserTbPoints, sets.Set1LoserIsHome
		result.Set2Home, result.Set2Away = sets.Set2Home, sets.Set2Away
		result.Set2LoserTbPoints, result.Set2LoserIsHome = sets.Set2LoserTbPoints, sets.Set2LoserIsHome
	}
	return result, nil
}

// GetEvents lists archived events, newest first.
func (s *store) GetEvents() ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT e.event_id, e.started_at, e.home_wins, e.away_wins, COUNT(r.id)
		FROM lunar_events e
		LEFT JOIN lunar_results r ON r.event_id = e.event_id
		GROUP BY e.event_id, e.started_at, e.home_wins, e.away_wins
		ORDER BY e.started_at DESC, e.event_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		var startedAt int64
		if err := rows.Scan(&e.EventID, &startedAt, &e.HomeWins, &e.AwayWins, &e.Matches); err != nil {
			return nil, err
		}
		e.StartedAt = time.Unix(startedAt, 0).UTC()
		events = append(events, e)
	}
	return events, rows.Err()
}

// Clear removes an event and all its results.
func (s *store) Clear(eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM lunar_results WHERE event_id = ?", eventID); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("DELETE FROM lunar_events WHERE event_id = ?", eventID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
