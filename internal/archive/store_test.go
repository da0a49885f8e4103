package archive_test

import (
	"testing"
	"time"

	"github.com/mauv0809/padelton/internal/archive"
	"github.com/mauv0809/padelton/internal/database"
	"github.com/mauv0809/padelton/internal/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite archive for testing.
func setupTestDB(t *testing.T) archive.ResultStore {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	t.Cleanup(teardown)

	return archive.New(db)
}

func sampleResult(courtID int, round scoreboard.Round, winner int) scoreboard.MatchResult {
	return scoreboard.MatchResult{
		ID:                "res-1",
		CourtID:           courtID,
		Round:             round,
		HomeName:          "Anna / Mia",
		AwayName:          "Ola / Per",
		Slots:             scoreboard.Slots{HomeIdx1: 3, HomeIdx2: 7, AwayIdx1: 1},
		Set1Home:          6,
		Set1Away:          4,
		Set1LoserTbPoints: -1,
		Set2Home:          7,
		Set2Away:          6,
		Set2LoserTbPoints: 5,
		Set2LoserIsHome:   false,
		SetsStr:           "6-4 7-6",
		HomeSets:          2,
		Winner:            winner,
		FinishedAt:        time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestUpsertAndGetResults(t *testing.T) {
	store := setupTestDB(t)

	want := sampleResult(2, scoreboard.Round1, scoreboard.WinnerHome)
	require.NoError(t, store.UpsertResult("event-1", want))

	results, err := store.GetResults("event-1")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, want, results[0])

	other, err := store.GetResults("event-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestUpsertResult_ReplacesSameCourtAndRound(t *testing.T) {
	store := setupTestDB(t)

	require.NoError(t, store.UpsertResult("event-1", sampleResult(2, scoreboard.Round1, scoreboard.WinnerHome)))
	require.NoError(t, store.UpsertResult("event-1", sampleResult(2, scoreboard.Round1, scoreboard.WinnerAway)))
	require.NoError(t, store.UpsertResult("event-1", sampleResult(2, scoreboard.Round2, scoreboard.WinnerHome)))

	results, err := store.GetResults("event-1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, scoreboard.WinnerAway, results[0].Winner)
	assert.Equal(t, scoreboard.Round2, results[1].Round)
}

func TestUpsertResult_RequiresEvent(t *testing.T) {
	store := setupTestDB(t)
	assert.ErrorIs(t, store.UpsertResult("", sampleResult(1, scoreboard.Round1, 1)), archive.ErrMissingEventID)
	assert.ErrorIs(t, store.RecordTotals("", 0, 0), archive.ErrMissingEventID)
}

func TestEventsAndClear(t *testing.T) {
	store := setupTestDB(t)

	require.NoError(t, store.UpsertResult("event-1", sampleResult(1, scoreboard.Round1, scoreboard.WinnerHome)))
	require.NoError(t, store.UpsertResult("event-1", sampleResult(4, scoreboard.RoundSuper, scoreboard.WinnerAway)))
	require.NoError(t, store.RecordTotals("event-1", 1, 1))

	events, err := store.GetEvents()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "event-1", events[0].EventID)
	assert.Equal(t, 1, events[0].HomeWins)
	assert.Equal(t, 1, events[0].AwayWins)
	assert.Equal(t, 2, events[0].Matches)

	require.NoError(t, store.Clear("event-1"))
	events, err = store.GetEvents()
	require.NoError(t, err)
	assert.Empty(t, events)
	results, err := store.GetResults("event-1")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGetEvents_NewestFirst(t *testing.T) {
	store := setupTestDB(t)

	at := func(r scoreboard.MatchResult, ts time.Time) scoreboard.MatchResult {
		r.FinishedAt = ts
		return r
	}
	spring := time.Date(2025, 4, 12, 18, 0, 0, 0, time.UTC)
	summer := time.Date(2025, 7, 5, 18, 0, 0, 0, time.UTC)
	winter := time.Date(2024, 12, 14, 18, 0, 0, 0, time.UTC)

	require.NoError(t, store.UpsertResult("spring", at(sampleResult(1, scoreboard.Round2, scoreboard.WinnerHome), spring.Add(time.Hour))))
	require.NoError(t, store.UpsertResult("spring", at(sampleResult(2, scoreboard.Round1, scoreboard.WinnerHome), spring)))
	require.NoError(t, store.UpsertResult("summer", at(sampleResult(1, scoreboard.Round1, scoreboard.WinnerAway), summer)))
	require.NoError(t, store.UpsertResult("winter", at(sampleResult(1, scoreboard.Round1, scoreboard.WinnerAway), winter)))
	require.NoError(t, store.RecordTotals("winter", 0, 1))

	events, err := store.GetEvents()
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "summer", events[0].EventID)
	assert.Equal(t, "spring", events[1].EventID)
	assert.Equal(t, "winter", events[2].EventID)

	assert.True(t, spring.Equal(events[1].StartedAt), "an event starts with its earliest match")
	assert.True(t, winter.Equal(events[2].StartedAt), "recording totals keeps the start time")
}
