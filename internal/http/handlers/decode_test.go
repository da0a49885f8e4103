package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mauv0809/padelton/internal/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) fields {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	f, err := decodeFields(req)
	require.NoError(t, err)
	return f
}

func TestDecodeFields(t *testing.T) {
	f := decode(t, "")
	assert.Empty(t, f)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[1, 2]`))
	_, err := decodeFields(req)
	assert.ErrorIs(t, err, ErrInvalidBody)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{`3`, 3, true},
		{`3.9`, 3, true},
		{`-1`, -1, true},
		{`"12"`, 12, true},
		{`" 4 "`, 4, true},
		{`"AD"`, 0, false},
		{`true`, 0, false},
		{`{}`, 0, false},
		{`1e30`, 0, false},
		{`"-1e30"`, 0, false},
		{`"NaN"`, 0, false},
		{`"Inf"`, 0, false},
		{`2147483647`, 2147483647, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseInt([]byte(tt.raw))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
		ok   bool
	}{
		{`true`, true, true},
		{`"false"`, false, true},
		{`1`, true, true},
		{`0`, false, true},
		{`"yes"`, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseBool([]byte(tt.raw))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreUpdate(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		u, err := decode(t, `{"courtId": "3", "homeGames": 2, "awayName": null}`).scoreUpdate()
		require.NoError(t, err)
		assert.Equal(t, 3, u.CourtID)
		require.NotNil(t, u.HomeGames)
		assert.Equal(t, 2, *u.HomeGames)
		assert.Nil(t, u.AwayGames)
		assert.Nil(t, u.AwayName)
		assert.Nil(t, u.MatchFinished)
		assert.Nil(t, u.HomePoints)
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		u, err := decode(t, `{"courtId": 1, "set2Away": "?", "set1Home": 1e30, "homeSets": 1e30, "awaySets": [], "matchFinished": "maybe", "winner": "home"}`).scoreUpdate()
		require.NoError(t, err)
		assert.Equal(t, -1, *u.Set2Away)
		assert.Equal(t, -1, *u.Set1Home, "out of range numbers fall back to the default")
		assert.Equal(t, 0, *u.HomeSets)
		assert.Equal(t, 0, *u.AwaySets)
		assert.False(t, *u.MatchFinished)
		assert.Equal(t, scoreboard.WinnerNone, *u.Winner)
	})

	t.Run("display points", func(t *testing.T) {
		u, err := decode(t, `{"courtId": 1, "homePoints": "AD", "awayPoints": "40", "awayPointsStr": "40"}`).scoreUpdate()
		require.NoError(t, err)
		assert.Equal(t, 0, *u.HomePoints)
		assert.Equal(t, "AD", *u.HomePointsStr)
		assert.Equal(t, 40, *u.AwayPoints)
		assert.Equal(t, "40", *u.AwayPointsStr)
	})

	t.Run("explicit display value wins", func(t *testing.T) {
		u, err := decode(t, `{"courtId": 1, "homePoints": "AD", "homePointsStr": "Adv"}`).scoreUpdate()
		require.NoError(t, err)
		assert.Equal(t, "Adv", *u.HomePointsStr)
	})

	t.Run("missing court", func(t *testing.T) {
		_, err := decode(t, `{"homePoints": 15}`).scoreUpdate()
		assert.ErrorIs(t, err, scoreboard.ErrInvalidCourt)
	})
}

func TestSlotsAndLists(t *testing.T) {
	f := decode(t, `{"homeIdx1": 2, "homeIdx2": "16", "awayIdx1": 17, "awayIdx2": "x", "selectedCourts": [1, "2", null, "a"], "home": ["A", 3, null, " B "]}`)

	assert.Equal(t, scoreboard.Slots{HomeIdx1: 2, HomeIdx2: 16}, f.slots())
	assert.Equal(t, []int{1, 2}, f.intList("selectedCourts"))

	names, ok := f.stringList("home")
	assert.True(t, ok)
	assert.Equal(t, []string{"A", "", "", " B "}, names)

	_, ok = f.stringList("away")
	assert.False(t, ok)
}

func TestTrimmedOrNil(t *testing.T) {
	f := decode(t, `{"a": " x ", "b": "   ", "c": null}`)
	require.NotNil(t, f.trimmedOrNil("a"))
	assert.Equal(t, "x", *f.trimmedOrNil("a"))
	assert.Nil(t, f.trimmedOrNil("b"))
	assert.Nil(t, f.trimmedOrNil("c"))
	assert.Nil(t, f.trimmedOrNil("d"))
}
