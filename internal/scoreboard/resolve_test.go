package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func rosterWith(t *testing.T, home, away []string) *Roster {
	t.Helper()
	r := &Roster{}
	require.NoError(t, r.Replace(Home, home))
	require.NoError(t, r.Replace(Away, away))
	return r
}

// names returns a 16-slot list with the given 1-based slots filled.
func names(filled map[int]string) []string {
	out := make([]string, MaxPlayers)
	for slot, name := range filled {
		out[slot-1] = name
	}
	return out
}

func TestRoster_ReplaceAndNameAt(t *testing.T) {
	r := &Roster{}
	require.NoError(t, r.Replace(Home, []string{"  Anna ", "", "Mia"}))

	name, ok := r.NameAt(Home, 1)
	assert.True(t, ok)
	assert.Equal(t, "Anna", name)

	_, ok = r.NameAt(Home, 2)
	assert.False(t, ok, "empty slot has no name")

	_, ok = r.NameAt(Home, 0)
	assert.False(t, ok, "slot 0 is unset")

	_, ok = r.NameAt(Home, MaxPlayers+1)
	assert.False(t, ok, "out of range slot has no name")

	t.Run("truncates to max players", func(t *testing.T) {
		long := make([]string, MaxPlayers+4)
		for i := range long {
			long[i] = "P"
		}
		long[MaxPlayers] = "Overflow"
		require.NoError(t, r.Replace(Away, long))
		assert.Len(t, r.view().Away, MaxPlayers)
		assert.NotContains(t, r.view().Away, "Overflow")
	})

	t.Run("replacement is total", func(t *testing.T) {
		require.NoError(t, r.Replace(Home, []string{"Only"}))
		_, ok := r.NameAt(Home, 3)
		assert.False(t, ok, "Mia must be gone after a full replacement")
	})

	t.Run("rejects unknown side", func(t *testing.T) {
		err := r.Replace(Side("left"), nil)
		assert.ErrorIs(t, err, ErrInvalidSide)
	})
}

func TestResolve_BaseNames(t *testing.T) {
	c := newCourt(1)
	res := Resolve(&c, &Roster{}, &LunarConfig{})

	assert.Equal(t, DefaultHomeName, res.HomeName)
	assert.Equal(t, DefaultAwayName, res.AwayName)
	assert.False(t, res.IsLunar)
	assert.False(t, res.HasMatch)
	assert.Equal(t, RoundNone, res.LunarRound)
}

func TestResolve_RosterJoin(t *testing.T) {
	roster := rosterWith(t, names(map[int]string{3: "Anna", 7: "Mia"}), names(map[int]string{1: "Bo"}))

	t.Run("two names are joined", func(t *testing.T) {
		c := newCourt(2)
		c.HomeIdx1, c.HomeIdx2 = 3, 7
		res := Resolve(&c, roster, &LunarConfig{})
		assert.Equal(t, "Anna / Mia", res.HomeName)
		assert.True(t, res.HasMatch, "assigned slots mean the court has a match")
	})

	t.Run("one name stands alone", func(t *testing.T) {
		c := newCourt(2)
		c.HomeIdx1, c.HomeIdx2 = 3, 4
		res := Resolve(&c, roster, &LunarConfig{})
		assert.Equal(t, "Anna", res.HomeName)
	})

	t.Run("second slot only", func(t *testing.T) {
		c := newCourt(2)
		c.AwayIdx2 = 1
		res := Resolve(&c, roster, &LunarConfig{})
		assert.Equal(t, "Bo", res.AwayName)
	})

	t.Run("no names keeps the prior layer", func(t *testing.T) {
		c := newCourt(2)
		c.HomeName = "Controller Home"
		c.HomeIdx1, c.HomeIdx2 = 5, 6
		res := Resolve(&c, roster, &LunarConfig{})
		assert.Equal(t, "Controller Home", res.HomeName)
		assert.NotContains(t, res.HomeName, "/")
	})
}

func TestResolve_AdminOverride(t *testing.T) {
	roster := rosterWith(t, names(map[int]string{1: "Anna"}), nil)

	c := newCourt(1)
	c.HomeName = "Controller"
	c.AdminHomeName = strPtr("Team Sun")
	c.AdminAwayName = strPtr("")

	res := Resolve(&c, roster, &LunarConfig{})
	assert.Equal(t, "Team Sun", res.HomeName, "admin name beats controller name")
	assert.Equal(t, "", res.AwayName, "an empty admin name is still an override")

	c.HomeIdx1 = 1
	res = Resolve(&c, roster, &LunarConfig{})
	assert.Equal(t, "Anna", res.HomeName, "roster name beats admin name")

	c.HomeIdx1 = 2
	res = Resolve(&c, roster, &LunarConfig{})
	assert.Equal(t, "Team Sun", res.HomeName, "empty roster slot leaves admin name in place")
}

func TestResolve_HasMatchFromScore(t *testing.T) {
	for _, tc := range []struct {
		name string
		mod  func(c *Court)
	}{
		{"points", func(c *Court) { c.AwayPoints = 15 }},
		{"games", func(c *Court) { c.HomeGames = 1 }},
		{"sets", func(c *Court) { c.AwaySets = 1 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := newCourt(1)
			tc.mod(&c)
			assert.True(t, Resolve(&c, &Roster{}, &LunarConfig{}).HasMatch)
		})
	}
}

func lunarWith(selected ...int) *LunarConfig {
	l := &LunarConfig{}
	l.configure(LunarSettings{Enabled: true, SelectedCourts: selected}, func() string { return "event-1" })
	return l
}

func TestResolve_LunarRounds(t *testing.T) {
	roster := rosterWith(t,
		names(map[int]string{1: "H1", 2: "H2", 3: "H3", 4: "H4"}),
		names(map[int]string{1: "A1", 2: "A2", 3: "A3", 4: "A4"}),
	)

	t.Run("round 1 when no round 2 assignment", func(t *testing.T) {
		l := lunarWith(4)
		require.NoError(t, l.setRoundPlayers(Round1, 4, Slots{HomeIdx1: 1, HomeIdx2: 2, AwayIdx1: 1, AwayIdx2: 2}))

		c := newCourt(4)
		res := Resolve(&c, roster, l)
		assert.True(t, res.IsLunar)
		assert.Equal(t, Round1, res.LunarRound)
		assert.Equal(t, "H1 / H2", res.HomeName)
		assert.Equal(t, "A1 / A2", res.AwayName)
	})

	t.Run("round 2 wins over round 1", func(t *testing.T) {
		l := lunarWith(4)
		require.NoError(t, l.setRoundPlayers(Round1, 4, Slots{HomeIdx1: 1, AwayIdx1: 1}))
		require.NoError(t, l.setRoundPlayers(Round2, 4, Slots{HomeIdx1: 3, AwayIdx1: 4}))

		c := newCourt(4)
		res := Resolve(&c, roster, l)
		assert.Equal(t, Round2, res.LunarRound)
		assert.Equal(t, "H3", res.HomeName)
		assert.Equal(t, "A4", res.AwayName)
	})

	t.Run("empty round 2 falls back to round 1", func(t *testing.T) {
		l := lunarWith(4)
		require.NoError(t, l.setRoundPlayers(Round1, 4, Slots{HomeIdx1: 1}))
		require.NoError(t, l.setRoundPlayers(Round2, 4, Slots{}))

		c := newCourt(4)
		res := Resolve(&c, roster, l)
		assert.Equal(t, Round1, res.LunarRound)
	})

	t.Run("no assignment keeps the court slots", func(t *testing.T) {
		l := lunarWith(4)
		c := newCourt(4)
		c.AwayIdx1 = 3
		res := Resolve(&c, roster, l)
		assert.True(t, res.IsLunar)
		assert.Equal(t, RoundNone, res.LunarRound)
		assert.Equal(t, "A3", res.AwayName)
	})

	t.Run("unselected court ignores LUNAR overrides", func(t *testing.T) {
		l := lunarWith(4)
		require.NoError(t, l.setRoundPlayers(Round1, 3, Slots{HomeIdx1: 1}))
		l.SuperMatchPlayers = Slots{HomeIdx1: 2}

		c := newCourt(3)
		res := Resolve(&c, roster, l)
		assert.False(t, res.IsLunar)
		assert.Equal(t, RoundNone, res.LunarRound)
		assert.False(t, res.IsSuperMatchTie)
		assert.Equal(t, DefaultHomeName, res.HomeName)
	})

	t.Run("disabled LUNAR is never lunar", func(t *testing.T) {
		l := lunarWith(4)
		l.configure(LunarSettings{Enabled: false}, nil)
		c := newCourt(4)
		assert.False(t, Resolve(&c, roster, l).IsLunar)
	})
}

func TestResolve_SuperMatch(t *testing.T) {
	roster := rosterWith(t,
		names(map[int]string{1: "H1", 2: "H2", 5: "H5"}),
		names(map[int]string{1: "A1", 2: "A2", 5: "A5"}),
	)
	l := &LunarConfig{}
	l.configure(LunarSettings{Enabled: true, SelectedCourts: []int{2, 5}, SuperMatchCourtID: 5}, func() string { return "e" })
	require.NoError(t, l.setRoundPlayers(Round2, 5, Slots{HomeIdx1: 1, AwayIdx1: 1}))

	c := newCourt(5)
	res := Resolve(&c, roster, l)
	assert.False(t, res.IsSuperMatchTie, "no super-match players configured yet")
	assert.Equal(t, "H1", res.HomeName)

	l.SuperMatchPlayers = Slots{HomeIdx1: 5, AwayIdx1: 5, AwayIdx2: 2}
	res = Resolve(&c, roster, l)
	assert.True(t, res.IsSuperMatchTie)
	assert.Equal(t, "H5", res.HomeName)
	assert.Equal(t, "A5 / A2", res.AwayName)
	assert.Equal(t, l.SuperMatchPlayers, res.Slots)

	other := newCourt(2)
	assert.False(t, Resolve(&other, roster, l).IsSuperMatchTie, "only the decider court uses super-match players")
}

func TestLunarConfig_Classify(t *testing.T) {
	l := &LunarConfig{}
	l.configure(LunarSettings{Enabled: true, SelectedCourts: []int{1, 2}, SuperMatchCourtID: 2}, func() string { return "e" })

	assert.Equal(t, Round1, l.classify(1, Slots{}))

	require.NoError(t, l.setRoundPlayers(Round2, 1, Slots{HomeIdx1: 1}))
	assert.Equal(t, Round2, l.classify(1, Slots{HomeIdx1: 1}))

	super := Slots{HomeIdx1: 3, HomeIdx2: 4, AwayIdx1: 3, AwayIdx2: 4}
	l.SuperMatchPlayers = super
	require.NoError(t, l.setRoundPlayers(Round2, 2, Slots{HomeIdx1: 9}))
	assert.Equal(t, RoundSuper, l.classify(2, super), "super-match wins even with a round 2 assignment")
	assert.Equal(t, Round2, l.classify(2, Slots{HomeIdx1: 3}), "a partial match is not the super match")
	assert.Equal(t, Round2, l.classify(1, super), "only the decider court can be round 7")
}

func TestLunarConfig_Configure(t *testing.T) {
	ids := 0
	newID := func() string {
		ids++
		return "event-" + string(rune('0'+ids))
	}
	l := &LunarConfig{}

	l.configure(LunarSettings{Enabled: true, SelectedCourts: []int{1, 3, 9}, SuperMatchCourtID: 2}, newID)
	assert.Equal(t, map[int]bool{1: true, 3: true}, l.SelectedCourts, "out of range courts are dropped")
	assert.Equal(t, 0, l.SuperMatchCourtID, "super-match court outside the selection is dropped")
	assert.Equal(t, "event-1", l.EventID)

	l.configure(LunarSettings{Enabled: true, SelectedCourts: []int{1, 3}, SuperMatchCourtID: 3}, newID)
	assert.Equal(t, 3, l.SuperMatchCourtID)
	assert.Equal(t, "event-1", l.EventID, "reconfiguring keeps the event")

	l.configure(LunarSettings{Enabled: false}, newID)
	l.configure(LunarSettings{Enabled: true, SelectedCourts: []int{2}}, newID)
	assert.Equal(t, "event-2", l.EventID, "re-enabling starts a new event")
}

func TestLunarConfig_SetRoundPlayersValidation(t *testing.T) {
	l := &LunarConfig{}
	assert.ErrorIs(t, l.setRoundPlayers(Round(3), 1, Slots{}), ErrInvalidRound)
	assert.ErrorIs(t, l.setRoundPlayers(RoundSuper, 1, Slots{}), ErrInvalidRound)
	assert.ErrorIs(t, l.setRoundPlayers(Round1, 0, Slots{}), ErrInvalidCourt)
	assert.ErrorIs(t, l.setRoundPlayers(Round2, NumCourts+1, Slots{}), ErrInvalidCourt)

	require.NoError(t, l.setRoundPlayers(Round1, 1, Slots{HomeIdx1: 40, AwayIdx1: 2}))
	assert.Equal(t, Slots{AwayIdx1: 2}, l.Round1[1], "out of range slots become unset")
}
