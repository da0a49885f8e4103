package scoreboard

import "time"

func validCourt(id int) bool {
	return id >= 1 && id <= NumCourts
}

// ValidCourt reports whether id names one of the fixed courts.
func ValidCourt(id int) bool {
	return validCourt(id)
}

func newCourt(id int) Court {
	return Court{
		CourtID:           id,
		HomeName:          DefaultHomeName,
		AwayName:          DefaultAwayName,
		HomePointsStr:     "0",
		AwayPointsStr:     "0",
		Set1Home:          -1,
		Set1Away:          -1,
		Set1LoserTbPoints: -1,
		Set2Home:          -1,
		Set2Away:          -1,
		Set2LoserTbPoints: -1,
	}
}

// resetScore restores controller-fed fields while keeping admin overrides and slots.
func (c *Court) resetScore() {
	fresh := newCourt(c.CourtID)
	fresh.AdminHomeName = c.AdminHomeName
	fresh.AdminAwayName = c.AdminAwayName
	fresh.Slots = c.Slots
	*c = fresh
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// apply copies every field present in the update onto the court. Last write wins.
func (u ScoreUpdate) apply(c *Court) {
	setIf(&c.HomeName, u.HomeName)
	setIf(&c.AwayName, u.AwayName)
	setIf(&c.HomePoints, u.HomePoints)
	setIf(&c.AwayPoints, u.AwayPoints)
	setIf(&c.HomePointsStr, u.HomePointsStr)
	setIf(&c.AwayPointsStr, u.AwayPointsStr)
	setIf(&c.HomeGames, u.HomeGames)
	setIf(&c.AwayGames, u.AwayGames)
	setIf(&c.HomeSets, u.HomeSets)
	setIf(&c.AwaySets, u.AwaySets)

	setIf(&c.Set1Home, u.Set1Home)
	setIf(&c.Set1Away, u.Set1Away)
	setIf(&c.Set1LoserTbPoints, u.Set1LoserTbPoints)
	setIf(&c.Set1LoserIsHome, u.Set1LoserIsHome)
	setIf(&c.Set2Home, u.Set2Home)
	setIf(&c.Set2Away, u.Set2Away)
	setIf(&c.Set2LoserTbPoints, u.Set2LoserTbPoints)
	setIf(&c.Set2LoserIsHome, u.Set2LoserIsHome)
	setIf(&c.SetsStr, u.SetsStr)

	setIf(&c.MatchFinished, u.MatchFinished)
	setIf(&c.Winner, u.Winner)
	setIf(&c.Mtb3rd, u.Mtb3rd)

	if c.Winner != WinnerHome && c.Winner != WinnerAway {
		c.Winner = WinnerNone
	}
}

// inferWinner fills in a missing winner of a finished match from the set count.
// Equal sets leave the winner unset.
func (c *Court) inferWinner() {
	if !c.MatchFinished || c.Winner != WinnerNone {
		return
	}
	switch {
	case c.HomeSets > c.AwaySets:
		c.Winner = WinnerHome
	case c.AwaySets > c.HomeSets:
		c.Winner = WinnerAway
	}
}

func (c *Court) isOnline(now time.Time, threshold time.Duration) bool {
	if c.LastUpdate.IsZero() {
		return false
	}
	return now.Sub(c.LastUpdate) < threshold
}

// snapshot captures a finished match for the ledger.
func (c *Court) snapshot(res Resolution, round Round, at time.Time) MatchResult {
	return MatchResult{
		CourtID:           c.CourtID,
		Round:             round,
		HomeName:          res.HomeName,
		AwayName:          res.AwayName,
		Slots:             res.Slots,
		Set1Home:          c.Set1Home,
		Set1Away:          c.Set1Away,
		Set1LoserTbPoints: c.Set1LoserTbPoints,
		Set1LoserIsHome:   c.Set1LoserIsHome,
		Set2Home:          c.Set2Home,
		Set2Away:          c.Set2Away,
		Set2LoserTbPoints: c.Set2LoserTbPoints,
		Set2LoserIsHome:   c.Set2LoserIsHome,
		SetsStr:           c.SetsStr,
		HomeSets:          c.HomeSets,
		AwaySets:          c.AwaySets,
		Winner:            c.Winner,
		FinishedAt:        at,
	}
}
