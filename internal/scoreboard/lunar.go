package scoreboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
)

// IsSelected reports whether the court takes part in LUNAR right now.
func (l *LunarConfig) IsSelected(courtID int) bool {
	return l.Enabled && l.SelectedCourts[courtID]
}

// reset puts every LUNAR field back to its zero value. Disabling is a hard reset.
func (l *LunarConfig) reset() {
	*l = LunarConfig{}
}

// configure applies admin settings. newEventID is called when LUNAR goes from
// disabled to enabled so archived results of separate events stay apart.
func (l *LunarConfig) configure(settings LunarSettings, newEventID func() string) {
	if !settings.Enabled {
		if l.Enabled {
			log.Debug("LUNAR disabled, resetting all LUNAR state", "eventID", l.EventID, "results", len(l.Results))
		}
		l.reset()
		return
	}

	if !l.Enabled || l.EventID == "" {
		l.EventID = newEventID()
	}
	l.Enabled = true

	l.SelectedCourts = make(map[int]bool)
	for _, id := range settings.SelectedCourts {
		if validCourt(id) {
			l.SelectedCourts[id] = true
		}
	}

	// The decider must be one of the selected courts.
	if l.SelectedCourts[settings.SuperMatchCourtID] {
		l.SuperMatchCourtID = settings.SuperMatchCourtID
	} else {
		l.SuperMatchCourtID = 0
	}
}

func (l *LunarConfig) setRoundPlayers(round Round, courtID int, slots Slots) error {
	if round != Round1 && round != Round2 {
		return fmt.Errorf("%w: %d", ErrInvalidRound, round)
	}
	if !validCourt(courtID) {
		return fmt.Errorf("%w: %d", ErrInvalidCourt, courtID)
	}
	assignments := l.assignments(round)
	if *assignments == nil {
		*assignments = make(map[int]Slots)
	}
	slots = slots.normalized()
	if slots.IsEmpty() {
		delete(*assignments, courtID)
		return nil
	}
	(*assignments)[courtID] = slots
	return nil
}

func (l *LunarConfig) assignments(round Round) *map[int]Slots {
	if round == Round2 {
		return &l.Round2
	}
	return &l.Round1
}

// assignment returns the non-empty player quadruple for a court in a round.
func (l *LunarConfig) assignment(round Round, courtID int) (Slots, bool) {
	slots, ok := (*l.assignments(round))[courtID]
	if !ok || slots.IsEmpty() {
		return Slots{}, false
	}
	return slots, true
}

// superMatchFor reports the super-match players when courtID is the active decider court.
func (l *LunarConfig) superMatchFor(courtID int) (Slots, bool) {
	if l.SuperMatchCourtID == 0 || l.SuperMatchCourtID != courtID || l.SuperMatchPlayers.IsEmpty() {
		return Slots{}, false
	}
	return l.SuperMatchPlayers, true
}

// classify decides which round a finished match on courtID belongs to, given the
// slot indices that were actually used for it.
func (l *LunarConfig) classify(courtID int, used Slots) Round {
	round := Round1
	if _, ok := l.assignment(Round2, courtID); ok {
		round = Round2
	}
	if super, ok := l.superMatchFor(courtID); ok && super == used {
		round = RoundSuper
	}
	return round
}

func (l *LunarConfig) phase(key MatchKey) Phase {
	if p, ok := l.phases[key]; ok {
		return p
	}
	return PhaseNotStarted
}

func (l *LunarConfig) setPhase(key MatchKey, p Phase) {
	if l.phases == nil {
		l.phases = make(map[MatchKey]Phase)
	}
	l.phases[key] = p
}

// markInProgress records that a match is being played on key.
func (l *LunarConfig) markInProgress(key MatchKey) {
	l.setPhase(key, PhaseInProgress)
}

// advance records a finished match and reports whether a running total changed.
// Only the push that flips matchFinished from false to true with a known winner
// counts; resends of the finished state and winners supplied later never do.
func (l *LunarConfig) advance(key MatchKey, winner int, prevFinished bool) bool {
	if prevFinished {
		return false
	}
	switch winner {
	case WinnerHome:
		l.HomeWinsTotal++
	case WinnerAway:
		l.AwayWinsTotal++
	default:
		l.setPhase(key, PhasePendingTally)
		return false
	}
	l.setPhase(key, PhaseTallied)
	log.Debug("LUNAR match tallied", "courtID", key.CourtID, "round", key.Round, "winner", winner, "home", l.HomeWinsTotal, "away", l.AwayWinsTotal)
	return true
}

// upsertResult stores a snapshot keyed by (court, round). An existing entry is
// replaced in place and keeps its id; an identical resend leaves it untouched.
// It reports whether an entry existed and whether its content changed.
func (l *LunarConfig) upsertResult(result MatchResult, newID func() string) (stored MatchResult, replaced, changed bool) {
	for i, existing := range l.Results {
		if existing.CourtID == result.CourtID && existing.Round == result.Round {
			if sameOutcome(existing, result) {
				return existing, true, false
			}
			result.ID = existing.ID
			l.Results[i] = result
			return result, true, true
		}
	}
	result.ID = newID()
	l.Results = append(l.Results, result)
	return result, false, true
}

// sameOutcome compares two snapshots ignoring their id and finish time.
func sameOutcome(a, b MatchResult) bool {
	a.ID, b.ID = "", ""
	a.FinishedAt, b.FinishedAt = time.Time{}, time.Time{}
	return a == b
}

func (l *LunarConfig) view() LunarView {
	v := LunarView{
		Enabled:           l.Enabled,
		EventID:           l.EventID,
		SelectedCourts:    []int{},
		Round1Assignments: make(map[int]Slots, len(l.Round1)),
		Round2Assignments: make(map[int]Slots, len(l.Round2)),
		SuperMatchPlayers: l.SuperMatchPlayers,
		Results:           append([]MatchResult{}, l.Results...),
		HomeWinsTotal:     l.HomeWinsTotal,
		AwayWinsTotal:     l.AwayWinsTotal,
		Phases:            []PhaseEntry{},
	}
	for id, selected := range l.SelectedCourts {
		if selected {
			v.SelectedCourts = append(v.SelectedCourts, id)
		}
	}
	sort.Ints(v.SelectedCourts)
	for id, slots := range l.Round1 {
		v.Round1Assignments[id] = slots
	}
	for id, slots := range l.Round2 {
		v.Round2Assignments[id] = slots
	}
	if l.SuperMatchCourtID != 0 {
		id := l.SuperMatchCourtID
		v.SuperMatchCourtID = &id
	}
	for key, p := range l.phases {
		v.Phases = append(v.Phases, PhaseEntry{CourtID: key.CourtID, Round: key.Round, Phase: p})
	}
	sort.Slice(v.Phases, func(i, j int) bool {
		if v.Phases[i].CourtID != v.Phases[j].CourtID {
			return v.Phases[i].CourtID < v.Phases[j].CourtID
		}
		return v.Phases[i].Round < v.Phases[j].Round
	})
	return v
}
