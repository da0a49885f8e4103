package scoreboard

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultOnlineThreshold is how recent a controller push must be for a court to count as online.
const DefaultOnlineThreshold = 10 * time.Second

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *store) {
		s.now = now
	}
}

// WithIDGenerator replaces uuid.NewString, for tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *store) {
		s.newID = newID
	}
}

// New creates a ScoreboardStore with every court at its defaults, an empty roster
// and LUNAR disabled.
func New(onlineThreshold time.Duration, opts ...Option) ScoreboardStore {
	if onlineThreshold <= 0 {
		onlineThreshold = DefaultOnlineThreshold
	}
	s := &store{
		onlineThreshold: onlineThreshold,
		now:             time.Now,
		newID:           uuid.NewString,
	}
	for i := range s.courts {
		s.courts[i] = newCourt(i + 1)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *store) court(id int) (*Court, error) {
	if !validCourt(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCourt, id)
	}
	return &s.courts[id-1], nil
}

// PushScore applies a controller update and, for LUNAR courts, runs the finish and
// tally pipeline. The whole pipeline is one critical section. A non-nil FinishedMatch
// is returned whenever a LUNAR court reports a finished match.
func (s *store) PushScore(update ScoreUpdate) (*FinishedMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.court(update.CourtID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	prevFinished, prevWinner := c.MatchFinished, c.Winner
	update.apply(c)
	c.inferWinner()

	finished := s.finishMatch(c, prevFinished, now)

	c.Online = true
	c.LastUpdate = now

	log.Debug("Score update applied", "courtID", c.CourtID, "finished", c.MatchFinished, "winner", c.Winner, "prevFinished", prevFinished, "prevWinner", prevWinner)
	return finished, nil
}

// finishMatch classifies and tallies a LUNAR match. It must be called with the lock held.
func (s *store) finishMatch(c *Court, prevFinished bool, now time.Time) *FinishedMatch {
	if !s.lunar.IsSelected(c.CourtID) {
		return nil
	}

	res := Resolve(c, &s.roster, &s.lunar)
	round := s.lunar.classify(c.CourtID, res.Slots)
	key := MatchKey{CourtID: c.CourtID, Round: round}

	if !c.MatchFinished {
		if res.HasMatch {
			s.lunar.markInProgress(key)
		}
		return nil
	}

	tallied := s.lunar.advance(key, c.Winner, prevFinished)
	result, replaced, changed := s.lunar.upsertResult(c.snapshot(res, round, now), s.newID)

	return &FinishedMatch{
		EventID:       s.lunar.EventID,
		Result:        result,
		Tallied:       tallied,
		Replaced:      replaced,
		Changed:       changed,
		HomeWinsTotal: s.lunar.HomeWinsTotal,
		AwayWinsTotal: s.lunar.AwayWinsTotal,
	}
}

// SetAdminNames sets or clears (nil) the free-text name overrides of a court.
func (s *store) SetAdminNames(courtID int, homeName, awayName *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.court(courtID)
	if err != nil {
		return err
	}
	c.AdminHomeName = cloneString(homeName)
	c.AdminAwayName = cloneString(awayName)
	return nil
}

func (s *store) ReplaceRoster(side Side, names []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Replace(side, names)
}

// ReplaceRosters replaces both sides in one step. A nil side is left unchanged.
func (s *store) ReplaceRosters(home, away []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if home != nil {
		s.roster.Replace(Home, home)
	}
	if away != nil {
		s.roster.Replace(Away, away)
	}
}

func (s *store) SetCourtSlots(courtID int, slots Slots) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.court(courtID)
	if err != nil {
		return err
	}
	c.Slots = slots.normalized()
	return nil
}

func (s *store) ResetCourt(courtID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.court(courtID)
	if err != nil {
		return err
	}
	c.resetScore()
	return nil
}

func (s *store) SetLunarConfig(settings LunarSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lunar.configure(settings, s.newID)
}

func (s *store) SetLunarRoundPlayers(round Round, courtID int, slots Slots) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lunar.setRoundPlayers(round, courtID, slots)
}

func (s *store) SetSuperMatchPlayers(slots Slots) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lunar.SuperMatchPlayers = slots.normalized()
}

// ListCourts returns every court with liveness and names resolved fresh.
func (s *store) ListCourts() []CourtView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	views := make([]CourtView, 0, NumCourts)
	for i := range s.courts {
		c := s.courts[i]
		res := Resolve(&c, &s.roster, &s.lunar)
		online := c.isOnline(now, s.onlineThreshold)
		c.Online = online
		c.AdminHomeName = cloneString(c.AdminHomeName)
		c.AdminAwayName = cloneString(c.AdminAwayName)

		var lastUpdate int64
		if !c.LastUpdate.IsZero() {
			lastUpdate = c.LastUpdate.UnixMilli()
		}
		views = append(views, CourtView{
			Court:           c,
			HomeName:        res.HomeName,
			AwayName:        res.AwayName,
			Online:          online,
			LastUpdate:      lastUpdate,
			IsLunar:         res.IsLunar,
			IsSuperMatchTie: res.IsSuperMatchTie,
			UsedSlots:       res.Slots,
			LunarRoundUsed:  res.LunarRound,
			HasMatch:        res.HasMatch,
		})
	}
	return views
}

func (s *store) AdminState() AdminState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := AdminState{
		Players: s.roster.view(),
		Courts:  make([]CourtAdmin, 0, NumCourts),
		Lunar:   s.lunar.view(),
	}
	for _, c := range s.courts {
		state.Courts = append(state.Courts, CourtAdmin{
			CourtID:       c.CourtID,
			AdminHomeName: cloneString(c.AdminHomeName),
			AdminAwayName: cloneString(c.AdminAwayName),
			Slots:         c.Slots,
		})
	}
	return state
}

// Resolve runs the name resolver for a single court.
func (s *store) Resolve(courtID int) (Resolution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.court(courtID)
	if err != nil {
		return Resolution{}, err
	}
	return Resolve(c, &s.roster, &s.lunar), nil
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
