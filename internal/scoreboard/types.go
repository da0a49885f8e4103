package scoreboard

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// NumCourts is the number of courts, identified 1..NumCourts.
	NumCourts = 5
	// MaxPlayers is the number of roster slots per side.
	MaxPlayers = 16

	DefaultHomeName = "Home"
	DefaultAwayName = "Away"
)

var (
	ErrInvalidCourt = errors.New("invalid courtId")
	ErrInvalidRound = errors.New("invalid round")
	ErrInvalidSide  = errors.New("invalid side")
)

// Side selects one half of the roster or a court.
type Side string

const (
	Home Side = "home"
	Away Side = "away"
)

// Winner values as reported by the controller.
const (
	WinnerNone = 0
	WinnerHome = 1
	WinnerAway = 2
)

// Round classifies a finished LUNAR match.
type Round int

const (
	RoundNone  Round = 0
	Round1     Round = 1
	Round2     Round = 2
	RoundSuper Round = 7
)

// Phase is the tally state of a single (court, round) LUNAR match.
type Phase string

const (
	PhaseNotStarted   Phase = "NOT_STARTED"
	PhaseInProgress   Phase = "IN_PROGRESS"
	PhasePendingTally Phase = "PENDING_TALLY"
	PhaseTallied      Phase = "TALLIED"
)

// Slot is a 1-based roster index. The zero value means unset.
type Slot int

// SlotFrom normalizes any integer to a Slot, mapping out-of-range values to unset.
func SlotFrom(n int) Slot {
	if n < 1 || n > MaxPlayers {
		return 0
	}
	return Slot(n)
}

func (s Slot) IsSet() bool {
	return s >= 1 && s <= MaxPlayers
}

func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.IsSet() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(s))), nil
}

// UnmarshalJSON never fails: anything that is not a valid index becomes unset.
func (s *Slot) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	n, err := strconv.Atoi(raw)
	if err != nil {
		*s = 0
		return nil
	}
	*s = SlotFrom(n)
	return nil
}

// Slots is a player-slot quadruple: up to two roster indices per side.
type Slots struct {
	HomeIdx1 Slot `json:"homeIdx1" msgpack:"homeIdx1"`
	HomeIdx2 Slot `json:"homeIdx2" msgpack:"homeIdx2"`
	AwayIdx1 Slot `json:"awayIdx1" msgpack:"awayIdx1"`
	AwayIdx2 Slot `json:"awayIdx2" msgpack:"awayIdx2"`
}

func (s Slots) IsEmpty() bool {
	return !s.HomeIdx1.IsSet() && !s.HomeIdx2.IsSet() && !s.AwayIdx1.IsSet() && !s.AwayIdx2.IsSet()
}

func (s Slots) normalized() Slots {
	return Slots{
		HomeIdx1: SlotFrom(int(s.HomeIdx1)),
		HomeIdx2: SlotFrom(int(s.HomeIdx2)),
		AwayIdx1: SlotFrom(int(s.AwayIdx1)),
		AwayIdx2: SlotFrom(int(s.AwayIdx2)),
	}
}

// Court is the per-court record fed by the controller and the admin console.
type Court struct {
	CourtID int `json:"courtId"`

	HomeName      string  `json:"homeName"`
	AwayName      string  `json:"awayName"`
	AdminHomeName *string `json:"adminHomeName"`
	AdminAwayName *string `json:"adminAwayName"`
	Slots

	HomePoints    int    `json:"homePoints"`
	AwayPoints    int    `json:"awayPoints"`
	HomePointsStr string `json:"homePointsStr"`
	AwayPointsStr string `json:"awayPointsStr"`
	HomeGames     int    `json:"homeGames"`
	AwayGames     int    `json:"awayGames"`
	HomeSets      int    `json:"homeSets"`
	AwaySets      int    `json:"awaySets"`

	Set1Home          int    `json:"set1Home"`
	Set1Away          int    `json:"set1Away"`
	Set1LoserTbPoints int    `json:"set1LoserTbPoints"`
	Set1LoserIsHome   bool   `json:"set1LoserIsHome"`
	Set2Home          int    `json:"set2Home"`
	Set2Away          int    `json:"set2Away"`
	Set2LoserTbPoints int    `json:"set2LoserTbPoints"`
	Set2LoserIsHome   bool   `json:"set2LoserIsHome"`
	SetsStr           string `json:"setsStr"`

	MatchFinished bool `json:"matchFinished"`
	Winner        int  `json:"winner"`
	Mtb3rd        bool `json:"mtb3rd"`

	Online     bool      `json:"online"`
	LastUpdate time.Time `json:"-"`
}

// ScoreUpdate is one controller push. Nil fields leave the court unchanged.
type ScoreUpdate struct {
	CourtID int

	HomeName      *string
	AwayName      *string
	HomePoints    *int
	AwayPoints    *int
	HomePointsStr *string
	AwayPointsStr *string
	HomeGames     *int
	AwayGames     *int
	HomeSets      *int
	AwaySets      *int

	Set1Home          *int
	Set1Away          *int
	Set1LoserTbPoints *int
	Set1LoserIsHome   *bool
	Set2Home          *int
	Set2Away          *int
	Set2LoserTbPoints *int
	Set2LoserIsHome   *bool
	SetsStr           *string

	MatchFinished *bool
	Winner        *int
	Mtb3rd        *bool
}

// Roster holds the display names available for assignment, one list per side.
type Roster struct {
	Home [MaxPlayers]string
	Away [MaxPlayers]string
}

// MatchKey identifies a LUNAR match in the ledger.
type MatchKey struct {
	CourtID int
	Round   Round
}

// MatchResult is a ledger snapshot of a finished LUNAR match.
type MatchResult struct {
	ID      string `json:"id" msgpack:"id"`
	CourtID int    `json:"courtId" msgpack:"courtId"`
	Round   Round  `json:"round" msgpack:"round"`

	HomeName string `json:"homeName" msgpack:"homeName"`
	AwayName string `json:"awayName" msgpack:"awayName"`
	Slots    Slots  `json:"slots" msgpack:"slots"`

	Set1Home          int    `json:"set1Home" msgpack:"set1Home"`
	Set1Away          int    `json:"set1Away" msgpack:"set1Away"`
	Set1LoserTbPoints int    `json:"set1LoserTbPoints" msgpack:"set1LoserTbPoints"`
	Set1LoserIsHome   bool   `json:"set1LoserIsHome" msgpack:"set1LoserIsHome"`
	Set2Home          int    `json:"set2Home" msgpack:"set2Home"`
	Set2Away          int    `json:"set2Away" msgpack:"set2Away"`
	Set2LoserTbPoints int    `json:"set2LoserTbPoints" msgpack:"set2LoserTbPoints"`
	Set2LoserIsHome   bool   `json:"set2LoserIsHome" msgpack:"set2LoserIsHome"`
	SetsStr           string `json:"setsStr" msgpack:"setsStr"`
	HomeSets          int    `json:"homeSets" msgpack:"homeSets"`
	AwaySets          int    `json:"awaySets" msgpack:"awaySets"`

	Winner     int       `json:"winner" msgpack:"winner"`
	FinishedAt time.Time `json:"finishedAt" msgpack:"finishedAt"`
}

// FinishedMatch is what a push produces when a LUNAR court reports a finished match.
// It is handed to the processor after the state mutation has committed.
type FinishedMatch struct {
	EventID       string      `json:"eventId" msgpack:"eventId"`
	Result        MatchResult `json:"result" msgpack:"result"`
	Tallied       bool        `json:"tallied" msgpack:"tallied"`
	Replaced      bool        `json:"replaced" msgpack:"replaced"`
	Changed       bool        `json:"changed" msgpack:"changed"`
	HomeWinsTotal int         `json:"homeWinsTotal" msgpack:"homeWinsTotal"`
	AwayWinsTotal int         `json:"awayWinsTotal" msgpack:"awayWinsTotal"`
}

// LunarSettings is the admin-supplied LUNAR toggle and court selection.
type LunarSettings struct {
	Enabled           bool
	SelectedCourts    []int
	SuperMatchCourtID int
}

// LunarConfig is the process-wide LUNAR state. The zero value is the disabled state.
type LunarConfig struct {
	Enabled           bool
	EventID           string
	SelectedCourts    map[int]bool
	Round1            map[int]Slots
	Round2            map[int]Slots
	SuperMatchCourtID int
	SuperMatchPlayers Slots
	Results           []MatchResult
	HomeWinsTotal     int
	AwayWinsTotal     int

	phases map[MatchKey]Phase
}

// Resolution is what viewers see for a court once every name layer has been applied.
type Resolution struct {
	HomeName        string `json:"homeName"`
	AwayName        string `json:"awayName"`
	IsLunar         bool   `json:"isLunar"`
	IsSuperMatchTie bool   `json:"isSuperMatchTie"`
	Slots           Slots  `json:"usedSlots"`
	LunarRound      Round  `json:"lunarRoundUsed"`
	HasMatch        bool   `json:"hasMatch"`
}

// CourtView is a court as returned to scoreboards: raw fields overlaid with the resolution.
type CourtView struct {
	Court
	HomeName        string `json:"homeName"`
	AwayName        string `json:"awayName"`
	Online          bool   `json:"online"`
	LastUpdate      int64  `json:"lastUpdate"`
	IsLunar         bool   `json:"isLunar"`
	IsSuperMatchTie bool   `json:"isSuperMatchTie"`
	UsedSlots       Slots  `json:"usedSlots"`
	LunarRoundUsed  Round  `json:"lunarRoundUsed"`
	HasMatch        bool   `json:"hasMatch"`
}

type RosterView struct {
	Home []string `json:"home"`
	Away []string `json:"away"`
}

type CourtAdmin struct {
	CourtID       int     `json:"courtId"`
	AdminHomeName *string `json:"adminHomeName"`
	AdminAwayName *string `json:"adminAwayName"`
	Slots
}

type PhaseEntry struct {
	CourtID int   `json:"courtId"`
	Round   Round `json:"round"`
	Phase   Phase `json:"phase"`
}

type LunarView struct {
	Enabled           bool          `json:"enabled"`
	EventID           string        `json:"eventId"`
	SelectedCourts    []int         `json:"selectedCourts"`
	Round1Assignments map[int]Slots `json:"round1Assignments"`
	Round2Assignments map[int]Slots `json:"round2Assignments"`
	SuperMatchCourtID *int          `json:"superMatchCourtId"`
	SuperMatchPlayers Slots         `json:"superMatchPlayers"`
	Results           []MatchResult `json:"results"`
	HomeWinsTotal     int           `json:"homeWinsTotal"`
	AwayWinsTotal     int           `json:"awayWinsTotal"`
	Phases            []PhaseEntry  `json:"phases"`
}

// AdminState is everything the admin console renders.
type AdminState struct {
	Players RosterView   `json:"players"`
	Courts  []CourtAdmin `json:"courts"`
	Lunar   LunarView    `json:"lunar"`
}

// store keeps all scoreboard state in memory.
type store struct {
	mu              sync.RWMutex
	courts          [NumCourts]Court
	roster          Roster
	lunar           LunarConfig
	onlineThreshold time.Duration
	now             func() time.Time
	newID           func() string
}

// Option configures a store.
type Option func(*store)

var _ json.Marshaler = Slot(0)
