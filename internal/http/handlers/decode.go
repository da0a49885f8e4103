package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/mauv0809/padelton/internal/scoreboard"
)

const maxBodyBytes = 1 << 20

// ErrInvalidBody is returned when a request body is not a JSON object.
var ErrInvalidBody = errors.New("invalid JSON body")

// fields is a request body decoded one level deep. Values are converted leniently:
// a malformed optional value falls back to a default instead of failing the request.
type fields map[string]json.RawMessage

func decodeFields(r *http.Request) (fields, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	f := fields{}
	if len(bytes.TrimSpace(body)) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return f, nil
}

// present reports whether key was sent with a non-null value.
func (f fields) present(key string) bool {
	raw, ok := f[key]
	return ok && !isNull(raw)
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

// parseInt accepts JSON numbers (fractions are truncated) and numeric strings.
// Values outside the int32 range are malformed.
func parseInt(raw json.RawMessage) (int, bool) {
	if isNull(raw) {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		if n, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0, false
		}
	}
	if math.IsNaN(n) || n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}

// parseBool accepts true/false, "true"/"false" and 1/0.
func parseBool(raw json.RawMessage) (bool, bool) {
	if isNull(raw) {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return v, true
		}
		return false, false
	}
	if n, ok := parseInt(raw); ok {
		return n != 0, true
	}
	return false, false
}

// intOr returns nil when key is absent, the parsed value, or def when malformed.
func (f fields) intOr(key string, def int) *int {
	if !f.present(key) {
		return nil
	}
	v, ok := parseInt(f[key])
	if !ok {
		v = def
	}
	return &v
}

// boolOr returns nil when key is absent, the parsed value, or false when malformed.
func (f fields) boolOr(key string) *bool {
	if !f.present(key) {
		return nil
	}
	v, _ := parseBool(f[key])
	return &v
}

// str returns nil when key is absent. Numbers are kept as their JSON text.
func (f fields) str(key string) *string {
	if !f.present(key) {
		return nil
	}
	raw := f[key]
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(bytes.TrimSpace(raw))
	}
	return &s
}

// trimmedOrNil returns nil for absent, null and blank values.
func (f fields) trimmedOrNil(key string) *string {
	s := f.str(key)
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// courtID returns the required courtId or ErrInvalidCourt.
func (f fields) courtID() (int, error) {
	return f.requiredInt("courtId", scoreboard.ErrInvalidCourt)
}

func (f fields) requiredInt(key string, invalid error) (int, error) {
	if !f.present(key) {
		return 0, fmt.Errorf("%w: missing %s", invalid, key)
	}
	v, ok := parseInt(f[key])
	if !ok {
		return 0, fmt.Errorf("%w: %s", invalid, strings.TrimSpace(string(f[key])))
	}
	return v, nil
}

// slot returns the roster slot at key; anything outside 1..MaxPlayers is unset.
func (f fields) slot(key string) scoreboard.Slot {
	if !f.present(key) {
		return 0
	}
	v, ok := parseInt(f[key])
	if !ok {
		return 0
	}
	return scoreboard.SlotFrom(v)
}

func (f fields) slots() scoreboard.Slots {
	return scoreboard.Slots{
		HomeIdx1: f.slot("homeIdx1"),
		HomeIdx2: f.slot("homeIdx2"),
		AwayIdx1: f.slot("awayIdx1"),
		AwayIdx2: f.slot("awayIdx2"),
	}
}

// intList decodes a list of ints, skipping entries that are not numbers.
func (f fields) intList(key string) []int {
	if !f.present(key) {
		return nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(f[key], &raws); err != nil {
		return nil
	}
	out := make([]int, 0, len(raws))
	for _, raw := range raws {
		if v, ok := parseInt(raw); ok {
			out = append(out, v)
		}
	}
	return out
}

// stringList decodes a list of names; null and non-string entries become empty names
// so that positions, and with them slot numbers, are preserved.
func (f fields) stringList(key string) ([]string, bool) {
	if !f.present(key) {
		return nil, false
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(f[key], &raws); err != nil {
		return []string{}, true
	}
	out := make([]string, len(raws))
	for i, raw := range raws {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out[i] = s
		}
	}
	return out, true
}

// scoreUpdate builds a controller push. Set scores and loser tiebreak points default
// to -1 when malformed, other numbers to 0 and booleans to false.
func (f fields) scoreUpdate() (scoreboard.ScoreUpdate, error) {
	courtID, err := f.courtID()
	if err != nil {
		return scoreboard.ScoreUpdate{}, err
	}
	u := scoreboard.ScoreUpdate{
		CourtID:       courtID,
		HomeName:      f.str("homeName"),
		AwayName:      f.str("awayName"),
		HomePointsStr: f.str("homePointsStr"),
		AwayPointsStr: f.str("awayPointsStr"),
		HomeGames:     f.intOr("homeGames", 0),
		AwayGames:     f.intOr("awayGames", 0),
		HomeSets:      f.intOr("homeSets", 0),
		AwaySets:      f.intOr("awaySets", 0),

		Set1Home:          f.intOr("set1Home", -1),
		Set1Away:          f.intOr("set1Away", -1),
		Set1LoserTbPoints: f.intOr("set1LoserTbPoints", -1),
		Set1LoserIsHome:   f.boolOr("set1LoserIsHome"),
		Set2Home:          f.intOr("set2Home", -1),
		Set2Away:          f.intOr("set2Away", -1),
		Set2LoserTbPoints: f.intOr("set2LoserTbPoints", -1),
		Set2LoserIsHome:   f.boolOr("set2LoserIsHome"),
		SetsStr:           f.str("setsStr"),

		MatchFinished: f.boolOr("matchFinished"),
		Winner:        f.intOr("winner", 0),
		Mtb3rd:        f.boolOr("mtb3rd"),
	}
	u.HomePoints, u.HomePointsStr = f.points("homePoints", u.HomePointsStr)
	u.AwayPoints, u.AwayPointsStr = f.points("awayPoints", u.AwayPointsStr)
	return u, nil
}

// points accepts a numeric point count or a pre-formatted display value such as "AD".
// A display value sent in the numeric field fills the display field when that was not sent.
func (f fields) points(key string, display *string) (*int, *string) {
	if !f.present(key) {
		return nil, display
	}
	if v, ok := parseInt(f[key]); ok {
		return &v, display
	}
	zero := 0
	if display == nil {
		display = f.str(key)
	}
	return &zero, display
}
