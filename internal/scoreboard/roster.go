package scoreboard

import (
	"fmt"
	"strings"
)

// Replace overwrites one side of the roster. The list is padded or truncated to
// MaxPlayers entries and every name is trimmed.
func (r *Roster) Replace(side Side, names []string) error {
	var slots [MaxPlayers]string
	for i := 0; i < MaxPlayers && i < len(names); i++ {
		slots[i] = strings.TrimSpace(names[i])
	}
	switch side {
	case Home:
		r.Home = slots
	case Away:
		r.Away = slots
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSide, side)
	}
	return nil
}

// NameAt returns the trimmed name in the given 1-based slot. It reports false when
// the slot is out of range or empty.
func (r *Roster) NameAt(side Side, slot Slot) (string, bool) {
	if !slot.IsSet() {
		return "", false
	}
	var name string
	switch side {
	case Home:
		name = r.Home[slot-1]
	case Away:
		name = r.Away[slot-1]
	default:
		return "", false
	}
	name = strings.TrimSpace(name)
	return name, name != ""
}

// joinedName builds the display name for a side from up to two slots.
// Two names become "A / B"; one name stands alone; none reports false.
func (r *Roster) joinedName(side Side, first, second Slot) (string, bool) {
	var names []string
	for _, slot := range []Slot{first, second} {
		if name, ok := r.NameAt(side, slot); ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	return strings.Join(names, " / "), true
}

func (r *Roster) view() RosterView {
	return RosterView{
		Home: append([]string(nil), r.Home[:]...),
		Away: append([]string(nil), r.Away[:]...),
	}
}
