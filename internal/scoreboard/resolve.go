package scoreboard

// Resolve computes the names and flags viewers see for a court. It reads the court,
// the roster and the LUNAR configuration and modifies none of them.
//
// Layers, lowest precedence first:
//  1. base names from the controller
//  2. LUNAR round assignment (round 2, else round 1, else the court's own slots)
//  3. super-match players on the decider court
//  4. admin free-text names
//  5. roster names at the resolved slots, when there is at least one
func Resolve(c *Court, roster *Roster, lunar *LunarConfig) Resolution {
	res := Resolution{
		HomeName: c.HomeName,
		AwayName: c.AwayName,
		Slots:    c.Slots.normalized(),
		IsLunar:  lunar.IsSelected(c.CourtID),
	}

	if res.IsLunar {
		if slots, ok := lunar.assignment(Round2, c.CourtID); ok {
			res.Slots = slots
			res.LunarRound = Round2
		} else if slots, ok := lunar.assignment(Round1, c.CourtID); ok {
			res.Slots = slots
			res.LunarRound = Round1
		}

		if super, ok := lunar.superMatchFor(c.CourtID); ok {
			res.Slots = super
			res.IsSuperMatchTie = true
		}
	}

	if c.AdminHomeName != nil {
		res.HomeName = *c.AdminHomeName
	}
	if c.AdminAwayName != nil {
		res.AwayName = *c.AdminAwayName
	}

	if name, ok := roster.joinedName(Home, res.Slots.HomeIdx1, res.Slots.HomeIdx2); ok {
		res.HomeName = name
	}
	if name, ok := roster.joinedName(Away, res.Slots.AwayIdx1, res.Slots.AwayIdx2); ok {
		res.AwayName = name
	}

	res.HasMatch = !res.Slots.IsEmpty() ||
		c.HomePoints > 0 || c.AwayPoints > 0 ||
		c.HomeGames > 0 || c.AwayGames > 0 ||
		c.HomeSets > 0 || c.AwaySets > 0

	return res
}
