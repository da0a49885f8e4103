package scoreboard

// ScoreboardStore defines the operations on the in-memory tournament state.
type ScoreboardStore interface {
	// Controller
	PushScore(update ScoreUpdate) (*FinishedMatch, error)

	// Admin console
	SetAdminNames(courtID int, homeName, awayName *string) error
	ReplaceRoster(side Side, names []string) error
	ReplaceRosters(home, away []string)
	SetCourtSlots(courtID int, slots Slots) error
	ResetCourt(courtID int) error
	SetLunarConfig(settings LunarSettings)
	SetLunarRoundPlayers(round Round, courtID int, slots Slots) error
	SetSuperMatchPlayers(slots Slots)

	// Views
	ListCourts() []CourtView
	AdminState() AdminState
	Resolve(courtID int) (Resolution, error)
}
