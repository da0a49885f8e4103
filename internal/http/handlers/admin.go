package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padelton/internal/live"
	"github.com/mauv0809/padelton/internal/scoreboard"
)

func AdminStateHandler(store scoreboard.ScoreboardStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.AdminState())
	}
}

// SetAdminNamesHandler sets both free-text overrides of a court. A missing, null or
// blank name clears that side's override.
func SetAdminNamesHandler(store scoreboard.ScoreboardStore, hub live.Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := decodeFields(r)
		if err != nil {
			writeError(w, err)
			return
		}
		courtID, err := f.courtID()
		if err != nil {
			writeError(w, err)
			return
		}
		if err := store.SetAdminNames(courtID, f.trimmedOrNil("homeName"), f.trimmedOrNil("awayName")); err != nil {
			writeError(w, err)
			return
		}
		log.Info("Admin names updated", "courtID", courtID)
		broadcastCourts(store, hub)
		writeOK(w)
	}
}

// ReplaceRosterHandler replaces the roster of each side present in the body.
func ReplaceRosterHandler(store scoreboard.ScoreboardStore, hub live.Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := decodeFields(r)
		if err != nil {
			writeError(w, err)
			return
		}
		home, _ := f.stringList(string(scoreboard.Home))
		away, _ := f.stringList(string(scoreboard.Away))
		store.ReplaceRosters(home, away)
		log.Info("Roster replaced", "home", home != nil, "away", away != nil)
		broadcastCourts(store, hub)
		writeOK(w)
	}
}

func SetCourtPlayersHandler(store scoreboard.ScoreboardStore, hub live.Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := decodeFields(r)
		if err != nil {
			writeError(w, err)
			return
		}
		courtID, err := f.courtID()
		if err != nil {
			writeError(w, err)
			return
		}
		if err := store.SetCourtSlots(courtID, f.slots()); err != nil {
			writeError(w, err)
			return
		}
		broadcastCourts(store, hub)
		writeOK(w)
	}
}

// ResetCourtHandler clears a court's controller-fed state between matches.
func ResetCourtHandler(store scoreboard.ScoreboardStore, hub live.Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := decodeFields(r)
		if err != nil {
			writeError(w, err)
			return
		}
		courtID, err := f.courtID()
		if err != nil {
			writeError(w, err)
			return
		}
		if err := store.ResetCourt(courtID); err != nil {
			writeError(w, err)
			return
		}
		log.Info("Court reset", "courtID", courtID)
		broadcastCourts(store, hub)
		writeOK(w)
	}
}
