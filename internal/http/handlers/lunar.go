package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padelton/internal/archive"
	"github.com/mauv0809/padelton/internal/live"
	"github.com/mauv0809/padelton/internal/processor"
	"github.com/mauv0809/padelton/internal/scoreboard"
)

// SetLunarConfigHandler toggles LUNAR and selects its courts. Disabling wipes all LUNAR state.
func SetLunarConfigHandler(store scoreboard.ScoreboardStore, hub live.Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := decodeFields(r)
		if err != nil {
			writeError(w, err)
			return
		}
		settings := scoreboard.LunarSettings{SelectedCourts: f.intList("selectedCourts")}
		if enabled := f.boolOr("enabled"); enabled != nil {
			settings.Enabled = *enabled
		}
		if id := f.intOr("superMatchCourtId", 0); id != nil {
			settings.SuperMatchCourtID = *id
		}
		store.SetLunarConfig(settings)
		log.Info("LUNAR configuration updated", "enabled", settings.Enabled, "courts", settings.SelectedCourts, "superMatchCourtID", settings.SuperMatchCourtID)
		broadcastCourts(store, hub)
		writeOK(w)
	}
}

func SetLunarRoundHandler(store scoreboard.ScoreboardStore, hub live.Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := decodeFields(r)
		if err != nil {
			writeError(w, err)
			return
		}
		round, err := f.requiredInt("round", scoreboard.ErrInvalidRound)
		if err != nil {
			writeError(w, err)
			return
		}
		courtID, err := f.courtID()
		if err != nil {
			writeError(w, err)
			return
		}
		if err := store.SetLunarRoundPlayers(scoreboard.Round(round), courtID, f.slots()); err != nil {
			writeError(w, err)
			return
		}
		broadcastCourts(store, hub)
		writeOK(w)
	}
}

func SetSuperMatchHandler(store scoreboard.ScoreboardStore, hub live.Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := decodeFields(r)
		if err != nil {
			writeError(w, err)
			return
		}
		store.SetSuperMatchPlayers(f.slots())
		broadcastCourts(store, hub)
		writeOK(w)
	}
}

// LunarSummaryHandler posts the current LUNAR standings to Slack.
func LunarSummaryHandler(store scoreboard.ScoreboardStore, proc *processor.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lunar := store.AdminState().Lunar
		if !lunar.Enabled {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "LUNAR is not enabled"})
			return
		}
		err := proc.SendSummary(lunar, IsDryRunFromContext(r))
		if errors.Is(err, processor.ErrNoNotifier) {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeOK(w)
	}
}

// HistoryHandler lists archived LUNAR events, or the results of one with ?eventId=.
func HistoryHandler(results archive.ResultStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if results == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "results archive is disabled"})
			return
		}
		if eventID := r.URL.Query().Get("eventId"); eventID != "" {
			list, err := results.GetResults(eventID)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, list)
			return
		}
		events, err := results.GetEvents()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, events)
	}
}
