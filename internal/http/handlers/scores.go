package handlers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padelton/internal/live"
	"github.com/mauv0809/padelton/internal/metrics"
	"github.com/mauv0809/padelton/internal/processor"
	"github.com/mauv0809/padelton/internal/scoreboard"
)

// UpdateScoreHandler receives controller pushes.
func UpdateScoreHandler(store scoreboard.ScoreboardStore, proc *processor.Processor, metrics metrics.Metrics, hub live.Broadcaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := decodeFields(r)
		if err != nil {
			metrics.IncScoreUpdatesRejected()
			writeError(w, err)
			return
		}
		update, err := f.scoreUpdate()
		if err != nil {
			metrics.IncScoreUpdatesRejected()
			writeError(w, err)
			return
		}

		finished, err := store.PushScore(update)
		if err != nil {
			metrics.IncScoreUpdatesRejected()
			writeError(w, err)
			return
		}
		metrics.IncScoreUpdates(update.CourtID)

		// State is committed; follow-up work never fails the push.
		if finished != nil && proc != nil {
			log.Debug("LUNAR match finished", "courtID", finished.Result.CourtID, "round", finished.Result.Round, "tallied", finished.Tallied)
			proc.HandleFinishedMatch(finished, IsDryRunFromContext(r))
		}
		broadcastCourts(store, hub)
		writeOK(w)
	}
}

// ListCourtsHandler returns every court as scoreboards display it.
func ListCourtsHandler(store scoreboard.ScoreboardStore, metrics metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courts := store.ListCourts()
		online := 0
		for _, c := range courts {
			if c.Online {
				online++
			}
		}
		metrics.SetCourtsOnline(online)
		writeJSON(w, http.StatusOK, courts)
	}
}
