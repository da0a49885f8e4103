package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padelton/internal/live"
	"github.com/mauv0809/padelton/internal/scoreboard"
)

// ContextKey is a custom type to avoid key collisions in context.
type ContextKey string

const (
	DryRunKey ContextKey = "dryRun"
)

// IsDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func IsDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(DryRunKey).(bool)
	return ok && dryRun
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps validation errors to 400 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, scoreboard.ErrInvalidCourt),
		errors.Is(err, scoreboard.ErrInvalidRound),
		errors.Is(err, scoreboard.ErrInvalidSide),
		errors.Is(err, ErrInvalidBody):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "error", err)
	} else {
		log.Debug("Request rejected", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// CourtsSnapshot renders the courts projection the way /api/courts returns it.
func CourtsSnapshot(store scoreboard.ScoreboardStore) ([]byte, error) {
	return json.Marshal(store.ListCourts())
}

// broadcastCourts pushes the fresh projection to live viewers. hub may be nil.
func broadcastCourts(store scoreboard.ScoreboardStore, hub live.Broadcaster) {
	if hub == nil {
		return
	}
	payload, err := CourtsSnapshot(store)
	if err != nil {
		log.Error("Failed to encode courts for live feed", "error", err)
		return
	}
	hub.Broadcast(payload)
}
