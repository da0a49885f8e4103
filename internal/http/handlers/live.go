package handlers

import (
	"net/http"

	"github.com/mauv0809/padelton/internal/live"
)

func LiveCourtsHandler(hub *live.Hub) http.HandlerFunc {
	return hub.ServeWS
}
