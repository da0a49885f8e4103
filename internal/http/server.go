package http

import (
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-chi/cors"
	"github.com/mauv0809/padelton/internal/archive"
	"github.com/mauv0809/padelton/internal/config"
	"github.com/mauv0809/padelton/internal/http/handlers"
	"github.com/mauv0809/padelton/internal/live"
	"github.com/mauv0809/padelton/internal/metrics"
	"github.com/mauv0809/padelton/internal/processor"
	"github.com/mauv0809/padelton/internal/pubsub"
	"github.com/mauv0809/padelton/internal/scoreboard"
)

// NewServer wires the routes. results and pubsubClient may be nil when the archive or
// Pub/Sub are not configured.
func NewServer(store scoreboard.ScoreboardStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, proc *processor.Processor, results archive.ResultStore, hub *live.Hub, pubsubClient pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Processor:      proc,
		Archive:        results,
		Hub:            hub,
		Router:         http.NewServeMux(),
		pubsub:         pubsubClient,
	}

	server.routes()
	server.handler = Chain(server.Router, cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(handler, paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))

	// Controllers and scoreboards
	s.Router.Handle("POST /api/updateScore", Chain(handlers.UpdateScoreHandler(s.Store, s.Processor, s.Metrics, s.Hub), paramsMiddleware))
	s.Router.Handle("GET /api/courts", Chain(handlers.ListCourtsHandler(s.Store, s.Metrics), paramsMiddleware))
	s.Router.Handle("GET /ws/courts", handlers.LiveCourtsHandler(s.Hub))

	// Admin console
	s.Router.Handle("GET /api/admin/state", Chain(handlers.AdminStateHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /api/admin/names", Chain(handlers.SetAdminNamesHandler(s.Store, s.Hub), paramsMiddleware))
	s.Router.Handle("POST /api/admin/players", Chain(handlers.ReplaceRosterHandler(s.Store, s.Hub), paramsMiddleware))
	s.Router.Handle("POST /api/admin/courtPlayers", Chain(handlers.SetCourtPlayersHandler(s.Store, s.Hub), paramsMiddleware))
	s.Router.Handle("POST /api/admin/resetCourt", Chain(handlers.ResetCourtHandler(s.Store, s.Hub), paramsMiddleware))
	s.Router.Handle("POST /api/admin/lunar", Chain(handlers.SetLunarConfigHandler(s.Store, s.Hub), paramsMiddleware))
	s.Router.Handle("POST /api/admin/lunar/round", Chain(handlers.SetLunarRoundHandler(s.Store, s.Hub), paramsMiddleware))
	s.Router.Handle("POST /api/admin/lunar/super", Chain(handlers.SetSuperMatchHandler(s.Store, s.Hub), paramsMiddleware))
	s.Router.Handle("POST /api/admin/lunar/summary", Chain(handlers.LunarSummaryHandler(s.Store, s.Processor), paramsMiddleware))
	s.Router.Handle("GET /api/admin/history", Chain(handlers.HistoryHandler(s.Archive), paramsMiddleware))

	// Pub/Sub push subscription
	s.Router.Handle("POST /events/match-finished", Chain(handlers.MatchFinishedHandler(s.Processor, s.pubsub), paramsMiddleware))

	if dir := s.Cfg.StaticDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			s.Router.Handle("GET /", http.FileServer(http.Dir(dir)))
		} else {
			log.Warn("Static directory not found, dashboards are not served", "dir", dir)
		}
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
