package http

import (
	"net/http"

	"github.com/mauv0809/padelton/internal/archive"
	"github.com/mauv0809/padelton/internal/config"
	"github.com/mauv0809/padelton/internal/live"
	"github.com/mauv0809/padelton/internal/metrics"
	"github.com/mauv0809/padelton/internal/processor"
	"github.com/mauv0809/padelton/internal/pubsub"
	"github.com/mauv0809/padelton/internal/scoreboard"
)

type Server struct {
	Store          scoreboard.ScoreboardStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Processor      *processor.Processor
	Archive        archive.ResultStore
	Hub            *live.Hub
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
	handler        http.Handler
}
