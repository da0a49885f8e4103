package processor

import (
	"github.com/mauv0809/padelton/internal/metrics"
	"github.com/mauv0809/padelton/internal/pubsub"
)

// Processor runs the post-commit work for finished LUNAR matches.
// store, notifier and pubsub are optional: a nil value switches that step off.
type Processor struct {
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
	topic    pubsub.EventType
}

// Stage is a step of recording a finished match.
type Stage string

const (
	StageArchive  Stage = "ARCHIVE"
	StageTotals   Stage = "TOTALS"
	StageNotify   Stage = "NOTIFY"
	StageComplete Stage = "COMPLETE"
)
