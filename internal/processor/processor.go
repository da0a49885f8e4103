package processor

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padelton/internal/metrics"
	"github.com/mauv0809/padelton/internal/pubsub"
	"github.com/mauv0809/padelton/internal/scoreboard"
)

// ErrNoNotifier is returned when a summary is requested without Slack configured.
var ErrNoNotifier = errors.New("no notifier configured")

// New creates a new Processor. An empty topic uses pubsub.EventMatchFinished.
func New(store Store, notifier Notifier, metrics metrics.Metrics, pubsubClient pubsub.PubSubClient, topic string) *Processor {
	t := pubsub.EventMatchFinished
	if topic != "" {
		t = pubsub.EventType(topic)
	}
	return &Processor{
		store:    store,
		pubsub:   pubsubClient,
		notifier: notifier,
		metrics:  metrics,
		topic:    t,
	}
}

// HandleFinishedMatch is called once the push that produced match has committed.
// With Pub/Sub configured the match is published and recorded when the push
// subscription delivers it back; otherwise it is recorded right away.
func (p *Processor) HandleFinishedMatch(match *scoreboard.FinishedMatch, dryRun bool) {
	if match == nil {
		return
	}
	if match.Tallied {
		p.metrics.IncMatchesTallied(winnerLabel(match.Result.Winner))
	}
	// Controllers resend the finished state every second; nothing new to record.
	if !match.Tallied && !match.Changed {
		log.Debug("Finished match unchanged, skipping", "courtID", match.Result.CourtID, "round", match.Result.Round)
		return
	}

	if p.pubsub != nil && !dryRun {
		err := p.pubsub.SendMessage(p.topic, match)
		if err == nil {
			log.Debug("Published finished match", "courtID", match.Result.CourtID, "round", match.Result.Round, "topic", p.topic)
			return
		}
		log.Error("Failed to publish finished match, recording inline", "error", err, "courtID", match.Result.CourtID)
	}
	p.RecordFinishedMatch(match, dryRun)
}

// RecordFinishedMatch archives the ledger entry, stores the running totals and
// announces newly counted results. Failures are logged and never propagate.
func (p *Processor) RecordFinishedMatch(match *scoreboard.FinishedMatch, dryRun bool) {
	if match == nil {
		return
	}
	startTime := time.Now()
	log.Info("Recording finished match", "eventID", match.EventID, "courtID", match.Result.CourtID, "round", match.Result.Round, "winner", match.Result.Winner, "tallied", match.Tallied)

	stage := StageArchive
	for stage != StageComplete {
		log.Debug("Evaluating finished match stage", "courtID", match.Result.CourtID, "stage", stage)

		switch stage {
		case StageArchive:
			switch {
			case p.store == nil:
				log.Debug("No archive configured, skipping", "courtID", match.Result.CourtID)
			case dryRun:
				log.Info("[Dry Run] Would archive result", "eventID", match.EventID, "courtID", match.Result.CourtID, "round", match.Result.Round)
			default:
				if err := p.store.UpsertResult(match.EventID, match.Result); err != nil {
					log.Error("Failed to archive result", "error", err, "eventID", match.EventID, "courtID", match.Result.CourtID)
				}
			}
			stage = StageTotals

		case StageTotals:
			if p.store != nil && !dryRun && match.Tallied {
				if err := p.store.RecordTotals(match.EventID, match.HomeWinsTotal, match.AwayWinsTotal); err != nil {
					log.Error("Failed to archive totals", "error", err, "eventID", match.EventID)
				}
			}
			stage = StageNotify

		case StageNotify:
			// Newly counted matches and corrected results are announced.
			if p.notifier != nil && announce(match) {
				if err := p.notifier.SendMatchResult(match, dryRun); err != nil {
					log.Error("Failed to send result notification", "error", err, "courtID", match.Result.CourtID)
				}
			}
			stage = StageComplete
		}
	}

	p.metrics.ObserveTallyDuration(time.Since(startTime).Seconds())
	log.Debug("Finished recording match", "courtID", match.Result.CourtID, "duration", time.Since(startTime))
}

// SendSummary posts the standings of a LUNAR event.
func (p *Processor) SendSummary(lunar scoreboard.LunarView, dryRun bool) error {
	if p.notifier == nil {
		return ErrNoNotifier
	}
	return p.notifier.SendLunarSummary(lunar.EventID, lunar.Results, lunar.HomeWinsTotal, lunar.AwayWinsTotal, dryRun)
}

func announce(match *scoreboard.FinishedMatch) bool {
	return match.Tallied || (match.Replaced && match.Changed)
}

func winnerLabel(winner int) string {
	switch winner {
	case scoreboard.WinnerHome:
		return "home"
	case scoreboard.WinnerAway:
		return "away"
	default:
		return "none"
	}
}
