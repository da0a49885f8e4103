package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/padelton/internal/processor"
	"github.com/mauv0809/padelton/internal/pubsub"
	"github.com/mauv0809/padelton/internal/scoreboard"
)

// MatchFinishedHandler is the Pub/Sub push endpoint for finished LUNAR matches.
func MatchFinishedHandler(proc *processor.Processor, pubsubClient pubsub.PubSubClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received match finished message", "body", string(bodyBytes))

		var envelope pubsub.PushEnvelope
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		rawData, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		var match scoreboard.FinishedMatch
		if pubsubClient != nil {
			err = pubsubClient.ProcessMessage(rawData, &match)
		} else {
			err = pubsub.Decode(rawData, &match)
		}
		if err != nil {
			// Acknowledge anyway: redelivering an undecodable message cannot succeed.
			log.Error("Dropping undecodable finished match", "error", err, "messageID", envelope.Message.MessageID)
			w.Write([]byte("OK"))
			return
		}

		proc.RecordFinishedMatch(&match, IsDryRunFromContext(r))
		w.Write([]byte("OK"))
	}
}
