package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType names the topic a message is published to.
type EventType string

// EventMatchFinished carries a scoreboard.FinishedMatch for LUNAR courts.
const EventMatchFinished EventType = "lunar-match-finished"

// PushEnvelope is the body Pub/Sub POSTs to a push subscription endpoint.
type PushEnvelope struct {
	Message struct {
		Data       string            `json:"data"`
		MessageID  string            `json:"messageId"`
		Attributes map[string]string `json:"attributes"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}
