package pubsub

import (
	"testing"
	"time"

	"github.com/mauv0809/padelton/internal/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_FinishedMatch(t *testing.T) {
	in := scoreboard.FinishedMatch{
		EventID: "event-1",
		Result: scoreboard.MatchResult{
			ID:         "r1",
			CourtID:    4,
			Round:      scoreboard.RoundSuper,
			HomeName:   "Anna / Mia",
			AwayName:   "Ola",
			Slots:      scoreboard.Slots{HomeIdx1: 3, HomeIdx2: 7, AwayIdx1: 1},
			Set1Home:   6,
			Set1Away:   2,
			Winner:     scoreboard.WinnerHome,
			FinishedAt: time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC),
		},
		Tallied:       true,
		HomeWinsTotal: 3,
		AwayWinsTotal: 2,
	}

	data, err := Encode(in)
	require.NoError(t, err)

	var out scoreboard.FinishedMatch
	require.NoError(t, Decode(data, &out))
	assert.Equal(t, in.EventID, out.EventID)
	assert.Equal(t, in.Result.Slots, out.Result.Slots)
	assert.Equal(t, in.Result.Round, out.Result.Round)
	assert.True(t, in.Result.FinishedAt.Equal(out.Result.FinishedAt))
	assert.Equal(t, 3, out.HomeWinsTotal)
}

func TestDecode_RejectsGarbage(t *testing.T) {
	var out scoreboard.FinishedMatch
	assert.Error(t, Decode([]byte{0xc1}, &out))
}

func TestMockPubSubClient(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.SendMessage(EventMatchFinished, "payload"))
	require.Len(t, m.SendMessageCalls, 1)
	assert.Equal(t, string(EventMatchFinished), m.SendMessageCalls[0].Topic)

	data, err := Encode(map[string]int{"a": 1})
	require.NoError(t, err)
	var out map[string]int
	require.NoError(t, m.ProcessMessage(data, &out))
	assert.Equal(t, 1, out["a"])

	m.Close()
	assert.True(t, m.Closed)
}
