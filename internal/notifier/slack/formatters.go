package slack

import (
	"fmt"
	"strings"

	"github.com/mauv0809/padelton/internal/scoreboard"
	"github.com/slack-go/slack"
)

func roundLabel(r scoreboard.Round) string {
	switch r {
	case scoreboard.RoundSuper:
		return "Super match"
	case scoreboard.Round1, scoreboard.Round2:
		return fmt.Sprintf("Round %d", r)
	default:
		return "Match"
	}
}

// setScore renders one set as "6-4" or "7-6(5)". Unplayed sets return "".
func setScore(home, away, loserTb int, loserIsHome bool) string {
	if home < 0 || away < 0 {
		return ""
	}
	if loserTb < 0 {
		return fmt.Sprintf("%d-%d", home, away)
	}
	if loserIsHome {
		return fmt.Sprintf("%d(%d)-%d", home, loserTb, away)
	}
	return fmt.Sprintf("%d-%d(%d)", home, away, loserTb)
}

// scoreLine prefers the controller's own sets string and falls back to the set history.
func scoreLine(r scoreboard.MatchResult) string {
	if s := strings.TrimSpace(r.SetsStr); s != "" {
		return s
	}
	var sets []string
	if s := setScore(r.Set1Home, r.Set1Away, r.Set1LoserTbPoints, r.Set1LoserIsHome); s != "" {
		sets = append(sets, s)
	}
	if s := setScore(r.Set2Home, r.Set2Away, r.Set2LoserTbPoints, r.Set2LoserIsHome); s != "" {
		sets = append(sets, s)
	}
	if len(sets) == 0 {
		return fmt.Sprintf("%d-%d in sets", r.HomeSets, r.AwaySets)
	}
	return strings.Join(sets, ", ")
}

func winnerName(r scoreboard.MatchResult) string {
	switch r.Winner {
	case scoreboard.WinnerHome:
		return r.HomeName
	case scoreboard.WinnerAway:
		return r.AwayName
	default:
		return ""
	}
}

func totalsText(homeWins, awayWins int) string {
	return fmt.Sprintf("LUNAR standings: Home %d - %d Away", homeWins, awayWins)
}

// formatMatchResult creates the Slack message for a finished LUNAR match using Block Kit.
func (s *Notifier) formatMatchResult(match *scoreboard.FinishedMatch) slack.Message {
	r := match.Result
	blocks := make([]slack.Block, 0)

	header := "🎾 Match finished! 🎾"
	if r.Round == scoreboard.RoundSuper {
		header = "🔥 Super match finished! 🔥"
	}
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", header, true, false)))

	details := fmt.Sprintf("Court %d · %s\n%s vs %s", r.CourtID, roundLabel(r.Round), r.HomeName, r.AwayName)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", details, true, false), nil, nil))

	resultText := "Result: " + scoreLine(r)
	if winner := winnerName(r); winner != "" {
		resultText = fmt.Sprintf("Result: %s won! 🏆\n%s", winner, scoreLine(r))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", resultText, true, false), nil, nil))

	contextText := totalsText(match.HomeWinsTotal, match.AwayWinsTotal)
	if match.Replaced {
		contextText += " (corrected result)"
	}
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", contextText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// formatLunarSummary creates a Slack message listing every result of an event.
func (s *Notifier) formatLunarSummary(eventID string, results []scoreboard.MatchResult, homeWins, awayWins int) slack.Message {
	blocks := make([]slack.Block, 0)

	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "🏆 LUNAR results 🏆", true, false)))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("*Home %d - %d Away*", homeWins, awayWins), false, false), nil, nil))

	if len(results) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No matches finished yet.", true, false), nil, nil))
	}
	for _, r := range results {
		line := fmt.Sprintf("Court %d · %s: %s vs %s, %s", r.CourtID, roundLabel(r.Round), r.HomeName, r.AwayName, scoreLine(r))
		if winner := winnerName(r); winner != "" {
			line += fmt.Sprintf(" (%s)", winner)
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", line, true, false), nil, nil))
	}

	if eventID != "" {
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", "Event "+eventID, true, false)))
	}
	return slack.NewBlockMessage(blocks...)
}

// fallbackText is the plain notification text shown by clients that do not render blocks.
func fallbackText(message slack.Message) string {
	for _, b := range message.Blocks.BlockSet {
		if h, ok := b.(*slack.HeaderBlock); ok && h.Text != nil {
			return h.Text.Text
		}
	}
	return "Padelton"
}
