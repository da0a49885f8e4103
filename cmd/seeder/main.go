package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/padelton/internal/archive"
	"github.com/mauv0809/padelton/internal/config"
	"github.com/mauv0809/padelton/internal/database"
	"github.com/mauv0809/padelton/internal/scoreboard"
	"github.com/spf13/cobra"
)

var (
	numEvents int
	numCourts int
)

var rootCmd = &cobra.Command{
	Use:   "padelton-seeder",
	Short: "Seed the results archive with demo LUNAR events",
	Long: `Fills the archive configured by DB_NAME or TURSO_PRIMARY_URL with random
finished LUNAR events, for working on the history view and dashboards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return seed(numEvents, numCourts)
	},
}

func init() {
	rootCmd.Flags().IntVar(&numEvents, "events", 5, "Number of LUNAR events to seed")
	rootCmd.Flags().IntVar(&numCourts, "courts", 4, "Courts per event")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while seeding '%s'", err)
		os.Exit(1)
	}
}

func seed(events, courts int) error {
	log.Info("Starting results archive seeder...")
	cfg := config.Load()
	if !cfg.ArchiveEnabled() {
		return fmt.Errorf("set DB_NAME or TURSO_PRIMARY_URL to choose the archive to seed")
	}

	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to open results archive: %w", err)
	}
	defer teardown()
	results := archive.New(db)

	log.Info("Preparing to insert demo events...", "events", events, "courts", courts)
	startTime := time.Now()

	for e := 0; e < events; e++ {
		eventID := uuid.NewString()
		startedAt := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)
		homeWins, awayWins := 0, 0

		for court := 1; court <= courts && court <= scoreboard.NumCourts; court++ {
			for _, round := range []scoreboard.Round{scoreboard.Round1, scoreboard.Round2} {
				result := demoResult(court, round, startedAt.Add(time.Duration(round)*time.Hour))
				if result.Winner == scoreboard.WinnerHome {
					homeWins++
				} else {
					awayWins++
				}
				if err := results.UpsertResult(eventID, result); err != nil {
					return fmt.Errorf("failed to insert result: %w", err)
				}
			}
		}
		if err := results.RecordTotals(eventID, homeWins, awayWins); err != nil {
			return fmt.Errorf("failed to record totals: %w", err)
		}
		log.Info("Seeded event", "eventID", eventID, "startedAt", startedAt, "home", homeWins, "away", awayWins)
	}

	log.Info("Successfully seeded the results archive.", "duration", time.Since(startTime))
	return nil
}

// demoResult plays out a random straight-sets match.
func demoResult(court int, round scoreboard.Round, finishedAt time.Time) scoreboard.MatchResult {
	winner := scoreboard.WinnerHome + rand.Intn(2)
	loserGames := func() int { return rand.Intn(5) }
	r := scoreboard.MatchResult{
		ID:                uuid.NewString(),
		CourtID:           court,
		Round:             round,
		HomeName:          fmt.Sprintf("Home %d / Home %d", 2*court-1, 2*court),
		AwayName:          fmt.Sprintf("Away %d / Away %d", 2*court-1, 2*court),
		Set1LoserTbPoints: -1,
		Set2LoserTbPoints: -1,
		Winner:            winner,
		FinishedAt:        finishedAt,
	}
	if winner == scoreboard.WinnerHome {
		r.Set1Home, r.Set1Away = 6, loserGames()
		r.Set2Home, r.Set2Away = 6, loserGames()
		r.HomeSets = 2
	} else {
		r.Set1Home, r.Set1Away = loserGames(), 6
		r.Set2Home, r.Set2Away = loserGames(), 6
		r.AwaySets = 2
	}
	r.SetsStr = fmt.Sprintf("%d-%d %d-%d", r.Set1Home, r.Set1Away, r.Set2Home, r.Set2Away)
	return r
}
