package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	host   string
	dryRun bool
)

var rootCmd = &cobra.Command{
	Use:   "padelton-cli",
	Short: "A CLI to interact with the padelton scoreboard server",
	Long: `A command-line interface for making requests to the various endpoints
of the padelton scoreboard service: push test scores, manage the roster and
run a LUNAR event from the terminal.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:3000", "The host address of the server")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Ask the server not to archive or notify")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
