package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(courtsCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(lunarCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(metricsCmd)

	pushCmd.Flags().Int("court", 1, "Court to update")
	pushCmd.Flags().Int("home-points", 0, "Home points")
	pushCmd.Flags().Int("away-points", 0, "Away points")
	pushCmd.Flags().Int("home-games", 0, "Home games in the current set")
	pushCmd.Flags().Int("away-games", 0, "Away games in the current set")
	pushCmd.Flags().Int("home-sets", 0, "Home sets won")
	pushCmd.Flags().Int("away-sets", 0, "Away sets won")
	pushCmd.Flags().Bool("finished", false, "Mark the match as finished")
	pushCmd.Flags().Int("winner", 0, "Winner: 1 home, 2 away")

	rosterCmd.Flags().StringSlice("home", nil, "Home player names, in slot order")
	rosterCmd.Flags().StringSlice("away", nil, "Away player names, in slot order")

	namesCmd.Flags().String("home", "", "Home name override, empty to clear")
	namesCmd.Flags().String("away", "", "Away name override, empty to clear")

	historyCmd.Flags().String("event", "", "Show the results of one event")

	lunarCmd.AddCommand(lunarEnableCmd, lunarDisableCmd, lunarRoundCmd, lunarSuperCmd, lunarSummaryCmd)
	lunarEnableCmd.Flags().IntSlice("courts", []int{1, 2, 3, 4, 5}, "Courts taking part")
	lunarEnableCmd.Flags().Int("super-court", 0, "Court that hosts the super match")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var courtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "List every court as the scoreboards see it",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/courts")
	},
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the admin state: roster, court overrides and LUNAR",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/admin/state")
	},
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push a score update as a court controller would",
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{}
		for _, name := range []string{"court", "home-points", "away-points", "home-games", "away-games", "home-sets", "away-sets", "winner"} {
			if name != "court" && !cmd.Flags().Changed(name) {
				continue
			}
			v, err := cmd.Flags().GetInt(name)
			if err != nil {
				return err
			}
			body[fieldName(name)] = v
		}
		if cmd.Flags().Changed("finished") {
			finished, _ := cmd.Flags().GetBool("finished")
			body["matchFinished"] = finished
		}
		return performPostRequest("/api/updateScore", body)
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Replace the home and/or away roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{}
		for _, side := range []string{"home", "away"} {
			if !cmd.Flags().Changed(side) {
				continue
			}
			names, err := cmd.Flags().GetStringSlice(side)
			if err != nil {
				return err
			}
			body[side] = names
		}
		if len(body) == 0 {
			return fmt.Errorf("nothing to replace: pass --home and/or --away")
		}
		return performPostRequest("/api/admin/players", body)
	},
}

var namesCmd = &cobra.Command{
	Use:   "names <court>",
	Short: "Set or clear the free-text names of a court",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		court, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid court %q: %w", args[0], err)
		}
		home, _ := cmd.Flags().GetString("home")
		away, _ := cmd.Flags().GetString("away")
		return performPostRequest("/api/admin/names", map[string]any{"courtId": court, "homeName": home, "awayName": away})
	},
}

var assignCmd = &cobra.Command{
	Use:   "assign <court> <homeIdx1> <homeIdx2> <awayIdx1> <awayIdx2>",
	Short: "Assign roster slots to a court (0 leaves a slot unset)",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseInts(args)
		if err != nil {
			return err
		}
		body := slotsBody(nums[1:])
		body["courtId"] = nums[0]
		return performPostRequest("/api/admin/courtPlayers", body)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <court>",
	Short: "Reset the score of a court",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		court, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid court %q: %w", args[0], err)
		}
		return performPostRequest("/api/admin/resetCourt", map[string]any{"courtId": court})
	},
}

var lunarCmd = &cobra.Command{
	Use:   "lunar",
	Short: "Run a LUNAR event",
}

var lunarEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable LUNAR on the given courts",
	RunE: func(cmd *cobra.Command, args []string) error {
		courts, err := cmd.Flags().GetIntSlice("courts")
		if err != nil {
			return err
		}
		super, _ := cmd.Flags().GetInt("super-court")
		return performPostRequest("/api/admin/lunar", map[string]any{"enabled": true, "selectedCourts": courts, "superMatchCourtId": super})
	},
}

var lunarDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable LUNAR and clear its results",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/api/admin/lunar", map[string]any{"enabled": false})
	},
}

var lunarRoundCmd = &cobra.Command{
	Use:   "round <round> <court> <homeIdx1> <homeIdx2> <awayIdx1> <awayIdx2>",
	Short: "Assign players to a court for round 1 or 2 (all zeros clears it)",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseInts(args)
		if err != nil {
			return err
		}
		body := slotsBody(nums[2:])
		body["round"] = nums[0]
		body["courtId"] = nums[1]
		return performPostRequest("/api/admin/lunar/round", body)
	},
}

var lunarSuperCmd = &cobra.Command{
	Use:   "super <homeIdx1> <homeIdx2> <awayIdx1> <awayIdx2>",
	Short: "Set the super match players",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		nums, err := parseInts(args)
		if err != nil {
			return err
		}
		return performPostRequest("/api/admin/lunar/super", slotsBody(nums))
	},
}

var lunarSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Post the LUNAR standings to Slack",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/api/admin/lunar/summary", nil)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived LUNAR events",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/api/admin/history"
		if event, _ := cmd.Flags().GetString("event"); event != "" {
			endpoint += "?eventId=" + url.QueryEscape(event)
		}
		return performGetRequest(endpoint)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func fieldName(flag string) string {
	switch flag {
	case "court":
		return "courtId"
	case "home-points":
		return "homePoints"
	case "away-points":
		return "awayPoints"
	case "home-games":
		return "homeGames"
	case "away-games":
		return "awayGames"
	case "home-sets":
		return "homeSets"
	case "away-sets":
		return "awaySets"
	default:
		return flag
	}
}

func parseInts(args []string) ([]int, error) {
	nums := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		nums[i] = n
	}
	return nums, nil
}

func slotsBody(slots []int) map[string]any {
	return map[string]any{
		"homeIdx1": slots[0],
		"homeIdx2": slots[1],
		"awayIdx1": slots[2],
		"awayIdx2": slots[3],
	}
}

func withDryRun(endpoint string) string {
	if !dryRun {
		return endpoint
	}
	return endpoint + "?dry_run=true"
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, payload any) error {
	url := host + withDryRun(endpoint)
	fmt.Printf("Making request to %s\n", url)

	var body io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := http.Post(url, "application/json", body)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
