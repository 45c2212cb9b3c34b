package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treasure-map/internal/platform/tui"
	"github.com/vovakirdan/treasure-map/internal/storage"
)

var (
	flagHistoryTUI   bool
	flagLeaderboard  bool
	flagClear        bool
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history [scenario]",
	Short: "Show archived runs",
	Long: `Display the most recent archived runs, or the adventurers who
collected the most treasure across all runs.

With a scenario argument, a summary of that scenario's runs is shown first.

Examples:
  treasuremap history
  treasuremap history island
  treasuremap history --leaderboard
  treasuremap history --tui
  treasuremap history island --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse the history in a table view")
	historyCmd.Flags().BoolVar(&flagLeaderboard, "leaderboard", false, "Show top adventurers instead of recent runs")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete archived runs (of the given scenario, or all)")
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "Number of rows to show")
}

func runHistory(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run archive: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scenarioID := ""
	if len(args) == 1 {
		scenarioID = args[0]
	}

	if flagClear {
		n, err := store.ClearRuns(scenarioID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d run(s).\n", n)
		return
	}

	if flagHistoryTUI {
		view := tui.ViewRecentRuns
		if flagLeaderboard {
			view = tui.ViewLeaderboard
		}
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunHistory(store, view, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if scenarioID != "" {
		printScenarioStats(store, scenarioID)
	}

	if flagLeaderboard {
		printLeaderboard(store)
		return
	}
	printRecentRuns(store)
}

func printScenarioStats(store *storage.Store, scenarioID string) {
	stats, err := store.GetScenarioStats(scenarioID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scenario - %s\n", scenarioID)
	fmt.Println()
	if stats.RunsCount == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		return
	}
	fmt.Printf("  Runs:        %d\n", stats.RunsCount)
	fmt.Printf("  Best haul:   %d\n", stats.BestHaul)
	fmt.Printf("  Avg turns:   %.1f\n", stats.AvgTurns)
	fmt.Printf("  Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Println()
}

func printRecentRuns(store *storage.Store) {
	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'treasuremap run <file>' to archive the first one!")
		return
	}

	fmt.Printf("  %-8s  %-16s  %-5s  %-8s  %-4s  %s\n", "Run", "Scenario", "Turns", "Treasure", "Left", "Date")
	fmt.Printf("  %-8s  %-16s  %-5s  %-8s  %-4s  %s\n", "---", "--------", "-----", "--------", "----", "----")

	for _, r := range runs {
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %-8s  %-16s  %-5d  %-8d  %-4d  %s\n",
			id, r.Scenario, r.Turns, r.Collected, r.TreasureLeft, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printLeaderboard(store *storage.Store) {
	leaders, err := store.TopAdventurers(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving leaderboard: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top adventurers")
	fmt.Println()

	if len(leaders) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-4s  %-8s  %s\n", "Rank", "Name", "Runs", "Treasure", "Best")
	fmt.Printf("  %-4s  %-16s  %-4s  %-8s  %s\n", "----", "----", "----", "--------", "----")

	for i, st := range leaders {
		fmt.Printf("  %-4d  %-16s  %-4d  %-8d  %d\n", i+1, st.Name, st.Runs, st.Collected, st.Best)
	}
}
