package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-map/internal/journal"
	"github.com/vovakirdan/treasure-map/internal/runner"
)

var flagVerify bool

var journalCmd = &cobra.Command{
	Use:   "journal <file" + journal.Extension + ">",
	Short: "Print a recorded turn journal",
	Long: `Print the scenario, every turn's events and the final state recorded
by 'treasuremap run --journal'.

With --verify, the scenario is played again and every recorded turn is
compared with the replay.

Examples:
  treasuremap journal ~/.treasuremap/journals/island-<run>` + journal.Extension + `
  treasuremap journal island.jsonl.zst --verify`,
	Args: cobra.ExactArgs(1),
	Run:  runJournal,
}

func init() {
	journalCmd.Flags().BoolVar(&flagVerify, "verify", false, "Replay the scenario and check the journal")
}

func runJournal(_ *cobra.Command, args []string) {
	entries, err := journal.Read(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagVerify {
		if err := journal.Verify(entries); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Journal is consistent (%d entries)\n", len(entries))
		return
	}

	for _, e := range entries {
		switch e.Type {
		case journal.TypeHeader:
			fmt.Printf("Run %s - %s\n", e.RunID, e.Scenario)
			fmt.Println()
			for _, l := range e.Lines {
				fmt.Printf("  %s\n", l)
			}
			fmt.Println()

		case journal.TypeTurn:
			fmt.Printf("Turn %d  [%s]\n", e.Turn, shortDigest(e.Digest))
			for _, ev := range e.Events {
				fmt.Printf("  %s\n", runner.Describe(ev))
			}

		case journal.TypeFooter:
			fmt.Println()
			fmt.Printf("Finished after %d turns  [%s]\n", e.Turn, shortDigest(e.Digest))
			fmt.Println()
			fmt.Println(strings.Join(e.Result, "\n"))
		}
	}
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
