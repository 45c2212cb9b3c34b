package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-map/internal/scenario"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scenario.txt>",
	Short: "Check a scenario file without running it",
	Long: `Check a scenario file line by line and build its world, reporting the
first problem found. Nothing is written.

Examples:
  treasuremap validate maps/island.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	path := args[0]

	if err := scenario.CheckInputPath(path, cfg.Input.Extension); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lines, err := scenario.ReadLines(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, err := scenario.Parse(lines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code := scenario.CodeOf(err); code != "" {
			fmt.Fprintf(os.Stderr, "Code: %s\n", code)
		}
		os.Exit(1)
	}

	fmt.Println("Scenario is valid")
	fmt.Println()
	fmt.Printf("  Map:         %dx%d\n", w.Bounds.Width, w.Bounds.Height)
	fmt.Printf("  Mountains:   %d\n", len(w.Mountains))
	fmt.Printf("  Treasure:    %d units on %d cells\n", w.TreasureLeft(), len(w.Treasures))
	fmt.Printf("  Adventurers: %d\n", len(w.Adventurers))
	fmt.Printf("  Turns:       %d\n", w.MaxScriptLen()+1)
}
