package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scenarios",
	Long: `Shows the built-in scenarios and every scenario file found in the
scenarios directory (--scenarios or scenarios.dir in the config).`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	c := loadCatalog(cfg, newLogger(cfg))

	scenarios := c.List()
	if len(scenarios) == 0 {
		fmt.Println("No scenarios available.")
		return
	}

	fmt.Println("Available scenarios:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range scenarios {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Source", "Title")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "------", "-----")

	for _, s := range scenarios {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, s.ID, s.Source, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'treasuremap play <id>' to watch a scenario.")
}
