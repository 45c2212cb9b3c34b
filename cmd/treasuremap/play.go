package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treasure-map/internal/catalog"
	"github.com/vovakirdan/treasure-map/internal/config"
	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/platform/tui"
	"github.com/vovakirdan/treasure-map/internal/scenario"
	"github.com/vovakirdan/treasure-map/internal/storage"
	"github.com/vovakirdan/treasure-map/internal/world"
)

var flagSpeed int

var playCmd = &cobra.Command{
	Use:   "play [scenario|file]",
	Short: "Watch a scenario play out turn by turn",
	Long: `Animate a scenario in the terminal. The argument is either a scenario
file or the ID of a scenario from 'treasuremap list'. Without an argument a
menu lets you pick one.

Controls:
  Space/P    - Pause
  N/Right    - Play one turn
  +/-        - Change speed
  R          - Restart
  C          - Copy the result to the clipboard
  Ctrl+S     - Save a screenshot
  B/Esc      - Back to menu
  Q/Ctrl+C   - Quit

Examples:
  treasuremap play
  treasuremap play island
  treasuremap play maps/island.txt --speed 10`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Turns per second (default from config)")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	c := loadCatalog(cfg, logger)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TurnRate: cfg.Playback.TurnsPerSecond,
	}
	if flagSpeed > 0 {
		rc.TurnRate = flagSpeed
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	if len(args) == 0 {
		runPlayMenu(c, store, rc)
		return
	}

	name, w, err := resolveScenario(c, cfg, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'treasuremap list' to see available scenarios.")
		os.Exit(1)
	}

	if err := tui.RunPlayback(name, w, store, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
		os.Exit(1)
	}
}

// resolveScenario treats arg as a file path when such a file exists and as a
// catalog ID otherwise.
func resolveScenario(c *catalog.Catalog, cfg config.Config, arg string) (string, *world.World, error) {
	if _, statErr := os.Stat(arg); statErr == nil {
		if err := scenario.CheckInputPath(arg, cfg.Input.Extension); err != nil {
			return "", nil, err
		}
		lines, err := scenario.ReadLines(arg)
		if err != nil {
			return "", nil, err
		}
		w, err := scenario.Parse(lines)
		if err != nil {
			return "", nil, err
		}
		return catalog.IDFromPath(arg), w, nil
	}

	entry, err := c.Get(arg)
	if err != nil {
		return "", nil, err
	}
	w, err := entry.World()
	if err != nil {
		return "", nil, fmt.Errorf("scenario %s: %w", entry.ID, err)
	}
	return entry.ID, w, nil
}

// runPlayMenu loops between the scenario menu, the history and playback
// until the user quits.
func runPlayMenu(c *catalog.Catalog, store *storage.Store, rc core.RuntimeConfig) {
	for {
		menuResult, err := tui.RunMenu(c, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, tui.ViewRecentRuns, rc.ScreenW, rc.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue
			}
			return
		}

		sel := menuResult.Selection
		if sel == nil {
			return
		}

		if err := tui.RunPlayback(sel.ID, sel.World, store, rc); err != nil {
			fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
		}

		// Loop back to menu
	}
}
