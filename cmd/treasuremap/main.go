// treasuremap simulates adventurers looking for treasure on a map of plains
// and mountains.
//
// Usage:
//
//	treasuremap run [scenario.txt]     - Run a scenario and write its result file
//	treasuremap validate <file>        - Check a scenario without running it
//	treasuremap play [scenario|file]   - Watch a scenario turn by turn
//	treasuremap list                   - List available scenarios
//	treasuremap history                - Show archived runs
//	treasuremap journal <file>         - Print a recorded turn journal
//	treasuremap serve                  - Start SSH server for remote playback
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.treasuremap, ./configs)
//	--db <path>         - Run archive path (default from config)
//	--log-level <lvl>   - debug, info, warn or error
//	--scenarios <dir>   - Directory of user scenarios
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-map/internal/catalog"
	"github.com/vovakirdan/treasure-map/internal/config"
	"github.com/vovakirdan/treasure-map/internal/storage"
)

var (
	// Global flags
	flagConfigPath string
	flagDBPath     string
	flagLogLevel   string
	flagScenarios  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "treasuremap",
	Short: "Treasure Map - simulate adventurers hunting for treasure",
	Long: `Treasure Map reads a scenario describing a map, its mountains,
treasures and adventurers, plays every adventurer's moves turn by turn and
writes the final state to a result file.

Available commands:
  run       - Run a scenario file and write the result
  validate  - Check a scenario file without running it
  play      - Watch a scenario play out in the terminal
  list      - Show built-in and user scenarios
  history   - View archived runs
  journal   - Print or verify a turn journal
  serve     - Start SSH server for remote playback

Examples:
  treasuremap run maps/island.txt
  treasuremap run maps/island.txt --journal --print
  treasuremap play island
  treasuremap history --leaderboard
  treasuremap serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run archive database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagScenarios, "scenarios", "", "Directory of user scenarios (default from config)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies the global flags over it.
// Errors are fatal.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagScenarios != "" {
		cfg.Scenarios.Dir = flagScenarios
	}
	return cfg
}

// newLogger builds the command logger and reports where the config came from.
func newLogger(cfg config.Config) *log.Logger {
	logger := config.NewLogger(cfg.Log.Level)
	logger.Debug("config loaded", "source", cfg.Source)
	return logger
}

// loadCatalog returns the built-in scenarios plus those under the configured
// scenarios directory.
func loadCatalog(cfg config.Config, logger *log.Logger) *catalog.Catalog {
	c := catalog.New()

	loader := catalog.NewLoader(config.ExpandPath(cfg.Scenarios.Dir))
	loader.Extension = cfg.Input.Extension
	loader.ResultSuffix = cfg.Output.Suffix

	n, err := loader.LoadInto(c)
	if err != nil {
		logger.Warn("could not load user scenarios", "dir", loader.Root, "error", err)
	} else if n > 0 {
		logger.Debug("user scenarios loaded", "dir", loader.Root, "count", n)
	}
	return c
}

// openStore opens the run archive. A failure is reported as a warning and
// yields nil so the caller can continue without archiving.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run archive: %v\n", err)
		return nil
	}
	return store
}
