package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-map/internal/config"
	"github.com/vovakirdan/treasure-map/internal/platform/tui"
	"github.com/vovakirdan/treasure-map/internal/runner"
	"github.com/vovakirdan/treasure-map/internal/scenario"
)

var (
	flagOutput    string
	flagJournal   bool
	flagNoArchive bool
	flagPrint     bool
)

var runCmd = &cobra.Command{
	Use:   "run [scenario.txt]",
	Short: "Run a scenario and write its result file",
	Long: `Run every turn of a scenario file and write the final state next to
it, as <name>_result.txt.

When no file is given, the path is asked for interactively until an
existing file with the right extension is entered.

Examples:
  treasuremap run maps/island.txt
  treasuremap run maps/island.txt --output /tmp/out.txt
  treasuremap run maps/island.txt --journal
  treasuremap run maps/island.txt --print --no-archive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Result file path (default: <input>_result.txt)")
	runCmd.Flags().BoolVar(&flagJournal, "journal", false, "Record a turn journal")
	runCmd.Flags().BoolVar(&flagNoArchive, "no-archive", false, "Don't record the run in the archive")
	runCmd.Flags().BoolVar(&flagPrint, "print", false, "Also print the result to stdout")
}

func runRun(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		var err error
		path, err = tui.RunPrompt(cfg.Input.Extension)
		if errors.Is(err, tui.ErrPromptCancelled) {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	opts := runner.Options{
		Extension:    cfg.Input.Extension,
		ResultSuffix: cfg.Output.Suffix,
		OutputPath:   flagOutput,
		Logger:       logger,
	}
	if flagJournal {
		opts.JournalDir = config.ExpandPath(cfg.Journal.Dir)
	}

	if !flagNoArchive {
		if store := openStore(cfg); store != nil {
			defer store.Close()
			opts.Archive = store
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := runner.RunFile(ctx, path, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code := scenario.CodeOf(err); code != "" {
			fmt.Fprintf(os.Stderr, "Code: %s\n", code)
		}
		os.Exit(1)
	}

	if flagPrint {
		fmt.Println(strings.Join(rep.Result, "\n"))
	}
	fmt.Fprintf(os.Stderr, "Result written to %s (%d turns)\n", rep.OutputPath, rep.Turns)
	if rep.JournalPath != "" {
		fmt.Fprintf(os.Stderr, "Journal written to %s\n", rep.JournalPath)
	}
}
