// Package runner wires a full simulation run: read the scenario, build the
// world, play every turn, write the result file and optionally record the
// run in a turn journal and the run archive.
package runner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/treasure-map/internal/catalog"
	"github.com/vovakirdan/treasure-map/internal/journal"
	"github.com/vovakirdan/treasure-map/internal/scenario"
	"github.com/vovakirdan/treasure-map/internal/storage"
	"github.com/vovakirdan/treasure-map/internal/world"
)

// Archive stores finished runs.
type Archive interface {
	SaveRun(r storage.Run) (string, error)
}

// Options configures a run. The zero value writes the result next to the
// input and records nothing else.
type Options struct {
	Extension    string // accepted input extension, default ".txt"
	ResultSuffix string // default "_result.txt"
	OutputPath   string // overrides the derived result path
	JournalDir   string // empty disables the turn journal
	Archive      Archive
	Logger       *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Extension == "" {
		o.Extension = scenario.DefaultExtension
	}
	if o.ResultSuffix == "" {
		o.ResultSuffix = scenario.DefaultResultSuffix
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// Report describes a finished run.
type Report struct {
	RunID       string
	Scenario    string
	InputPath   string
	OutputPath  string
	JournalPath string
	Turns       int
	Digest      string
	Result      []string
	World       *world.World
}

// RunFile runs the scenario stored at path and writes its result file.
func RunFile(ctx context.Context, path string, opts Options) (*Report, error) {
	opts = opts.withDefaults()

	if err := scenario.CheckInputPath(path, opts.Extension); err != nil {
		return nil, err
	}
	lines, err := scenario.ReadLines(path)
	if err != nil {
		return nil, err
	}

	if opts.OutputPath == "" {
		opts.OutputPath = scenario.ResultPath(path, opts.ResultSuffix)
	}

	rep, err := RunLines(ctx, catalog.IDFromPath(path), lines, opts)
	if err != nil {
		return nil, err
	}
	rep.InputPath = path
	return rep, nil
}

// RunLines runs an in-memory scenario. The result file is only written when
// opts.OutputPath is set.
func RunLines(ctx context.Context, name string, lines []string, opts Options) (*Report, error) {
	opts = opts.withDefaults()
	logger := opts.Logger.With("scenario", name)

	w, err := scenario.Parse(lines)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		RunID:    uuid.New().String(),
		Scenario: name,
		World:    w,
	}
	logger.Info("scenario loaded",
		"run", rep.RunID,
		"map", fmt.Sprintf("%dx%d", w.Bounds.Width, w.Bounds.Height),
		"mountains", len(w.Mountains),
		"treasures", len(w.Treasures),
		"adventurers", len(w.Adventurers),
	)

	var jw *journal.Writer
	if opts.JournalDir != "" {
		rep.JournalPath = filepath.Join(opts.JournalDir, name+"-"+rep.RunID+journal.Extension)
		jw, err = journal.Create(rep.JournalPath)
		if err != nil {
			return nil, err
		}
		defer jw.Close()
		if err := jw.WriteHeader(rep.RunID, name, lines); err != nil {
			return nil, fmt.Errorf("journal: %w", err)
		}
	}

	for !w.AllFinished() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := w.PlayTurn()
		rep.Turns++
		for _, ev := range res.Events {
			LogEvent(logger, ev)
		}
		if jw != nil {
			if err := jw.WriteTurn(res, w.Digest()); err != nil {
				return nil, fmt.Errorf("journal: %w", err)
			}
		}
	}

	rep.Digest = w.Digest()
	rep.Result = scenario.Serialize(w)

	if jw != nil {
		if err := jw.WriteFooter(w.Turn(), rep.Digest, rep.Result); err != nil {
			return nil, fmt.Errorf("journal: %w", err)
		}
		if err := jw.Close(); err != nil {
			return nil, fmt.Errorf("journal: %w", err)
		}
		logger.Debug("journal written", "path", rep.JournalPath)
	}

	if opts.OutputPath != "" {
		if err := scenario.WriteLines(opts.OutputPath, rep.Result); err != nil {
			return nil, err
		}
		rep.OutputPath = opts.OutputPath
		logger.Info("result written", "path", rep.OutputPath)
	}

	if opts.Archive != nil {
		r := storage.NewRun(name, w)
		r.ID = rep.RunID
		if _, err := opts.Archive.SaveRun(r); err != nil {
			// The result file is already on disk; losing the archive entry is not fatal.
			logger.Warn("could not archive run", "error", err)
		}
	}

	logger.Info("simulation finished", "turns", rep.Turns, "treasure_left", w.TreasureLeft())
	return rep, nil
}
