// Package journal records simulation runs as zstd-compressed JSON lines:
// a header carrying the scenario, one entry per turn and a footer with the
// final state. Journals are write-once records; Verify replays the header's
// scenario to check a journal, it never resumes a run.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/treasure-map/internal/world"
)

// Extension is the file suffix used for journals.
const Extension = ".jsonl.zst"

// Entry types.
const (
	TypeHeader = "header"
	TypeTurn   = "turn"
	TypeFooter = "footer"
)

// Entry is one journal line. Fields are filled according to Type.
type Entry struct {
	Type string `json:"type"`

	// header
	RunID    string   `json:"run_id,omitempty"`
	Scenario string   `json:"scenario,omitempty"`
	Lines    []string `json:"lines,omitempty"`

	// turn
	Turn   int           `json:"turn"`
	Events []world.Event `json:"events,omitempty"`

	// turn and footer
	Digest string `json:"digest,omitempty"`

	// footer
	Result []string `json:"result,omitempty"`
}

// Writer appends entries to a compressed journal file.
type Writer struct {
	path string

	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create opens a new journal at path, truncating any existing file.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("journal: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot create %s: %w", path, err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("journal: cannot start encoder: %w", err)
	}
	return &Writer{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 64*1024),
	}, nil
}

// Path returns the file being written.
func (w *Writer) Path() string { return w.path }

// WriteHeader records the scenario a run starts from.
func (w *Writer) WriteHeader(runID, scenario string, lines []string) error {
	return w.Write(Entry{Type: TypeHeader, RunID: runID, Scenario: scenario, Lines: lines})
}

// WriteTurn records one turn and the digest of the world after it.
func (w *Writer) WriteTurn(r world.TurnResult, digest string) error {
	return w.Write(Entry{Type: TypeTurn, Turn: r.Turn, Events: r.Events, Digest: digest})
}

// WriteFooter records the final state.
func (w *Writer) WriteFooter(turns int, digest string, result []string) error {
	return w.Write(Entry{Type: TypeFooter, Turn: turns, Digest: digest, Result: result})
}

// Write appends one entry.
func (w *Writer) Write(e Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.w == nil {
		return fmt.Errorf("journal: write to closed journal %s", w.path)
	}

	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes buffered entries and closes the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err1 error
	if w.w != nil {
		err1 = w.w.Flush()
	}
	if w.enc != nil {
		if err := w.enc.Close(); err1 == nil {
			err1 = err
		}
		w.enc = nil
	}
	if w.f != nil {
		if err := w.f.Close(); err1 == nil {
			err1 = err
		}
		w.f = nil
	}
	w.w = nil
	return err1
}
