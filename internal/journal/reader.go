package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/treasure-map/internal/scenario"
)

// ErrMismatch is returned by Verify when a replay diverges from the journal.
var ErrMismatch = errors.New("journal mismatch")

// Read loads every entry of a journal file.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var entries []Entry
	for sc.Scan() {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("%s: unmarshal line %d: %w", filepath.Base(path), len(entries)+1, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

// Verify rebuilds the header's scenario, replays it turn by turn and checks
// every recorded digest and event against the replay.
func Verify(entries []Entry) error {
	if len(entries) == 0 || entries[0].Type != TypeHeader {
		return fmt.Errorf("%w: missing header", ErrMismatch)
	}

	w, err := scenario.Parse(entries[0].Lines)
	if err != nil {
		return fmt.Errorf("journal: header scenario: %w", err)
	}

	for _, e := range entries[1:] {
		switch e.Type {
		case TypeTurn:
			if e.Turn != w.Turn() {
				return fmt.Errorf("%w: turn want=%d got=%d", ErrMismatch, w.Turn(), e.Turn)
			}
			res := w.PlayTurn()
			if !slices.Equal(res.Events, e.Events) {
				return fmt.Errorf("%w: events differ at turn %d", ErrMismatch, e.Turn)
			}
			if got := w.Digest(); got != e.Digest {
				return fmt.Errorf("%w: digest differs at turn %d", ErrMismatch, e.Turn)
			}
		case TypeFooter:
			if e.Turn != w.Turn() || e.Digest != w.Digest() {
				return fmt.Errorf("%w: final state differs", ErrMismatch)
			}
			if !slices.Equal(e.Result, scenario.Serialize(w)) {
				return fmt.Errorf("%w: result lines differ", ErrMismatch)
			}
			return nil
		default:
			return fmt.Errorf("%w: unexpected %q entry", ErrMismatch, e.Type)
		}
	}
	return fmt.Errorf("%w: missing footer", ErrMismatch)
}
