// Package catalog keeps the scenarios the player can pick from: a few
// built-in treasure maps plus whatever the user drops into a directory.
// Entries hold raw lines; parsing happens when a scenario is opened so a
// broken file still shows up in listings with its error.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/treasure-map/internal/scenario"
	"github.com/vovakirdan/treasure-map/internal/world"
)

//go:embed samples/*.txt
var samples embed.FS

// Source values for Entry.Source.
const (
	SourceBuiltin = "builtin"
	SourceDir     = "dir"
)

// Entry is one scenario known to the catalog.
type Entry struct {
	ID     string
	Title  string
	Source string
	Path   string // empty for builtin entries
	Lines  []string
}

// World parses the entry into a fresh world.
func (e Entry) World() (*world.World, error) {
	return scenario.Parse(e.Lines)
}

// Info is the listing view of an entry.
type Info struct {
	ID     string
	Title  string
	Source string
}

// Catalog is safe for concurrent use; SSH sessions share one.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns a catalog preloaded with the builtin scenarios.
func New() *Catalog {
	c := &Catalog{entries: make(map[string]Entry)}
	for _, e := range builtins() {
		c.entries[e.ID] = e
	}
	return c
}

func builtins() []Entry {
	files, err := fs.Glob(samples, "samples/*.txt")
	if err != nil {
		panic(fmt.Sprintf("catalog: bad sample pattern: %v", err))
	}

	entries := make([]Entry, 0, len(files))
	for _, name := range files {
		data, err := samples.ReadFile(name)
		if err != nil {
			panic(fmt.Sprintf("catalog: unreadable sample %s: %v", name, err))
		}
		id := IDFromPath(path.Base(name))
		entries = append(entries, Entry{
			ID:     id,
			Title:  TitleFromID(id),
			Source: SourceBuiltin,
			Lines:  scenario.SplitLines(string(data)),
		})
	}
	return entries
}

// Add stores e, replacing any entry with the same ID.
func (c *Catalog) Add(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e.Title == "" {
		e.Title = TitleFromID(e.ID)
	}
	c.entries[e.ID] = e
}

// List returns every entry sorted by ID.
func (c *Catalog) List() []Info {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Info, 0, len(c.entries))
	for _, e := range c.entries {
		result = append(result, Info{ID: e.ID, Title: e.Title, Source: e.Source})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the entry with the given ID.
func (c *Catalog) Get(id string) (Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("catalog: unknown scenario %q", id)
	}
	return e, nil
}

// Exists reports whether id is in the catalog.
func (c *Catalog) Exists(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[id]
	return ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Loader reads scenario files from a directory tree.
type Loader struct {
	Root         string
	Extension    string
	ResultSuffix string
}

// NewLoader creates a loader using the default extension and result suffix.
func NewLoader(root string) *Loader {
	return &Loader{
		Root:         root,
		Extension:    scenario.DefaultExtension,
		ResultSuffix: scenario.DefaultResultSuffix,
	}
}

// LoadAll walks Root and returns every scenario file, sorted by ID.
// Result files written by earlier runs are skipped. A missing Root is not
// an error.
func (l *Loader) LoadAll() ([]Entry, error) {
	var entries []Entry

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !l.accepts(p) {
			return nil
		}

		e, err := l.LoadFile(p)
		if err != nil {
			// Skip unreadable files
			return nil
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}

func (l *Loader) accepts(p string) bool {
	base := strings.ToLower(filepath.Base(p))
	if l.ResultSuffix != "" && strings.HasSuffix(base, strings.ToLower(l.ResultSuffix)) {
		return false
	}
	return scenario.CheckInputPath(p, l.Extension) == nil
}

// LoadFile reads a single scenario file.
func (l *Loader) LoadFile(p string) (Entry, error) {
	lines, err := scenario.ReadLines(p)
	if err != nil {
		return Entry{}, err
	}
	id := IDFromPath(p)
	return Entry{
		ID:     id,
		Title:  TitleFromID(id),
		Source: SourceDir,
		Path:   p,
		Lines:  lines,
	}, nil
}

// LoadInto adds every scenario under Root to c. Files override builtins
// with the same ID.
func (l *Loader) LoadInto(c *Catalog) (int, error) {
	entries, err := l.LoadAll()
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		c.Add(e)
	}
	return len(entries), nil
}

// IDFromPath derives an ID from a file name: lower-cased base name without
// the extension.
func IDFromPath(p string) string {
	base := filepath.Base(p)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// TitleFromID turns "madre-de_dios" into "Madre De Dios".
func TitleFromID(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = scenario.Capitalize(w)
	}
	return strings.Join(words, " ")
}
