package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/treasure-map/internal/catalog"
)

func TestBuiltinsParse(t *testing.T) {
	c := catalog.New()
	require.NotZero(t, c.Len())

	for _, info := range c.List() {
		e, err := c.Get(info.ID)
		require.NoError(t, err)
		assert.Equal(t, catalog.SourceBuiltin, e.Source)

		w, err := e.World()
		require.NoError(t, err, "builtin %s should parse", info.ID)
		assert.NotEmpty(t, w.Adventurers, info.ID)
	}
}

func TestListSortedByID(t *testing.T) {
	c := catalog.New()
	list := c.List()

	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
	assert.True(t, c.Exists("island"))
}

func TestGetUnknown(t *testing.T) {
	_, err := catalog.New().Get("atlantis")
	assert.Error(t, err)
}

func TestTitleFromID(t *testing.T) {
	assert.Equal(t, "Madre De Dios", catalog.TitleFromID("madre-de_dios"))
	assert.Equal(t, "Island", catalog.TitleFromID("island"))
	assert.Equal(t, "", catalog.TitleFromID(""))
}

func TestLoaderSkipsResultsAndOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("lagoon.txt", "C - 2 - 2\nA - Nate - 0 - 0 - E - A\n")
	write("lagoon_result.txt", "C - 2 - 2\nA - Nate - 1 - 0 - E - 0\n")
	write("notes.md", "# nothing here\n")
	write("deep/Reef.TXT", "C - 1 - 1\nA - Ana - 0 - 0 - N - A\n")

	entries, err := catalog.NewLoader(dir).LoadAll()
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "lagoon", entries[0].ID)
	assert.Equal(t, "reef", entries[1].ID)
	assert.Equal(t, catalog.SourceDir, entries[0].Source)
	assert.Equal(t, []string{"C - 2 - 2", "A - Nate - 0 - 0 - E - A"}, entries[0].Lines)
}

func TestLoaderMissingRoot(t *testing.T) {
	entries, err := catalog.NewLoader(filepath.Join(t.TempDir(), "missing")).LoadAll()

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadIntoOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "island.txt"), []byte("C - 1 - 1\nA - Ana - 0 - 0 - N - A\n"), 0o644))

	c := catalog.New()
	before := c.Len()
	n, err := catalog.NewLoader(dir).LoadInto(c)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, before, c.Len())

	e, err := c.Get("island")
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceDir, e.Source)
	assert.Equal(t, "Island", e.Title)
}
