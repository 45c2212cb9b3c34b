package journal_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/treasure-map/internal/journal"
	"github.com/vovakirdan/treasure-map/internal/scenario"
	"github.com/vovakirdan/treasure-map/internal/world"
)

var islandLines = []string{
	"C - 3 - 4",
	"M - 1 - 0",
	"M - 2 - 1",
	"T - 0 - 3 - 2",
	"T - 1 - 3 - 3",
	"A - Lara - 1 - 1 - S - AADADAGGA",
}

func record(t *testing.T, path string) *world.World {
	t.Helper()

	w, err := scenario.Parse(islandLines)
	require.NoError(t, err)

	jw, err := journal.Create(path)
	require.NoError(t, err)
	require.NoError(t, jw.WriteHeader("run-1", "island", islandLines))

	turns := w.Run(func(r world.TurnResult) {
		require.NoError(t, jw.WriteTurn(r, w.Digest()))
	})
	require.NoError(t, jw.WriteFooter(turns, w.Digest(), scenario.Serialize(w)))
	require.NoError(t, jw.Close())
	return w
}

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "island"+journal.Extension)
	w := record(t, path)

	entries, err := journal.Read(path)
	require.NoError(t, err)

	// header + one entry per turn + footer
	require.Len(t, entries, w.Turn()+2)

	head := entries[0]
	assert.Equal(t, journal.TypeHeader, head.Type)
	assert.Equal(t, "run-1", head.RunID)
	assert.Equal(t, islandLines, head.Lines)

	first := entries[1]
	assert.Equal(t, journal.TypeTurn, first.Type)
	assert.Equal(t, 0, first.Turn)
	require.Len(t, first.Events, 1)
	assert.Equal(t, world.EventMoved, first.Events[0].Kind)
	assert.Equal(t, world.P(1, 2), first.Events[0].To)

	foot := entries[len(entries)-1]
	assert.Equal(t, journal.TypeFooter, foot.Type)
	assert.Equal(t, w.Digest(), foot.Digest)
	assert.Contains(t, foot.Result, "A - Lara - 0 - 3 - S - 3")
}

func TestVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "island"+journal.Extension)
	record(t, path)

	entries, err := journal.Read(path)
	require.NoError(t, err)
	require.NoError(t, journal.Verify(entries))

	tampered := append([]journal.Entry(nil), entries...)
	tampered[3].Digest = "0000"
	assert.ErrorIs(t, journal.Verify(tampered), journal.ErrMismatch)

	assert.ErrorIs(t, journal.Verify(entries[:len(entries)-1]), journal.ErrMismatch)
	assert.ErrorIs(t, journal.Verify(entries[1:]), journal.ErrMismatch)
}

func TestWriteAfterClose(t *testing.T) {
	jw, err := journal.Create(filepath.Join(t.TempDir(), "x"+journal.Extension))
	require.NoError(t, err)
	require.NoError(t, jw.Close())

	assert.Error(t, jw.WriteFooter(0, "", nil))
}

func TestReadMissing(t *testing.T) {
	_, err := journal.Read(filepath.Join(t.TempDir(), "missing"+journal.Extension))
	assert.Error(t, err)
}
