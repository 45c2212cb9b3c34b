package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/treasure-map/internal/scenario"
	"github.com/vovakirdan/treasure-map/internal/world"
)

var laraLines = []string{
	"C - 4 - 3",
	"M - 1 - 0",
	"T - 1 - 3 - 2",
	"A - Lara - 1 - 1 - S - AA",
}

func TestCreateMapFieldOrder(t *testing.T) {
	w := scenario.CreateMap([]string{"C", "8", "12"})

	assert.Equal(t, 8, w.Bounds.Width)
	assert.Equal(t, 12, w.Bounds.Height)
}

func TestParseBuildsEntitiesInFileOrder(t *testing.T) {
	lines := []string{
		"C - 5 - 5",
		"T - 4 - 4 - 1",
		"M - 2 - 2",
		"A - zed - 0 - 0 - e - ADG",
		"M - 3 - 3",
		"A - amy - 5 - 5 - o - a",
	}

	w, err := scenario.Parse(lines)
	require.NoError(t, err)

	require.Len(t, w.Mountains, 2)
	assert.Equal(t, world.P(2, 2), w.Mountains[0].Pos)
	assert.Equal(t, world.P(3, 3), w.Mountains[1].Pos)

	require.Len(t, w.Treasures, 1)
	assert.Equal(t, 1, w.Treasures[0].Remaining)

	require.Len(t, w.Adventurers, 2)
	zed, amy := w.Adventurers[0], w.Adventurers[1]
	assert.Equal(t, "Zed", zed.Name)
	assert.Equal(t, world.East, zed.Facing)
	assert.Equal(t, "ADG", zed.Script.String())
	assert.Equal(t, "Amy", amy.Name)
	assert.Equal(t, world.West, amy.Facing)
	assert.Equal(t, world.P(5, 5), amy.Pos)
	assert.Zero(t, amy.Collected)
	assert.False(t, amy.Finished)
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		kind   error
		code   scenario.Code
		lineNo int
	}{
		{
			name:   "mountain on mountain",
			lines:  []string{"C - 3 - 3", "M - 1 - 1", "M - 1 - 1", "A - Lara - 0 - 0 - S - A"},
			kind:   scenario.ErrOccupancy,
			code:   scenario.CodeCellOccupied,
			lineNo: 3,
		},
		{
			name:   "treasure on mountain",
			lines:  []string{"C - 3 - 3", "M - 1 - 1", "T - 1 - 1 - 3", "A - Lara - 0 - 0 - S - A"},
			kind:   scenario.ErrOccupancy,
			code:   scenario.CodeCellOccupied,
			lineNo: 3,
		},
		{
			name:   "adventurer on treasure",
			lines:  []string{"C - 3 - 3", "T - 1 - 1 - 3", "A - Lara - 1 - 1 - S - A"},
			kind:   scenario.ErrOccupancy,
			code:   scenario.CodeCellOccupied,
			lineNo: 3,
		},
		{
			name:   "adventurer on adventurer",
			lines:  []string{"C - 3 - 3", "A - Lara - 1 - 1 - S - A", "A - Nate - 1 - 1 - S - A"},
			kind:   scenario.ErrOccupancy,
			code:   scenario.CodeCellOccupied,
			lineNo: 3,
		},
		{
			name:   "duplicate name after capitalization",
			lines:  []string{"C - 3 - 3", "A - lara - 1 - 1 - S - A", "A - Lara - 2 - 2 - S - A"},
			kind:   scenario.ErrOccupancy,
			code:   scenario.CodeNameTaken,
			lineNo: 3,
		},
		{
			name:   "unknown tag",
			lines:  []string{"C - 3 - 3", "X - 1 - 1", "A - Lara - 0 - 0 - S - A"},
			kind:   scenario.ErrStructural,
			code:   scenario.CodeUnknownTag,
			lineNo: 2,
		},
		{
			name:   "blank line",
			lines:  []string{"C - 3 - 3", "", "A - Lara - 0 - 0 - S - A"},
			kind:   scenario.ErrStructural,
			code:   scenario.CodeUnknownTag,
			lineNo: 2,
		},
		{
			name:   "second map line",
			lines:  []string{"C - 3 - 3", "C - 9 - 9", "A - Lara - 0 - 0 - S - A"},
			kind:   scenario.ErrStructural,
			code:   scenario.CodeDuplicateMap,
			lineNo: 2,
		},
		{
			name:   "first bad line wins",
			lines:  []string{"C - 3 - 3", "M - 9 - 9", "T - 1 - 1 - 0", "A - Lara - 0 - 0 - S - A"},
			kind:   scenario.ErrMalformed,
			code:   scenario.CodeMountainOutOfMap,
			lineNo: 2,
		},
		{
			name:   "bad map",
			lines:  []string{"C - 300 - 300", "A - Lara - 0 - 0 - S - A"},
			kind:   scenario.ErrMalformed,
			code:   scenario.CodeMapTooBig,
			lineNo: 1,
		},
		{
			name:  "missing adventurer",
			lines: []string{"C - 3 - 3", "M - 1 - 1"},
			kind:  scenario.ErrStructural,
			code:  scenario.CodeFileMalformed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := scenario.Parse(tc.lines)

			require.Error(t, err)
			assert.Nil(t, w, "no world should be returned on failure")
			assert.ErrorIs(t, err, tc.kind)
			assert.Equal(t, tc.code, scenario.CodeOf(err))

			var se *scenario.Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.lineNo, se.LineNo)
			if tc.lineNo > 0 {
				assert.Equal(t, tc.lines[tc.lineNo-1], se.Line)
			}
		})
	}
}

func TestNameUniquenessIsCaseSensitive(t *testing.T) {
	w, err := scenario.Parse([]string{"C - 3 - 3", "A - Lara - 1 - 1 - S - A", "A - LARA - 2 - 2 - S - A"})

	require.NoError(t, err)
	assert.Len(t, w.Adventurers, 2)
}

func TestNameUniquenessUsesStoredName(t *testing.T) {
	_, err := scenario.Parse([]string{"C - 3 - 3", "A - Lara - 1 - 1 - S - A", "A - lara - 2 - 2 - S - A"})

	require.Error(t, err)
	assert.Equal(t, scenario.CodeNameTaken, scenario.CodeOf(err))
}

func TestIndentedLinesAreAccepted(t *testing.T) {
	w, err := scenario.Parse([]string{"C - 3 - 3", " M - 1 - 0", "\tT - 2 - 2 - 1", "A - Lara - 1 - 1 - S - A"})

	require.NoError(t, err)
	require.Len(t, w.Mountains, 1)
	assert.Equal(t, world.P(1, 0), w.Mountains[0].Pos)
	assert.Len(t, w.Treasures, 1)
}

func TestSecondMapLineIsRejected(t *testing.T) {
	w, err := scenario.Parse([]string{"C - 3 - 3", "A - Lara - 1 - 1 - S - A", "C - 9 - 9", "A - Nate - 0 - 0 - S - A"})

	assert.Nil(t, w)
	require.Error(t, err)
	assert.Equal(t, scenario.CodeDuplicateMap, scenario.CodeOf(err))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Lara", scenario.Capitalize("lara"))
	assert.Equal(t, "LARA", scenario.Capitalize("LARA"))
	assert.Equal(t, "ÉLodie", scenario.Capitalize("éLodie"))
	assert.Equal(t, "", scenario.Capitalize(""))
}

func TestErrorMessageNamesTheLine(t *testing.T) {
	_, err := scenario.Parse([]string{"C - 3 - 3", "M - 1 - 1", "M - 1 - 1", "A - Lara - 0 - 0 - S - A"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "M - 1 - 1")
	assert.Contains(t, err.Error(), "mountain")
}
