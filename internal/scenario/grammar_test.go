package scenario_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/treasure-map/internal/scenario"
	"github.com/vovakirdan/treasure-map/internal/world"
)

func TestSplitFields(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"C - 3 - 4", []string{"C", "3", "4"}},
		{"C--3", []string{"C", "", "3"}},
		{"C - 3 - 4 -", []string{"C", "3", "4", ""}},
		{"A - Lara Croft - 1 - 1 - S - A A", []string{"A", "LaraCroft", "1", "1", "S", "AA"}},
		{"T\t-\t1 -1- 2", []string{"T", "1", "1", "2"}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, scenario.SplitFields(tc.line), "SplitFields(%q)", tc.line)
	}
}

func TestLineKind(t *testing.T) {
	tests := []struct {
		line string
		want scenario.Kind
		ok   bool
	}{
		{"C - 3 - 4", scenario.KindMap, true},
		{"  m - 1 - 1", scenario.KindMountain, true},
		{"t - 1 - 1 - 1", scenario.KindTreasure, true},
		{"A - Lara - 1 - 1 - S - A", scenario.KindAdventurer, true},
		{"X - 1 - 1", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"# comment", 0, false},
		{"Ń - 1 - 1", 0, false},
	}

	for _, tc := range tests {
		got, ok := scenario.LineKind(tc.line)
		assert.Equal(t, tc.ok, ok, "LineKind(%q) ok", tc.line)
		if tc.ok {
			assert.Equal(t, tc.want, got, "LineKind(%q)", tc.line)
		}
	}
}

func TestCheckFile(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		code  scenario.Code
	}{
		{"valid", []string{"C - 3 - 4", "A - Lara - 1 - 1 - S - A"}, ""},
		{"lowercase and padded", []string{"  c - 3 - 4", "a - Lara - 1 - 1 - S - A  "}, ""},
		{"empty", nil, scenario.CodeFileIncomplete},
		{"single line", []string{"C - 3 - 4"}, scenario.CodeFileIncomplete},
		{"map not first", []string{"M - 1 - 1", "A - Lara - 1 - 1 - S - A"}, scenario.CodeFileMalformed},
		{"adventurer not last", []string{"C - 3 - 4", "M - 1 - 1"}, scenario.CodeFileMalformed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := scenario.CheckFile(tc.lines)
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, scenario.ErrStructural)
			assert.Equal(t, tc.code, scenario.CodeOf(err))
		})
	}
}

func checkMap(line string) (*scenario.Validator, error) {
	var v scenario.Validator
	return &v, v.CheckMap(line, scenario.SplitFields(line))
}

func TestCheckMap(t *testing.T) {
	tests := []struct {
		line string
		code scenario.Code
	}{
		{"C - 3 - 4", ""},
		{"c - 3 - 4", ""},
		{"C - 85182 - 1", ""},
		{"C - 291 - 292", ""},
		{"C-3", scenario.CodeMapFields},
		{"C - 3 - 4 - 5", scenario.CodeMapFields},
		{"C - -3 - 4", scenario.CodeMapFields},
		{"C - a - 4", scenario.CodeMapNotNumeric},
		{"C - 3.5 - 4", scenario.CodeMapNotNumeric},
		{"C -   - 4", scenario.CodeMapNotNumeric},
		{"C - +3 - 4", scenario.CodeMapNotNumeric},
		{"C - 99999999999999999999 - 1", scenario.CodeMapNotNumeric},
		{"C - 0 - 4", scenario.CodeMapTooSmall},
		{"C - 3 - 0", scenario.CodeMapTooSmall},
		{"C - 85183 - 1", scenario.CodeMapTooBig},
		{"C - 292 - 292", scenario.CodeMapTooBig},
	}

	for _, tc := range tests {
		_, err := checkMap(tc.line)
		if tc.code == "" {
			assert.NoError(t, err, tc.line)
			continue
		}
		if assert.Error(t, err, tc.line) {
			assert.ErrorIs(t, err, scenario.ErrMalformed, tc.line)
			assert.Equal(t, tc.code, scenario.CodeOf(err), tc.line)
		}
	}
}

func TestCheckMapRecordsBounds(t *testing.T) {
	v, err := checkMap("C - 8 - 12")
	require.NoError(t, err)

	b, ok := v.Bounds()
	require.True(t, ok)
	assert.Equal(t, world.Bounds{Width: 8, Height: 12}, b)
}

// runLineChecks validates each line against a fresh 3x4 map.
func runLineChecks(t *testing.T, check func(*scenario.Validator, string, []string) error, tests []struct {
	line string
	code scenario.Code
},
) {
	t.Helper()
	for _, tc := range tests {
		v, err := checkMap("C - 3 - 4")
		require.NoError(t, err)

		err = check(v, tc.line, scenario.SplitFields(tc.line))
		if tc.code == "" {
			assert.NoError(t, err, tc.line)
			continue
		}
		if assert.Error(t, err, tc.line) {
			assert.ErrorIs(t, err, scenario.ErrMalformed, tc.line)
			assert.Equal(t, tc.code, scenario.CodeOf(err), tc.line)
		}
	}
}

func TestCheckMountain(t *testing.T) {
	runLineChecks(t, (*scenario.Validator).CheckMountain, []struct {
		line string
		code scenario.Code
	}{
		{"M - 1 - 1", ""},
		{"M - 0 - 0", ""},
		{"M - 3 - 4", ""},
		{"M-1", scenario.CodeMountainFields},
		{"M - 1 - 1 - 1", scenario.CodeMountainFields},
		{"M - x - 1", scenario.CodeMountainNotNumeric},
		{"M - 4 - 1", scenario.CodeMountainOutOfMap},
		{"M - 1 - 5", scenario.CodeMountainOutOfMap},
	})
}

func TestCheckTreasure(t *testing.T) {
	runLineChecks(t, (*scenario.Validator).CheckTreasure, []struct {
		line string
		code scenario.Code
	}{
		{"T - 0 - 3 - 2", ""},
		{"T-1-1-1", ""},
		{"T - 0 - 3", scenario.CodeTreasureFields},
		{"T-1-1-", scenario.CodeTreasureFields},
		{"T - a - 3 - 2", scenario.CodeTreasureNotNumeric},
		{"T - 0 - 3 - two", scenario.CodeTreasureCountType},
		{"T - 0 - 3 -  ", scenario.CodeTreasureCountType},
		{"T - 0 - 3 - 0", scenario.CodeTreasureCountLow},
		{"T - 9 - 3 - 0", scenario.CodeTreasureCountLow},
		{"T - 9 - 3 - 1", scenario.CodeTreasureOutOfMap},
	})
}

func TestCheckAdventurer(t *testing.T) {
	runLineChecks(t, (*scenario.Validator).CheckAdventurer, []struct {
		line string
		code scenario.Code
	}{
		{"A - Lara - 1 - 1 - S - AADADAGGA", ""},
		{"A - lara - 1 - 1 - s - adg", ""},
		{"A-L-1-1-N-A", ""},
		{"A-L-1-1-NA", scenario.CodeAdventurerFields},
		{"A - Lara - 1 - 1 - S", scenario.CodeAdventurerFields},
		{"A - Lara - x - 1 - S - A", scenario.CodeAdventurerNotNumeric},
		{"A - Lara - 9 - 1 - S - A", scenario.CodeAdventurerOutOfMap},
		{"A -  - 9 - 1 - S - A", scenario.CodeAdventurerOutOfMap},
		{"A -  - 1 - 1 - S - A", scenario.CodeAdventurerBlankName},
		{"A - Lara - 1 - 1 - W - A", scenario.CodeAdventurerOrientation},
		{"A - Lara - 1 - 1 -  - A", scenario.CodeAdventurerOrientation},
		{"A - Lara - 1 - 1 - S - ADX", scenario.CodeAdventurerMoves},
		{"A - Lara - 1 - 1 - S -   ", scenario.CodeAdventurerMoves},
	})
}

func TestPositionCheckNeedsMap(t *testing.T) {
	var v scenario.Validator
	line := "M - 1 - 1"

	err := v.CheckMountain(line, scenario.SplitFields(line))

	require.Error(t, err)
	assert.True(t, errors.Is(err, scenario.ErrStructural))
}
