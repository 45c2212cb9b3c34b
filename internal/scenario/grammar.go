// Package scenario reads and writes the treasure-map text format.
//
// A scenario is a list of lines, one entity per line, fields separated by
// dashes:
//
//	C - <width> - <height>
//	M - <x> - <y>
//	T - <x> - <y> - <count>
//	A - <name> - <x> - <y> - <N|S|E|O> - <moves>
//
// Lines are validated and built one at a time, in file order, and the first
// failure aborts the whole scenario.
package scenario

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/treasure-map/internal/world"
)

// Kind is the leading tag of a scenario line.
type Kind byte

const (
	KindMap        Kind = 'C'
	KindMountain   Kind = 'M'
	KindTreasure   Kind = 'T'
	KindAdventurer Kind = 'A'
)

func (k Kind) String() string {
	switch k {
	case KindMap:
		return "map"
	case KindMountain:
		return "mountain"
	case KindTreasure:
		return "treasure"
	case KindAdventurer:
		return "adventurer"
	default:
		return "unknown"
	}
}

// Shape rules per kind: minimum raw length and exact field count.
var shapes = map[Kind]struct {
	minLen int
	fields int
}{
	KindMap:        {minLen: 5, fields: 3},
	KindMountain:   {minLen: 5, fields: 3},
	KindTreasure:   {minLen: 7, fields: 4},
	KindAdventurer: {minLen: 11, fields: 6},
}

// SplitFields splits a raw line on every "-" and strips all whitespace from
// each field. Empty fields are kept, so "C--3" yields three fields.
func SplitFields(line string) []string {
	fields := strings.Split(line, "-")
	for i, f := range fields {
		fields[i] = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, f)
	}
	return fields
}

// LineKind returns the kind selected by the first non-blank character.
func LineKind(line string) (Kind, bool) {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	k := Kind(unicode.ToUpper(r))
	if _, ok := shapes[k]; !ok || r >= utf8.RuneSelf {
		return 0, false
	}
	return k, true
}

// CheckFile runs the whole-file precondition: at least two lines, a map
// line first and an adventurer line last.
func CheckFile(lines []string) error {
	if len(lines) < 2 {
		return structural(CodeFileIncomplete,
			"file is incomplete: it needs at least a map line and an adventurer line")
	}
	first := strings.ToUpper(strings.TrimSpace(lines[0]))
	last := strings.ToUpper(strings.TrimSpace(lines[len(lines)-1]))
	if !strings.HasPrefix(first, "C") || !strings.HasPrefix(last, "A") {
		return structural(CodeFileMalformed,
			"file is malformed: the first line must start with C and the last line with A")
	}
	return nil
}

// Validator checks individual lines. It remembers the map bounds so that
// later lines can be bounds-checked.
type Validator struct {
	bounds world.Bounds
	hasMap bool
}

// Bounds returns the bounds of the last validated map line.
func (v *Validator) Bounds() (world.Bounds, bool) {
	return v.bounds, v.hasMap
}

// CheckMap validates a map line: two positive integers whose product does
// not exceed world.MaxMapArea.
func (v *Validator) CheckMap(line string, fields []string) error {
	if !hasShape(KindMap, line, fields) {
		return malformed(CodeMapFields, "map line does not have the expected number of characters or fields")
	}
	width, okW := parseNatural(fields[1])
	height, okH := parseNatural(fields[2])
	if !okW || !okH {
		return malformed(CodeMapNotNumeric, "map width or height is not an integer")
	}
	if width < 1 || height < 1 {
		return malformed(CodeMapTooSmall, "map width or height is lower than 1")
	}
	if width > world.MaxMapArea/height {
		return malformed(CodeMapTooBig,
			"map area exceeds "+strconv.Itoa(world.MaxMapArea)+" cells, reduce the width or height")
	}
	v.bounds = world.Bounds{Width: width, Height: height}
	v.hasMap = true
	return nil
}

// CheckMountain validates a mountain line.
func (v *Validator) CheckMountain(line string, fields []string) error {
	if !hasShape(KindMountain, line, fields) {
		return malformed(CodeMountainFields, "mountain line does not have the expected number of characters or fields")
	}
	pos, ok := parsePos(fields[1], fields[2])
	if !ok {
		return malformed(CodeMountainNotNumeric, "mountain position is not an integer")
	}
	return v.checkInMap(pos, CodeMountainOutOfMap, "mountain position is outside the map")
}

// CheckTreasure validates a treasure line. The count is checked before the
// position.
func (v *Validator) CheckTreasure(line string, fields []string) error {
	if !hasShape(KindTreasure, line, fields) {
		return malformed(CodeTreasureFields, "treasure line does not have the expected number of characters or fields")
	}
	pos, ok := parsePos(fields[1], fields[2])
	if !ok {
		return malformed(CodeTreasureNotNumeric, "treasure position is not an integer")
	}
	count, ok := parseNatural(fields[3])
	if !ok {
		return malformed(CodeTreasureCountType, "treasure quantity is not an integer")
	}
	if count < 1 {
		return malformed(CodeTreasureCountLow, "treasure quantity must be 1 or more")
	}
	return v.checkInMap(pos, CodeTreasureOutOfMap, "treasure position is outside the map")
}

// CheckAdventurer validates an adventurer line.
func (v *Validator) CheckAdventurer(line string, fields []string) error {
	if !hasShape(KindAdventurer, line, fields) {
		return malformed(CodeAdventurerFields, "adventurer line does not have the expected number of characters or fields")
	}
	pos, ok := parsePos(fields[2], fields[3])
	if !ok {
		return malformed(CodeAdventurerNotNumeric, "adventurer position is not an integer")
	}
	if err := v.checkInMap(pos, CodeAdventurerOutOfMap, "adventurer position is outside the map"); err != nil {
		return err
	}
	if fields[1] == "" {
		return malformed(CodeAdventurerBlankName, "adventurer name is blank")
	}
	if _, ok := world.ParseOrientation(fields[4]); !ok {
		return malformed(CodeAdventurerOrientation, "adventurer orientation is not one of N, S, E, O")
	}
	if _, ok := world.ParseScript(fields[5]); !ok {
		return malformed(CodeAdventurerMoves, "adventurer moves must be a non-empty sequence of A, D, G")
	}
	return nil
}

func (v *Validator) checkInMap(p world.Pos, code Code, msg string) error {
	if !v.hasMap {
		return structural(CodeFileMalformed, "the map line must come before any other line")
	}
	if !v.bounds.Contains(p) {
		return malformed(code, msg)
	}
	return nil
}

func hasShape(k Kind, line string, fields []string) bool {
	shape := shapes[k]
	return utf8.RuneCountInString(line) >= shape.minLen && len(fields) == shape.fields
}

// parseNatural accepts ASCII digits only: no sign, no blanks, no decimal
// point. Values that overflow int are rejected too.
func parseNatural(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func parsePos(xs, ys string) (world.Pos, bool) {
	x, okX := parseNatural(xs)
	y, okY := parseNatural(ys)
	return world.P(x, y), okX && okY
}
