package scenario

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error unwraps to exactly one of them.
var (
	ErrStructural = errors.New("structural error")
	ErrMalformed  = errors.New("malformed line")
	ErrOccupancy  = errors.New("occupancy conflict")
)

// Code identifies a single rule violation.
type Code string

const (
	CodeFileIncomplete Code = "FILE_INCOMPLETE"
	CodeFileMalformed  Code = "FILE_MALFORMED"
	CodeUnknownTag     Code = "UNKNOWN_TAG"
	CodeDuplicateMap   Code = "DUPLICATE_MAP"

	CodeMapFields     Code = "MAP_FIELDS"
	CodeMapNotNumeric Code = "MAP_NOT_NUMERIC"
	CodeMapTooSmall   Code = "MAP_TOO_SMALL"
	CodeMapTooBig     Code = "MAP_TOO_BIG"

	CodeMountainFields     Code = "MOUNTAIN_FIELDS"
	CodeMountainNotNumeric Code = "MOUNTAIN_NOT_NUMERIC"
	CodeMountainOutOfMap   Code = "MOUNTAIN_OUT_OF_MAP"

	CodeTreasureFields     Code = "TREASURE_FIELDS"
	CodeTreasureNotNumeric Code = "TREASURE_NOT_NUMERIC"
	CodeTreasureCountType  Code = "TREASURE_COUNT_NOT_NUMERIC"
	CodeTreasureCountLow   Code = "TREASURE_COUNT_TOO_LOW"
	CodeTreasureOutOfMap   Code = "TREASURE_OUT_OF_MAP"

	CodeAdventurerFields      Code = "ADVENTURER_FIELDS"
	CodeAdventurerNotNumeric  Code = "ADVENTURER_NOT_NUMERIC"
	CodeAdventurerOutOfMap    Code = "ADVENTURER_OUT_OF_MAP"
	CodeAdventurerBlankName   Code = "ADVENTURER_NAME_BLANK"
	CodeAdventurerOrientation Code = "ADVENTURER_ORIENTATION"
	CodeAdventurerMoves       Code = "ADVENTURER_MOVES"

	CodeCellOccupied Code = "CELL_OCCUPIED"
	CodeNameTaken    Code = "NAME_TAKEN"
)

// Error describes why a scenario was rejected.
type Error struct {
	Kind   error  // ErrStructural, ErrMalformed or ErrOccupancy
	Code   Code   // stable rule identifier
	LineNo int    // 1-based; 0 when the whole file is at fault
	Line   string // offending raw line
	Msg    string
}

func (e *Error) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %q", e.Code, e.LineNo, e.Msg, e.Line)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

// Unwrap exposes the error kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

func structural(code Code, msg string) *Error {
	return &Error{Kind: ErrStructural, Code: code, Msg: msg}
}

func malformed(code Code, msg string) *Error {
	return &Error{Kind: ErrMalformed, Code: code, Msg: msg}
}

func occupancy(code Code, msg string) *Error {
	return &Error{Kind: ErrOccupancy, Code: code, Msg: msg}
}

// at attaches the source line to e.
func (e *Error) at(lineNo int, line string) *Error {
	e.LineNo = lineNo
	e.Line = line
	return e
}

// CodeOf returns the rule code of err, or "" when err is not a scenario error.
func CodeOf(err error) Code {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}
