package world

import (
	"fmt"
	"strings"
)

// Move is a single script token.
type Move byte

const (
	MoveAdvance   Move = 'A' // step one cell forward
	MoveTurnRight Move = 'D' // rotate +90 degrees
	MoveTurnLeft  Move = 'G' // rotate -90 degrees
)

// ParseMove reads one script letter, ignoring case.
func ParseMove(r rune) (Move, bool) {
	switch r {
	case 'A', 'a':
		return MoveAdvance, true
	case 'D', 'd':
		return MoveTurnRight, true
	case 'G', 'g':
		return MoveTurnLeft, true
	}
	return 0, false
}

func (m Move) String() string {
	switch m {
	case MoveAdvance:
		return "advance"
	case MoveTurnRight:
		return "turn right"
	case MoveTurnLeft:
		return "turn left"
	default:
		return "unknown"
	}
}

// MarshalText encodes the move as its script letter.
func (m Move) MarshalText() ([]byte, error) {
	return []byte{byte(m)}, nil
}

// UnmarshalText decodes a script letter.
func (m *Move) UnmarshalText(b []byte) error {
	if len(b) != 1 {
		return fmt.Errorf("world: invalid move %q", b)
	}
	parsed, ok := ParseMove(rune(b[0]))
	if !ok {
		return fmt.Errorf("world: invalid move %q", b)
	}
	*m = parsed
	return nil
}

// Script is the ordered list of moves an adventurer plays, one per turn.
type Script []Move

// ParseScript reads a movement string such as "AADADAGGA".
// An empty string is rejected.
func ParseScript(s string) (Script, bool) {
	if s == "" {
		return nil, false
	}
	script := make(Script, 0, len(s))
	for _, r := range s {
		m, ok := ParseMove(r)
		if !ok {
			return nil, false
		}
		script = append(script, m)
	}
	return script, true
}

// String returns the canonical upper-case letters.
func (s Script) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, m := range s {
		sb.WriteByte(byte(m))
	}
	return sb.String()
}
