package world

import (
	"fmt"
	"strings"
)

// Orientation is the heading of an adventurer.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

// heading is the immutable record behind each Orientation.
type heading struct {
	letter byte
	vector Pos
	angle  int
}

var headings = [...]heading{
	North: {letter: 'N', vector: Pos{0, -1}, angle: 0},
	East:  {letter: 'E', vector: Pos{1, 0}, angle: 90},
	South: {letter: 'S', vector: Pos{0, 1}, angle: 180},
	West:  {letter: 'O', vector: Pos{-1, 0}, angle: 270},
}

// Letter returns the scenario letter (N, E, S or O).
func (o Orientation) Letter() byte {
	return headings[o].letter
}

// Vector returns the one-cell displacement of an advance.
func (o Orientation) Vector() Pos {
	return headings[o].vector
}

// Angle returns the heading in degrees, North being 0.
func (o Orientation) Angle() int {
	return headings[o].angle
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// TurnRight rotates the heading by +90 degrees.
func (o Orientation) TurnRight() Orientation {
	return FromAngle(o.Angle() + 90)
}

// TurnLeft rotates the heading by -90 degrees.
func (o Orientation) TurnLeft() Orientation {
	return FromAngle(o.Angle() - 90)
}

// FromAngle maps a heading angle back to its Orientation.
// 360 wraps to North and -90 wraps to West. Only ±90 steps from a valid
// heading are ever applied, so any other angle is a programming error.
func FromAngle(angle int) Orientation {
	switch angle {
	case 0, 360:
		return North
	case 90:
		return East
	case 180:
		return South
	case 270, -90:
		return West
	}
	panic(fmt.Sprintf("world: unreachable heading angle %d", angle))
}

// ParseOrientation reads a scenario orientation letter, ignoring case.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToUpper(s) {
	case "N":
		return North, true
	case "E":
		return East, true
	case "S":
		return South, true
	case "O":
		return West, true
	}
	return North, false
}

// MarshalText encodes the orientation as its scenario letter.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte{o.Letter()}, nil
}

// UnmarshalText decodes a scenario letter.
func (o *Orientation) UnmarshalText(b []byte) error {
	parsed, ok := ParseOrientation(string(b))
	if !ok {
		return fmt.Errorf("world: invalid orientation %q", b)
	}
	*o = parsed
	return nil
}
