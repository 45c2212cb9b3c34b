// Package world holds the treasure-map simulation: map bounds, mountains,
// treasure caches, adventurers and the turn loop that moves them.
// It has no terminal or file-system dependencies so every rule can be
// exercised directly from tests.
package world

import "fmt"

// Pos is a cell position. X grows to the east, Y grows to the south.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// P is a shorthand constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the position displaced by v.
func (p Pos) Add(v Pos) Pos {
	return Pos{X: p.X + v.X, Y: p.Y + v.Y}
}

// Equal reports whether both positions name the same cell.
func (p Pos) Equal(other Pos) bool {
	return p.X == other.X && p.Y == other.Y
}
