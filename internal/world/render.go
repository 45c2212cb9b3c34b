package world

import (
	"github.com/vovakirdan/treasure-map/internal/core"
)

// Map glyphs.
const (
	GlyphTerrain  = '·'
	GlyphMountain = 'M'
	GlyphTreasure = '$'
)

// Glyph returns the arrow drawn for an adventurer facing o.
func (o Orientation) Glyph() rune {
	switch o {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	default:
		return '<'
	}
}

// Render draws the map with its top-left cell at (originX, originY).
// Adventurers are drawn over treasure; emptied caches show as terrain.
func Render(w *World, s *core.Screen, originX, originY int) {
	for y := 0; y <= w.Bounds.Height; y++ {
		for x := 0; x <= w.Bounds.Width; x++ {
			s.SetCell(originX+x, originY+y, GlyphTerrain, core.ColorTerrain)
		}
	}
	for _, m := range w.Mountains {
		s.SetCell(originX+m.Pos.X, originY+m.Pos.Y, GlyphMountain, core.ColorMountain)
	}
	for _, t := range w.Treasures {
		if t.Remaining > 0 {
			s.SetCell(originX+t.Pos.X, originY+t.Pos.Y, GlyphTreasure, core.ColorTreasure)
		}
	}
	for _, a := range w.Adventurers {
		s.SetCell(originX+a.Pos.X, originY+a.Pos.Y, a.Facing.Glyph(), core.ColorAdventurer)
	}
}

// RenderText returns the map as plain text, one row per line.
func RenderText(w *World) string {
	s := core.NewScreen(w.Bounds.Width+1, w.Bounds.Height+1)
	Render(w, s, 0, 0)
	return s.String()
}
