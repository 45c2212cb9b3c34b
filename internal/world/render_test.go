package world_test

import (
	"testing"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/world"
)

func TestRenderText(t *testing.T) {
	w := laraWorld()

	expected := "" +
		"·M···\n" +
		"·v···\n" +
		"·····\n" +
		"·$···"

	if got := world.RenderText(w); got != expected {
		t.Errorf("RenderText() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestRenderHidesEmptyCacheAndDrawsAdventurerOnTop(t *testing.T) {
	w := world.New(world.Bounds{Width: 2, Height: 1})
	w.AddTreasure(world.Treasure{Pos: world.P(0, 0), Remaining: 0})
	w.AddTreasure(world.Treasure{Pos: world.P(1, 0), Remaining: 1})
	w.AddAdventurer(world.Adventurer{Name: "Nate", Pos: world.P(1, 0), Facing: world.West})

	s := core.NewScreen(3, 2)
	world.Render(w, s, 0, 0)

	if s.Get(0, 0) != world.GlyphTerrain {
		t.Errorf("emptied cache should render as terrain, got %q", s.Get(0, 0))
	}
	if c := s.GetCell(1, 0); c.Rune != '<' || c.Color != core.ColorAdventurer {
		t.Errorf("adventurer cell = %+v, expected '<' in adventurer color", c)
	}
}

func TestRenderOffset(t *testing.T) {
	w := world.New(world.Bounds{Width: 1, Height: 1})
	w.AddMountain(world.Mountain{Pos: world.P(0, 0)})

	s := core.NewScreen(5, 5)
	world.Render(w, s, 2, 1)

	if s.Get(2, 1) != world.GlyphMountain {
		t.Errorf("mountain should be drawn at the origin offset, got %q", s.Get(2, 1))
	}
	if s.Get(0, 0) != ' ' {
		t.Error("cells outside the map should stay blank")
	}
}
