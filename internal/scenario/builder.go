package scenario

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/treasure-map/internal/world"
)

// CreateMap builds an empty world from validated map fields.
// Field 1 is the width and field 2 the height.
func CreateMap(fields []string) *world.World {
	return world.New(world.Bounds{
		Width:  atoi(fields[1]),
		Height: atoi(fields[2]),
	})
}

// Builder adds validated entities to a world, refusing any that would land
// on an occupied cell or reuse an adventurer name.
type Builder struct {
	w *world.World
}

// NewBuilder wraps w.
func NewBuilder(w *world.World) *Builder {
	return &Builder{w: w}
}

// World returns the world under construction.
func (b *Builder) World() *world.World {
	return b.w
}

// CreateMountain adds a mountain from validated fields.
func (b *Builder) CreateMountain(fields []string) error {
	pos := world.P(atoi(fields[1]), atoi(fields[2]))
	if err := b.checkFree(pos, KindMountain); err != nil {
		return err
	}
	b.w.AddMountain(world.Mountain{Pos: pos})
	return nil
}

// CreateTreasure adds a treasure cache from validated fields.
func (b *Builder) CreateTreasure(fields []string) error {
	pos := world.P(atoi(fields[1]), atoi(fields[2]))
	if err := b.checkFree(pos, KindTreasure); err != nil {
		return err
	}
	b.w.AddTreasure(world.Treasure{Pos: pos, Remaining: atoi(fields[3])})
	return nil
}

// CreateAdventurer adds an adventurer from validated fields. The stored
// name has its first letter upper-cased; uniqueness is checked on that
// stored form and is case-sensitive otherwise.
func (b *Builder) CreateAdventurer(fields []string) error {
	pos := world.P(atoi(fields[2]), atoi(fields[3]))
	if err := b.checkFree(pos, KindAdventurer); err != nil {
		return err
	}
	name := Capitalize(fields[1])
	if b.w.AdventurerNamed(name) != nil {
		return occupancy(CodeNameTaken,
			fmt.Sprintf("cannot create adventurer: the name %s is already taken", name))
	}
	facing, _ := world.ParseOrientation(fields[4])
	script, _ := world.ParseScript(fields[5])
	b.w.AddAdventurer(world.Adventurer{
		Name:   name,
		Pos:    pos,
		Facing: facing,
		Script: script,
	})
	return nil
}

// checkFree scans mountains, treasures and adventurers, in that order.
func (b *Builder) checkFree(pos world.Pos, k Kind) error {
	var holder string
	switch {
	case b.w.MountainAt(pos) != nil:
		holder = "a mountain"
	case b.w.TreasureAt(pos) != nil:
		holder = "a treasure"
	case b.w.AdventurerAt(pos) != nil:
		holder = "adventurer " + b.w.AdventurerAt(pos).Name
	default:
		return nil
	}
	return occupancy(CodeCellOccupied,
		fmt.Sprintf("cannot create %s: %s already stands at %d - %d", k, holder, pos.X, pos.Y))
}

// Capitalize upper-cases the first letter and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// atoi parses a field the Validator already accepted.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
