package world

// MaxMapArea caps width*height of a scenario map.
const MaxMapArea = 85182

// Bounds is the map size. Both edges are inclusive: a map of width W spans
// columns 0..W, so the grid is (W+1) x (H+1) cells.
type Bounds struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the map.
func (b Bounds) Contains(p Pos) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}

// Cells returns the number of addressable cells.
func (b Bounds) Cells() int {
	return (b.Width + 1) * (b.Height + 1)
}

// Mountain is an impassable cell.
type Mountain struct {
	Pos Pos
}

// Treasure is a cache of collectible units. It never blocks movement,
// even once emptied.
type Treasure struct {
	Pos       Pos
	Remaining int
}

// Adventurer is a named agent playing a fixed movement script.
type Adventurer struct {
	Name      string
	Pos       Pos
	Facing    Orientation
	Script    Script
	Collected int
	Finished  bool
}

// World is the whole simulation state. Lists keep scenario-file order,
// which is also the order adventurers act within a turn.
type World struct {
	Bounds      Bounds
	Mountains   []*Mountain
	Treasures   []*Treasure
	Adventurers []*Adventurer

	turn int
}

// New creates an empty world with the given bounds.
func New(b Bounds) *World {
	return &World{Bounds: b}
}

// Turn returns the index of the next turn to play.
func (w *World) Turn() int {
	return w.turn
}

// AddMountain appends a mountain. Occupancy is the caller's concern.
func (w *World) AddMountain(m Mountain) *Mountain {
	ptr := &m
	w.Mountains = append(w.Mountains, ptr)
	return ptr
}

// AddTreasure appends a treasure cache.
func (w *World) AddTreasure(t Treasure) *Treasure {
	ptr := &t
	w.Treasures = append(w.Treasures, ptr)
	return ptr
}

// AddAdventurer appends an adventurer at the end of the turn order.
func (w *World) AddAdventurer(a Adventurer) *Adventurer {
	ptr := &a
	w.Adventurers = append(w.Adventurers, ptr)
	return ptr
}

// MountainAt returns the mountain at p, or nil.
func (w *World) MountainAt(p Pos) *Mountain {
	for _, m := range w.Mountains {
		if m.Pos.Equal(p) {
			return m
		}
	}
	return nil
}

// TreasureAt returns the first treasure cache at p, or nil.
func (w *World) TreasureAt(p Pos) *Treasure {
	for _, t := range w.Treasures {
		if t.Pos.Equal(p) {
			return t
		}
	}
	return nil
}

// AdventurerAt returns the adventurer standing on p, or nil.
func (w *World) AdventurerAt(p Pos) *Adventurer {
	for _, a := range w.Adventurers {
		if a.Pos.Equal(p) {
			return a
		}
	}
	return nil
}

// AdventurerNamed returns the adventurer with exactly this name, or nil.
func (w *World) AdventurerNamed(name string) *Adventurer {
	for _, a := range w.Adventurers {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// AllFinished reports whether every adventurer has played its whole script.
func (w *World) AllFinished() bool {
	for _, a := range w.Adventurers {
		if !a.Finished {
			return false
		}
	}
	return true
}

// TreasureLeft sums the remaining units over all caches.
func (w *World) TreasureLeft() int {
	total := 0
	for _, t := range w.Treasures {
		total += t.Remaining
	}
	return total
}

// Clone returns a deep copy, turn counter included.
func (w *World) Clone() *World {
	c := &World{
		Bounds:      w.Bounds,
		Mountains:   make([]*Mountain, len(w.Mountains)),
		Treasures:   make([]*Treasure, len(w.Treasures)),
		Adventurers: make([]*Adventurer, len(w.Adventurers)),
		turn:        w.turn,
	}
	for i, m := range w.Mountains {
		cp := *m
		c.Mountains[i] = &cp
	}
	for i, t := range w.Treasures {
		cp := *t
		c.Treasures[i] = &cp
	}
	for i, a := range w.Adventurers {
		cp := *a
		cp.Script = append(Script(nil), a.Script...)
		c.Adventurers[i] = &cp
	}
	return c
}
