package world

import "fmt"

// EventKind classifies what happened to an adventurer during a turn.
type EventKind uint8

const (
	EventTurned   EventKind = iota // orientation changed
	EventMoved                     // advanced one cell
	EventBlocked                   // advance refused, nothing changed
	EventFinished                  // script exhausted
)

var eventKindNames = [...]string{
	EventTurned:   "turned",
	EventMoved:    "moved",
	EventBlocked:  "blocked",
	EventFinished: "finished",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *EventKind) UnmarshalText(b []byte) error {
	for i, name := range eventKindNames {
		if name == string(b) {
			*k = EventKind(i)
			return nil
		}
	}
	return fmt.Errorf("world: unknown event kind %q", b)
}

// BlockReason tells why an advance was refused.
type BlockReason uint8

const (
	NotBlocked BlockReason = iota
	BlockedByEdge
	BlockedByMountain
	BlockedByAdventurer
)

var blockReasonNames = [...]string{
	NotBlocked:          "",
	BlockedByEdge:       "edge",
	BlockedByMountain:   "mountain",
	BlockedByAdventurer: "adventurer",
}

func (r BlockReason) String() string {
	if int(r) < len(blockReasonNames) {
		return blockReasonNames[r]
	}
	return "unknown"
}

// MarshalText encodes the reason by name.
func (r BlockReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a reason name.
func (r *BlockReason) UnmarshalText(b []byte) error {
	for i, name := range blockReasonNames {
		if name == string(b) {
			*r = BlockReason(i)
			return nil
		}
	}
	return fmt.Errorf("world: unknown block reason %q", b)
}

// Event records the outcome of one adventurer's step.
type Event struct {
	Turn       int         `json:"turn"`
	Adventurer string      `json:"adventurer"`
	Kind       EventKind   `json:"kind"`
	Move       Move        `json:"move,omitempty"`
	From       Pos         `json:"from"`
	To         Pos         `json:"to"`
	Facing     Orientation `json:"facing"`
	Blocked    BlockReason `json:"blocked,omitempty"`
	Picked     bool        `json:"picked,omitempty"`
	Collected  int         `json:"collected"`
}

// Blocker returns why an adventurer could not enter p, or NotBlocked.
// Adventurers are checked against their live positions.
func (w *World) Blocker(p Pos) BlockReason {
	if !w.Bounds.Contains(p) {
		return BlockedByEdge
	}
	if w.MountainAt(p) != nil {
		return BlockedByMountain
	}
	if w.AdventurerAt(p) != nil {
		return BlockedByAdventurer
	}
	return NotBlocked
}

// Execute applies a single move to a and reports the outcome.
// Blocked advances are a normal outcome and leave a untouched.
func (w *World) Execute(a *Adventurer, m Move) Event {
	ev := Event{
		Turn:       w.turn,
		Adventurer: a.Name,
		Move:       m,
		From:       a.Pos,
	}

	switch m {
	case MoveTurnRight:
		a.Facing = a.Facing.TurnRight()
		ev.Kind = EventTurned
	case MoveTurnLeft:
		a.Facing = a.Facing.TurnLeft()
		ev.Kind = EventTurned
	case MoveAdvance:
		w.advance(a, &ev)
	default:
		panic(fmt.Sprintf("world: unknown move %q", byte(m)))
	}

	ev.To = a.Pos
	ev.Facing = a.Facing
	ev.Collected = a.Collected
	return ev
}

func (w *World) advance(a *Adventurer, ev *Event) {
	target := a.Pos.Add(a.Facing.Vector())
	if reason := w.Blocker(target); reason != NotBlocked {
		ev.Kind = EventBlocked
		ev.Blocked = reason
		return
	}

	a.Pos = target
	ev.Kind = EventMoved

	// At most one unit per successful advance, from the first non-empty cache.
	for _, t := range w.Treasures {
		if t.Pos.Equal(target) && t.Remaining > 0 {
			t.Remaining--
			a.Collected++
			ev.Picked = true
			return
		}
	}
}
