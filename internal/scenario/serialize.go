package scenario

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/treasure-map/internal/world"
)

// Separator joins the fields of an output line.
const Separator = " - "

// Serialize renders the world in scenario format: the map, every mountain,
// every non-empty treasure cache, then every adventurer with its collected
// count in place of its script.
func Serialize(w *world.World) []string {
	lines := make([]string, 0, 1+len(w.Mountains)+len(w.Treasures)+len(w.Adventurers))

	lines = append(lines, join("C", itoa(w.Bounds.Width), itoa(w.Bounds.Height)))
	for _, m := range w.Mountains {
		lines = append(lines, join("M", itoa(m.Pos.X), itoa(m.Pos.Y)))
	}
	for _, t := range w.Treasures {
		if t.Remaining > 0 {
			lines = append(lines, join("T", itoa(t.Pos.X), itoa(t.Pos.Y), itoa(t.Remaining)))
		}
	}
	for _, a := range w.Adventurers {
		lines = append(lines, join("A", a.Name, itoa(a.Pos.X), itoa(a.Pos.Y),
			string(a.Facing.Letter()), itoa(a.Collected)))
	}
	return lines
}

// SerializeInput renders the world as a replayable scenario: like Serialize
// but adventurers keep their script instead of their collected count.
func SerializeInput(w *world.World) []string {
	lines := Serialize(w)
	offset := len(lines) - len(w.Adventurers)
	for i, a := range w.Adventurers {
		lines[offset+i] = join("A", a.Name, itoa(a.Pos.X), itoa(a.Pos.Y),
			string(a.Facing.Letter()), a.Script.String())
	}
	return lines
}

func join(fields ...string) string {
	return strings.Join(fields, Separator)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
