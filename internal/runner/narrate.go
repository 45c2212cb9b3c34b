package runner

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treasure-map/internal/world"
)

// Describe returns a one-line narrative for an event.
func Describe(ev world.Event) string {
	switch ev.Kind {
	case world.EventTurned:
		return fmt.Sprintf("%s turns to face %s", ev.Adventurer, ev.Facing)
	case world.EventMoved:
		if ev.Picked {
			return fmt.Sprintf("%s moves to %s and picks up a treasure (%d held)", ev.Adventurer, ev.To, ev.Collected)
		}
		return fmt.Sprintf("%s moves to %s", ev.Adventurer, ev.To)
	case world.EventBlocked:
		switch ev.Blocked {
		case world.BlockedByEdge:
			return fmt.Sprintf("%s cannot leave the map at %s", ev.Adventurer, ev.From)
		case world.BlockedByMountain:
			return fmt.Sprintf("%s is blocked by a mountain ahead of %s", ev.Adventurer, ev.From)
		case world.BlockedByAdventurer:
			return fmt.Sprintf("%s is blocked by another adventurer ahead of %s", ev.Adventurer, ev.From)
		}
		return fmt.Sprintf("%s is blocked at %s", ev.Adventurer, ev.From)
	case world.EventFinished:
		return fmt.Sprintf("%s finished all moves holding %d treasure", ev.Adventurer, ev.Collected)
	}
	return fmt.Sprintf("%s: %s", ev.Adventurer, ev.Kind)
}

// LogEvent logs an event. Finishing is logged at info, everything else at debug.
func LogEvent(logger *log.Logger, ev world.Event) {
	if ev.Kind == world.EventFinished {
		logger.Info(Describe(ev), "turn", ev.Turn)
		return
	}
	logger.Debug(Describe(ev), "turn", ev.Turn, "adventurer", ev.Adventurer, "event", ev.Kind)
}
