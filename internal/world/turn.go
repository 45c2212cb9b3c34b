package world

// TurnResult contains everything that happened during one turn.
type TurnResult struct {
	Turn   int     `json:"turn"`
	Events []Event `json:"events"`
	Done   bool    `json:"done"` // every adventurer finished
}

// PlayTurn runs one turn for every adventurer in list order.
//
// An adventurer whose script is exhausted at this turn index is marked
// finished and does nothing else. Every other unfinished adventurer plays
// the move at the turn index against the live world, so later adventurers
// see where earlier ones went during the same turn.
func (w *World) PlayTurn() TurnResult {
	result := TurnResult{Turn: w.turn}

	for _, a := range w.Adventurers {
		if a.Finished {
			continue
		}
		if w.turn >= len(a.Script) {
			a.Finished = true
			result.Events = append(result.Events, Event{
				Turn:       w.turn,
				Adventurer: a.Name,
				Kind:       EventFinished,
				From:       a.Pos,
				To:         a.Pos,
				Facing:     a.Facing,
				Collected:  a.Collected,
			})
			continue
		}
		result.Events = append(result.Events, w.Execute(a, a.Script[w.turn]))
	}

	w.turn++
	result.Done = w.AllFinished()
	return result
}

// Run plays turns until every adventurer has finished.
// onTurn, when non-nil, is called after each turn.
// Returns the number of turns played.
func (w *World) Run(onTurn func(TurnResult)) int {
	played := 0
	for !w.AllFinished() {
		result := w.PlayTurn()
		played++
		if onTurn != nil {
			onTurn(result)
		}
	}
	return played
}

// MaxScriptLen returns the length of the longest script.
func (w *World) MaxScriptLen() int {
	longest := 0
	for _, a := range w.Adventurers {
		if len(a.Script) > longest {
			longest = len(a.Script)
		}
	}
	return longest
}
