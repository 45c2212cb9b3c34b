package world_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/treasure-map/internal/world"
)

func mustScript(t *testing.T, s string) world.Script {
	t.Helper()
	script, ok := world.ParseScript(s)
	if !ok {
		t.Fatalf("invalid script %q", s)
	}
	return script
}

func TestLaterAdventurerSeesEarlierMoveInSameTurn(t *testing.T) {
	w := world.New(world.Bounds{Width: 4, Height: 3})
	first := w.AddAdventurer(world.Adventurer{Name: "First", Pos: world.P(0, 0), Facing: world.East, Script: mustScript(t, "A")})
	second := w.AddAdventurer(world.Adventurer{Name: "Second", Pos: world.P(2, 0), Facing: world.West, Script: mustScript(t, "A")})

	result := w.PlayTurn()

	if first.Pos != world.P(1, 0) {
		t.Errorf("first position = %v, expected (1,0)", first.Pos)
	}
	if second.Pos != world.P(2, 0) {
		t.Errorf("second should be blocked by first's new cell, got %v", second.Pos)
	}
	if len(result.Events) != 2 || result.Events[1].Blocked != world.BlockedByAdventurer {
		t.Errorf("events = %+v, expected second blocked by adventurer", result.Events)
	}
}

func TestLaterAdventurerEntersVacatedCell(t *testing.T) {
	w := world.New(world.Bounds{Width: 4, Height: 3})
	leader := w.AddAdventurer(world.Adventurer{Name: "Leader", Pos: world.P(1, 0), Facing: world.East, Script: mustScript(t, "A")})
	follower := w.AddAdventurer(world.Adventurer{Name: "Follower", Pos: world.P(0, 0), Facing: world.East, Script: mustScript(t, "A")})

	w.PlayTurn()

	if leader.Pos != world.P(2, 0) || follower.Pos != world.P(1, 0) {
		t.Errorf("positions = %v, %v; expected (2,0), (1,0)", leader.Pos, follower.Pos)
	}
}

func TestEarlierAdventurerBlockedByNotYetMoved(t *testing.T) {
	w := world.New(world.Bounds{Width: 4, Height: 3})
	back := w.AddAdventurer(world.Adventurer{Name: "Back", Pos: world.P(0, 0), Facing: world.East, Script: mustScript(t, "A")})
	front := w.AddAdventurer(world.Adventurer{Name: "Front", Pos: world.P(1, 0), Facing: world.East, Script: mustScript(t, "A")})

	w.PlayTurn()

	if back.Pos != world.P(0, 0) {
		t.Errorf("back should stay put, got %v", back.Pos)
	}
	if front.Pos != world.P(2, 0) {
		t.Errorf("front position = %v, expected (2,0)", front.Pos)
	}
}

func TestRunFinishesEveryAdventurer(t *testing.T) {
	w := world.New(world.Bounds{Width: 5, Height: 5})
	short := w.AddAdventurer(world.Adventurer{Name: "Short", Pos: world.P(0, 0), Facing: world.South, Script: mustScript(t, "AA")})
	long := w.AddAdventurer(world.Adventurer{Name: "Long", Pos: world.P(5, 5), Facing: world.North, Script: mustScript(t, "AGA")})

	var results []world.TurnResult
	turns := w.Run(func(r world.TurnResult) {
		results = append(results, r)
	})

	// Turns 0-2 play moves, turn 3 only marks Long finished.
	if turns != 4 {
		t.Errorf("turns = %d, expected 4", turns)
	}
	if !short.Finished || !long.Finished {
		t.Error("every adventurer should be finished")
	}
	if !results[len(results)-1].Done {
		t.Error("last turn result should report done")
	}
	if short.Pos != world.P(0, 2) {
		t.Errorf("short position = %v, expected (0,2)", short.Pos)
	}
	if long.Pos != world.P(4, 4) || long.Facing != world.West {
		t.Errorf("long = %v facing %v, expected (4,4) facing West", long.Pos, long.Facing)
	}

	turn2 := results[2].Events
	if len(turn2) != 2 || turn2[0].Kind != world.EventFinished || turn2[0].Adventurer != "Short" {
		t.Errorf("turn 2 events = %+v, expected Short to finish first", turn2)
	}
	turn3 := results[3].Events
	if len(turn3) != 1 || turn3[0].Kind != world.EventFinished || turn3[0].Adventurer != "Long" {
		t.Errorf("turn 3 events = %+v, expected only Long to finish", turn3)
	}
}

func TestFinishedAdventurerNeverActsAgain(t *testing.T) {
	w := world.New(world.Bounds{Width: 5, Height: 5})
	a := w.AddAdventurer(world.Adventurer{Name: "Once", Pos: world.P(0, 0), Facing: world.East, Script: mustScript(t, "A")})
	w.AddAdventurer(world.Adventurer{Name: "Many", Pos: world.P(5, 5), Facing: world.North, Script: mustScript(t, "DDDDDD")})

	w.Run(nil)

	if a.Pos != world.P(1, 0) {
		t.Errorf("finished adventurer moved to %v", a.Pos)
	}
}

func TestAdventurersStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	letters := []byte("ADG")

	for round := 0; round < 200; round++ {
		b := world.Bounds{Width: 1 + rng.Intn(6), Height: 1 + rng.Intn(6)}
		w := world.New(b)
		taken := map[world.Pos]bool{}
		free := func() world.Pos {
			for {
				p := world.P(rng.Intn(b.Width+1), rng.Intn(b.Height+1))
				if !taken[p] {
					taken[p] = true
					return p
				}
			}
		}

		cells := b.Cells()
		for i := 0; i < cells/5; i++ {
			w.AddMountain(world.Mountain{Pos: free()})
		}
		for i := 0; i < cells/5; i++ {
			w.AddTreasure(world.Treasure{Pos: free(), Remaining: 1 + rng.Intn(3)})
		}
		for i := 0; i < 1+cells/6; i++ {
			script := make([]byte, 1+rng.Intn(20))
			for j := range script {
				script[j] = letters[rng.Intn(len(letters))]
			}
			w.AddAdventurer(world.Adventurer{
				Name:   string(rune('A' + i)),
				Pos:    free(),
				Facing: world.Orientation(rng.Intn(4)),
				Script: mustScript(t, string(script)),
			})
		}

		total := w.TreasureLeft()
		w.Run(nil)

		collected := 0
		for _, a := range w.Adventurers {
			if !b.Contains(a.Pos) {
				t.Fatalf("round %d: %s left the map at %v (bounds %+v)", round, a.Name, a.Pos, b)
			}
			if w.MountainAt(a.Pos) != nil {
				t.Fatalf("round %d: %s stands on a mountain at %v", round, a.Name, a.Pos)
			}
			collected += a.Collected
		}
		if collected+w.TreasureLeft() != total {
			t.Fatalf("round %d: treasure not conserved: %d collected + %d left != %d", round, collected, w.TreasureLeft(), total)
		}
	}
}

func TestDeterminism(t *testing.T) {
	build := func() *world.World {
		w := laraWorld()
		w.Adventurers[0].Script = mustScript(t, "AADADAGGA")
		w.AddAdventurer(world.Adventurer{Name: "Indiana", Pos: world.P(3, 3), Facing: world.North, Script: mustScript(t, "GAADAA")})
		return w
	}

	w1, w2 := build(), build()
	if w1.Digest() != w2.Digest() {
		t.Fatal("identical worlds should share a digest")
	}

	w1.Run(nil)
	if w1.Digest() == w2.Digest() {
		t.Error("digest should change once the world moves")
	}

	w2.Run(nil)
	if w1.Digest() != w2.Digest() {
		t.Errorf("digest mismatch after identical runs: %s vs %s", w1.Digest(), w2.Digest())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	w := laraWorld()
	c := w.Clone()

	w.Run(nil)

	if c.Adventurers[0].Pos != world.P(1, 1) || c.Treasures[0].Remaining != 2 {
		t.Error("running the original should not touch the clone")
	}
	if c.Turn() != 0 {
		t.Errorf("clone turn = %d, expected 0", c.Turn())
	}
}
