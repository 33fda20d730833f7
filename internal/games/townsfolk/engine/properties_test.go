package engine_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/townsfolk/internal/games/townsfolk/engine"
)

// playRandom confirms up to maxMoves random selections and calls check
// after each one.
func playRandom(t *testing.T, c *engine.Controller, seed int64, maxMoves int, check func(move int)) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for move := 0; move < maxMoves && !c.State().Terminal; move++ {
		live := c.Grid().OccupiedCoords()
		c.Select(live[rng.Intn(len(live))])
		c.Confirm()
		check(move)
	}
}

func TestDeterministicStart(t *testing.T) {
	a, _ := engine.NewGrid(4, engine.SequentialIdentities("x"))
	b, _ := engine.NewGrid(4, engine.SequentialIdentities("x"))
	if !a.Equal(b) {
		t.Error("same size and identities should give identical grids")
	}
}

func TestConservation(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		c, err := engine.NewController(n, engine.SequentialIdentities("c"))
		if err != nil {
			t.Fatalf("NewController(%d) failed: %v", n, err)
		}
		volume := n * n * n

		playRandom(t, c, int64(n), 2000, func(move int) {
			s := c.State()
			total := s.Count(engine.Player1) + s.Count(engine.Player2) + c.Remaining()
			if total != volume {
				t.Fatalf("n=%d move %d: collected+remaining = %d, want %d", n, move, total, volume)
			}
		})

		if !c.State().Terminal {
			t.Errorf("n=%d: game did not finish", n)
		}
	}
}

func TestSettledAfterEveryMove(t *testing.T) {
	c, _ := engine.NewController(3, engine.SequentialIdentities("s"))

	playRandom(t, c, 42, 500, func(move int) {
		g := c.Grid()
		for _, at := range g.OccupiedCoords() {
			if engine.Eligible(g, at) {
				t.Fatalf("move %d: %v is still eligible after the cascade", move, at)
			}
		}
	})
}

func TestPropagateIdempotent(t *testing.T) {
	c, _ := engine.NewController(3, engine.SequentialIdentities("i"))

	playRandom(t, c, 7, 10, func(move int) {
		settled := c.Grid()
		again := engine.Propagate(settled.Clone())
		if len(again.Removed) != 0 {
			t.Fatalf("move %d: second propagate removed %v", move, again.Coords())
		}
		if !again.Grid.Equal(settled) {
			t.Fatalf("move %d: second propagate changed the grid", move)
		}
	})
}

func TestCascadeSettlesInOnePass(t *testing.T) {
	// A mismatched pair on a ray blocks both ends until one is converted,
	// so removing a batch can never expose a new candidate.
	c, _ := engine.NewController(4, engine.SequentialIdentities("p"))

	playRandom(t, c, 99, 1000, func(move int) {
		if last := c.LastTurn(); last.Cascade.Passes > 1 {
			t.Fatalf("move %d: cascade took %d passes", move, last.Cascade.Passes)
		}
	})
}

func TestUnitGridAlwaysClears(t *testing.T) {
	g, _ := engine.NewGrid(1, engine.SequentialIdentities("u"))
	g.Flip(engine.C(0, 0, 0))

	res := engine.Propagate(g)
	if len(res.Removed) != 1 || !res.Grid.IsCleared() {
		t.Errorf("unit grid: removed %d, cleared %v", len(res.Removed), res.Grid.IsCleared())
	}
}

func TestCenterFlipIsTrueFixedPoint(t *testing.T) {
	g, _ := engine.NewGrid(3, engine.SequentialIdentities("m"))
	g.Flip(engine.C(1, 1, 1))

	res := engine.Propagate(g)
	for _, at := range res.Grid.OccupiedCoords() {
		if engine.Eligible(res.Grid, at) {
			t.Errorf("%v is eligible after propagate", at)
		}
	}
	if len(res.Removed) != 1 || res.Removed[0].Coord != engine.C(1, 1, 1) {
		t.Errorf("Removed = %v, want only the converted center", res.Coords())
	}
}

func TestTurnAttribution(t *testing.T) {
	c, _ := engine.NewController(3, engine.SequentialIdentities("a"))
	shadow := c.Grid()

	moves := []engine.Coord{engine.C(1, 1, 1), engine.C(0, 0, 0)}
	var expected []engine.Identity
	for _, m := range moves {
		c.Select(m)
		c.Confirm()

		shadow.Flip(m)
		res := engine.Propagate(shadow)
		shadow = res.Grid
		expected = append(expected, res.Identities()...)
	}

	s := c.State()
	got := map[engine.Identity]int{}
	for _, id := range s.Scores[engine.Player1] {
		got[id]++
	}
	for _, id := range s.Scores[engine.Player2] {
		got[id]++
	}
	want := map[engine.Identity]int{}
	for _, id := range expected {
		want[id]++
	}

	if len(got) != len(want) {
		t.Fatalf("attributed %v, want %v", got, want)
	}
	for id, n := range want {
		if got[id] != n {
			t.Errorf("identity %q attributed %d times, want %d", id, got[id], n)
		}
	}
	if !shadow.Equal(c.Grid()) {
		t.Error("controller grid diverged from sequential propagate")
	}
}
