package pong

import (
	"testing"

	"pong3d/internal/fixed"
	"pong3d/internal/levels"
)

func normalStage() Stage {
	return NewStage(levels.Defaults()[0])
}

// arena returns a normal stage with both paddles in their start positions.
func arena(t *testing.T) (Stage, *Ball, *Paddle, *Paddle) {
	t.Helper()
	s := normalStage()
	b := &Ball{}
	b.Setup(&s)
	p1, p2 := &Paddle{}, &Paddle{}
	p1.SetupPlayer(&s)
	p2.SetupAI(&s)
	return s, b, p1, p2
}

func twoLevelCatalog(t *testing.T) *levels.Catalog {
	t.Helper()
	first := levels.Defaults()[0]
	second := levels.Defaults()[0]
	second.Name = "finale"
	c, err := levels.NewCatalog([]levels.Descriptor{first, second})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func vec(x, y, z fixed.Fixed) fixed.Vec3 { return fixed.Vec3{X: x, Y: y, Z: z} }

// tickUntil ticks g until the active sequence is id, failing after limit ticks.
func tickUntil(t *testing.T, g *Game, id SequenceID, limit int) int {
	t.Helper()
	for i := 1; i <= limit; i++ {
		g.Tick()
		if g.Sequence().ID == id {
			return i
		}
	}
	t.Fatalf("sequence %s not reached within %d ticks (at %s)", id, limit, g.Sequence().ID)
	return 0
}
