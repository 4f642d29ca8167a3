package pong

import (
	"errors"
	"testing"

	"pong3d/internal/levels"
)

func TestCreateGame(t *testing.T) {
	g := CreateGame(nil)
	if g.Level() != 0 || g.Stage.Name != "normal" {
		t.Fatalf("level %d %q", g.Level(), g.Stage.Name)
	}
	if g.Stage.Depth != 40960 || g.Stage.BallSpeed != 768 {
		t.Fatalf("stage = %+v", g.Stage)
	}

	s := g.Snapshot()
	if s.Sequence != SequenceIntro || s.LevelName != "normal" {
		t.Fatalf("snapshot = %+v", s)
	}
	if s.Ball.Pos != vec(12800, 6400, 20480) {
		t.Fatalf("ball served from %v", s.Ball.Pos)
	}
	if s.Paddle1.Pos != vec(6400, 12800, 2560) || s.Paddle2.Pos != vec(19200, 12800, 38400) {
		t.Fatalf("paddles %v %v", s.Paddle1.Pos, s.Paddle2.Pos)
	}
}

func TestSetLevelOutOfRange(t *testing.T) {
	g := CreateGame(nil)
	g.SetLevel(3)
	if g.Stage.Name != "deep" {
		t.Fatalf("stage = %q", g.Stage.Name)
	}
	if g.AI.Recenter {
		t.Fatalf("deep does not recenter")
	}
	g.SetLevel(42)
	if g.Level() != 0 {
		t.Fatalf("level = %d", g.Level())
	}
}

func TestLevelEditing(t *testing.T) {
	g := CreateGame(nil)

	g.AddLevel()
	if g.Level() != 5 || g.Levels().Len() != 6 || g.Stage.Name != "new stage" {
		t.Fatalf("after add: level %d of %d %q", g.Level(), g.Levels().Len(), g.Stage.Name)
	}

	d := g.Levels().At(g.Level())
	d.StageDepth = 200
	if err := g.EditLevel(d); err != nil {
		t.Fatal(err)
	}
	if g.Stage.Depth != 51200 {
		t.Fatalf("depth = %d", g.Stage.Depth)
	}

	d.StageDepth = 0
	if err := g.EditLevel(d); !errors.Is(err, levels.ErrInvalidDescriptor) {
		t.Fatalf("expected invalid descriptor, got %v", err)
	}

	if err := g.DeleteLevel(); err != nil {
		t.Fatal(err)
	}
	if g.Level() != 4 || g.Levels().Len() != 5 {
		t.Fatalf("after delete: level %d of %d", g.Level(), g.Levels().Len())
	}
}

func TestDeleteLastLevelFails(t *testing.T) {
	c, err := levels.NewCatalog(levels.Defaults()[:1])
	if err != nil {
		t.Fatal(err)
	}
	g := CreateGame(c)
	if err := g.DeleteLevel(); err == nil {
		t.Fatalf("deleted the only stage")
	}
}

func TestPrevNextLevelBounds(t *testing.T) {
	g := CreateGame(nil)
	g.PrevLevel()
	if g.Level() != 0 {
		t.Fatalf("level = %d", g.Level())
	}
	for i := 0; i < 10; i++ {
		g.NextLevel()
	}
	if g.Level() != 4 || g.Stage.Name != "rotate" {
		t.Fatalf("level = %d %q", g.Level(), g.Stage.Name)
	}
	g.PrevLevel()
	if g.Level() != 3 {
		t.Fatalf("level = %d", g.Level())
	}
}

func TestTotalScoreAndRating(t *testing.T) {
	cases := []struct {
		name   string
		player int
		ai     int
		total  int
		rating int
	}{
		{"lost everywhere", 0, 5, -25, 0},
		{"close", 5, 4, 5, 0},
		{"comfortable", 5, 2, 15, 2},
		{"shutout", 5, 0, 25, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := CreateGame(nil)
			for i := 0; i < g.Levels().Len(); i++ {
				g.Levels().RecordResult(i, c.player, c.ai)
			}
			if got := g.TotalScore(); got != c.total {
				t.Fatalf("total = %d, want %d", got, c.total)
			}
			if got := g.Rating(); got != c.rating {
				t.Fatalf("rating = %d, want %d", got, c.rating)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	for c := CommandPause; c <= CommandLowerField; c++ {
		got, ok := ParseCommand(c.String())
		if !ok || got != c {
			t.Fatalf("%q parsed as %v %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseCommand("jump"); ok {
		t.Fatalf("unknown command accepted")
	}
	if Command(200).String() != "unknown" {
		t.Fatalf("out of range command has a name")
	}
}

func TestApplyCommands(t *testing.T) {
	g := CreateGame(nil)

	g.Apply(CommandPause)
	if !g.Paused() {
		t.Fatalf("pause ignored")
	}
	g.Apply(CommandResume)
	if g.Paused() {
		t.Fatalf("resume ignored")
	}

	g.Apply(CommandNextLevel)
	g.Apply(CommandNextLevel)
	g.Apply(CommandPrevLevel)
	if g.Level() != 1 || g.Stage.Name != "bounce" {
		t.Fatalf("level %d %q", g.Level(), g.Stage.Name)
	}

	g.Apply(CommandEdit)
	if g.Sequence().ID != SequenceEdit {
		t.Fatalf("sequence = %s", g.Sequence().ID)
	}
	g.Apply(CommandPlay)
	if g.Sequence().ID != SequencePlay || g.Mode() != ModeGame {
		t.Fatalf("sequence = %s", g.Sequence().ID)
	}

	g.Levels().RecordResult(0, 3, 1)
	g.Apply(CommandNewGame)
	if g.Level() != 0 || g.Sequence().ID != SequenceIntro || g.TotalScore() != 0 {
		t.Fatalf("new game: level %d %s total %d", g.Level(), g.Sequence().ID, g.TotalScore())
	}

	before := g.Snapshot()
	g.Apply(CommandNone)
	if g.Snapshot() != before {
		t.Fatalf("none changed the game")
	}
}
