// Package pong is the deterministic simulation of 3D pong: a ball bouncing
// down a rectangular tunnel between the player's paddle at the front and the
// computer's paddle at the back.
//
// A Game is advanced one fixed tick at a time by its driver, which samples
// input right before each Tick and reads a Snapshot afterwards to draw.
package pong

import (
	"log/slog"

	"pong3d/internal/levels"
)

// Mode selects between playing and editing stages.
type Mode int

const (
	ModeGame Mode = iota
	ModeEdit
)

// Game owns all simulation state for one player.
type Game struct {
	Stage   Stage
	Ball    Ball
	Paddle1 Paddle
	Paddle2 Paddle
	AI      AI

	levels   *levels.Catalog
	curLevel int

	seq        Sequence
	brightness int
	mode       Mode
	paused     bool
	editField  EditField

	input         Input
	ticks         uint64
	lastCollision CollisionKind
}

// CreateGame sets up the first level and starts at the intro. A nil catalog
// uses the built-in stages.
func CreateGame(c *levels.Catalog) *Game {
	if c == nil {
		c = levels.DefaultCatalog()
	}
	g := &Game{
		levels:     c,
		brightness: maxBrightness,
	}
	g.SetLevel(0)
	g.seq = IntroSequence()
	g.enter()
	return g
}

// SetLevel loads stage level, resetting ball, paddles and scores.
// An out of range level loads the first stage.
func (g *Game) SetLevel(level int) {
	g.curLevel = g.levels.Index(level)
	desc := g.levels.At(g.curLevel)

	g.Stage = NewStage(desc)
	g.Ball.Setup(&g.Stage)
	g.AI = NewAI(&g.Stage)
	g.Paddle1.SetupPlayer(&g.Stage)
	g.Paddle2.SetupAI(&g.Stage)

	slog.Debug("level loaded", slog.Int("level", g.curLevel), slog.String("name", desc.Name))
}

// NewGame restarts from the first level and forgets recorded results.
func (g *Game) NewGame() {
	g.levels.ClearResults()
	g.SetLevel(0)
}

// SetInput stores the pointer state for the next tick.
func (g *Game) SetInput(in Input) { g.input = in }

// Tick advances the active sequence by one step. Paused games do not move.
func (g *Game) Tick() {
	if g.paused {
		return
	}
	g.ticks++
	g.lastCollision = CollisionNone
	g.update()
}

// SetMode switches between the editor and the game. Editing freezes the
// simulation; returning to the game resumes play on the current level.
func (g *Game) SetMode(m Mode) {
	g.mode = m
	switch m {
	case ModeEdit:
		g.SetSequence(EditSequence())
	default:
		g.SetSequence(PlaySequence())
	}
}

func (g *Game) SetPaused(p bool) { g.paused = p }

func (g *Game) Paused() bool                 { return g.paused }
func (g *Game) Mode() Mode                   { return g.mode }
func (g *Game) Sequence() Sequence           { return g.seq }
func (g *Game) Brightness() int              { return g.brightness }
func (g *Game) Level() int                   { return g.curLevel }
func (g *Game) Levels() *levels.Catalog      { return g.levels }
func (g *Game) Ticks() uint64                { return g.ticks }
func (g *Game) LastCollision() CollisionKind { return g.lastCollision }

// EditLevel replaces the current stage and reloads it.
func (g *Game) EditLevel(d levels.Descriptor) error {
	if err := g.levels.Replace(g.curLevel, d); err != nil {
		return err
	}
	g.SetLevel(g.curLevel)
	return nil
}

// AddLevel appends a new stage and makes it current.
func (g *Game) AddLevel() {
	g.SetLevel(g.levels.Add())
}

// DeleteLevel removes the current stage. The last stage cannot be removed.
func (g *Game) DeleteLevel() error {
	next, err := g.levels.Delete(g.curLevel)
	if err != nil {
		return err
	}
	g.SetLevel(next)
	return nil
}

func (g *Game) PrevLevel() {
	if g.curLevel > 0 {
		g.SetLevel(g.curLevel - 1)
	}
}

func (g *Game) NextLevel() {
	if g.curLevel < g.levels.Last() {
		g.SetLevel(g.curLevel + 1)
	}
}

// TotalScore sums player minus AI points over every recorded level.
func (g *Game) TotalScore() int {
	total := 0
	for _, d := range g.levels.Stages() {
		total += d.PlayerScore - d.AIScore
	}
	return total
}

// Rating grades TotalScore from 0 to 4 relative to the number of levels.
func (g *Game) Rating() int {
	n := g.levels.Len()
	total := g.TotalScore()
	for r := 4; r > 0; r-- {
		if total >= (r+1)*n {
			return r
		}
	}
	return 0
}

// Snapshot captures the state the renderer needs.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.ticks,
		Sequence:   g.seq.ID,
		Timer0:     g.seq.Timer0,
		Timer1:     g.seq.Timer1,
		Step:       g.seq.Step,
		Brightness: g.brightness,
		Mode:       g.mode,
		Paused:     g.paused,
		Level:      g.curLevel,
		LevelName:  g.Stage.Name,
		Window:     g.Stage.Window,
		Depth:      g.Stage.Depth,
		Ball: BallView{
			Pos:     g.Ball.Pos,
			LastPos: g.Ball.LastPos,
			LastVel: g.Ball.LastVel,
			Size:    g.Ball.Size,
		},
		Paddle1:   paddleView(&g.Paddle1),
		Paddle2:   paddleView(&g.Paddle2),
		Collision: g.lastCollision,
		EditField: g.editField,
		EditValue: g.editValue(),
	}
}
