package pong

import "log/slog"

// SequenceID names a phase of the game.
type SequenceID int

const (
	SequenceIntro SequenceID = iota
	SequenceNewStage
	SequenceBallRelease
	SequencePlay
	SequenceScore
	SequenceLose
	SequenceWin
	SequenceEdit
)

func (id SequenceID) String() string {
	switch id {
	case SequenceIntro:
		return "intro"
	case SequenceNewStage:
		return "new_stage"
	case SequenceBallRelease:
		return "ball_release"
	case SequencePlay:
		return "play"
	case SequenceScore:
		return "score"
	case SequenceLose:
		return "lose"
	case SequenceWin:
		return "win"
	case SequenceEdit:
		return "edit"
	default:
		return "unknown"
	}
}

const (
	WinningScore = 5

	fadeSteps     = 100
	fadeOutStep   = 5
	releaseBeat   = 25
	releaseCount  = 3
	scoreSteps    = 20
	winHoldTicks  = 1000
	winRowTicks   = 30
	maxBrightness = 100
)

// Sequence is the active phase plus its local timers. Timers only drive fades
// and text; the renderer reads them from the snapshot.
type Sequence struct {
	ID     SequenceID
	Timer0 int
	Timer1 int

	// Score only.
	Step int

	// NewStage only.
	NextLevel int
}

func IntroSequence() Sequence       { return Sequence{ID: SequenceIntro} }
func BallReleaseSequence() Sequence { return Sequence{ID: SequenceBallRelease} }
func PlaySequence() Sequence        { return Sequence{ID: SequencePlay} }
func ScoreSequence() Sequence       { return Sequence{ID: SequenceScore} }
func LoseSequence() Sequence        { return Sequence{ID: SequenceLose} }
func WinSequence() Sequence         { return Sequence{ID: SequenceWin} }
func EditSequence() Sequence        { return Sequence{ID: SequenceEdit} }

// NewStageSequence fades into level next. Out of range levels wrap to the first.
func NewStageSequence(next int) Sequence {
	return Sequence{ID: SequenceNewStage, NextLevel: next}
}

// SetSequence leaves the active sequence and enters s.
func (g *Game) SetSequence(s Sequence) {
	prev := g.seq.ID
	g.leave()
	g.seq = s
	g.enter()
	slog.Debug("sequence transition", slog.String("from", prev.String()), slog.String("to", s.ID.String()))
}

func (g *Game) enter() {
	s := &g.seq
	s.Timer0 = 0
	s.Timer1 = 0
	s.Step = 0

	switch s.ID {
	case SequenceNewStage:
		s.NextLevel = g.levels.Index(s.NextLevel)
	case SequencePlay, SequenceEdit:
		g.brightness = maxBrightness
	}
}

func (g *Game) leave() {}

// update runs one tick of the active sequence.
func (g *Game) update() {
	switch g.seq.ID {
	case SequenceIntro:
		g.updateIntro()
	case SequenceNewStage:
		g.updateNewStage()
	case SequenceBallRelease:
		g.updateBallRelease()
	case SequencePlay:
		g.updatePlay()
	case SequenceScore:
		g.updateScore()
	case SequenceLose:
		g.updateLose()
	case SequenceWin:
		g.updateWin()
	case SequenceEdit:
	}
}

func (g *Game) fadeIn() {
	if g.brightness < maxBrightness {
		g.brightness++
	}
}

func (g *Game) fadeOut() {
	if g.brightness > 0 {
		g.brightness = max(0, g.brightness-fadeOutStep)
	}
}

// Title fades in over a black arena, then the arena fades in under it.
func (g *Game) updateIntro() {
	s := &g.seq
	if s.Timer1 == 0 {
		g.brightness = 0
		s.Timer0++
		if s.Timer0 >= fadeSteps {
			s.Timer1 = 1
		}
		return
	}
	g.fadeIn()
	s.Timer0 -= 2
	if s.Timer0 <= 0 {
		g.SetSequence(BallReleaseSequence())
	}
}

// Fade out, switch levels at full black, fade back in.
func (g *Game) updateNewStage() {
	s := &g.seq
	if s.Timer1 == 0 {
		g.fadeOut()
		s.Timer0 += 2
		if s.Timer0 >= fadeSteps {
			s.Timer1 = 1
			g.SetLevel(s.NextLevel)
		}
		return
	}
	g.fadeIn()
	s.Timer0 -= 2
	if s.Timer0 <= 0 {
		g.SetSequence(BallReleaseSequence())
	}
}

// Three beat countdown before the ball moves.
func (g *Game) updateBallRelease() {
	s := &g.seq
	g.fadeIn()
	s.Timer0++
	if s.Timer0 > releaseBeat {
		s.Timer1++
		s.Timer0 = 0
	}
	if s.Timer1 >= releaseCount {
		g.SetSequence(PlaySequence())
	}
}

func (g *Game) updatePlay() {
	g.Paddle1.UpdatePlayer(g.input, &g.Stage)
	g.Paddle2.UpdateAI(&g.Ball, &g.Stage, g.AI)

	g.lastCollision = g.Ball.Update(&g.Paddle1, &g.Paddle2, &g.Stage)
	if g.lastCollision.Scores() {
		g.SetSequence(ScoreSequence())
	}
}

// Hold the flourish, record the result, then decide who moves on.
func (g *Game) updateScore() {
	s := &g.seq
	s.Step++
	if s.Step < scoreSteps {
		return
	}

	g.levels.RecordResult(g.curLevel, g.Paddle1.Score, g.Paddle2.Score)

	switch {
	case g.Paddle1.Score >= WinningScore:
		if g.curLevel == g.levels.Last() {
			g.SetSequence(WinSequence())
		} else {
			g.SetSequence(NewStageSequence(g.curLevel + 1))
		}
	case g.Paddle2.Score >= WinningScore:
		g.SetSequence(LoseSequence())
	default:
		g.SetSequence(PlaySequence())
	}
}

func (g *Game) updateLose() {
	s := &g.seq
	if s.Timer1 == 0 {
		g.fadeOut()
		s.Timer0 += 2
		if s.Timer0 >= fadeSteps {
			s.Timer1 = 1
			g.NewGame()
		}
		return
	}
	s.Timer0 -= 2
	if s.Timer0 <= 0 {
		g.SetSequence(IntroSequence())
	}
}

// Fade out, show the per-level results until the player clicks or time runs
// out, then count down one row per level and start over.
func (g *Game) updateWin() {
	s := &g.seq
	switch s.Timer1 {
	case 0:
		g.fadeOut()
		if g.brightness <= 0 {
			s.Timer0 = 0
			s.Timer1 = 1
		}
	case 1:
		s.Timer0++
		if s.Timer0 >= winHoldTicks || g.input.Held {
			s.Timer1 = 2
			s.Timer0 = g.levels.Last() * winRowTicks
		}
	case 2:
		s.Timer0--
		if s.Timer0 <= 0 {
			g.NewGame()
			g.SetSequence(IntroSequence())
		}
	}
}
