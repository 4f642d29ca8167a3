package pong

import "pong3d/internal/fixed"

// Input is the pointer state sampled by the driver right before a tick.
type Input struct {
	// Pointer position in 0..100 arena space.
	X, Y fixed.Fixed
	// Down is true while the pointer is over the play area and should steer the paddle.
	Down bool
	// Held is the lunge trigger.
	Held bool
}

// PointerFromScreen scales a window pixel position into arena space.
func PointerFromScreen(px, py, width, height int) (x, y fixed.Fixed) {
	if width > 0 {
		x = fixed.FromInt(fixed.FloorDiv(px*100, width))
	}
	if height > 0 {
		y = fixed.FromInt(fixed.FloorDiv(py*100, height))
	}
	return x, y
}

type PaddleView struct {
	Pos        fixed.Vec3
	HalfWidth  fixed.Fixed
	HalfHeight fixed.Fixed
	Score      int
}

type BallView struct {
	Pos     fixed.Vec3
	LastPos fixed.Vec3
	LastVel fixed.Vec3
	Size    fixed.Fixed
}

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	Tick       uint64
	Sequence   SequenceID
	Timer0     int
	Timer1     int
	Step       int
	Brightness int
	Mode       Mode
	Paused     bool

	Level     int
	LevelName string
	Window    Rect
	Depth     fixed.Fixed

	Ball      BallView
	Paddle1   PaddleView
	Paddle2   PaddleView
	Collision CollisionKind

	// Stage property selected in the editor and its current value.
	EditField EditField
	EditValue fixed.Fixed
}

func paddleView(p *Paddle) PaddleView {
	return PaddleView{Pos: p.Pos, HalfWidth: p.HalfWidth, HalfHeight: p.HalfHeight, Score: p.Score}
}
