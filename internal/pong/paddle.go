package pong

import "pong3d/internal/fixed"

const (
	lungeThreshold = 4 * fixed.One
	lungeStart     = 6 * fixed.One
	lungeAccel     = 2 * fixed.One

	aiLeadZ    = 30 * fixed.One
	aiDeadZone = 5 * fixed.One
	aiAccel    = 4 * fixed.One
)

// Paddle is one of the two bats. Paddle1 is steered by the pointer, Paddle2 by the AI.
type Paddle struct {
	// Center of the paddle face.
	Pos fixed.Vec3

	// Movement during the last update, used for spin and face thickness.
	Delta fixed.Vec3

	HalfWidth  fixed.Fixed
	HalfHeight fixed.Fixed

	TargetZ  fixed.Fixed
	DefaultZ fixed.Fixed
	ForwardZ fixed.Fixed

	// AI only.
	Vel fixed.Vec3

	Score int
}

// SetupPlayer places the human paddle near the front wall.
func (p *Paddle) SetupPlayer(s *Stage) {
	p.HalfWidth = s.PaddleHalfWidth
	p.HalfHeight = s.PaddleHalfHeight
	p.Delta = fixed.Zero
	p.Vel = fixed.Zero
	p.Pos = fixed.V(25, 50, 10)
	p.clip(s.Window)

	p.DefaultZ = p.Pos.Z
	p.TargetZ = p.Pos.Z
	p.ForwardZ = fixed.FromInt(40)
	p.Score = 0
}

// SetupAI places the computer paddle near the back wall.
func (p *Paddle) SetupAI(s *Stage) {
	p.HalfWidth = s.PaddleHalfWidth
	p.HalfHeight = s.PaddleHalfHeight
	p.Pos = fixed.Vec3{X: fixed.FromInt(75), Y: fixed.FromInt(50), Z: s.Depth - fixed.FromInt(10)}

	p.DefaultZ = p.Pos.Z
	p.TargetZ = p.Pos.Z
	p.ForwardZ = s.Depth - fixed.FromInt(40)

	p.Delta = fixed.Zero
	p.Vel = fixed.Zero
	p.clip(s.Window)
	p.Score = 0
}

// clip keeps the paddle rectangle inside the window. On a window narrower than
// the paddle the far edge wins.
func (p *Paddle) clip(w Rect) {
	p.Pos.X = max(p.Pos.X, w.Left+p.HalfWidth)
	p.Pos.Y = max(p.Pos.Y, w.Top+p.HalfHeight)
	p.Pos.X = min(p.Pos.X, w.Right-p.HalfWidth)
	p.Pos.Y = min(p.Pos.Y, w.Bottom-p.HalfHeight)
}

// UpdatePlayer applies one tick of pointer input. Holding the button lunges the
// paddle toward ForwardZ; it snaps forward and eases back.
func (p *Paddle) UpdatePlayer(in Input, s *Stage) {
	last := p.Pos

	if in.Held {
		p.TargetZ = p.ForwardZ
	} else {
		p.TargetZ = p.DefaultZ
	}

	if p.Pos.Z < p.TargetZ {
		if p.Delta.Z < lungeThreshold {
			p.Delta.Z = lungeStart
		}
		p.Pos.Z += p.Delta.Z + lungeAccel
		if p.Pos.Z > p.TargetZ {
			p.Pos.Z = p.TargetZ
		}
	}
	if p.Pos.Z > p.TargetZ {
		p.Pos.Z += fixed.Quo(p.TargetZ-p.Pos.Z, 4)
	}

	if in.Down {
		p.Pos.X = in.X
		p.Pos.Y = in.Y
		p.clip(s.Window)
	}

	p.Delta = p.Pos.Sub(last)
}

// UpdateAI chases the ball while it heads toward the AI (or is about to be hit
// by the player), otherwise stops and optionally drifts back to the center.
func (p *Paddle) UpdateAI(ball *Ball, s *Stage, ai AI) {
	last := p.Pos

	if ball.Vel.Z > 0 || (ball.Vel.Z < 0 && ball.Pos.Z < aiLeadZ) {
		p.Vel.X += seek(p.Pos.X, ball.Pos.X)
		p.Vel.Y += seek(p.Pos.Y, ball.Pos.Y)

		p.Vel.X = fixed.Clamp(p.Vel.X, -ai.Speed, ai.Speed)
		p.Vel.Y = fixed.Clamp(p.Vel.Y, -ai.Speed, ai.Speed)
	} else if ball.Pos.Z < fixed.Quo(s.Depth, 2) {
		p.Vel.X = 0
		p.Vel.Y = 0
		if ai.Recenter {
			p.Pos.X += fixed.Quo(ArenaCenter-p.Pos.X, 4)
			p.Pos.Y += fixed.Quo(ArenaCenter-p.Pos.Y, 4)
		}
	}

	// Friction
	p.Vel.X -= fixed.Fixed(fixed.Sign(p.Vel.X))
	p.Vel.Y -= fixed.Fixed(fixed.Sign(p.Vel.Y))

	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
	p.clip(s.Window)

	p.Delta = p.Pos.Sub(last)
}

func seek(from, to fixed.Fixed) fixed.Fixed {
	if fixed.Abs(from-to) <= aiDeadZone {
		return 0
	}
	switch {
	case from < to:
		return aiAccel
	case from > to:
		return -aiAccel
	}
	return 0
}

// contains reports whether x/y lies on the paddle face.
func (p *Paddle) contains(pos fixed.Vec3) bool {
	return pos.X >= p.Pos.X-p.HalfWidth &&
		pos.X <= p.Pos.X+p.HalfWidth &&
		pos.Y >= p.Pos.Y-p.HalfHeight &&
		pos.Y <= p.Pos.Y+p.HalfHeight
}
