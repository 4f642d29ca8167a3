package pong

import "pong3d/internal/fixed"

const (
	// TimeRes is the number of sub-tick time units in one tick.
	TimeRes = 32

	// MaxCollisionIterationsPerTick bounds collision resolution so that a
	// degenerate stage cannot loop forever. Anything left over after the last
	// iteration is integrated in a straight line, which can leave the ball
	// slightly inside a surface for one tick.
	MaxCollisionIterationsPerTick = 5

	// Forward boost when the player lunges into the ball. The odd 246 is how
	// the game has always played.
	lungeBoost     = 4 * 246
	spinNudge      = 2 * fixed.One
	cushion        = 2 * fixed.One
	aiReturnBoost  = 2 * fixed.One
	spinThresholdX = 20
	spinThresholdY = 15

	floorKickHeight = 20
	floorKick       = 6
)

// Ball is the single ball in play.
type Ball struct {
	Pos fixed.Vec3
	Vel fixed.Vec3

	// State at the start of the last update; the score flourish is drawn from these.
	LastPos fixed.Vec3
	LastVel fixed.Vec3

	Size  fixed.Fixed
	Speed fixed.Fixed
}

// Setup serves the ball from the middle of the stage toward the AI.
func (b *Ball) Setup(s *Stage) {
	b.Size = s.BallSize
	b.Speed = s.BallSpeed
	b.Pos = fixed.Vec3{X: fixed.FromInt(50), Y: fixed.FromInt(25), Z: fixed.Quo(s.Depth, 2)}
	b.Vel = fixed.Vec3{X: fixed.FromInt(2), Y: fixed.FromInt(2), Z: b.Speed}
	b.LastPos = b.Pos
	b.LastVel = b.Vel
}

// hit is the earliest collision found during one pass over the surfaces.
type hit struct {
	found bool
	time  int64
	vel   fixed.Vec3
	kind  CollisionKind
}

// offer records a candidate. Walls only replace on a strictly earlier time;
// paddles also win exact ties, so a paddle beats a wall at the same instant.
func (h *hit) offer(t int64, vel fixed.Vec3, kind CollisionKind, winTies bool) {
	if h.found && !(t < h.time || (winTies && t == h.time)) {
		return
	}
	h.found = true
	h.time = t
	h.vel = vel
	h.kind = kind
}

// crossTime converts a distance to a surface into sub-tick time. speed is the
// velocity component heading into the surface; a non-positive speed means the
// ball is not approaching and nothing is crossed.
func crossTime(dist, speed fixed.Fixed, timeLeft int64) (int64, bool) {
	if speed <= 0 {
		return 0, false
	}
	t, _ := fixed.MulDiv(dist, TimeRes, int64(speed))
	return fixed.Clamp(int64(t), 0, timeLeft), true
}

// Update advances the ball one tick, resolving every wall and paddle collision
// inside the tick in time order, then applies gravity. The kind of the last
// collision resolved is returned; back and front wall hits add a point to the
// paddle that scored.
func (b *Ball) Update(p1, p2 *Paddle, s *Stage) CollisionKind {
	b.LastPos = b.Pos
	b.LastVel = b.Vel

	timeLeft := int64(TimeRes)
	kind := CollisionNone

	for i := 0; i < MaxCollisionIterationsPerTick; i++ {
		next := b.Pos.Add(b.Vel.MulDiv(timeLeft, TimeRes))
		h := b.firstHit(next, p1, p2, s, timeLeft)
		if !h.found {
			break
		}

		b.Pos = b.Pos.Add(b.Vel.MulDiv(h.time, TimeRes))
		b.Vel = h.vel
		timeLeft -= h.time
		kind = h.kind

		if timeLeft <= 0 {
			break
		}
	}

	if timeLeft > 0 {
		b.Pos = b.Pos.Add(b.Vel.MulDiv(timeLeft, TimeRes))
	}

	b.Vel.Y += s.GravityY
	if b.Pos.Y+b.Size+floorKickHeight > s.Window.Bottom && b.Vel.Y == 0 {
		b.Vel.Y -= floorKick
	}
	b.Vel.X += s.GravityX

	switch kind {
	case CollisionBackWall:
		p1.Score++
	case CollisionFrontWall:
		p2.Score++
	}
	return kind
}

// firstHit evaluates every surface against the straight path from Pos to next.
func (b *Ball) firstHit(next fixed.Vec3, p1, p2 *Paddle, s *Stage, timeLeft int64) hit {
	var h hit
	pos, vel, size, w := b.Pos, b.Vel, b.Size, s.Window

	if next.X-size <= w.Left {
		if t, ok := crossTime(pos.X-size-w.Left, -vel.X, timeLeft); ok {
			h.offer(t, fixed.Vec3{X: -vel.X, Y: vel.Y, Z: vel.Z}, CollisionWall, false)
		}
	}
	if next.X+size >= w.Right {
		if t, ok := crossTime(w.Right-(pos.X+size), vel.X, timeLeft); ok {
			h.offer(t, fixed.Vec3{X: -vel.X, Y: vel.Y, Z: vel.Z}, CollisionWall, false)
		}
	}
	if next.Y-size <= w.Top {
		if t, ok := crossTime(pos.Y-size-w.Top, -vel.Y, timeLeft); ok {
			h.offer(t, fixed.Vec3{X: vel.X, Y: -vel.Y, Z: vel.Z}, CollisionWall, false)
		}
	}
	if next.Y+size >= w.Bottom {
		if t, ok := crossTime(w.Bottom-(pos.Y+size), vel.Y, timeLeft); ok {
			h.offer(t, fixed.Vec3{X: vel.X, Y: -vel.Y, Z: vel.Z}, CollisionWall, false)
		}
	}
	if next.Z <= 0 {
		if t, ok := crossTime(pos.Z, -vel.Z, timeLeft); ok {
			h.offer(t, fixed.Vec3{X: vel.X, Y: vel.Y, Z: b.Speed}, CollisionFrontWall, false)
		}
	}
	if next.Z >= s.Depth {
		if t, ok := crossTime(s.Depth-pos.Z, vel.Z, timeLeft); ok {
			h.offer(t, fixed.Vec3{X: vel.X, Y: vel.Y, Z: -b.Speed}, CollisionBackWall, false)
		}
	}

	// Paddle faces are tested against the start position only. The player face
	// is as thick as the distance it moved this tick.
	thick := fixed.Abs(p1.Delta.Z)
	if vel.Z < 0 && pos.Z >= p1.Pos.Z-thick && next.Z <= p1.Pos.Z+thick && p1.contains(pos) {
		if t, ok := crossTime(pos.Z-p1.Pos.Z, -vel.Z, timeLeft); ok {
			h.offer(t, playerBounce(vel, next, p1), CollisionPlayerPaddle, true)
		}
	}
	if vel.Z > 0 && pos.Z <= p2.Pos.Z && next.Z >= p2.Pos.Z && p2.contains(pos) {
		if t, ok := crossTime(p2.Pos.Z-pos.Z, vel.Z, timeLeft); ok {
			h.offer(t, aiBounce(vel, p1), CollisionAIPaddle, true)
		}
	}
	return h
}

// playerBounce reflects off the player paddle. A lunge adds speed and angles the
// ball by where it struck; a retreating paddle cushions it.
func playerBounce(vel, next fixed.Vec3, p *Paddle) fixed.Vec3 {
	out := fixed.Vec3{X: vel.X, Y: vel.Y, Z: -vel.Z}

	if p.Delta.Z > 0 {
		out.Z += lungeBoost

		dx := next.X - p.Pos.X
		dy := next.Y - p.Pos.Y
		if dx > spinThresholdX {
			out.X += spinNudge
		}
		if dx < -spinThresholdX {
			out.X -= spinNudge
		}
		if dy > spinThresholdY {
			out.Y += spinNudge
		}
		if dy < -spinThresholdY {
			out.Y -= spinNudge
		}
	}
	if p.Delta.Z < 0 {
		out.Z -= cushion
	}
	return out
}

// aiBounce reflects off the AI paddle. The extra term follows the *player*
// paddle's motion, not the AI's.
func aiBounce(vel fixed.Vec3, player *Paddle) fixed.Vec3 {
	out := fixed.Vec3{X: vel.X, Y: vel.Y, Z: -vel.Z}
	if player.Delta.Z != 0 {
		out.Z += aiReturnBoost
	}
	return out
}
