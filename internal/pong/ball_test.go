package pong

import (
	"testing"

	"pong3d/internal/fixed"
	"pong3d/internal/levels"
)

func TestBallStraightLineWithoutCollision(t *testing.T) {
	s, b, p1, p2 := arena(t)
	b.Pos = vec(12800, 6400, 20480)
	b.Vel = vec(512, 512, 768)

	kind := b.Update(p1, p2, &s)
	if kind != CollisionNone {
		t.Fatalf("expected no collision, got %s", kind)
	}
	if want := vec(13312, 6912, 21248); b.Pos != want {
		t.Fatalf("pos = %v, want %v", b.Pos, want)
	}
	if b.Vel != vec(512, 512, 768) {
		t.Fatalf("velocity changed without gravity: %v", b.Vel)
	}
	if b.LastPos != vec(12800, 6400, 20480) || b.LastVel != vec(512, 512, 768) {
		t.Fatalf("start of tick snapshot wrong: %v %v", b.LastPos, b.LastVel)
	}
	if p1.Score != 0 || p2.Score != 0 {
		t.Fatalf("no score expected")
	}
}

func TestBallFrontWallScoresForAI(t *testing.T) {
	s, b, p1, p2 := arena(t)
	b.Pos = vec(12800, 12800, 256)
	b.Vel = vec(0, 0, -768)

	kind := b.Update(p1, p2, &s)
	if kind != CollisionFrontWall {
		t.Fatalf("expected front wall, got %s", kind)
	}
	if p2.Score != 1 || p1.Score != 0 {
		t.Fatalf("scores p1=%d p2=%d", p1.Score, p2.Score)
	}
	if b.Vel.Z != s.BallSpeed {
		t.Fatalf("vel.z = %d, want ball speed %d", b.Vel.Z, s.BallSpeed)
	}
	// 10 time units to the wall (16 left over from flooring), 22 back out.
	if b.Pos.Z != 16+528 {
		t.Fatalf("pos.z = %d", b.Pos.Z)
	}
}

func TestBallBackWallScoresForPlayer(t *testing.T) {
	s, b, p1, p2 := arena(t)
	b.Pos = vec(2560, 12800, s.Depth-256)
	b.Vel = vec(0, 0, 768)

	kind := b.Update(p1, p2, &s)
	if kind != CollisionBackWall {
		t.Fatalf("expected back wall, got %s", kind)
	}
	if p1.Score != 1 || p2.Score != 0 {
		t.Fatalf("scores p1=%d p2=%d", p1.Score, p2.Score)
	}
	if b.Vel.Z != -s.BallSpeed {
		t.Fatalf("vel.z = %d", b.Vel.Z)
	}
	if b.Pos.Z != 40944-528 {
		t.Fatalf("pos.z = %d", b.Pos.Z)
	}
}

func TestBallWallReflection(t *testing.T) {
	right := fixed.FromInt(99)
	cases := []struct {
		name string
		pos  fixed.Vec3
		vel  fixed.Vec3
		want fixed.Vec3
	}{
		{"left", vec(512, 12800, 20480), vec(-768, 256, 256), vec(768, 256, 256)},
		{"right", vec(right-512, 12800, 20480), vec(768, 256, 256), vec(-768, 256, 256)},
		{"top", vec(12800, 512, 20480), vec(256, -768, 256), vec(256, 768, 256)},
		{"bottom", vec(12800, right-512, 20480), vec(256, 768, 256), vec(256, -768, 256)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, b, p1, p2 := arena(t)
			b.Pos = c.pos
			b.Vel = c.vel
			if kind := b.Update(p1, p2, &s); kind != CollisionWall {
				t.Fatalf("expected wall, got %s", kind)
			}
			if b.Vel != c.want {
				t.Fatalf("vel = %v, want %v", b.Vel, c.want)
			}
			if p1.Score != 0 || p2.Score != 0 {
				t.Fatalf("walls never score")
			}
		})
	}
}

func TestBallLeftWallPosition(t *testing.T) {
	s, b, p1, p2 := arena(t)
	b.Pos = vec(512, 12800, 20480)
	b.Vel = vec(-768, 256, 256)
	b.Update(p1, p2, &s)
	if want := vec(800, 13056, 20736); b.Pos != want {
		t.Fatalf("pos = %v, want %v", b.Pos, want)
	}
}

func TestBallZeroVelocityNeverDivides(t *testing.T) {
	s, b, p1, p2 := arena(t)
	// Overlapping the left and front walls with no velocity at all.
	b.Pos = vec(100, 12800, 0)
	b.Vel = fixed.Zero

	if kind := b.Update(p1, p2, &s); kind != CollisionNone {
		t.Fatalf("expected no collision, got %s", kind)
	}
	if b.Pos != vec(100, 12800, 0) {
		t.Fatalf("ball moved: %v", b.Pos)
	}
}

func TestPlayerPaddleBounce(t *testing.T) {
	cases := []struct {
		name   string
		deltaZ fixed.Fixed
		offset fixed.Vec3
		want   fixed.Vec3
	}{
		// 4*246 rather than 4*256 is deliberate, see lungeBoost.
		{"lunge center", 2560, fixed.Zero, vec(0, 0, 768+984)},
		{"lunge off center", 2560, vec(1000, -1000, 0), vec(512, -512, 768+984)},
		{"lunge inside spin dead zone", 2560, vec(20, -15, 0), vec(0, 0, 768+984)},
		{"still", 0, vec(1000, 1000, 0), vec(0, 0, 768)},
		{"retreat", -1024, fixed.Zero, vec(0, 0, 768-512)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, b, p1, p2 := arena(t)
			p1.Pos = vec(12800, 12800, 2560)
			p1.Delta = vec(0, 0, c.deltaZ)
			b.Pos = vec(12800+c.offset.X, 12800+c.offset.Y, 3328)
			b.Vel = vec(0, 0, -768)

			if kind := b.Update(p1, p2, &s); kind != CollisionPlayerPaddle {
				t.Fatalf("expected player paddle, got %s", kind)
			}
			if b.Vel != c.want {
				t.Fatalf("vel = %v, want %v", b.Vel, c.want)
			}
			if b.Pos.Z != 2560 {
				t.Fatalf("ball should stop on the paddle face, z = %d", b.Pos.Z)
			}
		})
	}
}

func TestPlayerPaddleMissesOutsideFace(t *testing.T) {
	s, b, p1, p2 := arena(t)
	p1.Pos = vec(12800, 12800, 2560)
	b.Pos = vec(12800+p1.HalfWidth+1, 12800, 3328)
	b.Vel = vec(0, 0, -768)

	if kind := b.Update(p1, p2, &s); kind != CollisionNone {
		t.Fatalf("expected a miss, got %s", kind)
	}
}

func TestAIPaddleBounceFollowsPlayerMotion(t *testing.T) {
	cases := []struct {
		name    string
		playerZ fixed.Fixed
		aiZ     fixed.Fixed
		want    fixed.Fixed
	}{
		{"player still", 0, 0, -768},
		{"player lunging", 512, 0, -768 + 512},
		{"player retreating", -512, 0, -768 + 512},
		{"only ai moving", 0, 4096, -768},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, b, p1, p2 := arena(t)
			p1.Delta = vec(0, 0, c.playerZ)
			p2.Pos = vec(19200, 12800, 38400)
			p2.Delta = vec(0, 0, c.aiZ)
			b.Pos = vec(19200, 12800, 37632)
			b.Vel = vec(0, 0, 768)

			if kind := b.Update(p1, p2, &s); kind != CollisionAIPaddle {
				t.Fatalf("expected ai paddle, got %s", kind)
			}
			if b.Vel.Z != c.want {
				t.Fatalf("vel.z = %d, want %d", b.Vel.Z, c.want)
			}
		})
	}
}

func TestPaddleWinsExactTieWithWall(t *testing.T) {
	s, b, p1, p2 := arena(t)
	p1.Pos = vec(5120, 12800, 2560)
	p1.Delta = fixed.Zero
	b.Pos = vec(512, 12800, 2816)
	b.Vel = vec(-768, 0, -768)

	next := b.Pos.Add(b.Vel)
	h := b.firstHit(next, p1, p2, &s, TimeRes)
	if !h.found || h.time != 10 {
		t.Fatalf("expected a hit at t=10, got %+v", h)
	}
	if h.kind != CollisionPlayerPaddle {
		t.Fatalf("paddle should win the tie, got %s", h.kind)
	}

	// The wall is resolved right after in the same tick and is reported last.
	if kind := b.Update(p1, p2, &s); kind != CollisionWall {
		t.Fatalf("last collision = %s", kind)
	}
	if b.Vel != vec(768, 0, 768) {
		t.Fatalf("vel = %v", b.Vel)
	}
}

func TestFirstWallWinsExactTie(t *testing.T) {
	s, b, p1, p2 := arena(t)
	b.Pos = vec(512, 512, 20480)
	b.Vel = vec(-768, -768, 0)

	h := b.firstHit(b.Pos.Add(b.Vel), p1, p2, &s, TimeRes)
	if h.kind != CollisionWall || h.time != 10 {
		t.Fatalf("unexpected hit %+v", h)
	}
	if h.vel != vec(768, -768, 0) {
		t.Fatalf("left wall should be kept on a tie, vel = %v", h.vel)
	}

	b.Update(p1, p2, &s)
	if b.Vel != vec(768, 768, 0) {
		t.Fatalf("both walls should be resolved in one tick, vel = %v", b.Vel)
	}
}

func TestGravityAndFloorKick(t *testing.T) {
	d := levels.Defaults()[1] // bounce
	d.StageXGravity = 1
	s := NewStage(d)
	b := &Ball{}
	b.Setup(&s)
	p1, p2 := &Paddle{}, &Paddle{}
	p1.SetupPlayer(&s)
	p2.SetupAI(&s)

	b.Pos = vec(12800, 12800, 20480)
	b.Vel = vec(0, 0, 256)
	b.Update(p1, p2, &s)
	if b.Vel.Y != 256 || b.Vel.X != 256 {
		t.Fatalf("gravity not applied: %v", b.Vel)
	}

	// Resting on the floor with gravity cancelled out: the kick lifts it.
	flat := normalStage()
	b.Pos = vec(12800, flat.Window.Bottom-b.Size-10, 20480)
	b.Vel = vec(0, 0, 256)
	b.Update(p1, p2, &flat)
	if b.Vel.Y != -6 {
		t.Fatalf("floor kick vel.y = %d, want -6", b.Vel.Y)
	}
}

func TestIterationCapTerminates(t *testing.T) {
	s, b, p1, p2 := arena(t)
	// A tiny stage and a huge velocity produce more collisions than the cap.
	s.Window = Rect{Right: 1024, Bottom: 1024}
	s.Depth = 1024
	b.Size = 0
	b.Pos = vec(512, 512, 512)
	b.Vel = vec(100000, 90000, 80000)
	p1.Pos = vec(-100000, -100000, 0)
	p2.Pos = vec(-100000, -100000, 0)

	kind := b.Update(p1, p2, &s)
	if kind == CollisionNone {
		t.Fatalf("expected at least one collision")
	}
}

func TestScoringIsExclusivePerTick(t *testing.T) {
	for _, d := range levels.Defaults() {
		s := NewStage(d)
		b := &Ball{}
		b.Setup(&s)
		p1, p2 := &Paddle{}, &Paddle{}
		p1.SetupPlayer(&s)
		p2.SetupAI(&s)
		ai := NewAI(&s)

		for i := 0; i < 1500; i++ {
			in := scriptedInput(i)
			p1.UpdatePlayer(in, &s)
			p2.UpdateAI(b, &s, ai)

			s1, s2 := p1.Score, p2.Score
			kind := b.Update(p1, p2, &s)
			d1, d2 := p1.Score-s1, p2.Score-s2

			if d1+d2 > 1 {
				t.Fatalf("%s tick %d: both scores moved", d.Name, i)
			}
			if (d1 == 1) != (kind == CollisionBackWall) || (d2 == 1) != (kind == CollisionFrontWall) {
				t.Fatalf("%s tick %d: score delta (%d,%d) does not match %s", d.Name, i, d1, d2, kind)
			}

			if b.Pos.Z < 0 || b.Pos.Z > s.Depth {
				t.Fatalf("%s tick %d: z out of bounds: %v", d.Name, i, b.Pos)
			}
			if b.Pos.X < s.Window.Left || b.Pos.X > s.Window.Right || b.Pos.Y < s.Window.Top || b.Pos.Y > s.Window.Bottom {
				t.Fatalf("%s tick %d: outside window: %v", d.Name, i, b.Pos)
			}
		}
	}
}

// scriptedInput sweeps the pointer around the arena and lunges in bursts.
func scriptedInput(i int) Input {
	return Input{
		X:    fixed.FromInt(10 + (i*7)%80),
		Y:    fixed.FromInt(10 + (i*13)%80),
		Down: i%50 < 45,
		Held: i%40 < 6,
	}
}
