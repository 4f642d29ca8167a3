package main

import (
	"golang.org/x/exp/rand"

	"pong3d/internal/fixed"
	"pong3d/internal/pong"
	"pong3d/internal/replay"
)

// lungeReach is how close, in stage units, the ball must be before the bot
// considers lunging.
const lungeReach = 30

// bot plays the human side. It chases the ball with some jitter so seeded
// runs differ while staying reproducible.
type bot struct {
	rng    *rand.Rand
	jitter int
}

func newBot(seed uint64, jitter int) *bot {
	return &bot{rng: rand.New(rand.NewSource(seed)), jitter: max(jitter, 0)}
}

// next picks the input for the tick after s.
func (b *bot) next(s pong.Snapshot) replay.Record {
	in := pong.Input{
		X:    s.Ball.Pos.X + fixed.FromInt(b.offset()),
		Y:    s.Ball.Pos.Y + fixed.FromInt(b.offset()),
		Down: true,
	}
	gap := (s.Ball.Pos.Z - s.Paddle1.Pos.Z).Int()
	if gap >= 0 && gap < lungeReach {
		in.Held = b.rng.Intn(2) == 0
	}
	return replay.Record{Tick: s.Tick + 1, Input: in}
}

func (b *bot) offset() int {
	if b.jitter == 0 {
		return 0
	}
	return b.rng.Intn(2*b.jitter+1) - b.jitter
}
