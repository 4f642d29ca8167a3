package replay

import (
	"errors"
	"fmt"

	"pong3d/internal/levels"
	"pong3d/internal/pong"
)

var ErrDiverged = errors.New("replay diverged from recording")

// NewGame builds the game a recording with header h starts from. Live
// matches start from the same function so recordings replay exactly.
func NewGame(h Header) (*pong.Game, error) {
	c, err := levels.NewCatalog(h.Levels)
	if err != nil {
		return nil, fmt.Errorf("replay levels: %w", err)
	}
	g := pong.CreateGame(c)
	if h.StartLevel != 0 {
		g.SetLevel(h.StartLevel)
	}
	if h.StartMode == pong.ModeEdit {
		g.SetMode(pong.ModeEdit)
	}
	g.SetPaused(h.StartPaused)
	return g, nil
}

// Replay runs every recorded input on a fresh game and returns the final snapshot.
func Replay(rec *Recording) (pong.Snapshot, error) {
	g, err := NewGame(rec.Header)
	if err != nil {
		return pong.Snapshot{}, err
	}
	for _, r := range rec.Inputs {
		Step(g, r)
	}
	return g.Snapshot(), nil
}

// Verify replays rec and compares the result with the recorded final state.
func Verify(rec *Recording) error {
	got, err := Replay(rec)
	if err != nil {
		return err
	}
	want := rec.Header.Final
	if got != want {
		return fmt.Errorf("%w: tick %d ball %v score %d:%d, recorded tick %d ball %v score %d:%d", ErrDiverged,
			got.Tick, got.Ball.Pos, got.Paddle1.Score, got.Paddle2.Score,
			want.Tick, want.Ball.Pos, want.Paddle1.Score, want.Paddle2.Score)
	}
	return nil
}
