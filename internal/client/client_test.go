package client

import (
	"testing"

	"pong3d/internal/fixed"
	"pong3d/internal/netwrk"
	"pong3d/internal/pong"
	"pong3d/internal/renderer"
)

func TestPointerKeys(t *testing.T) {
	c := NewController()

	msg, send, quit := c.HandleAction(renderer.RightArrow)
	if !send || quit {
		t.Fatalf("send=%v quit=%v", send, quit)
	}
	// Column 7 and row 12 of 25.
	if msg.X != fixed.FromInt(28) || msg.Y != fixed.FromInt(48) || !msg.Down || msg.Command != "" {
		t.Fatalf("unexpected pointer message %+v", msg)
	}

	// The top of the window is y=0, so up lowers y.
	msg, _, _ = c.HandleAction(renderer.Up)
	if msg.Y != fixed.FromInt(44) {
		t.Fatalf("up moved y to %v", msg.Y)
	}
	msg, _, _ = c.HandleAction(renderer.DownArrow)
	msg, _, _ = c.HandleAction(renderer.Down)
	if msg.Y != fixed.FromInt(52) {
		t.Fatalf("down moved y to %v", msg.Y)
	}

	for range 40 {
		msg, _, _ = c.HandleAction(renderer.Left)
	}
	if msg.X != 0 {
		t.Fatalf("pointer not clamped at the left edge: %v", msg.X)
	}
	for range 40 {
		msg, _, _ = c.HandleAction(renderer.Up)
	}
	if msg.Y != 0 {
		t.Fatalf("pointer not clamped at the top: %v", msg.Y)
	}
	for range 40 {
		msg, _, _ = c.HandleAction(renderer.Right)
	}
	if msg.X != fixed.FromInt(96) {
		t.Fatalf("pointer not clamped at the right edge: %v", msg.X)
	}

	msg, _, _ = c.HandleAction(renderer.Lunge)
	if !msg.Held {
		t.Fatalf("space did not hold the lunge")
	}
	msg, _, _ = c.HandleAction(renderer.Lunge)
	if msg.Held {
		t.Fatalf("second space did not release the lunge")
	}
}

func TestUpMovesPaddleAwayFromFloor(t *testing.T) {
	g := pong.CreateGame(nil)
	c := NewController()

	msg, _, _ := c.HandleAction(renderer.Right)
	g.Paddle1.UpdatePlayer(msg.Input(), &g.Stage)
	before := g.Paddle1.Pos.Y

	msg, _, _ = c.HandleAction(renderer.Up)
	g.Paddle1.UpdatePlayer(msg.Input(), &g.Stage)
	if g.Paddle1.Pos.Y >= before {
		t.Fatalf("up moved the paddle from y %v to %v", before, g.Paddle1.Pos.Y)
	}
	if g.Stage.Window.Top >= g.Stage.Window.Bottom {
		t.Fatalf("window top %v is not above bottom %v", g.Stage.Window.Top, g.Stage.Window.Bottom)
	}
}

func TestToggleKeysFollowServerState(t *testing.T) {
	c := NewController()

	msg, _, _ := c.HandleAction(renderer.Pause)
	if msg.Command != "pause" {
		t.Fatalf("got %q, want pause", msg.Command)
	}
	c.Observe(netwrk.SnapshotMessage{Paused: true})
	msg, _, _ = c.HandleAction(renderer.Pause)
	if msg.Command != "resume" {
		t.Fatalf("got %q, want resume", msg.Command)
	}

	msg, _, _ = c.HandleAction(renderer.Edit)
	if msg.Command != "edit" {
		t.Fatalf("got %q, want edit", msg.Command)
	}
	c.Observe(netwrk.SnapshotMessage{Mode: pong.ModeEdit})
	msg, _, _ = c.HandleAction(renderer.Edit)
	if msg.Command != "play" {
		t.Fatalf("got %q, want play", msg.Command)
	}
}

func TestCommandKeys(t *testing.T) {
	cases := []struct {
		action renderer.UiAction
		want   string
		quit   bool
	}{
		{renderer.NextLevel, "next_level", false},
		{renderer.PrevLevel, "prev_level", false},
		{renderer.NewGame, "new_game", false},
		{renderer.AddStage, "add_stage", false},
		{renderer.DeleteStage, "delete_stage", false},
		{renderer.NextField, "next_field", false},
		{renderer.Raise, "raise_field", false},
		{renderer.RaiseAlt, "raise_field", false},
		{renderer.Lower, "lower_field", false},
		{renderer.Quit, netwrk.CommandQuit, true},
	}
	for _, c := range cases {
		msg, send, quit := NewController().HandleAction(c.action)
		if !send || quit != c.quit || msg.Command != c.want {
			t.Errorf("%v: got %+v send=%v quit=%v", c.action, msg, send, quit)
		}
		if _, ok := pong.ParseCommand(msg.Command); !ok && msg.Command != netwrk.CommandQuit {
			t.Errorf("%q is not a game command", msg.Command)
		}
	}

	if _, send, _ := NewController().HandleAction(renderer.Unknown); send {
		t.Fatalf("unknown key produced a message")
	}
}
