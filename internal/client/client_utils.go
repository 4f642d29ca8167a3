package client

import (
	"sync"

	"pong3d/internal/fixed"
	"pong3d/internal/netwrk"
	"pong3d/internal/pong"
	"pong3d/internal/renderer"
)

// PointerGrid is the number of key presses across the arena on each axis.
const PointerGrid = 25

// Controller turns key presses into input messages. It tracks the pointer as
// a cell on a PointerGrid square, and the last snapshot so toggle keys know
// which command to send.
type Controller struct {
	mu       sync.Mutex
	col, row int
	held     bool
	paused   bool
	mode     pong.Mode
}

// NewController starts the pointer over the player's paddle.
func NewController() *Controller {
	return &Controller{col: PointerGrid / 4, row: PointerGrid / 2}
}

// Observe records the server's view of the pause flag and mode.
func (c *Controller) Observe(s netwrk.SnapshotMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = s.Paused
	c.mode = s.Mode
}

// HandleAction returns the message for a key press, whether there is one to
// send and whether the client should quit.
func (c *Controller) HandleAction(action renderer.UiAction) (msg netwrk.InputMessage, send bool, quit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch action {
	case renderer.Quit:
		return c.command(netwrk.CommandQuit), true, true
	case renderer.Left, renderer.LeftArrow:
		c.col--
	case renderer.Right, renderer.RightArrow:
		c.col++
	case renderer.Up, renderer.UpArrow:
		c.row--
	case renderer.Down, renderer.DownArrow:
		c.row++
	case renderer.Lunge:
		c.held = !c.held
	case renderer.Pause:
		if c.paused {
			return c.command(pong.CommandResume.String()), true, false
		}
		return c.command(pong.CommandPause.String()), true, false
	case renderer.Edit:
		if c.mode == pong.ModeEdit {
			return c.command(pong.CommandPlay.String()), true, false
		}
		return c.command(pong.CommandEdit.String()), true, false
	case renderer.NextLevel:
		return c.command(pong.CommandNextLevel.String()), true, false
	case renderer.PrevLevel:
		return c.command(pong.CommandPrevLevel.String()), true, false
	case renderer.NewGame:
		return c.command(pong.CommandNewGame.String()), true, false
	case renderer.AddStage:
		return c.command(pong.CommandAddStage.String()), true, false
	case renderer.DeleteStage:
		return c.command(pong.CommandDeleteStage.String()), true, false
	case renderer.NextField:
		return c.command(pong.CommandNextField.String()), true, false
	case renderer.Raise, renderer.RaiseAlt:
		return c.command(pong.CommandRaiseField.String()), true, false
	case renderer.Lower:
		return c.command(pong.CommandLowerField.String()), true, false
	default:
		return netwrk.InputMessage{}, false, false
	}

	c.col = fixed.Clamp(c.col, 0, PointerGrid-1)
	c.row = fixed.Clamp(c.row, 0, PointerGrid-1)
	return c.pointer(), true, false
}

func (c *Controller) pointer() netwrk.InputMessage {
	x, y := pong.PointerFromScreen(c.col, c.row, PointerGrid, PointerGrid)
	return netwrk.InputMessage{X: x, Y: y, Down: true, Held: c.held}
}

func (c *Controller) command(name string) netwrk.InputMessage {
	msg := c.pointer()
	msg.Command = name
	return msg
}
