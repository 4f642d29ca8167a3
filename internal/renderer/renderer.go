package renderer

import (
	"fmt"
	"os"
	"strings"

	"pong3d/internal/ansii"
	"pong3d/internal/fixed"
	"pong3d/internal/netwrk"
	"pong3d/internal/pong"
)

const (
	minWidth  = 24
	minHeight = 10
	arenaSpan = 99
)

const (
	helpLine     = "arrows/wasd move  space lunge  p pause  e edit  n/b level  g new game  q quit"
	editHelpLine = "tab field  +/- adjust  c add stage  x delete stage  n/b level  e play  q quit"
)

// Render draws the snapshot to stdout at the current terminal size.
func Render(s netwrk.SnapshotMessage) {
	width, height := ansii.GetTermSize()
	os.Stdout.WriteString(Frame(s, width, height))
}

// Frame builds a top-down view of the arena: x runs across the screen and
// depth runs up it, with the player's paddle at the bottom.
func Frame(s netwrk.SnapshotMessage, width int, height int) string {
	width = max(width, minWidth)
	height = max(height, minHeight)

	var builder = strings.Builder{}
	builder.WriteString(string(ansii.Screen.ClearScreen))

	ansii.DrawText(&builder, ansii.Offset{X: 1, Y: 1}, statusLine(s), ansii.Styles.Bold)
	ansii.DrawText(&builder, ansii.Offset{X: 1, Y: 2}, ballLine(s.Ball), ansii.Styles.Plain)

	box := ansii.Offset{X: 1, Y: 3}
	boxHeight := height - 3
	arenaStyle := ansii.Colors.White
	if s.Brightness < 50 {
		arenaStyle = ansii.Styles.Dim
	}
	ansii.DrawBox(&builder, box, boxHeight, width, arenaStyle)

	a := arena{left: box.X + 1, top: box.Y + 1, width: width - 2, height: boxHeight - 2, depth: s.Depth}
	drawPaddle(&builder, a, s.Paddle2, ansii.Colors.Red)
	drawPaddle(&builder, a, s.Paddle1, ansii.Colors.Cyan)
	ansii.DrawText(&builder, a.cell(s.Ball.Pos), ansii.Blocks.Ball, ansii.Colors.Yellow)

	help := helpLine
	if s.Mode == pong.ModeEdit {
		help = editHelpLine
	}
	ansii.DrawText(&builder, ansii.Offset{X: 1, Y: height}, help, ansii.Styles.Dim)
	return builder.String()
}

func statusLine(s netwrk.SnapshotMessage) string {
	line := fmt.Sprintf("level %d %s | %s | you %d - %d ai", s.Level+1, s.LevelName, s.Sequence, s.Paddle1.Score, s.Paddle2.Score)
	if s.Mode == pong.ModeEdit {
		line += fmt.Sprintf(" | editing %s %g", s.EditField, s.EditValue.Float())
	}
	if s.Paused {
		line += " | paused"
	}
	return line
}

func ballLine(b netwrk.BallState) string {
	return fmt.Sprintf("ball x %d y %d z %d", b.Pos.X.Int(), b.Pos.Y.Int(), b.Pos.Z.Int())
}

// arena maps stage units onto the inside of the arena box.
type arena struct {
	left, top     int
	width, height int
	depth         fixed.Fixed
}

func (a arena) column(x fixed.Fixed) int {
	v := fixed.Clamp(x.Int(), 0, arenaSpan)
	return a.left + v*(a.width-1)/arenaSpan
}

func (a arena) row(z fixed.Fixed) int {
	depth := a.depth.Int()
	if depth <= 0 {
		return a.top
	}
	v := fixed.Clamp(z.Int(), 0, depth)
	return a.top + (depth-v)*(a.height-1)/depth
}

func (a arena) cell(p fixed.Vec3) ansii.Offset {
	return ansii.Offset{X: a.column(p.X), Y: a.row(p.Z)}
}

func drawPaddle(builder *strings.Builder, a arena, p netwrk.PaddleState, style ansii.ANSI) {
	left := a.column(p.Pos.X - p.HalfWidth)
	right := a.column(p.Pos.X + p.HalfWidth)
	ansii.DrawSpan(builder, ansii.Offset{X: left, Y: a.row(p.Pos.Z)}, right-left+1, "=", style)
}
