package ansii

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ANSI string

const (
	reset       ANSI = "\033[0m"
	plain       ANSI = ""
	bold        ANSI = "\033[1m"
	dim         ANSI = "\033[2m"
	underline   ANSI = "\033[4m"
	red         ANSI = "\033[31m"
	green       ANSI = "\033[32m"
	yellow      ANSI = "\033[33m"
	blue        ANSI = "\033[34m"
	purple      ANSI = "\033[35m"
	cyan        ANSI = "\033[36m"
	white       ANSI = "\033[37m"
	clearScreen ANSI = "\033[2J"
	hideCursor  ANSI = "\033[?25l"
	showCursor  ANSI = "\033[?25h"
)

// Offset is a terminal cell, 1-based like the cursor escape codes.
type Offset struct {
	X int
	Y int
}

type style struct {
	Reset     ANSI
	Plain     ANSI
	Bold      ANSI
	Dim       ANSI
	Underline ANSI
}

type color struct {
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Blue   ANSI
	Purple ANSI
	Cyan   ANSI
	White  ANSI
}

type screen struct {
	ClearScreen ANSI
	HideCursor  ANSI
	ShowCursor  ANSI
}

type ascii struct {
	Block string
	Ball  string
}

// GetTermSize reports the terminal size, or 80x24 when stdout is not a terminal.
func GetTermSize() (width int, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return width, height
}

func MakeTermRaw() (*term.State, error) {
	return term.MakeRaw(int(os.Stdin.Fd()))
}

func RestoreTerm(prev *term.State) error {
	return term.Restore(int(os.Stdin.Fd()), prev)
}

func (s screen) PlaceCursor(o Offset) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", o.Y, o.X))
}

var (
	Styles = style{Bold: bold, Dim: dim, Underline: underline, Reset: reset, Plain: plain}
	Colors = color{Red: red, Green: green, Yellow: yellow, Blue: blue, Purple: purple, Cyan: cyan, White: white}
	Screen = screen{ClearScreen: clearScreen, HideCursor: hideCursor, ShowCursor: showCursor}
	Blocks = ascii{Block: "█", Ball: "●"}
)

// Draws a box of dimensions `height` and `width` at `offset`.
// The `offset` is the top left cell of the box.
func DrawBox(builder *strings.Builder, offset Offset, height int, width int, style ANSI) {
	builder.WriteString(string(style))
	for hIdx := range height {
		if hIdx == 0 || hIdx == height-1 {
			for wIdx := range width {
				drawCell(builder, Offset{X: offset.X + wIdx, Y: offset.Y + hIdx}, Blocks.Block)
			}
		} else {
			drawCell(builder, Offset{X: offset.X, Y: offset.Y + hIdx}, Blocks.Block)
			drawCell(builder, Offset{X: offset.X + width - 1, Y: offset.Y + hIdx}, Blocks.Block)
		}
	}
	builder.WriteString(string(Styles.Reset))
}

// DrawSpan draws a horizontal run of `width` cells starting at `offset`.
func DrawSpan(builder *strings.Builder, offset Offset, width int, cell string, style ANSI) {
	builder.WriteString(string(style))
	for wIdx := range width {
		drawCell(builder, Offset{X: offset.X + wIdx, Y: offset.Y}, cell)
	}
	builder.WriteString(string(Styles.Reset))
}

func DrawText(builder *strings.Builder, offset Offset, text string, style ANSI) {
	builder.WriteString(string(style))
	builder.WriteString(string(Screen.PlaceCursor(offset)))
	builder.WriteString(text)
	builder.WriteString(string(Styles.Reset))
}

func drawCell(builder *strings.Builder, offset Offset, cell string) {
	if offset.X < 1 || offset.Y < 1 {
		return
	}
	builder.WriteString(string(Screen.PlaceCursor(offset)))
	builder.WriteString(cell)
}
