package ansii

import (
	"strings"
	"testing"
)

func TestPlaceCursor(t *testing.T) {
	if got := Screen.PlaceCursor(Offset{X: 7, Y: 3}); got != "\033[3;7H" {
		t.Fatalf("got %q", got)
	}
}

func TestDrawBox(t *testing.T) {
	var b strings.Builder
	DrawBox(&b, Offset{X: 1, Y: 1}, 3, 4, Colors.Cyan)
	out := b.String()

	// 4 top, 4 bottom and 2 sides.
	if n := strings.Count(out, Blocks.Block); n != 10 {
		t.Fatalf("drew %d cells", n)
	}
	if !strings.HasPrefix(out, string(Colors.Cyan)) || !strings.HasSuffix(out, string(Styles.Reset)) {
		t.Fatalf("style not applied: %q", out)
	}
	if !strings.Contains(out, "\033[2;4H") {
		t.Fatalf("right side missing")
	}
}

func TestDrawSpanClipsOffscreen(t *testing.T) {
	var b strings.Builder
	DrawSpan(&b, Offset{X: -1, Y: 2}, 4, "=", Styles.Plain)
	if n := strings.Count(b.String(), "="); n != 2 {
		t.Fatalf("drew %d cells", n)
	}
}
