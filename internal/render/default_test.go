package render

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestRenderer() (*DefaultRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return &DefaultRenderer{Out: &buf, Fd: -1}, &buf
}

func TestFill(t *testing.T) {
	r, buf := newTestRenderer()
	r.Fill(3, 12, "x")
	if buf.Len() != 0 {
		t.Fatal("fill must buffer until flushed")
	}
	r.Flush()
	if buf.String() != "\033[3;12Hx" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSizeWithoutTerminal(t *testing.T) {
	r, _ := newTestRenderer()
	if rows, cols := r.Size(); rows != 24 || cols != 80 {
		t.Fatalf("expected 24x80, got %dx%d", rows, cols)
	}
}

func TestDecorationsExpire(t *testing.T) {
	r, buf := newTestRenderer()
	r.AddDecoration(5, 7, "\033[1;31mXX\033[0m", 2)
	for i := 0; i < 3; i++ {
		r.tickDecorations()
	}
	if len(r.decorations) != 0 {
		t.Fatalf("expected decoration to expire, %d left", len(r.decorations))
	}
	r.Flush()
	if !strings.HasSuffix(buf.String(), "\033[7;5H  ") {
		t.Fatalf("expected the decoration to be blanked, got %q", buf.String())
	}
}

var widthTests = map[string]int{
	"":                          0,
	"abc":                       3,
	"\033[1;31mMiss\033[0m":     4,
	"\033[38;2;1;2;3m▆▆\033[0m": 2,
}

func TestVisibleWidth(t *testing.T) {
	for in, expected := range widthTests {
		if out := visibleWidth(in); out != expected {
			t.Log("in      ", in)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestRenderLoopStops(t *testing.T) {
	r, _ := newTestRenderer()
	frames := 0
	r.RenderLoop(0, func(_ time.Duration) bool {
		frames++
		return frames < 3
	})
	if frames != 3 {
		t.Fatalf("expected 3 frames, got %d", frames)
	}
}
