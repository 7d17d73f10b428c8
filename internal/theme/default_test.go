package theme

import (
	"strings"
	"testing"

	"git.lost.host/meutraa/fourk/internal/game"
)

func TestJudgementColors(t *testing.T) {
	seen := map[Color]game.Judgement{}
	for _, j := range []game.Judgement{game.None, game.Perfect, game.Great, game.Good, game.Miss} {
		c := GetJudgementColor(j)
		if other, ok := seen[c]; ok {
			t.Fatalf("%v and %v share a colour", j, other)
		}
		seen[c] = j
	}
	if GetJudgementColor(game.Judgement(99)) != pressedColor {
		t.Fatal("unknown judgements should fall back to white")
	}
}

func TestRenderJudgement(t *testing.T) {
	th := &DefaultTheme{}
	out := th.RenderJudgement(game.Great)
	if !strings.Contains(out, "GREAT") || !strings.Contains(out, "38;2;0;255;0m") {
		t.Fatalf("unexpected judgement render %q", out)
	}
	if !strings.HasSuffix(th.RenderNote(0, game.None), "\033[0m") {
		t.Fatal("note render must reset the colour")
	}
}

func TestLanesShareGlyphs(t *testing.T) {
	th := &DefaultTheme{}
	for lane := 1; lane < game.Lanes; lane++ {
		if th.RenderNote(lane, game.Perfect) != th.RenderNote(0, game.Perfect) {
			t.Fatalf("lane %d note differs from lane 0", lane)
		}
		if th.RenderHitField(lane, true) != th.RenderHitField(0, true) {
			t.Fatalf("lane %d hit field differs from lane 0", lane)
		}
	}
}
