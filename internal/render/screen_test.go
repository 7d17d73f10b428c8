package render

import (
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/fourk/internal/game"
	"git.lost.host/meutraa/fourk/internal/session"
	"git.lost.host/meutraa/fourk/internal/theme"
)

func testSnapshot() session.Snapshot {
	cfg := session.DefaultConfig()
	th, _ := game.ThresholdsFor(cfg.Level)
	return session.Snapshot{
		Phase:       session.Active,
		Config:      cfg,
		Thresholds:  th,
		Label:       game.Label(cfg.Level),
		LineY:       cfg.LineY(),
		PressedLane: -1,
	}
}

func TestRowFor(t *testing.T) {
	r, _ := newTestRenderer()
	s := NewScreen(r, &theme.DefaultTheme{}, []rune("dfjk"))
	// 24 rows leaves 20 field rows
	tests := map[float64]int{0: 2, 600: 21, 300: 11}
	for pos, expected := range tests {
		row, ok := s.rowFor(pos, 600)
		if !ok || row != expected {
			t.Fatalf("position %v: expected row %d, got %d %v", pos, expected, row, ok)
		}
	}
	for _, pos := range []float64{-50, 601} {
		if _, ok := s.rowFor(pos, 600); ok {
			t.Fatalf("position %v should be off the field", pos)
		}
	}
}

func TestDrawStats(t *testing.T) {
	r, buf := newTestRenderer()
	s := NewScreen(r, &theme.DefaultTheme{}, []rune("dfjk"))
	snap := testSnapshot()
	snap.Stats = game.Stats{Score: 180, Combo: 2, MaxCombo: 2, Hits: 2, TotalSpawned: 4, PerfectCount: 1, GreatCount: 1}
	snap.Accuracy = snap.Stats.Accuracy()
	snap.LastJudgement = game.Great

	s.Draw(snap)
	r.Flush()
	out := buf.String()
	for _, want := range []string{"Score:     180", "Accuracy:    50.0%", "GREAT", "2 COMBO", "Loose (8)", " D", " K"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q", want)
		}
	}
}

func TestDrawMissDecoratesOnce(t *testing.T) {
	r, _ := newTestRenderer()
	s := NewScreen(r, &theme.DefaultTheme{}, []rune("dfjk"))
	snap := testSnapshot()
	n := game.NewNote(1, 5, time.Now())
	n.Position = 550
	n.Resolve(game.Miss, time.Now())
	snap.Notes = []session.NoteView{{ID: n.ID, Lane: 1, Position: n.Position, State: n.State, Judgement: n.Judgement}}

	s.Draw(snap)
	s.Draw(snap)
	if len(r.decorations) != 1 {
		t.Fatalf("expected one miss decoration, got %d", len(r.decorations))
	}

	snap.Notes = nil
	s.Draw(snap)
	if len(s.missed) != 0 {
		t.Fatal("swept notes must be forgotten")
	}
}
