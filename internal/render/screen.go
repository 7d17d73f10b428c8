package render

import (
	"fmt"
	"strings"
	"unicode"

	"git.lost.host/meutraa/fourk/internal/game"
	"git.lost.host/meutraa/fourk/internal/session"
	"git.lost.host/meutraa/fourk/internal/theme"
)

const (
	laneWidth  = 6
	fieldLeft  = 4
	fieldTop   = 2
	sideWidth  = 32
	missFrames = 30
)

// Screen lays a session snapshot out on a terminal renderer
type Screen struct {
	r    Renderer
	th   theme.Theme
	keys []rune

	rows, columns int
	missed        map[string]bool
}

func NewScreen(r Renderer, th theme.Theme, keys []rune) *Screen {
	s := &Screen{r: r, th: th, keys: keys, missed: map[string]bool{}}
	s.Resize()
	return s
}

func (s *Screen) Resize() {
	s.rows, s.columns = s.r.Size()
}

func (s *Screen) fieldRows() int {
	n := s.rows - fieldTop - 2
	if n < 8 {
		return 8
	}
	return n
}

func (s *Screen) sideCol() int {
	return fieldLeft + game.Lanes*laneWidth + 4
}

func laneCol(lane int) int {
	return fieldLeft + lane*laneWidth
}

// rowFor maps a playfield position to a terminal row, reporting false
// when the position is off the field
func (s *Screen) rowFor(position, height float64) (int, bool) {
	if position < 0 || position > height || height <= 0 {
		return 0, false
	}
	return fieldTop + int(position/height*float64(s.fieldRows()-1)), true
}

func (s *Screen) Draw(snap session.Snapshot) {
	blank := strings.Repeat(" ", game.Lanes*laneWidth+2)
	for row := fieldTop; row < fieldTop+s.fieldRows(); row++ {
		s.r.Fill(row, fieldLeft-2, blank)
	}

	s.drawWindows(snap)

	if row, ok := s.rowFor(snap.LineY, snap.Config.Height); ok {
		for lane := 0; lane < game.Lanes; lane++ {
			s.r.Fill(row, laneCol(lane), s.th.RenderHitField(lane, lane == snap.PressedLane))
		}
	}

	missed := make(map[string]bool, len(s.missed))
	for _, n := range snap.Notes {
		if n.State == game.Missed {
			missed[n.ID] = true
			if !s.missed[n.ID] {
				// Flash under the lane the note was missed in
				s.r.AddDecoration(laneCol(n.Lane), fieldTop+s.fieldRows(), s.th.RenderNote(n.Lane, game.Miss), missFrames)
			}
		}
		if row, ok := s.rowFor(n.Position, snap.Config.Height); ok {
			s.r.Fill(row, laneCol(n.Lane), s.th.RenderNote(n.Lane, n.Judgement))
		}
	}
	// Forget notes that have been swept off the board
	s.missed = missed

	s.drawKeys()
	s.drawStats(snap)
}

func (s *Screen) drawWindows(snap session.Snapshot) {
	windows := []struct {
		j game.Judgement
		d float64
	}{
		{game.Good, snap.Thresholds.Good},
		{game.Great, snap.Thresholds.Great},
		{game.Perfect, snap.Thresholds.Perfect},
	}
	for _, w := range windows {
		for _, y := range []float64{snap.LineY - w.d, snap.LineY + w.d} {
			if row, ok := s.rowFor(y, snap.Config.Height); ok {
				s.r.Fill(row, fieldLeft-2, s.th.RenderWindow(w.j))
			}
		}
	}
}

func (s *Screen) drawKeys() {
	row := fieldTop + s.fieldRows() + 1
	for lane, k := range s.keys {
		s.r.Fill(row, laneCol(lane)+1, fmt.Sprintf(" %c", unicode.ToUpper(k)))
	}
}

func (s *Screen) drawStats(snap session.Snapshot) {
	st := snap.Stats
	lines := []string{
		fmt.Sprintf("       BPM:  %v", snap.Config.BPM),
		fmt.Sprintf("     Speed:  %.1fx", snap.Config.Speed),
		fmt.Sprintf(" Judgement:  %v (%v)", snap.Label, snap.Config.Level),
		fmt.Sprintf("      Line:  %.0f%%", snap.Config.LineFraction*100),
		"",
		fmt.Sprintf("     Score:  %6v", st.Score),
		fmt.Sprintf("     Combo:  %6v", st.Combo),
		fmt.Sprintf(" Max Combo:  %6v", st.MaxCombo),
		fmt.Sprintf("  Accuracy:  %6.1f%%", snap.Accuracy),
		"",
		fmt.Sprintf("   Perfect:  %6v", st.PerfectCount),
		fmt.Sprintf("     Great:  %6v", st.GreatCount),
		fmt.Sprintf("      Good:  %6v", st.GoodCount),
		fmt.Sprintf("      Miss:  %6v", st.MissCount),
		"",
		statusLine(snap.Phase),
	}
	col := s.sideCol()
	for i, line := range lines {
		s.r.Fill(fieldTop+i, col, pad(line))
	}

	row := fieldTop + len(lines) + 1
	s.r.Fill(row, col, pad(""))
	if snap.LastJudgement != game.None {
		s.r.Fill(row, col, s.th.RenderJudgement(snap.LastJudgement))
	}
	if st.Combo > 0 {
		s.r.Fill(row+1, col, pad(fmt.Sprintf("%v COMBO", st.Combo)))
	} else {
		s.r.Fill(row+1, col, pad(""))
	}
}

func statusLine(p session.Phase) string {
	switch p {
	case session.Idle:
		return "Press s to start"
	case session.Waiting:
		return "Press SPACE when ready"
	case session.Paused:
		return "Paused, SPACE to resume"
	}
	return "SPACE to pause, r to reset"
}

func pad(s string) string {
	if len(s) >= sideWidth {
		return s
	}
	return s + strings.Repeat(" ", sideWidth-len(s))
}
