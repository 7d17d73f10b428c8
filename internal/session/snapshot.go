package session

import "git.lost.host/meutraa/fourk/internal/game"

type NoteView struct {
	ID        string
	Lane      int
	Position  float64
	State     game.NoteState
	Judgement game.Judgement
}

// Snapshot is everything a front end needs to draw one frame
type Snapshot struct {
	Phase      Phase
	Config     Config
	Thresholds game.Thresholds
	Label      string
	LineY      float64

	Notes    []NoteView
	Stats    game.Stats
	Accuracy float64

	PressedLane   int            // -1 when no lane is highlighted
	LastJudgement game.Judgement // None once it has faded
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The config is always validated, so the level is in range
	th, _ := game.ThresholdsFor(s.config.Level)
	snap := Snapshot{
		Phase:         s.phase,
		Config:        s.config,
		Thresholds:    th,
		Label:         game.Label(s.config.Level),
		LineY:         s.config.LineY(),
		Notes:         make([]NoteView, 0, len(s.board.Notes)),
		Stats:         s.board.Stats,
		Accuracy:      s.board.Stats.Accuracy(),
		PressedLane:   -1,
		LastJudgement: game.None,
	}
	for _, n := range s.board.Notes {
		snap.Notes = append(snap.Notes, NoteView{
			ID:        n.ID,
			Lane:      n.Lane,
			Position:  n.Position,
			State:     n.State,
			Judgement: n.Judgement,
		})
	}

	now := s.now()
	if s.pressedLane >= 0 && now.Sub(s.pressedAt) <= PressDuration {
		snap.PressedLane = s.pressedLane
	}
	if s.lastJudgement != game.None && now.Sub(s.lastJudgedAt) <= JudgementDuration {
		snap.LastJudgement = s.lastJudgement
	}
	return snap
}
