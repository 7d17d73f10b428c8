package score

import (
	"time"

	"git.lost.host/meutraa/fourk/internal/game"
)

type Scorer interface {
	// Spawn a note in a random lane at the top of the board
	Spawn(board *game.Board, speed float64) *game.Note

	// Advance every note one step, returning the notes that were missed
	Tick(board *game.Board, lineY, bound float64, th game.Thresholds) []*game.Note

	// Resolve a lane press against the live notes of the board
	Evaluate(board *game.Board, lane int, lineY float64, th game.Thresholds) (Outcome, error)

	Distance(note *game.Note, lineY float64) float64
}

// Outcome of a lane press. Note is nil when nothing was in range.
type Outcome struct {
	Lane      int
	Note      *game.Note
	Judgement game.Judgement
	Distance  float64
	Points    int
	At        time.Time
}

func (o Outcome) Whiff() bool {
	return o.Note == nil
}
