package score

import (
	"math"
	"math/rand"
	"time"

	"git.lost.host/meutraa/fourk/internal/game"
	"github.com/pkg/errors"
)

var ErrInvalidLane = errors.New("lane out of range")

type DefaultScorer struct {
	// Rand returns a lane in [0, n)
	Rand func(n int) int
	Now  func() time.Time
}

func NewDefaultScorer() *DefaultScorer {
	return &DefaultScorer{
		Rand: rand.Intn,
		Now:  time.Now,
	}
}

func (s *DefaultScorer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultScorer) lane() int {
	if s.Rand == nil {
		return rand.Intn(game.Lanes)
	}
	return s.Rand(game.Lanes)
}

// Positive when the note is past the line
func (s *DefaultScorer) Distance(n *game.Note, lineY float64) float64 {
	return n.Position - lineY
}

func (s *DefaultScorer) Spawn(b *game.Board, speed float64) *game.Note {
	note := game.NewNote(s.lane(), game.NoteSpeed(speed), s.now())
	b.Add(note)
	return note
}

func (s *DefaultScorer) Tick(b *game.Board, lineY, bound float64, th game.Thresholds) []*game.Note {
	var missed []*game.Note
	now := s.now()
	for _, note := range b.Notes {
		note.Position += note.Speed
		if !note.Live() || s.Distance(note, lineY) <= th.Good {
			continue
		}
		if note.Resolve(game.Miss, now) {
			b.Stats.Record(game.Miss)
			missed = append(missed, note)
		}
	}
	b.Sweep(bound)
	return missed
}

func (s *DefaultScorer) Evaluate(b *game.Board, lane int, lineY float64, th game.Thresholds) (Outcome, error) {
	if !game.ValidLane(lane) {
		return Outcome{Lane: lane}, errors.Wrapf(ErrInvalidLane, "lane %d", lane)
	}

	outcome := Outcome{Lane: lane, Judgement: game.Miss, At: s.now()}

	// Notes are in spawn order, so the first match is the earliest
	for _, note := range b.Notes {
		if !note.Live() || note.Lane != lane {
			continue
		}
		d := s.Distance(note, lineY)
		if math.Abs(d) > th.Good {
			continue
		}
		j := th.Classify(d)
		note.Resolve(j, outcome.At)
		outcome.Note = note
		outcome.Judgement = j
		outcome.Distance = d
		outcome.Points = j.Points()
		break
	}

	// A press with nothing in range still breaks the combo
	b.Stats.Record(outcome.Judgement)
	return outcome, nil
}
