package game

import (
	"time"

	"github.com/google/uuid"
)

type NoteState int

const (
	Live NoteState = iota
	Hit
	Missed
)

func (s NoteState) String() string {
	switch s {
	case Live:
		return "live"
	case Hit:
		return "hit"
	case Missed:
		return "missed"
	}
	return "unknown"
}

type Note struct {
	ID       string
	Lane     int
	Position float64 // Distance travelled down the playfield, negative while off screen
	Speed    float64 // Units per tick

	// This is state
	State      NoteState
	Judgement  Judgement
	CreatedAt  time.Time
	ResolvedAt time.Time // When the note left the live state
}

func NewNote(lane int, speed float64, createdAt time.Time) *Note {
	return &Note{
		ID:        uuid.NewString(),
		Lane:      lane,
		Position:  SpawnOffset,
		Speed:     speed,
		CreatedAt: createdAt,
	}
}

func (n *Note) Live() bool {
	return n.State == Live
}

// Resolve moves a live note to hit or missed. It reports false, and
// changes nothing, if the note was already resolved.
func (n *Note) Resolve(j Judgement, at time.Time) bool {
	if n.State != Live || j == None {
		return false
	}
	if j == Miss {
		n.State = Missed
	} else {
		n.State = Hit
	}
	n.Judgement = j
	n.ResolvedAt = at
	return true
}
