package session

type Phase int

const (
	Idle    Phase = iota
	Waiting       // Playing, waiting for the ready input before spawning
	Active
	Paused
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Waiting:
		return "waiting"
	case Active:
		return "active"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// Playing covers both engagement phases
func (p Phase) Playing() bool {
	return p == Waiting || p == Active
}

func (p Phase) Spawning() bool {
	return p == Active
}
