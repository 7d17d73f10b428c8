package game

// Judgement is the outcome of resolving a note or a lane press.
type Judgement int

const (
	None Judgement = iota
	Perfect
	Great
	Good
	Miss
)

var judgementNames = [...]string{
	None:    "",
	Perfect: "PERFECT",
	Great:   "GREAT",
	Good:    "GOOD",
	Miss:    "MISS",
}

func (j Judgement) String() string {
	if j < None || j > Miss {
		return "UNKNOWN"
	}
	return judgementNames[j]
}

// Points awarded to the score for this judgement
func (j Judgement) Points() int {
	switch j {
	case Perfect:
		return 100
	case Great:
		return 80
	case Good:
		return 60
	}
	return 0
}

// Thresholds are the maximum absolute distances, in playfield units,
// from the judgement line for each judgement.
type Thresholds struct {
	Perfect float64
	Great   float64
	Good    float64
}

// Classify returns the tightest window containing distance.
// Bounds are inclusive; anything outside Good is a Miss.
func (t Thresholds) Classify(distance float64) Judgement {
	if distance < 0 {
		distance = -distance
	}
	switch {
	case distance <= t.Perfect:
		return Perfect
	case distance <= t.Great:
		return Great
	case distance <= t.Good:
		return Good
	}
	return Miss
}
