package game

import "github.com/pkg/errors"

const (
	MinLevel = 1
	MaxLevel = 10
)

var ErrInvalidLevel = errors.New("judgement level out of range")

var levelLabels = [...]string{
	1:  "Ultra strict",
	2:  "Strict",
	3:  "Fairly strict",
	4:  "Slightly strict",
	5:  "Medium",
	6:  "Slightly loose",
	7:  "Fairly loose",
	8:  "Loose",
	9:  "Very loose",
	10: "Ultra loose",
}

func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// ThresholdsFor returns the judgement windows for a difficulty level.
// Level 1 is 15/30/45 and every level widens the windows by 3/6/9.
func ThresholdsFor(level int) (Thresholds, error) {
	if !ValidLevel(level) {
		return Thresholds{}, errors.Wrapf(ErrInvalidLevel, "level %d", level)
	}
	n := float64(level)
	return Thresholds{
		Perfect: 3*n + 12,
		Great:   6*n + 24,
		Good:    9*n + 36,
	}, nil
}

// Label is a human name for the level, empty if the level is invalid.
func Label(level int) string {
	if !ValidLevel(level) {
		return ""
	}
	return levelLabels[level]
}
