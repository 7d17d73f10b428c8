package session

import (
	"time"

	"git.lost.host/meutraa/fourk/internal/game"
	"github.com/pkg/errors"
)

const (
	MinBPM = 30
	MaxBPM = 300
)

var ErrInvalidConfig = errors.New("invalid session config")

type Config struct {
	BPM          int
	Speed        float64 // Note speed multiplier
	Level        int     // Judgement level, 1 is the strictest
	LineFraction float64 // Judgement line position as a fraction of Height
	Height       float64 // Playfield height in distance units
}

func DefaultConfig() Config {
	return Config{
		BPM:          120,
		Speed:        1.0,
		Level:        8,
		LineFraction: 0.7,
		Height:       600,
	}
}

func validBPM(bpm int) error {
	if bpm < MinBPM || bpm > MaxBPM {
		return errors.Wrapf(ErrInvalidConfig, "bpm %d outside [%d, %d]", bpm, MinBPM, MaxBPM)
	}
	return nil
}

func validSpeed(speed float64) error {
	if !(speed > 0) {
		return errors.Wrapf(ErrInvalidConfig, "speed %v must be positive", speed)
	}
	return nil
}

func validLevel(level int) error {
	if !game.ValidLevel(level) {
		return errors.Wrapf(ErrInvalidConfig, "judgement level %d outside [%d, %d]", level, game.MinLevel, game.MaxLevel)
	}
	return nil
}

func validLineFraction(f float64) error {
	if !(f >= 0 && f <= 1) {
		return errors.Wrapf(ErrInvalidConfig, "line position %v outside [0, 1]", f)
	}
	return nil
}

func (c Config) Validate() error {
	for _, err := range []error{
		validBPM(c.BPM),
		validSpeed(c.Speed),
		validLevel(c.Level),
		validLineFraction(c.LineFraction),
	} {
		if nil != err {
			return err
		}
	}
	if !(c.Height > 0) {
		return errors.Wrapf(ErrInvalidConfig, "height %v must be positive", c.Height)
	}
	return nil
}

// LineY is the judgement line's distance from the top of the playfield
func (c Config) LineY() float64 {
	return c.Height * c.LineFraction
}

// Bound is the position past which notes are dropped
func (c Config) Bound() float64 {
	return c.Height + game.CleanupMargin
}

// SpawnInterval is one note per half note at the given tempo
func SpawnInterval(bpm int) time.Duration {
	if bpm <= 0 {
		return 0
	}
	quarter := 60000 / float64(bpm)
	return time.Duration(quarter * 2 * float64(time.Millisecond))
}

// Change is a partial config update, nil fields are left alone
type Change struct {
	BPM          *int
	Speed        *float64
	Level        *int
	LineFraction *float64
}
