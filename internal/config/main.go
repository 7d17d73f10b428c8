package config

import (
	"fmt"
	"io"
	"os"

	"git.lost.host/meutraa/fourk/internal/game"
	"git.lost.host/meutraa/fourk/internal/log"
	"git.lost.host/meutraa/fourk/internal/session"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("fourk", "Four lane timing trainer")

	BPM          = app.Flag("bpm", "Notes fall every half note at this tempo").Default("120").Short('b').Int()
	Speed        = app.Flag("speed", "Note speed multiplier").Default("1.0").Short('s').Float64()
	Level        = app.Flag("judgement", "Judgement level, 1 is the strictest").Default("8").Short('j').Int()
	LinePosition = app.Flag("line", "Judgement line position, percent of the playfield height").Default("70").Short('l').Int()
	Height       = app.Flag("height", "Playfield height in distance units").Default("600").Float64()
	FramePeriod  = app.Flag("frame-period", "Tick and render frame period").Default("16ms").Short('p').Duration()
	keys         = app.Flag("keys", "Keys for the four lanes").Default("dfjk").Short('k').String()
	LogFile      = app.Flag("log", "Write logs to this file").Short('L').String()
	logLevel     = app.Flag("log-level", "Log level").Default("info").Enum(log.Levels...)
)

func init() {
	app.Version("0.1.0")
	app.HelpFlag.Short('h')
}

// Parse the command line, validating the values the session will use
func Parse(args []string) error {
	if _, err := app.Parse(args); nil != err {
		return err
	}
	if *FramePeriod <= 0 {
		return fmt.Errorf("frame period must be positive, got %v", *FramePeriod)
	}
	if len([]rune(*keys)) != game.Lanes {
		return fmt.Errorf("need exactly %d lane keys, got %q", game.Lanes, *keys)
	}
	seen := map[rune]bool{}
	for _, k := range Keys() {
		if seen[k] {
			return fmt.Errorf("lane key %q bound twice", k)
		}
		seen[k] = true
	}
	return Session().Validate()
}

func Session() session.Config {
	return session.Config{
		BPM:          *BPM,
		Speed:        *Speed,
		Level:        *Level,
		LineFraction: float64(*LinePosition) / 100,
		Height:       *Height,
	}
}

func Keys() []rune {
	return []rune(*keys)
}

// KeyLane returns the lane bound to r, or -1
func KeyLane(r rune) int {
	for i, c := range Keys() {
		if r == c {
			return i
		}
	}
	return -1
}

// Logger opens the log file, or discards everything when none was given.
// The returned closer is never nil.
func Logger() (*log.Logger, io.Closer, error) {
	if *LogFile == "" {
		return log.Discard(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(*LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open log file: %w", err)
	}
	return log.New(f, log.LevelFromString(*logLevel)), f, nil
}
