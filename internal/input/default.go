package input

import (
	"time"

	"git.lost.host/meutraa/fourk/internal/log"
	"git.lost.host/meutraa/fourk/internal/session"
	"github.com/eiannone/keyboard"
)

type Kind int

const (
	None Kind = iota
	Lane
	Ready
	Start
	Reset
	Restart
	BPM
	Speed
	Level
	Line
	Quit
)

type Command struct {
	Kind  Kind
	Lane  int
	Delta float64 // Signed step for the config commands
	Time  time.Time
}

const (
	bpmStep   = 10
	speedStep = 0.5
	lineStep  = 0.05
)

var runeCommands = map[rune]Command{
	's': {Kind: Start},
	'r': {Kind: Reset},
	'R': {Kind: Restart},
	'+': {Kind: BPM, Delta: bpmStep},
	'=': {Kind: BPM, Delta: bpmStep},
	'-': {Kind: BPM, Delta: -bpmStep},
	']': {Kind: Speed, Delta: speedStep},
	'[': {Kind: Speed, Delta: -speedStep},
	'>': {Kind: Level, Delta: 1},
	'<': {Kind: Level, Delta: -1},
	'.': {Kind: Line, Delta: lineStep},
	',': {Kind: Line, Delta: -lineStep},
	'q': {Kind: Quit},
}

// Map turns a key event into a command. Lane keys take priority over
// every other binding.
func Map(ev keyboard.KeyEvent, at time.Time, keyLane func(rune) int) Command {
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Command{Kind: Quit, Time: at}
	case keyboard.KeySpace:
		return Command{Kind: Ready, Time: at}
	}
	if ev.Rune == ' ' {
		return Command{Kind: Ready, Time: at}
	}
	if lane := keyLane(ev.Rune); lane >= 0 {
		return Command{Kind: Lane, Lane: lane, Time: at}
	}
	if c, ok := runeCommands[ev.Rune]; ok {
		c.Time = at
		return c
	}
	return Command{Kind: None, Time: at}
}

// ReadInput forwards mapped key presses until the keyboard channel closes.
// The returned function releases the keyboard.
func ReadInput(keyLane func(rune) int, commands chan<- Command, logger *log.Logger) (func() error, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, err
	}
	go func() {
		for ev := range keys {
			if nil != ev.Err {
				logger.Errorf("unable to read keyboard input: %v", ev.Err)
				continue
			}
			c := Map(ev, time.Now(), keyLane)
			if c.Kind == None {
				continue
			}
			commands <- c
		}
	}()
	return keyboard.Close, nil
}

// Dispatch applies a command to the session. Quit and None are left to
// the caller.
func Dispatch(s *session.Session, c Command) error {
	switch c.Kind {
	case Lane:
		_, err := s.LaneInput(c.Lane, c.Time)
		return err
	case Ready:
		return s.Ready()
	case Start:
		return s.Start()
	case Reset:
		s.Reset()
	case Restart:
		s.Restart()
	case BPM:
		return s.SetBPM(s.Config().BPM + int(c.Delta))
	case Speed:
		return s.SetSpeed(s.Config().Speed + c.Delta)
	case Level:
		return s.SetLevel(s.Config().Level + int(c.Delta))
	case Line:
		return s.SetLineFraction(clamp(s.Config().LineFraction+c.Delta, 0, 1))
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
