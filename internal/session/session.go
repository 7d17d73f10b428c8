package session

import (
	"sync"
	"time"

	"git.lost.host/meutraa/fourk/internal/game"
	"git.lost.host/meutraa/fourk/internal/log"
	"git.lost.host/meutraa/fourk/internal/score"
	"github.com/pkg/errors"
)

const (
	DefaultFramePeriod = time.Second / 60

	// How long a lane stays highlighted after a press
	PressDuration = 100 * time.Millisecond
	// How long the last judgement stays on screen
	JudgementDuration = 500 * time.Millisecond
)

var (
	ErrInvalidState = errors.New("invalid session state")
	ErrNotActive    = errors.New("session is not active")
)

type Option func(*Session)

func WithScorer(s score.Scorer) Option {
	return func(ss *Session) { ss.scorer = s }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithTicker(t TickerFunc) Option {
	return func(s *Session) {
		s.spawner.newTicker = t
		s.frames.newTicker = t
	}
}

func WithFramePeriod(d time.Duration) Option {
	return func(s *Session) { s.framePeriod = d }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Session owns the board and drives it from two loops: one spawning
// notes at the tempo and one advancing them every frame. Both loops and
// every input go through mu.
type Session struct {
	mu sync.Mutex

	scorer      score.Scorer
	log         *log.Logger
	now         func() time.Time
	framePeriod time.Duration

	config Config
	phase  Phase
	board  game.Board

	spawner, frames loop
	// Bumped whenever the loops are stopped, so a tick already waiting
	// on mu from an old loop is dropped
	generation uint64

	pressedLane   int
	pressedAt     time.Time
	lastJudgement game.Judgement
	lastJudgedAt  time.Time
}

func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); nil != err {
		return nil, err
	}
	s := &Session{
		scorer:      score.NewDefaultScorer(),
		log:         log.Discard(),
		now:         time.Now,
		framePeriod: DefaultFramePeriod,
		config:      cfg,
		pressedLane: -1,
		spawner:     loop{newTicker: NewTicker},
		frames:      loop{newTicker: NewTicker},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.framePeriod <= 0 {
		s.framePeriod = DefaultFramePeriod
	}
	return s, nil
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

func (s *Session) Stats() game.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Stats
}

// Start a fresh game, waiting for the ready input before notes fall
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start()
}

func (s *Session) start() error {
	if s.phase != Idle {
		return errors.Wrapf(ErrInvalidState, "start while %v", s.phase)
	}
	s.clear()
	s.phase = Waiting
	s.runFrames()
	s.log.Infof("session started, waiting for ready (bpm %d, speed %.1fx, level %d)",
		s.config.BPM, s.config.Speed, s.config.Level)
	return nil
}

// ConfirmStart begins spawning notes
func (s *Session) ConfirmStart() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmStart()
}

func (s *Session) confirmStart() error {
	if s.phase != Waiting {
		return errors.Wrapf(ErrInvalidState, "confirm start while %v", s.phase)
	}
	s.phase = Active
	s.runSpawner()
	s.log.Infof("spawning every %v", SpawnInterval(s.config.BPM))
	return nil
}

func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pause()
}

func (s *Session) pause() error {
	if s.phase != Active {
		return errors.Wrapf(ErrInvalidState, "pause while %v", s.phase)
	}
	s.halt()
	s.phase = Paused
	s.log.Infof("paused with %d notes on the board", len(s.board.Notes))
	return nil
}

func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume()
}

func (s *Session) resume() error {
	if s.phase != Paused {
		return errors.Wrapf(ErrInvalidState, "resume while %v", s.phase)
	}
	s.phase = Active
	s.runFrames()
	s.runSpawner()
	s.log.Infof("resumed")
	return nil
}

func (s *Session) TogglePause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.togglePause()
}

func (s *Session) togglePause() error {
	switch s.phase {
	case Active:
		return s.pause()
	case Paused:
		return s.resume()
	}
	return errors.Wrapf(ErrInvalidState, "toggle pause while %v", s.phase)
}

// Ready is the single dedicated key: it releases a waiting session
// and otherwise toggles pause
func (s *Session) Ready() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == Waiting {
		return s.confirmStart()
	}
	return s.togglePause()
}

// Reset stops everything and clears the board, from any phase
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.halt()
	s.clear()
	s.phase = Idle
	s.log.Infof("session reset")
}

// Restart resets and starts again with the current config. It does
// nothing unless the session is playing.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restart()
}

func (s *Session) restart() {
	if !s.phase.Playing() {
		return
	}
	s.reset()
	// Cannot fail, reset always leaves the session idle
	_ = s.start()
}

// Close stops both loops without touching the board
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.halt()
}

func (s *Session) SetBPM(bpm int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setBPM(bpm)
}

func (s *Session) setBPM(bpm int) error {
	if err := validBPM(bpm); nil != err {
		return err
	}
	s.config.BPM = bpm
	if s.phase == Active {
		s.restart()
	}
	return nil
}

func (s *Session) SetSpeed(speed float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setSpeed(speed)
}

func (s *Session) setSpeed(speed float64) error {
	if err := validSpeed(speed); nil != err {
		return err
	}
	s.config.Speed = speed
	if s.phase == Active {
		s.restart()
	}
	return nil
}

// SetLevel only affects judgements made from now on
func (s *Session) SetLevel(level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLevel(level)
}

func (s *Session) setLevel(level int) error {
	if err := validLevel(level); nil != err {
		return err
	}
	s.config.Level = level
	return nil
}

func (s *Session) SetLineFraction(f float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLineFraction(f)
}

func (s *Session) setLineFraction(f float64) error {
	if err := validLineFraction(f); nil != err {
		return err
	}
	s.config.LineFraction = f
	return nil
}

// Apply validates the whole change before applying any of it
func (s *Session) Apply(c Change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.config
	if nil != c.BPM {
		next.BPM = *c.BPM
	}
	if nil != c.Speed {
		next.Speed = *c.Speed
	}
	if nil != c.Level {
		next.Level = *c.Level
	}
	if nil != c.LineFraction {
		next.LineFraction = *c.LineFraction
	}
	if err := next.Validate(); nil != err {
		return err
	}

	s.config.Level = next.Level
	s.config.LineFraction = next.LineFraction
	if next.BPM == s.config.BPM && next.Speed == s.config.Speed {
		return nil
	}
	s.config.BPM = next.BPM
	s.config.Speed = next.Speed
	if s.phase == Active {
		s.restart()
	}
	return nil
}

// LaneInput resolves a press on a lane at the given time. The outcome
// holds a copy of the judged note, never the note on the board.
func (s *Session) LaneInput(lane int, at time.Time) (score.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != Active {
		return score.Outcome{Lane: lane}, errors.Wrapf(ErrNotActive, "lane %d pressed while %v", lane, s.phase)
	}
	th, err := game.ThresholdsFor(s.config.Level)
	if nil != err {
		return score.Outcome{Lane: lane}, err
	}
	outcome, err := s.scorer.Evaluate(&s.board, lane, s.config.LineY(), th)
	if nil != err {
		return outcome, err
	}

	s.pressedLane, s.pressedAt = lane, at
	s.lastJudgement, s.lastJudgedAt = outcome.Judgement, at
	if outcome.Whiff() {
		s.log.Debugf("lane %d pressed with nothing in range", lane)
	} else {
		s.log.Debugf("lane %d %v at %.1f (combo %d)", lane, outcome.Judgement, outcome.Distance, s.board.Stats.Combo)
		// The board note keeps moving on the frame loop, hand out a copy
		note := *outcome.Note
		outcome.Note = &note
	}
	return outcome, nil
}

// Spawn adds one note if the session is active, reporting whether it did
func (s *Session) Spawn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawn()
}

func (s *Session) spawn() bool {
	if !s.phase.Spawning() {
		return false
	}
	n := s.scorer.Spawn(&s.board, s.config.Speed)
	s.log.Debugf("spawned note in lane %d (%d on board)", n.Lane, len(s.board.Notes))
	return true
}

// Tick advances the board one frame while playing
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick()
}

func (s *Session) tick() bool {
	if !s.phase.Playing() {
		return false
	}
	th, err := game.ThresholdsFor(s.config.Level)
	if nil != err {
		s.log.Errorf("unable to tick: %v", err)
		return false
	}
	for _, n := range s.scorer.Tick(&s.board, s.config.LineY(), s.config.Bound(), th) {
		s.log.Debugf("missed note in lane %d", n.Lane)
	}
	return true
}

func (s *Session) clear() {
	s.board.Reset()
	s.pressedLane = -1
	s.lastJudgement = game.None
}

func (s *Session) halt() {
	s.spawner.halt()
	s.frames.halt()
	s.generation++
}

func (s *Session) runSpawner() {
	gen := s.generation
	s.spawner.start(SpawnInterval(s.config.BPM), func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen == s.generation {
			s.spawn()
		}
	})
}

func (s *Session) runFrames() {
	gen := s.generation
	s.frames.start(s.framePeriod, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen == s.generation {
			s.tick()
		}
	})
}
