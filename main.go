package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/fourk/internal/config"
	"git.lost.host/meutraa/fourk/internal/input"
	"git.lost.host/meutraa/fourk/internal/render"
	"git.lost.host/meutraa/fourk/internal/session"
	"git.lost.host/meutraa/fourk/internal/theme"
	"github.com/pkg/errors"
)

func main() {
	if err := config.Parse(os.Args[1:]); nil != err {
		log.Fatalln(err)
	}
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	logger, closer, err := config.Logger()
	if nil != err {
		return err
	}
	defer closer.Close()

	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = render.NewDefaultRenderer()
	var th theme.Theme = &theme.DefaultTheme{}

	s, err := session.New(config.Session(),
		session.WithLogger(logger),
		session.WithFramePeriod(*config.FramePeriod),
	)
	if nil != err {
		return err
	}
	defer s.Close()

	commands := make(chan input.Command, 128)
	closeKeyboard, err := input.ReadInput(config.KeyLane, commands, logger)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := closeKeyboard(); nil != err {
			logger.Errorf("unable to close keyboard: %v", err)
		}
	}()

	if err := r.Init(); nil != err {
		return fmt.Errorf("unable to initialise terminal: %w", err)
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			logger.Errorf("unable to restore terminal: %v", err)
		}
	}()

	screen := render.NewScreen(r, th, config.Keys())
	logger.Infof("ready, keys %q", string(config.Keys()))

	r.RenderLoop(*config.FramePeriod, func(_ time.Duration) bool {
		// get the key inputs that occured so far
		for i := len(commands); i > 0; i-- {
			c := <-commands
			if c.Kind == input.Quit {
				return false
			}
			if err := input.Dispatch(s, c); nil != err {
				if errors.Is(err, session.ErrNotActive) {
					continue
				}
				logger.Warnf("ignored input: %v", err)
			}
		}

		screen.Resize()
		screen.Draw(s.Snapshot())
		return true
	})

	st := s.Stats()
	logger.Infof("final score %d, max combo %d, accuracy %.1f%%", st.Score, st.MaxCombo, st.Accuracy())
	return nil
}
