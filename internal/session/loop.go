package session

import "time"

// TickerFunc creates a ticker firing every d, and the function that stops it
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func NewTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// loop runs fn on every tick until stopped. Starting a running loop
// replaces it, so no partial interval is carried over.
type loop struct {
	newTicker TickerFunc
	stop      chan struct{}
}

func (l *loop) start(d time.Duration, fn func()) {
	l.halt()
	c, stopTicker := l.newTicker(d)
	stop := make(chan struct{})
	l.stop = stop
	go func() {
		defer stopTicker()
		for {
			select {
			case <-stop:
				return
			case <-c:
				fn()
			}
		}
	}()
}

// halt is safe to call on a stopped loop
func (l *loop) halt() {
	if nil == l.stop {
		return
	}
	close(l.stop)
	l.stop = nil
}

func (l *loop) running() bool {
	return nil != l.stop
}
