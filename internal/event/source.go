package event

import (
	"context"
	"sync"
	"time"
)

// DefaultQueueSize bounds the queue between producer and consumer.
const DefaultQueueSize = 64

// Option configures a Source.
type Option func(*Source)

// WithQueueSize overrides the capacity of the outbound queue. Values below 1 are ignored.
func WithQueueSize(n int) Option {
	return func(s *Source) {
		if n >= 1 {
			s.queueSize = n
		}
	}
}

// WithClock replaces the timer channels, for tests.
func WithClock(tick, render <-chan time.Time) Option {
	return func(s *Source) {
		s.tickC = tick
		s.renderC = render
		s.fakeClock = true
	}
}

// Source is the single producer of the event stream. One goroutine owns the
// timers and forwards input pushed by the terminal poller, so events leave
// in the order the producer observed them.
type Source struct {
	tickInterval  time.Duration
	frameInterval time.Duration
	queueSize     int

	tickC     <-chan time.Time
	renderC   <-chan time.Time
	fakeClock bool

	input chan Event
	out   chan Event

	stop      chan struct{}
	stopOnce  sync.Once
	startOnce sync.Once
}

// NewSource creates a stopped source emitting Tick every tickInterval and
// Render every frameInterval once started. A non-positive interval disables
// that timer.
func NewSource(tickInterval, frameInterval time.Duration, opts ...Option) *Source {
	s := &Source{
		tickInterval:  tickInterval,
		frameInterval: frameInterval,
		queueSize:     DefaultQueueSize,
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.input = make(chan Event, s.queueSize)
	s.out = make(chan Event, s.queueSize)
	return s
}

// Start launches the producer goroutine. Calling Start more than once has no effect.
func (s *Source) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		var stopTimers []func()
		if !s.fakeClock {
			if s.tickInterval > 0 {
				t := time.NewTicker(s.tickInterval)
				s.tickC = t.C
				stopTimers = append(stopTimers, t.Stop)
			}
			if s.frameInterval > 0 {
				t := time.NewTicker(s.frameInterval)
				s.renderC = t.C
				stopTimers = append(stopTimers, t.Stop)
			}
		}
		go s.run(ctx, stopTimers)
	})
}

func (s *Source) run(ctx context.Context, stopTimers []func()) {
	defer func() {
		for _, stop := range stopTimers {
			stop()
		}
	}()
	for {
		var ev Event
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case t := <-s.tickC:
			ev = Tick(t)
		case t := <-s.renderC:
			ev = Render(t)
		case ev = <-s.input:
		}
		select {
		case s.out <- ev:
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		}
	}
}

// Push hands an input event (key, resize) to the producer. It blocks while the
// queue is full and returns false once the source is stopped.
func (s *Source) Push(ev Event) bool {
	select {
	case <-s.stop:
		return false
	default:
	}
	select {
	case s.input <- ev:
		return true
	case <-s.stop:
		return false
	}
}

// Next blocks until an event is available. It returns false when ctx is done
// or the source has been stopped; no event is delivered after Stop.
func (s *Source) Next(ctx context.Context) (Event, bool) {
	select {
	case <-s.stop:
		return Event{}, false
	default:
	}
	select {
	case ev := <-s.out:
		if s.Stopped() {
			return Event{}, false
		}
		return ev, true
	case <-s.stop:
		return Event{}, false
	case <-ctx.Done():
		return Event{}, false
	}
}

// Stop ends the stream. In-flight timers are abandoned. Safe to call repeatedly.
func (s *Source) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Stopped reports whether Stop has been called.
func (s *Source) Stopped() bool {
	select {
	case <-s.stop:
		return true
	default:
		return false
	}
}
