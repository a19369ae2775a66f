// Package term owns the terminal for the lifetime of the dashboard.
//
// A bubbletea program acts as the terminal driver: it switches to raw mode and
// the alternate screen, decodes key presses and paints whatever frame the
// application last handed to Draw. The application never sees the program;
// it reads events from Next and presents frames through Draw.
package term

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"commsdash/internal/event"
)

// ErrNotActive is returned by Draw outside Enter/Exit.
var ErrNotActive = errors.New("terminal session not active")

// Fallback size used until the driver reports the real terminal size.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// quitTimeout bounds how long Exit waits for the driver to restore the terminal
// before killing it.
const quitTimeout = 2 * time.Second

// Options configures a Session.
type Options struct {
	TickInterval  time.Duration
	FrameInterval time.Duration

	// Input and Output default to the process terminal when nil.
	Input  io.Reader
	Output io.Writer

	// ProgramOptions are appended to the driver options.
	ProgramOptions []tea.ProgramOption
}

// Session is the single terminal surface of the process.
type Session struct {
	opts Options

	mu     sync.Mutex
	active bool
	width  int
	height int
	frame  string

	source      *event.Source
	program     *tea.Program
	dirty       chan struct{}
	programDone chan struct{}
	cancel      context.CancelFunc
	group       *errgroup.Group
	exitOnce    sync.Once
}

// New creates an inactive session.
func New(opts Options) *Session {
	return &Session{
		opts:   opts,
		width:  DefaultWidth,
		height: DefaultHeight,
		dirty:  make(chan struct{}, 1),
	}
}

// Enter switches the terminal to raw mode and the alternate screen and starts
// the event source. Callers should defer Exit right after Enter, whatever the
// returned error, so the terminal is restored on every exit path.
func (s *Session) Enter(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.program != nil {
		return errors.New("terminal session already entered")
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.source = event.NewSource(s.opts.TickInterval, s.opts.FrameInterval)

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if s.opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(s.opts.Input))
	}
	if s.opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(s.opts.Output))
	}
	progOpts = append(progOpts, s.opts.ProgramOptions...)
	s.program = tea.NewProgram(&bridge{session: s}, progOpts...)
	s.programDone = make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	s.source.Start(gctx)
	g.Go(func() error {
		defer close(s.programDone)
		// The stream ends when the driver goes away, whatever the reason.
		defer s.source.Stop()
		_, err := s.program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		s.pump(gctx)
		return nil
	})
	s.group = g
	s.active = true
	return nil
}

// pump forwards repaint requests to the driver so Draw never blocks on it.
func (s *Session) pump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.programDone:
			return
		case <-s.dirty:
			s.program.Send(repaintMsg{})
		}
	}
}

// Exit stops the event source and the driver, restoring the terminal to its
// original mode. It is idempotent and returns the driver's exit error, if any.
func (s *Session) Exit() error {
	var err error
	s.exitOnce.Do(func() {
		s.mu.Lock()
		started := s.program != nil
		s.active = false
		s.mu.Unlock()
		if !started {
			return
		}

		s.source.Stop()
		s.program.Quit()
		select {
		case <-s.programDone:
		case <-time.After(quitTimeout):
			s.program.Kill()
		}
		s.cancel()
		err = s.group.Wait()
	})
	return err
}

// Draw composes a frame for the current terminal size and hands it to the
// driver. It does not wait for the frame to be painted.
func (s *Session) Draw(compose func(width, height int) string) error {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return ErrNotActive
	}
	width, height := s.width, s.height
	s.mu.Unlock()

	frame := compose(width, height)

	s.mu.Lock()
	s.frame = frame
	s.mu.Unlock()
	select {
	case s.dirty <- struct{}{}:
	default:
	}
	return nil
}

// Next blocks for the next event. It returns false once the session has exited
// or ctx is done.
func (s *Session) Next(ctx context.Context) (event.Event, bool) {
	s.mu.Lock()
	src := s.source
	s.mu.Unlock()
	if src == nil {
		return event.Event{}, false
	}
	return src.Next(ctx)
}

// Size returns the last known terminal size.
func (s *Session) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *Session) setSize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.mu.Unlock()
}

func (s *Session) currentFrame() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

type repaintMsg struct{}

// bridge is the driver's model. Input goes to the event source, and the view
// is whatever frame Draw stored last.
type bridge struct {
	session *Session
}

func (b *bridge) Init() tea.Cmd { return nil }

func (b *bridge) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		b.session.source.Push(event.Key(msg))
	case tea.WindowSizeMsg:
		b.session.setSize(msg.Width, msg.Height)
		b.session.source.Push(event.Resize(msg.Width, msg.Height))
	case repaintMsg:
	}
	return b, nil
}

func (b *bridge) View() string {
	return b.session.currentFrame()
}
