package term

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commsdash/internal/event"
)

// syncBuffer guards the driver's output, which is written from its renderer goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestSession(t *testing.T) (*Session, *io.PipeWriter, *syncBuffer) {
	t.Helper()
	in, inW := io.Pipe()
	out := &syncBuffer{}
	s := New(Options{
		TickInterval:   time.Hour,
		FrameInterval:  time.Hour,
		Input:          in,
		Output:         out,
		ProgramOptions: []tea.ProgramOption{tea.WithoutSignalHandler()},
	})
	t.Cleanup(func() {
		_ = inW.Close()
		_ = s.Exit()
	})
	return s, inW, out
}

func nextKey(t *testing.T, s *Session) event.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		ev, ok := s.Next(ctx)
		require.True(t, ok, "stream ended before a key arrived")
		if ev.Kind == event.KindKey {
			return ev
		}
	}
}

func TestSession_DrawBeforeEnter(t *testing.T) {
	s := New(Options{})
	err := s.Draw(func(int, int) string { return "x" })
	assert.ErrorIs(t, err, ErrNotActive)

	_, ok := s.Next(context.Background())
	assert.False(t, ok)
	assert.NoError(t, s.Exit())
}

func TestSession_DeliversKeys(t *testing.T) {
	s, inW, _ := newTestSession(t)
	require.NoError(t, s.Enter(context.Background()))

	go func() { _, _ = inW.Write([]byte("j")) }()

	ev := nextKey(t, s)
	assert.Equal(t, "j", ev.Key.String())
}

func TestSession_DrawUsesCurrentSize(t *testing.T) {
	s, _, out := newTestSession(t)
	require.NoError(t, s.Enter(context.Background()))

	var gotW, gotH int
	err := s.Draw(func(w, h int) string {
		gotW, gotH = w, h
		return "ground station ready"
	})
	require.NoError(t, err)

	w, h := s.Size()
	assert.Equal(t, w, gotW)
	assert.Equal(t, h, gotH)
	assert.Positive(t, gotW)
	assert.Positive(t, gotH)

	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("ground station ready"))
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSession_ResizeUpdatesSize(t *testing.T) {
	s, _, _ := newTestSession(t)
	require.NoError(t, s.Enter(context.Background()))

	s.program.Send(tea.WindowSizeMsg{Width: 120, Height: 40})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		ev, ok := s.Next(ctx)
		require.True(t, ok)
		if ev.Kind == event.KindResize && ev.Width == 120 {
			assert.Equal(t, 40, ev.Height)
			break
		}
	}
	w, h := s.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 40, h)
}

func TestSession_ExitIsIdempotent(t *testing.T) {
	s, _, _ := newTestSession(t)
	require.NoError(t, s.Enter(context.Background()))

	assert.NoError(t, s.Exit())
	assert.NoError(t, s.Exit())

	assert.ErrorIs(t, s.Draw(func(int, int) string { return "" }), ErrNotActive)
	_, ok := s.Next(context.Background())
	assert.False(t, ok, "no events after exit")
}

func TestSession_EnterTwice(t *testing.T) {
	s, _, _ := newTestSession(t)
	require.NoError(t, s.Enter(context.Background()))
	assert.Error(t, s.Enter(context.Background()))
}

func TestSession_ExitRunsOnPanic(t *testing.T) {
	s, _, _ := newTestSession(t)

	func() {
		defer func() { _ = recover() }()
		require.NoError(t, s.Enter(context.Background()))
		defer s.Exit()
		panic("boom")
	}()

	assert.ErrorIs(t, s.Draw(func(int, int) string { return "" }), ErrNotActive)
}
