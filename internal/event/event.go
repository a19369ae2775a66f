// Package event carries terminal input and timer events from the producer
// goroutine to the single consumer loop.
package event

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies which variant of Event is populated.
type Kind int

const (
	KindKey    Kind = iota // key press; Key is set
	KindResize             // terminal resized; Width and Height are set
	KindTick               // tick_rate timer fired
	KindRender             // frame_rate timer fired
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindResize:
		return "resize"
	case KindTick:
		return "tick"
	case KindRender:
		return "render"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one entry of the ordered stream. It is consumed exactly once.
type Event struct {
	Kind      Kind
	Key       tea.KeyMsg
	Width     int
	Height    int
	Timestamp time.Time
}

// Key builds a key press event.
func Key(msg tea.KeyMsg) Event {
	return Event{Kind: KindKey, Key: msg, Timestamp: time.Now()}
}

// Resize builds a resize event.
func Resize(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height, Timestamp: time.Now()}
}

// Tick builds a tick event stamped with t.
func Tick(t time.Time) Event {
	return Event{Kind: KindTick, Timestamp: t}
}

// Render builds a render-request event stamped with t.
func Render(t time.Time) Event {
	return Event{Kind: KindRender, Timestamp: t}
}

func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		return "key(" + e.Key.String() + ")"
	case KindResize:
		return fmt.Sprintf("resize(%dx%d)", e.Width, e.Height)
	default:
		return e.Kind.String()
	}
}
