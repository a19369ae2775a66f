package ui

import (
	"context"
	"fmt"

	"commsdash/internal/config"
	"commsdash/internal/ui/editor"
)

// TabID identifies a tab. Its value is the tab's index in the tab bar.
type TabID int

const (
	TabAbout TabID = iota

	tabCount
)

// AllTabs returns every tab in display order.
func AllTabs() []TabID {
	ids := make([]TabID, 0, tabCount)
	for id := TabID(0); id < tabCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Next returns the tab to the right, staying on the last tab.
func (t TabID) Next() TabID {
	if t+1 < tabCount {
		return t + 1
	}
	return t
}

// Prev returns the tab to the left, staying on the first tab.
func (t TabID) Prev() TabID {
	if t > 0 {
		return t - 1
	}
	return t
}

func (t TabID) String() string {
	switch t {
	case TabAbout:
		return "About"
	default:
		return fmt.Sprintf("TabID(%d)", int(t))
	}
}

// Title is the label shown in the tab bar.
func (t TabID) Title() string {
	return " " + t.String() + " "
}

// Host is the part of the application a tab may touch from EnterKey.
type Host interface {
	InputMode() InputMode
	SetInputMode(InputMode)
	Input() *editor.Buffer
}

// Tab is the capability set every tab implements. Row and page moves saturate
// and may be no-ops. Render must be a pure function of the tab's state.
type Tab interface {
	Title() string
	Escape() RunMode
	PrevRow()
	NextRow()
	PrevPage()
	NextPage()
	EnterKey(ctx context.Context, host Host)
	// FunctionKey handles F1-F12; unhandled keys are ignored.
	FunctionKey(ctx context.Context, n int)
	Render(width, height int) string
}

// Horizontal is implemented by tabs that react to left/right.
type Horizontal interface {
	Left()
	Right()
}

// Runner is implemented by tabs with per-frame work. Run is awaited once per
// loop iteration before the frame is drawn.
type Runner interface {
	Run(ctx context.Context) error
}

// newTab builds the state for one tab. Every TabID must have a case.
func newTab(id TabID, cfg config.Config, theme Theme) Tab {
	switch id {
	case TabAbout:
		return newAboutTab(cfg.UI, theme)
	default:
		panic(fmt.Sprintf("ui: no tab registered for %v", id))
	}
}
