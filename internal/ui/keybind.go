package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the bindings of both dispatch tables. Keys use
// tea.KeyMsg.String() notation: "q", "esc", "shift+tab", "f12".
type KeyMap struct {
	// Normal mode
	Quit     key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Enter    key.Binding
	PrevTab  key.Binding
	NextTab  key.Binding
	Function [12]key.Binding

	// Editing mode
	Submit      key.Binding
	Cancel      key.Binding
	Backspace   key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding
}

// DefaultKeyMap returns the dashboard bindings. The help text of the Normal
// bindings is the status bar legend.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("Q/Esc", "Quit")),
		Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("H/←", "Left")),
		Right:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("L/→", "Right")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("K/↑", "Up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("J/↓", "Down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp", "Page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PgDn", "Page down")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Interact/Send")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-Tab", "Prev tab")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Next tab")),

		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Send")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel")),
		Backspace:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "Delete")),
		CursorLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "Cursor left")),
		CursorRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "Cursor right")),
	}
	for i := range km.Function {
		name := fmt.Sprintf("f%d", i+1)
		km.Function[i] = key.NewBinding(key.WithKeys(name), key.WithHelp(fmt.Sprintf("F%d", i+1), "Function"))
	}
	km.Function[11].SetHelp("F12", "Restart comms")
	return km
}

// functionKey reports which of F1-F12 msg is.
func (km KeyMap) functionKey(msg tea.KeyMsg) (int, bool) {
	for i, b := range km.Function {
		if key.Matches(msg, b) {
			return i + 1, true
		}
	}
	return 0, false
}

// ShortHelp returns the status bar legend. Implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Up, km.Down, km.Enter, km.Quit}
}

// FullHelp returns every Normal mode binding grouped by column. Implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.PageUp, km.PageDown, km.PrevTab, km.NextTab},
		{km.Enter, km.Quit, km.Function[0], km.Function[11]},
	}
}
