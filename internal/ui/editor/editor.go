// Package editor provides the cursor-addressed text buffer behind the message prompt.
//
// A Buffer wraps a focused bubbles textinput. Only the keys the prompt binds
// are forwarded to it, so the cursor always addresses a whole rune in [0, Len()].
package editor

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Buffer is a single-line text buffer with a cursor.
type Buffer struct {
	ti    textinput.Model
	width int
}

// New returns a buffer pre-filled with s and the cursor at the end.
func New(s string) *Buffer {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	// Focus last: an unfocused textinput ignores key messages.
	ti.Focus()
	ti.SetValue(s)
	return &Buffer{ti: ti}
}

// SetStyle sets the style of the text and of the cell under the cursor.
// The cursor cell is always drawn in reverse video.
func (b *Buffer) SetStyle(text, cursor lipgloss.Style) {
	b.ti.TextStyle = text
	b.ti.Cursor.TextStyle = text
	b.ti.Cursor.Style = cursor
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	return b.ti.Value()
}

// Runes returns a copy of the buffer contents.
func (b *Buffer) Runes() []rune {
	return []rune(b.ti.Value())
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return utf8.RuneCountInString(b.ti.Value())
}

// Cursor returns the cursor offset in runes.
func (b *Buffer) Cursor() int {
	return b.ti.Position()
}

// IsEmpty reports whether the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return b.ti.Value() == ""
}

// Insert puts r at the cursor and advances the cursor past it.
// Control characters are dropped by the input sanitizer.
func (b *Buffer) Insert(r rune) {
	b.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// DeleteBack removes the rune left of the cursor and moves the cursor left.
// It is a no-op when the cursor is at 0.
func (b *Buffer) DeleteBack() {
	b.update(tea.KeyMsg{Type: tea.KeyBackspace})
}

// MoveLeft moves the cursor one rune left, saturating at 0.
func (b *Buffer) MoveLeft() {
	b.update(tea.KeyMsg{Type: tea.KeyLeft})
}

// MoveRight moves the cursor one rune right, saturating at Len().
func (b *Buffer) MoveRight() {
	b.update(tea.KeyMsg{Type: tea.KeyRight})
}

// Reset empties the buffer and returns the cursor to 0.
func (b *Buffer) Reset() {
	b.ti.Reset()
}

// View renders the visible window of the text in width cells with the
// cursor cell highlighted. The window scrolls to keep the cursor in view.
func (b *Buffer) View(width int) string {
	// One cell is reserved for the cursor past the last rune.
	w := max(width-1, 1)
	if w != b.width {
		b.width = w
		b.ti.Width = w
		// The scroll window is only recomputed when the cursor leaves it,
		// so sweep the cursor across both ends before restoring it.
		pos := b.ti.Position()
		b.ti.CursorEnd()
		b.ti.CursorStart()
		b.ti.SetCursor(pos)
	}
	return b.ti.View()
}

func (b *Buffer) update(msg tea.KeyMsg) {
	b.ti, _ = b.ti.Update(msg)
}
