package editor

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_InsertAdvancesCursor(t *testing.T) {
	b := New("")
	b.Insert('h')
	b.Insert('i')

	assert.Equal(t, "hi", b.String())
	assert.Equal(t, 2, b.Cursor())
}

func TestBuffer_InsertAtCursor(t *testing.T) {
	b := New("hllo")
	b.MoveLeft()
	b.MoveLeft()
	b.MoveLeft()
	b.Insert('e')

	assert.Equal(t, "hello", b.String())
	assert.Equal(t, 2, b.Cursor())
}

func TestBuffer_DeleteBackAtZeroIsNoop(t *testing.T) {
	b := New("abc")
	for range 3 {
		b.MoveLeft()
	}
	b.DeleteBack()

	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 0, b.Cursor())
}

func TestBuffer_DeleteBackRemovesLeftRune(t *testing.T) {
	b := New("héllo")
	b.MoveLeft()
	b.MoveLeft()
	b.MoveLeft()
	b.DeleteBack()

	assert.Equal(t, "hllo", b.String())
	assert.Equal(t, 1, b.Cursor())
}

func TestBuffer_MultibyteRunes(t *testing.T) {
	b := New("")
	for _, r := range "日本語" {
		b.Insert(r)
	}
	require.Equal(t, 3, b.Len())
	b.DeleteBack()

	assert.Equal(t, "日本", b.String())
	assert.Equal(t, 2, b.Cursor())
}

func TestBuffer_MoveSaturates(t *testing.T) {
	b := New("ab")
	b.MoveRight()
	b.MoveRight()
	assert.Equal(t, 2, b.Cursor())

	for range 5 {
		b.MoveLeft()
	}
	assert.Equal(t, 0, b.Cursor())
}

func TestBuffer_Reset(t *testing.T) {
	b := New("draft")
	b.Reset()

	assert.True(t, b.IsEmpty())
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Cursor())
}

func TestBuffer_RunesIsCopy(t *testing.T) {
	b := New("ab")
	r := b.Runes()
	r[0] = 'z'

	assert.Equal(t, "ab", b.String())
}

func TestBuffer_CursorInvariantUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("aZ 9é日")

	for run := 0; run < 50; run++ {
		b := New("")
		for step := 0; step < 200; step++ {
			switch rng.Intn(4) {
			case 0:
				b.Insert(alphabet[rng.Intn(len(alphabet))])
			case 1:
				b.DeleteBack()
			case 2:
				b.MoveLeft()
			case 3:
				b.MoveRight()
			}
			require.GreaterOrEqual(t, b.Cursor(), 0, "run %d step %d", run, step)
			require.LessOrEqual(t, b.Cursor(), b.Len(), "run %d step %d", run, step)
		}
	}
}

func TestBuffer_EditSequence(t *testing.T) {
	b := New("")
	b.DeleteBack()
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Cursor())

	b.Insert('日')
	b.Insert('本')
	b.Insert('x')
	b.MoveLeft()
	b.Insert('y')
	assert.Equal(t, "日本yx", b.String())
	assert.Equal(t, 3, b.Cursor())
	assert.Equal(t, 4, b.Len())

	for range 5 {
		b.MoveRight()
	}
	assert.Equal(t, 4, b.Cursor())

	b.Reset()
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Cursor())
}

func TestBuffer_ViewFitsWidth(t *testing.T) {
	b := New("hi")
	assert.Equal(t, "hi    ", ansi.Strip(b.View(6)), "cursor cell past the end is blank")

	b.MoveLeft()
	b.MoveLeft()
	assert.Equal(t, "hi    ", ansi.Strip(b.View(6)))
}

func TestBuffer_ViewFollowsCursor(t *testing.T) {
	b := New(strings.Repeat("a", 30) + "z")
	view := ansi.Strip(b.View(10))
	assert.LessOrEqual(t, ansi.StringWidth(view), 10)
	assert.True(t, strings.HasSuffix(view, "z "), view)

	for range 31 {
		b.MoveLeft()
	}
	view = ansi.Strip(b.View(10))
	assert.True(t, strings.HasPrefix(view, "a"), view)
	assert.NotContains(t, view, "z")

	// A narrower field recomputes the window around the cursor.
	for range 31 {
		b.MoveRight()
	}
	view = ansi.Strip(b.View(5))
	assert.LessOrEqual(t, ansi.StringWidth(view), 5)
	assert.True(t, strings.HasSuffix(view, "z "), view)
}
