package konsole

import (
	"fmt"
	"testing"

	"github.com/jongio/konsole/terminal"
	"github.com/stretchr/testify/assert"
)

func TestLineWriterSplitsLines(t *testing.T) {
	k, screen := newTestKonsole(40)
	w := NewLineWriter(k, k.Defaults().Warn)

	_, _ = fmt.Fprint(w, "first\nsec")
	assert.Equal(t, []string{"first"}, screen.Lines())

	_, _ = fmt.Fprint(w, "ond\r\nthi")
	assert.Equal(t, []string{"first", "second"}, screen.Lines())

	w.Flush()
	assert.Equal(t, []string{"first", "second", "thi"}, screen.Lines())
	assert.Equal(t, terminal.Yellow, screen.CellAt(0, 2).Fg)

	w.Flush()
	assert.Equal(t, 3, k.CursorTop(), "nothing left to flush")
}

func TestLineWriterDefaultsToInfo(t *testing.T) {
	k, screen := newTestKonsole(40)
	w := NewLineWriter(k, nil)

	n, err := w.Write([]byte("hello\n"))
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, terminal.White, screen.CellAt(0, 0).Fg)
}

func TestLineWriterHoldsSessionLock(t *testing.T) {
	k, _ := newTestKonsole(40)
	var locked bool
	w := NewLineWriter(k, func(k *Konsole, text string) {
		locked = !k.s.mu.TryLock()
	})

	_, _ = w.Write([]byte("x\n"))
	assert.True(t, locked)
}
