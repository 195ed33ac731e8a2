package progress

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/jongio/konsole/konsole"
	"github.com/jongio/konsole/terminal"
	"github.com/jongio/konsole/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupAtAssignsConsecutiveRows(t *testing.T) {
	k, _ := testutil.NewKonsole(t, 80)
	g := NewGroupAt(k, 5)

	a := g.ProgressBar("a")
	b := g.ProgressBar("b")
	c := g.Add(NewAt(k, "c", 40))

	assert.Equal(t, 5, a.Row())
	assert.Equal(t, 6, b.Row())
	assert.Equal(t, 7, c.Row(), "added bars lose their own row")
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []*ProgressBar{a, b, c}, g.Bars())
}

func TestGroupStartsAtCursorWhenFirstBarIsAdded(t *testing.T) {
	k, _ := testutil.NewKonsole(t, 80)
	g := NewGroup(k)

	k.WriteLine("one").WriteLine("two").WriteLine("three")
	first := g.ProgressBar("first")
	k.WriteLine("moves the cursor")
	second := g.ProgressBar("second")

	assert.Equal(t, 3, first.Row())
	assert.Equal(t, 4, second.Row(), "later bars follow the lowest bar, not the cursor")
}

func TestNewGroupOfReassignsRows(t *testing.T) {
	k, _ := testutil.NewKonsole(t, 80)
	k.SetCursorPosition(0, 2)

	a := NewAt(k, "a", 20)
	b := NewAt(k, "b", 0)
	g := NewGroupOf(k, a, b)

	assert.Equal(t, 2, a.Row())
	assert.Equal(t, 3, b.Row())
	assert.Equal(t, 2, g.Len())
}

func TestGroupRendersEachBarOnItsRow(t *testing.T) {
	k, screen := testutil.NewKonsole(t, 80)
	k.WriteLine("title")
	g := NewGroup(k)

	bars := []*ProgressBar{g.ProgressBar("one"), g.ProgressBar("two"), g.ProgressBar("three")}
	bars[2].Update(30)
	bars[0].Update(10)
	bars[1].Update(20)

	assert.Equal(t, "title", screen.Line(0))
	for i, want := range []string{"one", "two", "three"} {
		line := screen.Line(i + 1)
		assert.True(t, strings.HasPrefix(line, want+" "), "row %d: %q", i+1, line)
		assert.Contains(t, line, fmt.Sprintf(" %d0 %% ", i+1))
	}
}

func TestGroupBarsUseGroupColors(t *testing.T) {
	k, screen := testutil.NewKonsole(t, 80)
	g := NewGroupAt(k.WithForeColor(terminal.Magenta), 0)

	g.ProgressBar("m").Update(10)

	assert.Equal(t, terminal.Magenta, screen.CellAt(0, 0).Fg)
	assert.Equal(t, terminal.ColorDefault, k.ForegroundColor())
}

func TestGroupFinish(t *testing.T) {
	k, screen := testutil.NewKonsole(t, 80)
	g := NewGroupAt(k, 3)
	a := g.ProgressBar("a")
	g.ProgressBar("b")

	a.Update(50)
	g.Finish()

	assert.Equal(t, 0, screen.CursorLeft())
	assert.Equal(t, 5, screen.CursorTop())

	k.WriteLine("after")
	assert.Equal(t, "after", screen.Line(5))
}

func TestEmptyGroupFinishDoesNothing(t *testing.T) {
	k, screen := testutil.NewKonsole(t, 80)
	k.Write("abc")

	NewGroupAt(k, 9).Finish()

	assert.Equal(t, 3, screen.CursorLeft())
	assert.Equal(t, 0, screen.CursorTop())
}

func TestBarsReturnsCopy(t *testing.T) {
	k, _ := testutil.NewKonsole(t, 80)
	g := NewGroupAt(k, 0)
	g.ProgressBar("a")

	bars := g.Bars()
	bars[0] = nil
	assert.NotNil(t, g.Bars()[0])
	assert.Same(t, k, g.Konsole())
}

// traceSurface records every surface call with the cursor row it ran on.
type traceSurface struct {
	*terminal.MemorySurface

	mu      sync.Mutex
	events  []traceEvent
	busy    bool
	overlap bool
}

type traceEvent struct {
	op   string
	row  int
	text string
}

func (s *traceSurface) enter() {
	s.mu.Lock()
	if s.busy {
		s.overlap = true
	}
	s.busy = true
	s.mu.Unlock()
}

func (s *traceSurface) leave(op string, row int, text string) {
	s.mu.Lock()
	s.busy = false
	s.events = append(s.events, traceEvent{op: op, row: row, text: text})
	s.mu.Unlock()
}

func (s *traceSurface) Write(text string, fg, bg terminal.Color) {
	s.enter()
	row := s.MemorySurface.CursorTop()
	s.MemorySurface.Write(text, fg, bg)
	s.leave("write", row, text)
}

func (s *traceSurface) SetCursorPosition(col, row int) {
	s.enter()
	s.MemorySurface.SetCursorPosition(col, row)
	s.leave("move", row, "")
}

func (s *traceSurface) ClearLine() {
	s.enter()
	row := s.MemorySurface.CursorTop()
	s.MemorySurface.ClearLine()
	s.leave("clear", row, "")
}

func TestConcurrentUpdatesDoNotInterleave(t *testing.T) {
	const workers, steps = 5, 10

	screen := &traceSurface{MemorySurface: terminal.NewMemorySurface(80)}
	k := konsole.New(konsole.Options{Surface: screen})
	g := NewGroupAt(k, 0)
	bars := make([]*ProgressBar, workers)
	for i := range bars {
		bars[i] = g.ProgressBar(fmt.Sprintf("worker %d", i))
	}

	var wg sync.WaitGroup
	for _, bar := range bars {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for step := 1; step <= steps; step++ {
				bar.Update(step * 100 / steps)
			}
		}()
	}
	wg.Wait()
	g.Finish()

	require.False(t, screen.overlap, "surface calls overlapped")

	// A render is move, move, clear, then writes on the bar's row ending
	// with the line terminator.
	last := map[int]int{}
	renders := 0
	events := screen.events
	for i := 0; i < len(events)-1; {
		e := events[i]
		require.Equal(t, "move", e.op, "event %d", i)
		row := e.row
		i++
		if i == len(events) || events[i].op != "move" {
			break // Finish
		}
		require.Equal(t, "clear", events[i+1].op)
		require.Equal(t, row, events[i+1].row)
		i += 2

		for ; i < len(events) && events[i].op == "write"; i++ {
			ev := events[i]
			require.Equal(t, row, ev.row, "write %q landed on another row", ev.text)
			if ev.text == "\n" {
				i++
				break
			}
			var pct int
			if _, err := fmt.Sscanf(ev.text, " %d%%", &pct); err == nil {
				assert.GreaterOrEqual(t, pct, last[row], "row %d went backwards", row)
				last[row] = pct
			}
		}
		renders++
	}
	assert.Equal(t, workers*steps, renders)

	for i := range bars {
		line := screen.Line(i)
		assert.True(t, strings.HasPrefix(line, fmt.Sprintf("worker %d ", i)), "row %d: %q", i, line)
		assert.Contains(t, line, " 100% ")
		assert.Equal(t, 100, last[i])
	}
	assert.Equal(t, workers, screen.CursorTop())
}
