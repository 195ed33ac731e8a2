package progress

import (
	"github.com/jongio/konsole/konsole"
	"github.com/jongio/konsole/logutil"
)

var log = logutil.NewLogger("progress")

// Group assigns consecutive rows to progress bars in the order they are added.
type Group struct {
	k          *konsole.Konsole
	bars       []*ProgressBar
	start      int
	fixedStart bool
}

// NewGroup creates an empty group. Its first bar goes on the cursor row of k
// at the time the bar is added.
func NewGroup(k *konsole.Konsole) *Group {
	return &Group{k: k}
}

// NewGroupAt creates an empty group whose first bar goes on row.
func NewGroupAt(k *konsole.Konsole, row int) *Group {
	return &Group{k: k, start: row, fixedStart: true}
}

// NewGroupOf creates a group and adds bars to it in order. Rows the bars
// already had are replaced.
func NewGroupOf(k *konsole.Konsole, bars ...*ProgressBar) *Group {
	g := NewGroup(k)
	for _, bar := range bars {
		g.Add(bar)
	}
	return g
}

// Add assigns bar the row after the group's lowest bar (or the group's first
// row) and appends it. It returns bar.
func (g *Group) Add(bar *ProgressBar) *ProgressBar {
	row := g.nextRow()
	bar.setRow(row)
	g.bars = append(g.bars, bar)
	log.Debug("progress bar added", "row", row, "bars", len(g.bars))
	return bar
}

// ProgressBar creates a bar in the group's colors and adds it.
func (g *Group) ProgressBar(caption string) *ProgressBar {
	return g.Add(&ProgressBar{k: g.k, caption: caption})
}

// Bars returns the group's bars in the order they were added.
func (g *Group) Bars() []*ProgressBar {
	out := make([]*ProgressBar, len(g.bars))
	copy(out, g.bars)
	return out
}

// Len returns the number of bars.
func (g *Group) Len() int {
	return len(g.bars)
}

// Konsole returns the color context the group creates bars with.
func (g *Group) Konsole() *konsole.Konsole {
	return g.k
}

// Finish moves the cursor to the start of the row below the group, so output
// written afterwards does not land on a bar. It does nothing for an empty
// group.
func (g *Group) Finish() {
	if len(g.bars) == 0 {
		return
	}
	below := g.lastRow() + 1

	g.k.Lock()
	defer g.k.Unlock()
	g.k.SetCursorPosition(0, below)
}

func (g *Group) nextRow() int {
	if len(g.bars) == 0 {
		if g.fixedStart {
			return g.start
		}
		return g.k.CursorTop()
	}
	return g.lastRow() + 1
}

func (g *Group) lastRow() int {
	last := g.bars[0].Row()
	for _, bar := range g.bars[1:] {
		last = max(last, bar.Row())
	}
	return last
}
