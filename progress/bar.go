package progress

import (
	"fmt"
	"strings"

	"github.com/jongio/konsole/konsole"
	"github.com/mattn/go-runewidth"
)

// ProgressBar is a single-row progress indicator.
type ProgressBar struct {
	k       *konsole.Konsole
	caption string
	row     int
	percent int
}

// New creates a bar on the cursor row of k. The caption is written in k's
// colors.
func New(k *konsole.Konsole, caption string) *ProgressBar {
	return NewAt(k, caption, k.CursorTop())
}

// NewAt creates a bar on the given row.
func NewAt(k *konsole.Konsole, caption string, row int) *ProgressBar {
	return &ProgressBar{k: k, caption: caption, row: row}
}

// Caption returns the caption of the last render, or the initial caption.
func (b *ProgressBar) Caption() string {
	b.k.Lock()
	defer b.k.Unlock()
	return b.caption
}

// Row returns the row the bar renders to.
func (b *ProgressBar) Row() int {
	b.k.Lock()
	defer b.k.Unlock()
	return b.row
}

// Percent returns the percentage of the last render.
func (b *ProgressBar) Percent() int {
	b.k.Lock()
	defer b.k.Unlock()
	return b.percent
}

// Update renders the bar at percent with its current caption.
// Percentages are clamped to [0, 100].
func (b *ProgressBar) Update(percent int) {
	b.k.Lock()
	defer b.k.Unlock()
	b.render(percent, b.caption)
}

// UpdateCaption replaces the caption and renders the bar at percent.
func (b *ProgressBar) UpdateCaption(percent int, caption string) {
	b.k.Lock()
	defer b.k.Unlock()
	b.render(percent, caption)
}

// render draws the whole row. Caller must hold the session lock.
func (b *ProgressBar) render(percent int, caption string) {
	b.percent = clampPercent(percent)
	b.caption = caption

	k := b.k
	style := k.Defaults().Progress

	k.SetCursorPosition(0, b.row)
	half := captionWidth(k.BufferWidth())

	k.ClearCurrentLine().
		Write(fitCaption(b.caption, half)).
		WriteColor(fmt.Sprintf(" %-3d%% ", b.percent), style.PercentColor)

	available := k.BufferWidth() - k.CursorLeft() - 1
	fill := strings.Repeat(string(style.Glyph), fillWidth(b.percent, available))
	k.WriteColor(fill, style.FillColor).NewLine()
}

func (b *ProgressBar) setRow(row int) {
	b.k.Lock()
	defer b.k.Unlock()
	b.row = row
}

func clampPercent(percent int) int {
	return min(max(percent, 0), 100)
}

// captionWidth is the caption field width: half the row, less the last column.
func captionWidth(bufferWidth int) int {
	return max((bufferWidth-1)/2, 0)
}

// fitCaption truncates or right-pads caption to exactly width cells.
func fitCaption(caption string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(caption, width, ""), width)
}

// fillWidth is ceil(percent/100 * available), floored at 0.
func fillWidth(percent, available int) int {
	if available <= 0 || percent <= 0 {
		return 0
	}
	return (percent*available + 99) / 100
}
