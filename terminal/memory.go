package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one character cell of a MemorySurface.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blankCell = Cell{Rune: ' '}

// MemorySurface is a Surface that records output in a cell grid. Wide runes
// occupy two cells; the second holds a zero rune and is skipped by Line.
type MemorySurface struct {
	width int
	lines [][]Cell
	col   int
	row   int
}

// NewMemorySurface creates an empty surface with the given width.
func NewMemorySurface(width int) *MemorySurface {
	return &MemorySurface{width: width}
}

// SetWidth changes the buffer width. Existing cells are kept.
func (m *MemorySurface) SetWidth(width int) {
	m.width = width
}

// Write implements Surface.
func (m *MemorySurface) Write(text string, fg, bg Color) {
	for _, r := range text {
		switch r {
		case '\n':
			m.col = 0
			m.row++
		case '\r':
			m.col = 0
		case '\b':
			if m.col > 0 {
				m.col--
			}
		default:
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if m.width > 0 && m.col > 0 && m.col+w > m.width {
				m.col = 0
				m.row++
			}
			m.set(m.col, m.row, Cell{Rune: r, Fg: fg, Bg: bg})
			for i := 1; i < w; i++ {
				m.set(m.col+i, m.row, Cell{Fg: fg, Bg: bg})
			}
			m.col += w
		}
	}
}

// BufferWidth implements Surface.
func (m *MemorySurface) BufferWidth() int {
	return m.width
}

// CursorLeft implements Surface.
func (m *MemorySurface) CursorLeft() int {
	if m.width > 0 && m.col >= m.width {
		return m.width - 1
	}
	return m.col
}

// CursorTop implements Surface.
func (m *MemorySurface) CursorTop() int {
	return m.row
}

// SetCursorPosition implements Surface.
func (m *MemorySurface) SetCursorPosition(col, row int) {
	m.col = max(col, 0)
	m.row = max(row, 0)
}

// ClearLine implements Surface.
func (m *MemorySurface) ClearLine() {
	if m.row < len(m.lines) {
		m.lines[m.row] = nil
	}
}

// Line returns the text of a row. Rows never written return "".
func (m *MemorySurface) Line(row int) string {
	if row < 0 || row >= len(m.lines) {
		return ""
	}
	var b strings.Builder
	for _, c := range m.lines[row] {
		if c.Rune != 0 {
			b.WriteRune(c.Rune)
		}
	}
	return b.String()
}

// Lines returns the text of every row up to the last one written.
func (m *MemorySurface) Lines() []string {
	out := make([]string, len(m.lines))
	for i := range m.lines {
		out[i] = m.Line(i)
	}
	return out
}

// String returns all rows joined by newlines.
func (m *MemorySurface) String() string {
	return strings.Join(m.Lines(), "\n")
}

// CellAt returns the cell at col, row. Cells never written are blank.
func (m *MemorySurface) CellAt(col, row int) Cell {
	if row < 0 || row >= len(m.lines) || col < 0 || col >= len(m.lines[row]) {
		return blankCell
	}
	return m.lines[row][col]
}

func (m *MemorySurface) set(col, row int, c Cell) {
	for len(m.lines) <= row {
		m.lines = append(m.lines, nil)
	}
	line := m.lines[row]
	for len(line) <= col {
		line = append(line, blankCell)
	}
	line[col] = c
	m.lines[row] = line
}
