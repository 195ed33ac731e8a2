package terminal

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jongio/konsole/logutil"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	defaultWidth = 80

	// maxCursorReply bounds the bytes read while waiting for a DSR reply.
	maxCursorReply = 32

	// cursorQueryTimeout bounds the wait for a terminal that never answers.
	cursorQueryTimeout = 250 * time.Millisecond
)

// ANSI control sequences
const (
	seqClearLine   = "\033[2K"
	seqMoveTo      = "\033[%d;%dH"
	seqQueryCursor = "\033[6n"
)

var log = logutil.NewLogger("terminal")

// ANSIOptions configures an ANSISurface.
type ANSIOptions struct {
	// Output receives text and escape sequences. Required.
	Output io.Writer

	// Fd is the terminal file descriptor used for size detection.
	// A negative value or a non-terminal disables detection.
	Fd int

	// Width fixes the buffer width. Zero means COLUMNS, then the terminal
	// size, then 80.
	Width int

	// Height fixes the screen height used to track scrolling. Zero means the
	// terminal size; when that is unknown scrolling is not tracked.
	Height int

	// NoColor suppresses color escapes.
	NoColor bool

	// Col and Row are the cursor position at construction.
	Col, Row int
}

// ANSISurface is a Surface backed by an ANSI terminal.
type ANSISurface struct {
	out     io.Writer
	fd      int
	width   int
	height  int
	noColor bool

	col int
	row int
	// top is the logical row currently shown on the first screen line.
	top int
}

// NewANSISurface creates a surface writing to opts.Output.
func NewANSISurface(opts ANSIOptions) *ANSISurface {
	s := &ANSISurface{
		out:     opts.Output,
		fd:      opts.Fd,
		width:   opts.Width,
		height:  opts.Height,
		noColor: opts.NoColor,
		col:     opts.Col,
		row:     opts.Row,
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.width <= 0 {
		s.width = columnsFromEnv()
	}
	return s
}

// NewStdoutSurface creates a surface for the process's standard output.
// When both stdin and stdout are terminals the starting cursor position is
// queried from the terminal; otherwise, or when the terminal does not answer
// within a short timeout, it starts at the origin.
func NewStdoutSurface() *ANSISurface {
	fd := int(os.Stdout.Fd())
	opts := ANSIOptions{
		Output:  colorable.NewColorableStdout(),
		Fd:      fd,
		NoColor: noColorEnv(),
	}
	if term.IsTerminal(fd) {
		if col, row, ok := queryCursor(os.Stdin, opts.Output); ok {
			opts.Col, opts.Row = col, row
		}
	}
	return NewANSISurface(opts)
}

// Write implements Surface.
func (s *ANSISurface) Write(text string, fg, bg Color) {
	if text == "" {
		return
	}
	out := text
	if attrs := attributes(fg, bg); len(attrs) > 0 && !s.noColor {
		c := color.New(attrs...)
		c.EnableColor()
		// Sprint wraps text in the color and its reset.
		out = c.Sprint(text)
	}
	_, _ = io.WriteString(s.out, out)
	s.advance(text)
}

// BufferWidth implements Surface.
func (s *ANSISurface) BufferWidth() int {
	if s.width > 0 {
		return s.width
	}
	if s.fd >= 0 {
		if w, _, err := term.GetSize(s.fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

// CursorLeft implements Surface.
func (s *ANSISurface) CursorLeft() int {
	if w := s.BufferWidth(); s.col >= w {
		return w - 1
	}
	return s.col
}

// CursorTop implements Surface.
func (s *ANSISurface) CursorTop() int {
	return s.row
}

// SetCursorPosition implements Surface. Moving to a row below the visible
// screen scrolls the screen with line feeds first, as the rows between were
// never printed.
func (s *ANSISurface) SetCursorPosition(col, row int) {
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	if h := s.screenHeight(); h > 0 && row-s.top >= h {
		s.moveTo(0, h-1)
		n := row - s.top - (h - 1)
		_, _ = io.WriteString(s.out, strings.Repeat("\n", n))
		s.top += n
	}
	s.col, s.row = col, row
	screen := row - s.top
	if screen < 0 {
		// Scrolled out of view; the first visible line is the closest.
		screen = 0
	}
	s.moveTo(col, screen)
}

// ClearLine implements Surface.
func (s *ANSISurface) ClearLine() {
	_, _ = io.WriteString(s.out, seqClearLine)
}

func (s *ANSISurface) moveTo(col, screenRow int) {
	_, _ = fmt.Fprintf(s.out, seqMoveTo, screenRow+1, col+1)
}

func (s *ANSISurface) screenHeight() int {
	if s.height > 0 {
		return s.height
	}
	if s.fd >= 0 {
		if _, h, err := term.GetSize(s.fd); err == nil && h > 0 {
			return h
		}
	}
	return 0
}

// advance moves the tracked cursor over text the way a terminal with
// auto-wrap does: a full line leaves the cursor pending at the last column
// and the next printable rune wraps.
func (s *ANSISurface) advance(text string) {
	width := s.BufferWidth()
	for _, r := range text {
		switch r {
		case '\n':
			s.col = 0
			s.lineFeed()
		case '\r':
			s.col = 0
		case '\b':
			if s.col > 0 {
				s.col--
			}
		default:
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if s.col > 0 && s.col+w > width {
				s.col = 0
				s.lineFeed()
			}
			s.col += w
		}
	}
}

func (s *ANSISurface) lineFeed() {
	s.row++
	if h := s.screenHeight(); h > 0 && s.row-s.top >= h {
		s.top = s.row - h + 1
	}
}

// queryCursor asks the terminal for the cursor position with a DSR request
// and reads the "ESC [ row ; col R" reply from in.
func queryCursor(in *os.File, out io.Writer) (col, row int, ok bool) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		log.Debug("cursor query skipped", "error", err)
		return 0, 0, false
	}
	defer func() {
		_ = term.Restore(fd, state)
	}()

	if _, err := io.WriteString(out, seqQueryCursor); err != nil {
		return 0, 0, false
	}
	return readCursorReply(in, cursorQueryTimeout)
}

// readCursorReply reads a DSR reply from r, giving up after timeout. After a
// timeout the reading goroutine keeps consuming r until the reply arrives or
// maxCursorReply bytes were read.
func readCursorReply(r io.Reader, timeout time.Duration) (col, row int, ok bool) {
	type result struct {
		reply []byte
		err   error
	}
	done := make(chan result, 1)
	go func() {
		reply := make([]byte, 0, maxCursorReply)
		b := make([]byte, 1)
		for len(reply) < maxCursorReply {
			n, err := r.Read(b)
			if err != nil || n == 0 {
				done <- result{reply: reply, err: err}
				return
			}
			reply = append(reply, b[0])
			if b[0] == 'R' {
				break
			}
		}
		done <- result{reply: reply}
	}()

	var res result
	select {
	case res = <-done:
	case <-time.After(timeout):
		log.Debug("cursor query timed out", "timeout", timeout)
		return 0, 0, false
	}
	if res.err != nil {
		log.Debug("cursor query failed", "error", res.err)
		return 0, 0, false
	}

	reply := res.reply
	start := bytes.LastIndexByte(reply, '\033')
	if start < 0 {
		return 0, 0, false
	}
	var rr, c int
	if _, err := fmt.Sscanf(string(reply[start:]), "\033[%d;%dR", &rr, &c); err != nil {
		log.Debug("unexpected cursor reply", "reply", strconv.Quote(string(reply)))
		return 0, 0, false
	}
	return c - 1, rr - 1, true
}

func columnsFromEnv() int {
	cols := os.Getenv("COLUMNS")
	if cols == "" {
		return 0
	}
	n, err := strconv.Atoi(cols)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func noColorEnv() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}
