package konsole

import (
	"os"
	"sync"

	"github.com/jongio/konsole/logutil"
	"github.com/jongio/konsole/terminal"
)

// EnvTheme names a YAML theme file applied by Default.
const EnvTheme = "KONSOLE_THEME"

var log = logutil.NewLogger("konsole")

// session is the state shared by a Konsole and every color context derived
// from it.
type session struct {
	mu       sync.Mutex
	surface  terminal.Surface
	defaults Defaults
}

// Konsole writes colored text to a terminal surface.
//
// Values returned by WithColors, WithForeColor and WithBackColor carry their
// own colors but share the surface, defaults and lock of the Konsole they
// came from.
type Konsole struct {
	s  *session
	fg terminal.Color
	bg terminal.Color
}

// Options configures a Konsole.
type Options struct {
	// Surface to write to. Nil means terminal.NewStdoutSurface().
	Surface terminal.Surface

	// Defaults overrides NewDefaults(). Nil level writers fall back to the
	// built-in ones.
	Defaults *Defaults

	// Theme is applied on top of the defaults.
	Theme *Theme
}

// New creates a Konsole.
func New(opts Options) *Konsole {
	surface := opts.Surface
	if surface == nil {
		surface = terminal.NewStdoutSurface()
	}

	defaults := NewDefaults()
	if opts.Defaults != nil {
		defaults = opts.Defaults.withFallbacks()
	}
	if opts.Theme != nil {
		defaults = opts.Theme.Apply(defaults)
	}

	return &Konsole{
		s:  &session{surface: surface, defaults: defaults},
		fg: defaults.ForegroundColor,
		bg: defaults.BackgroundColor,
	}
}

// Default creates a Konsole on standard output. If KONSOLE_THEME names a
// theme file it is applied; a theme that fails to load is logged and skipped.
func Default() *Konsole {
	opts := Options{}
	if path := os.Getenv(EnvTheme); path != "" {
		theme, err := LoadTheme(path)
		if err != nil {
			log.Warn("theme ignored", "path", path, "error", err)
		} else {
			opts.Theme = &theme
		}
	}
	return New(opts)
}

// Surface returns the surface this Konsole writes to.
func (k *Konsole) Surface() terminal.Surface {
	return k.s.surface
}

// Defaults returns a copy of the session defaults.
func (k *Konsole) Defaults() Defaults {
	return k.s.defaults
}

// Lock acquires the session lock. Every Konsole derived from the same New
// call shares it.
func (k *Konsole) Lock() {
	k.s.mu.Lock()
}

// Unlock releases the session lock.
func (k *Konsole) Unlock() {
	k.s.mu.Unlock()
}

// ForegroundColor returns the color Write uses for text.
func (k *Konsole) ForegroundColor() terminal.Color {
	return k.fg
}

// BackgroundColor returns the color Write uses behind text.
func (k *Konsole) BackgroundColor() terminal.Color {
	return k.bg
}

// SetForegroundColor changes the text color of this Konsole only.
func (k *Konsole) SetForegroundColor(c terminal.Color) *Konsole {
	k.fg = c
	return k
}

// SetBackgroundColor changes the background color of this Konsole only.
func (k *Konsole) SetBackgroundColor(c terminal.Color) *Konsole {
	k.bg = c
	return k
}

// ResetColors restores the default colors.
func (k *Konsole) ResetColors() *Konsole {
	k.fg = k.s.defaults.ForegroundColor
	k.bg = k.s.defaults.BackgroundColor
	return k
}

// WithColors returns a color context that writes with fg and bg.
func (k *Konsole) WithColors(fg, bg terminal.Color) *Konsole {
	return &Konsole{s: k.s, fg: fg, bg: bg}
}

// WithForeColor returns a color context with a different text color.
func (k *Konsole) WithForeColor(fg terminal.Color) *Konsole {
	return k.WithColors(fg, k.bg)
}

// WithBackColor returns a color context with a different background color.
func (k *Konsole) WithBackColor(bg terminal.Color) *Konsole {
	return k.WithColors(k.fg, bg)
}

// BufferWidth returns the surface width in columns.
func (k *Konsole) BufferWidth() int {
	return k.s.surface.BufferWidth()
}

// CursorLeft returns the cursor column.
func (k *Konsole) CursorLeft() int {
	return k.s.surface.CursorLeft()
}

// CursorTop returns the cursor row.
func (k *Konsole) CursorTop() int {
	return k.s.surface.CursorTop()
}

// SetCursorPosition moves the cursor.
func (k *Konsole) SetCursorPosition(col, row int) *Konsole {
	k.s.surface.SetCursorPosition(col, row)
	return k
}
