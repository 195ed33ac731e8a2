package konsole

import (
	"github.com/jongio/konsole/terminal"
	"github.com/mattn/go-runewidth"
)

// LevelWriter writes a message for one output level.
type LevelWriter func(k *Konsole, text string)

// ProgressStyle is how progress bars render on a session.
type ProgressStyle struct {
	PercentColor terminal.Color
	FillColor    terminal.Color
	Glyph        rune
}

// Defaults are the settings a Konsole session starts from.
type Defaults struct {
	ForegroundColor terminal.Color
	BackgroundColor terminal.Color

	Info  LevelWriter
	Debug LevelWriter
	Warn  LevelWriter
	Error LevelWriter

	// PostWrite runs after every write with the text written. A panic
	// inside it is recovered and logged. It must not write to the same
	// Konsole.
	PostWrite func(k *Konsole, text string)

	Progress ProgressStyle
}

// NewDefaults returns the built-in defaults: terminal colors, white info,
// green debug, yellow warnings, red errors and a green '#' progress fill.
func NewDefaults() Defaults {
	return Defaults{
		Info:  lineWriter(terminal.White),
		Debug: lineWriter(terminal.Green),
		Warn:  lineWriter(terminal.Yellow),
		Error: lineWriter(terminal.Red),
		Progress: ProgressStyle{
			PercentColor: terminal.White,
			FillColor:    terminal.Green,
			Glyph:        '#',
		},
	}
}

// validGlyph reports whether r occupies exactly one terminal cell. The fill
// length is counted in glyphs, so wider glyphs would run past the row.
func validGlyph(r rune) bool {
	return r != 0 && runewidth.RuneWidth(r) == 1
}

func lineWriter(fg terminal.Color) LevelWriter {
	return func(k *Konsole, text string) {
		k.WriteLineColor(text, fg)
	}
}

func (d Defaults) withFallbacks() Defaults {
	builtin := NewDefaults()
	if d.Info == nil {
		d.Info = builtin.Info
	}
	if d.Debug == nil {
		d.Debug = builtin.Debug
	}
	if d.Warn == nil {
		d.Warn = builtin.Warn
	}
	if d.Error == nil {
		d.Error = builtin.Error
	}
	if d.Progress.PercentColor == terminal.ColorDefault {
		d.Progress.PercentColor = builtin.Progress.PercentColor
	}
	if d.Progress.FillColor == terminal.ColorDefault {
		d.Progress.FillColor = builtin.Progress.FillColor
	}
	if !validGlyph(d.Progress.Glyph) {
		d.Progress.Glyph = builtin.Progress.Glyph
	}
	return d
}
