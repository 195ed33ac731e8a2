package konsole

import (
	"strings"

	"github.com/jongio/konsole/terminal"
)

// Write writes text in the current colors.
func (k *Konsole) Write(text string) *Konsole {
	return k.WriteColors(text, k.fg, k.bg)
}

// WriteColor writes text in fg on the current background.
func (k *Konsole) WriteColor(text string, fg terminal.Color) *Konsole {
	return k.WriteColors(text, fg, k.bg)
}

// WriteColors writes text in fg on bg. The surface's ambient colors are
// unchanged afterwards.
func (k *Konsole) WriteColors(text string, fg, bg terminal.Color) *Konsole {
	k.s.surface.Write(text, fg, bg)
	k.postWrite(text)
	return k
}

// WriteLine writes text and a line terminator in the current colors.
func (k *Konsole) WriteLine(text string) *Konsole {
	return k.Write(text + "\n")
}

// WriteLineColor writes text and a line terminator in fg.
func (k *Konsole) WriteLineColor(text string, fg terminal.Color) *Konsole {
	return k.WriteColor(text+"\n", fg)
}

// NewLine writes a line terminator.
func (k *Konsole) NewLine() *Konsole {
	return k.Write("\n")
}

// Info writes text with the session's info writer.
func (k *Konsole) Info(text string) *Konsole {
	k.s.defaults.Info(k, text)
	return k
}

// Debug writes text with the session's debug writer.
func (k *Konsole) Debug(text string) *Konsole {
	k.s.defaults.Debug(k, text)
	return k
}

// Warn writes text with the session's warning writer.
func (k *Konsole) Warn(text string) *Konsole {
	k.s.defaults.Warn(k, text)
	return k
}

// Error writes text with the session's error writer.
func (k *Konsole) Error(text string) *Konsole {
	k.s.defaults.Error(k, text)
	return k
}

// ClearCurrentLine blanks the cursor row and moves the cursor to its first
// column.
func (k *Konsole) ClearCurrentLine() *Konsole {
	surface := k.s.surface
	surface.SetCursorPosition(0, surface.CursorTop())
	surface.ClearLine()
	return k
}

// ReplaceCurrentLine clears the cursor row and writes text in its place.
func (k *Konsole) ReplaceCurrentLine(text string) *Konsole {
	return k.ClearCurrentLine().Write(text)
}

// WriteDivider writes a line of ch across the full buffer width.
func (k *Konsole) WriteDivider(ch rune) *Konsole {
	width := max(k.BufferWidth(), 1)
	return k.WriteLine(strings.Repeat(string(ch), width))
}

func (k *Konsole) postWrite(text string) {
	hook := k.s.defaults.PostWrite
	if hook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn("post-write hook panicked", "panic", r)
		}
	}()
	hook(k, text)
}
