// Package konsole provides chainable, colored console output on top of a
// terminal.Surface.
//
// # Basic Usage
//
//	k := konsole.Default()
//
//	k.WriteLine("Starting...").WriteDivider('-')
//	k.WithForeColor(terminal.Cyan).WriteLine("cyan text")
//	k.WithColors(terminal.Black, terminal.Red).WriteLine("black on red")
//	k.Info("done")
//
// # Color Contexts
//
// WithColors, WithForeColor and WithBackColor return a new *Konsole that
// writes in other colors. The original keeps its colors. All of them share
// one session: the same surface, the same defaults and the same lock.
//
// # Sessions and Locking
//
// A Konsole does not lock around ordinary writes. Code that renders a
// multi-step sequence from several goroutines, such as progress bars, holds
// the session lock for the whole sequence with Lock and Unlock.
//
// # Defaults and Themes
//
// Level writers (Info, Debug, Warn, Error), default colors, a post-write hook
// and the progress bar style are set through Defaults, or loaded from a YAML
// Theme. Default applies the theme named by KONSOLE_THEME.
package konsole
