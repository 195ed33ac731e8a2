// Package terminal provides the text surface konsole writes to.
//
// A Surface is the narrow set of terminal primitives the rest of the module
// depends on: write text in a foreground/background color at the cursor, query
// the buffer width and cursor position, move the cursor and clear a line.
//
// Two implementations are provided:
//
//   - ANSISurface drives a real terminal with ANSI escape sequences. Colors are
//     emitted through github.com/fatih/color and reset after every write, so a
//     write never changes the ambient terminal color. Rows are tracked as
//     logical buffer rows; when output scrolls the screen the surface keeps
//     mapping logical rows to the rows that are still visible.
//   - MemorySurface records writes into an in-memory cell grid. It is used by
//     tests and by callers that want to render without a terminal.
//
// # Concurrency
//
// Surfaces are not safe for concurrent use. The cursor position is shared
// state, so callers that write from several goroutines must serialize whole
// write sequences themselves (konsole.Konsole provides the session lock for
// this).
//
// # Environment
//
//   - COLUMNS overrides the detected width of an ANSISurface.
//   - NO_COLOR disables color escapes (https://no-color.org/).
package terminal
