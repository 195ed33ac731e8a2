// Package progress renders progress bars onto a konsole session.
//
// A ProgressBar owns one terminal row. Each Update re-renders that row:
//
//	Loading                                 50 % #################
//
// The caption fills the left half of the row (truncated or padded with
// spaces), the percentage follows in the session's percent color, and the
// rest of the row holds the fill, proportional to the percentage.
//
// # Groups
//
// A Group hands out consecutive rows, so bars created from it never draw over
// each other:
//
//	group := progress.NewGroup(k.WithForeColor(terminal.DarkCyan))
//	for i := range 5 {
//	    bars[i] = group.ProgressBar(fmt.Sprintf("Async Operation %d", i+1))
//	}
//
// Build the whole group before starting workers; Add is not meant to race
// with Update.
//
// # Concurrency
//
// Update may be called from any goroutine. Every render runs under the
// konsole session lock, so renders of bars bound to the same session never
// interleave. Update must not be called from inside a render (for example
// from a konsole PostWrite hook): the session lock is not reentrant and the
// call deadlocks.
package progress
