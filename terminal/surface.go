package terminal

// Surface is a terminal text buffer with a single shared cursor.
//
// Rows and columns are zero based. Rows are logical buffer rows: they keep
// increasing as output scrolls, so a row handed out earlier keeps naming the
// same line of text.
type Surface interface {
	// Write writes text at the cursor and advances it. ColorDefault leaves
	// the terminal color in place. The ambient color is unchanged afterwards.
	Write(text string, fg, bg Color)

	// BufferWidth returns the number of columns. It may change between calls.
	BufferWidth() int

	// CursorLeft returns the cursor column.
	CursorLeft() int

	// CursorTop returns the cursor row.
	CursorTop() int

	// SetCursorPosition moves the cursor.
	SetCursorPosition(col, row int)

	// ClearLine blanks the cursor row without moving the cursor.
	ClearLine()
}
