package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/konsole/konsole"
	"github.com/jongio/konsole/terminal"
)

// NewKonsole creates a Konsole with built-in defaults writing to a new
// MemorySurface of the given width.
//
// Example:
//
//	k, screen := testutil.NewKonsole(t, 80)
//	bar := progress.NewAt(k, "Loading", 3)
//	bar.Update(50)
//	line := screen.Line(3)
func NewKonsole(t *testing.T, width int) (*konsole.Konsole, *terminal.MemorySurface) {
	t.Helper()

	screen := terminal.NewMemorySurface(width)
	return konsole.New(konsole.Options{Surface: screen}), screen
}

// WriteFile writes content to name inside a temporary directory that is
// removed when the test completes, and returns the file's path.
//
// Example:
//
//	path := testutil.WriteFile(t, "theme.yaml", "progress:\n  fill: cyan\n")
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
