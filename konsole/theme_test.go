package konsole

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/konsole/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullTheme = `
foreground: gray
background: black
levels:
  info: cyan
  debug: dark-gray
  warn: dark-yellow
  error: magenta
progress:
  percent: yellow
  fill: blue
  glyph: "="
`

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme([]byte(fullTheme))
	require.NoError(t, err)

	assert.Equal(t, terminal.Gray, theme.Foreground)
	assert.Equal(t, terminal.Black, theme.Background)
	assert.Equal(t, LevelColors{
		Info:  terminal.Cyan,
		Debug: terminal.DarkGray,
		Warn:  terminal.DarkYellow,
		Error: terminal.Magenta,
	}, theme.Levels)
	assert.Equal(t, ProgressTheme{Percent: terminal.Yellow, Fill: terminal.Blue, Glyph: "="}, theme.Progress)
}

func TestParseThemeErrors(t *testing.T) {
	_, err := ParseTheme([]byte("levels:\n  warn: orange\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, terminal.ErrUnknownColor))

	_, err = ParseTheme([]byte("progress:\n  glyph: \"=>\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one-column character")

	_, err = ParseTheme([]byte("foreground: [\n"))
	assert.Error(t, err)
}

func TestParseThemeRejectsWideGlyph(t *testing.T) {
	for _, glyph := range []string{"🟩", "日"} {
		_, err := ParseTheme([]byte("progress:\n  glyph: \"" + glyph + "\"\n"))
		require.Error(t, err, "glyph %q", glyph)
		assert.Contains(t, err.Error(), "one-column character")
	}
}

func TestThemeApplySkipsWideGlyph(t *testing.T) {
	theme := Theme{Progress: ProgressTheme{Glyph: "🟩"}}

	d := theme.Apply(NewDefaults())
	assert.Equal(t, '#', d.Progress.Glyph)
}

func TestThemeApply(t *testing.T) {
	theme, err := ParseTheme([]byte(fullTheme))
	require.NoError(t, err)

	screen := terminal.NewMemorySurface(40)
	k := New(Options{Surface: screen, Theme: &theme})

	assert.Equal(t, terminal.Gray, k.ForegroundColor())
	assert.Equal(t, terminal.Black, k.BackgroundColor())
	assert.Equal(t, ProgressStyle{PercentColor: terminal.Yellow, FillColor: terminal.Blue, Glyph: '='}, k.Defaults().Progress)

	k.Info("i").Debug("d").Warn("w").Error("e")
	assert.Equal(t, terminal.Cyan, screen.CellAt(0, 0).Fg)
	assert.Equal(t, terminal.DarkGray, screen.CellAt(0, 1).Fg)
	assert.Equal(t, terminal.DarkYellow, screen.CellAt(0, 2).Fg)
	assert.Equal(t, terminal.Magenta, screen.CellAt(0, 3).Fg)
}

func TestThemeApplyKeepsUnsetValues(t *testing.T) {
	theme, err := ParseTheme([]byte("progress:\n  glyph: \"+\"\n"))
	require.NoError(t, err)

	d := theme.Apply(NewDefaults())
	assert.Equal(t, '+', d.Progress.Glyph)
	assert.Equal(t, terminal.Green, d.Progress.FillColor)
	assert.Equal(t, terminal.ColorDefault, d.ForegroundColor)
}

func TestLoadTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullTheme), 0o600))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, terminal.Blue, theme.Progress.Fill)

	_, err = LoadTheme(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("foreground: puce\n"), 0o600))
	_, err = LoadTheme(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	assert.True(t, errors.Is(err, terminal.ErrUnknownColor))
}
