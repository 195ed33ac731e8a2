package konsole

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/jongio/konsole/terminal"
	"gopkg.in/yaml.v3"
)

// Theme is a YAML-configurable set of session colors. Colors left unset (or
// set to "default") keep the value they override.
//
//	foreground: default
//	background: default
//	levels:
//	  info: white
//	  debug: green
//	  warn: yellow
//	  error: red
//	progress:
//	  percent: white
//	  fill: green
//	  glyph: "#"
type Theme struct {
	Foreground terminal.Color `yaml:"foreground"`
	Background terminal.Color `yaml:"background"`
	Levels     LevelColors    `yaml:"levels"`
	Progress   ProgressTheme  `yaml:"progress"`
}

// LevelColors are the colors of the Info, Debug, Warn and Error writers.
type LevelColors struct {
	Info  terminal.Color `yaml:"info"`
	Debug terminal.Color `yaml:"debug"`
	Warn  terminal.Color `yaml:"warn"`
	Error terminal.Color `yaml:"error"`
}

// ProgressTheme configures progress bar rendering.
type ProgressTheme struct {
	Percent terminal.Color `yaml:"percent"`
	Fill    terminal.Color `yaml:"fill"`
	Glyph   string         `yaml:"glyph"`
}

// LoadTheme reads a theme from a YAML file.
func LoadTheme(path string) (Theme, error) {
	// #nosec G304 -- theme path is chosen by the user running the program
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme: %w", err)
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return theme, nil
}

// ParseTheme decodes a theme from YAML.
func ParseTheme(data []byte) (Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("invalid theme: %w", err)
	}
	if g := theme.Progress.Glyph; g != "" {
		r, _ := utf8.DecodeRuneInString(g)
		if utf8.RuneCountInString(g) != 1 || !validGlyph(r) {
			return Theme{}, fmt.Errorf("invalid theme: progress glyph must be a single one-column character, got %q", g)
		}
	}
	return theme, nil
}

// Apply returns d with the theme's colors applied.
func (t Theme) Apply(d Defaults) Defaults {
	if t.Foreground != terminal.ColorDefault {
		d.ForegroundColor = t.Foreground
	}
	if t.Background != terminal.ColorDefault {
		d.BackgroundColor = t.Background
	}
	if t.Levels.Info != terminal.ColorDefault {
		d.Info = lineWriter(t.Levels.Info)
	}
	if t.Levels.Debug != terminal.ColorDefault {
		d.Debug = lineWriter(t.Levels.Debug)
	}
	if t.Levels.Warn != terminal.ColorDefault {
		d.Warn = lineWriter(t.Levels.Warn)
	}
	if t.Levels.Error != terminal.ColorDefault {
		d.Error = lineWriter(t.Levels.Error)
	}
	if t.Progress.Percent != terminal.ColorDefault {
		d.Progress.PercentColor = t.Progress.Percent
	}
	if t.Progress.Fill != terminal.ColorDefault {
		d.Progress.FillColor = t.Progress.Fill
	}
	if r, _ := utf8.DecodeRuneInString(t.Progress.Glyph); utf8.RuneCountInString(t.Progress.Glyph) == 1 && validGlyph(r) {
		d.Progress.Glyph = r
	}
	return d
}
