package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Color is one of the sixteen console colors. The zero value is ColorDefault,
// which leaves the terminal's own color in place.
type Color int

const (
	ColorDefault Color = iota
	Black
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

// ErrUnknownColor is returned by ParseColor for names it does not recognize.
var ErrUnknownColor = errors.New("unknown color")

var colorNames = [...]string{
	ColorDefault: "Default",
	Black:        "Black",
	DarkBlue:     "DarkBlue",
	DarkGreen:    "DarkGreen",
	DarkCyan:     "DarkCyan",
	DarkRed:      "DarkRed",
	DarkMagenta:  "DarkMagenta",
	DarkYellow:   "DarkYellow",
	Gray:         "Gray",
	DarkGray:     "DarkGray",
	Blue:         "Blue",
	Green:        "Green",
	Cyan:         "Cyan",
	Red:          "Red",
	Magenta:      "Magenta",
	Yellow:       "Yellow",
	White:        "White",
}

// Dark colors map to the normal ANSI palette, the rest to the bright one.
var foregroundAttrs = [...]color.Attribute{
	Black:       color.FgBlack,
	DarkBlue:    color.FgBlue,
	DarkGreen:   color.FgGreen,
	DarkCyan:    color.FgCyan,
	DarkRed:     color.FgRed,
	DarkMagenta: color.FgMagenta,
	DarkYellow:  color.FgYellow,
	Gray:        color.FgWhite,
	DarkGray:    color.FgHiBlack,
	Blue:        color.FgHiBlue,
	Green:       color.FgHiGreen,
	Cyan:        color.FgHiCyan,
	Red:         color.FgHiRed,
	Magenta:     color.FgHiMagenta,
	Yellow:      color.FgHiYellow,
	White:       color.FgHiWhite,
}

var backgroundAttrs = [...]color.Attribute{
	Black:       color.BgBlack,
	DarkBlue:    color.BgBlue,
	DarkGreen:   color.BgGreen,
	DarkCyan:    color.BgCyan,
	DarkRed:     color.BgRed,
	DarkMagenta: color.BgMagenta,
	DarkYellow:  color.BgYellow,
	Gray:        color.BgWhite,
	DarkGray:    color.BgHiBlack,
	Blue:        color.BgHiBlue,
	Green:       color.BgHiGreen,
	Cyan:        color.BgHiCyan,
	Red:         color.BgHiRed,
	Magenta:     color.BgHiMagenta,
	Yellow:      color.BgHiYellow,
	White:       color.BgHiWhite,
}

// Valid reports whether c is ColorDefault or one of the sixteen colors.
func (c Color) Valid() bool {
	return c >= ColorDefault && c <= White
}

// String returns the color name, e.g. "DarkCyan".
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor parses a color name. Matching ignores case, dashes, underscores
// and spaces, so "dark-cyan", "dark_cyan" and "DarkCyan" are equivalent.
// The empty string parses as ColorDefault.
func ParseColor(name string) (Color, error) {
	key := normalizeColorName(name)
	if key == "" {
		return ColorDefault, nil
	}
	for i, n := range colorNames {
		if strings.ToLower(n) == key {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

func normalizeColorName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// UnmarshalYAML decodes a color from its name.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("color must be a string: %w", err)
	}
	parsed, err := ParseColor(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes a color as its name.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// attributes returns the fatih/color attributes for a fg/bg pair. It returns
// nil when both colors are ColorDefault.
func attributes(fg, bg Color) []color.Attribute {
	var attrs []color.Attribute
	if fg != ColorDefault && fg.Valid() {
		attrs = append(attrs, foregroundAttrs[fg])
	}
	if bg != ColorDefault && bg.Valid() {
		attrs = append(attrs, backgroundAttrs[bg])
	}
	return attrs
}
