package konsole

import (
	"fmt"
	"strings"

	"github.com/jongio/konsole/terminal"
	"github.com/mattn/go-runewidth"
)

// Header writes a blank line, text, and an '=' underline as wide as text.
func (k *Konsole) Header(text string) *Konsole {
	width := max(runewidth.StringWidth(text), 1)
	return k.NewLine().WriteLine(text).WriteLine(strings.Repeat("=", width))
}

// Label writes an indented "label: value" line with the label in dark gray.
func (k *Konsole) Label(label, value string) *Konsole {
	return k.Write("   ").
		WriteColor(fmt.Sprintf("%-12s", label+":"), terminal.DarkGray).
		WriteLine(" " + value)
}
