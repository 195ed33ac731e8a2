package terminal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"", ColorDefault},
		{"default", ColorDefault},
		{"black", Black},
		{"DarkCyan", DarkCyan},
		{"dark-cyan", DarkCyan},
		{"dark_cyan", DarkCyan},
		{" Dark Yellow ", DarkYellow},
		{"GRAY", Gray},
		{"darkgray", DarkGray},
		{"white", White},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorUnknown(t *testing.T) {
	_, err := ParseColor("chartreuse")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownColor))
	assert.Contains(t, err.Error(), "chartreuse")
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "DarkMagenta", DarkMagenta.String())
	assert.Equal(t, "Default", ColorDefault.String())
	assert.Equal(t, "Color(42)", Color(42).String())
	assert.False(t, Color(42).Valid())
	assert.False(t, Color(-1).Valid())
}

func TestColorNamesRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= White; c++ {
		got, err := ParseColor(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestColorUnmarshalYAML(t *testing.T) {
	var doc struct {
		Fill Color `yaml:"fill"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("fill: dark-green\n"), &doc))
	assert.Equal(t, DarkGreen, doc.Fill)

	err := yaml.Unmarshal([]byte("\nfill: mauve\n"), &doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownColor))
	assert.Contains(t, err.Error(), "line 2")

	err = yaml.Unmarshal([]byte("fill: [1, 2]\n"), &doc)
	assert.Error(t, err)
}

func TestAttributes(t *testing.T) {
	assert.Empty(t, attributes(ColorDefault, ColorDefault))
	assert.Len(t, attributes(Red, ColorDefault), 1)
	assert.Len(t, attributes(Red, Blue), 2)
	assert.Empty(t, attributes(Color(99), Color(-3)))
}
