package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stripANSI removes ANSI escape sequences from a string for content assertions.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		if r == '\x1b' {
			inEscape = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestRenderSparkline_Empty(t *testing.T) {
	assert.Equal(t, "", RenderSparkline(nil, 10, ColorInfo))
	assert.Equal(t, "", RenderSparkline([]float64{1, 2}, 0, ColorInfo))
}

func TestRenderSparkline_WidthTruncation(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out := stripANSI(RenderSparkline(data, 4, ColorInfo))

	// Only the most recent 4 points should be rendered.
	assert.Equal(t, 4, len([]rune(out)))
}

func TestRenderSparkline_FlatDataUsesMiddleLevel(t *testing.T) {
	data := []float64{5, 5, 5}
	out := stripANSI(RenderSparkline(data, 3, ColorInfo))

	runes := []rune(out)
	assert.Len(t, runes, 3)
	for _, r := range runes {
		assert.Equal(t, sparklineBlockRunes[len(sparklineBlockRunes)/2], r)
	}
}

func TestRenderSparkline_MinMaxMapping(t *testing.T) {
	data := []float64{0, 100}
	out := stripANSI(RenderSparkline(data, 2, ColorInfo))

	runes := []rune(out)
	assert.Len(t, runes, 2)
	assert.Equal(t, sparklineBlockRunes[0], runes[0], "minimum value maps to lowest block")
	assert.Equal(t, sparklineBlockRunes[len(sparklineBlockRunes)-1], runes[1], "maximum value maps to highest block")
}
