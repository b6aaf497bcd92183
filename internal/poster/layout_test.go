package poster

import (
	"strings"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runeMeasure charges 10px per rune, which keeps expectations arithmetic.
func runeMeasure(s string) float64 {
	return float64(len([]rune(s))) * 10
}

func TestWrapLinesEmpty(t *testing.T) {
	assert.Nil(t, wrapLines(runeMeasure, "", 100, 0))
	assert.Nil(t, wrapLines(runeMeasure, "   ", 100, 0))
}

func TestWrapLinesGreedy(t *testing.T) {
	lines := wrapLines(runeMeasure, "The quick brown fox jumps", 100, 0)
	assert.Equal(t, []string{"The quick", "brown fox", "jumps"}, lines)
}

func TestWrapLinesWidthProperty(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog",
		"one two three four five six seven eight nine ten",
		"a b c d e f g",
	}
	for _, text := range texts {
		for _, maxWidth := range []float64{60, 100, 150} {
			for _, line := range wrapLines(runeMeasure, text, maxWidth, 0) {
				if len(strings.Fields(line)) > 1 {
					assert.LessOrEqual(t, runeMeasure(line), maxWidth,
						"line %q under width %v", line, maxWidth)
				}
			}
		}
	}
}

func TestWrapLinesMaxLinesEllipsis(t *testing.T) {
	lines := wrapLines(runeMeasure, "The quick brown fox jumps", 100, 1)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], ellipsis))
	assert.LessOrEqual(t, runeMeasure(lines[0]), 100.0)
}

func TestWrapLinesEllipsisNothingFits(t *testing.T) {
	lines := wrapLines(runeMeasure, "alpha beta gamma", 10, 1)
	require.Len(t, lines, 1)
	assert.Equal(t, ellipsis, lines[0])
}

func TestWrapLinesLongSingleToken(t *testing.T) {
	lines := wrapLines(runeMeasure, "Supercalifragilistic", 50, 0)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, runeMeasure(line), 50.0)
	}
	assert.Equal(t, "Supercalifragilistic", strings.Join(lines, ""))
}

func TestWrapLinesThaiCharacterFallback(t *testing.T) {
	text := "ทางสายกลางจะพาคุณไปได้ไกล"
	lines := wrapLines(runeMeasure, text, 50, 0)
	require.Greater(t, len(lines), 1, "Thai text wraps at character level")
	for _, line := range lines {
		assert.LessOrEqual(t, runeMeasure(line), 50.0)
	}
}

func TestDrawWrappedCursor(t *testing.T) {
	cv := &canvas{dc: gg.NewContext(400, 400), w: 400, h: 400}
	cv.setFace(false, 20)

	// empty text is a no-op
	assert.Equal(t, 100.0, cv.drawWrapped("", 10, 100, 200, 30, 0))

	// one capped line advances the cursor by exactly one line height
	next := cv.drawWrapped("The quick brown fox jumps over the lazy dog", 10, 100, 120, 30, 1)
	assert.Equal(t, 130.0, next)
}
