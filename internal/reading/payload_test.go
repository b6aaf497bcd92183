package reading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/tarotshare/internal/cards"
)

func TestNormalizeDefaults(t *testing.T) {
	p := &Payload{
		Mode: Mode("mystery"),
		Cards: []CardRef{
			{ID: "the-fool", Orientation: "sideways"},
			{ID: "death", Orientation: cards.OrientationReversed},
			{ID: "the-sun"},
		},
	}
	require.NoError(t, p.Normalize())

	assert.Equal(t, ModeDaily, p.Mode)
	assert.Equal(t, "en", p.Lang)
	assert.Equal(t, SpreadPastPresentFuture, p.Spread)
	assert.Equal(t, cards.OrientationUpright, p.Cards[0].Orientation)
	assert.Equal(t, cards.OrientationReversed, p.Cards[1].Orientation)
	assert.Equal(t, cards.OrientationUpright, p.Cards[2].Orientation)
}

func TestNormalizeRejectsEmpty(t *testing.T) {
	p := &Payload{Mode: ModeDaily}
	assert.ErrorIs(t, p.Normalize(), ErrNoCards)
}

func TestIsDaily(t *testing.T) {
	one := &Payload{Mode: ModeDaily, Cards: []CardRef{{ID: "the-fool"}}}
	require.NoError(t, one.Normalize())
	assert.True(t, one.IsDaily())

	three := &Payload{Mode: ModeDaily, Cards: []CardRef{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	require.NoError(t, three.Normalize())
	assert.False(t, three.IsDaily())
}

func TestSpreadSize(t *testing.T) {
	assert.Equal(t, 1, SpreadQuick.Size())
	assert.Equal(t, 3, SpreadPastPresentFuture.Size())
	assert.Equal(t, 1, Spread("anything-else").Size())
}

func TestExportText(t *testing.T) {
	p := &Payload{
		Mode:  ModeOverall,
		Title: "Monthly Outlook",
		Cards: []CardRef{
			{ID: "the-star", Orientation: cards.OrientationUpright, Name: "The Star"},
			{ID: "the-tower", Orientation: cards.OrientationReversed},
		},
		Reading: &Summary{
			Summary: "Hope returns after upheaval.",
			Advice:  []string{"Rest first."},
			Caution: []string{"No big gambles."},
		},
		CanonicalURL: "https://mystictarot.example/share/?d=abc",
	}
	require.NoError(t, p.Normalize())

	out := ExportText(p)
	assert.True(t, strings.HasPrefix(out, "# Monthly Outlook"))
	assert.Contains(t, out, "- The Star (upright)")
	assert.Contains(t, out, "- the-tower (reversed)")
	assert.Contains(t, out, "+ Rest first.")
	assert.Contains(t, out, "! No big gambles.")
	assert.Contains(t, out, "https://mystictarot.example/share/?d=abc")
}
