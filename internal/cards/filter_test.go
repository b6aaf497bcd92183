package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterDeck() []Card {
	return []Card{
		{
			ID: "the-fool", Suit: "major", Number: 0,
			Name:     map[string]string{"en": "The Fool"},
			Keywords: []string{"beginnings", "freedom"},
			Upright:  map[string]Meaning{"en": {Summary: "a fresh journey opens"}},
			Lucky:    &Lucky{Element: "Air", Planet: "Uranus"},
		},
		{
			ID: "the-sun", Suit: "major", Number: 19,
			Name:     map[string]string{"en": "The Sun"},
			Keywords: []string{"joy", "success"},
			Upright:  map[string]Meaning{"en": {Summary: "full daylight"}},
			Lucky:    &Lucky{Element: "Fire", Planet: "Sun"},
		},
		{ID: "ace-of-cups", Suit: "cups", Number: 1},
	}
}

func TestFilter(t *testing.T) {
	deck := filterDeck()

	assert.Len(t, Filter(deck, FilterOptions{}), 3)
	assert.Len(t, Filter(deck, FilterOptions{Suits: []string{"major"}}), 2)
	assert.Len(t, Filter(deck, FilterOptions{Numbers: []int{19}}), 1)
	assert.Len(t, Filter(deck, FilterOptions{Keywords: []string{"joy"}}), 1)
	assert.Len(t, Filter(deck, FilterOptions{Elements: []string{"fire"}}), 1)
	assert.Empty(t, Filter(deck, FilterOptions{Suits: []string{"swords"}}))

	out := Filter(deck, FilterOptions{FreeWords: "daylight"})
	if assert.Len(t, out, 1) {
		assert.Equal(t, "the-sun", out[0].ID)
	}
}
