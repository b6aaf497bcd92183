package cards

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"The Fool", "the-fool"},
		{"the-fool-upright", "the-fool"},
		{"the-fool-reversed", "the-fool"},
		{"THE--MAGICIAN", "the-magician"},
		{"  wheel of fortune  ", "wheel-of-fortune"},
		{"l'impératrice", "l-imp-ratrice"},
		{"---", ""},
		{"", ""},
		{"the-fool-reversed-reversed", "the-fool"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeID(c.in), "input %q", c.in)
	}
}

func TestNormalizeIDProperties(t *testing.T) {
	inputs := []string{
		"The High Priestess", "x-REVERSED", "-a-", "ไพ่ทาโรต์", "a__b__c",
		"Death!!", "strength-upright", "", "🃏 joker",
	}
	for _, in := range inputs {
		out := NormalizeID(in)
		assert.Equal(t, strings.ToLower(out), out, "no uppercase for %q", in)
		assert.False(t, strings.HasPrefix(out, "-"), "no leading separator for %q", in)
		assert.False(t, strings.HasSuffix(out, "-"), "no trailing separator for %q", in)
		assert.False(t, strings.HasSuffix(out, "-upright"), "no upright suffix for %q", in)
		assert.False(t, strings.HasSuffix(out, "-reversed"), "no reversed suffix for %q", in)
	}
}

func testDeck() []Card {
	return []Card{
		{ID: "the-fool", Name: map[string]string{"en": "The Fool"}},
		{ID: "the-high-priestess", SecondaryID: "high-priestess", LegacyID: "priestess"},
		{ID: "wheel-of-fortune"},
	}
}

func TestFindByID(t *testing.T) {
	deck := testDeck()

	got := FindByID(deck, "the-fool")
	require.NotNil(t, got)
	assert.Equal(t, "the-fool", got.ID)

	assert.Nil(t, FindByID(deck, "no-such-card"))

	// secondary and legacy ids resolve to the same record
	bySecondary := FindByID(deck, "high-priestess")
	byLegacy := FindByID(deck, "priestess")
	require.NotNil(t, bySecondary)
	assert.Same(t, bySecondary, byLegacy)

	// normalized match
	got = FindByID(deck, "The Fool")
	require.NotNil(t, got)
	assert.Equal(t, "the-fool", got.ID)
}

func TestFindByIDIdempotent(t *testing.T) {
	deck := testDeck()
	first := FindByID(deck, "wheel-of-fortune")
	require.NotNil(t, first)
	assert.Same(t, first, FindByID(deck, first.ID))
}

func TestFindByIDReversedSuffixRecoversBaseCard(t *testing.T) {
	deck := testDeck()
	base := FindByID(deck, "the-fool")
	suffixed := FindByID(deck, "the-fool-reversed")
	require.NotNil(t, base)
	assert.Same(t, base, suffixed)
}
