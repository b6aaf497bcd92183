package cards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDeck(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadDataDir(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "cards.json", `[{"id":"the-fool","suit":"major","name":{"en":"The Fool"}}]`)
	writeDeck(t, dir, "custom_cards.json", `[{"id":"house-card","suit":"custom","name":{"en":"House Card"}}]`)

	s := NewStore()
	require.NoError(t, s.LoadDataDir(dir))
	assert.Len(t, s.Cards(), 2)
	assert.NotNil(t, s.Find("house-card"))
}

func TestLoadDataDirMissing(t *testing.T) {
	s := NewStore()
	err := s.LoadDataDir(t.TempDir())
	assert.Error(t, err)
	assert.Empty(t, s.Cards())
}

func TestLoadFailureEmptiesStore(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "cards.json", `[{"id":"the-fool"}]`)

	s := NewStore()
	require.NoError(t, s.LoadDataDir(dir))
	require.Len(t, s.Cards(), 1)

	// A later failed reload must not keep stale records around.
	writeDeck(t, dir, "cards.json", `{not json`)
	assert.Error(t, s.LoadDataDir(dir))
	assert.Empty(t, s.Cards())
}

func TestRealDeckParses(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.LoadDataDir(filepath.Join("..", "..", "data")))
	cs := s.Cards()
	require.Len(t, cs, 22)
	for _, c := range cs {
		assert.Equal(t, NormalizeID(c.ID), c.ID, "deck ids are pre-normalized")
		assert.NotEmpty(t, c.Name["en"], "card %s has an English name", c.ID)
		assert.NotEmpty(t, c.MeaningFor("en", OrientationUpright).Summary, "card %s has an upright summary", c.ID)
		assert.NotEmpty(t, c.MeaningFor("th", OrientationUpright).Summary, "card %s has a Thai summary", c.ID)
	}
}
