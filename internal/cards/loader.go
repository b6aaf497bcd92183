package cards

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store holds the deck in memory. Load replaces the collection wholesale;
// a failed load leaves the store empty rather than keeping stale records.
type Store struct {
	mu    sync.RWMutex
	cards []Card
}

func NewStore() *Store {
	return &Store{}
}

// Cards returns the loaded deck. The returned slice must not be mutated.
func (s *Store) Cards() []Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cards
}

// Find looks up a card by id using the normalized two-pass match.
func (s *Store) Find(id string) *Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FindByID(s.cards, id)
}

// LoadDataDir loads JSON deck files from dataDir (best-effort). It expects
// at least cards.json; extension decks are optional.
func (s *Store) LoadDataDir(dataDir string) error {
	files := []string{
		filepath.Join(dataDir, "cards.json"),
		filepath.Join(dataDir, "custom_cards.json"),
	}

	var all []Card
	var found bool
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			// skip missing files
			continue
		}
		found = true
		cs, err := loadSingleJSON(f)
		if err != nil {
			s.replace(nil)
			return fmt.Errorf("loading %s: %w", f, err)
		}
		all = append(all, cs...)
	}
	if !found {
		s.replace(nil)
		return fmt.Errorf("no deck files found in %s", dataDir)
	}
	s.replace(all)
	return nil
}

func (s *Store) replace(cs []Card) {
	s.mu.Lock()
	s.cards = cs
	s.mu.Unlock()
}

func loadSingleJSON(path string) ([]Card, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	var out []Card
	if err := json.NewDecoder(fp).Decode(&out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}
