package cards

// Orientation values as they appear in payloads and image names.
const (
	OrientationUpright  = "upright"
	OrientationReversed = "reversed"
)

// Meaning is the localized reading text for one card orientation.
type Meaning struct {
	Summary string   `json:"summary,omitempty"`
	Advice  []string `json:"advice,omitempty"`
	Caution []string `json:"caution,omitempty"`
}

// LuckyColor pairs a display name with its swatch hex value.
type LuckyColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Lucky is the lucky-attribute block attached to a card or reading.
type Lucky struct {
	Colors  []LuckyColor `json:"colors,omitempty"`
	Number  int          `json:"number,omitempty"`
	Element string       `json:"element,omitempty"`
	Planet  string       `json:"planet,omitempty"`
}

// Card is one deck entry. Records are immutable once loaded; the store owns
// the collection for the process lifetime.
type Card struct {
	ID          string             `json:"id"`
	SecondaryID string             `json:"secondary_id,omitempty"`
	LegacyID    string             `json:"legacy_id,omitempty"`
	ImageID     string             `json:"image_id,omitempty"`
	Suit        string             `json:"suit"`
	Number      int                `json:"number"`
	Name        map[string]string  `json:"name"`
	Keywords    []string           `json:"keywords,omitempty"`
	Upright     map[string]Meaning `json:"upright,omitempty"`
	Reversed    map[string]Meaning `json:"reversed,omitempty"`
	Lucky       *Lucky             `json:"lucky,omitempty"`
}

// DisplayName returns the card name for lang, falling back to English and
// then to the raw id.
func (c *Card) DisplayName(lang string) string {
	if n, ok := c.Name[lang]; ok && n != "" {
		return n
	}
	if n, ok := c.Name["en"]; ok && n != "" {
		return n
	}
	return c.ID
}

// MeaningFor returns the localized meaning for the given orientation,
// falling back to English when the language has no entry.
func (c *Card) MeaningFor(lang, orientation string) Meaning {
	src := c.Upright
	if orientation == OrientationReversed {
		src = c.Reversed
	}
	if m, ok := src[lang]; ok {
		return m
	}
	return src["en"]
}

// BaseImageID returns the identifier used to build artwork URLs.
func (c *Card) BaseImageID() string {
	if c.ImageID != "" {
		return c.ImageID
	}
	return NormalizeID(c.ID)
}
