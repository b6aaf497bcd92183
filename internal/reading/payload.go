package reading

import (
	"errors"
	"strings"

	"github.com/youruser/tarotshare/internal/cards"
)

// Mode is the kind of reading a payload describes.
type Mode string

const (
	ModeDaily    Mode = "daily"
	ModeQuestion Mode = "question"
	ModeOverall  Mode = "overall"
)

// Spread names how many cards were drawn and how they are laid out.
type Spread string

const (
	SpreadQuick             Spread = "quick"
	SpreadPastPresentFuture Spread = "past-present-future"
)

// Size returns the card count the spread expects.
func (s Spread) Size() int {
	if s == SpreadPastPresentFuture {
		return 3
	}
	return 1
}

// CardRef points at a deck card as drawn in a reading.
type CardRef struct {
	ID          string `json:"id"`
	Orientation string `json:"orientation"`
	Name        string `json:"name,omitempty"`
}

// Summary is the free-text portion of a reading.
type Summary struct {
	Summary string   `json:"summary,omitempty"`
	Advice  []string `json:"advice,omitempty"`
	Caution []string `json:"caution,omitempty"`
}

// Payload is the full share payload as carried in share links and session
// storage. It is constructed once and treated as read-only afterwards.
type Payload struct {
	Mode         Mode         `json:"mode"`
	Spread       Spread       `json:"spread,omitempty"`
	Lang         string       `json:"lang"`
	Title        string       `json:"title,omitempty"`
	Subtitle     string       `json:"subtitle,omitempty"`
	Headline     string       `json:"headline,omitempty"`
	Keywords     []string     `json:"keywords,omitempty"`
	Cards        []CardRef    `json:"cards"`
	Reading      *Summary     `json:"reading,omitempty"`
	Lucky        *cards.Lucky `json:"lucky,omitempty"`
	CanonicalURL string       `json:"canonicalUrl,omitempty"`
}

var ErrNoCards = errors.New("reading payload has no cards")

// Normalize validates the payload at the decode boundary and fills
// defaults so downstream code can assume presence.
func (p *Payload) Normalize() error {
	if len(p.Cards) == 0 {
		return ErrNoCards
	}
	switch p.Mode {
	case ModeDaily, ModeQuestion, ModeOverall:
	default:
		p.Mode = ModeDaily
	}
	if p.Lang == "" {
		p.Lang = "en"
	}
	if p.Spread == "" {
		if len(p.Cards) >= 3 {
			p.Spread = SpreadPastPresentFuture
		} else {
			p.Spread = SpreadQuick
		}
	}
	for i := range p.Cards {
		if p.Cards[i].Orientation != cards.OrientationReversed {
			p.Cards[i].Orientation = cards.OrientationUpright
		}
	}
	return nil
}

// IsDaily reports whether the payload is a single-card daily reading,
// which gets the specialized story layout.
func (p *Payload) IsDaily() bool {
	return p.Mode == ModeDaily && len(p.Cards) == 1
}

// KeywordLine joins the keyword list for single-line display.
func (p *Payload) KeywordLine() string {
	return strings.Join(p.Keywords, " · ")
}
