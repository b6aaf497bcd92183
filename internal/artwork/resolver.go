package artwork

import (
	"fmt"
	"strings"

	"github.com/youruser/tarotshare/internal/cards"
)

// Resolver derives deterministic artwork URLs from a base id and
// orientation. The reversed variant lives next to the upright one under
// the same base id.
type Resolver struct {
	BaseURL string
}

// ImageURL builds the URL for one artwork variant. Unknown orientations
// are treated as upright.
func (r Resolver) ImageURL(baseID, orientation string) string {
	if orientation != cards.OrientationReversed {
		orientation = cards.OrientationUpright
	}
	return fmt.Sprintf("%s/%s-%s.png", strings.TrimRight(r.BaseURL, "/"), baseID, orientation)
}

// CardImageURL resolves the artwork URL for a deck card.
func (r Resolver) CardImageURL(c *cards.Card, orientation string) string {
	return r.ImageURL(c.BaseImageID(), orientation)
}
