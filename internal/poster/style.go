package poster

import (
	"fmt"
	"image/color"
	"strings"
)

// Style parameterizes the generic spread branch. The site shipped two
// renderers with overlapping layout and slightly different type scales
// and card geometry; both survive here as alternative styles over one
// compositor.
type Style string

const (
	StyleClassic Style = "classic"
	StyleKit     Style = "kit"
)

type styleSpec struct {
	titleSize    float64
	subtitleSize float64
	keywordSize  float64
	nameSize     float64
	bodySize     float64
	footerSize   float64
	cardFrac     float64 // card slot width as a fraction of canvas width
	cardRatio    float64 // slot height / width
	gapFrac      float64
	raise        float64 // middle-card lift in 3-card spreads
	bodyLines    int
}

var styleSpecs = map[Style]styleSpec{
	StyleClassic: {
		titleSize:    56,
		subtitleSize: 32,
		keywordSize:  26,
		nameSize:     28,
		bodySize:     30,
		footerSize:   24,
		cardFrac:     0.24,
		cardRatio:    1.72,
		gapFrac:      0.04,
		raise:        44,
		bodyLines:    4,
	},
	StyleKit: {
		titleSize:    62,
		subtitleSize: 30,
		keywordSize:  24,
		nameSize:     26,
		bodySize:     28,
		footerSize:   22,
		cardFrac:     0.27,
		cardRatio:    1.6,
		gapFrac:      0.03,
		raise:        36,
		bodyLines:    3,
	},
}

func specFor(s Style) styleSpec {
	if st, ok := styleSpecs[s]; ok {
		return st
	}
	return styleSpecs[StyleClassic]
}

// parseHexColor reads #rgb or #rrggbb swatch values; anything unreadable
// comes back white so a bad lucky color never breaks a render.
func parseHexColor(s string) color.Color {
	var r, g, b uint8

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	if len(s) == 7 {
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	} else if len(s) == 4 {
		fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		r *= 17
		g *= 17
		b *= 17
	} else {
		r, g, b = 255, 255, 255
	}

	return color.RGBA{r, g, b, 255}
}
