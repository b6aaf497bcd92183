package poster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/tarotshare/internal/cards"
	"github.com/youruser/tarotshare/internal/reading"
)

// ArtSource supplies card artwork. Implementations return nil when no
// variant could be loaded; the composer then draws a placeholder panel.
type ArtSource interface {
	CardImage(ctx context.Context, baseID, orientation string) image.Image
}

// Poster is a finished render. The caller owns the bytes.
type Poster struct {
	PNG    []byte
	Width  int
	Height int
}

// Options selects the pixel preset and (for spread posters) the style.
type Options struct {
	Preset Preset
	Style  Style
}

// Composer turns share payloads into poster images. One gg context is
// allocated per build and never reused.
type Composer struct {
	store *cards.Store
	art   ArtSource
	brand string
	site  string
}

func NewComposer(store *cards.Store, art ArtSource, brand, site string) *Composer {
	if brand == "" {
		brand = "✶ Mystic Tarot"
	}
	return &Composer{store: store, art: art, brand: brand, site: site}
}

// BuildPoster composes the poster for p. A missing card image never fails
// the build; only PNG encoding is fatal.
func (c *Composer) BuildPoster(ctx context.Context, p *reading.Payload, opts Options) (*Poster, error) {
	w, h := opts.Preset.Dimensions()
	dc := gg.NewContext(w, h)

	cv := &canvas{dc: dc, w: float64(w), h: float64(h)}
	cv.drawBackground()

	if p.IsDaily() && opts.Preset == PresetStory {
		c.composeDaily(ctx, cv, p)
	} else {
		c.composeSpread(ctx, cv, p, specFor(opts.Style))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encode poster: %w", err)
	}
	return &Poster{PNG: buf.Bytes(), Width: w, Height: h}, nil
}

// canvas wraps a gg context with measurement helpers and the cursor-based
// wrapped-text drawing the layouts are built on.
type canvas struct {
	dc   *gg.Context
	w, h float64
}

func (cv *canvas) setFace(bold bool, size float64) {
	cv.dc.SetFontFace(fontFace(bold, size))
}

func (cv *canvas) measure(s string) float64 {
	w, _ := cv.dc.MeasureString(s)
	return w
}

// drawWrapped draws text wrapped to maxWidth starting at baseline y and
// returns the baseline immediately below the last drawn line. Empty text
// draws nothing and returns y unchanged.
func (cv *canvas) drawWrapped(text string, x, y, maxWidth, lineHeight float64, maxLines int) float64 {
	lines := wrapLines(cv.measure, text, maxWidth, maxLines)
	for i, line := range lines {
		cv.dc.DrawString(line, x, y+float64(i)*lineHeight)
	}
	return y + float64(len(lines))*lineHeight
}

// drawWrappedCentered is drawWrapped with every line centered on cx.
func (cv *canvas) drawWrappedCentered(text string, cx, y, maxWidth, lineHeight float64, maxLines int) float64 {
	lines := wrapLines(cv.measure, text, maxWidth, maxLines)
	for i, line := range lines {
		cv.dc.DrawStringAnchored(line, cx, y+float64(i)*lineHeight, 0.5, 0)
	}
	return y + float64(len(lines))*lineHeight
}

// Nine fixed stars scattered over the gradient, in relative coordinates.
var starField = [9][4]float64{
	{0.08, 0.05, 2.6, 0.55},
	{0.21, 0.12, 1.8, 0.35},
	{0.36, 0.04, 2.2, 0.45},
	{0.55, 0.09, 1.6, 0.30},
	{0.71, 0.03, 2.8, 0.60},
	{0.84, 0.11, 1.9, 0.40},
	{0.93, 0.06, 2.4, 0.50},
	{0.15, 0.90, 2.0, 0.35},
	{0.88, 0.93, 2.3, 0.45},
}

func (cv *canvas) drawBackground() {
	grad := gg.NewLinearGradient(0, 0, 0, cv.h)
	grad.AddColorStop(0, color.RGBA{0x2b, 0x1a, 0x4e, 0xff})
	grad.AddColorStop(0.55, color.RGBA{0x1b, 0x10, 0x33, 0xff})
	grad.AddColorStop(1, color.RGBA{0x0d, 0x07, 0x1e, 0xff})
	cv.dc.SetFillStyle(grad)
	cv.dc.DrawRectangle(0, 0, cv.w, cv.h)
	cv.dc.Fill()

	for _, s := range starField {
		cv.dc.SetRGBA(1, 1, 1, s[3])
		cv.dc.DrawCircle(s[0]*cv.w, s[1]*cv.h, s[2])
		cv.dc.Fill()
	}
}

func (cv *canvas) roundedPanel(x, y, w, h, r float64, col color.Color) {
	cv.dc.SetColor(col)
	cv.dc.DrawRoundedRectangle(x, y, w, h, r)
	cv.dc.Fill()
}

// drawArt fits img into the box and draws it centered, or paints a solid
// placeholder panel labeled with the card name when img is nil.
func (cv *canvas) drawArt(img image.Image, name string, x, y, w, h float64) {
	if img == nil {
		cv.roundedPanel(x, y, w, h, 18, color.RGBA{0x3a, 0x2a, 0x5e, 0xff})
		cv.dc.SetRGBA(1, 1, 1, 0.8)
		cv.setFace(false, 24)
		cv.drawWrappedCentered(name, x+w/2, y+h/2, w-24, 30, 2)
		return
	}
	fitted := imaging.Fit(img, int(w), int(h), imaging.Lanczos)
	cv.dc.DrawImageAnchored(fitted, int(x+w/2), int(y+h/2), 0.5, 0.5)
}

// composeDaily is the specialized single-card story layout: every block's
// vertical position is the cursor left by the previous block, so long
// localized text pushes later chrome down instead of overlapping it.
func (c *Composer) composeDaily(ctx context.Context, cv *canvas, p *reading.Payload) {
	const margin = 72.0
	ref := p.Cards[0]
	card := c.store.Find(ref.ID)

	name := ref.Name
	baseID := cards.NormalizeID(ref.ID)
	var meaning cards.Meaning
	if card != nil {
		if name == "" {
			name = card.DisplayName(p.Lang)
		}
		baseID = card.BaseImageID()
		meaning = card.MeaningFor(p.Lang, ref.Orientation)
	}
	if p.Reading != nil {
		meaning = cards.Meaning{Summary: p.Reading.Summary, Advice: p.Reading.Advice, Caution: p.Reading.Caution}
	}

	cx := cv.w / 2
	y := 150.0

	cv.dc.SetRGBA(1, 1, 1, 1)
	cv.setFace(true, 64)
	y = cv.drawWrappedCentered(p.Title, cx, y, cv.w-2*margin, 76, 2)

	if p.Subtitle != "" {
		cv.dc.SetRGBA(1, 1, 1, 0.75)
		cv.setFace(false, 34)
		y = cv.drawWrappedCentered(p.Subtitle, cx, y+14, cv.w-2*margin, 44, 2)
	}

	cv.dc.SetRGBA(0xf5/255.0, 0xd7/255.0, 0x6e/255.0, 1)
	cv.setFace(true, 46)
	y = cv.drawWrappedCentered(name, cx, y+40, cv.w-2*margin, 56, 1)

	// Card panel with a soft drop shadow behind the artwork.
	cardW, cardH := 540.0, 900.0
	panelX, panelY := cx-cardW/2, y+36
	cv.roundedPanel(panelX+12, panelY+16, cardW, cardH, 24, color.RGBA{0, 0, 0, 90})
	cv.roundedPanel(panelX, panelY, cardW, cardH, 24, color.RGBA{0xff, 0xff, 0xff, 0x14})

	var img image.Image
	if c.art != nil {
		img = c.art.CardImage(ctx, baseID, ref.Orientation)
	}
	cv.drawArt(img, name, panelX+20, panelY+20, cardW-40, cardH-40)
	y = panelY + cardH + 56

	// Summary panel height depends on the wrapped text, so wrap first.
	textW := cv.w - 2*margin - 64
	cv.setFace(false, 30)
	summaryLines := wrapLines(cv.measure, meaning.Summary, textW, 4)
	advice := meaning.Advice
	if len(advice) > 2 {
		advice = advice[:2]
	}
	caution := meaning.Caution
	if len(caution) > 1 {
		caution = caution[:1]
	}

	panelH := 128.0 + float64(len(summaryLines))*42
	panelH += float64(len(advice)+len(caution)) * 42
	cv.roundedPanel(margin, y, cv.w-2*margin, panelH, 24, color.RGBA{0xff, 0xff, 0xff, 0x1c})

	ty := y + 56
	cv.dc.SetRGBA(0xf5/255.0, 0xd7/255.0, 0x6e/255.0, 1)
	cv.setFace(true, 34)
	cv.dc.DrawString(headingFor(p.Lang), margin+32, ty)
	ty += 52

	cv.dc.SetRGBA(1, 1, 1, 0.92)
	cv.setFace(false, 30)
	for _, line := range summaryLines {
		cv.dc.DrawString(line, margin+32, ty)
		ty += 42
	}
	for _, a := range advice {
		ty = cv.drawWrapped("+ "+a, margin+32, ty, textW, 42, 1)
	}
	cv.dc.SetRGBA(0xf0/255.0, 0x9a/255.0, 0x8a/255.0, 0.95)
	for _, cz := range caution {
		ty = cv.drawWrapped("! "+cz, margin+32, ty, textW, 42, 1)
	}
	y += panelH + 48

	lucky := p.Lucky
	if lucky == nil && card != nil {
		lucky = card.Lucky
	}
	if lucky != nil {
		y = cv.drawLuckyRow(lucky, margin, y)
	}

	cv.dc.SetRGBA(1, 1, 1, 0.85)
	cv.setFace(true, 28)
	cv.dc.DrawStringAnchored(c.brand, cx, cv.h-72, 0.5, 0.5)
}

// drawLuckyRow lays out color swatches then attribute chips, returning
// the cursor below the row.
func (cv *canvas) drawLuckyRow(lucky *cards.Lucky, x, y float64) float64 {
	const swatchR = 22.0
	cv.setFace(false, 24)

	cx := x
	for _, lc := range lucky.Colors {
		cv.dc.SetColor(parseHexColor(lc.Hex))
		cv.dc.DrawCircle(cx+swatchR, y+swatchR, swatchR)
		cv.dc.Fill()
		cv.dc.SetRGBA(1, 1, 1, 0.85)
		nameW := cv.measure(lc.Name)
		cv.dc.DrawString(lc.Name, cx+2*swatchR+10, y+swatchR+8)
		cx += 2*swatchR + 10 + nameW + 28
	}

	chips := luckyChips(lucky)
	for _, chip := range chips {
		chipW := cv.measure(chip) + 36
		cv.roundedPanel(cx, y, chipW, 2*swatchR, swatchR, color.RGBA{0xff, 0xff, 0xff, 0x22})
		cv.dc.SetRGBA(1, 1, 1, 0.9)
		cv.dc.DrawStringAnchored(chip, cx+chipW/2, y+swatchR, 0.5, 0.35)
		cx += chipW + 16
	}
	return y + 2*swatchR + 40
}

func luckyChips(l *cards.Lucky) []string {
	var chips []string
	if l.Number > 0 {
		chips = append(chips, fmt.Sprintf("№ %d", l.Number))
	}
	if l.Element != "" {
		chips = append(chips, l.Element)
	}
	if l.Planet != "" {
		chips = append(chips, l.Planet)
	}
	return chips
}

func headingFor(lang string) string {
	if lang == "th" {
		return "คำทำนาย"
	}
	return "Your reading"
}

// composeSpread is the generic branch: any preset, 1 to 3 card slots,
// optional share QR in the footer corner.
func (c *Composer) composeSpread(ctx context.Context, cv *canvas, p *reading.Payload, st styleSpec) {
	margin := cv.w * 0.065
	cx := cv.w / 2
	y := cv.h * 0.07

	cv.dc.SetRGBA(1, 1, 1, 1)
	cv.setFace(true, st.titleSize)
	y = cv.drawWrappedCentered(p.Title, cx, y, cv.w-2*margin, st.titleSize*1.2, 2)

	if p.Subtitle != "" {
		cv.dc.SetRGBA(1, 1, 1, 0.75)
		cv.setFace(false, st.subtitleSize)
		y = cv.drawWrappedCentered(p.Subtitle, cx, y+10, cv.w-2*margin, st.subtitleSize*1.35, 1)
	}
	if kw := p.KeywordLine(); kw != "" {
		cv.dc.SetRGBA(0xf5/255.0, 0xd7/255.0, 0x6e/255.0, 0.9)
		cv.setFace(false, st.keywordSize)
		y = cv.drawWrappedCentered(kw, cx, y+8, cv.w-2*margin, st.keywordSize*1.35, 1)
	}

	refs := p.Cards
	if len(refs) > 3 {
		refs = refs[:3]
	}
	n := len(refs)
	cardW := cv.w * st.cardFrac
	cardH := cardW * st.cardRatio
	gap := cv.w * st.gapFrac
	rowW := float64(n)*cardW + float64(n-1)*gap
	x0 := cx - rowW/2
	rowY := y + 48

	for i, ref := range refs {
		slotX := x0 + float64(i)*(cardW+gap)
		slotY := rowY
		if n == 3 && i == 1 {
			slotY -= st.raise
		}

		card := c.store.Find(ref.ID)
		name := ref.Name
		baseID := cards.NormalizeID(ref.ID)
		if card != nil {
			if name == "" {
				name = card.DisplayName(p.Lang)
			}
			baseID = card.BaseImageID()
		}

		var img image.Image
		if c.art != nil {
			img = c.art.CardImage(ctx, baseID, ref.Orientation)
		}
		cv.roundedPanel(slotX, slotY, cardW, cardH, 16, color.RGBA{0xff, 0xff, 0xff, 0x12})
		cv.drawArt(img, name, slotX+10, slotY+10, cardW-20, cardH-20)

		cv.dc.SetRGBA(1, 1, 1, 0.9)
		cv.setFace(true, st.nameSize)
		cv.drawWrappedCentered(name, slotX+cardW/2, slotY+cardH+36, cardW+gap*0.8, st.nameSize*1.3, 2)
	}
	y = rowY + cardH + st.raise + 96

	body := p.Headline
	if body == "" && p.Reading != nil {
		body = p.Reading.Summary
	}
	if body != "" {
		cv.dc.SetRGBA(1, 1, 1, 0.92)
		cv.setFace(false, st.bodySize)
		y = cv.drawWrappedCentered(body, cx, y, cv.w-2*margin, st.bodySize*1.45, st.bodyLines)
	}

	cv.dc.SetRGBA(1, 1, 1, 0.85)
	cv.setFace(true, st.footerSize)
	cv.dc.DrawStringAnchored(c.brand, cx, cv.h-88, 0.5, 0.5)
	if link := footerLink(p, c.site); link != "" {
		cv.dc.SetRGBA(1, 1, 1, 0.6)
		cv.setFace(false, st.footerSize-4)
		cv.dc.DrawStringAnchored(link, cx, cv.h-52, 0.5, 0.5)
		cv.drawShareQR(link, margin)
	}
}

func footerLink(p *reading.Payload, site string) string {
	if p.CanonicalURL != "" {
		return p.CanonicalURL
	}
	return site
}

// drawShareQR puts a small scan target in the bottom-right corner. A QR
// failure is cosmetic and skipped silently.
func (cv *canvas) drawShareQR(link string, margin float64) {
	const size = 120
	raw, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return
	}
	x := cv.w - margin - size
	y := cv.h - margin - size
	cv.roundedPanel(x-8, y-8, size+16, size+16, 12, color.RGBA{0xff, 0xff, 0xff, 0xe6})
	cv.dc.DrawImage(img, int(x), int(y))
}
