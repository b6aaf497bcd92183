package reading

import (
	"fmt"
	"strings"
)

// ExportText renders a reading as plain text, for clipboard fallbacks and
// download affordances that cannot carry an image.
func ExportText(p *Payload) string {
	var lines []string
	if p.Title != "" {
		lines = append(lines, "# "+p.Title)
	}
	if p.Subtitle != "" {
		lines = append(lines, p.Subtitle)
	}
	for _, ref := range p.Cards {
		name := ref.Name
		if name == "" {
			name = ref.ID
		}
		lines = append(lines, fmt.Sprintf("- %s (%s)", name, ref.Orientation))
	}
	if p.Reading != nil {
		if p.Reading.Summary != "" {
			lines = append(lines, "", p.Reading.Summary)
		}
		for _, a := range p.Reading.Advice {
			lines = append(lines, "+ "+a)
		}
		for _, c := range p.Reading.Caution {
			lines = append(lines, "! "+c)
		}
	}
	if p.CanonicalURL != "" {
		lines = append(lines, "", p.CanonicalURL)
	}
	return strings.Join(lines, "\n")
}
