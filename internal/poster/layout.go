package poster

import "strings"

const ellipsis = "…"

// wrapLines breaks text into lines no wider than maxWidth under measure,
// greedily packing whitespace-separated tokens. Scripts without word
// spaces (Thai, or any single token wider than the line) wrap at
// character level instead. When maxLines > 0 the result is truncated and
// the last kept line ellipsized.
func wrapLines(measure func(string) float64, text string, maxWidth float64, maxLines int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	tokens := strings.Fields(text)
	sep := " "
	if hasThai(text) || (len(tokens) == 1 && measure(tokens[0]) > maxWidth) {
		tokens = splitRunes(text)
		sep = ""
	}

	var lines []string
	cur := tokens[0]
	for _, tok := range tokens[1:] {
		cand := cur + sep + tok
		if measure(cand) > maxWidth {
			lines = append(lines, strings.TrimSpace(cur))
			cur = strings.TrimLeft(tok, " ")
			continue
		}
		cur = cand
	}
	if cur = strings.TrimSpace(cur); cur != "" {
		lines = append(lines, cur)
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = ellipsize(measure, lines[maxLines-1], maxWidth)
	}
	return lines
}

// ellipsize trims trailing runes until line plus the ellipsis fits, or
// yields a bare ellipsis when nothing fits.
func ellipsize(measure func(string) float64, line string, maxWidth float64) string {
	for line != "" {
		if measure(line+ellipsis) <= maxWidth {
			return line + ellipsis
		}
		r := []rune(line)
		line = strings.TrimRight(string(r[:len(r)-1]), " ")
	}
	return ellipsis
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// hasThai reports whether s contains code points in the Thai block, which
// has no word-separating spaces to wrap on.
func hasThai(s string) bool {
	for _, r := range s {
		if r >= 0x0E00 && r <= 0x0E7F {
			return true
		}
	}
	return false
}
