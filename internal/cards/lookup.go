package cards

import "strings"

// NormalizeID converts any raw id into a canonical slug: lowercase,
// alphanumeric runs joined by single dashes, no leading or trailing dash,
// and no trailing orientation suffix. It never fails; unusable input
// yields an empty slug.
func NormalizeID(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	out = strings.Trim(out, "-")

	for {
		if t := strings.TrimSuffix(out, "-"+OrientationUpright); t != out {
			out = t
			continue
		}
		if t := strings.TrimSuffix(out, "-"+OrientationReversed); t != out {
			out = t
			continue
		}
		break
	}
	return out
}

// FindByID returns the first card matching id, or nil. Pass one matches the
// raw, secondary, or legacy id exactly, or any of them after normalization.
// Pass two retries with a trailing -reversed suffix stripped so a
// reversed-suffixed lookup still recovers the base card.
func FindByID(cs []Card, id string) *Card {
	if c := findOnce(cs, id); c != nil {
		return c
	}
	if stripped := strings.TrimSuffix(id, "-"+OrientationReversed); stripped != id {
		return findOnce(cs, stripped)
	}
	return nil
}

func findOnce(cs []Card, id string) *Card {
	norm := NormalizeID(id)
	for i := range cs {
		c := &cs[i]
		if c.ID == id || (c.SecondaryID != "" && c.SecondaryID == id) || (c.LegacyID != "" && c.LegacyID == id) {
			return c
		}
		if NormalizeID(c.ID) == norm {
			return c
		}
		if c.SecondaryID != "" && NormalizeID(c.SecondaryID) == norm {
			return c
		}
		if c.LegacyID != "" && NormalizeID(c.LegacyID) == norm {
			return c
		}
	}
	return nil
}
