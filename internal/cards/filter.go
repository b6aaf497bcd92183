package cards

import "strings"

type FilterOptions struct {
	Suits     []string `json:"suits,omitempty"`
	Numbers   []int    `json:"numbers,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Planets   []string `json:"planets,omitempty"`
	Elements  []string `json:"elements,omitempty"`
	FreeWords string   `json:"free_words,omitempty"`
	Lang      string   `json:"lang,omitempty"`
}

func containsAny(hay []string, needles []string) bool {
	for _, n := range needles {
		for _, h := range hay {
			if strings.Contains(strings.ToLower(h), strings.ToLower(n)) {
				return true
			}
		}
	}
	return false
}

// Filter returns the cards matching every supplied criterion. Empty
// criteria match everything, same as the listing pages showing the
// whole suit when no filter is chosen.
func Filter(cs []Card, opt FilterOptions) []Card {
	lang := opt.Lang
	if lang == "" {
		lang = "en"
	}
	var out []Card
	for _, c := range cs {
		if len(opt.Suits) > 0 {
			matched := false
			for _, s := range opt.Suits {
				if strings.EqualFold(c.Suit, s) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if len(opt.Numbers) > 0 {
			matched := false
			for _, n := range opt.Numbers {
				if c.Number == n {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if len(opt.Keywords) > 0 {
			if !containsAny(c.Keywords, opt.Keywords) {
				continue
			}
		}
		if len(opt.Planets) > 0 {
			if c.Lucky == nil || !containsAny([]string{c.Lucky.Planet}, opt.Planets) {
				continue
			}
		}
		if len(opt.Elements) > 0 {
			if c.Lucky == nil || !containsAny([]string{c.Lucky.Element}, opt.Elements) {
				continue
			}
		}
		if opt.FreeWords != "" {
			kw := strings.Fields(opt.FreeWords)
			meaning := c.MeaningFor(lang, OrientationUpright)
			ok := true
			for _, k := range kw {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(c.DisplayName(lang)), k) &&
					!strings.Contains(strings.ToLower(meaning.Summary), k) &&
					!strings.Contains(strings.ToLower(strings.Join(c.Keywords, " ")), k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
