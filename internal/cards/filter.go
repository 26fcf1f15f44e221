package cards

import "strings"

type FilterOptions struct {
	Types     []string `json:"types"`
	Groups    []string `json:"groups"`
	FreeWords string   `json:"free_words"`
}

func matchesAny(v string, wanted []string) bool {
	for _, w := range wanted {
		if strings.EqualFold(v, w) {
			return true
		}
	}
	return false
}

// Filter keeps catalog order. A type of "all" disables type filtering.
func Filter(cards []Card, opt FilterOptions) []Card {
	types := make([]string, 0, len(opt.Types))
	for _, t := range opt.Types {
		if t != "" && !strings.EqualFold(t, "all") {
			types = append(types, t)
		}
	}
	kw := strings.Fields(strings.ToLower(opt.FreeWords))

	out := []Card{}
	for _, c := range cards {
		if len(types) > 0 && !matchesAny(string(c.Type), types) {
			continue
		}
		if len(opt.Groups) > 0 && !matchesAny(c.Group, opt.Groups) {
			continue
		}
		if len(kw) > 0 {
			hay := strings.ToLower(c.Name + "\n" + c.Effect + "\n" + c.Group)
			ok := true
			for _, k := range kw {
				if !strings.Contains(hay, k) {
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
