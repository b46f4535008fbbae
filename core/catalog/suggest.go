package catalog

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// SuggestEffect returns the closest effect id to a missing one, if any is close enough
func (c *Catalog) SuggestEffect(id string) (string, bool) {
	if c == nil {
		return "", false
	}
	ids := make([]string, 0, len(c.effects))
	for _, e := range c.effects {
		ids = append(ids, e.ID)
	}
	return closest(id, ids)
}

// SuggestModifier returns the closest modifier id to a missing one, if any is close enough
func (c *Catalog) SuggestModifier(id string) (string, bool) {
	if c == nil {
		return "", false
	}
	ids := make([]string, 0, len(c.modifiers))
	for _, m := range c.modifiers {
		ids = append(ids, m.ID)
	}
	return closest(id, ids)
}

func closest(id string, candidates []string) (string, bool) {
	if len(id) < 3 {
		return "", false
	}

	type candidate struct {
		id   string
		dist int
	}
	var matches []candidate
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(id, cand)
		if dist == 0 || dist > distanceLimit(len(cand)) {
			continue
		}
		matches = append(matches, candidate{id: cand, dist: dist})
	}
	if len(matches) == 0 {
		return "", false
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].dist == matches[j].dist {
			return matches[i].id < matches[j].id
		}
		return matches[i].dist < matches[j].dist
	})
	return matches[0].id, true
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
