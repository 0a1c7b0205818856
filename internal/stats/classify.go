package stats

import (
	"calstats/internal/model"
	"calstats/internal/pattern"
)

// Classification groups occurrences by the patterns they matched.
type Classification struct {
	// Order lists pattern names in patterns-file order; every report
	// iterates patterns in this order.
	Order     []string
	ByPattern map[string][]model.Occurrence
	Unmatched []model.Occurrence
}

// Classify matches every occurrence against the pattern set. An occurrence
// may match several patterns and is then counted under each of them; one
// matching none lands in Unmatched.
func Classify(set pattern.Set, occurrences []model.Occurrence) *Classification {
	c := &Classification{
		Order:     set.Names(),
		ByPattern: make(map[string][]model.Occurrence, len(set)),
	}
	for _, name := range c.Order {
		c.ByPattern[name] = []model.Occurrence{}
	}

	for _, occ := range occurrences {
		names := set.Match(occ.SearchText())
		if len(names) == 0 {
			c.Unmatched = append(c.Unmatched, occ)
			continue
		}
		for _, name := range names {
			c.ByPattern[name] = append(c.ByPattern[name], occ)
		}
	}
	return c
}
