package catalog

import (
	"sort"

	"github.com/jonathan/achievement-blocks/internal/types"
)

// DefaultTopN is the number of skills and role types reported when no limit is given
const DefaultTopN = 10

// CategoryGroup is one category and its blocks in import order
type CategoryGroup struct {
	Category string        `json:"category"`
	Blocks   []types.Block `json:"blocks"`
}

// GroupByCategory groups blocks by exact category name. Groups appear in order of
// first appearance and blocks keep their import order within a group.
func (c *Catalog) GroupByCategory() []CategoryGroup {
	index := make(map[string]int)
	groups := make([]CategoryGroup, 0)
	for _, b := range c.blocks {
		i, ok := index[b.Category]
		if !ok {
			i = len(groups)
			index[b.Category] = i
			groups = append(groups, CategoryGroup{Category: b.Category, Blocks: make([]types.Block, 0)})
		}
		groups[i].Blocks = append(groups[i].Blocks, b.Clone())
	}
	return groups
}

// Categories returns the distinct category names in order of first appearance
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, b := range c.blocks {
		if !seen[b.Category] {
			seen[b.Category] = true
			out = append(out, b.Category)
		}
	}
	return out
}

// Stats summarizes the catalog. topN limits the skill and role type lists; zero or
// less selects DefaultTopN.
func (c *Catalog) Stats(topN int) types.CatalogStats {
	if topN <= 0 {
		topN = DefaultTopN
	}

	categories := newCounter()
	skills := newCounter()
	roles := newCounter()
	var dist types.StrengthDistribution

	for _, b := range c.blocks {
		categories.add(b.Category)
		dist.Add(b.StrengthLevel)
		for _, s := range b.Skills {
			skills.add(s)
		}
		for _, r := range b.RoleTypes {
			roles.add(r)
		}
	}

	return types.CatalogStats{
		TotalBlocks:          len(c.blocks),
		Categories:           len(categories.order),
		CategoryBreakdown:    categories.inOrder(),
		StrengthDistribution: dist,
		TopSkills:            skills.top(topN),
		TopRoleTypes:         roles.top(topN),
	}
}

// counter counts names and remembers the order they first appeared in
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int), order: make([]string, 0)}
}

func (c *counter) add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *counter) inOrder() []types.NameCount {
	out := make([]types.NameCount, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, types.NameCount{Name: name, Count: c.counts[name]})
	}
	return out
}

// top returns the n most frequent names; ties keep first-appearance order
func (c *counter) top(n int) []types.NameCount {
	out := c.inOrder()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
