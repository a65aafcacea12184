package encode

import (
	"fmt"
	"sort"
	"strings"

	"condense/analysis"
)

// TopTemplates is the default number of ranked signatures that receive
// a tag; everything below the cutoff stays untagged.
const TopTemplates = 120

// TagTable maps block signatures to their global occurrence totals and
// assigned tags. Built in one pass after detection; read-only after.
type TagTable struct {
	Counts map[string]int    // signature key -> sum of repeat counts
	Order  []string          // keys in first-encounter order
	Ranked []string          // keys by count descending, ties first-seen
	Tags   map[string]string // signature key -> "<L001>" ...
}

// SignatureKey canonicalizes a block's template sequence. Order
// matters; equal sequences always produce the same key.
func SignatureKey(templates []string) string {
	return strings.Join(templates, "||")
}

// BuildTagTable sums repeat counts per signature over all blocks in
// position order and tags the topN most frequent. Ties rank in
// first-encounter order, so identical input always tags identically.
func BuildTagTable(units []analysis.Unit, topN int) TagTable {
	table := TagTable{
		Counts: make(map[string]int),
		Tags:   make(map[string]string),
	}
	for _, u := range units {
		if u.Block == nil {
			continue
		}
		key := SignatureKey(u.Block.Templates)
		if _, seen := table.Counts[key]; !seen {
			table.Order = append(table.Order, key)
		}
		table.Counts[key] += u.Block.Count
	}

	table.Ranked = append([]string(nil), table.Order...)
	sort.SliceStable(table.Ranked, func(a, b int) bool {
		return table.Counts[table.Ranked[a]] > table.Counts[table.Ranked[b]]
	})

	limit := topN
	if limit > len(table.Ranked) {
		limit = len(table.Ranked)
	}
	for i := 0; i < limit; i++ {
		table.Tags[table.Ranked[i]] = fmt.Sprintf("<L%03d>", i+1)
	}
	return table
}
