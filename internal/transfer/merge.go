package transfer

import (
	"sort"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

// MergeTables stacks the same-labelled blocks of several ranking tables
// Block order follows first appearance; merged rows are re-ranked by strength, ties keep table order
func MergeTables(tables ...contracts.RankingTable) contracts.RankingTable {
	var merged contracts.RankingTable
	index := make(map[string]int)

	for _, t := range tables {
		for _, b := range t.Blocks {
			i, ok := index[b.Label()]
			if !ok {
				index[b.Label()] = len(merged.Blocks)
				merged.Blocks = append(merged.Blocks, b.Clone())
				continue
			}
			merged.Blocks[i].Rows = append(merged.Blocks[i].Rows, b.Rows...)
		}
	}

	for i := range merged.Blocks {
		rows := merged.Blocks[i].Rows
		sort.SliceStable(rows, func(a, b int) bool {
			return rows[a].Strength > rows[b].Strength
		})
	}

	return merged
}
