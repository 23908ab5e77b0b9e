package transfer

import (
	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

// filter is one stage of the fixed pipeline
type filter struct {
	name   string
	active func(q contracts.TransferQuery) bool
	apply  func(rows []contracts.RankingRow, q contracts.TransferQuery) []contracts.RankingRow
}

// pipeline order is fixed: team rank → value → age → for sale → strength
var pipeline = []filter{
	{
		name:   "team_rank",
		active: func(q contracts.TransferQuery) bool { return q.Team != "" },
		apply: func(rows []contracts.RankingRow, q contracts.TransferQuery) []contracts.RankingRow {
			return CutAtTeamRank(rows, q.Team, q.TeamRank)
		},
	},
	{
		name:   "max_value",
		active: func(q contracts.TransferQuery) bool { return q.MaxValue != nil },
		apply: func(rows []contracts.RankingRow, q contracts.TransferQuery) []contracts.RankingRow {
			return keep(rows, func(r contracts.RankingRow) bool {
				v, err := ParseValueCeiling(r.Value)
				return err == nil && v <= *q.MaxValue
			})
		},
	},
	{
		name:   "age",
		active: func(q contracts.TransferQuery) bool { return q.MinAge != nil || q.MaxAge != nil },
		apply: func(rows []contracts.RankingRow, q contracts.TransferQuery) []contracts.RankingRow {
			return keep(rows, func(r contracts.RankingRow) bool {
				if q.MinAge != nil && r.Age < *q.MinAge {
					return false
				}
				return q.MaxAge == nil || r.Age <= *q.MaxAge
			})
		},
	},
	{
		name:   "for_sale",
		active: func(q contracts.TransferQuery) bool { return q.OnlyForSale },
		apply: func(rows []contracts.RankingRow, q contracts.TransferQuery) []contracts.RankingRow {
			return keep(rows, func(r contracts.RankingRow) bool {
				return r.Value != contracts.NotForSale
			})
		},
	},
	{
		name:   "min_strength",
		active: func(q contracts.TransferQuery) bool { return q.MinStrength != nil },
		apply: func(rows []contracts.RankingRow, q contracts.TransferQuery) []contracts.RankingRow {
			return MinStrength(rows, *q.MinStrength)
		},
	},
}

// applyFilters runs the pipeline on a copy of the block; each stage sees the previous stage's output
func (e *Engine) applyFilters(block contracts.RoleBlock, q contracts.TransferQuery) contracts.RoleBlock {
	out := block.Clone()
	dropped := make(map[string]int)

	for _, f := range pipeline {
		if !f.active(q) {
			continue
		}
		before := len(out.Rows)
		out.Rows = f.apply(out.Rows, q)
		dropped[f.name] = before - len(out.Rows)
	}

	e.logger.WithFields(map[string]interface{}{
		"block":   block.Label(),
		"input":   len(block.Rows),
		"passed":  len(out.Rows),
		"dropped": dropped,
	}).Debug("Block filtered")

	return out
}

// CutAtTeamRank truncates rows right after the team's rank-th appearance
// When the team appears fewer times the whole block is kept
func CutAtTeamRank(rows []contracts.RankingRow, team string, rank int) []contracts.RankingRow {
	found := 0
	for i, r := range rows {
		if r.Team != team {
			continue
		}
		found++
		if found == rank {
			return rows[:i+1]
		}
	}
	return rows
}

// MinStrength keeps rows at or above the floor
func MinStrength(rows []contracts.RankingRow, floor float64) []contracts.RankingRow {
	return keep(rows, func(r contracts.RankingRow) bool { return r.Strength >= floor })
}

func keep(rows []contracts.RankingRow, pred func(contracts.RankingRow) bool) []contracts.RankingRow {
	out := make([]contracts.RankingRow, 0, len(rows))
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
