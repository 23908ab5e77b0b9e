package transfer

import (
	"sort"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
	"github.com/osokolowskii/fm-algorithm/pkg/logger"
)

// Engine filters ranking tables into transfer shortlists
// ⭐ SSOT: transfer-target search lives here only
type Engine struct {
	logger *logger.Logger
}

// NewEngine creates a new transfer engine
func NewEngine(logger *logger.Logger) *Engine {
	return &Engine{logger: logger}
}

// GetTargets runs a query against a ranking table
// Role queries return one block sorted by strength descending.
// Position queries filter every role block on its own, then recombine them row by row.
func (e *Engine) GetTargets(table *contracts.RankingTable, query contracts.TransferQuery) (*contracts.TransferResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	blocks := table.BlocksFor(query.Position, query.Role)
	if len(blocks) == 0 {
		e.logger.WithFields(map[string]interface{}{
			"position": query.Position,
			"role":     query.Role,
		}).Warn("No ranking block matches the query")
	}

	if query.Role != "" {
		block := contracts.RoleBlock{Position: query.Position, Role: query.Role}
		for _, b := range blocks {
			block.Rows = append(block.Rows, b.Rows...)
		}
		block = e.applyFilters(block, query)
		sort.SliceStable(block.Rows, func(i, j int) bool {
			return block.Rows[i].Strength > block.Rows[j].Strength
		})
		return &contracts.TransferResult{Query: query, Block: &block}, nil
	}

	filtered := make([]contracts.RoleBlock, 0, len(blocks))
	for _, b := range blocks {
		filtered = append(filtered, e.applyFilters(b, query))
	}
	return combineBlocks(query, filtered), nil
}

// combineBlocks concatenates filtered blocks side by side and adds per-row aggregates
// Each block is ordered ascending by strength first, so rows line up by rank, not by player
func combineBlocks(query contracts.TransferQuery, blocks []contracts.RoleBlock) *contracts.TransferResult {
	result := &contracts.TransferResult{Query: query}

	height := 0
	for i := range blocks {
		rows := blocks[i].Rows
		sort.SliceStable(rows, func(a, b int) bool {
			return rows[a].Strength < rows[b].Strength
		})
		result.Roles = append(result.Roles, blocks[i].Role)
		if len(rows) > height {
			height = len(rows)
		}
	}

	for i := 0; i < height; i++ {
		row := contracts.TargetRow{Cells: make([]contracts.RoleCell, 0, len(blocks))}
		if first := blocks[0].Rows; i < len(first) {
			row.RankingRow = first[i]
			row.HasIdentity = true
		}

		sum, n := 0.0, 0
		for _, b := range blocks {
			cell := contracts.RoleCell{Role: b.Role}
			if i < len(b.Rows) {
				cell.Strength = b.Rows[i].Strength
				cell.Present = true

				if n == 0 || cell.Strength > row.MaxStrength {
					row.MaxStrength = cell.Strength
					row.MaxStrengthRole = b.Role
				}
				sum += cell.Strength
				n++
			}
			row.Cells = append(row.Cells, cell)
		}
		row.AverageStrength = sum / float64(n)

		result.Rows = append(result.Rows, row)
	}

	return result
}
