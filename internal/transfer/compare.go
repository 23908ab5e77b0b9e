package transfer

import (
	"strings"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

// ComparePlayers lists the strength gap of two players in every block that ranks both
// limitTo narrows the search to blocks whose label starts with it (e.g. "D (L)")
func (e *Engine) ComparePlayers(table *contracts.RankingTable, first, second, limitTo string) []contracts.PlayerComparison {
	var out []contracts.PlayerComparison

	for i := range table.Blocks {
		b := &table.Blocks[i]
		if limitTo != "" && !strings.HasPrefix(b.Label(), limitTo) {
			continue
		}

		a, okA := findPlayer(b.Rows, first)
		c, okC := findPlayer(b.Rows, second)
		if !okA || !okC {
			continue
		}

		out = append(out, contracts.PlayerComparison{
			Position:   b.Position,
			Role:       b.Role,
			First:      a.Strength,
			Second:     c.Strength,
			Difference: a.Strength - c.Strength,
		})
	}

	e.logger.WithFields(map[string]interface{}{
		"first":  first,
		"second": second,
		"roles":  len(out),
	}).Debug("Players compared")

	return out
}

// CompareTeams compares the best player and the depth of two teams in every block that ranks both
func (e *Engine) CompareTeams(table *contracts.RankingTable, first, second string) []contracts.TeamComparison {
	var out []contracts.TeamComparison

	for i := range table.Blocks {
		b := &table.Blocks[i]

		bestA, depthA := teamSummary(b.Rows, first)
		bestB, depthB := teamSummary(b.Rows, second)
		if depthA == 0 || depthB == 0 {
			continue
		}

		out = append(out, contracts.TeamComparison{
			Position:    b.Position,
			Role:        b.Role,
			FirstBest:   bestA,
			SecondBest:  bestB,
			FirstDepth:  depthA,
			SecondDepth: depthB,
			Difference:  bestA - bestB,
		})
	}

	e.logger.WithFields(map[string]interface{}{
		"first":  first,
		"second": second,
		"roles":  len(out),
	}).Debug("Teams compared")

	return out
}

func findPlayer(rows []contracts.RankingRow, name string) (contracts.RankingRow, bool) {
	for _, r := range rows {
		if r.Player == name {
			return r, true
		}
	}
	return contracts.RankingRow{}, false
}

func teamSummary(rows []contracts.RankingRow, team string) (best float64, depth int) {
	for _, r := range rows {
		if r.Team != team {
			continue
		}
		if depth == 0 || r.Strength > best {
			best = r.Strength
		}
		depth++
	}
	return best, depth
}
