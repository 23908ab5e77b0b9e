package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
	"github.com/osokolowskii/fm-algorithm/pkg/logger"
)

func TestMergeTables(t *testing.T) {
	first := contracts.RankingTable{Blocks: []contracts.RoleBlock{
		{Position: "GK", Role: "gkd", Rows: []contracts.RankingRow{row("A", "a1", 50, 20, ""), row("A", "a2", 40, 20, "")}},
	}}
	second := contracts.RankingTable{Blocks: []contracts.RoleBlock{
		{Position: "D (L)", Role: "fbd", Rows: []contracts.RankingRow{row("B", "b1", 30, 20, "")}},
		{Position: "GK", Role: "gkd", Rows: []contracts.RankingRow{row("B", "b2", 45, 20, ""), row("B", "b3", 40, 20, "")}},
	}}

	merged := MergeTables(first, second)
	require.Len(t, merged.Blocks, 2)
	assert.Equal(t, "GK gkd", merged.Blocks[0].Label())
	// a2 and b3 tie on 40: table order is kept
	assert.Equal(t, []string{"a1", "b2", "a2", "b3"}, players(merged.Blocks[0].Rows))
	assert.Equal(t, "D (L) fbd", merged.Blocks[1].Label())

	// inputs untouched
	assert.Equal(t, []string{"a1", "a2"}, players(first.Blocks[0].Rows))
}

func TestComparePlayers(t *testing.T) {
	e := NewEngine(logger.NewNop())

	got := e.ComparePlayers(testTable(), "Y1", "Z1", "")
	require.Len(t, got, 2)
	assert.Equal(t, contracts.PlayerComparison{Position: "D (L)", Role: "fbd", First: 85, Second: 70, Difference: 15}, got[0])
	assert.Equal(t, "wbs", got[1].Role)

	assert.Empty(t, e.ComparePlayers(testTable(), "Y1", "Z1", "GK"))
	assert.Len(t, e.ComparePlayers(testTable(), "Y1", "Z1", "D (L) wbs"), 1)
}

func TestCompareTeams(t *testing.T) {
	e := NewEngine(logger.NewNop())

	got := e.CompareTeams(testTable(), "X", "Z")
	require.Len(t, got, 1)
	assert.Equal(t, contracts.TeamComparison{
		Position: "D (L)", Role: "fbd",
		FirstBest: 90, SecondBest: 70,
		FirstDepth: 3, SecondDepth: 1,
		Difference: 20,
	}, got[0])
}
