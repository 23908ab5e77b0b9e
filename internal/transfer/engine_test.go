package transfer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
	"github.com/osokolowskii/fm-algorithm/pkg/logger"
)

var _ contracts.TargetFinder = (*Engine)(nil)

func int64p(v int64) *int64       { return &v }
func intp(v int) *int             { return &v }
func float64p(v float64) *float64 { return &v }

func row(team, player string, strength float64, age int, value string) contracts.RankingRow {
	return contracts.RankingRow{Team: team, Player: player, Strength: strength, Age: age, Salary: "1", Value: value}
}

func players(rows []contracts.RankingRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Player)
	}
	return out
}

func testTable() *contracts.RankingTable {
	return &contracts.RankingTable{Blocks: []contracts.RoleBlock{
		{Position: "D (L)", Role: "fbd", Rows: []contracts.RankingRow{
			row("X", "X1", 90, 22, "100K - 200K"),
			row("Y", "Y1", 85, 31, "Not for Sale"),
			row("X", "X2", 80, 27, "1M - 2M"),
			row("Z", "Z1", 70, 19, "50K - 75K"),
			row("X", "X3", 60, 24, "garbage"),
		}},
		{Position: "D (L)", Role: "wbs", Rows: []contracts.RankingRow{
			row("Y", "Y1", 75, 31, "Not for Sale"),
			row("Z", "Z1", 65, 19, "50K - 75K"),
		}},
		{Position: "GK", Role: "gkd", Rows: []contracts.RankingRow{
			row("X", "XK", 88, 33, "10K - 20K"),
		}},
	}}
}

func TestGetTargets_QueryErrors(t *testing.T) {
	e := NewEngine(logger.NewNop())

	_, err := e.GetTargets(testTable(), contracts.TransferQuery{Role: "fbd"})
	var qerr *contracts.QueryError
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, "position", qerr.Field)

	_, err = e.GetTargets(testTable(), contracts.TransferQuery{Position: "D (L)", Team: "X"})
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, "strength", qerr.Field)
}

func TestGetTargets_TeamRankCutsAtNthOccurrence(t *testing.T) {
	e := NewEngine(logger.NewNop())

	got, err := e.GetTargets(testTable(), contracts.TransferQuery{Position: "D (L)", Role: "fbd", Team: "X", TeamRank: 2})
	require.NoError(t, err)
	require.NotNil(t, got.Block)
	assert.Equal(t, []string{"X1", "Y1", "X2"}, players(got.Block.Rows))
}

// The cutoff degrades to the whole block when the team has fewer representatives.
func TestGetTargets_TeamRankBeyondOccurrencesKeepsWholeBlock(t *testing.T) {
	e := NewEngine(logger.NewNop())

	got, err := e.GetTargets(testTable(), contracts.TransferQuery{Position: "D (L)", Role: "fbd", Team: "Z", TeamRank: 2})
	require.NoError(t, err)
	assert.Len(t, got.Block.Rows, 5)

	got, err = e.GetTargets(testTable(), contracts.TransferQuery{Position: "D (L)", Role: "fbd", Team: "Nobody", TeamRank: 1})
	require.NoError(t, err)
	assert.Len(t, got.Block.Rows, 5)
}

func TestGetTargets_MaxValueDropsUnparseable(t *testing.T) {
	e := NewEngine(logger.NewNop())

	got, err := e.GetTargets(testTable(), contracts.TransferQuery{Position: "D (L)", Role: "fbd", MaxValue: int64p(200_000)})
	require.NoError(t, err)
	// "Not for Sale" parses to 0 and passes; "garbage" is dropped
	assert.Equal(t, []string{"X1", "Y1", "Z1"}, players(got.Block.Rows))
}

func TestGetTargets_EndToEndTwoRowBlock(t *testing.T) {
	table := &contracts.RankingTable{Blocks: []contracts.RoleBlock{{
		Position: "M (C)", Role: "dlpd",
		Rows: []contracts.RankingRow{
			row("TeamA", "PlayerA", 80, 20, "100K - 200K"),
			row("TeamB", "PlayerB", 60, 30, "Not for Sale"),
		},
	}}}
	e := NewEngine(logger.NewNop())

	// PlayerA's upper bound is 200000, so a 150000 ceiling only leaves the
	// unsellable row, which parses to 0.
	got, err := e.GetTargets(table, contracts.TransferQuery{Position: "M (C)", Role: "dlpd", MaxValue: int64p(150_000)})
	require.NoError(t, err)
	assert.Equal(t, []string{"PlayerB"}, players(got.Block.Rows))

	got, err = e.GetTargets(table, contracts.TransferQuery{
		Position:    "M (C)",
		Role:        "dlpd",
		MaxValue:    int64p(200_000),
		OnlyForSale: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"PlayerA"}, players(got.Block.Rows))
}

func TestGetTargets_AgeBoundsInclusive(t *testing.T) {
	e := NewEngine(logger.NewNop())

	got, err := e.GetTargets(testTable(), contracts.TransferQuery{Position: "D (L)", Role: "fbd", MinAge: intp(22), MaxAge: intp(27)})
	require.NoError(t, err)
	assert.Equal(t, []string{"X1", "X2", "X3"}, players(got.Block.Rows))
}

func TestGetTargets_ForSaleAndMinStrength(t *testing.T) {
	e := NewEngine(logger.NewNop())

	got, err := e.GetTargets(testTable(), contracts.TransferQuery{
		Position:    "D (L)",
		Role:        "fbd",
		OnlyForSale: true,
		MinStrength: float64p(70),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"X1", "X2", "Z1"}, players(got.Block.Rows))
}

func TestGetTargets_PipelineOrderTeamCutFirst(t *testing.T) {
	e := NewEngine(logger.NewNop())

	// The cut happens on the unfiltered block (ends at X2), then the age filter
	// removes X1 and Y1. Filtering by age first would have kept rows down to X3.
	got, err := e.GetTargets(testTable(), contracts.TransferQuery{
		Position: "D (L)",
		Role:     "fbd",
		Team:     "X",
		TeamRank: 2,
		MinAge:   intp(24),
		MaxAge:   intp(28),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"X2"}, players(got.Block.Rows))
}

func TestGetTargets_RoleResultSortedDescending(t *testing.T) {
	table := &contracts.RankingTable{Blocks: []contracts.RoleBlock{{
		Position: "ST (C)", Role: "afa",
		Rows: []contracts.RankingRow{
			row("A", "low", 10, 20, "1K - 2K"),
			row("A", "high", 30, 20, "1K - 2K"),
			row("A", "mid", 20, 20, "1K - 2K"),
		},
	}}}

	got, err := NewEngine(logger.NewNop()).GetTargets(table, contracts.TransferQuery{Position: "ST (C)", Role: "afa"})
	require.NoError(t, err)
	assert.Equal(t, []string{"high", "mid", "low"}, players(got.Block.Rows))
}

func TestGetTargets_DoesNotMutateTable(t *testing.T) {
	table := testTable()
	_, err := NewEngine(logger.NewNop()).GetTargets(table, contracts.TransferQuery{Position: "D (L)", MinStrength: float64p(80)})
	require.NoError(t, err)

	assert.Equal(t, []string{"X1", "Y1", "X2", "Z1", "X3"}, players(table.Blocks[0].Rows))
}

// Position-level results order every block ascending by strength and align rows by
// rank, so a row mixes players. This mirrors the legacy report layout on purpose.
func TestGetTargets_PositionQueryRecombinesAscendingBlocks(t *testing.T) {
	e := NewEngine(logger.NewNop())

	got, err := e.GetTargets(testTable(), contracts.TransferQuery{Position: "D (L)", MinStrength: float64p(65)})
	require.NoError(t, err)
	require.Nil(t, got.Block)

	assert.Equal(t, []string{"fbd", "wbs"}, got.Roles)
	require.Len(t, got.Rows, 4)

	// fbd ascending: Z1 70, X2 80, Y1 85, X1 90; wbs ascending: Z1 65, Y1 75
	first := got.Rows[0]
	assert.True(t, first.HasIdentity)
	assert.Equal(t, "Z1", first.Player)
	assert.Equal(t, 70.0, first.Cells[0].Strength)
	assert.Equal(t, 65.0, first.Cells[1].Strength)
	assert.InDelta(t, 67.5, first.AverageStrength, 1e-9)
	assert.Equal(t, 70.0, first.MaxStrength)
	assert.Equal(t, "fbd", first.MaxStrengthRole)

	second := got.Rows[1]
	assert.Equal(t, "X2", second.Player)
	assert.Equal(t, 80.0, second.MaxStrength)

	last := got.Rows[3]
	assert.Equal(t, "X1", last.Player)
	assert.False(t, last.Cells[1].Present)
	assert.Equal(t, 90.0, last.AverageStrength)
	assert.Equal(t, "fbd", last.MaxStrengthRole)
}

func TestGetTargets_PositionQueryMaxRoleFromLaterBlock(t *testing.T) {
	table := &contracts.RankingTable{Blocks: []contracts.RoleBlock{
		{Position: "M (C)", Role: "cmd", Rows: []contracts.RankingRow{row("A", "P", 10, 20, "1K")}},
		{Position: "M (C)", Role: "bwm", Rows: []contracts.RankingRow{row("A", "P", 30, 20, "1K")}},
	}}

	got, err := NewEngine(logger.NewNop()).GetTargets(table, contracts.TransferQuery{Position: "M (C)"})
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "bwm", got.Rows[0].MaxStrengthRole)
	assert.Equal(t, 20.0, got.Rows[0].AverageStrength)
}

func TestGetTargets_NoMatchingBlock(t *testing.T) {
	got, err := NewEngine(logger.NewNop()).GetTargets(testTable(), contracts.TransferQuery{Position: "ST (C)"})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestMinStrengthIdempotent(t *testing.T) {
	rows := testTable().Blocks[0].Rows
	once := MinStrength(rows, 75)
	twice := MinStrength(once, 75)
	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"X1", "Y1", "X2"}, players(once))
}

func TestCutAtTeamRank(t *testing.T) {
	rows := []contracts.RankingRow{
		row("X", "1", 9, 0, ""), row("Y", "2", 8, 0, ""), row("X", "3", 7, 0, ""),
		row("Z", "4", 6, 0, ""), row("X", "5", 5, 0, ""),
	}
	assert.Equal(t, []string{"1", "2", "3"}, players(CutAtTeamRank(rows, "X", 2)))
	assert.Equal(t, []string{"1"}, players(CutAtTeamRank(rows, "X", 1)))
	assert.Len(t, CutAtTeamRank(rows, "X", 4), 5)
}
