package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
	"github.com/osokolowskii/fm-algorithm/internal/report"
	"github.com/osokolowskii/fm-algorithm/internal/transfer"
)

var (
	targetsReportsDir  string
	targetsPosition    string
	targetsRole        string
	targetsTeam        string
	targetsRank        int
	targetsMaxValue    int64
	targetsMinAge      int
	targetsMaxAge      int
	targetsForSale     bool
	targetsMinStrength float64
	targetsOutFile     string
)

// targetsCmd represents the targets command
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Search ranking workbooks for transfer targets",
	Long: `Filters the merged ranking workbooks of REPORTS_DIR.

Filters run in a fixed order: team rank, maximum value, age,
for-sale status, minimum strength. Without --role every role of
the position is filtered and the blocks are combined side by side.

Example:
  go run ./cmd/fmscout targets --position "D (L)" --role fbd --max-value 500000 --max-age 25
  go run ./cmd/fmscout targets --position "D (L)" --team Lech --rank 2
  go run ./cmd/fmscout targets --position "M (C)" --min-strength 40 --out shortlist.xlsx`,
	RunE: runTargets,
}

func init() {
	f := targetsCmd.Flags()
	f.StringVar(&targetsReportsDir, "reports", "", "directory of ranking workbooks (default REPORTS_DIR)")
	f.StringVar(&targetsPosition, "position", "", "position label, e.g. \"D (L)\" (required)")
	f.StringVar(&targetsRole, "role", "", "role code; empty searches every role of the position")
	f.StringVar(&targetsTeam, "team", "", "cut each block at this team's N-th player")
	f.IntVar(&targetsRank, "rank", 0, "N for --team")
	f.Int64Var(&targetsMaxValue, "max-value", 0, "maximum transfer value (upper bound of the range)")
	f.IntVar(&targetsMinAge, "min-age", 0, "minimum age")
	f.IntVar(&targetsMaxAge, "max-age", 0, "maximum age")
	f.BoolVar(&targetsForSale, "for-sale", false, "skip players not for sale")
	f.Float64Var(&targetsMinStrength, "min-strength", 0, "minimum role strength")
	f.StringVar(&targetsOutFile, "out", "", "write the shortlist to this workbook")
	rootCmd.AddCommand(targetsCmd)
}

// targetsQuery turns the set flags into a query; unset numeric flags stay nil
func targetsQuery(cmd *cobra.Command) contracts.TransferQuery {
	q := contracts.TransferQuery{
		Position:    targetsPosition,
		Role:        targetsRole,
		Team:        targetsTeam,
		TeamRank:    targetsRank,
		OnlyForSale: targetsForSale,
	}
	flags := cmd.Flags()
	if flags.Changed("max-value") {
		v := targetsMaxValue
		q.MaxValue = &v
	}
	if flags.Changed("min-age") {
		v := targetsMinAge
		q.MinAge = &v
	}
	if flags.Changed("max-age") {
		v := targetsMaxAge
		q.MaxAge = &v
	}
	if flags.Changed("min-strength") {
		v := targetsMinStrength
		q.MinStrength = &v
	}
	return q
}

func runTargets(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	table, err := loadRankings(a, targetsReportsDir)
	if err != nil {
		return err
	}

	result, err := a.finder().GetTargets(&table, targetsQuery(cmd))
	if err != nil {
		return err
	}

	if result.Block != nil {
		PrintHeader(fmt.Sprintf("Targets: %s", result.Block.Label()))
		printBlock(result.Block)
	} else {
		PrintHeader("Targets: " + result.Query.Position)
		printPositionTargets(result)
	}

	if targetsOutFile != "" {
		if err := report.WriteTargets(targetsOutFile, result); err != nil {
			return err
		}
		PrintSuccess("Shortlist written to " + targetsOutFile)
	}
	PrintSuccess(fmt.Sprintf("%d targets", result.Len()))

	return nil
}

// loadRankings reads and merges every ranking workbook of the directory
func loadRankings(a *app, dir string) (contracts.RankingTable, error) {
	if dir == "" {
		dir = a.cfg.Paths.ReportsDir
	}
	tables, err := report.ReadRankingDir(dir)
	if err != nil {
		return contracts.RankingTable{}, err
	}

	merged := transfer.MergeTables(tables...)
	a.log.WithFields(map[string]interface{}{
		"workbooks": len(tables),
		"blocks":    len(merged.Blocks),
	}).Debug("Rankings merged")

	return merged, nil
}

func printBlock(b *contracts.RoleBlock) {
	rows := make([][]string, 0, len(b.Rows))
	for _, r := range b.Rows {
		rows = append(rows, []string{r.Team, r.Player, formatStrength(r.Strength), strconv.Itoa(r.Age), r.Salary, r.Value})
	}
	PrintTable(contracts.BlockColumns, rows)
}

func printPositionTargets(result *contracts.TransferResult) {
	columns := []string{"Team", "Player"}
	columns = append(columns, result.Roles...)
	columns = append(columns, "Avg", "Max", "Max Role")

	rows := make([][]string, 0, len(result.Rows))
	for _, r := range result.Rows {
		row := []string{r.Team, r.Player}
		for _, c := range r.Cells {
			if c.Present {
				row = append(row, formatStrength(c.Strength))
			} else {
				row = append(row, "")
			}
		}
		row = append(row, formatStrength(r.AverageStrength), formatStrength(r.MaxStrength), r.MaxStrengthRole)
		rows = append(rows, row)
	}
	PrintTable(columns, rows)
}
