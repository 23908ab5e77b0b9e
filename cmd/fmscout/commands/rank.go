package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osokolowskii/fm-algorithm/internal/report"
)

var (
	rankLeagueDir string
	rankOutFile   string
)

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Build the league ranking workbook",
	Long: `Scores every squad of a league and ranks all players per role.

The workbook holds one six-column block per position and role,
sorted by strength, and is the input of the targets and compare commands.

Example:
  go run ./cmd/fmscout rank --league raw_files/ekstraklasa
  go run ./cmd/fmscout rank --league raw_files/ekstraklasa --out reports/ekstraklasa.xlsx`,
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankLeagueDir, "league", "", "directory of squad HTML files (default LEAGUE_DIR)")
	rankCmd.Flags().StringVar(&rankOutFile, "out", "", "output workbook (default REPORTS_DIR/<league>.xlsx)")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	lg, err := loadLeague(a, "", rankLeagueDir)
	if err != nil {
		return err
	}

	ranker := a.ranker(false)
	strengths, err := ranker.Evaluate(context.Background(), lg)
	if err != nil {
		return fmt.Errorf("evaluate league: %w", err)
	}
	table := ranker.RankAll(strengths)

	out := rankOutFile
	if out == "" {
		out = filepath.Join(a.cfg.Paths.ReportsDir, lg.Name+".xlsx")
	}
	if err := report.WriteRankingTable(out, table); err != nil {
		return err
	}

	PrintHeader("League ranking: " + lg.Name)
	rows := make([][]string, 0, len(table.Blocks))
	for i := range table.Blocks {
		b := &table.Blocks[i]
		leader := ""
		if len(b.Rows) > 0 {
			leader = fmt.Sprintf("%s (%s) %s", b.Rows[0].Player, b.Rows[0].Team, formatStrength(b.Rows[0].Strength))
		}
		rows = append(rows, []string{a.catalog.Alternative(b.Position), b.Position, b.Role, strconv.Itoa(len(b.Rows)), leader})
	}
	PrintTable([]string{"Section", "Position", "Role", "Ranked", "Leader"}, rows)
	PrintSuccess("Ranking written to " + out)

	return nil
}
