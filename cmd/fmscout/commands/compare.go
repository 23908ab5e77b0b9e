package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	compareReportsDir string
	compareLimitTo    string
)

// compareCmd represents the compare command group
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two players or two teams across the ranking workbooks",
}

var comparePlayersCmd = &cobra.Command{
	Use:   "players PLAYER_1 PLAYER_2",
	Short: "Strength gap of two players in every role ranking both",
	Long: `Example:
  go run ./cmd/fmscout compare players "Erik Expósito" "Efthymis Koulouris"
  go run ./cmd/fmscout compare players "Jan Kowalski" "Adam Nowak" --limit-to "D (L)"`,
	Args: cobra.ExactArgs(2),
	RunE: runComparePlayers,
}

var compareTeamsCmd = &cobra.Command{
	Use:   "teams TEAM_1 TEAM_2",
	Short: "Best player and depth of two teams in every role ranking both",
	Long: `Example:
  go run ./cmd/fmscout compare teams Lech Legia`,
	Args: cobra.ExactArgs(2),
	RunE: runCompareTeams,
}

func init() {
	compareCmd.PersistentFlags().StringVar(&compareReportsDir, "reports", "", "directory of ranking workbooks (default REPORTS_DIR)")
	comparePlayersCmd.Flags().StringVar(&compareLimitTo, "limit-to", "", "only blocks whose label starts with this, e.g. \"D (L)\"")
	compareCmd.AddCommand(comparePlayersCmd, compareTeamsCmd)
	rootCmd.AddCommand(compareCmd)
}

func runComparePlayers(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	table, err := loadRankings(a, compareReportsDir)
	if err != nil {
		return err
	}

	result := a.finder().ComparePlayers(&table, args[0], args[1], compareLimitTo)
	if len(result) == 0 {
		PrintWarning(fmt.Sprintf("No role ranks both %s and %s", args[0], args[1]))
		return nil
	}

	PrintHeader(fmt.Sprintf("%s vs %s", args[0], args[1]))
	rows := make([][]string, 0, len(result))
	for _, c := range result {
		rows = append(rows, []string{
			c.Position + " " + c.Role,
			formatStrength(c.First),
			formatStrength(c.Second),
			formatStrength(c.Difference),
		})
	}
	PrintTable([]string{"Role", args[0], args[1], "Difference"}, rows)

	return nil
}

func runCompareTeams(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	table, err := loadRankings(a, compareReportsDir)
	if err != nil {
		return err
	}

	result := a.finder().CompareTeams(&table, args[0], args[1])
	if len(result) == 0 {
		PrintWarning(fmt.Sprintf("No role ranks both %s and %s", args[0], args[1]))
		return nil
	}

	PrintHeader(fmt.Sprintf("%s vs %s", args[0], args[1]))
	rows := make([][]string, 0, len(result))
	for _, c := range result {
		rows = append(rows, []string{
			c.Position + " " + c.Role,
			formatStrength(c.FirstBest),
			strconv.Itoa(c.FirstDepth),
			formatStrength(c.SecondBest),
			strconv.Itoa(c.SecondDepth),
			formatStrength(c.Difference),
		})
	}
	PrintTable([]string{"Role", args[0], "Depth", args[1], "Depth", "Difference"}, rows)

	return nil
}
