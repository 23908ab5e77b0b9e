package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
	"github.com/osokolowskii/fm-algorithm/internal/progress"
	"github.com/osokolowskii/fm-algorithm/internal/report"
)

var (
	progressDir     string
	progressOutFile string
)

// progressCmd represents the progress command
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Attribute changes of players across successive exports",
	Long: `Reads every workbook of a directory in file-name order as one snapshot
and reports, per player, what changed between consecutive snapshots.

Example:
  go run ./cmd/fmscout progress --dir progress
  go run ./cmd/fmscout progress --dir progress --out progress_report.xlsx`,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().StringVar(&progressDir, "dir", "progress", "directory of snapshot workbooks")
	progressCmd.Flags().StringVar(&progressOutFile, "out", "", "write one sheet per player to this workbook")
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	paths, err := report.Workbooks(progressDir)
	if err != nil {
		return err
	}
	if len(paths) < 2 {
		return fmt.Errorf("need at least two snapshots in %s, found %d", progressDir, len(paths))
	}

	snapshots := make([]contracts.Snapshot, 0, len(paths))
	labels := make([]string, 0, len(paths))
	for _, p := range paths {
		players, err := report.ReadPlayers(p)
		if err != nil {
			return err
		}
		label := filepath.Base(p)
		snapshots = append(snapshots, contracts.Snapshot{Label: label, Players: players})
		labels = append(labels, label)
	}

	result := progress.Compare(snapshots)
	a.log.WithFields(map[string]interface{}{
		"snapshots": len(snapshots),
		"players":   len(result),
	}).Info("Progress compared")

	PrintHeader("Progress")
	for _, p := range result {
		for _, step := range p.Steps {
			PrintKeyValue(p.Name, fmt.Sprintf("%s → %s: %s", labels[step.From], labels[step.To], formatDeltas(step.Deltas)), 24)
		}
	}

	if progressOutFile != "" {
		if err := report.WriteProgress(progressOutFile, labels, result); err != nil {
			return err
		}
		PrintSuccess("Progress written to " + progressOutFile)
	}

	return nil
}

// formatDeltas renders "Pace -1, Passing +2" in key order
func formatDeltas(deltas map[string]int) string {
	keys := make([]string, 0, len(deltas))
	for k := range deltas {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %+d", k, deltas[k]))
	}
	return strings.Join(parts, ", ")
}
