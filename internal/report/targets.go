package report

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

// WriteTargets writes a transfer shortlist
// Role results keep the ranking block layout; position results add one strength column per
// further role and the row aggregates.
func WriteTargets(path string, result *contracts.TransferResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if result.Block != nil {
		if err := writeBlocks(f, defaultSheet, []contracts.RoleBlock{*result.Block}); err != nil {
			return err
		}
		return save(f, path)
	}

	if err := writePositionTargets(f, defaultSheet, result); err != nil {
		return err
	}
	return save(f, path)
}

func writePositionTargets(f *excelize.File, sheet string, result *contracts.TransferResult) error {
	if len(result.Roles) == 0 {
		return nil
	}

	lead := contracts.RoleBlock{Position: result.Query.Position, Role: result.Roles[0]}
	header := make([]interface{}, 0, len(contracts.BlockColumns)+len(result.Roles)+2)
	for _, suffix := range contracts.BlockColumns {
		header = append(header, lead.Label()+" "+suffix)
	}
	for _, role := range result.Roles[1:] {
		header = append(header, role)
	}
	header = append(header, "Average Strength", "Max Strength", "Max Strength Role")
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, r := range result.Rows {
		values := make([]interface{}, 0, len(header))
		if r.HasIdentity {
			values = append(values, r.Team, r.Player, cellValue(r.Cells[0]), r.Age, r.Salary, r.Value)
		} else {
			values = append(values, nil, nil, cellValue(r.Cells[0]), nil, nil, nil)
		}
		for _, c := range r.Cells[1:] {
			values = append(values, cellValue(c))
		}
		values = append(values, r.AverageStrength, r.MaxStrength, r.MaxStrengthRole)

		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "B", 22)
}

func cellValue(c contracts.RoleCell) interface{} {
	if !c.Present {
		return nil
	}
	return c.Strength
}

// WriteProgress writes one sheet per player listing the attribute changes between snapshots
// labels maps snapshot indexes to display names
func WriteProgress(path string, labels []string, progress []contracts.PlayerProgress) error {
	f := excelize.NewFile()
	defer f.Close()

	label := func(i int) string {
		if i >= 0 && i < len(labels) {
			return labels[i]
		}
		return strconv.Itoa(i)
	}

	used := make(map[string]bool)
	for _, p := range progress {
		sheet := uniqueTitle(p.Name, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet, err)
		}

		keys := deltaKeys(p.Steps)
		header := []interface{}{"From", "To"}
		for _, k := range keys {
			header = append(header, k)
		}
		if err := setRow(f, sheet, 1, header); err != nil {
			return err
		}

		for i, step := range p.Steps {
			values := []interface{}{label(step.From), label(step.To)}
			for _, k := range keys {
				values = append(values, step.Deltas[k])
			}
			if err := setRow(f, sheet, i+2, values); err != nil {
				return err
			}
		}
	}

	if len(used) > 0 && !used[defaultSheet] {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return fmt.Errorf("drop default sheet: %w", err)
		}
	}
	return save(f, path)
}

// uniqueTitle returns a sheet title not yet in used and records it
func uniqueTitle(name string, used map[string]bool) string {
	base := sheetTitle(name)
	title := base
	for n := 2; used[title]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		runes := []rune(base)
		if len(runes)+len(suffix) > 31 {
			runes = runes[:31-len(suffix)]
		}
		title = string(runes) + suffix
	}
	used[title] = true
	return title
}

func deltaKeys(steps []contracts.ProgressStep) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, s := range steps {
		for k := range s.Deltas {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}
