// Package report persists strength sheets, ranking workbooks and transfer shortlists as xlsx files.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates with every new file
const defaultSheet = "Sheet1"

// Column names shared by squad exports and strength sheets
const (
	ColName     = "Name"
	ColPosition = "Position"
	ColAge      = "Age"
	ColSalary   = "Salary"
	ColValue    = "Value"
	ColClub     = "Club"
	ColGroups   = "Groups"
	ColBest     = "Best Roles"
)

const thickBorder = 5

func cellName(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		panic(fmt.Sprintf("report: invalid cell %d,%d: %v", col, row, err))
	}
	return name
}

func colName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		panic(fmt.Sprintf("report: invalid column %d: %v", col, err))
	}
	return name
}

// setRow writes values starting at column 1 of the given row
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	return f.SetSheetRow(sheet, cellName(1, row), &values)
}

// blockBorder returns the style drawing the thick line between ranking blocks
func blockBorder(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Border: []excelize.Border{{Type: "right", Color: "000000", Style: thickBorder}},
	})
}

// save writes the workbook, creating the parent directory when needed
func save(f *excelize.File, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// readFirstSheet returns every row of the workbook's first sheet
func readFirstSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// at returns the trimmed cell or "" when the row is shorter
func at(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// Workbooks lists the *.xlsx files of a directory in name order, skipping Excel lock files
func Workbooks(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return nil, fmt.Errorf("list workbooks: %w", err)
	}

	out := paths[:0]
	for _, p := range paths {
		if !strings.HasPrefix(filepath.Base(p), "~$") {
			out = append(out, p)
		}
	}
	return out, nil
}
