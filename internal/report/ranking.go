package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

// blockWidth is the number of columns of one ranking block
var blockWidth = len(contracts.BlockColumns)

// WriteRankingTable writes every block side by side on one sheet
// Block i occupies six columns starting at 6*i+1; the header reads "{label} Team", "{label} Player", ...
// ⭐ SSOT: ranking workbook layout
func WriteRankingTable(path string, table contracts.RankingTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeBlocks(f, defaultSheet, table.Blocks); err != nil {
		return err
	}
	return save(f, path)
}

func writeBlocks(f *excelize.File, sheet string, blocks []contracts.RoleBlock) error {
	border, err := blockBorder(f)
	if err != nil {
		return fmt.Errorf("create border style: %w", err)
	}

	height := 0
	for bi := range blocks {
		b := &blocks[bi]
		first := bi*blockWidth + 1

		for i, suffix := range contracts.BlockColumns {
			if err := f.SetCellValue(sheet, cellName(first+i, 1), b.Label()+" "+suffix); err != nil {
				return err
			}
		}

		for ri, r := range b.Rows {
			values := []interface{}{r.Team, r.Player, r.Strength, r.Age, r.Salary, r.Value}
			if err := f.SetSheetRow(sheet, cellName(first, ri+2), &values); err != nil {
				return err
			}
		}
		if len(b.Rows) > height {
			height = len(b.Rows)
		}

		if err := f.SetColWidth(sheet, colName(first), colName(first+1), 22); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, colName(first+2), colName(first+5), 12); err != nil {
			return err
		}
	}

	for bi := range blocks {
		last := (bi + 1) * blockWidth
		if err := f.SetCellStyle(sheet, cellName(last, 1), cellName(last, height+1), border); err != nil {
			return err
		}
	}

	return nil
}

// ReadRankingTable reads a workbook written by WriteRankingTable
// Blank and unparseable rows are skipped; a malformed header is an error.
func ReadRankingTable(path string) (contracts.RankingTable, error) {
	var table contracts.RankingTable

	rows, err := readFirstSheet(path)
	if err != nil {
		return table, err
	}
	if len(rows) == 0 {
		return table, nil
	}

	header := rows[0]
	for first := 0; first < len(header); first += blockWidth {
		if at(header, first) == "" {
			continue
		}
		block, err := parseBlockHeader(header, first)
		if err != nil {
			return table, fmt.Errorf("%s: %w", path, err)
		}

		for _, row := range rows[1:] {
			r, ok := parseBlockRow(row, first)
			if ok {
				block.Rows = append(block.Rows, r)
			}
		}
		table.Blocks = append(table.Blocks, block)
	}

	return table, nil
}

// ReadRankingDir reads every ranking workbook of a directory
func ReadRankingDir(dir string) ([]contracts.RankingTable, error) {
	paths, err := Workbooks(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no ranking workbooks in %s", dir)
	}

	tables := make([]contracts.RankingTable, 0, len(paths))
	for _, p := range paths {
		t, err := ReadRankingTable(p)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// parseBlockHeader splits "D (L) fbd Team" into position "D (L)" and role "fbd"
func parseBlockHeader(header []string, first int) (contracts.RoleBlock, error) {
	var block contracts.RoleBlock

	label := ""
	for i, suffix := range contracts.BlockColumns {
		h := at(header, first+i)
		if !strings.HasSuffix(h, " "+suffix) {
			return block, fmt.Errorf("column %s: expected %q header, got %q", colName(first+i+1), suffix, h)
		}
		l := strings.TrimSuffix(h, " "+suffix)
		if i == 0 {
			label = l
		} else if l != label {
			return block, fmt.Errorf("column %s: block %q interrupted by %q", colName(first+i+1), label, l)
		}
	}

	cut := strings.LastIndex(label, " ")
	if cut <= 0 {
		return block, fmt.Errorf("block label %q has no role", label)
	}
	block.Position = label[:cut]
	block.Role = label[cut+1:]
	return block, nil
}

func parseBlockRow(row []string, first int) (contracts.RankingRow, bool) {
	r := contracts.RankingRow{
		Team:   at(row, first),
		Player: at(row, first+1),
		Salary: at(row, first+4),
		Value:  at(row, first+5),
	}
	if r.Team == "" && r.Player == "" {
		return r, false
	}

	s, err := strconv.ParseFloat(at(row, first+2), 64)
	if err != nil {
		return r, false
	}
	r.Strength = s

	if age, err := strconv.ParseFloat(at(row, first+3), 64); err == nil {
		r.Age = int(age)
	}
	return r, true
}
