package report

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

// sheetTitle makes a name usable as a sheet title: no reserved characters, at most 31 runes
func sheetTitle(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		return defaultSheet
	}
	if runes := []rune(name); len(runes) > 31 {
		name = string(runes[:31])
	}
	return name
}

// useSheet renames the default sheet
func useSheet(f *excelize.File, name string) (string, error) {
	title := sheetTitle(name)
	if title == defaultSheet {
		return title, nil
	}
	if err := f.SetSheetName(defaultSheet, title); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}
	return title, nil
}

// WriteSquadStrength writes one row per player with every evaluated role strength
func WriteSquadStrength(path string, squad contracts.SquadStrength) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet, err := useSheet(f, squad.Team)
	if err != nil {
		return err
	}

	roles := roleColumns(squad.Records)
	header := []interface{}{ColName, ColPosition, ColGroups, ColAge, ColSalary, ColValue, ColClub, ColBest}
	for _, role := range roles {
		header = append(header, role)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i := range squad.Records {
		rec := &squad.Records[i]
		values := []interface{}{
			rec.Name,
			strings.Join(rec.Positions, ", "),
			strings.Join(rec.Groups, ", "),
			rec.Age,
			rec.Salary,
			rec.Value,
			rec.Club,
			bestRoles(rec.BestRoles),
		}
		for _, role := range roles {
			if v, ok := rec.Strength(role); ok {
				values = append(values, v)
			} else {
				values = append(values, nil)
			}
		}
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "C", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "H", "H", 36); err != nil {
		return err
	}

	return save(f, path)
}

// roleColumns is the union of evaluated roles in first-seen order
func roleColumns(records []contracts.StrengthRecord) []string {
	var roles []string
	seen := make(map[string]bool)
	for _, rec := range records {
		for _, role := range rec.Roles {
			if !seen[role] {
				seen[role] = true
				roles = append(roles, role)
			}
		}
	}
	return roles
}

// bestRoles renders "D (L): fbd; GK: (gkd)" with positions sorted
func bestRoles(best map[string]string) string {
	labels := make([]string, 0, len(best))
	for label := range best {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, label+": "+best[label])
	}
	return strings.Join(parts, "; ")
}

// ReadPlayers reads a squad or strength sheet back as players, for progress tracking
// Numeric columns become attributes; non-numeric attribute cells count as 0.
func ReadPlayers(path string) ([]contracts.Player, error) {
	rows, err := readFirstSheet(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	team := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	header := rows[0]

	var players []contracts.Player
	for _, row := range rows[1:] {
		p := contracts.Player{Attributes: make(contracts.AttributeSet)}
		for i, h := range header {
			v := at(row, i)
			switch strings.TrimSpace(h) {
			case ColName:
				p.Name = v
			case ColPosition:
				p.Position = v
			case ColAge:
				p.Age = number(v)
			case ColSalary, "Wage":
				p.Salary = v
			case ColValue, "Transfer Value":
				p.Value = v
			case ColClub:
				p.Club = v
			case ColGroups, ColBest, "":
			default:
				p.Attributes[strings.TrimSpace(h)] = number(v)
			}
		}
		if p.Name == "" {
			continue
		}
		p.Key = contracts.PlayerKey{Team: team, Name: p.Name, Row: len(players)}
		players = append(players, p)
	}

	return players, nil
}

func number(s string) int {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}
