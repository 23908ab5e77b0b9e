// Package fmhtml reads squad tables exported from the game as HTML pages.
package fmhtml

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

// column roles recognised in the header row; everything else is an attribute
const (
	colName     = "Name"
	colPosition = "Position"
	colAge      = "Age"
	colSalary   = "Salary"
	colWage     = "Wage"
	colValue    = "Transfer Value"
	colClub     = "Club"
)

// ParseSquad parses the first table of an exported squad page
// ⭐ SSOT: squad HTML parsing happens here only
func ParseSquad(r io.Reader, team string) (contracts.Squad, error) {
	squad := contracts.Squad{Team: team}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return squad, fmt.Errorf("parse squad html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return squad, fmt.Errorf("squad %s: no table found", team)
	}

	rows := table.Find("tr")
	if rows.Length() == 0 {
		return squad, fmt.Errorf("squad %s: empty table", team)
	}

	var header []string
	rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		header = append(header, cellText(cell))
	})
	if indexOf(header, colName) < 0 {
		return squad, fmt.Errorf("squad %s: header has no %q column", team, colName)
	}

	rows.Slice(1, rows.Length()).Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cellText(cell))
		})

		p, ok := parsePlayer(header, cells)
		if !ok {
			return
		}
		p.Key = contracts.PlayerKey{Team: team, Name: p.Name, Row: len(squad.Players)}
		squad.Players = append(squad.Players, p)
	})

	return squad, nil
}

// parsePlayer maps one table row onto a player; rows without a name are skipped
func parsePlayer(header, cells []string) (contracts.Player, bool) {
	p := contracts.Player{Attributes: make(contracts.AttributeSet)}

	for i, name := range header {
		if i >= len(cells) {
			break
		}
		v := cells[i]

		switch name {
		case colName:
			p.Name = v
		case colPosition:
			p.Position = v
		case colAge:
			p.Age, _ = strconv.Atoi(v)
		case colSalary, colWage:
			p.Salary = v
		case colValue:
			p.Value = v
		case colClub:
			p.Club = v
		default:
			if n, err := strconv.Atoi(v); err == nil && name != "" {
				p.Attributes[name] = n
			}
		}
	}

	return p, p.Name != ""
}

// LoadLeague parses every *.html file in dir; the file name without extension is the team
func LoadLeague(dir string) (*contracts.League, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("list league dir: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no squad files in %s", dir)
	}
	sort.Strings(paths)

	league := &contracts.League{Name: filepath.Base(dir)}
	for _, path := range paths {
		team := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		squad, err := LoadSquad(path, team)
		if err != nil {
			return nil, err
		}
		league.Squads = append(league.Squads, squad)
	}

	return league, nil
}

// LoadSquad parses one squad file
func LoadSquad(path, team string) (contracts.Squad, error) {
	f, err := os.Open(path)
	if err != nil {
		return contracts.Squad{Team: team}, fmt.Errorf("open squad file: %w", err)
	}
	defer f.Close()

	squad, err := ParseSquad(f, team)
	if err != nil {
		return squad, fmt.Errorf("%s: %w", path, err)
	}
	return squad, nil
}

func cellText(cell *goquery.Selection) string {
	return strings.Join(strings.Fields(cell.Text()), " ")
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
