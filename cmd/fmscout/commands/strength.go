package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
	"github.com/osokolowskii/fm-algorithm/internal/external/fmhtml"
	"github.com/osokolowskii/fm-algorithm/internal/report"
)

var (
	strengthTeamFile     string
	strengthLeagueDir    string
	strengthAllPositions bool
	strengthOutDir       string
	strengthPlayers      []string
	strengthTeams        []string
)

// strengthCmd represents the strength command
var strengthCmd = &cobra.Command{
	Use:   "strength",
	Short: "Score every player of a squad or league per role",
	Long: `Reads squad HTML exports and writes one strength sheet per squad.

Each row holds the player's natural positions, formation groups,
best role per position and the strength of every evaluated role.

Example:
  go run ./cmd/fmscout strength --team raw_files/ekstraklasa/Lech.html
  go run ./cmd/fmscout strength --league raw_files/ekstraklasa --all-positions
  go run ./cmd/fmscout strength --league raw_files/ekstraklasa --teams Lech,Legia
  go run ./cmd/fmscout strength --league raw_files/ekstraklasa --players "Jan Kowalski"`,
	RunE: runStrength,
}

func init() {
	strengthCmd.Flags().StringVar(&strengthTeamFile, "team", "", "single squad HTML file")
	strengthCmd.Flags().StringVar(&strengthLeagueDir, "league", "", "directory of squad HTML files (default LEAGUE_DIR)")
	strengthCmd.Flags().BoolVar(&strengthAllPositions, "all-positions", false, "score every catalog position, not only natural ones")
	strengthCmd.Flags().StringVar(&strengthOutDir, "out", "", "output directory (default OUTPUT_DIR)")
	strengthCmd.Flags().StringSliceVar(&strengthPlayers, "players", nil, "only score these players")
	strengthCmd.Flags().StringSliceVar(&strengthTeams, "teams", nil, "only score these teams")
	rootCmd.AddCommand(strengthCmd)
}

func runStrength(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}

	lg, err := loadLeague(a, strengthTeamFile, strengthLeagueDir)
	if err != nil {
		return err
	}

	lg = narrowLeague(lg, strengthTeams, strengthPlayers)
	if len(lg.Squads) == 0 {
		PrintWarning("No squad matches the --teams/--players selection")
		return nil
	}

	strengths, err := a.ranker(strengthAllPositions).Evaluate(context.Background(), lg)
	if err != nil {
		return fmt.Errorf("evaluate league: %w", err)
	}

	outDir := strengthOutDir
	if outDir == "" {
		outDir = a.cfg.Paths.OutputDir
	}

	PrintHeader("Squad strength: " + lg.Name)
	rows := make([][]string, 0, len(strengths))
	for _, s := range strengths {
		path := filepath.Join(outDir, s.Team+".xlsx")
		if err := report.WriteSquadStrength(path, s); err != nil {
			return err
		}
		rows = append(rows, []string{s.Team, strconv.Itoa(len(s.Records)), bestOf(s), path})
	}
	PrintTable([]string{"Team", "Players", "Best", "File"}, rows)
	PrintSuccess(fmt.Sprintf("%d strength sheets written", len(strengths)))

	return nil
}

// loadLeague reads a single squad file or a whole league directory
func loadLeague(a *app, teamFile, leagueDir string) (*contracts.League, error) {
	if teamFile != "" {
		team := strings.TrimSuffix(filepath.Base(teamFile), filepath.Ext(teamFile))
		squad, err := fmhtml.LoadSquad(teamFile, team)
		if err != nil {
			return nil, err
		}
		return &contracts.League{Name: team, Squads: []contracts.Squad{squad}}, nil
	}

	if leagueDir == "" {
		leagueDir = a.cfg.Paths.LeagueDir
	}
	lg, err := fmhtml.LoadLeague(leagueDir)
	if err != nil {
		return nil, fmt.Errorf("load league: %w", err)
	}
	return lg, nil
}

// narrowLeague keeps the named teams and players; an empty list does not filter
// Squads left without players are dropped.
func narrowLeague(lg *contracts.League, teams, players []string) *contracts.League {
	if len(teams) == 0 && len(players) == 0 {
		return lg
	}

	teamSet := toSet(teams)
	playerSet := toSet(players)

	out := &contracts.League{Name: lg.Name}
	for _, squad := range lg.Squads {
		if len(teamSet) > 0 && !teamSet[squad.Team] {
			continue
		}
		kept := contracts.Squad{Team: squad.Team}
		for _, p := range squad.Players {
			if len(playerSet) == 0 || playerSet[p.Name] {
				kept.Players = append(kept.Players, p)
			}
		}
		if len(kept.Players) > 0 {
			out.Squads = append(out.Squads, kept)
		}
	}
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			set[item] = true
		}
	}
	return set
}

// bestOf names the squad's highest role strength
func bestOf(s contracts.SquadStrength) string {
	best, found := "", false
	top := 0.0
	for i := range s.Records {
		rec := &s.Records[i]
		for _, role := range rec.Roles {
			v, ok := rec.Strength(role)
			if !ok || (found && v <= top) {
				continue
			}
			best, top, found = fmt.Sprintf("%s %s %s", rec.Name, role, formatStrength(v)), v, true
		}
	}
	return best
}
