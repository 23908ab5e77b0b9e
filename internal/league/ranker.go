package league

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/osokolowskii/fm-algorithm/internal/catalog"
	"github.com/osokolowskii/fm-algorithm/internal/contracts"
	"github.com/osokolowskii/fm-algorithm/pkg/logger"
)

// Ranker builds league-wide role rankings
// ⭐ SSOT: ranking order (descending strength, stable) is decided here only
type Ranker struct {
	catalog *catalog.Catalog
	calc    contracts.StrengthCalculator
	config  Config
	logger  *logger.Logger
}

// Config controls which players enter a ranking
type Config struct {
	PositiveOnly         bool // keep strictly positive strengths only
	EvaluateAllPositions bool // score every catalog position for every player
	Workers              int  // squads evaluated concurrently
}

// DefaultConfig returns the ranking defaults
func DefaultConfig() Config {
	return Config{
		PositiveOnly:         true,
		EvaluateAllPositions: false,
		Workers:              4,
	}
}

// NewRanker creates a new ranker
func NewRanker(cat *catalog.Catalog, calc contracts.StrengthCalculator, config Config, logger *logger.Logger) *Ranker {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	return &Ranker{
		catalog: cat,
		calc:    calc,
		config:  config,
		logger:  logger,
	}
}

// Evaluate computes the strength records of every squad, output in league order
// Squads are independent, so they are scored concurrently
func (r *Ranker) Evaluate(ctx context.Context, league *contracts.League) ([]contracts.SquadStrength, error) {
	out := make([]contracts.SquadStrength, len(league.Squads))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	for i := range league.Squads {
		squad := &league.Squads[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := r.calc.StrengthOfSquad(squad, r.config.EvaluateAllPositions)
			if err != nil {
				return fmt.Errorf("squad %s: %w", squad.Team, err)
			}
			out[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.WithFields(map[string]interface{}{
		"league":  league.Name,
		"squads":  len(league.Squads),
		"players": league.PlayerCount(),
	}).Info("League evaluated")

	return out, nil
}

// RankRole ranks every player with a strength for the role, descending
// Ties keep team-then-player iteration order
func (r *Ranker) RankRole(strengths []contracts.SquadStrength, role string) contracts.RoleRanking {
	ranking := contracts.RoleRanking{Role: role}

	for _, squad := range strengths {
		for i := range squad.Records {
			rec := &squad.Records[i]
			v, ok := rec.Strength(role)
			if !ok {
				continue
			}
			if r.config.PositiveOnly && v <= 0 {
				continue
			}
			ranking.Rows = append(ranking.Rows, contracts.RankingRow{
				Team:     squad.Team,
				Player:   rec.Name,
				Strength: v,
				Age:      rec.Age,
				Salary:   rec.Salary,
				Value:    rec.Value,
			})
		}
	}

	sort.SliceStable(ranking.Rows, func(i, j int) bool {
		return ranking.Rows[i].Strength > ranking.Rows[j].Strength
	})

	return ranking
}

// RankPosition lays out one block per role of the position
func (r *Ranker) RankPosition(strengths []contracts.SquadStrength, position contracts.PositionDefinition) contracts.PositionRanking {
	out := contracts.PositionRanking{
		Position: position.Label,
		Blocks:   make([]contracts.RoleBlock, 0, len(position.Roles)),
	}
	for _, role := range position.Roles {
		ranking := r.RankRole(strengths, role)
		out.Blocks = append(out.Blocks, contracts.RoleBlock{
			Position: position.Label,
			Role:     role,
			Rows:     ranking.Rows,
		})
	}
	return out
}

// RankAll ranks every catalog position, in catalog order
func (r *Ranker) RankAll(strengths []contracts.SquadStrength) contracts.RankingTable {
	var table contracts.RankingTable
	rows := 0
	for _, pos := range r.catalog.Positions() {
		ranked := r.RankPosition(strengths, pos)
		for _, b := range ranked.Blocks {
			rows += len(b.Rows)
		}
		table.Append(ranked)
	}

	r.logger.WithFields(map[string]interface{}{
		"blocks": len(table.Blocks),
		"rows":   rows,
	}).Info("Ranking completed")

	return table
}
