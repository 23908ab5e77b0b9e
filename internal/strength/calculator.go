package strength

import (
	"errors"
	"fmt"

	"github.com/osokolowskii/fm-algorithm/internal/catalog"
	"github.com/osokolowskii/fm-algorithm/internal/contracts"
	"github.com/osokolowskii/fm-algorithm/internal/position"
	"github.com/osokolowskii/fm-algorithm/pkg/logger"
)

// Calculator scores players per role from catalog weight tables
// ⭐ SSOT: role strength formula lives here only
type Calculator struct {
	catalog *catalog.Catalog
	parser  contracts.PositionParser
	logger  *logger.Logger
}

// NewCalculator creates a new calculator using the standard position grammar
func NewCalculator(cat *catalog.Catalog, logger *logger.Logger) *Calculator {
	return &Calculator{
		catalog: cat,
		parser:  position.Parser{},
		logger:  logger,
	}
}

// StrengthInPosition scores every role valid at a position label
// An unknown label is a configuration error, a missing attribute wraps contracts.ErrMissingAttribute
func (c *Calculator) StrengthInPosition(player *contracts.Player, label string, sign contracts.Sign) (contracts.RoleStrengths, error) {
	roles, err := c.catalog.RolesAt(label)
	if err != nil {
		return nil, fmt.Errorf("strength in %q: %w", label, err)
	}

	out := make(contracts.RoleStrengths, len(roles))
	for _, role := range roles {
		s, err := roleStrength(player, role)
		if err != nil {
			return nil, err
		}
		out[role.Code] = s * float64(sign)
	}
	return out, nil
}

// roleStrength is the plain mean of weighted contributions: sum(value*weight) / count
func roleStrength(player *contracts.Player, role contracts.RoleDefinition) (float64, error) {
	sum := 0
	for attr, weight := range role.Weights {
		v, ok := player.Attributes.Get(attr)
		if !ok {
			return 0, fmt.Errorf("%w: %q required by role %s", contracts.ErrMissingAttribute, attr, role.Code)
		}
		sum += v * weight
	}
	return float64(sum) / float64(len(role.Weights)), nil
}

// StrengthOfPlayer scores a player at natural positions, or at every catalog position when evaluateAll
func (c *Calculator) StrengthOfPlayer(player *contracts.Player, evaluateAll bool) (*contracts.StrengthRecord, error) {
	natural := c.parser.Parse(player.Position)
	naturalSet := make(map[string]bool, len(natural))
	for _, label := range natural {
		naturalSet[catalog.NormalizeLabel(label)] = true
	}

	var labels []string
	if evaluateAll {
		for _, p := range c.catalog.Positions() {
			labels = append(labels, p.Label)
		}
	} else {
		labels = dedupe(natural)
	}

	rec := &contracts.StrengthRecord{
		Key:       player.Key,
		Name:      player.Name,
		Positions: natural,
		Groups:    catalog.GroupsOf(natural),
		Strengths: make(contracts.RoleStrengths),
		BestRoles: make(map[string]string, len(labels)),
		Value:     player.Value,
		Age:       player.Age,
		Salary:    player.Salary,
		Club:      player.Club,
	}

	for _, label := range labels {
		sign := contracts.CrossPosition
		if naturalSet[catalog.NormalizeLabel(label)] {
			sign = contracts.Natural
		}

		strengths, err := c.StrengthInPosition(player, label, sign)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", player.Key, err)
		}

		pos, err := c.catalog.Position(label)
		if err != nil {
			return nil, err
		}

		best := ""
		for _, code := range pos.Roles {
			v := strengths[code]
			if _, seen := rec.Strengths[code]; !seen {
				rec.Roles = append(rec.Roles, code)
			}
			rec.Strengths[code] = v

			if best == "" || better(v, strengths[best], sign) {
				best = code
			}
		}

		if sign == contracts.CrossPosition {
			best = "(" + best + ")"
		}
		rec.BestRoles[label] = best
	}

	return rec, nil
}

// better picks the max for natural positions and the most negative for cross-position ones
func better(candidate, current float64, sign contracts.Sign) bool {
	if sign == contracts.Natural {
		return candidate > current
	}
	return candidate < current
}

// StrengthOfSquad scores every player of a squad in source order
// Players with missing attributes are skipped; configuration errors abort
func (c *Calculator) StrengthOfSquad(squad *contracts.Squad, evaluateAll bool) (contracts.SquadStrength, error) {
	out := contracts.SquadStrength{
		Team:    squad.Team,
		Records: make([]contracts.StrengthRecord, 0, len(squad.Players)),
	}

	skipped := 0
	for i := range squad.Players {
		rec, err := c.StrengthOfPlayer(&squad.Players[i], evaluateAll)
		if errors.Is(err, contracts.ErrMissingAttribute) {
			skipped++
			c.logger.WithError(err).WithField("team", squad.Team).Warn("Player skipped")
			continue
		}
		if err != nil {
			return contracts.SquadStrength{}, err
		}
		out.Records = append(out.Records, *rec)
	}

	c.logger.WithFields(map[string]interface{}{
		"team":      squad.Team,
		"players":   len(squad.Players),
		"evaluated": len(out.Records),
		"skipped":   skipped,
	}).Debug("Squad strength calculated")

	return out, nil
}

func dedupe(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}
