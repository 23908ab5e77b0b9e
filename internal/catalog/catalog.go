package catalog

import (
	"fmt"
	"strings"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

// Catalog is the immutable role/position lookup built once at startup
// ⭐ SSOT: every component receives the catalog explicitly, nothing reads it from globals
type Catalog struct {
	roles     map[string]contracts.RoleDefinition
	roleOrder []string
	positions []contracts.PositionDefinition
	byLabel   map[string]int
}

// New builds a catalog from definitions and validates it
func New(roles []contracts.RoleDefinition, positions []contracts.PositionDefinition) (*Catalog, error) {
	c := &Catalog{
		roles:   make(map[string]contracts.RoleDefinition, len(roles)),
		byLabel: make(map[string]int, len(positions)),
	}

	for i, r := range roles {
		if r.Code == "" {
			return nil, ValidationError{fmt.Sprintf("roles[%d].RoleCode", i), "required"}
		}
		if _, dup := c.roles[r.Code]; dup {
			return nil, ValidationError{fmt.Sprintf("roles[%d].RoleCode", i), fmt.Sprintf("duplicate role code %q", r.Code)}
		}
		weights := positiveWeights(r.Weights)
		if len(weights) == 0 {
			return nil, ValidationError{fmt.Sprintf("roles[%s]", r.Code), "no attribute with a positive weight"}
		}
		c.roles[r.Code] = contracts.RoleDefinition{Code: r.Code, Name: r.Name, Weights: weights}
		c.roleOrder = append(c.roleOrder, r.Code)
	}

	for i, p := range positions {
		if p.Label == "" {
			return nil, ValidationError{fmt.Sprintf("positions[%d].Position", i), "required"}
		}
		if _, dup := c.byLabel[p.Label]; dup {
			return nil, ValidationError{fmt.Sprintf("positions[%d].Position", i), fmt.Sprintf("duplicate position %q", p.Label)}
		}
		if len(p.Roles) == 0 {
			return nil, ValidationError{fmt.Sprintf("positions[%s].Roles", p.Label), "required"}
		}
		for _, code := range p.Roles {
			if _, ok := c.roles[code]; !ok {
				return nil, ValidationError{fmt.Sprintf("positions[%s].Roles", p.Label), fmt.Sprintf("role %q has no weight table", code)}
			}
		}
		roleCodes := make([]string, len(p.Roles))
		copy(roleCodes, p.Roles)
		c.byLabel[p.Label] = len(c.positions)
		c.positions = append(c.positions, contracts.PositionDefinition{
			Label:       p.Label,
			Roles:       roleCodes,
			Alternative: p.Alternative,
		})
	}

	return c, nil
}

func positiveWeights(weights map[string]int) map[string]int {
	out := make(map[string]int, len(weights))
	for attr, w := range weights {
		if w > 0 {
			out[attr] = w
		}
	}
	return out
}

// NormalizeLabel maps a canonical position label onto its catalog key
// Double spaces collapse, right-sided labels use the left-sided tables and every DM label is "DM (C)"
func NormalizeLabel(label string) string {
	label = strings.Join(strings.Fields(label), " ")
	if strings.Contains(label, "DM") {
		return "DM (C)"
	}
	return strings.ReplaceAll(label, "(R)", "(L)")
}

// Role returns the definition of a role code
func (c *Catalog) Role(code string) (contracts.RoleDefinition, error) {
	r, ok := c.roles[code]
	if !ok {
		return contracts.RoleDefinition{}, fmt.Errorf("%w: %q", contracts.ErrUnknownRole, code)
	}
	return r, nil
}

// Roles returns every role in feed order
func (c *Catalog) Roles() []contracts.RoleDefinition {
	out := make([]contracts.RoleDefinition, 0, len(c.roleOrder))
	for _, code := range c.roleOrder {
		out = append(out, c.roles[code])
	}
	return out
}

// Positions returns every position in feed order
func (c *Catalog) Positions() []contracts.PositionDefinition {
	out := make([]contracts.PositionDefinition, len(c.positions))
	copy(out, c.positions)
	return out
}

// Position looks up a position by label after normalization
func (c *Catalog) Position(label string) (contracts.PositionDefinition, error) {
	idx, ok := c.byLabel[NormalizeLabel(label)]
	if !ok {
		return contracts.PositionDefinition{}, fmt.Errorf("%w: %q", contracts.ErrUnknownPosition, label)
	}
	return c.positions[idx], nil
}

// RolesAt returns the role definitions valid at a position label
func (c *Catalog) RolesAt(label string) ([]contracts.RoleDefinition, error) {
	pos, err := c.Position(label)
	if err != nil {
		return nil, err
	}
	out := make([]contracts.RoleDefinition, 0, len(pos.Roles))
	for _, code := range pos.Roles {
		out = append(out, c.roles[code])
	}
	return out, nil
}

// Alternative returns the report section label of a position, or the label itself
func (c *Catalog) Alternative(label string) string {
	pos, err := c.Position(label)
	if err != nil || pos.Alternative == "" {
		return label
	}
	return pos.Alternative
}
