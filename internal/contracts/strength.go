package contracts

import "math"

// Sign marks whether a position is scored as a natural fit or a cross-position comparison
type Sign int

const (
	Natural       Sign = 1
	CrossPosition Sign = -1
)

// RoleStrengths maps a role code to its strength
type RoleStrengths map[string]float64

// StrengthRecord is the per-player result of the strength calculator
// ⭐ SSOT: strength → ranking hand-off
type StrengthRecord struct {
	Key       PlayerKey         `json:"key"`
	Name      string            `json:"name"`
	Positions []string          `json:"positions"` // canonical natural positions
	Groups    []string          `json:"groups"`    // formation groups
	Strengths RoleStrengths     `json:"strengths"`
	Roles     []string          `json:"roles"`      // role codes in evaluation order
	BestRoles map[string]string `json:"best_roles"` // position label -> role code, "(code)" for cross-position

	// Pass-through fields
	Value  string `json:"value"`
	Age    int    `json:"age"`
	Salary string `json:"salary"`
	Club   string `json:"club"`
}

// Strength returns the strength for a role, false when missing or NaN
func (r *StrengthRecord) Strength(role string) (float64, bool) {
	v, ok := r.Strengths[role]
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// SquadStrength holds the records of one squad in source order
type SquadStrength struct {
	Team    string           `json:"team"`
	Records []StrengthRecord `json:"records"`
}
