package contracts

// RoleDefinition is a tactical role and the attribute weights that score it
type RoleDefinition struct {
	Code    string         `json:"code"` // e.g. "wbd"
	Name    string         `json:"name"` // e.g. "Wing-Back (Defend)"
	Weights map[string]int `json:"weights"`
}

// PositionDefinition lists the roles valid at a canonical position label
type PositionDefinition struct {
	Label       string   `json:"label"` // e.g. "D (L)"
	Roles       []string `json:"roles"`
	Alternative string   `json:"alternative,omitempty"`
}

// Formation groups
const (
	GroupGoalkeeper  = "GK"
	GroupDefenders   = "Defenders"
	GroupMidfielders = "Midfielders"
	GroupAttackers   = "Attackers"
)
