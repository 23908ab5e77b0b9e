package contracts

// TransferQuery holds the filters of a transfer-target search
// Optional numeric filters are nil when unset
type TransferQuery struct {
	Position    string   `json:"position"`
	Role        string   `json:"role,omitempty"`
	Team        string   `json:"team,omitempty"`
	TeamRank    int      `json:"team_rank,omitempty"` // cut the block at the team's N-th player
	MaxValue    *int64   `json:"max_value,omitempty"`
	MinAge      *int     `json:"min_age,omitempty"`
	MaxAge      *int     `json:"max_age,omitempty"`
	OnlyForSale bool     `json:"only_for_sale,omitempty"`
	MinStrength *float64 `json:"min_strength,omitempty"`
}

// Validate checks the fields a search cannot run without
func (q *TransferQuery) Validate() error {
	if q.Position == "" {
		return &QueryError{Field: "position", Message: "please provide a position to search for"}
	}
	if q.Team != "" && q.TeamRank <= 0 {
		return &QueryError{Field: "strength", Message: "please provide a strength value when specifying a team"}
	}
	return nil
}

// RoleCell is one role-strength column of a position-level result row
type RoleCell struct {
	Role     string  `json:"role"`
	Strength float64 `json:"strength"`
	Present  bool    `json:"present"`
}

// TargetRow is one row of a position-level result
// Identity columns come from the first role block; the row is aligned by position, not by player
type TargetRow struct {
	RankingRow
	HasIdentity     bool       `json:"has_identity"`
	Cells           []RoleCell `json:"cells"`
	AverageStrength float64    `json:"average_strength"`
	MaxStrength     float64    `json:"max_strength"`
	MaxStrengthRole string     `json:"max_strength_role"`
}

// TransferResult is the output of a transfer-target search
// Block is set for role queries, Roles/Rows for position queries
type TransferResult struct {
	Query TransferQuery `json:"query"`
	Block *RoleBlock    `json:"block,omitempty"`
	Roles []string      `json:"roles,omitempty"`
	Rows  []TargetRow   `json:"rows,omitempty"`
}

// Len returns the number of result rows
func (r *TransferResult) Len() int {
	if r.Block != nil {
		return len(r.Block.Rows)
	}
	return len(r.Rows)
}

// PlayerComparison is the strength gap of two players in one role
type PlayerComparison struct {
	Position   string  `json:"position"`
	Role       string  `json:"role"`
	First      float64 `json:"first"`
	Second     float64 `json:"second"`
	Difference float64 `json:"difference"`
}

// TeamComparison compares the best player and depth of two teams in one role
type TeamComparison struct {
	Position    string  `json:"position"`
	Role        string  `json:"role"`
	FirstBest   float64 `json:"first_best"`
	SecondBest  float64 `json:"second_best"`
	FirstDepth  int     `json:"first_depth"`
	SecondDepth int     `json:"second_depth"`
	Difference  float64 `json:"difference"`
}
