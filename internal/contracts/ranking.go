package contracts

// Column names of a ranking block, in layout order
var BlockColumns = []string{"Team", "Player", "Strength", "Age", "Salary", "Value"}

// RankingRow is one entry of a role ranking
type RankingRow struct {
	Team     string  `json:"team"`
	Player   string  `json:"player"`
	Strength float64 `json:"strength"`
	Age      int     `json:"age"`
	Salary   string  `json:"salary"`
	Value    string  `json:"value"`
}

// RoleRanking is the league-wide ranking of one role, descending by strength
type RoleRanking struct {
	Role string       `json:"role"`
	Rows []RankingRow `json:"rows"`
}

// RoleBlock is a role ranking tagged with the position it was built for
// Blocks of one position are independent and not row-aligned
type RoleBlock struct {
	Position string       `json:"position"`
	Role     string       `json:"role"`
	Rows     []RankingRow `json:"rows"`
}

// Label is the column prefix used in ranking workbooks, e.g. "D (L) fbd"
func (b *RoleBlock) Label() string {
	return b.Position + " " + b.Role
}

// Clone returns a copy whose rows can be reordered freely
func (b *RoleBlock) Clone() RoleBlock {
	rows := make([]RankingRow, len(b.Rows))
	copy(rows, b.Rows)
	return RoleBlock{Position: b.Position, Role: b.Role, Rows: rows}
}

// PositionRanking holds one block per role of a position
type PositionRanking struct {
	Position string      `json:"position"`
	Blocks   []RoleBlock `json:"blocks"`
}

// RankingTable is a full ranking workbook: every block of every position
type RankingTable struct {
	Blocks []RoleBlock `json:"blocks"`
}

// Append adds the blocks of a position ranking
func (t *RankingTable) Append(p PositionRanking) {
	t.Blocks = append(t.Blocks, p.Blocks...)
}

// BlocksFor returns the blocks of a position, optionally narrowed to one role
func (t *RankingTable) BlocksFor(position, role string) []RoleBlock {
	var out []RoleBlock
	for _, b := range t.Blocks {
		if b.Position != position {
			continue
		}
		if role != "" && b.Role != role {
			continue
		}
		out = append(out, b)
	}
	return out
}
