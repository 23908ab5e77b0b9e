package contracts

import "context"

// PositionParser turns raw position text into canonical position labels
// ⭐ SSOT: position grammar lives behind this interface
type PositionParser interface {
	Parse(raw string) []string
}

// StrengthCalculator scores players per role
type StrengthCalculator interface {
	StrengthInPosition(player *Player, label string, sign Sign) (RoleStrengths, error)
	StrengthOfPlayer(player *Player, evaluateAll bool) (*StrengthRecord, error)
	StrengthOfSquad(squad *Squad, evaluateAll bool) (SquadStrength, error)
}

// LeagueRanker builds league-wide role rankings
type LeagueRanker interface {
	Evaluate(ctx context.Context, league *League) ([]SquadStrength, error)
	RankRole(strengths []SquadStrength, role string) RoleRanking
	RankPosition(strengths []SquadStrength, position PositionDefinition) PositionRanking
	RankAll(strengths []SquadStrength) RankingTable
}

// TargetFinder filters ranking tables into transfer shortlists
type TargetFinder interface {
	GetTargets(table *RankingTable, query TransferQuery) (*TransferResult, error)
	ComparePlayers(table *RankingTable, first, second, limitTo string) []PlayerComparison
	CompareTeams(table *RankingTable, first, second string) []TeamComparison
}
