package contracts

// ProgressStep is the attribute change of a player between two snapshots
type ProgressStep struct {
	From   int            `json:"from"` // snapshot index
	To     int            `json:"to"`
	Deltas map[string]int `json:"deltas"`
}

// PlayerProgress lists the progress steps of one player
type PlayerProgress struct {
	Name  string         `json:"name"`
	Steps []ProgressStep `json:"steps"`
}

// Snapshot is one dated export of player tables
type Snapshot struct {
	Label   string   `json:"label"` // e.g. file name
	Players []Player `json:"players"`
}
