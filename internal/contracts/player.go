package contracts

import "fmt"

// NotForSale is the transfer-value text of a player the club refuses to sell
const NotForSale = "Not for Sale"

// AttributeSet maps an attribute name (e.g. "Tackling") to its skill value
type AttributeSet map[string]int

// Get returns the value of an attribute and whether it is present
func (a AttributeSet) Get(name string) (int, bool) {
	v, ok := a[name]
	return v, ok
}

// PlayerKey identifies a player inside a league
// Names are not unique within a squad, so the source row is part of the key
type PlayerKey struct {
	Team string `json:"team"`
	Name string `json:"name"`
	Row  int    `json:"row"` // 0-based index among the squad's parsed players
}

func (k PlayerKey) String() string {
	return fmt.Sprintf("%s/%s#%d", k.Team, k.Name, k.Row)
}

// Player is one row of an exported squad table
// ⭐ SSOT: input feed record shared by strength, progress and report packages
type Player struct {
	Key        PlayerKey    `json:"key"`
	Name       string       `json:"name"`
	Position   string       `json:"position"` // raw text, e.g. "D (RL), WB (R)"
	Age        int          `json:"age"`
	Salary     string       `json:"salary"`
	Value      string       `json:"value"` // range text or "Not for Sale"
	Club       string       `json:"club"`
	Attributes AttributeSet `json:"attributes"`
}

// ForSale reports whether the player's club accepts offers
func (p *Player) ForSale() bool {
	return p.Value != NotForSale
}

// Squad is a team and its players in source order
type Squad struct {
	Team    string   `json:"team"`
	Players []Player `json:"players"`
}

// League is an ordered collection of squads
type League struct {
	Name   string  `json:"name"`
	Squads []Squad `json:"squads"`
}

// Squad returns the squad of a team
func (l *League) Squad(team string) (*Squad, bool) {
	for i := range l.Squads {
		if l.Squads[i].Team == team {
			return &l.Squads[i], true
		}
	}
	return nil, false
}

// PlayerCount returns the number of players across all squads
func (l *League) PlayerCount() int {
	n := 0
	for _, s := range l.Squads {
		n += len(s.Players)
	}
	return n
}
