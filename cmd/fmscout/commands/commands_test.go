package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

func TestTargetsQuery_OnlyChangedFlagsAreSet(t *testing.T) {
	f := targetsCmd.Flags()
	require.NoError(t, f.Set("position", "D (L)"))
	require.NoError(t, f.Set("max-value", "500000"))
	require.NoError(t, f.Set("min-age", "0"))

	q := targetsQuery(targetsCmd)
	assert.Equal(t, "D (L)", q.Position)
	require.NotNil(t, q.MaxValue)
	assert.Equal(t, int64(500000), *q.MaxValue)
	require.NotNil(t, q.MinAge, "an explicit zero is still a filter")
	assert.Equal(t, 0, *q.MinAge)
	assert.Nil(t, q.MaxAge)
	assert.Nil(t, q.MinStrength)
}

func TestFormatDeltas(t *testing.T) {
	assert.Equal(t, "Age +1, Pace -2", formatDeltas(map[string]int{"Pace": -2, "Age": 1}))
	assert.Equal(t, "", formatDeltas(nil))
}

func TestFormatStrength(t *testing.T) {
	assert.Equal(t, "37.50", formatStrength(37.5))
	assert.Equal(t, "-6.00", formatStrength(-6))
}

func TestNarrowLeague(t *testing.T) {
	lg := &contracts.League{Name: "ekstraklasa", Squads: []contracts.Squad{
		{Team: "Lech", Players: []contracts.Player{{Name: "Kowalski"}, {Name: "Nowak"}}},
		{Team: "Legia", Players: []contracts.Player{{Name: "Wisniewski"}}},
		{Team: "Wisla", Players: []contracts.Player{{Name: "Kowalski"}}},
	}}

	tests := []struct {
		name    string
		teams   []string
		players []string
		want    map[string][]string
	}{
		{
			name: "no selection keeps everything",
			want: map[string][]string{"Lech": {"Kowalski", "Nowak"}, "Legia": {"Wisniewski"}, "Wisla": {"Kowalski"}},
		},
		{
			name:  "teams",
			teams: []string{"Legia", " Wisla "},
			want:  map[string][]string{"Legia": {"Wisniewski"}, "Wisla": {"Kowalski"}},
		},
		{
			name:    "players across teams",
			players: []string{"Kowalski"},
			want:    map[string][]string{"Lech": {"Kowalski"}, "Wisla": {"Kowalski"}},
		},
		{
			name:    "teams and players together",
			teams:   []string{"Lech"},
			players: []string{"Nowak", "Wisniewski"},
			want:    map[string][]string{"Lech": {"Nowak"}},
		},
		{
			name:    "nothing matches",
			players: []string{"Nobody"},
			want:    map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := narrowLeague(lg, tt.teams, tt.players)
			assert.Equal(t, "ekstraklasa", got.Name)

			names := make(map[string][]string)
			for _, s := range got.Squads {
				for _, p := range s.Players {
					names[s.Team] = append(names[s.Team], p.Name)
				}
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
