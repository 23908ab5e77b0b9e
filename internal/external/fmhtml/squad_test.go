package fmhtml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSquad = `
<html>
<body>
<table>
	<tr>
		<th>Name</th><th>Position</th><th>Age</th><th>Wage</th><th>Transfer Value</th><th>Club</th>
		<th>Tackling</th><th>Marking</th><th>Personality</th>
	</tr>
	<tr>
		<td>Jan  Kowalski</td><td>D (RL), WB (R)</td><td>23</td><td>1.500 zł p/w</td>
		<td>100K - 200K</td><td>Lech</td><td>14</td><td>12</td><td>Balanced</td>
	</tr>
	<tr>
		<td></td><td>GK</td><td>30</td><td></td><td></td><td></td><td>1</td><td>1</td><td></td>
	</tr>
	<tr>
		<td>Jan Kowalski</td><td>GK</td><td>31</td><td>900 zł p/w</td>
		<td>Not for Sale</td><td>Lech</td><td>3</td><td>-</td><td>Driven</td>
	</tr>
</table>
<table><tr><th>Name</th></tr><tr><td>ignored</td></tr></table>
</body>
</html>
`

func TestParseSquad(t *testing.T) {
	squad, err := ParseSquad(strings.NewReader(sampleSquad), "Lech")
	require.NoError(t, err)
	require.Len(t, squad.Players, 2)

	first := squad.Players[0]
	assert.Equal(t, "Jan Kowalski", first.Name)
	assert.Equal(t, "D (RL), WB (R)", first.Position)
	assert.Equal(t, 23, first.Age)
	assert.Equal(t, "1.500 zł p/w", first.Salary)
	assert.Equal(t, "100K - 200K", first.Value)
	assert.Equal(t, "Lech", first.Club)
	assert.Equal(t, map[string]int{"Tackling": 14, "Marking": 12}, map[string]int(first.Attributes))

	// same name, different row: the key keeps them apart
	second := squad.Players[1]
	assert.Equal(t, first.Name, second.Name)
	assert.NotEqual(t, first.Key, second.Key)
	assert.Equal(t, 1, second.Key.Row)
	assert.False(t, second.ForSale())

	_, ok := second.Attributes.Get("Marking")
	assert.False(t, ok)
}

func TestParseSquad_Errors(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{name: "no table", html: `<html><body><p>nothing</p></body></html>`},
		{name: "no name column", html: `<table><tr><th>Age</th></tr><tr><td>20</td></tr></table>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSquad(strings.NewReader(tt.html), "X")
			assert.Error(t, err)
		})
	}
}

func TestLoadLeague(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Wisla.html"), []byte(sampleSquad), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Lech.html"), []byte(sampleSquad), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))

	league, err := LoadLeague(dir)
	require.NoError(t, err)
	require.Len(t, league.Squads, 2)
	assert.Equal(t, "Lech", league.Squads[0].Team)
	assert.Equal(t, "Wisla", league.Squads[1].Team)
	assert.Equal(t, "Wisla", league.Squads[1].Players[0].Key.Team)
	assert.Equal(t, 4, league.PlayerCount())
}

func TestLoadLeague_EmptyDir(t *testing.T) {
	_, err := LoadLeague(t.TempDir())
	assert.Error(t, err)
}
