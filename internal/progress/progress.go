// Package progress tracks how player attributes change across successive squad exports.
package progress

import (
	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

// AgeKey is the delta key used for the age column
const AgeKey = "Age"

type observation struct {
	snapshot int
	values   map[string]int
}

// Compare groups players by name across ordered snapshots and returns their attribute deltas
// Players seen in a single snapshot are left out. Consecutive identical observations collapse
// into one, so a step is only reported when something changed. Output follows first appearance.
func Compare(snapshots []contracts.Snapshot) []contracts.PlayerProgress {
	var order []string
	seen := make(map[string][]observation)

	for i, s := range snapshots {
		for _, p := range s.Players {
			if _, ok := seen[p.Name]; !ok {
				order = append(order, p.Name)
			}
			seen[p.Name] = append(seen[p.Name], observation{snapshot: i, values: flatten(p)})
		}
	}

	out := make([]contracts.PlayerProgress, 0, len(order))
	for _, name := range order {
		obs := seen[name]
		if len(obs) < 2 {
			continue
		}

		progress := contracts.PlayerProgress{Name: name, Steps: []contracts.ProgressStep{}}
		prev := obs[0]
		for _, cur := range obs[1:] {
			deltas := diff(prev.values, cur.values)
			if len(deltas) == 0 {
				continue
			}
			progress.Steps = append(progress.Steps, contracts.ProgressStep{
				From:   prev.snapshot,
				To:     cur.snapshot,
				Deltas: deltas,
			})
			prev = cur
		}
		out = append(out, progress)
	}

	return out
}

func flatten(p contracts.Player) map[string]int {
	values := make(map[string]int, len(p.Attributes)+1)
	for k, v := range p.Attributes {
		values[k] = v
	}
	values[AgeKey] = p.Age
	return values
}

// diff returns the non-zero changes from a to b; a key missing on one side counts as 0
func diff(a, b map[string]int) map[string]int {
	deltas := make(map[string]int)
	for k, v := range b {
		if d := v - a[k]; d != 0 {
			deltas[k] = d
		}
	}
	for k, v := range a {
		if _, ok := b[k]; !ok && v != 0 {
			deltas[k] = -v
		}
	}
	if len(deltas) == 0 {
		return nil
	}
	return deltas
}
