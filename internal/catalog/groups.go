package catalog

import (
	"strings"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

var formationGroups = map[string][]string{
	"GK": {contracts.GroupGoalkeeper},
	"D":  {contracts.GroupDefenders},
	"WB": {contracts.GroupDefenders, contracts.GroupMidfielders},
	"DM": {contracts.GroupMidfielders},
	"M":  {contracts.GroupMidfielders},
	"AM": {contracts.GroupMidfielders, contracts.GroupAttackers},
	"ST": {contracts.GroupAttackers},
}

// BareCode strips the side annotation from a label: "WB (L)" -> "WB"
func BareCode(label string) string {
	if i := strings.Index(label, "("); i >= 0 {
		label = label[:i]
	}
	return strings.TrimSpace(label)
}

// FormationGroups returns the groups a position code belongs to
func FormationGroups(code string) []string {
	return formationGroups[BareCode(code)]
}

// GroupsOf returns the distinct groups of a list of labels in first-seen order
func GroupsOf(labels []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range labels {
		for _, g := range FormationGroups(l) {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	return out
}
