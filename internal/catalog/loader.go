package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osokolowskii/fm-algorithm/internal/contracts"
)

type positionEntry struct {
	Position    string   `yaml:"Position" json:"Position"`
	Roles       []string `yaml:"Roles" json:"Roles"`
	Alternative string   `yaml:"Alternative,omitempty" json:"Alternative,omitempty"`
}

// LoadFiles reads the role weight and position tables and builds a validated Catalog
// .json files are decoded as JSON, everything else as YAML
func LoadFiles(rolesPath, positionsPath string) (*Catalog, error) {
	roleData, err := os.ReadFile(rolesPath)
	if err != nil {
		return nil, fmt.Errorf("read roles: %w", err)
	}
	posData, err := os.ReadFile(positionsPath)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	roles, err := DecodeRoles(bytes.NewReader(roleData), isJSON(rolesPath))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", rolesPath, err)
	}
	positions, err := DecodePositions(bytes.NewReader(posData), isJSON(positionsPath))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", positionsPath, err)
	}

	return New(roles, positions)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// DecodeRoles reads a list of {RoleCode, Role, <Attribute>: weight} mappings
// Only integer values are weights; everything else is ignored
func DecodeRoles(r io.Reader, asJSON bool) ([]contracts.RoleDefinition, error) {
	var raw []map[string]interface{}
	if asJSON {
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	} else {
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, err
		}
	}

	roles := make([]contracts.RoleDefinition, 0, len(raw))
	for i, item := range raw {
		code, _ := item["RoleCode"].(string)
		name, _ := item["Role"].(string)
		if code == "" {
			return nil, ValidationError{fmt.Sprintf("roles[%d].RoleCode", i), "required"}
		}

		weights := make(map[string]int)
		for k, v := range item {
			if k == "RoleCode" || k == "Role" {
				continue
			}
			if w, ok := intWeight(v); ok {
				weights[k] = w
			}
		}
		roles = append(roles, contracts.RoleDefinition{Code: code, Name: name, Weights: weights})
	}
	return roles, nil
}

func intWeight(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case json.Number:
		if strings.ContainsAny(n.String(), ".eE") {
			return 0, false
		}
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

// DecodePositions reads a list of {Position, Roles, Alternative?}
// Unknown fields fail immediately
func DecodePositions(r io.Reader, asJSON bool) ([]contracts.PositionDefinition, error) {
	var entries []positionEntry
	if asJSON {
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&entries); err != nil {
			return nil, err
		}
	} else {
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&entries); err != nil {
			return nil, err
		}
	}

	out := make([]contracts.PositionDefinition, 0, len(entries))
	for _, e := range entries {
		out = append(out, contracts.PositionDefinition{
			Label:       e.Position,
			Roles:       e.Roles,
			Alternative: e.Alternative,
		})
	}
	return out, nil
}
