// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the fixed table of units the converter knows about
// and resolves user-typed aliases to unit definitions.
//
// The table lives in units.yaml, embedded at build time and parsed once per
// process. Lookups go through an alias index built at load, so resolving a
// token is a single map access.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/unit-converter/pkg/types"
)

// Temperature unit IDs. Temperature conversions dispatch on these.
const (
	Celsius    = "celsius"
	Fahrenheit = "fahrenheit"
	Kelvin     = "kelvin"
)

//go:embed units.yaml
var unitsYAML []byte

// tableFile is the on-disk shape of units.yaml.
type tableFile struct {
	Units []types.UnitDefinition `yaml:"units"`
}

// Catalog is an immutable set of unit definitions with an alias index.
type Catalog struct {
	units []types.UnitDefinition
	index map[string]int
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Parse(unitsYAML)
})

// Load returns the built-in catalog. The embedded table is parsed on the
// first call; later calls return the same catalog.
func Load() (*Catalog, error) {
	c, err := loadDefault()
	if err != nil {
		return nil, fmt.Errorf("loading built-in unit catalog: %w", err)
	}
	return c, nil
}

// Parse builds a catalog from a YAML unit table and checks its invariants:
// unique IDs, a known category per unit, a positive scale for linear units,
// a supported ID for temperature units, and aliases that are unique across
// the whole table after lowercasing.
func Parse(data []byte) (*Catalog, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parsing unit table: %w", err)
	}
	if len(tf.Units) == 0 {
		return nil, fmt.Errorf("unit table is empty")
	}

	c := &Catalog{
		units: tf.Units,
		index: make(map[string]int),
	}
	ids := make(map[string]bool, len(tf.Units))

	for i, u := range tf.Units {
		if u.ID == "" {
			return nil, fmt.Errorf("unit %d has no id", i)
		}
		if ids[u.ID] {
			return nil, fmt.Errorf("duplicate unit id %q", u.ID)
		}
		ids[u.ID] = true

		if err := validateUnit(u); err != nil {
			return nil, err
		}

		for _, name := range u.Names {
			alias := strings.ToLower(name)
			if j, ok := c.index[alias]; ok {
				return nil, fmt.Errorf("duplicate alias %q (units %s and %s)", alias, tf.Units[j].ID, u.ID)
			}
			c.index[alias] = i
		}
	}

	return c, nil
}

func validateUnit(u types.UnitDefinition) error {
	if len(u.Names) < 2 {
		return fmt.Errorf("unit %s: need at least singular and plural names, got %d", u.ID, len(u.Names))
	}
	switch u.Category {
	case types.CategoryLength, types.CategoryWeight:
		if u.ScaleToBase <= 0 {
			return fmt.Errorf("unit %s: scale_to_base must be positive, got %v", u.ID, u.ScaleToBase)
		}
	case types.CategoryTemperature:
		switch u.ID {
		case Celsius, Fahrenheit, Kelvin:
		default:
			return fmt.Errorf("unit %s: unsupported temperature unit", u.ID)
		}
	default:
		return fmt.Errorf("unit %s: unknown category %q", u.ID, u.Category)
	}
	return nil
}

// Lookup resolves a token to its unit. Matching is exact after lowercasing.
// It returns nil when no unit carries the alias.
func (c *Catalog) Lookup(token string) *types.UnitDefinition {
	i, ok := c.index[strings.ToLower(token)]
	if !ok {
		return nil
	}
	u := c.units[i]
	return &u
}

// All returns every unit in table order.
func (c *Catalog) All() []types.UnitDefinition {
	out := make([]types.UnitDefinition, len(c.units))
	copy(out, c.units)
	return out
}

// ByCategory returns the units of one category in table order.
func (c *Catalog) ByCategory(cat types.Category) []types.UnitDefinition {
	var out []types.UnitDefinition
	for _, u := range c.units {
		if u.Category == cat {
			out = append(out, u)
		}
	}
	return out
}

// Categories lists the categories present in the catalog in table order.
func (c *Catalog) Categories() []types.Category {
	seen := make(map[types.Category]bool)
	var out []types.Category
	for _, u := range c.units {
		if !seen[u.Category] {
			seen[u.Category] = true
			out = append(out, u.Category)
		}
	}
	return out
}
