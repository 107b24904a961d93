// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Category groups units that can be converted into one another.
type Category string

const (
	CategoryLength      Category = "Length"
	CategoryWeight      Category = "Weight"
	CategoryTemperature Category = "Temperature"
)

// Linear reports whether units of the category scale multiplicatively
// through a shared base unit (meters for Length, grams for Weight).
func (c Category) Linear() bool {
	return c == CategoryLength || c == CategoryWeight
}

// UnitDefinition describes one unit in the catalog.
type UnitDefinition struct {
	// ID is a stable identifier for the unit (e.g. "kilogram", "celsius").
	ID string `json:"id" yaml:"id"`

	// Names lists the recognized aliases: symbol first, then singular and
	// plural display names as the last two entries.
	Names []string `json:"names" yaml:"names"`

	// Category is Length, Weight, or Temperature.
	Category Category `json:"category" yaml:"category"`

	// ScaleToBase expresses one of this unit in the category's base unit.
	// Zero for Temperature units.
	ScaleToBase float64 `json:"scale_to_base,omitempty" yaml:"scale_to_base,omitempty"`
}

// Singular returns the display name used for a quantity of exactly one.
func (u UnitDefinition) Singular() string {
	if len(u.Names) < 2 {
		return u.Plural()
	}
	return u.Names[len(u.Names)-2]
}

// Plural returns the display name used for every quantity other than one.
func (u UnitDefinition) Plural() string {
	if len(u.Names) == 0 {
		return u.ID
	}
	return u.Names[len(u.Names)-1]
}

// NameFor picks the singular name when value is exactly 1.0 and the plural
// name otherwise. -1.0 is plural.
func (u UnitDefinition) NameFor(value float64) string {
	if value == 1.0 {
		return u.Singular()
	}
	return u.Plural()
}

// ConversionRequest is one parsed input line. Source and Target are nil
// when the corresponding token did not name a known unit.
type ConversionRequest struct {
	Value  float64
	Source *UnitDefinition
	Target *UnitDefinition
}
