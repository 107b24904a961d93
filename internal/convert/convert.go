// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns one line of user input into a reply sentence.
// A line flows through Parse, Validate, Value, and the formatting helpers
// in that order; Converter.Line composes them.
package convert

import (
	"github.com/pdiddy/unit-converter/internal/catalog"
	"github.com/pdiddy/unit-converter/pkg/types"
)

// Value converts v from source to target. Both units must share a
// category; callers run Validate first.
func Value(v float64, source, target types.UnitDefinition) float64 {
	if source.Category == types.CategoryTemperature {
		return Temperature(v, source.ID, target.ID)
	}
	return Linear(v, source, target)
}

// Linear rescales through the category's base unit.
func Linear(v float64, source, target types.UnitDefinition) float64 {
	if source.ID == target.ID {
		return v
	}
	return v * source.ScaleToBase / target.ScaleToBase
}

// Temperature applies the affine formula for the (from, to) pair of
// temperature unit IDs. Same-unit pairs return v unchanged.
func Temperature(v float64, from, to string) float64 {
	switch to {
	case catalog.Celsius:
		switch from {
		case catalog.Fahrenheit:
			return (v - 32) * 5 / 9
		case catalog.Kelvin:
			return v - 273.15
		}
	case catalog.Fahrenheit:
		switch from {
		case catalog.Celsius:
			return v*9/5 + 32
		case catalog.Kelvin:
			return v*9/5 - 459.67
		}
	case catalog.Kelvin:
		switch from {
		case catalog.Celsius:
			return v + 273.15
		case catalog.Fahrenheit:
			return (v + 459.67) * 5 / 9
		}
	}
	return v
}
