// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/unit-converter/pkg/types"
)

// unresolvedName stands in for a unit token that named no known unit.
const unresolvedName = "???"

// FormatNumber renders v with the shortest digits that round-trip and at
// least one fractional digit ("5.0", "0.25"). Non-zero magnitudes below
// 1e-3 or at or above 1e7 use scientific notation ("1.0E7", "1.5E-4").
// A conversion that overflows renders as "Infinity" or "-Infinity".
func FormatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}

	abs := math.Abs(v)
	if v == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}

// Sentence renders a successful conversion:
// "<value> <source name> is <result> <target name>".
func Sentence(value float64, source types.UnitDefinition, result float64, target types.UnitDefinition) string {
	return fmt.Sprintf("%s %s is %s %s",
		FormatNumber(value), source.NameFor(value),
		FormatNumber(result), target.NameFor(result))
}

// Impossible renders a rejected conversion, naming each resolved unit by
// its plural and each unresolved one by a placeholder.
func Impossible(source, target *types.UnitDefinition) string {
	return fmt.Sprintf("Conversion from %s to %s is impossible", pluralOrUnresolved(source), pluralOrUnresolved(target))
}

func pluralOrUnresolved(u *types.UnitDefinition) string {
	if u == nil {
		return unresolvedName
	}
	return u.Plural()
}
