// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/pdiddy/unit-converter/pkg/types"
)

// ParseError reports a value token that is not a decimal number.
type ParseError struct {
	// Token is the offending text; empty when the line had no tokens.
	Token string
}

func (e *ParseError) Error() string {
	return "Parse error"
}

// NegativeQuantityError reports a negative quantity in a category that
// only admits non-negative values (Length, Weight).
type NegativeQuantityError struct {
	Category types.Category
}

func (e *NegativeQuantityError) Error() string {
	return fmt.Sprintf("%s shouldn't be negative", e.Category)
}
