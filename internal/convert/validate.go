// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "github.com/pdiddy/unit-converter/pkg/types"

// Validate checks a request in order: a resolved Length or Weight source
// with a negative value yields *NegativeQuantityError; otherwise the
// request is convertible only when both units resolved and share a
// category. A false return with a nil error is the impossible-conversion
// outcome.
func Validate(req types.ConversionRequest) (bool, error) {
	if req.Source != nil && req.Source.Category.Linear() && req.Value < 0 {
		return false, &NegativeQuantityError{Category: req.Source.Category}
	}
	if req.Source == nil || req.Target == nil {
		return false, nil
	}
	return req.Source.Category == req.Target.Category, nil
}
