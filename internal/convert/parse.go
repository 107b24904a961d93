// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/unit-converter/internal/catalog"
	"github.com/pdiddy/unit-converter/pkg/types"
)

// Token positions after decoration words are dropped:
// <value> <source> to <target>.
const (
	valueIdx  = 0
	sourceIdx = 1
	targetIdx = 3
)

// Tokenize splits a line on whitespace and drops the standalone words
// "degree" and "degrees".
func Tokenize(line string) []string {
	fields := strings.Fields(line)
	tokens := fields[:0]
	for _, f := range fields {
		switch strings.ToLower(f) {
		case "degree", "degrees":
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Parse turns one input line into a ConversionRequest. The value token must
// be a decimal number, otherwise Parse returns a *ParseError and does not
// look at the unit tokens. Unknown or missing unit tokens leave Source or
// Target nil; the token at position 2 is not checked.
func Parse(c *catalog.Catalog, line string) (types.ConversionRequest, error) {
	return parseTokens(c, Tokenize(line))
}

func parseTokens(c *catalog.Catalog, tokens []string) (types.ConversionRequest, error) {
	if len(tokens) <= valueIdx {
		return types.ConversionRequest{}, &ParseError{}
	}
	value, err := parseValue(tokens[valueIdx])
	if err != nil {
		return types.ConversionRequest{}, err
	}

	req := types.ConversionRequest{Value: value}
	if len(tokens) > sourceIdx {
		req.Source = c.Lookup(tokens[sourceIdx])
	}
	if len(tokens) > targetIdx {
		req.Target = c.Lookup(tokens[targetIdx])
	}
	return req, nil
}

// parseValue accepts plain decimal and exponent notation only. strconv
// alone would also take hex floats, underscores, "inf" and "nan".
func parseValue(tok string) (float64, error) {
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '+', r == '-', r == 'e', r == 'E':
		default:
			return 0, &ParseError{Token: tok}
		}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &ParseError{Token: tok}
	}
	return v, nil
}
