// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/unit-converter/pkg/types"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"5 kg to g", []string{"5", "kg", "to", "g"}},
		{"  5\tkg   to  g \n", []string{"5", "kg", "to", "g"}},
		{"10 degrees celsius to degree fahrenheit", []string{"10", "celsius", "to", "fahrenheit"}},
		{"10 Degrees celsius to f", []string{"10", "celsius", "to", "f"}},
		{"10 degreess c to f", []string{"10", "degreess", "c", "to", "f"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.line))
		})
	}
}

func TestParse(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name       string
		line       string
		wantValue  float64
		wantSource string
		wantTarget string
	}{
		{"plain", "5 kg to g", 5, "kilogram", "gram"},
		{"decimal", "2.5 mi to km", 2.5, "mile", "kilometer"},
		{"exponent", "1e3 mm to m", 1000, "millimeter", "meter"},
		{"leading dot", ".5 lb to oz", 0.5, "pound", "ounce"},
		{"explicit plus", "+3 in to cm", 3, "inch", "centimeter"},
		{"position two unchecked", "5 kg into g", 5, "kilogram", "gram"},
		{"extra tokens ignored", "5 kg to g please", 5, "kilogram", "gram"},
		{"unknown source", "5 stone to g", 5, "", "gram"},
		{"missing target", "5 kg", 5, "kilogram", ""},
		{"verbose same as plain", "10 degrees celsius to fahrenheit", 10, "celsius", "fahrenheit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Parse(c, tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, req.Value)
			assert.Equal(t, tt.wantSource, idOf(req.Source))
			assert.Equal(t, tt.wantTarget, idOf(req.Target))
		})
	}
}

func TestParseVerboseMatchesPlain(t *testing.T) {
	c := testCatalog(t)

	verbose, err := Parse(c, "10 degrees celsius to fahrenheit")
	require.NoError(t, err)
	plain, err := Parse(c, "10 celsius to fahrenheit")
	require.NoError(t, err)
	assert.Equal(t, plain, verbose)
}

func TestParseValueErrors(t *testing.T) {
	c := testCatalog(t)

	for _, line := range []string{
		"abc m to cm",
		"5kg to g",
		"1.2.3 m to cm",
		"nan m to cm",
		"inf m to cm",
		"0x10 m to cm",
		"1_000 m to cm",
		"1e400 m to cm",
		"- m to cm",
		"",
		"   ",
		"degrees",
	} {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(c, line)
			require.Error(t, err)
			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
			assert.Equal(t, "Parse error", err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	c := testCatalog(t)
	kg, g, m, cel := c.Lookup("kg"), c.Lookup("g"), c.Lookup("m"), c.Lookup("c")

	tests := []struct {
		name    string
		req     types.ConversionRequest
		wantOK  bool
		wantErr string
	}{
		{"same category", types.ConversionRequest{Value: 5, Source: kg, Target: g}, true, ""},
		{"zero is not negative", types.ConversionRequest{Value: 0, Source: kg, Target: g}, true, ""},
		{"negative weight", types.ConversionRequest{Value: -5, Source: kg, Target: g}, false, "Weight shouldn't be negative"},
		{"negative length without target", types.ConversionRequest{Value: -1, Source: m}, false, "Length shouldn't be negative"},
		{"negative temperature", types.ConversionRequest{Value: -5, Source: cel, Target: cel}, true, ""},
		{"negative with unknown source", types.ConversionRequest{Value: -5, Target: g}, false, ""},
		{"category mismatch", types.ConversionRequest{Value: 1, Source: m, Target: g}, false, ""},
		{"missing target", types.ConversionRequest{Value: 1, Source: m}, false, ""},
		{"missing both", types.ConversionRequest{Value: 1}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Validate(tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func idOf(u *types.UnitDefinition) string {
	if u == nil {
		return ""
	}
	return u.ID
}
