// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"log/slog"

	"github.com/pdiddy/unit-converter/internal/catalog"
	"github.com/pdiddy/unit-converter/pkg/types"
)

// Outcome classifies how a line was handled.
type Outcome string

const (
	OutcomeConverted  Outcome = "converted"
	OutcomeImpossible Outcome = "impossible"
	OutcomeParseError Outcome = "parse_error"
	OutcomeNegative   Outcome = "negative"
)

// Result is the reply to one input line.
type Result struct {
	Outcome Outcome
	Request types.ConversionRequest

	// Value is the converted quantity; set only for OutcomeConverted.
	Value float64

	// Message is the sentence shown to the user.
	Message string

	// Err is the *ParseError or *NegativeQuantityError behind a rejected
	// line; nil otherwise.
	Err error
}

// Converter answers input lines against a unit catalog.
type Converter struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// New returns a Converter. A nil logger discards log output.
func New(c *catalog.Catalog, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Converter{catalog: c, logger: logger}
}

// Line parses, validates, converts, and formats one line. Callers lowercase
// the line first; lookups are case-insensitive either way.
func (c *Converter) Line(line string) Result {
	tokens := Tokenize(line)
	req, err := parseTokens(c.catalog, tokens)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			c.logger.Debug("parse error", "tokens", tokens, "token", pe.Token)
		}
		return Result{Outcome: OutcomeParseError, Message: err.Error(), Err: err}
	}

	ok, err := Validate(req)
	if err != nil {
		c.logger.Debug("rejected negative quantity", "tokens", tokens, "value", req.Value, "source", req.Source.ID)
		return Result{Outcome: OutcomeNegative, Request: req, Message: err.Error(), Err: err}
	}
	if !ok {
		c.logger.Debug("conversion impossible", "tokens", tokens, "source", unitID(req.Source), "target", unitID(req.Target))
		return Result{Outcome: OutcomeImpossible, Request: req, Message: Impossible(req.Source, req.Target)}
	}

	v := Value(req.Value, *req.Source, *req.Target)
	c.logger.Debug("converted", "tokens", tokens, "value", req.Value, "source", req.Source.ID, "target", req.Target.ID, "result", v)
	return Result{
		Outcome: OutcomeConverted,
		Request: req,
		Value:   v,
		Message: Sentence(req.Value, *req.Source, v, *req.Target),
	}
}

func unitID(u *types.UnitDefinition) string {
	if u == nil {
		return ""
	}
	return u.ID
}
