// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package repl runs the interactive prompt-read-reply loop.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pdiddy/unit-converter/internal/convert"
	"github.com/pdiddy/unit-converter/pkg/types"
)

// Summary counts the lines handled in one session, by outcome.
type Summary struct {
	Converted  int
	Impossible int
	Rejected   int
}

// Total returns the number of lines answered.
func (s Summary) Total() int {
	return s.Converted + s.Impossible + s.Rejected
}

// Run prompts on w, reads lines from r, and writes one reply per line
// followed by a blank line. It stops when a raw line equals cfg.Exit,
// when r is exhausted, or when ctx is cancelled. Conversion failures are
// replies, not errors; only I/O failures and cancellation are returned.
func Run(ctx context.Context, r io.Reader, w io.Writer, conv *convert.Converter, cfg types.Config, logger *slog.Logger) (Summary, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var summary Summary
	scanner := bufio.NewScanner(r)

	for {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		if _, err := fmt.Fprint(w, cfg.Prompt); err != nil {
			return summary, fmt.Errorf("writing prompt: %w", err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return summary, fmt.Errorf("reading input: %w", err)
			}
			logger.Debug("end of input", "lines", summary.Total())
			return summary, nil
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == cfg.Exit {
			logger.Debug("exit requested", "lines", summary.Total())
			return summary, nil
		}

		res := conv.Line(strings.ToLower(line))
		switch res.Outcome {
		case convert.OutcomeConverted:
			summary.Converted++
		case convert.OutcomeImpossible:
			summary.Impossible++
		default:
			summary.Rejected++
		}

		if _, err := fmt.Fprintf(w, "%s\n\n", res.Message); err != nil {
			return summary, fmt.Errorf("writing reply: %w", err)
		}
	}
}
