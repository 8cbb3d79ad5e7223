// Package repl provides the interactive read-eval-print driver around the
// expression interpreter. The core stays pure; presentation policy (prompt,
// blank-line skip, error reporting and re-prompt) lives here.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/agenthands/ncalc/pkg/interp"
)

// REPL reads one expression per line, evaluates it and prints the result.
type REPL struct {
	in     io.Reader
	out    io.Writer
	cfg    Config
	log    zerolog.Logger
	result *color.Color
	errc   *color.Color
}

// New creates a REPL over the given streams.
func New(cfg Config, in io.Reader, out io.Writer, logger zerolog.Logger) *REPL {
	result := color.New(color.FgGreen)
	errc := color.New(color.FgRed)
	if !cfg.Color {
		result.DisableColor()
		errc.DisableColor()
	}

	return &REPL{
		in:     in,
		out:    out,
		cfg:    cfg,
		log:    logger,
		result: result,
		errc:   errc,
	}
}

// Run loops until the input stream ends. Blank lines re-prompt without
// evaluating; an evaluation error is reported and the loop continues.
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.in)

	for {
		fmt.Fprint(r.out, r.cfg.Prompt)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			// EOF: finish the prompt line and exit cleanly.
			fmt.Fprintln(r.out)
			return nil
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		r.log.Debug().Str("input", line).Msg("evaluating")

		n, err := interp.Evaluate(line)
		if err != nil {
			r.log.Debug().Err(err).Msg("evaluation failed")
			r.errc.Fprintf(r.out, "error: %v\n", err)
			continue
		}

		r.result.Fprintln(r.out, n.Format())
	}
}
