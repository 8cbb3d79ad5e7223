// Package interp evaluates arithmetic expressions with standard operator
// precedence, left associativity and parenthesised grouping.
package interp

import (
	"github.com/agenthands/ncalc/pkg/core/value"
	"github.com/agenthands/ncalc/pkg/interp/lexer"
	"github.com/agenthands/ncalc/pkg/interp/parser"
)

// Evaluate computes the value of one expression. Each call owns a fresh
// scanner and parser; no state survives across calls.
//
// Errors are typed and propagate unchanged from the point of detection:
// *lexer.LexicalError for an unrecognized character,
// *parser.SyntaxError for a grammar violation (including trailing tokens
// and empty input), value.ErrDivisionByZero and value.ErrOverflow for
// arithmetic failures.
func Evaluate(text string) (value.Number, error) {
	p, err := parser.New(lexer.NewScanner([]byte(text)))
	if err != nil {
		return value.Number{}, err
	}
	return p.Evaluate()
}
