package parser

import (
	"fmt"
	"strings"

	"github.com/agenthands/ncalc/pkg/core/value"
	"github.com/agenthands/ncalc/pkg/interp/lexer"
)

// SyntaxError reports a token stream that does not match the grammar.
type SyntaxError struct {
	Offset   int
	Expected []lexer.Kind
	Got      lexer.Kind
}

func (e *SyntaxError) Error() string {
	names := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		names[i] = k.String()
	}
	return fmt.Sprintf("syntax error at offset %d: expected %s, got %s",
		e.Offset, strings.Join(names, " or "), e.Got)
}

// Parser recognizes the expression grammar by recursive descent and
// evaluates it in the same pass:
//
//	expr   := term ((+|-) term)*
//	term   := factor ((*|/) factor)*
//	factor := INTEGER | '(' expr ')'
//
// Look-ahead depth is exactly one token; there is no backtracking and no
// intermediate tree.
type Parser struct {
	scanner *lexer.Scanner
	curTok  lexer.Token
}

// New creates a parser bound to the scanner and primes the look-ahead
// with the first token.
func New(s *lexer.Scanner) (*Parser, error) {
	p := &Parser{scanner: s}
	tok, err := s.Next()
	if err != nil {
		return nil, err
	}
	p.curTok = tok
	return p, nil
}

// Evaluate recognizes one complete expression and returns its value.
// Anything left over after the expression is a syntax error.
func (p *Parser) Evaluate() (value.Number, error) {
	result, err := p.expr()
	if err != nil {
		return value.Number{}, err
	}
	if p.curTok.Kind != lexer.KindEOF {
		return value.Number{}, &SyntaxError{
			Offset:   p.curTok.Offset,
			Expected: []lexer.Kind{lexer.KindEOF},
			Got:      p.curTok.Kind,
		}
	}
	return result, nil
}

// consume checks the look-ahead against the acceptable kinds, discards it
// and pulls the next token into look-ahead.
func (p *Parser) consume(kinds ...lexer.Kind) error {
	ok := false
	for _, k := range kinds {
		if p.curTok.Kind == k {
			ok = true
			break
		}
	}
	if !ok {
		return &SyntaxError{Offset: p.curTok.Offset, Expected: kinds, Got: p.curTok.Kind}
	}

	tok, err := p.scanner.Next()
	if err != nil {
		return err
	}
	p.curTok = tok
	return nil
}

func (p *Parser) expr() (value.Number, error) {
	result, err := p.term()
	if err != nil {
		return value.Number{}, err
	}

	for p.curTok.Kind == lexer.KindPlus || p.curTok.Kind == lexer.KindMinus {
		op := p.curTok.Kind
		if err := p.consume(op); err != nil {
			return value.Number{}, err
		}
		rhs, err := p.term()
		if err != nil {
			return value.Number{}, err
		}
		if op == lexer.KindPlus {
			result, err = result.Add(rhs)
		} else {
			result, err = result.Sub(rhs)
		}
		if err != nil {
			return value.Number{}, err
		}
	}

	return result, nil
}

func (p *Parser) term() (value.Number, error) {
	result, err := p.factor()
	if err != nil {
		return value.Number{}, err
	}

	for p.curTok.Kind == lexer.KindMultiply || p.curTok.Kind == lexer.KindDivide {
		op := p.curTok.Kind
		if err := p.consume(op); err != nil {
			return value.Number{}, err
		}
		rhs, err := p.factor()
		if err != nil {
			return value.Number{}, err
		}
		if op == lexer.KindMultiply {
			result, err = result.Mul(rhs)
		} else {
			result, err = result.Div(rhs)
		}
		if err != nil {
			return value.Number{}, err
		}
	}

	return result, nil
}

func (p *Parser) factor() (value.Number, error) {
	switch p.curTok.Kind {
	case lexer.KindInteger:
		v := p.curTok.Value
		if err := p.consume(lexer.KindInteger); err != nil {
			return value.Number{}, err
		}
		return value.FromInt(v), nil
	case lexer.KindLParen:
		if err := p.consume(lexer.KindLParen); err != nil {
			return value.Number{}, err
		}
		inner, err := p.expr()
		if err != nil {
			return value.Number{}, err
		}
		if err := p.consume(lexer.KindRParen); err != nil {
			return value.Number{}, err
		}
		return inner, nil
	default:
		return value.Number{}, &SyntaxError{
			Offset:   p.curTok.Offset,
			Expected: []lexer.Kind{lexer.KindInteger, lexer.KindLParen},
			Got:      p.curTok.Kind,
		}
	}
}
