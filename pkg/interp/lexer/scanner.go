package lexer

import (
	"fmt"
	"math"
	"strconv"
)

// LexicalError reports a character that does not start any token.
type LexicalError struct {
	Offset int
	Char   byte
	cause  error
}

func (e *LexicalError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("lexical error at offset %d: %v", e.Offset, e.cause)
	}
	return fmt.Sprintf("lexical error at offset %d: unexpected character %q", e.Offset, e.Char)
}

func (e *LexicalError) Unwrap() error { return e.cause }

// Scanner performs lexical analysis on one line of expression source.
// The cursor only moves forward; a Scanner is used for a single input
// and never reset.
type Scanner struct {
	source []byte
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source}
}

// Next returns the next token from the source. Once the input is
// exhausted it keeps returning KindEOF tokens; this holds for empty
// input too, where the cursor starts already at end of input.
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Offset: s.cursor}, nil
	}

	start := s.cursor
	ch := s.source[s.cursor]

	if isDigit(ch) {
		return s.scanInteger()
	}

	var kind Kind
	switch ch {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindMultiply
	case '/':
		kind = KindDivide
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	default:
		return Token{}, &LexicalError{Offset: start, Char: ch}
	}

	s.cursor++
	return Token{Kind: kind, Lit: ch, Offset: start}, nil
}

// scanInteger consumes the maximal run of digits. A run that does not fit
// in int64 is a lexical failure, not a silent wraparound.
func (s *Scanner) scanInteger() (Token, error) {
	start := s.cursor

	var v int64
	overflow := false
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		d := int64(s.source[s.cursor] - '0')
		if v > (math.MaxInt64-d)/10 {
			overflow = true
		} else {
			v = v*10 + d
		}
		s.cursor++
	}

	if overflow {
		lit := string(s.source[start:s.cursor])
		return Token{}, &LexicalError{Offset: start, Char: s.source[start], cause: fmt.Errorf("integer literal %s: %w", lit, strconv.ErrRange)}
	}

	return Token{Kind: KindInteger, Value: v, Offset: start}, nil
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\r', '\n':
			s.cursor++
		default:
			return
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
