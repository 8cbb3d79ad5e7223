package parser_test

import (
	"errors"
	"testing"

	"github.com/agenthands/ncalc/pkg/core/value"
	"github.com/agenthands/ncalc/pkg/interp/lexer"
	"github.com/agenthands/ncalc/pkg/interp/parser"
)

func eval(t *testing.T, src string) (value.Number, error) {
	t.Helper()
	p, err := parser.New(lexer.NewScanner([]byte(src)))
	if err != nil {
		return value.Number{}, err
	}
	return p.Evaluate()
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"single integer", "42", "42"},
		{"addition", "2 + 3", "5"},
		{"multiply binds tighter", "7 + 3 * 2", "13"},
		{"left associative minus", "10 - 2 - 3", "5"},
		{"left associative divide", "20 / 2 / 5", "2.0"},
		{"parens override precedence", "(7 + 3) * 2", "20"},
		{"nested parens", "((1 + 2) * (3 + 4))", "21"},
		{"redundant parens", "(((5)))", "5"},
		{"division is real", "7 / 2", "3.5"},
		{"mixed chain", "14 + 2 * 3 - 6 / 2", "17.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := eval(t, tt.src)
			if err != nil {
				t.Fatalf("Evaluate(%q) error: %v", tt.src, err)
			}
			if got.Format() != tt.want {
				t.Errorf("Evaluate(%q) = %s, want %s", tt.src, got.Format(), tt.want)
			}
		})
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty input", ""},
		{"whitespace only", "   "},
		{"unmatched open paren", "(1 + 2"},
		{"bare close paren", ")"},
		{"operator without operand", "1 +"},
		{"leading operator", "* 2"},
		{"trailing integer", "1 + 2 3"},
		{"trailing close paren", "1 + 2)"},
		{"empty parens", "()"},
		{"double operator", "1 + * 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eval(t, tt.src)
			var synErr *parser.SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("Evaluate(%q): expected SyntaxError, got %v", tt.src, err)
			}
		})
	}
}

func TestTrailingTokenErrorDetail(t *testing.T) {
	_, err := eval(t, "1 + 2 3")
	var synErr *parser.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	if synErr.Got != lexer.KindInteger {
		t.Errorf("expected leftover integer token, got %v", synErr.Got)
	}
	if len(synErr.Expected) != 1 || synErr.Expected[0] != lexer.KindEOF {
		t.Errorf("expected EOF expectation, got %v", synErr.Expected)
	}
}

func TestDivisionByZeroPropagates(t *testing.T) {
	for _, src := range []string{"5 / 0", "1 / (2 - 2)", "3 + 4 / 0"} {
		_, err := eval(t, src)
		if !errors.Is(err, value.ErrDivisionByZero) {
			t.Errorf("Evaluate(%q): expected ErrDivisionByZero, got %v", src, err)
		}
	}
}

func TestLexicalErrorPropagates(t *testing.T) {
	// The bad character sits past the first token, so it surfaces from a
	// consume pulling the next look-ahead, not from parser construction.
	_, err := eval(t, "1 + a")
	var lexErr *lexer.LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexicalError, got %v", err)
	}

	// And at the very first token it surfaces from New.
	_, err = parser.New(lexer.NewScanner([]byte("@")))
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexicalError from New, got %v", err)
	}
}

func TestOverflowPropagates(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"addition past max", "9223372036854775807 + 1"},
		// Min int64 is reachable without unary minus; negating it
		// is the one product whose wraparound a division check misses.
		{"min int64 negated", "(0 - 9223372036854775807 - 1) * (0 - 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eval(t, tt.src)
			if !errors.Is(err, value.ErrOverflow) {
				t.Errorf("Evaluate(%q): expected ErrOverflow, got %v", tt.src, err)
			}
		})
	}
}
