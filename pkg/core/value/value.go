package value

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Type represents the tag in the Number tagged union.
type Type uint8

const (
	TypeInt Type = iota
	TypeFloat
)

// Arithmetic failures surfaced by the checked operations.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
)

// Number is a tagged numeric value. Integers stay exact int64 until a
// division occurs; division always produces a float, matching the real
// (non-truncating) semantics of the `/` operator.
type Number struct {
	Type Type
	Data uint64 // int64 bits or math.Float64bits, interpreted per Type
}

// FromInt wraps an int64.
func FromInt(i int64) Number {
	return Number{Type: TypeInt, Data: uint64(i)}
}

// FromFloat wraps a float64.
func FromFloat(f float64) Number {
	return Number{Type: TypeFloat, Data: math.Float64bits(f)}
}

// Int returns the value as int64. Only meaningful when Type is TypeInt.
func (n Number) Int() int64 {
	return int64(n.Data)
}

// Float returns the value as float64, converting from int64 if needed.
func (n Number) Float() float64 {
	if n.Type == TypeFloat {
		return math.Float64frombits(n.Data)
	}
	return float64(int64(n.Data))
}

// Add returns n + m. Int+Int stays int and fails with ErrOverflow rather
// than wrapping; any float operand promotes the result to float.
func (n Number) Add(m Number) (Number, error) {
	if n.Type == TypeInt && m.Type == TypeInt {
		a, b := n.Int(), m.Int()
		sum := a + b
		if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
			return Number{}, ErrOverflow
		}
		return FromInt(sum), nil
	}
	return FromFloat(n.Float() + m.Float()), nil
}

// Sub returns n - m with the same promotion and overflow rules as Add.
func (n Number) Sub(m Number) (Number, error) {
	if n.Type == TypeInt && m.Type == TypeInt {
		a, b := n.Int(), m.Int()
		diff := a - b
		if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0) {
			return Number{}, ErrOverflow
		}
		return FromInt(diff), nil
	}
	return FromFloat(n.Float() - m.Float()), nil
}

// Mul returns n * m with the same promotion and overflow rules as Add.
func (n Number) Mul(m Number) (Number, error) {
	if n.Type == TypeInt && m.Type == TypeInt {
		a, b := n.Int(), m.Int()
		if a == 0 || b == 0 {
			return FromInt(0), nil
		}
		// MinInt64 / -1 wraps in Go, so the division check below would
		// miss this pair.
		if (a == math.MinInt64 && b == -1) || (a == -1 && b == math.MinInt64) {
			return Number{}, ErrOverflow
		}
		prod := a * b
		if prod/b != a {
			return Number{}, ErrOverflow
		}
		return FromInt(prod), nil
	}
	return FromFloat(n.Float() * m.Float()), nil
}

// Div returns n / m. The result is always a float; a zero divisor fails
// with ErrDivisionByZero.
func (n Number) Div(m Number) (Number, error) {
	if m.Float() == 0 {
		return Number{}, ErrDivisionByZero
	}
	return FromFloat(n.Float() / m.Float()), nil
}

// Format returns the display representation: ints as-is, floats in %g form
// with a ".0" suffix when integral, so `10 / 2` renders as "5.0".
func (n Number) Format() string {
	switch n.Type {
	case TypeFloat:
		f := math.Float64frombits(n.Data)
		s := fmt.Sprintf("%g", f)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprintf("%d", int64(n.Data))
	}
}
