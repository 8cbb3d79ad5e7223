package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindInteger
	KindPlus     // +
	KindMinus    // -
	KindMultiply // *
	KindDivide   // /
	KindLParen   // (
	KindRParen   // )
)

var kindNames = [...]string{
	KindEOF:      "end of input",
	KindInteger:  "integer",
	KindPlus:     "'+'",
	KindMinus:    "'-'",
	KindMultiply: "'*'",
	KindDivide:   "'/'",
	KindLParen:   "'('",
	KindRParen:   "')'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token represents a lexical unit. Value is set only for KindInteger and
// Lit only for the operator and parenthesis kinds; a KindEOF token carries
// neither. Offset is the byte position of the token's first character.
type Token struct {
	Kind   Kind
	Value  int64
	Lit    byte
	Offset int
}
