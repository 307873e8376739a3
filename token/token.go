package token

// Token is one raw textual value supplied on invocation.
// The zero Token is Absent.
type Token struct {
	Value   string
	Present bool
}

// Absent marks a value that was explicitly not supplied.
var Absent = Token{}

// Of returns a present token holding s.
func Of(s string) Token {
	return Token{Value: s, Present: true}
}

// Strings converts values into present tokens, keeping their order.
func Strings(values ...string) []Token {
	tokens := make([]Token, len(values))
	for i, v := range values {
		tokens[i] = Of(v)
	}
	return tokens
}

// Values returns the raw text of tokens. Absent tokens become "".
func Values(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, t := range tokens {
		values[i] = t.Value
	}
	return values
}

// String implements fmt.Stringer.
func (t Token) String() string {
	if !t.Present {
		return "<absent>"
	}
	return t.Value
}
