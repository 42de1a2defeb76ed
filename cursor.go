package lexspan

// Cursor is the capability a tokenizing engine exposes to the iterators.
//
// A cursor is always positioned at exactly one match: constructing one from
// a source eagerly runs the first match, so a fresh cursor already sits on
// token one (or on the sentinel when the source yields nothing). Token and
// Span report the current match without moving; Advance runs the next match.
// Once the current token is the sentinel, Advance is never called again.
//
// Each cursor is exclusively owned by the iterator that wraps it.
type Cursor[T comparable] interface {
	// Token returns the token value of the current match.
	Token() T
	// Span returns the byte range of the current match.
	Span() Span
	// Advance runs the matcher for the next token.
	Advance()
}

// Tokens ties a token type to its sentinel value and to a cursor factory
// for sources of type S. It is the construction-side counterpart of Cursor:
// engines implement it once per token definition so that consumers can
// build iterators directly from a source.
type Tokens[T comparable, S Source] interface {
	// Sentinel returns the token value that marks end of input.
	// It is compared with == and never yielded to consumers.
	Sentinel() T
	// Cursor runs the first match on src and returns the positioned cursor.
	Cursor(src S) Cursor[T]
}
