package lexspan

import "iter"

// SpannedLexer is a lazy, finite, forward-only sequence of tokens annotated
// with their byte spans. It owns its cursor; the sequence ends, permanently,
// the first time the cursor's current token equals the sentinel.
type SpannedLexer[T comparable] struct {
	cur      Cursor[T]
	sentinel T
}

// NewSpanned builds a spanned lexer over src using the token definition def.
func NewSpanned[T comparable, S Source](def Tokens[T, S], src S) *SpannedLexer[T] {
	return &SpannedLexer[T]{cur: def.Cursor(src), sentinel: def.Sentinel()}
}

// SpannedFromCursor wraps an already positioned cursor. The lexer takes
// exclusive ownership of cur; nothing else may advance it afterwards.
func SpannedFromCursor[T comparable](cur Cursor[T], sentinel T) *SpannedLexer[T] {
	return &SpannedLexer[T]{cur: cur, sentinel: sentinel}
}

// Next returns the current token with its span and advances the cursor to
// the next match. The returned item is the one the cursor held when the
// call began, not the one it holds after.
//
// Once the cursor sits on the sentinel, Next reports ok == false and never
// touches the cursor again; every later call reports the same.
func (lx *SpannedLexer[T]) Next() (tok WithSpan[T], ok bool) {
	if lx.cur.Token() == lx.sentinel {
		return WithSpan[T]{}, false
	}
	tok = With(lx.cur.Token(), lx.cur.Span())
	lx.cur.Advance()
	return tok, true
}

// Seq adapts the lexer to a range-over-func sequence. The sequence shares
// the lexer's cursor: ranging consumes the same underlying stream as Next.
func (lx *SpannedLexer[T]) Seq() iter.Seq[WithSpan[T]] {
	return func(yield func(WithSpan[T]) bool) {
		for tok, ok := lx.Next(); ok; tok, ok = lx.Next() {
			if !yield(tok) {
				return
			}
		}
	}
}

// Collect drains the lexer into a slice.
func (lx *SpannedLexer[T]) Collect() []WithSpan[T] {
	var out []WithSpan[T]
	for tok, ok := lx.Next(); ok; tok, ok = lx.Next() {
		out = append(out, tok)
	}
	return out
}

// Lexer is the bare flavor of SpannedLexer: the same sequence, same
// termination rule, but each produced item is the token value alone.
type Lexer[T comparable] struct {
	inner SpannedLexer[T]
}

// New builds a bare lexer over src using the token definition def.
func New[T comparable, S Source](def Tokens[T, S], src S) *Lexer[T] {
	return &Lexer[T]{inner: SpannedLexer[T]{cur: def.Cursor(src), sentinel: def.Sentinel()}}
}

// FromCursor wraps an already positioned cursor. The lexer takes exclusive
// ownership of cur; nothing else may advance it afterwards.
func FromCursor[T comparable](cur Cursor[T], sentinel T) *Lexer[T] {
	return &Lexer[T]{inner: SpannedLexer[T]{cur: cur, sentinel: sentinel}}
}

// Next returns the current token value and advances the cursor. It follows
// the same step and termination protocol as SpannedLexer.Next, so for one
// source the two flavors yield pointwise equal token values.
func (lx *Lexer[T]) Next() (tok T, ok bool) {
	ws, ok := lx.inner.Next()
	return ws.Item, ok
}

// Seq adapts the lexer to a range-over-func sequence. The sequence shares
// the lexer's cursor: ranging consumes the same underlying stream as Next.
func (lx *Lexer[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for tok, ok := lx.Next(); ok; tok, ok = lx.Next() {
			if !yield(tok) {
				return
			}
		}
	}
}

// Collect drains the lexer into a slice.
func (lx *Lexer[T]) Collect() []T {
	var out []T
	for tok, ok := lx.Next(); ok; tok, ok = lx.Next() {
		out = append(out, tok)
	}
	return out
}
