package lexspan

// WithSpan pairs a token value with the span of the match that produced it.
// It is a plain value type; equality is structural when T is comparable.
type WithSpan[T any] struct {
	Item T
	Span Span
}

// With wraps item with span.
func With[T any](item T, span Span) WithSpan[T] {
	return WithSpan[T]{Item: item, Span: span}
}
