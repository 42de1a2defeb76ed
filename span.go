package lexspan

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a half-open byte range [Start, End) into a source buffer.
// It carries coordinates only; the buffer is always owned elsewhere.
type Span struct {
	Start uint32 // in bytes, inclusive
	End   uint32 // in bytes, exclusive
}

// NewSpan builds a span from int byte offsets.
// Callers must keep start <= end; only the uint32 conversion is checked.
func NewSpan(start, end int) Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("span end overflow: %w", err))
	}
	return Span{Start: s, End: e}
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the span length in bytes.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Source is any byte-oriented string-like buffer a span can index into.
type Source interface {
	~string | ~[]byte
}

// Slice returns the substring of src identified by the span.
//
// Slicing is purely byte-based: a span boundary inside a multi-byte
// codepoint produces a raw byte fragment, and a span reaching past the end
// of src panics with the usual slice bounds error. Neither condition is
// pre-validated here.
func Slice[S Source](src S, sp Span) S {
	return src[sp.Start:sp.End]
}

// Of returns the substring of src identified by the span.
func (s Span) Of(src string) string {
	return Slice(src, s)
}

// Bytes returns the sub-slice of src identified by the span.
// The result aliases src; it is not a copy.
func (s Span) Bytes(src []byte) []byte {
	return Slice(src, s)
}
