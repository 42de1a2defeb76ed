package rulelex

import (
	"testing"

	"lexspan"
)

type kind uint8

const (
	eofTok kind = iota
	unknownTok
	numTok
	identTok
	assignTok
	eqTok
	newlineTok
)

func testDef(opts Options) *Def[kind, string] {
	return New[kind, string](eofTok, unknownTok, []Rule[kind]{
		Class(numTok, Digit),
		Class(identTok, Alpha),
		Literal(assignTok, "="),
		Literal(eqTok, "=="),
		Literal(newlineTok, "\n"),
	}, opts)
}

func collect(def *Def[kind, string], src string) []lexspan.WithSpan[kind] {
	var out []lexspan.WithSpan[kind]
	cur := def.Cursor(src)
	for cur.Token() != def.Sentinel() {
		out = append(out, lexspan.With(cur.Token(), cur.Span()))
		cur.Advance()
	}
	return out
}

func TestCursor_EagerFirstMatch(t *testing.T) {
	cur := testDef(Options{}).Cursor("abc=1")

	// A fresh cursor already sits on the first match.
	if cur.Token() != identTok {
		t.Fatalf("Token() = %v, want %v", cur.Token(), identTok)
	}
	if sp := cur.Span(); sp != (lexspan.Span{Start: 0, End: 3}) {
		t.Fatalf("Span() = %s, want 0..3", sp)
	}
}

func TestCursor_Matching(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		skip     func(byte) bool
		expected []lexspan.WithSpan[kind]
	}{
		{
			name: "class runs are maximal",
			src:  "123abc",
			expected: []lexspan.WithSpan[kind]{
				lexspan.With(numTok, lexspan.Span{Start: 0, End: 3}),
				lexspan.With(identTok, lexspan.Span{Start: 3, End: 6}),
			},
		},
		{
			name: "longest literal wins over rule order",
			src:  "===",
			expected: []lexspan.WithSpan[kind]{
				lexspan.With(eqTok, lexspan.Span{Start: 0, End: 2}),
				lexspan.With(assignTok, lexspan.Span{Start: 2, End: 3}),
			},
		},
		{
			name: "unknown input one byte at a time",
			src:  "@@",
			expected: []lexspan.WithSpan[kind]{
				lexspan.With(unknownTok, lexspan.Span{Start: 0, End: 1}),
				lexspan.With(unknownTok, lexspan.Span{Start: 1, End: 2}),
			},
		},
		{
			name: "multi-byte codepoint falls through to unknown",
			src:  "π",
			expected: []lexspan.WithSpan[kind]{
				lexspan.With(unknownTok, lexspan.Span{Start: 0, End: 1}),
				lexspan.With(unknownTok, lexspan.Span{Start: 1, End: 2}),
			},
		},
		{
			name: "skip set leaves gaps between spans",
			src:  "a b",
			skip: Space,
			expected: []lexspan.WithSpan[kind]{
				lexspan.With(identTok, lexspan.Span{Start: 0, End: 1}),
				lexspan.With(identTok, lexspan.Span{Start: 2, End: 3}),
			},
		},
		{
			name: "without a skip set every byte is matched",
			src:  "a b",
			expected: []lexspan.WithSpan[kind]{
				lexspan.With(identTok, lexspan.Span{Start: 0, End: 1}),
				lexspan.With(unknownTok, lexspan.Span{Start: 1, End: 2}),
				lexspan.With(identTok, lexspan.Span{Start: 2, End: 3}),
			},
		},
		{
			name:     "empty source",
			src:      "",
			expected: nil,
		},
		{
			name:     "skip-only source",
			src:      "  \t",
			skip:     Space,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(testDef(Options{Skip: tt.skip}), tt.src)
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestCursor_SentinelAtEnd(t *testing.T) {
	def := testDef(Options{Skip: Space})
	cur := def.Cursor("ab  ")

	cur.Advance()
	if cur.Token() != eofTok {
		t.Fatalf("Token() = %v, want sentinel", cur.Token())
	}
	// The sentinel sits on an empty span at the end of the source.
	if sp := cur.Span(); sp != (lexspan.Span{Start: 4, End: 4}) {
		t.Errorf("sentinel Span() = %s, want 4..4", sp)
	}

	// Advancing past the sentinel keeps the cursor there.
	cur.Advance()
	if cur.Token() != eofTok {
		t.Errorf("Token() after extra Advance() = %v, want sentinel", cur.Token())
	}
}

func TestCursor_ByteSource(t *testing.T) {
	def := New[kind, []byte](eofTok, unknownTok, []Rule[kind]{
		Class(numTok, Digit),
	}, Options{})

	cur := def.Cursor([]byte("42"))
	if cur.Token() != numTok {
		t.Fatalf("Token() = %v, want %v", cur.Token(), numTok)
	}
	if sp := cur.Span(); sp != (lexspan.Span{Start: 0, End: 2}) {
		t.Fatalf("Span() = %s, want 0..2", sp)
	}
}
