// Package lexspan turns a token cursor into a pull-based token stream,
// optionally annotated with byte-offset spans.
//
// The package sits between a tokenizing engine and a parser. The engine is
// consumed through the Cursor capability: a cursor holds one current token
// and the byte range that produced it, and can advance to the next match.
// Which token values exist, how unrecognized input is classified, and
// whether skipped regions (such as whitespace) appear in matches are all
// decided by the engine; lexspan only drives the cursor and stops at the
// engine's sentinel token.
//
// Two iterator flavors are provided. Lexer yields bare token values;
// SpannedLexer yields WithSpan pairs carrying the byte range of each match.
// For the same source and token definition the two produce the same token
// values in the same order.
//
//	lx := lexspan.NewSpanned(def, []byte("1 + 1 = 2;\n2 + 2 = 4;"))
//	for tok, ok := lx.Next(); ok; tok, ok = lx.Next() {
//		fmt.Printf("%v %s\n", tok.Item, tok.Span)
//	}
//
// Spans are byte offsets, never codepoint offsets. Slicing a source with a
// span that splits a multi-byte codepoint yields the raw byte fragment;
// keeping spans aligned to codepoint boundaries is the engine's (and
// ultimately the caller's) responsibility.
package lexspan
