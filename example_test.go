package lexspan_test

import (
	"fmt"

	"lexspan"
)

func Example() {
	src := "1 + 1 = 2;"

	lx := lexspan.New(arithDef(), src)
	for tok := range lx.Seq() {
		fmt.Print(tok, " ")
	}
	fmt.Println()
	// Output: Digit Plus Digit Equal Digit End
}

func ExampleSpannedLexer() {
	src := "2 + 2 = 4;"

	lx := lexspan.NewSpanned(arithDef(), src)
	for tok, ok := lx.Next(); ok; tok, ok = lx.Next() {
		fmt.Printf("%s %s %q\n", tok.Span, tok.Item, tok.Span.Of(src))
	}
	// Output:
	// 0..1 Digit "2"
	// 2..3 Plus "+"
	// 4..5 Digit "2"
	// 6..7 Equal "="
	// 8..9 Digit "4"
	// 9..10 End ";"
}
