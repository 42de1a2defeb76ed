// Package dump formats annotated token streams for the CLI.
package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"lexspan"
)

// Token is the serialized form of one annotated token.
type Token struct {
	Kind  string `json:"kind" msgpack:"kind"`
	Text  string `json:"text,omitempty" msgpack:"text,omitempty"`
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

func flatten(src []byte, tokens []lexspan.WithSpan[string]) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, Token{
			Kind:  tok.Item,
			Text:  string(tok.Span.Bytes(src)),
			Start: tok.Span.Start,
			End:   tok.Span.End,
		})
	}
	return out
}

// Pretty writes one token per line in a human-readable format.
func Pretty(w io.Writer, src []byte, tokens []lexspan.WithSpan[string], useColor bool) error {
	kindColor := color.New(color.FgCyan)
	spanColor := color.New(color.FgHiBlack)
	if !useColor {
		kindColor.DisableColor()
		spanColor.DisableColor()
	}

	for i, tok := range tokens {
		_, err := fmt.Fprintf(w, "%3d: %s %q at %s\n",
			i+1,
			kindColor.Sprintf("%-15s", tok.Item),
			tok.Span.Bytes(src),
			spanColor.Sprint(tok.Span))
		if err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the tokens as an indented JSON array.
func JSON(w io.Writer, src []byte, tokens []lexspan.WithSpan[string]) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(flatten(src, tokens))
}

// Msgpack writes the tokens as a msgpack-encoded array.
func Msgpack(w io.Writer, src []byte, tokens []lexspan.WithSpan[string]) error {
	encoder := msgpack.NewEncoder(w)
	return encoder.Encode(flatten(src, tokens))
}
