package rulelex

import (
	"fmt"

	"fortio.org/safecast"

	"lexspan"
)

// Rule maps one match shape to a token value. Build rules with Literal and
// Class; the zero Rule never matches.
type Rule[T comparable] struct {
	token   T
	literal string
	litLen  uint32
	class   func(byte) bool
}

// Literal matches the exact byte sequence text.
func Literal[T comparable](token T, text string) Rule[T] {
	n, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("literal length overflow: %w", err))
	}
	return Rule[T]{token: token, literal: text, litLen: n}
}

// Class matches a maximal run of one or more bytes for which class reports
// true.
func Class[T comparable](token T, class func(byte) bool) Rule[T] {
	return Rule[T]{token: token, class: class}
}

// Options configures a Def.
type Options struct {
	// Skip is the set of bytes dropped between matches (typically
	// whitespace). Nil skips nothing, so every byte lands in some match.
	Skip func(byte) bool
}

// Def is a token definition over sources of type S: the rule list, the
// sentinel and unknown token values, and the skip policy. It implements
// lexspan.Tokens[T, S].
type Def[T comparable, S lexspan.Source] struct {
	rules    []Rule[T]
	sentinel T
	unknown  T
	skip     func(byte) bool
}

// New builds a Def. sentinel marks end of input and is never yielded;
// unknown classifies bytes no rule matches.
func New[T comparable, S lexspan.Source](sentinel, unknown T, rules []Rule[T], opts Options) *Def[T, S] {
	return &Def[T, S]{
		rules:    rules,
		sentinel: sentinel,
		unknown:  unknown,
		skip:     opts.Skip,
	}
}

// Sentinel returns the end-of-input token value.
func (d *Def[T, S]) Sentinel() T {
	return d.sentinel
}
