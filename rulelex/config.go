package rulelex

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Token names reserved by loaded grammars.
const (
	// EOF is the sentinel name; it marks end of input and is never yielded.
	EOF = "EOF"
	// Unknown names unrecognized input.
	Unknown = "Unknown"
)

// Grammar is a token definition loaded from a TOML grammar file. Token
// values are the rule names from the file; the sentinel is EOF and
// unmatched input is classified as Unknown.
type Grammar struct {
	Name string
	*Def[string, []byte]
}

type grammarFile struct {
	Name   string      `toml:"name"`
	Skip   string      `toml:"skip"`
	Tokens []tokenRule `toml:"token"`
}

type tokenRule struct {
	Name    string `toml:"name"`
	Literal string `toml:"literal"`
	Class   string `toml:"class"`
}

var classes = map[string]func(byte) bool{
	"digit":      Digit,
	"hex":        Hex,
	"alpha":      Alpha,
	"alnum":      Alnum,
	"space":      Space,
	"newline":    Newline,
	"whitespace": Whitespace,
}

// Load parses a TOML grammar. Each [[token]] entry needs a name and exactly
// one of literal or class; skip optionally names a class of bytes dropped
// between matches.
//
//	name = "arith"
//	skip = "space"
//
//	[[token]]
//	name = "Digit"
//	class = "digit"
//
//	[[token]]
//	name = "Plus"
//	literal = "+"
func Load(data []byte) (*Grammar, error) {
	var gf grammarFile
	if err := toml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("failed to parse grammar: %w", err)
	}
	if len(gf.Tokens) == 0 {
		return nil, fmt.Errorf("grammar %q defines no tokens", gf.Name)
	}

	var opts Options
	if gf.Skip != "" {
		class, ok := classes[gf.Skip]
		if !ok {
			return nil, fmt.Errorf("unknown skip class %q", gf.Skip)
		}
		opts.Skip = class
	}

	rules := make([]Rule[string], 0, len(gf.Tokens))
	for _, t := range gf.Tokens {
		if t.Name == "" {
			return nil, fmt.Errorf("token with literal %q, class %q has no name", t.Literal, t.Class)
		}
		if t.Name == EOF || t.Name == Unknown {
			return nil, fmt.Errorf("token name %q is reserved", t.Name)
		}
		switch {
		case t.Literal != "" && t.Class != "":
			return nil, fmt.Errorf("token %q: literal and class are mutually exclusive", t.Name)
		case t.Literal != "":
			rules = append(rules, Literal(t.Name, t.Literal))
		case t.Class != "":
			class, ok := classes[t.Class]
			if !ok {
				return nil, fmt.Errorf("token %q: unknown class %q", t.Name, t.Class)
			}
			rules = append(rules, Class(t.Name, class))
		default:
			return nil, fmt.Errorf("token %q: needs a literal or a class", t.Name)
		}
	}

	return &Grammar{
		Name: gf.Name,
		Def:  New[string, []byte](EOF, Unknown, rules, opts),
	}, nil
}

// LoadFile reads and parses a TOML grammar file.
func LoadFile(path string) (*Grammar, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar: %w", err)
	}
	g, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
