// Package rulelex is a small rule-driven tokenizing engine implementing the
// cursor capability that package lexspan consumes.
//
// A Def pairs a list of rules with a sentinel token, an unknown token, and
// an optional skip set. Matching is maximal munch: at each position every
// rule is tried and the longest match wins, ties going to the earliest
// rule. Bytes in the skip set are dropped between matches, so the produced
// spans may leave gaps in the source. Input that no rule matches is
// classified one byte at a time as the unknown token and yielded like any
// other match; the engine never reports errors.
//
// Defs can be built in code with Literal and Class rules, or loaded from a
// TOML grammar file via Load and LoadFile.
package rulelex
