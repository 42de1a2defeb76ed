package rulelex

import (
	"fmt"

	"fortio.org/safecast"

	"lexspan"
)

// cursor holds one current match over src. Off is where the next match
// scan begins; tok and span describe the match already made.
type cursor[T comparable, S lexspan.Source] struct {
	def   *Def[T, S]
	src   S
	limit uint32 // len(src), exclusive upper bound for off
	off   uint32
	tok   T
	span  lexspan.Span
}

// Cursor runs the first match on src and returns the positioned cursor.
func (d *Def[T, S]) Cursor(src S) lexspan.Cursor[T] {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	c := &cursor[T, S]{def: d, src: src, limit: limit}
	c.Advance()
	return c
}

func (c *cursor[T, S]) Token() T {
	return c.tok
}

func (c *cursor[T, S]) Span() lexspan.Span {
	return c.span
}

// Advance runs the matcher once: drop skipped bytes, then either settle on
// the sentinel at end of input or take the longest rule match (ties go to
// the earliest rule). A byte no rule matches becomes one unknown token.
func (c *cursor[T, S]) Advance() {
	c.skipBytes()

	if c.off >= c.limit {
		c.tok = c.def.sentinel
		c.span = lexspan.Span{Start: c.off, End: c.off}
		return
	}

	start := c.off
	best := -1
	var bestLen uint32
	for i, r := range c.def.rules {
		var n uint32
		switch {
		case r.class != nil:
			n = c.classRun(r.class)
		case r.litLen > 0:
			n = c.literalAt(r.literal, r.litLen)
		}
		if n > bestLen {
			best, bestLen = i, n
		}
	}

	if best < 0 {
		c.off++
		c.tok = c.def.unknown
	} else {
		c.off += bestLen
		c.tok = c.def.rules[best].token
	}
	c.span = lexspan.Span{Start: start, End: c.off}
}

func (c *cursor[T, S]) skipBytes() {
	if c.def.skip == nil {
		return
	}
	for c.off < c.limit && c.def.skip(c.src[c.off]) {
		c.off++
	}
}

// classRun counts the maximal run of class bytes at off.
func (c *cursor[T, S]) classRun(class func(byte) bool) uint32 {
	i := c.off
	for i < c.limit && class(c.src[i]) {
		i++
	}
	return i - c.off
}

// literalAt reports n if the literal sits at off, 0 otherwise.
func (c *cursor[T, S]) literalAt(lit string, n uint32) uint32 {
	if c.off+n > c.limit {
		return 0
	}
	if string(c.src[c.off:c.off+n]) != lit {
		return 0
	}
	return n
}
