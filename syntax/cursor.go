// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

import "fmt"

// parser holds all the state for a single call to Parse. Positions are
// 1-based byte offsets into src, per §3.1. Every rule method below
// follows the same backtracking idiom: try a match, and on failure leave
// p.pos where it found it so the caller can try the next alternative
// (horizontal whitespace skipped before the attempt may stay consumed).
type parser struct {
	src     []byte
	pos     int // 1-based; one past the last byte means EOF
	srcName string

	opts  options
	lines *lineTable

	grammar  *operatorTable
	heredocs *heredocState

	err *ParseError
}

func newParser(src []byte, name string, opts options) *parser {
	return &parser{
		src:      src,
		pos:      1,
		srcName:  name,
		opts:     opts,
		lines:    newLineTable(src),
		grammar:  compiledGrammar(),
		heredocs: &heredocState{},
	}
}

func (p *parser) eof() bool { return p.pos > len(p.src) }

func (p *parser) atBOF() bool { return p.pos == 1 }

// byteAt returns the byte at the given 1-based position. Callers must
// ensure the position is in range.
func (p *parser) byteAt(pos int) byte { return p.src[pos-1] }

// curByte returns the byte under the cursor, or 0 at EOF.
func (p *parser) curByte() byte {
	if p.eof() {
		return 0
	}
	return p.byteAt(p.pos)
}

func (p *parser) rest() []byte { return p.src[p.pos-1:] }

// hasByteAt reports whether pos addresses a real byte in src.
func (p *parser) hasByteAt(pos int) bool { return pos >= 1 && pos <= len(p.src) }

// traceEnter reports a rule attempt to the configured Tracer, if tracing was
// requested. It is a no-op otherwise, so call sites can use it freely
// without guarding on options themselves.
func (p *parser) traceEnter(rule string) {
	if p.opts.has(optTrace) && p.opts.tracer != nil {
		p.opts.tracer.Enter(rule, p.pos)
	}
}

func (p *parser) traceLeave(rule string, startPos int, ok bool) {
	if p.opts.has(optTrace) && p.opts.tracer != nil {
		p.opts.tracer.Leave(rule, startPos, ok)
	}
}

// traced runs fn under an Enter/Leave pair for rule, reporting the
// position where fn started and whether it matched. Grammar rule methods
// that have more than one return point wrap their whole body in a call to
// traced rather than repeating traceEnter/traceLeave at every return.
func (p *parser) traced(rule string, fn func() (*Node, bool)) (*Node, bool) {
	start := p.pos
	p.traceEnter(rule)
	n, ok := fn()
	p.traceLeave(rule, start, ok)
	return n, ok
}

// fail records the single coarse ParseError this parse will report, if
// one hasn't been recorded already at a later (more specific) position.
func (p *parser) fail(format string, a ...any) {
	if p.err != nil && p.err.Offset >= p.pos {
		return
	}
	line, col := p.lines.position(p.pos)
	p.err = &ParseError{
		Position: Position{Offset: p.pos, Line: line, Column: col},
		Name:     p.srcName,
		Text:     fmt.Sprintf(format, a...),
	}
}
