// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

import "github.com/nwca/poshparse/token"

// Word/quoting machinery (§4.2): single-quoted text, double-quoted text,
// backslash escapes, and the unquoted-character predicate.

// scanEscape consumes a backslash and the byte following it (the caller
// must have already confirmed both exist), returning its capture: the
// escaped byte, or "" for a line continuation (backslash+newline).
func (p *parser) scanEscape() string {
	nxt := p.byteAt(p.pos + 1)
	p.pos += 2
	if nxt == '\n' {
		return ""
	}
	return string(nxt)
}

func (p *parser) isUnquotedStopByte(b byte) bool {
	return isWhitespace(b) || isQuote(b) || token.IsOperatorByte(b)
}

// scanUnquotedRun consumes a maximal run of unquoted characters per
// §4.2: plain bytes outside the stop set, or an escaped form of any
// byte (including one in the stop set).
func (p *parser) scanUnquotedRun() (string, bool) {
	start := p.pos
	var buf []byte
	for !p.eof() {
		b := p.curByte()
		if b == '\\' && p.hasByteAt(p.pos+1) {
			buf = append(buf, p.scanEscape()...)
			continue
		}
		if p.isUnquotedStopByte(b) {
			break
		}
		buf = append(buf, b)
		p.pos++
	}
	if p.pos == start {
		return "", false
	}
	return string(buf), true
}

// scanSingleQuoted consumes a single-quoted run, with the opening quote
// already consumed by the caller. All characters are literal; the
// closing quote is consumed on success.
func (p *parser) scanSingleQuoted() (string, bool) {
	start := p.pos
	for !p.eof() && p.curByte() != '\'' {
		p.pos++
	}
	if p.eof() {
		p.pos = start
		return "", false
	}
	text := string(p.src[start-1 : p.pos-1])
	p.pos++ // consume closing '
	return text, true
}

// scanDoubleQuoted consumes a double-quoted run, with the opening quote
// already consumed by the caller. Backslash may escape any character;
// the quote marks themselves are not included in the capture.
func (p *parser) scanDoubleQuoted() (string, bool) {
	start := p.pos
	var buf []byte
	for {
		if p.eof() {
			p.pos = start
			return "", false
		}
		b := p.curByte()
		if b == '"' {
			p.pos++
			return string(buf), true
		}
		if b == '\\' && p.hasByteAt(p.pos+1) {
			buf = append(buf, p.scanEscape()...)
			continue
		}
		buf = append(buf, b)
		p.pos++
	}
}
