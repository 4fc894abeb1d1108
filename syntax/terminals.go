// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

// Character-class terminals, per §4.1's "Terminal set" component: the
// bottom layer the rest of the grammar is built from.

func isAlpha(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlphaNum(b byte) bool { return isAlpha(b) || isDigit(b) }

func isHorizontalSpace(b byte) bool { return b == ' ' || b == '\t' }

func isNewline(b byte) bool { return b == '\n' }

func isWhitespace(b byte) bool { return isHorizontalSpace(b) || isNewline(b) }

func isQuote(b byte) bool { return b == '\'' || b == '"' }

func isEscape(b byte) bool { return b == '\\' }

const commentSigil = '#'

// bof/eof are positional, not byte-valued; see parser.atBOF/eof.
