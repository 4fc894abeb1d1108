// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

import (
	"sync"

	"github.com/nwca/poshparse/token"
)

var (
	grammarOnce   sync.Once
	grammarShared *operatorTable
)

// compiledGrammar builds the operator table once per process and shares
// it read-only across every subsequent Parse call, so no rule method
// mutates shared state after construction (§4.6, §9).
func compiledGrammar() *operatorTable {
	grammarOnce.Do(func() { grammarShared = buildOperatorTable() })
	return grammarShared
}

// operatorTable is the compiled form of the token package's reserved-word
// table, built once and shared read-only across every parse (§4.6, §9
// "no global state beyond the compiled grammar"). Operator lexemes
// themselves are still matched literal-by-literal at each call site
// (ioRedirect's longest-first switch, matchSinglePipe, matchLiteral) since
// each site only ever needs to try a handful of specific candidates, not
// the whole table.
type operatorTable struct {
	reserved map[string]struct{}
}

func buildOperatorTable() *operatorTable {
	t := &operatorTable{reserved: map[string]struct{}{}}
	for _, tok := range token.ReservedWords {
		t.reserved[tok.String()] = struct{}{}
	}
	return t
}

// matchReserved reports whether the reserved word w occurs at p.pos and
// is followed by a word boundary, per §4.1.
func (p *parser) matchReserved(w string) bool {
	rest := p.rest()
	if !hasPrefixBytes(rest, w) {
		return false
	}
	return token.WordBoundary(p.src, p.pos-1+len(w))
}

// peekReservedWord reports whether the cursor sits at a bareword that is
// exactly a reserved word at a word boundary — the negative-lookahead
// condition that keeps CmdName/FunctionDefinition from swallowing "if",
// "for", and friends (§4.4). It checks membership against the cached
// grammar's reserved-word set rather than the token package directly, so
// every parse shares the one table built by compiledGrammar.
func (p *parser) peekReservedWord() (string, bool) {
	if p.eof() || !isAlpha(p.curByte()) {
		return "", false
	}
	start0 := p.pos - 1
	idx := start0
	for idx < len(p.src) && isAlphaNum(p.src[idx]) {
		idx++
	}
	word := string(p.src[start0:idx])
	if !token.WordBoundary(p.src, idx) {
		return "", false
	}
	if _, ok := p.grammar.reserved[word]; ok {
		return word, true
	}
	return "", false
}

func hasPrefixBytes(b []byte, s string) bool {
	if len(b) < len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}
