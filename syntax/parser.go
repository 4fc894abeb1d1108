// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

import "github.com/nwca/poshparse/token"

// Grammar (§4.4): a recursive-descent, PEG-flavored recognizer for POSIX
// shell. Every rule method below either returns a built *Node and leaves
// p.pos advanced past what it matched, or returns ok=false and restores
// p.pos to wherever it started, so callers can try the next ordered
// alternative without any lookahead bookkeeping of their own. Horizontal
// whitespace a rule skipped before its attempt may stay consumed on
// failure.

// program is the grammar's top rule: an optional leading linebreak, zero
// or more complete commands separated by newline-lists, and EOF.
func (p *parser) program() *Node {
	root := newNode(KindProgram, p.pos)
	p.traceEnter("Program")
	p.consumeLinebreak(root)
	for {
		cc, ok := p.completeCommand()
		if !ok {
			break
		}
		root.addChild(cc)
		if !p.consumeNewlineList(root) {
			break
		}
	}
	p.consumeLinebreak(root)
	root.end = p.pos
	if !p.eof() {
		p.fail("unexpected input")
	}
	p.traceLeave("Program", root.begin, p.err == nil)
	return root
}

// consumeLinebreak absorbs an optional newline_list, attaching any
// Comment nodes it encounters (when requested) to dst.
func (p *parser) consumeLinebreak(dst *Node) {
	for p.consumeNewlineList(dst) {
	}
}

// consumeNewlineList consumes "one or more newlines each followed by the
// heredoc skip hook, optionally preceded by a comment" (§4.4). Returns
// whether it consumed at least one newline.
func (p *parser) consumeNewlineList(dst *Node) bool {
	any := false
	for {
		p.skipInline()
		if c, ok := p.maybeComment(); ok {
			if dst != nil && p.opts.has(optComments) {
				dst.addChild(c)
			}
		}
		if !p.consumeNewlineOnce() {
			break
		}
		any = true
		p.skipInline()
	}
	return any
}

// skipInline absorbs horizontal whitespace only.
func (p *parser) skipInline() {
	for !p.eof() && isHorizontalSpace(p.curByte()) {
		p.pos++
	}
}

// consumeNewlineOnce applies the heredoc skip hook and then tries to
// consume a single literal newline.
func (p *parser) consumeNewlineOnce() bool {
	p.pos = p.heredocs.skipThrough(p.pos)
	if !p.eof() && p.curByte() == '\n' {
		p.pos++
		return true
	}
	return false
}

// prevBoundaryForComment reports whether a '#' at p.pos may start a
// comment: the preceding byte must be whitespace, newline, ';', '&', or
// this must be beginning-of-file (§4.4).
func (p *parser) prevBoundaryForComment() bool {
	if p.atBOF() {
		return true
	}
	prev := p.byteAt(p.pos - 1)
	return isWhitespace(prev) || prev == ';' || prev == '&'
}

func (p *parser) maybeComment() (*Node, bool) {
	if p.eof() || p.curByte() != commentSigil || !p.prevBoundaryForComment() {
		return nil, false
	}
	begin := p.pos
	p.pos++ // '#'
	start := p.pos
	for !p.eof() && p.curByte() != '\n' {
		p.pos++
	}
	text := string(p.src[start-1 : p.pos-1])
	n := newNode(KindComment, begin)
	n.addChild(text)
	n.end = max(n.end, p.pos)
	return n.finish(p, false), true
}

// completeCommand = and_or list joined by '&'/';' with an optional
// trailing separator.
func (p *parser) completeCommand() (*Node, bool) {
	return p.traced("CompleteCommand", func() (*Node, bool) {
		save := p.pos
		first, ok := p.andOr()
		if !ok {
			p.pos = save
			return nil, false
		}
		n := newNode(KindCompleteCommand, first.begin)
		n.addChild(first)
		for {
			sep, sepComments, ok := p.separatorOp()
			if !ok {
				break
			}
			n.addChild(sep)
			for _, c := range sepComments {
				if p.opts.has(optComments) {
					n.addChild(c)
				}
			}
			next, ok := p.andOr()
			if !ok {
				break
			}
			n.addChild(next)
		}
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// separatorOp matches '&' or ';' (but not '&&' or ';;') followed by a
// linebreak, and returns the operator as a string capture plus any
// comments consumed by the trailing linebreak.
func (p *parser) separatorOp() (string, []*Node, bool) {
	save := p.pos
	p.skipInline()
	var op string
	switch {
	case p.curByte() == '&' && !p.hasByteAt(p.pos+1) || (p.curByte() == '&' && p.byteAt(p.pos+1) != '&'):
		op = "&"
	case p.curByte() == ';' && (!p.hasByteAt(p.pos+1) || p.byteAt(p.pos+1) != ';'):
		op = ";"
	default:
		p.pos = save
		return "", nil, false
	}
	p.pos++
	holder := newNode(KindProgram, p.pos) // scratch container for comments
	p.consumeLinebreak(holder)
	var comments []*Node
	for _, c := range holder.Children {
		if cn, ok := c.(*Node); ok {
			comments = append(comments, cn)
		}
	}
	return op, comments, true
}

// andOr composes pipelines into short-circuit chains (§4.4). To avoid a
// one-child wrapper, a lone pipeline is returned unwrapped; a chain of
// &&/|| folds left-to-right into nested AndList/OrList nodes.
func (p *parser) andOr() (*Node, bool) {
	return p.traced("AndOr", func() (*Node, bool) {
		left, ok := p.pipeline()
		if !ok {
			return nil, false
		}
		for {
			p.skipInline()
			save := p.pos
			var kind Kind
			switch {
			case p.matchLiteral("&&"):
				kind = KindAndList
			case p.matchLiteral("||"):
				kind = KindOrList
			default:
				p.pos = save
				return left, true
			}
			p.consumeLinebreak(nil)
			right, ok := p.pipeline()
			if !ok {
				p.pos = save
				return left, true
			}
			n := newNode(kind, left.begin)
			n.addChild(left)
			n.addChild(right)
			n.end = max(n.end, p.pos)
			left = n.finish(p, false)
		}
	})
}

// pipeline = ['!'] pipe_sequence.
func (p *parser) pipeline() (*Node, bool) {
	return p.traced("Pipeline", func() (*Node, bool) {
		p.skipInline()
		save := p.pos
		if p.matchReservedLiteral("!") {
			p.skipInline()
			seq, ok := p.pipeSequence()
			if !ok {
				p.pos = save
				return nil, false
			}
			n := newNode(KindNot, save)
			n.addChild(seq)
			n.end = max(n.end, p.pos)
			return n.finish(p, false), true
		}
		return p.pipeSequence()
	})
}

// pipeSequence = command { '|' linebreak command }. Collapses to the
// single command when there is no '|'.
func (p *parser) pipeSequence() (*Node, bool) {
	return p.traced("PipeSequence", func() (*Node, bool) {
		first, ok := p.command()
		if !ok {
			return nil, false
		}
		var rest []*Node
		for {
			p.skipInline()
			save := p.pos
			if !p.matchSinglePipe() {
				p.pos = save
				break
			}
			p.consumeLinebreak(nil)
			cmd, ok := p.command()
			if !ok {
				p.pos = save
				break
			}
			rest = append(rest, cmd)
		}
		if len(rest) == 0 {
			return first, true
		}
		n := newNode(KindPipeSequence, first.begin)
		n.addChild(first)
		for _, c := range rest {
			n.addChild(c)
		}
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// matchSinglePipe matches '|' but not '||'.
func (p *parser) matchSinglePipe() bool {
	if p.curByte() != '|' {
		return false
	}
	if p.hasByteAt(p.pos+1) && p.byteAt(p.pos+1) == '|' {
		return false
	}
	p.pos++
	return true
}

func (p *parser) matchLiteral(lit string) bool {
	if !hasPrefixBytes(p.rest(), lit) {
		return false
	}
	p.pos += len(lit)
	return true
}

// matchReservedLiteral matches a reserved-word literal at the cursor
// followed by a word boundary, consuming it on success.
func (p *parser) matchReservedLiteral(lit string) bool {
	if !p.matchReserved(lit) {
		return false
	}
	p.pos += len(lit)
	return true
}

// command is, in ordered priority: FunctionDefinition, a compound
// command followed by redirections, or a SimpleCommand (§4.4).
func (p *parser) command() (*Node, bool) {
	return p.traced("Command", func() (*Node, bool) {
		p.skipInline()
		if n, ok := p.functionDefinition(); ok {
			return n, true
		}
		if n, ok := p.compoundCommand(); ok {
			return n, true
		}
		return p.simpleCommand()
	})
}

// functionDefinition = Name '(' ')' linebreak compound_command.
func (p *parser) functionDefinition() (*Node, bool) {
	return p.traced("FunctionDefinition", func() (*Node, bool) {
		save := p.pos
		if _, reserved := p.peekReservedWord(); reserved {
			return nil, false
		}
		nameNode, ok := p.name()
		if !ok {
			p.pos = save
			return nil, false
		}
		p.skipInline()
		if !p.matchLiteral("(") {
			p.pos = save
			return nil, false
		}
		p.skipInline()
		if !p.matchLiteral(")") {
			p.pos = save
			return nil, false
		}
		p.consumeLinebreak(nil)
		body, ok := p.compoundCommand()
		if !ok {
			p.pos = save
			return nil, false
		}
		n := newNode(KindFunctionDefinition, save)
		n.addChild(nameNode)
		n.addChild(body)
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// compoundCommand dispatches to one of the compound-command forms,
// longest/most-specific keyword checked before falling through.
func (p *parser) compoundCommand() (*Node, bool) {
	return p.traced("CompoundCommand", func() (*Node, bool) {
		switch {
		case p.curByte() == '{':
			return p.braceGroupWithRedirs()
		case p.curByte() == '(':
			return p.subshellWithRedirs()
		case p.matchReserved("for"):
			return p.withRedirs(p.forClause)
		case p.matchReserved("case"):
			return p.withRedirs(p.caseClause)
		case p.matchReserved("if"):
			return p.withRedirs(p.ifClause)
		case p.matchReserved("while"):
			return p.withRedirs(p.whileClause)
		case p.matchReserved("until"):
			return p.withRedirs(p.untilClause)
		default:
			return nil, false
		}
	})
}

// withRedirs wraps a compound-command body parser, appending any
// trailing io_redirects onto its children per §4.4 rule 2.
func (p *parser) withRedirs(parse func() (*Node, bool)) (*Node, bool) {
	n, ok := parse()
	if !ok {
		return nil, false
	}
	for {
		p.skipInline()
		save := p.pos
		r, ok := p.ioRedirect()
		if !ok {
			p.pos = save
			break
		}
		n.addChild(r)
	}
	n.end = max(n.end, p.pos)
	return n.finish(p, false), true
}

func (p *parser) braceGroupWithRedirs() (*Node, bool) {
	return p.withRedirs(p.braceGroup)
}

func (p *parser) subshellWithRedirs() (*Node, bool) {
	return p.withRedirs(p.subshell)
}

// braceGroup = '{' compound_list '}'.
func (p *parser) braceGroup() (*Node, bool) {
	return p.traced("BraceGroup", func() (*Node, bool) {
		save := p.pos
		if !p.matchLiteral("{") {
			return nil, false
		}
		n := newNode(KindBraceGroup, save)
		p.consumeLinebreak(n)
		p.parseCompoundListInto(n)
		p.skipInline()
		p.consumeLinebreak(n)
		if !p.matchReservedLiteral("}") {
			p.fail("missing '}' to match '{'")
			p.pos = save
			return nil, false
		}
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// subshell = '(' compound_list ')'.
func (p *parser) subshell() (*Node, bool) {
	return p.traced("Subshell", func() (*Node, bool) {
		save := p.pos
		if !p.matchLiteral("(") {
			return nil, false
		}
		n := newNode(KindSubshell, save)
		p.consumeLinebreak(n)
		p.parseCompoundListInto(n)
		p.skipInline()
		p.consumeLinebreak(n)
		if !p.matchLiteral(")") {
			p.fail("missing ')' to match '('")
			p.pos = save
			return nil, false
		}
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// parseCompoundListInto parses a "compound_list": a sequence of and_or
// groups separated by separators, stopping when no further one matches.
// Used for brace groups, subshells, and every clause body. Reports
// whether at least one and_or group was parsed.
func (p *parser) parseCompoundListInto(dst *Node) bool {
	p.consumeLinebreak(dst)
	parsed := false
	for {
		cmd, ok := p.andOr()
		if !ok {
			break
		}
		dst.addChild(cmd)
		parsed = true
		p.skipInline()
		sep, comments, ok := p.separatorOp()
		if ok {
			dst.addChild(sep)
			for _, c := range comments {
				if p.opts.has(optComments) {
					dst.addChild(c)
				}
			}
			continue
		}
		if p.consumeNewlineList(dst) {
			continue
		}
		break
	}
	return parsed
}

// ifClause = 'if' compound_list 'then' compound_list
//
//	{ 'elif' compound_list 'then' compound_list } ['else' compound_list] 'fi'.
func (p *parser) ifClause() (*Node, bool) {
	return p.traced("IfClause", func() (*Node, bool) {
		save := p.pos
		if !p.matchReservedLiteral("if") {
			return nil, false
		}
		n := newNode(KindIfClause, save)
		p.consumeLinebreak(n)
		if !p.parseCompoundListInto(n) {
			p.pos = save
			return nil, false
		}
		if !p.expectReserved("then") {
			p.pos = save
			return nil, false
		}
		n.addChild("then")
		if !p.parseCompoundListInto(n) {
			p.pos = save
			return nil, false
		}
		for p.matchReservedAfterSkip("elif") {
			n.addChild("elif")
			p.parseCompoundListInto(n)
			if !p.expectReserved("then") {
				p.pos = save
				return nil, false
			}
			n.addChild("then")
			p.parseCompoundListInto(n)
		}
		if p.matchReservedAfterSkip("else") {
			n.addChild("else")
			p.parseCompoundListInto(n)
		}
		if !p.expectReserved("fi") {
			p.pos = save
			return nil, false
		}
		n.addChild("fi")
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// whileClause = 'while' compound_list 'do' compound_list 'done'.
func (p *parser) whileClause() (*Node, bool) {
	return p.loopClause(KindWhileClause, "while")
}

// untilClause = 'until' compound_list 'do' compound_list 'done'.
func (p *parser) untilClause() (*Node, bool) {
	return p.loopClause(KindUntilClause, "until")
}

func (p *parser) loopClause(kind Kind, keyword string) (*Node, bool) {
	return p.traced(string(kind), func() (*Node, bool) {
		save := p.pos
		if !p.matchReservedLiteral(keyword) {
			return nil, false
		}
		n := newNode(kind, save)
		p.consumeLinebreak(n)
		p.parseCompoundListInto(n)
		if !p.expectReserved("do") {
			p.pos = save
			return nil, false
		}
		n.addChild("do")
		p.parseCompoundListInto(n)
		if !p.expectReserved("done") {
			p.pos = save
			return nil, false
		}
		n.addChild("done")
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// forClause = 'for' Name [linebreak 'in' {Word}] sequential_sep do_group.
func (p *parser) forClause() (*Node, bool) {
	return p.traced("ForClause", func() (*Node, bool) {
		save := p.pos
		if !p.matchReservedLiteral("for") {
			return nil, false
		}
		p.skipInline()
		nameNode, ok := p.name()
		if !ok {
			p.pos = save
			return nil, false
		}
		n := newNode(KindForClause, save)
		n.addChild(nameNode)
		sawNewline := p.consumeNewlineList(n)
		if p.matchReservedAfterSkip("in") {
			n.addChild("in")
			for {
				p.skipInline()
				w, ok := p.word(KindWord)
				if !ok {
					break
				}
				n.addChild(w)
			}
			if !p.consumeSequentialSep(n) {
				p.pos = save
				return nil, false
			}
		} else if !sawNewline && !p.consumeSequentialSep(n) {
			p.pos = save
			return nil, false
		}
		if !p.expectReserved("do") {
			p.pos = save
			return nil, false
		}
		n.addChild("do")
		p.parseCompoundListInto(n)
		if !p.expectReserved("done") {
			p.pos = save
			return nil, false
		}
		n.addChild("done")
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// consumeSequentialSep = ';' linebreak | newline_list.
func (p *parser) consumeSequentialSep(dst *Node) bool {
	p.skipInline()
	save := p.pos
	if p.curByte() == ';' {
		p.pos++
		p.consumeLinebreak(dst)
		return true
	}
	p.pos = save
	return p.consumeNewlineList(dst)
}

// caseClause = 'case' Word linebreak 'in' linebreak {CaseItem} 'esac'.
func (p *parser) caseClause() (*Node, bool) {
	return p.traced("CaseClause", func() (*Node, bool) {
		save := p.pos
		if !p.matchReservedLiteral("case") {
			return nil, false
		}
		p.skipInline()
		w, ok := p.word(KindWord)
		if !ok {
			p.pos = save
			return nil, false
		}
		n := newNode(KindCaseClause, save)
		n.addChild(w)
		p.consumeLinebreak(n)
		if !p.expectReserved("in") {
			p.pos = save
			return nil, false
		}
		n.addChild("in")
		p.consumeLinebreak(n)
		for {
			item, ok := p.caseItem()
			if !ok {
				break
			}
			n.addChild(item)
		}
		if !p.expectReserved("esac") {
			p.pos = save
			return nil, false
		}
		n.addChild("esac")
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// caseItem = ['('] Pattern {'|' Pattern} ')' [compound_list] (';;' | before 'esac').
func (p *parser) caseItem() (*Node, bool) {
	return p.traced("CaseItem", func() (*Node, bool) {
		p.skipInline()
		p.consumeLinebreak(nil)
		save := p.pos
		if p.matchReserved("esac") {
			return nil, false
		}
		n := newNode(KindCaseItem, save)
		p.matchLiteral("(")
		p.skipInline()
		pat, ok := p.pattern()
		if !ok {
			p.pos = save
			return nil, false
		}
		pats := newNode(KindPattern, pat.begin)
		pats.addChild(pat)
		for {
			p.skipInline()
			if !p.matchSinglePipe() {
				break
			}
			p.skipInline()
			next, ok := p.pattern()
			if !ok {
				p.pos = save
				return nil, false
			}
			pats.addChild(next)
		}
		pats.end = p.pos
		n.addChild(pats.finish(p, false))
		p.skipInline()
		if !p.matchLiteral(")") {
			p.pos = save
			return nil, false
		}
		p.consumeLinebreak(n)
		p.parseCompoundListInto(n)
		p.skipInline()
		p.matchLiteral(";;")
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// pattern is a single case-item alternative: a Word that additionally
// may not consume a bare '|' or ')' (its own terminators).
func (p *parser) pattern() (*Node, bool) {
	return p.word(KindWord)
}

// simpleCommand = cmd_prefix [CmdName {CmdArgument}] | CmdName {CmdArgument}.
func (p *parser) simpleCommand() (*Node, bool) {
	return p.traced("SimpleCommand", func() (*Node, bool) {
		save := p.pos
		n := newNode(KindSimpleCommand, save)
		sawAny := false
		for {
			p.skipInline()
			if a, ok := p.assignment(); ok {
				n.addChild(a)
				sawAny = true
				continue
			}
			if r, ok := p.ioRedirect(); ok {
				n.addChild(r)
				sawAny = true
				continue
			}
			break
		}
		p.skipInline()
		if p.canStartCmdWord() {
			nameWord, ok := p.word(KindCmdName)
			if ok {
				n.addChild(nameWord)
				sawAny = true
				for {
					p.skipInline()
					if r, ok := p.ioRedirect(); ok {
						n.addChild(r)
						continue
					}
					if !p.canStartCmdWord() {
						break
					}
					save2 := p.pos
					arg, ok := p.word(KindCmdArgument)
					if !ok {
						p.pos = save2
						break
					}
					n.addChild(arg)
				}
			}
		}
		if !sawAny {
			p.pos = save
			return nil, false
		}
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// canStartCmdWord reports whether a word may start here: not EOF, not an
// operator, and not a bare reserved word.
func (p *parser) canStartCmdWord() bool {
	if p.eof() {
		return false
	}
	if _, reserved := p.peekReservedWord(); reserved {
		return false
	}
	b := p.curByte()
	if b == '{' || b == '}' || b == '!' {
		if token.WordBoundary(p.src, p.pos) {
			return false
		}
	}
	if token.IsOperatorByte(b) {
		return false
	}
	return true
}

// assignment = Name '=' [Word].
func (p *parser) assignment() (*Node, bool) {
	return p.traced("Assignment", func() (*Node, bool) {
		save := p.pos
		if !isAlpha(p.curByte()) {
			return nil, false
		}
		start0 := p.pos - 1
		idx := start0
		for idx < len(p.src) && isAlphaNum(p.src[idx]) {
			idx++
		}
		if idx == start0 || idx >= len(p.src) || p.src[idx] != '=' {
			return nil, false
		}
		nameStr := string(p.src[start0:idx])
		nameNode := newNode(KindName, p.pos)
		nameNode.addChild(nameStr)
		p.pos = idx + 2 // past the name and the '='
		nameNode.end = idx + 1
		n := newNode(KindAssignment, save)
		n.addChild(nameNode.finish(p, false))
		if w, ok := p.word(KindWord); ok {
			n.addChild(w)
		}
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// name = [A-Za-z_][A-Za-z0-9_]*, built as a Name node.
func (p *parser) name() (*Node, bool) {
	return p.traced("Name", func() (*Node, bool) {
		if p.eof() || !isAlpha(p.curByte()) {
			return nil, false
		}
		start0 := p.pos - 1
		idx := start0 + 1
		for idx < len(p.src) && isAlphaNum(p.src[idx]) {
			idx++
		}
		text := string(p.src[start0:idx])
		n := newNode(KindName, p.pos)
		n.addChild(text)
		p.pos = idx + 1
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// expectReserved consumes the reserved word w (with leading whitespace
// and comments absorbed); it fails (and records a diagnostic) if absent.
func (p *parser) expectReserved(w string) bool {
	p.skipInline()
	p.consumeLinebreak(nil)
	p.skipInline()
	if p.matchReservedLiteral(w) {
		return true
	}
	p.fail("expected %q", w)
	return false
}

// matchReservedAfterSkip tries w after absorbing whitespace/linebreaks,
// but does not fail the parse if absent — used for optional clauses
// (elif/else) where absence just means "no more branches".
func (p *parser) matchReservedAfterSkip(w string) bool {
	save := p.pos
	p.skipInline()
	p.consumeLinebreak(nil)
	p.skipInline()
	if p.matchReservedLiteral(w) {
		return true
	}
	p.pos = save
	return false
}

// ioRedirect dispatches to IOHereDoc or IORedirectFile, trying the
// heredoc operators first since they share a prefix with the plain
// redirection operators (§4.4).
func (p *parser) ioRedirect() (*Node, bool) {
	save := p.pos
	p.skipInline()
	num, hasNum := p.peekIONumber()
	switch {
	case p.matchLiteral("<<-"):
		return p.ioHereDoc(save, num, hasNum, true)
	case p.matchLiteral("<<"):
		return p.ioHereDoc(save, num, hasNum, false)
	case p.matchLiteral(">>"):
		return p.ioRedirectFile(save, num, hasNum, ">>")
	case p.matchLiteral(">|"):
		return p.ioRedirectFile(save, num, hasNum, ">|")
	case p.matchLiteral(">&"):
		return p.ioRedirectFile(save, num, hasNum, ">&")
	case p.matchLiteral("<&"):
		return p.ioRedirectFile(save, num, hasNum, "<&")
	case p.matchLiteral("<>"):
		return p.ioRedirectFile(save, num, hasNum, "<>")
	case p.matchLiteral(">"):
		return p.ioRedirectFile(save, num, hasNum, ">")
	case p.matchLiteral("<"):
		return p.ioRedirectFile(save, num, hasNum, "<")
	default:
		p.pos = save
		return nil, false
	}
}

// peekIONumber scans an optional digit run at the cursor without
// requiring it be followed by a redirect operator; the caller checks
// that itself by trying the operator match right after.
func (p *parser) peekIONumber() (int64, bool) {
	start := p.pos
	var v int64
	any := false
	for !p.eof() && isDigit(p.curByte()) {
		v = v*10 + int64(p.curByte()-'0')
		p.pos++
		any = true
	}
	if !any {
		p.pos = start
		return 0, false
	}
	return v, true
}

func (p *parser) ioHereDoc(begin int, num int64, hasNum bool, dash bool) (*Node, bool) {
	return p.traced("IOHereDoc", func() (*Node, bool) {
		p.skipInline()
		delimWord, ok := p.word(KindWord)
		if !ok {
			p.pos = begin
			return nil, false
		}
		delim, _ := wordLiteral(delimWord)
		body, first, last := p.captureHeredoc(delim, dash, p.pos)
		_ = first
		_ = last

		n := newNode(KindIOHereDoc, begin)
		if hasNum {
			n.addChild(num)
		}
		if dash {
			n.addChild("<<-")
		} else {
			n.addChild("<<")
		}
		n.addChild(delimWord)
		n.addChild(body)
		n.end = p.pos // the operator+delimiter; the body's own range is tracked
		// by the heredoc state and excluded from ordinary sibling spans, but
		// we still want the node's reported extent to cover it once known.
		if last > n.end {
			n.end = last
		}
		return n.finish(p, false), true
	})
}

func (p *parser) ioRedirectFile(begin int, num int64, hasNum bool, op string) (*Node, bool) {
	return p.traced("IORedirectFile", func() (*Node, bool) {
		p.skipInline()
		target, ok := p.word(KindWord)
		if !ok {
			p.pos = begin
			return nil, false
		}
		n := newNode(KindIORedirectFile, begin)
		if hasNum {
			n.addChild(num)
		}
		n.addChild(op)
		n.addChild(target)
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}

// wordLiteral reconstructs the plain string value of a Word node built
// purely from string-segment children, used for heredoc delimiters.
func wordLiteral(w *Node) (string, bool) {
	var s string
	for _, c := range w.Children {
		str, ok := c.(string)
		if !ok {
			return "", false
		}
		s += str
	}
	return s, true
}

// word parses one Word per §4.2: one or more concatenated segments, each
// a double-quoted run, single-quoted run, or maximal unquoted run. A
// word cannot begin with '#'. kind lets callers tag the resulting node
// as Word, CmdName, or CmdArgument depending on grammatical position.
func (p *parser) word(kind Kind) (*Node, bool) {
	return p.traced(string(kind), func() (*Node, bool) {
		if p.eof() {
			return nil, false
		}
		if p.curByte() == commentSigil {
			return nil, false
		}
		begin := p.pos
		n := newNode(kind, begin)
		sawSegment := false
		for {
			if p.eof() {
				break
			}
			b := p.curByte()
			switch {
			case b == '\'':
				p.pos++
				text, ok := p.scanSingleQuoted()
				if !ok {
					p.fail("unterminated single-quoted string")
					p.pos = begin
					return nil, false
				}
				n.addChild(text)
				sawSegment = true
			case b == '"':
				p.pos++
				text, ok := p.scanDoubleQuoted()
				if !ok {
					p.fail("unterminated double-quoted string")
					p.pos = begin
					return nil, false
				}
				n.addChild(text)
				sawSegment = true
			default:
				text, ok := p.scanUnquotedRun()
				if !ok {
					goto done
				}
				n.addChild(text)
				sawSegment = true
			}
		}
	done:
		if !sawSegment {
			p.pos = begin
			return nil, false
		}
		n.end = max(n.end, p.pos)
		return n.finish(p, false), true
	})
}
