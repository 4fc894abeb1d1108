// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuotingScenarios(t *testing.T) {
	t.Run("single-quoted word is literal", func(t *testing.T) {
		got := mustParse(t, "echo 'hi there'\n")
		want := node(KindProgram,
			node(KindCompleteCommand,
				node(KindSimpleCommand,
					node(KindCmdName, "echo"),
					node(KindCmdArgument, "hi there"),
				),
			),
		)
		if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
			t.Errorf("tree mismatch:\n%s", diff)
		}
	})

	t.Run("double-quoted word decodes an escape", func(t *testing.T) {
		got := mustParse(t, `echo "a\"b"`+"\n")
		want := node(KindProgram,
			node(KindCompleteCommand,
				node(KindSimpleCommand,
					node(KindCmdName, "echo"),
					node(KindCmdArgument, `a"b`),
				),
			),
		)
		if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
			t.Errorf("tree mismatch:\n%s", diff)
		}
	})

	t.Run("backslash-newline is a line continuation in an unquoted run", func(t *testing.T) {
		got := mustParse(t, "echo foo\\\nbar\n")
		want := node(KindProgram,
			node(KindCompleteCommand,
				node(KindSimpleCommand,
					node(KindCmdName, "echo"),
					node(KindCmdArgument, "foobar"),
				),
			),
		)
		if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
			t.Errorf("tree mismatch:\n%s", diff)
		}
	})

	t.Run("quoted segments concatenate with unquoted ones", func(t *testing.T) {
		got := mustParse(t, `echo foo'bar'"baz"`+"\n")
		want := node(KindProgram,
			node(KindCompleteCommand,
				node(KindSimpleCommand,
					node(KindCmdName, "echo"),
					node(KindCmdArgument, "foo", "bar", "baz"),
				),
			),
		)
		if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
			t.Errorf("tree mismatch:\n%s", diff)
		}
	})
}

func TestQuotingUnterminatedIsAnError(t *testing.T) {
	cases := []string{
		"echo 'abc\n",
		`echo "abc` + "\n",
		"echo 'abc",
		`echo "abc`,
	}
	for _, src := range cases {
		if _, err := Parse([]byte(src), "test"); err == nil {
			t.Errorf("Parse(%q) succeeded, want a *ParseError for an unterminated quote", src)
		}
	}
}

func TestScanSingleQuotedAndDoubleQuotedDirectly(t *testing.T) {
	mk := func(src string, pos int) *parser {
		p := newParser([]byte(src), "test", options{})
		p.pos = pos
		return p
	}

	t.Run("single-quoted", func(t *testing.T) {
		p := mk("'hi there' rest", 2) // pos just past the opening quote
		text, ok := p.scanSingleQuoted()
		if !ok {
			t.Fatal("scanSingleQuoted failed on a well-formed run")
		}
		if text != "hi there" {
			t.Fatalf("text = %q, want %q", text, "hi there")
		}
	})

	t.Run("single-quoted unterminated leaves pos unchanged", func(t *testing.T) {
		p := mk("'hi there", 2)
		start := p.pos
		if _, ok := p.scanSingleQuoted(); ok {
			t.Fatal("scanSingleQuoted succeeded on an unterminated run")
		}
		if p.pos != start {
			t.Fatalf("pos = %d after failed scan, want unchanged %d", p.pos, start)
		}
	})

	t.Run("double-quoted with escape", func(t *testing.T) {
		p := mk(`"a\"b" rest`, 2)
		text, ok := p.scanDoubleQuoted()
		if !ok {
			t.Fatal("scanDoubleQuoted failed on a well-formed run")
		}
		if text != `a"b` {
			t.Fatalf("text = %q, want %q", text, `a"b`)
		}
	})

	t.Run("double-quoted unterminated leaves pos unchanged", func(t *testing.T) {
		p := mk(`"abc`, 2)
		start := p.pos
		if _, ok := p.scanDoubleQuoted(); ok {
			t.Fatal("scanDoubleQuoted succeeded on an unterminated run")
		}
		if p.pos != start {
			t.Fatalf("pos = %d after failed scan, want unchanged %d", p.pos, start)
		}
	})
}
