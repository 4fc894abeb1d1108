// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestParseErrorFields(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name string
		src  string
	}{
		{"dangling and-or", "&& a\n"},
		{"if without condition", "if then fi\n"},
		{"unclosed subshell", "( echo hi\n"},
	}
	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			_, err := Parse([]byte(tc.src), "script.sh")
			c.Assert(err, qt.Not(qt.IsNil))

			perr, ok := err.(*ParseError)
			c.Assert(ok, qt.IsTrue)
			c.Assert(perr.Name, qt.Equals, "script.sh")
			c.Assert(perr.Line, qt.Satisfies, func(l int) bool { return l >= 1 })
			c.Assert(perr.Column, qt.Satisfies, func(col int) bool { return col >= 1 })
			c.Assert(perr.Error(), qt.Contains, "script.sh:")
		})
	}
}

func TestParseErrorEmptyName(t *testing.T) {
	c := qt.New(t)
	_, err := Parse([]byte("&& a\n"), "")
	c.Assert(err, qt.Not(qt.IsNil))
	perr, ok := err.(*ParseError)
	c.Assert(ok, qt.IsTrue)
	c.Assert(perr.Name, qt.Equals, "")
	c.Assert(perr.Error()[0] >= '0' && perr.Error()[0] <= '9', qt.IsTrue)
}
