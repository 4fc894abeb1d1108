// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

import "fmt"

// Position is a 1-based line/column location, reported alongside a
// ParseError. Computed from the byte offset the grammar failed at.
type Position struct {
	Offset int // 1-based byte offset
	Line   int
	Column int
}

// ParseError is the single coarse failure signal §7 allows: the input
// did not match the grammar at end-of-input. There is no partial AST and
// no recovery; this is the only error Parse ever returns.
type ParseError struct {
	Position
	Name string // the name passed to Parse, for error prefixing; may be empty
	Text string
}

func (e *ParseError) Error() string {
	prefix := ""
	if e.Name != "" {
		prefix = e.Name + ":"
	}
	return fmt.Sprintf("%s%d:%d: %s", prefix, e.Line, e.Column, e.Text)
}
