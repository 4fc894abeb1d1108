// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

// Parse parses src as a POSIX shell script and returns its root Program
// node. name is used only to label diagnostics (see ParseError); pass ""
// when there is no meaningful source name.
//
// The returned error, when non-nil, is always a *ParseError describing
// the single furthest-reached failure the grammar recorded; Parse never
// panics on malformed input.
func Parse(src []byte, name string, opt ...Option) (*Node, error) {
	var o options
	for _, fn := range opt {
		fn(&o)
	}
	p := newParser(src, name, o)
	root := p.program()
	if p.err != nil {
		return nil, p.err
	}
	return root.finish(p, true), nil
}
