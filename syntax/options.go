// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

// optionFlag is a bitmask of the recognized options from §6.1, kept
// internal to the package; callers configure a parse via the exported
// functional Option values below.
type optionFlag uint

const (
	optComments optionFlag = 1 << iota
	optLoc
	optLoc2
	optSource
	optTrace
)

type options struct {
	flags  optionFlag
	tracer Tracer
}

func (o options) has(f optionFlag) bool { return o.flags&f != 0 }

// Option configures a single Parse call.
type Option func(*options)

// WithComments includes Comment nodes in the output. Default: excluded.
func WithComments() Option {
	return func(o *options) { o.flags |= optComments }
}

// WithLoc attaches Pos and EndPos (byte offsets) to every node.
func WithLoc() Option {
	return func(o *options) { o.flags |= optLoc }
}

// WithLoc2 attaches Pos, EndPos, Line, Col, EndLine and EndCol to every
// node. It is a superset of WithLoc and implies it.
func WithLoc2() Option {
	return func(o *options) { o.flags |= optLoc | optLoc2 }
}

// WithSource attaches the raw source substring to every non-root node.
func WithSource() Option {
	return func(o *options) { o.flags |= optSource }
}

// WithTrace emits a per-rule trace to t as the grammar runs. It is a
// diagnostic aid only and has no effect on the returned AST. If t is
// nil, the LogTracer from NewLogTracer (a charmbracelet/log logger
// writing to os.Stderr at debug level) is used.
func WithTrace(t Tracer) Option {
	return func(o *options) {
		o.flags |= optTrace
		if t == nil {
			t = NewLogTracer()
		}
		o.tracer = t
	}
}
