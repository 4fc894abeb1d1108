// Copyright (c) 2026, The poshparse Authors
// See LICENSE for licensing information

package syntax

import (
	"os"

	"github.com/charmbracelet/log"
)

// Tracer receives per-rule events while the grammar runs, when Parse is
// called with WithTrace. It is diagnostic only (§6.1): nothing it does
// can affect the returned AST.
type Tracer interface {
	Enter(rule string, pos int)
	Leave(rule string, pos int, ok bool)
}

// LogTracer is the default Tracer, backed by charmbracelet/log. It is
// used whenever WithTrace is given a nil Tracer.
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer builds a LogTracer writing to os.Stderr at debug level.
func NewLogTracer() *LogTracer {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.DebugLevel,
		Prefix:          "parse",
	})
	return &LogTracer{logger: l}
}

func (t *LogTracer) Enter(rule string, pos int) {
	t.logger.Debug("enter", "rule", rule, "pos", pos)
}

func (t *LogTracer) Leave(rule string, pos int, ok bool) {
	t.logger.Debug("leave", "rule", rule, "pos", pos, "ok", ok)
}
