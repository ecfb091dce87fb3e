// Package diag wraps the global zerolog logger so call sites in bpt,
// fusion, and simplify can stay terse: a field map and a message, with no
// per-package logger plumbing. Grounded on the console-writer-plus-Trace
// pattern in ScottSallinen/lollipop's utils/logging.go.
package diag

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetLevel sets the global log level. 0 is info, 1 is debug, anything else
// is trace — the same three-tier scheme lollipop's utils.SetLevel uses.
func SetLevel(level int) {
	switch level {
	case 0:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}
}

// Enabled reports whether trace-level logging is currently active, so a hot
// loop can skip building a fields map on the common path.
func Enabled() bool {
	return zerolog.GlobalLevel() <= zerolog.TraceLevel
}

// Trace emits a trace-level event carrying fields, if trace logging is
// enabled. fields may be nil.
func Trace(msg string, fields map[string]any) {
	ev := log.Trace()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

// Debug emits a debug-level event carrying fields. fields may be nil.
func Debug(msg string, fields map[string]any) {
	ev := log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
