// Package logx wraps the standard logger for the emulation core's
// non-fatal diagnostics: invalid opcodes, writes to ROM, unmapped bus
// access. None of these abort the running frame; they're surfaced the
// way the teacher's BIOS console surfaces state, just through log.Printf
// instead of fmt.Printf so they can be silenced or redirected in tests.
package logx

import "log"

// Level controls which diagnostics are emitted. The default is
// LevelWarn; SetLevel(LevelSilent) suppresses every diagnostic.
type Level int

const (
	LevelSilent Level = iota
	LevelWarn
	LevelDebug
)

var current = LevelWarn

// SetLevel adjusts the global diagnostic verbosity.
func SetLevel(l Level) { current = l }

// Warnf logs a non-fatal hardware-level anomaly (invalid opcode, dropped
// ROM write) when the level is at least LevelWarn.
func Warnf(format string, args ...any) {
	if current >= LevelWarn {
		log.Printf("[gones] "+format, args...)
	}
}

// Debugf logs a fine-grained trace event (unmapped bus access) when the
// level is LevelDebug.
func Debugf(format string, args ...any) {
	if current >= LevelDebug {
		log.Printf("[gones] "+format, args...)
	}
}
