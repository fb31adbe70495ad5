package monitoring

import "log"

// Logf is the package-level diagnostic logger for the analysis core. It
// defaults to log.Printf; batch drivers and tests can redirect or mute it
// with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Debug gates per-segment solver diagnostics, which are noisy on large
// courses. Off unless a batch driver turns it on.
var Debug bool

// Debugf logs through Logf only when Debug is enabled.
func Debugf(format string, v ...interface{}) {
	if Debug {
		Logf(format, v...)
	}
}
