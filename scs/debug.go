package scs

import (
	"log"
	"sync/atomic"
)

// The catalogue debug channel. Level 0 is silent, 1 warnings, 2 chatty.
// The parser's LogLevel directive clamps the level downward at most; code
// can set it freely.

var logLevel atomic.Int32

func init() { logLevel.Store(1) }

// SetLogLevel sets the debug verbosity threshold.
func SetLogLevel(level int) { logLevel.Store(int32(level)) }

// LogLevel returns the current debug verbosity threshold.
func LogLevel() int { return int(logLevel.Load()) }

// clampLogLevel lowers the level to at most max; raising is reserved for
// SetLogLevel. Driven by the script directive "LogLevel == n".
func clampLogLevel(max int) {
	for {
		cur := logLevel.Load()
		next := int32(max)
		if cur <= next {
			return
		}
		if logLevel.CompareAndSwap(cur, next) {
			return
		}
	}
}

func logf(level int, format string, args ...any) {
	if int(logLevel.Load()) >= level {
		log.Printf("scs: "+format, args...)
	}
}
