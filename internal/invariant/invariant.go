// Package invariant holds the process-wide switch and check primitive
// backing imm.Debug/WithDebug. vec and hamt depend on this package rather
// than on imm itself so that enabling internal consistency checks at the
// facade doesn't require a cycle back into the packages it wires together.
package invariant

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

var enabled atomic.Bool

// SetEnabled flips the switch; imm.WithDebug is its only caller.
func SetEnabled(v bool) { enabled.Store(v) }

// Enabled reports the current switch state. Callers doing nontrivial work
// to assemble a check (e.g. walking a sizes array) should guard on this
// first, so checks are genuinely elided, not just suppressed, when off.
func Enabled() bool { return enabled.Load() }

var logFunc func(msg string, args ...any)

// SetLogFunc registers a callback invoked with the failing check's message
// just before Check panics. imm wires this to its own structured logger at
// init so a firing invariant is logged with the same sink as everything
// else, without this package importing imm back.
func SetLogFunc(f func(msg string, args ...any)) { logFunc = f }

// Check panics with InternalInvariant context when cond is false and
// checks are enabled. It must never fire on user input; a firing
// invariant indicates a bug in the core itself.
func Check(cond bool, msg string, args ...any) {
	if !enabled.Load() || cond {
		return
	}
	if logFunc != nil {
		logFunc(msg, args...)
	}
	panic(errors.Errorf("InternalInvariant: "+msg, args...))
}
