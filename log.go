package imm

import (
	"sync"

	"github.com/SylphxAI/Pura/internal/invariant"
	"go.uber.org/zap"
)

// Debug records the state last passed to WithDebug. Assigning it directly
// does not turn the core's internal invariant checks on or off: vec and
// hamt read the switch from package invariant, which only WithDebug sets.
var Debug = false

// WithDebug flips the package-wide invariant-checking switch, which vec
// and hamt consult (via package invariant) before every node-shape and
// bitmap consistency check on every edit. Enable it in tests or
// diagnostic tooling; leave it off in production, where those checks are
// skipped entirely rather than merely suppressed.
func WithDebug(enabled bool) {
	Debug = enabled
	invariant.SetEnabled(enabled)
}

func init() {
	invariant.SetLogFunc(func(msg string, args ...any) {
		logger().Sugar().Warnf("internal invariant about to panic: "+msg, args...)
	})
}

var (
	loggerOnce sync.Once
	log        *zap.Logger
)

// logger returns the package-wide structured logger, built lazily so that
// importing this package never pays zap's setup cost unless an invariant
// warning actually fires.
func logger() *zap.Logger {
	loggerOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		log = l
	})
	return log
}

// SetLogger overrides the package logger, e.g. with a test-scoped
// zaptest.Logger or a development-mode logger.
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})
	log = l
}
