// Package obslog provides the coefficient loader's package-level logger.
// It follows the same injectable, no-op-by-default pattern used
// elsewhere for ambient logging: Logger returns a no-op logger until
// SetLogger installs another one.
package obslog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance. It uses a no-op logger
// by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger. Call before constructing any
// coefficient store so construction-time events are captured.
func SetLogger(l *zap.Logger) {
	logger = l
}
