// SPDX-License-Identifier: Unlicense OR MIT

package fbo

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// logger is read by finalizers, hence atomic.
var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the package logger. It is a no-op logger unless SetLogger
// was called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger configures the package logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
