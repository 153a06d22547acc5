// SPDX-License-Identifier: Unlicense OR MIT

package xgbconn

import (
	"sync/atomic"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgbutil"
	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the package logger, a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger configures the package logger; nil restores the no-op logger.
// The standard loggers of xgb and xgbutil are redirected to it, so it
// should be called before Dial.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = nop
	}
	logger.Store(l)
	xgb.Logger = zap.NewStdLog(l.Named("xgb"))
	xgbutil.Logger = zap.NewStdLog(l.Named("xgbutil"))
}
