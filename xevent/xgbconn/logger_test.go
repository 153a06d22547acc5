// SPDX-License-Identifier: Unlicense OR MIT

package xgbconn

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgbutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLoggerRedirectsXgb(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	xgb.Logger.Print("from xgb")
	xgbutil.Logger.Print("from xgbutil")
	if n := logs.FilterMessage("from xgb").Len(); n != 1 {
		t.Errorf("expected 1 xgb message, got %d", n)
	}
	if n := logs.FilterMessage("from xgbutil").Len(); n != 1 {
		t.Errorf("expected 1 xgbutil message, got %d", n)
	}
	if Logger().Core() != core {
		t.Error("Logger does not use the configured core")
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger returned nil")
	}
	Logger().Info("discarded")
	xgb.Logger.Print("discarded")
}
