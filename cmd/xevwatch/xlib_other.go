// SPDX-License-Identifier: Unlicense OR MIT

//go:build (!linux || android || nox11) && !freebsd && !openbsd
// +build !linux android nox11
// +build !freebsd
// +build !openbsd

package main

import "errors"

func openXlib(name string) (source, error) {
	return nil, errors.New("the xlib backend is not available on this platform, use -backend xgb")
}
