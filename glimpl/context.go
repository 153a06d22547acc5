// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || linux || freebsd
// +build darwin linux freebsd

package glimpl

import "github.com/glxbind/glxbind/fbo"

var _ fbo.Context = (*Functions)(nil)
