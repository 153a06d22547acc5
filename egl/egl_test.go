// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd
// +build linux freebsd

package egl

import "testing"

func TestHasExtension(t *testing.T) {
	exts := []string{"EGL_KHR_gl_colorspace", "EGL_KHR_surfaceless_context"}
	if !hasExtension(exts, "EGL_KHR_surfaceless_context") {
		t.Error("extension not found")
	}
	if hasExtension(exts, "EGL_KHR_surfaceless") {
		t.Error("prefix matched as extension")
	}
}
