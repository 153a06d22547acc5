// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd
// +build linux freebsd

package egl

/*
#cgo LDFLAGS: -lEGL
#cgo freebsd CFLAGS: -I/usr/local/include
#cgo freebsd LDFLAGS: -L/usr/local/lib

#include <EGL/egl.h>
*/
import "C"

type (
	_EGLint     = C.EGLint
	_EGLDisplay = C.EGLDisplay
	_EGLConfig  = C.EGLConfig
	_EGLContext = C.EGLContext
)

// The EGL_DEFAULT_DISPLAY, EGL_NO_CONTEXT and EGL_NO_SURFACE macros are
// zero casts that cgo cannot express; zero values stand in for them.
var (
	nilEGLDisplay    _EGLDisplay
	nilEGLContext    _EGLContext
	nilEGLConfig     _EGLConfig
	nilEGLSurface    C.EGLSurface
	nilNativeDisplay C.EGLNativeDisplayType
)

func eglGetDefaultDisplay() _EGLDisplay {
	return C.eglGetDisplay(nilNativeDisplay)
}

func eglInitialize(disp _EGLDisplay) bool {
	var maj, min C.EGLint
	return C.eglInitialize(disp, &maj, &min) == C.EGL_TRUE
}

func eglTerminate(disp _EGLDisplay) {
	C.eglTerminate(disp)
}

func eglQueryString(disp _EGLDisplay, name _EGLint) string {
	return C.GoString(C.eglQueryString(disp, name))
}

func eglChooseConfig(disp _EGLDisplay, attribs []_EGLint) (_EGLConfig, bool) {
	var cfg C.EGLConfig
	var n C.EGLint
	if C.eglChooseConfig(disp, &attribs[0], &cfg, 1, &n) != C.EGL_TRUE || n == 0 {
		return nilEGLConfig, false
	}
	return cfg, true
}

func eglCreateContext(disp _EGLDisplay, cfg _EGLConfig, attribs []_EGLint) _EGLContext {
	return C.eglCreateContext(disp, cfg, nilEGLContext, &attribs[0])
}

func eglDestroyContext(disp _EGLDisplay, ctx _EGLContext) {
	C.eglDestroyContext(disp, ctx)
}

// eglMakeCurrent binds ctx with no draw or read surface, as allowed by
// EGL_KHR_surfaceless_context. A nil ctx releases the current context.
func eglMakeCurrent(disp _EGLDisplay, ctx _EGLContext) bool {
	return C.eglMakeCurrent(disp, nilEGLSurface, nilEGLSurface, ctx) == C.EGL_TRUE
}

func eglReleaseThread() {
	C.eglReleaseThread()
}

func eglGetError() _EGLint {
	return C.eglGetError()
}
