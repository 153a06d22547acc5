// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux || freebsd
// +build linux freebsd

// Package egl creates headless OpenGL ES contexts, for driving framebuffer
// objects without a window.
package egl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/glxbind/glxbind/glimpl"
)

// Context is a surfaceless OpenGL ES context.
type Context struct {
	c    *glimpl.Functions
	disp _EGLDisplay
	ctx  _EGLContext
}

const (
	_EGL_CONTEXT_CLIENT_VERSION = 0x3098
	_EGL_EXTENSIONS             = 0x3055
	_EGL_NONE                   = 0x3038
	_EGL_OPENGL_ES2_BIT         = 0x4
	_EGL_RENDERABLE_TYPE        = 0x3040
)

// NewContext creates a context on the default EGL display. The display
// must support EGL_KHR_surfaceless_context.
func NewContext() (*Context, error) {
	disp := eglGetDefaultDisplay()
	if disp == nilEGLDisplay {
		return nil, fmt.Errorf("eglGetDisplay(EGL_DEFAULT_DISPLAY) failed: 0x%x", eglGetError())
	}
	if !eglInitialize(disp) {
		return nil, fmt.Errorf("eglInitialize failed: 0x%x", eglGetError())
	}
	exts := strings.Split(eglQueryString(disp, _EGL_EXTENSIONS), " ")
	if !hasExtension(exts, "EGL_KHR_surfaceless_context") {
		eglTerminate(disp)
		return nil, errors.New("EGL_KHR_surfaceless_context not supported")
	}
	cfg, ok := eglChooseConfig(disp, []_EGLint{
		_EGL_RENDERABLE_TYPE, _EGL_OPENGL_ES2_BIT,
		_EGL_NONE,
	})
	if !ok {
		eglTerminate(disp)
		return nil, fmt.Errorf("eglChooseConfig found no ES2 config: 0x%x", eglGetError())
	}
	ctx := eglCreateContext(disp, cfg, []_EGLint{_EGL_CONTEXT_CLIENT_VERSION, 3, _EGL_NONE})
	if ctx == nilEGLContext {
		// Fall back to OpenGL ES 2; framebuffer objects are core there too.
		ctx = eglCreateContext(disp, cfg, []_EGLint{_EGL_CONTEXT_CLIENT_VERSION, 2, _EGL_NONE})
		if ctx == nilEGLContext {
			eglTerminate(disp)
			return nil, fmt.Errorf("eglCreateContext failed: 0x%x", eglGetError())
		}
	}
	return &Context{c: new(glimpl.Functions), disp: disp, ctx: ctx}, nil
}

func (c *Context) Functions() *glimpl.Functions {
	return c.c
}

// MakeCurrent binds the context to the calling thread. The caller must
// lock the goroutine to its OS thread.
func (c *Context) MakeCurrent() error {
	if !eglMakeCurrent(c.disp, c.ctx) {
		return fmt.Errorf("eglMakeCurrent error 0x%x", eglGetError())
	}
	return nil
}

func (c *Context) ReleaseCurrent() {
	eglMakeCurrent(c.disp, nilEGLContext)
}

func (c *Context) Release() {
	if c.ctx == nilEGLContext {
		return
	}
	eglDestroyContext(c.disp, c.ctx)
	eglTerminate(c.disp)
	eglReleaseThread()
	c.ctx = nilEGLContext
}

func hasExtension(exts []string, ext string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
