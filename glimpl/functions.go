// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || linux || freebsd
// +build darwin linux freebsd

// Package glimpl calls the system OpenGL (ES) library. Every method must be
// called on the thread that has the context current.
package glimpl

import (
	"unsafe"

	"github.com/glxbind/glxbind/gl"
)

/*
#cgo CFLAGS: -Werror
#cgo linux freebsd LDFLAGS: -lGLESv2
#cgo freebsd CFLAGS: -I/usr/local/include
#cgo freebsd LDFLAGS: -L/usr/local/lib
#cgo darwin,!ios CFLAGS: -DGL_SILENCE_DEPRECATION
#cgo darwin,!ios LDFLAGS: -framework OpenGL
#cgo darwin,ios CFLAGS: -DGLES_SILENCE_DEPRECATION
#cgo darwin,ios LDFLAGS: -framework OpenGLES

#include <stdlib.h>

#ifdef __APPLE__
	#include "TargetConditionals.h"
	#if TARGET_OS_IPHONE
	#include <OpenGLES/ES3/gl.h>
	#else
	#include <OpenGL/gl3.h>
	#endif
#else
#include <GLES2/gl2.h>
#include <GLES3/gl3.h>
#endif
*/
import "C"

type Functions struct {
	// Query caches.
	uints [1]C.GLuint
	ints  [1]C.GLint
}

func (f *Functions) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	C.glBindFramebuffer(C.GLenum(target), C.GLuint(fb.V))
}

func (f *Functions) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	C.glBindRenderbuffer(C.GLenum(target), C.GLuint(rb.V))
}

func (f *Functions) BindTexture(target gl.Enum, t gl.Texture) {
	C.glBindTexture(C.GLenum(target), C.GLuint(t.V))
}

func (f *Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(C.glCheckFramebufferStatus(C.GLenum(target)))
}

func (f *Functions) CreateFramebuffer() gl.Framebuffer {
	C.glGenFramebuffers(1, &f.uints[0])
	return gl.Framebuffer{V: uint32(f.uints[0])}
}

func (f *Functions) CreateRenderbuffer() gl.Renderbuffer {
	C.glGenRenderbuffers(1, &f.uints[0])
	return gl.Renderbuffer{V: uint32(f.uints[0])}
}

func (f *Functions) CreateTexture() gl.Texture {
	C.glGenTextures(1, &f.uints[0])
	return gl.Texture{V: uint32(f.uints[0])}
}

func (f *Functions) DeleteFramebuffer(v gl.Framebuffer) {
	f.uints[0] = C.GLuint(v.V)
	C.glDeleteFramebuffers(1, &f.uints[0])
}

func (f *Functions) DeleteRenderbuffer(v gl.Renderbuffer) {
	f.uints[0] = C.GLuint(v.V)
	C.glDeleteRenderbuffers(1, &f.uints[0])
}

func (f *Functions) DeleteTexture(v gl.Texture) {
	f.uints[0] = C.GLuint(v.V)
	C.glDeleteTextures(1, &f.uints[0])
}

func (f *Functions) FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, renderbuffer gl.Renderbuffer) {
	C.glFramebufferRenderbuffer(C.GLenum(target), C.GLenum(attachment), C.GLenum(renderbuffertarget), C.GLuint(renderbuffer.V))
}

func (f *Functions) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	C.glFramebufferTexture2D(C.GLenum(target), C.GLenum(attachment), C.GLenum(texTarget), C.GLuint(t.V), C.GLint(level))
}

func (f *Functions) GetError() gl.Enum {
	return gl.Enum(C.glGetError())
}

func (f *Functions) GetInteger(pname gl.Enum) int {
	C.glGetIntegerv(C.GLenum(pname), &f.ints[0])
	return int(f.ints[0])
}

func (f *Functions) GetString(pname gl.Enum) string {
	str := C.glGetString(C.GLenum(pname))
	if str == nil {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(str)))
}

func (f *Functions) RenderbufferStorage(target, internalformat gl.Enum, width, height int) {
	C.glRenderbufferStorage(C.GLenum(target), C.GLenum(internalformat), C.GLsizei(width), C.GLsizei(height))
}

func (f *Functions) TexImage2D(target gl.Enum, level int, internalFormat int, width int, height int, format gl.Enum, ty gl.Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	C.glTexImage2D(C.GLenum(target), C.GLint(level), C.GLint(internalFormat), C.GLsizei(width), C.GLsizei(height), 0, C.GLenum(format), C.GLenum(ty), p)
}
