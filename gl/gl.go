// SPDX-License-Identifier: Unlicense OR MIT

// Package gl holds the OpenGL vocabulary shared by the binding packages. It
// does not call into the driver; see package glimpl for that.
package gl

type Enum uint32

const (
	COLOR_ATTACHMENT0                         = 0x8ce0
	DEPTH_ATTACHMENT                          = 0x8d00
	DEPTH_STENCIL_ATTACHMENT                  = 0x821a
	DEPTH_COMPONENT16                         = 0x81a5
	DRAW_FRAMEBUFFER                          = 0x8ca9
	FRAMEBUFFER                               = 0x8d40
	FRAMEBUFFER_BINDING                       = 0x8ca6
	FRAMEBUFFER_COMPLETE                      = 0x8cd5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8cd6
	FRAMEBUFFER_INCOMPLETE_DIMENSIONS         = 0x8cd9
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8cd7
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8d56
	FRAMEBUFFER_UNDEFINED                     = 0x8219
	FRAMEBUFFER_UNSUPPORTED                   = 0x8cdd
	INVALID_ENUM                              = 0x0500
	INVALID_FRAMEBUFFER_OPERATION             = 0x0506
	INVALID_OPERATION                         = 0x0502
	INVALID_VALUE                             = 0x0501
	MAX_COLOR_ATTACHMENTS                     = 0x8cdf
	NO_ERROR                                  = 0x0
	OUT_OF_MEMORY                             = 0x0505
	READ_FRAMEBUFFER                          = 0x8ca8
	RENDERBUFFER                              = 0x8d41
	RENDERBUFFER_BINDING                      = 0x8ca7
	RGBA                                      = 0x1908
	RGBA8                                     = 0x8058
	STENCIL_ATTACHMENT                        = 0x8d20
	TEXTURE_2D                                = 0xde1
	UNSIGNED_BYTE                             = 0x1401
	VERSION                                   = 0x1f02
)
