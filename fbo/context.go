// SPDX-License-Identifier: Unlicense OR MIT

package fbo

import (
	"strconv"

	"github.com/glxbind/glxbind/gl"
)

// Context is the part of an OpenGL context used by a Device.
// *glimpl.Functions implements it.
type Context interface {
	CreateFramebuffer() gl.Framebuffer
	DeleteFramebuffer(gl.Framebuffer)
	BindFramebuffer(target gl.Enum, fb gl.Framebuffer)
	CreateTexture() gl.Texture
	DeleteTexture(gl.Texture)
	CreateRenderbuffer() gl.Renderbuffer
	DeleteRenderbuffer(gl.Renderbuffer)
	FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int)
	FramebufferRenderbuffer(target, attachment, renderbuffertarget gl.Enum, renderbuffer gl.Renderbuffer)
	CheckFramebufferStatus(target gl.Enum) gl.Enum
	GetError() gl.Enum
}

// Attachment is a framebuffer attachment point.
type Attachment gl.Enum

const (
	ColorAttachment0       Attachment = gl.COLOR_ATTACHMENT0
	DepthAttachment        Attachment = gl.DEPTH_ATTACHMENT
	StencilAttachment      Attachment = gl.STENCIL_ATTACHMENT
	DepthStencilAttachment Attachment = gl.DEPTH_STENCIL_ATTACHMENT
)

// ColorAttachment returns the i'th color attachment point.
func ColorAttachment(i int) Attachment {
	return ColorAttachment0 + Attachment(i)
}

func (a Attachment) String() string {
	switch a {
	case DepthAttachment:
		return "depth"
	case StencilAttachment:
		return "stencil"
	case DepthStencilAttachment:
		return "depth-stencil"
	}
	if a >= ColorAttachment0 && a < ColorAttachment0+32 {
		return "color" + strconv.Itoa(int(a-ColorAttachment0))
	}
	return gl.EnumName(gl.Enum(a))
}
