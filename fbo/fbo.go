// SPDX-License-Identifier: Unlicense OR MIT

/*
Package fbo wraps OpenGL framebuffer objects, and the textures and
renderbuffers attached to them, in garbage collected handles.

Every driver name wrapped by a handle is deleted exactly once: either by an
explicit Destroy, or after the handle becomes unreachable. Finalizers run on
a runtime goroutine that does not own the GL context, so they only queue
the name; the Device deletes queued names on its next Create, Bind or
Collect call.

Attach operations act on the currently bound framebuffer, exactly like the
underlying GL calls. Bind first:

	fb := dev.Create()
	dev.Bind(fb)
	dev.AttachTexture2D(fbo.ColorAttachment0, tex, 0)
	dev.Bind(nil) // Back to the window system framebuffer.

A Device and its handles must only be used from the goroutine (and OS
thread) that has the GL context current.
*/
package fbo

import (
	"runtime"
	"sync"

	"github.com/glxbind/glxbind/gl"
	"go.uber.org/zap"
)

// Device binds handles to a GL context.
type Device struct {
	ctx Context

	// mu protects dead, which is appended to by finalizers.
	mu   sync.Mutex
	dead []deadName
}

type kind uint8

const (
	kindFramebuffer kind = iota
	kindTexture
	kindRenderbuffer
)

func (k kind) String() string {
	switch k {
	case kindFramebuffer:
		return "framebuffer"
	case kindTexture:
		return "texture"
	default:
		return "renderbuffer"
	}
}

type deadName struct {
	kind kind
	name uint32
}

// handle is the state shared by the wrapped object kinds.
type handle struct {
	dev      *Device
	name     uint32
	released bool
}

// Framebuffer is a framebuffer object handle. A nil *Framebuffer stands for
// the window system provided framebuffer.
type Framebuffer struct {
	handle
}

// Texture is a texture object handle.
type Texture struct {
	handle
}

// Renderbuffer is a renderbuffer object handle.
type Renderbuffer struct {
	handle
}

// NewDevice returns a Device issuing GL calls through ctx.
func NewDevice(ctx Context) *Device {
	return &Device{ctx: ctx}
}

// Create allocates a framebuffer object.
func (d *Device) Create() *Framebuffer {
	d.Collect()
	fb := &Framebuffer{handle{dev: d, name: d.ctx.CreateFramebuffer().V}}
	runtime.SetFinalizer(fb, (*Framebuffer).finalize)
	return fb
}

// Bind makes fb the target of subsequent attach and draw calls. A nil fb
// binds the window system framebuffer.
func (d *Device) Bind(fb *Framebuffer) {
	d.Collect()
	var name uint32
	if fb != nil {
		name = fb.live("Bind")
	}
	d.ctx.BindFramebuffer(gl.FRAMEBUFFER, gl.Framebuffer{V: name})
}

// Destroy deletes the framebuffer object now. Destroying a handle more than
// once has no effect, and the handle will not be deleted again when it is
// garbage collected.
func (d *Device) Destroy(fb *Framebuffer) {
	if fb == nil || !fb.release() {
		return
	}
	runtime.SetFinalizer(fb, nil)
	d.ctx.DeleteFramebuffer(gl.Framebuffer{V: fb.name})
}

// AttachTexture2D attaches level of the 2D texture t to the attachment point
// a of the currently bound framebuffer. A nil t detaches the point.
func (d *Device) AttachTexture2D(a Attachment, t *Texture, level int) {
	var name uint32
	if t != nil {
		name = t.live("AttachTexture2D")
	}
	d.ctx.FramebufferTexture2D(gl.FRAMEBUFFER, gl.Enum(a), gl.TEXTURE_2D, gl.Texture{V: name}, level)
}

// AttachRenderbuffer attaches rb to the attachment point a of the currently
// bound framebuffer. A nil rb detaches the point.
func (d *Device) AttachRenderbuffer(a Attachment, rb *Renderbuffer) {
	var name uint32
	if rb != nil {
		name = rb.live("AttachRenderbuffer")
	}
	d.ctx.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.Enum(a), gl.RENDERBUFFER, gl.Renderbuffer{V: name})
}

// CreateTexture allocates a texture object.
func (d *Device) CreateTexture() *Texture {
	d.Collect()
	t := &Texture{handle{dev: d, name: d.ctx.CreateTexture().V}}
	runtime.SetFinalizer(t, (*Texture).finalize)
	return t
}

// DestroyTexture deletes the texture object now, like Destroy.
func (d *Device) DestroyTexture(t *Texture) {
	if t == nil || !t.release() {
		return
	}
	runtime.SetFinalizer(t, nil)
	d.ctx.DeleteTexture(gl.Texture{V: t.name})
}

// CreateRenderbuffer allocates a renderbuffer object.
func (d *Device) CreateRenderbuffer() *Renderbuffer {
	d.Collect()
	rb := &Renderbuffer{handle{dev: d, name: d.ctx.CreateRenderbuffer().V}}
	runtime.SetFinalizer(rb, (*Renderbuffer).finalize)
	return rb
}

// DestroyRenderbuffer deletes the renderbuffer object now, like Destroy.
func (d *Device) DestroyRenderbuffer(rb *Renderbuffer) {
	if rb == nil || !rb.release() {
		return
	}
	runtime.SetFinalizer(rb, nil)
	d.ctx.DeleteRenderbuffer(gl.Renderbuffer{V: rb.name})
}

// Collect deletes the objects of handles that were garbage collected since
// the last call.
func (d *Device) Collect() {
	d.mu.Lock()
	dead := d.dead
	d.dead = nil
	d.mu.Unlock()
	if len(dead) == 0 {
		return
	}
	for _, n := range dead {
		switch n.kind {
		case kindFramebuffer:
			d.ctx.DeleteFramebuffer(gl.Framebuffer{V: n.name})
		case kindTexture:
			d.ctx.DeleteTexture(gl.Texture{V: n.name})
		case kindRenderbuffer:
			d.ctx.DeleteRenderbuffer(gl.Renderbuffer{V: n.name})
		}
	}
	Logger().Debug("collected finalized objects", zap.Int("count", len(dead)))
}

// Err returns the pending GL error, if any, as a *gl.Error. The GL reports
// errors from earlier calls only through this query.
func (d *Device) Err() error {
	if code := d.ctx.GetError(); code != gl.NO_ERROR {
		return &gl.Error{Op: "glGetError", Code: code}
	}
	return nil
}

// Status reports whether the currently bound framebuffer is complete.
func (d *Device) Status() error {
	if st := d.ctx.CheckFramebufferStatus(gl.FRAMEBUFFER); st != gl.FRAMEBUFFER_COMPLETE {
		return &gl.Error{Op: "glCheckFramebufferStatus", Code: st}
	}
	return nil
}

func (d *Device) enqueue(k kind, h *handle) {
	if !h.release() {
		return
	}
	d.mu.Lock()
	d.dead = append(d.dead, deadName{kind: k, name: h.name})
	d.mu.Unlock()
	Logger().Debug("handle finalized", zap.Stringer("kind", k), zap.Uint32("name", h.name))
}

// release marks h released and reports whether it was live.
func (h *handle) release() bool {
	if h.released {
		return false
	}
	h.released = true
	return true
}

func (h *handle) live(op string) uint32 {
	if h.released {
		panic("fbo: " + op + " on a destroyed handle")
	}
	return h.name
}

// Name returns the raw driver name.
func (h *handle) Name() uint32 {
	return h.name
}

// Released reports whether the handle was destroyed.
func (h *handle) Released() bool {
	return h.released
}

func (f *Framebuffer) finalize()  { f.dev.enqueue(kindFramebuffer, &f.handle) }
func (t *Texture) finalize()      { t.dev.enqueue(kindTexture, &t.handle) }
func (r *Renderbuffer) finalize() { r.dev.enqueue(kindRenderbuffer, &r.handle) }

// Compare orders framebuffers by driver name. A nil framebuffer has name 0.
func (f *Framebuffer) Compare(o *Framebuffer) int {
	return compare(f.nameOrZero(), o.nameOrZero())
}

func (f *Framebuffer) Equal(o *Framebuffer) bool {
	return f.Compare(o) == 0
}

// Hash returns a hash of the driver name. Equal handles, nil included, have
// equal hashes.
func (f *Framebuffer) Hash() uint64 {
	return uint64(f.nameOrZero())
}

func (f *Framebuffer) nameOrZero() uint32 {
	if f == nil {
		return 0
	}
	return f.name
}

// Compare orders textures by driver name. A nil texture has name 0.
func (t *Texture) Compare(o *Texture) int {
	return compare(t.nameOrZero(), o.nameOrZero())
}

func (t *Texture) Hash() uint64 {
	return uint64(t.nameOrZero())
}

func (t *Texture) nameOrZero() uint32 {
	if t == nil {
		return 0
	}
	return t.name
}

// Compare orders renderbuffers by driver name. A nil renderbuffer has
// name 0.
func (r *Renderbuffer) Compare(o *Renderbuffer) int {
	return compare(r.nameOrZero(), o.nameOrZero())
}

func (r *Renderbuffer) Hash() uint64 {
	return uint64(r.nameOrZero())
}

func (r *Renderbuffer) nameOrZero() uint32 {
	if r == nil {
		return 0
	}
	return r.name
}

func compare(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
